// Package semantics maintains the accessibility tree for a terminal UI:
// a tree of labeled regions that assistive output walks instead of the
// raw screen. Nodes can be hidden with reference counting so that nested
// modal surfaces can each exclude the rest of the tree without clobbering
// one another's exclusions.
package semantics

import "sync"

// Role classifies a semantics node for assistive traversal.
type Role string

const (
	RoleDocument Role = "document"
	RoleRegion   Role = "region"
	RoleButton   Role = "button"
	RoleDialog   Role = "dialog"
)

// Node is one region in the accessibility tree. Nodes are created with
// NewChild and removed with Detach; a detached node keeps its identity so
// pending exclusion restores still resolve.
type Node struct {
	tree     *Tree
	parent   *Node
	children []*Node

	id     string
	role   Role
	label  string
	attrs  map[string]string
	hidden int // exclusion refcount; >0 means hidden from traversal
}

// ID returns the node's identifier.
func (n *Node) ID() string { return n.id }

// Role returns the node's role.
func (n *Node) Role() Role { return n.role }

// Label returns the node's human-readable label.
func (n *Node) Label() string { return n.label }

// SetLabel updates the node's label.
func (n *Node) SetLabel(label string) { n.label = label }

// Hidden reports whether the node is excluded from assistive traversal.
func (n *Node) Hidden() bool { return n.hidden > 0 }

// SetAttr sets an attribute exposed to assistive traversal, such as
// aria-expanded or data-state.
func (n *Node) SetAttr(key, value string) {
	if n.attrs == nil {
		n.attrs = map[string]string{}
	}
	n.attrs[key] = value
}

// Attr returns the attribute value, or "" when unset.
func (n *Node) Attr(key string) string {
	return n.attrs[key]
}

// NewChild creates and attaches a child node.
func (n *Node) NewChild(id string, role Role, label string) *Node {
	child := &Node{tree: n.tree, parent: n, id: id, role: role, label: label}
	n.children = append(n.children, child)
	return child
}

// Detach removes the node from its parent. Safe to call twice.
func (n *Node) Detach() {
	if n.parent == nil {
		return
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			n.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Tree is the accessibility tree for one host. The root represents the
// document and is never hidden.
type Tree struct {
	root *Node
}

// NewTree creates a tree with a document root.
func NewTree() *Tree {
	t := &Tree{}
	t.root = &Node{tree: t, id: "root", role: RoleDocument}
	return t
}

// Root returns the document root node.
func (t *Tree) Root() *Node { return t.root }

// Find returns the first node with the given id in depth-first order,
// or nil.
func (t *Tree) Find(id string) *Node {
	return find(t.root, id)
}

func find(n *Node, id string) *Node {
	if n.id == id {
		return n
	}
	for _, c := range n.children {
		if m := find(c, id); m != nil {
			return m
		}
	}
	return nil
}

// ExcludeOthers hides every node outside the given node's ancestor chain
// and subtree, so assistive traversal can reach only the node's subtree.
// The hide is a refcount increment: exclusions from nested surfaces stack,
// and one surface's restore never reveals what another still excludes.
//
// The returned restore function reverts exactly this exclusion and is safe
// to call more than once.
func (t *Tree) ExcludeOthers(keep *Node) (restore func()) {
	var hidden []*Node

	// Walk up from keep; at each level hide the path node's siblings.
	for n := keep; n != nil && n.parent != nil; n = n.parent {
		for _, sibling := range n.parent.children {
			if sibling == n {
				continue
			}
			sibling.hidden++
			hidden = append(hidden, sibling)
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for _, n := range hidden {
				if n.hidden > 0 {
					n.hidden--
				}
			}
		})
	}
}

// VisibleNodes returns all reachable nodes in depth-first order, skipping
// hidden subtrees. This is the traversal assistive output consumes.
func (t *Tree) VisibleNodes() []*Node {
	var nodes []*Node
	visit(t.root, &nodes)
	return nodes
}

func visit(n *Node, out *[]*Node) {
	if n.Hidden() {
		return
	}
	*out = append(*out, n)
	for _, c := range n.children {
		visit(c, out)
	}
}
