package dialog

import (
	"sort"
	"strings"
)

// Event is a preventable part-level event delivered to caller handlers
// before the part's own behavior runs.
type Event struct {
	Type string

	prevented bool
}

// PreventDefault stops the part's default behavior for this event.
func (e *Event) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.prevented }

// composeEventHandlers chains a caller handler before an internal one.
// When checkForDefaultPrevented is true the internal handler is skipped if
// the caller prevented the event. Focus, blur and pointer-capture style
// composition passes false: internal bookkeeping for those must run even
// when the caller prevents the visible behavior.
func composeEventHandlers(own, internal func(*Event), checkForDefaultPrevented bool) func(*Event) {
	return func(e *Event) {
		if own != nil {
			own(e)
		}
		if checkForDefaultPrevented && e.DefaultPrevented() {
			return
		}
		if internal != nil {
			internal(e)
		}
	}
}

// Attrs is the rendered attribute set of a part, the terminal counterpart
// of a DOM element's attributes. Assistive tooling and tests read it.
type Attrs map[string]string

// String formats the attrs as space-separated key="value" pairs in key
// order.
func (a Attrs) String() string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(a[k])
		b.WriteByte('"')
	}
	return b.String()
}

func openState(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}
