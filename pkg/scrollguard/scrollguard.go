// Package scrollguard provides a reference-counted lock over background
// scrolling and input routing. While at least one holder exists, the host
// application must stop delivering scroll and navigation input to content
// behind the active overlay.
package scrollguard

import "sync"

// Guard is a reference-counted scroll lock. Multiple overlapping holders
// (nested dialogs) stack without leaking: the lock is held until every
// acquisition has been released.
type Guard struct {
	mu    sync.Mutex
	count int
}

// New creates an unlocked Guard.
func New() *Guard {
	return &Guard{}
}

// Acquire takes one reference on the lock and returns a release function.
// The release is idempotent: calling it more than once decrements the
// count only once.
func (g *Guard) Acquire() (release func()) {
	g.mu.Lock()
	g.count++
	g.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			if g.count > 0 {
				g.count--
			}
			g.mu.Unlock()
		})
	}
}

// Locked reports whether any holder currently has the lock.
func (g *Guard) Locked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.count > 0
}

// Holders returns the current number of live acquisitions.
func (g *Guard) Holders() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.count
}
