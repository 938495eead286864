package scrollguard

import "testing"

func TestGuardRefcounting(t *testing.T) {
	g := New()

	if g.Locked() {
		t.Fatal("new guard should be unlocked")
	}

	rel1 := g.Acquire()
	rel2 := g.Acquire()

	if !g.Locked() {
		t.Fatal("guard should be locked with two holders")
	}
	if got := g.Holders(); got != 2 {
		t.Fatalf("holders = %d, want 2", got)
	}

	rel1()
	if !g.Locked() {
		t.Fatal("guard should stay locked while one holder remains")
	}

	rel2()
	if g.Locked() {
		t.Fatal("guard should unlock once every holder released")
	}
}

func TestGuardReleaseIdempotent(t *testing.T) {
	g := New()

	rel := g.Acquire()
	other := g.Acquire()

	rel()
	rel()
	rel()

	if got := g.Holders(); got != 1 {
		t.Fatalf("holders = %d, want 1 after repeated release of one holder", got)
	}

	other()
	if g.Locked() {
		t.Fatal("guard should be unlocked")
	}
}
