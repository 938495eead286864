package dialog

// stateStore holds one dialog's open value. In controlled mode the value
// is owned by the caller: SetOpen only reports intent through onChange and
// setValue applies what the owner decided.
type stateStore struct {
	controlled bool
	value      bool
	onChange   func(open bool)
}

func (s *stateStore) Open() bool {
	return s.value
}

// SetOpen requests a change. Requesting the current value is a no-op, so
// a double dismiss notifies at most once.
func (s *stateStore) SetOpen(open bool) {
	if open == s.value {
		return
	}
	if !s.controlled {
		s.value = open
	}
	if s.onChange != nil {
		s.onChange(open)
	}
}

func (s *stateStore) setValue(open bool) {
	s.value = open
}
