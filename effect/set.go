package effect

// Set holds at most one Active per Type and never holds None.
type Set struct {
	entries []Active
}

func (s *Set) index(t Type) int {
	for i := range s.entries {
		if s.entries[i].Type == t {
			return i
		}
	}
	return -1
}

func (s *Set) Has(t Type) bool {
	return s.index(t) >= 0
}

// Get returns a copy of the entry for t.
func (s *Set) Get(t Type) (Active, bool) {
	i := s.index(t)
	if i < 0 {
		return Active{}, false
	}
	return s.entries[i], true
}

func (s *Set) Len() int {
	return len(s.entries)
}

// Remove deletes the entry for t and reports whether one existed.
func (s *Set) Remove(t Type) bool {
	i := s.index(t)
	if i < 0 {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return true
}

// Each calls fn with a pointer to every entry in insertion order. fn must
// not add or remove entries.
func (s *Set) Each(fn func(*Active)) {
	for i := range s.entries {
		fn(&s.entries[i])
	}
}

// Types lists the active types in insertion order.
func (s *Set) Types() []Type {
	out := make([]Type, 0, len(s.entries))
	for _, a := range s.entries {
		out = append(out, a.Type)
	}
	return out
}

func (s *Set) refresh(t Type, duration float64) {
	if i := s.index(t); i >= 0 {
		s.entries[i].Remaining = duration
		return
	}
	s.entries = append(s.entries, Active{Type: t, Remaining: duration})
}
