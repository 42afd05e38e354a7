package ecs

type System interface {
	Update(w *World)
}

// Scheduler runs systems in the order they were added.
type Scheduler struct {
	systems []System
	paused  bool
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// SetPaused stops Update from running any system until unpaused.
func (s *Scheduler) SetPaused(paused bool) {
	s.paused = paused
}

func (s *Scheduler) Paused() bool {
	return s.paused
}

func (s *Scheduler) Update(w *World) {
	if s.paused {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
