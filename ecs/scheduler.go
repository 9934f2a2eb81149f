package ecs

// System updates a world once per frame. dt is the elapsed time for the
// frame, in seconds. A returned error aborts the frame and propagates out of
// the game loop.
type System interface {
	Update(w *World, dt float64) error
}

// Scheduler runs systems in a fixed order.
type Scheduler struct {
	systems []System
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

// Update runs all systems once, stopping at the first error.
func (s *Scheduler) Update(w *World, dt float64) error {
	for _, system := range s.systems {
		if err := system.Update(w, dt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
