package component

// Audio lists the named sounds an entity can emit. Play and Stop are
// one-frame requests consumed by the audio system.
type Audio struct {
	Names  []string
	Files  []string
	Volume []float64
	Play   []bool
	Stop   []bool
}

var AudioComponent = NewComponent[Audio]()

func (a *Audio) index(name string) int {
	for i, n := range a.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// Request flags name to start playing. Returns false if the entity has no
// such sound.
func (a *Audio) Request(name string) bool {
	i := a.index(name)
	if i < 0 || i >= len(a.Play) {
		return false
	}
	a.Play[i] = true
	return true
}

// Halt flags name to stop.
func (a *Audio) Halt(name string) bool {
	i := a.index(name)
	if i < 0 || i >= len(a.Stop) {
		return false
	}
	a.Stop[i] = true
	return true
}
