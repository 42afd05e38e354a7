package effect

// DamageCount accumulates damage toward a fixed maximum.
type DamageCount struct {
	Damage int
	Max    int
}

func NewDamageCount(max int) DamageCount {
	return DamageCount{Max: max}
}

func (d *DamageCount) Add(n int) {
	d.Damage += n
}

// Remove subtracts n, never going below zero.
func (d *DamageCount) Remove(n int) {
	d.Damage = max(0, d.Damage-n)
}

func (d DamageCount) Exceeded() bool {
	return d.Damage >= d.Max
}

func (d DamageCount) Taken() int {
	return d.Damage
}

// MovementSpeed is a base speed scaled by a multiplier that effects set and
// the owner resets every frame.
type MovementSpeed struct {
	Base       float64
	Multiplier float64
}

func NewMovementSpeed(base float64) MovementSpeed {
	return MovementSpeed{Base: base, Multiplier: 1}
}

func (m *MovementSpeed) ResetMultiplier() {
	m.Multiplier = 1
}

func (m *MovementSpeed) SetMultiplier(v float64) {
	m.Multiplier = v
}

func (m MovementSpeed) Get() float64 {
	return m.Base * m.Multiplier
}

// FiresInContact tracks fire sources currently overlapping the owner, keyed
// by whatever handle identifies the source.
type FiresInContact[K comparable] struct {
	sources map[K]struct{}
}

func (f *FiresInContact[K]) Enter(k K) {
	if f.sources == nil {
		f.sources = make(map[K]struct{})
	}
	f.sources[k] = struct{}{}
}

func (f *FiresInContact[K]) Leave(k K) {
	delete(f.sources, k)
}

func (f *FiresInContact[K]) Len() int {
	return len(f.sources)
}

// Apply re-applies Burning once if any source is overlapping.
func (f *FiresInContact[K]) Apply(set *Set) {
	if f.Len() > 0 {
		Add(Burning, set)
	}
}

// Prune forgets every source for which keep reports false. Sources that
// vanish without an end contact would otherwise burn forever.
func (f *FiresInContact[K]) Prune(keep func(K) bool) {
	for k := range f.sources {
		if !keep(k) {
			delete(f.sources, k)
		}
	}
}
