package effect

import "image/color"

// Target receives the consequences of an Advance pass. Nil fields are
// skipped.
type Target struct {
	Damage *DamageCount
	Speed  *MovementSpeed
	Tint   func(color.NRGBA)
}

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Advance runs one frame of effect processing in a fixed order: fire
// exposure is ingested, every effect is ticked and applied, expired effects
// are purged, and finally the damage total is checked. It reports whether
// the damage counter is exceeded.
func Advance[K comparable](set *Set, fires *FiresInContact[K], t Target, dt float64) bool {
	if fires != nil {
		fires.Apply(set)
	}

	if t.Speed != nil {
		t.Speed.ResetMultiplier()
	}
	hadEffects := set.Len() > 0
	set.Each(func(a *Active) {
		ticked := Update(a, dt)
		if ticked && t.Damage != nil {
			ApplyDamage(*a, t.Damage)
		}
		if t.Speed != nil {
			ApplySpeed(*a, t.Speed)
		}
		if t.Tint != nil {
			if c, ok := PulseColour(*a); ok {
				t.Tint(c)
			}
		}
	})

	RemoveExpired(set)
	if hadEffects && set.Len() == 0 && t.Tint != nil {
		t.Tint(white)
	}

	return t.Damage != nil && t.Damage.Exceeded()
}
