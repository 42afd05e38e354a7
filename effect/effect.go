// Package effect implements timed status conditions and the elemental
// interaction rules between them.
//
// Effects live in a Set owned by a single behavior. Every frame the owner
// calls Advance, which ticks each effect, applies periodic damage on whole
// second boundaries, applies movement slowdown, and drops anything expired.
package effect

import (
	"fmt"
	"image/color"
	"math"
)

// Type names a status condition.
type Type int

const (
	None Type = iota
	Burning
	Poisoned
	Frozen
	Chilled
)

// Durations applied when an effect is added or refreshed, in seconds.
const (
	BurningDuration  = 10.0
	PoisonedDuration = 10.0
	FrozenDuration   = 10.0
	ChilledDuration  = 5.0
)

var typeNames = [...]string{
	None:     "None",
	Burning:  "Burning",
	Poisoned: "Poisoned",
	Frozen:   "Frozen",
	Chilled:  "Chilled",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(typeNames) {
		return nil, fmt.Errorf("effect: unknown type %d", int(t))
	}
	return []byte(typeNames[t]), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	for i, name := range typeNames {
		if name == string(text) {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("effect: unknown type %q", string(text))
}

// Active is one running condition. Remaining counts down to expiry and
// Running counts up from when the entry was created.
type Active struct {
	Type      Type
	Remaining float64
	Running   float64
}

// Add applies t to set using the interaction rules:
//
//	Poisoned replaces any Poisoned entry with a fresh one.
//	Burning on Frozen thaws to Chilled. Burning on Chilled is absorbed.
//	Frozen on Burning cools to Chilled. Frozen on Chilled replaces it.
//	Chilled on its own does nothing.
//
// Refreshing an entry that already exists resets only its Remaining time.
func Add(t Type, set *Set) {
	switch t {
	case None:
	case Poisoned:
		set.Remove(Poisoned)
		set.refresh(Poisoned, PoisonedDuration)
	case Burning:
		switch {
		case set.Remove(Frozen):
			set.refresh(Chilled, ChilledDuration)
		case set.Remove(Chilled):
		default:
			set.refresh(Burning, BurningDuration)
		}
	case Frozen:
		if set.Remove(Burning) {
			set.refresh(Chilled, ChilledDuration)
			return
		}
		set.Remove(Chilled)
		set.refresh(Frozen, FrozenDuration)
	case Chilled:
		// Chilled only comes from Burning and Frozen meeting.
	default:
		panic(fmt.Sprintf("effect: add of unknown type %d", int(t)))
	}
}

// Update advances a by dt and reports whether Running crossed a whole second
// boundary. A single call reports at most one boundary, however many seconds
// dt spans.
func Update(a *Active, dt float64) bool {
	old := a.Running
	a.Remaining -= dt
	a.Running += dt
	x := math.Ceil(old)
	return a.Running > x && old <= x
}

// RemoveExpired drops every entry whose Remaining is at or below zero.
func RemoveExpired(set *Set) {
	kept := set.entries[:0]
	for _, a := range set.entries {
		if a.Remaining > 0 {
			kept = append(kept, a)
		}
	}
	clear(set.entries[len(kept):])
	set.entries = kept
}

func mustNotBeNone(a Active, op string) {
	if a.Type == None {
		panic("effect: " + op + " called with None effect")
	}
}

// ApplyDamage adds one point for each damaging tick. Callers only invoke it
// on frames where Update returned true.
func ApplyDamage(a Active, d *DamageCount) {
	mustNotBeNone(a, "ApplyDamage")
	switch a.Type {
	case Burning, Poisoned:
		d.Add(1)
	}
}

// ApplySpeed sets the movement multiplier for slowing effects.
func ApplySpeed(a Active, s *MovementSpeed) {
	mustNotBeNone(a, "ApplySpeed")
	switch a.Type {
	case Chilled:
		s.SetMultiplier(0.5)
	case Frozen:
		s.SetMultiplier(0)
	}
}

// PulseColour derives a tint that pulses with the fractional part of the
// remaining time. Effects with no colour of their own report false.
func PulseColour(a Active) (color.NRGBA, bool) {
	mustNotBeNone(a, "PulseColour")

	var base color.NRGBA
	switch a.Type {
	case Burning:
		base = color.NRGBA{R: 255, A: 255}
	case Poisoned:
		base = color.NRGBA{G: 255, A: 255}
	case Frozen:
		base = color.NRGBA{B: 255, A: 255}
	default:
		return color.NRGBA{}, false
	}

	r := a.Remaining
	var s float64
	if math.Floor(r) > 0 {
		s = 255 * math.Abs(r-math.Round(r))
	} else {
		s = 255 * math.Abs(1-r)
	}
	v := uint8(math.Min(255, math.Max(0, s)))
	return color.NRGBA{
		R: max(base.R, v),
		G: max(base.G, v),
		B: max(base.B, v),
		A: 255,
	}, true
}
