// Package quiver holds the player's equipped quarrel types and their
// per-slot cooldowns.
package quiver

import (
	"fmt"
	"image/color"

	"github.com/milk9111/quarrel/effect"
)

// MaxEquipped is the number of quiver slots.
const MaxEquipped = 3

// DefaultCooldown is used when a document omits cooldownTime.
const DefaultCooldown = 0.5

type SpecialEffect int

const (
	SpecialNone SpecialEffect = iota
	SpecialTeleport
)

var specialNames = [...]string{
	SpecialNone:     "None",
	SpecialTeleport: "Teleport",
}

func (s SpecialEffect) String() string {
	if s < 0 || int(s) >= len(specialNames) {
		return fmt.Sprintf("SpecialEffect(%d)", int(s))
	}
	return specialNames[s]
}

func (s SpecialEffect) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(specialNames) {
		return nil, fmt.Errorf("quiver: unknown special effect %d", int(s))
	}
	return []byte(specialNames[s]), nil
}

func (s *SpecialEffect) UnmarshalText(text []byte) error {
	for i, name := range specialNames {
		if name == string(text) {
			*s = SpecialEffect(i)
			return nil
		}
	}
	return fmt.Errorf("quiver: unknown special effect %q", string(text))
}

// BoltEffect is what a bolt does to whatever it hits.
type BoltEffect struct {
	ImmediateDamage int           `yaml:"immediateDamage"`
	AppliesEffect   effect.Type   `yaml:"appliesEffect"`
	SpecialEffect   SpecialEffect `yaml:"specialEffect"`
}

// QuarrelType describes one kind of ammunition. Bolts in flight carry a
// copy.
type QuarrelType struct {
	Name         string
	CooldownTime float64
	Colour       color.NRGBA
	Effect       BoltEffect
}

type Slot struct {
	Type              QuarrelType
	CooldownTime      float64
	CooldownRemaining float64
}

// CanTake reports whether the slot is equipped and charged.
func (s *Slot) CanTake() bool {
	return s != nil && s.CooldownRemaining <= 0
}

// CooldownRatio is the fraction of the cooldown still to run, 0 when ready.
func (s *Slot) CooldownRatio() float64 {
	if s == nil || s.CooldownTime <= 0 {
		return 0
	}
	return s.CooldownRemaining / s.CooldownTime
}

// Quiver is a fixed row of slots. A nil slot is unequipped.
type Quiver struct {
	Slots [MaxEquipped]*Slot
}

func checkSlot(slot int) {
	if slot < 0 || slot >= MaxEquipped {
		panic(fmt.Sprintf("quiver: slot %d out of range [0,%d)", slot, MaxEquipped))
	}
}

// Equip places t in slot, fully charged.
func (q *Quiver) Equip(slot int, t QuarrelType) {
	checkSlot(slot)
	q.Slots[slot] = &Slot{Type: t, CooldownTime: t.CooldownTime}
}

func (q *Quiver) Clear(slot int) {
	checkSlot(slot)
	q.Slots[slot] = nil
}

// Step decays every cooldown by dt, stopping at zero.
func (q *Quiver) Step(dt float64) {
	for _, s := range q.Slots {
		if s == nil {
			continue
		}
		s.CooldownRemaining = max(0, s.CooldownRemaining-dt)
	}
}

// Take returns the slot's type and starts its cooldown. It fails when the
// slot is empty or still cooling.
func Take(q *Quiver, slot int) (QuarrelType, bool) {
	checkSlot(slot)
	s := q.Slots[slot]
	if !s.CanTake() {
		return QuarrelType{}, false
	}
	return TakeWithCooldown(q, slot, s.Type.CooldownTime)
}

// TakeWithCooldown is Take with an explicit cooldown instead of the type's.
// A negative cooldown counts as zero.
func TakeWithCooldown(q *Quiver, slot int, cooldown float64) (QuarrelType, bool) {
	checkSlot(slot)
	s := q.Slots[slot]
	if !s.CanTake() {
		return QuarrelType{}, false
	}
	cooldown = max(0, cooldown)
	s.CooldownTime = cooldown
	s.CooldownRemaining = cooldown
	return s.Type, true
}

// PutBack refunds a shot: the first slot whose type has the same effect as
// t becomes ready again. Names and cooldowns are not compared.
func PutBack(q *Quiver, t QuarrelType) {
	for _, s := range q.Slots {
		if s != nil && s.Type.Effect == t.Effect {
			s.CooldownRemaining = 0
			return
		}
	}
}

// Default is the starter loadout: a plain bolt, a fire bolt and a
// teleport bolt.
func Default() Quiver {
	var q Quiver
	q.Equip(0, QuarrelType{
		Name:         "Bolt",
		CooldownTime: DefaultCooldown,
		Colour:       color.NRGBA{A: 255},
		Effect:       BoltEffect{ImmediateDamage: 5},
	})
	q.Equip(1, QuarrelType{
		Name:         "Fire",
		CooldownTime: DefaultCooldown,
		Colour:       color.NRGBA{R: 255, A: 255},
		Effect:       BoltEffect{ImmediateDamage: 1, AppliesEffect: effect.Burning},
	})
	q.Equip(2, QuarrelType{
		Name:         "Blink",
		CooldownTime: DefaultCooldown,
		Colour:       color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Effect:       BoltEffect{ImmediateDamage: 1, SpecialEffect: SpecialTeleport},
	})
	return q
}
