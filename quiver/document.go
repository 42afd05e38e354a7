package quiver

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/milk9111/quarrel/common"
	"gopkg.in/yaml.v3"
)

var (
	ErrTooManySlots = errors.New("quiver: too many slots")
	ErrNotSequence  = errors.New("quiver: document must be a sequence")
	ErrUnknownType  = errors.New("quiver: unknown quarrel type")
)

type quarrelTypeDoc struct {
	Name         string           `yaml:"name"`
	CooldownTime *float64         `yaml:"cooldownTime,omitempty"`
	Colour       *common.HexColor `yaml:"colour,omitempty"`
	Effect       BoltEffect       `yaml:"effect"`
}

func (t QuarrelType) MarshalYAML() (any, error) {
	cooldown := t.CooldownTime
	colour := common.HexColor(t.Colour)
	return quarrelTypeDoc{
		Name:         t.Name,
		CooldownTime: &cooldown,
		Colour:       &colour,
		Effect:       t.Effect,
	}, nil
}

// UnmarshalYAML fills in a missing cooldown with DefaultCooldown and a
// missing colour with white.
func (t *QuarrelType) UnmarshalYAML(value *yaml.Node) error {
	var doc quarrelTypeDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	*t = QuarrelType{
		Name:         doc.Name,
		CooldownTime: DefaultCooldown,
		Colour:       color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Effect:       doc.Effect,
	}
	if doc.CooldownTime != nil {
		t.CooldownTime = *doc.CooldownTime
	}
	if doc.Colour != nil {
		t.Colour = color.NRGBA(*doc.Colour)
	}
	return nil
}

type slotDoc struct {
	QuarrelType *QuarrelType `yaml:"quarrelType,omitempty"`
}

// MarshalYAML writes one entry per slot, `{}` for empty ones. Cooldown
// progress is not saved.
func (q Quiver) MarshalYAML() (any, error) {
	out := make([]slotDoc, MaxEquipped)
	for i, s := range q.Slots {
		if s == nil {
			continue
		}
		t := s.Type
		out[i].QuarrelType = &t
	}
	return out, nil
}

// UnmarshalYAML loads slots in order. Every loaded slot starts charged.
func (q *Quiver) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return ErrNotSequence
	}
	if len(value.Content) > MaxEquipped {
		return fmt.Errorf("%w: %d > %d", ErrTooManySlots, len(value.Content), MaxEquipped)
	}

	var loaded Quiver
	for i, node := range value.Content {
		var doc slotDoc
		if err := node.Decode(&doc); err != nil {
			return fmt.Errorf("quiver: slot %d: %w", i, err)
		}
		if doc.QuarrelType != nil {
			loaded.Equip(i, *doc.QuarrelType)
		}
	}
	*q = loaded
	return nil
}

// Library is the catalogue of quarrel types the player can equip.
type Library struct {
	Types []QuarrelType `yaml:"types"`
}

// Lookup finds a type by name.
func (l Library) Lookup(name string) (QuarrelType, bool) {
	for _, t := range l.Types {
		if t.Name == name {
			return t, true
		}
	}
	return QuarrelType{}, false
}

// EquipByName places the library type called name into slot.
func (l Library) EquipByName(q *Quiver, slot int, name string) error {
	t, ok := l.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	q.Equip(slot, t)
	return nil
}

// ParseLibrary decodes a library document.
func ParseLibrary(data []byte) (Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return Library{}, fmt.Errorf("quiver: parse library: %w", err)
	}
	return lib, nil
}
