package effect

import (
	"image/color"
	"math/rand"
	"testing"
)

func setOf(types ...Type) *Set {
	s := &Set{}
	for _, t := range types {
		Add(t, s)
	}
	return s
}

func TestAddInteractions(t *testing.T) {
	tests := []struct {
		name     string
		existing []Type
		add      Type
		want     []Type
		duration float64
	}{
		{"none_is_noop", []Type{Burning}, None, []Type{Burning}, BurningDuration},
		{"burning_on_empty", nil, Burning, []Type{Burning}, BurningDuration},
		{"burning_thaws_frozen", []Type{Frozen}, Burning, []Type{Chilled}, ChilledDuration},
		{"frozen_cools_burning", []Type{Burning}, Frozen, []Type{Chilled}, ChilledDuration},
		{"chilled_absorbs_burning", []Type{Frozen, Burning}, Burning, nil, 0},
		{"frozen_replaces_chilled", []Type{Frozen, Burning}, Frozen, []Type{Frozen}, FrozenDuration},
		{"poisoned_on_empty", nil, Poisoned, []Type{Poisoned}, PoisonedDuration},
		{"chilled_direct_is_noop", nil, Chilled, nil, 0},
		{"chilled_direct_keeps_others", []Type{Poisoned}, Chilled, []Type{Poisoned}, PoisonedDuration},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := setOf(tc.existing...)
			Add(tc.add, s)

			got := s.Types()
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
			if len(tc.want) == 1 {
				a, _ := s.Get(tc.want[0])
				if a.Remaining != tc.duration {
					t.Fatalf("expected remaining %v, got %v", tc.duration, a.Remaining)
				}
			}
		})
	}
}

func TestAddRefreshKeepsRunning(t *testing.T) {
	s := setOf(Burning)
	s.Each(func(a *Active) {
		a.Remaining = 2
		a.Running = 8
	})
	Add(Burning, s)

	a, _ := s.Get(Burning)
	if a.Remaining != BurningDuration || a.Running != 8 {
		t.Fatalf("refresh should reset only Remaining, got %+v", a)
	}
}

func TestAddChilledLeavesChilledAlone(t *testing.T) {
	s := setOf(Frozen, Burning)
	s.Each(func(a *Active) { a.Remaining = 1 })
	Add(Chilled, s)

	a, ok := s.Get(Chilled)
	if !ok || a.Remaining != 1 {
		t.Fatalf("direct chilled add should not refresh, got %+v %v", a, ok)
	}
}

func TestAddPoisonedReplacesEntry(t *testing.T) {
	s := setOf(Poisoned)
	s.Each(func(a *Active) {
		a.Remaining = 1
		a.Running = 9
	})
	Add(Poisoned, s)

	a, _ := s.Get(Poisoned)
	if a.Remaining != PoisonedDuration || a.Running != 0 {
		t.Fatalf("poisoned should start over, got %+v", a)
	}
}

func TestAddNeverDuplicatesOrHoldsNone(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	all := []Type{None, Burning, Poisoned, Frozen, Chilled}
	for run := 0; run < 200; run++ {
		s := &Set{}
		for i := 0; i < 30; i++ {
			Add(all[rng.Intn(len(all))], s)

			seen := map[Type]bool{}
			for _, typ := range s.Types() {
				if typ == None {
					t.Fatalf("run %d: set holds None", run)
				}
				if seen[typ] {
					t.Fatalf("run %d: duplicate %v in %v", run, typ, s.Types())
				}
				seen[typ] = true
			}
		}
	}
}

func TestUpdateTicksOncePerSecond(t *testing.T) {
	a := Active{Type: Burning, Remaining: BurningDuration}
	ticks := 0
	for i := 0; i < 170; i++ {
		if Update(&a, 1.0/60) {
			ticks++
		}
	}
	// Boundaries at 0, 1 and 2 seconds are crossed.
	if ticks != 3 {
		t.Fatalf("expected 3 ticks, got %d", ticks)
	}
}

func TestUpdateLargeStepFiresOnce(t *testing.T) {
	a := Active{Type: Burning, Remaining: BurningDuration, Running: 0.5}
	if !Update(&a, 3) {
		t.Fatalf("expected a tick when crossing several boundaries")
	}
	if a.Running != 3.5 || a.Remaining != BurningDuration-3 {
		t.Fatalf("unexpected timers %+v", a)
	}
	if Update(&a, 0.25) {
		t.Fatalf("no boundary crossed, expected no tick")
	}
}

func TestRemoveExpiredIdempotent(t *testing.T) {
	s := &Set{entries: []Active{
		{Type: Burning, Remaining: 1},
		{Type: Poisoned, Remaining: 0},
		{Type: Frozen, Remaining: -0.5},
		{Type: Chilled, Remaining: 0.01},
	}}
	RemoveExpired(s)
	want := []Active{{Type: Burning, Remaining: 1}, {Type: Chilled, Remaining: 0.01}}
	if len(s.entries) != len(want) || s.entries[0] != want[0] || s.entries[1] != want[1] {
		t.Fatalf("unexpected survivors %v", s.entries)
	}

	RemoveExpired(s)
	if len(s.entries) != len(want) || s.entries[0] != want[0] || s.entries[1] != want[1] {
		t.Fatalf("second purge changed the set: %v", s.entries)
	}
}

func TestApplyOnNonePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"damage", func() { ApplyDamage(Active{}, &DamageCount{Max: 1}) }},
		{"speed", func() { ApplySpeed(Active{}, &MovementSpeed{}) }},
		{"colour", func() { PulseColour(Active{}) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			tc.fn()
		})
	}
}

func TestApplySpeed(t *testing.T) {
	tests := []struct {
		typ  Type
		want float64
	}{
		{Chilled, 0.5},
		{Frozen, 0},
		{Burning, 1},
		{Poisoned, 1},
	}
	for _, tc := range tests {
		t.Run(tc.typ.String(), func(t *testing.T) {
			s := NewMovementSpeed(4)
			ApplySpeed(Active{Type: tc.typ}, &s)
			if s.Multiplier != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, s.Multiplier)
			}
		})
	}
}

func TestPulseColour(t *testing.T) {
	tests := []struct {
		name      string
		a         Active
		want      color.NRGBA
		hasColour bool
	}{
		{"burning_fraction", Active{Type: Burning, Remaining: 9.75}, color.NRGBA{255, 63, 63, 255}, true},
		{"poisoned_last_second", Active{Type: Poisoned, Remaining: 0.5}, color.NRGBA{127, 255, 127, 255}, true},
		{"frozen_whole", Active{Type: Frozen, Remaining: 3}, color.NRGBA{0, 0, 255, 255}, true},
		{"chilled_none", Active{Type: Chilled, Remaining: 3}, color.NRGBA{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PulseColour(tc.a)
			if ok != tc.hasColour || got != tc.want {
				t.Fatalf("expected %v/%v, got %v/%v", tc.want, tc.hasColour, got, ok)
			}
		})
	}
}

func TestTypeText(t *testing.T) {
	var typ Type
	if err := typ.UnmarshalText([]byte("Frozen")); err != nil || typ != Frozen {
		t.Fatalf("unexpected %v %v", typ, err)
	}
	if err := typ.UnmarshalText([]byte("Soggy")); err == nil {
		t.Fatalf("expected error for unknown name")
	}
	b, err := Chilled.MarshalText()
	if err != nil || string(b) != "Chilled" {
		t.Fatalf("unexpected %q %v", b, err)
	}
}

func TestDamageCount(t *testing.T) {
	d := NewDamageCount(10)
	d.Add(4)
	d.Remove(6)
	if d.Taken() != 0 {
		t.Fatalf("damage should clamp at zero, got %d", d.Taken())
	}
	d.Add(10)
	if !d.Exceeded() {
		t.Fatalf("expected exceeded at max")
	}
}
