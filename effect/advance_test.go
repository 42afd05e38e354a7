package effect

import (
	"image/color"
	"testing"
)

func TestAdvanceBurnsToDeath(t *testing.T) {
	set := setOf(Burning)
	damage := DamageCount{Damage: 90, Max: 100}

	for i := 0; i < 5; i++ {
		if Advance[int](set, nil, Target{Damage: &damage}, 1) {
			t.Fatalf("died early at tick %d with %d", i, damage.Damage)
		}
	}
	if damage.Damage != 95 {
		t.Fatalf("expected 95 after five ticks, got %d", damage.Damage)
	}

	damage.Add(10)
	if !Advance[int](set, nil, Target{Damage: &damage}, 1.0/60) {
		t.Fatalf("expected exceeded at %d", damage.Damage)
	}
}

func TestAdvanceSpeedResetsAfterExpiry(t *testing.T) {
	set := setOf(Frozen)
	speed := NewMovementSpeed(5)

	Advance[int](set, nil, Target{Speed: &speed}, 1)
	if speed.Get() != 0 {
		t.Fatalf("frozen should stop movement, got %v", speed.Get())
	}

	Advance[int](set, nil, Target{Speed: &speed}, FrozenDuration)
	if set.Has(Frozen) {
		t.Fatalf("frozen should have expired")
	}
	Advance[int](set, nil, Target{Speed: &speed}, 1)
	if speed.Get() != 5 {
		t.Fatalf("expected full speed, got %v", speed.Get())
	}
}

func TestAdvanceFireExposure(t *testing.T) {
	set := &Set{}
	fires := &FiresInContact[string]{}
	fires.Enter("campfire")
	fires.Enter("campfire")

	Advance(set, fires, Target{}, 0.5)
	a, ok := set.Get(Burning)
	if !ok {
		t.Fatalf("expected burning while in contact")
	}
	if a.Remaining != BurningDuration-0.5 {
		t.Fatalf("unexpected remaining %v", a.Remaining)
	}

	Advance(set, fires, Target{}, 0.5)
	a, _ = set.Get(Burning)
	if a.Remaining != BurningDuration-0.5 {
		t.Fatalf("contact should refresh burning each frame, got %v", a.Remaining)
	}

	fires.Leave("campfire")
	if fires.Len() != 0 {
		t.Fatalf("expected no sources after leave")
	}
	Advance(set, fires, Target{}, 0.5)
	a, _ = set.Get(Burning)
	if a.Remaining != BurningDuration-1 {
		t.Fatalf("burning should decay once out of contact, got %v", a.Remaining)
	}
}

func TestAdvanceTintsAndClears(t *testing.T) {
	set := setOf(Poisoned)
	var tints []color.NRGBA
	tint := func(c color.NRGBA) { tints = append(tints, c) }

	Advance[int](set, nil, Target{Tint: tint}, 0.5)
	if len(tints) != 1 || tints[0].G != 255 {
		t.Fatalf("expected one green pulse, got %v", tints)
	}

	Advance[int](set, nil, Target{Tint: tint}, PoisonedDuration)
	last := tints[len(tints)-1]
	if last != white {
		t.Fatalf("expected tint to reset to white once effects end, got %v", last)
	}
}

func TestFiresInContactPrune(t *testing.T) {
	fires := &FiresInContact[int]{}
	fires.Enter(1)
	fires.Enter(2)
	fires.Enter(3)

	fires.Prune(func(k int) bool { return k != 2 })
	if fires.Len() != 2 {
		t.Fatalf("expected two sources after prune, got %d", fires.Len())
	}

	fires.Prune(func(int) bool { return false })
	set := &Set{}
	fires.Apply(set)
	if set.Has(Burning) {
		t.Fatalf("no sources left, should not burn")
	}
}
