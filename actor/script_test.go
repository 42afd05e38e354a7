package actor

import (
	"errors"
	"testing"

	"github.com/milk9111/quarrel/behavior"
	"github.com/milk9111/quarrel/ecs/component"
	"github.com/milk9111/quarrel/prefabs"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

const testBeacon = `
on_step := func(engine, state, dt) {
	if is_undefined(state.elapsed) {
		state.elapsed = 0.0
		engine.animate("glow", true)
	}
	state.elapsed += dt
	if state.elapsed >= 1 {
		engine.destroy()
	}
}

on_contact := func(engine, state, other) {
	if other == "Player" {
		engine.sound("chime")
		engine.set_filter("fire", "enemy", "player")
		engine.become("Fire")
	}
}
`

func loaderFor(src string) func(string) ([]byte, error) {
	return func(string) ([]byte, error) { return []byte(src), nil }
}

func TestScriptStepsKeepState(t *testing.T) {
	h := newHarness(t)
	h.view.EXPECT().SetAnimation("glow", component.RepeatForever).Return(true)

	s := &Script{Path: "beacon.tengo", load: loaderFor(testBeacon)}
	if tr := s.Step(h.ctx, 0.6); tr.Kind() != behavior.KindContinue {
		t.Fatalf("expected continue, got %v", tr.Kind())
	}
	if tr := s.Step(h.ctx, 0.6); tr.Kind() != behavior.KindDestroy {
		t.Fatalf("expected destroy once elapsed passes a second, got %v", tr.Kind())
	}
}

func TestScriptBecomesRegisteredBehavior(t *testing.T) {
	h := newHarness(t)
	h.view.EXPECT().PlaySound("chime")
	h.body.EXPECT().SetFilter(component.CategoryFire, component.CategoryEnemy|component.CategoryPlayer)

	s := &Script{Path: "beacon.tengo", load: loaderFor(testBeacon), registry: NewRegistry()}
	if tr := s.BeginContact(h.ctx, behavior.Contact{OtherTypeName: TypeEnemy}); tr.Kind() != behavior.KindContinue {
		t.Fatalf("enemy contact should be ignored, got %v", tr.Kind())
	}

	tr := s.BeginContact(h.ctx, behavior.Contact{OtherTypeName: TypePlayer})
	if tr.Kind() != behavior.KindReplace {
		t.Fatalf("expected replace, got %v", tr.Kind())
	}
	if _, ok := tr.Next().(*Fire); !ok {
		t.Fatalf("expected fire, got %T", tr.Next())
	}
}

func TestBeaconLightsAsFire(t *testing.T) {
	h := newHarness(t)
	gomock.InOrder(
		h.view.EXPECT().PlaySound("chime"),
		h.view.EXPECT().SetAnimation("fire", component.RepeatForever).Return(true),
		h.body.EXPECT().SetFilter(component.CategoryFire, component.CategoryEnemy|component.CategoryPlayer),
	)

	s := &Script{Path: "beacon.tengo", load: prefabs.LoadScript, registry: NewRegistry()}
	tr := s.BeginContact(h.ctx, behavior.Contact{OtherTypeName: TypePlayer})
	if tr.Kind() != behavior.KindReplace {
		t.Fatalf("expected replace, got %v", tr.Kind())
	}
	if _, ok := tr.Next().(*Fire); !ok {
		t.Fatalf("expected fire, got %T", tr.Next())
	}
}

func TestScriptSetFilter(t *testing.T) {
	tests := []struct {
		name   string
		call   string
		want   bool
		filter [2]uint
	}{
		{"fire", `engine.set_filter("fire", "enemy", "player")`, true, [2]uint{component.CategoryFire, component.CategoryEnemy | component.CategoryPlayer}},
		{"single_mask", `engine.set_filter("sensor", "player")`, true, [2]uint{component.CategorySensor, component.CategoryPlayer}},
		{"unknown", `engine.set_filter("lava", "player")`, false, [2]uint{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			if tc.want {
				h.body.EXPECT().SetFilter(tc.filter[0], tc.filter[1])
			}
			src := "on_step := func(engine, state, dt) { if !" + tc.call + " { engine.destroy() } }\n" +
				"on_contact := func(engine, state, other) {}\n"
			s := &Script{Path: "filter.tengo", load: loaderFor(src)}

			want := behavior.KindContinue
			if !tc.want {
				want = behavior.KindDestroy
			}
			if tr := s.Step(h.ctx, 0.1); tr.Kind() != want {
				t.Fatalf("expected %v, got %v", want, tr.Kind())
			}
		})
	}
}

func TestScriptFailuresDetach(t *testing.T) {
	tests := []struct {
		name string
		s    *Script
	}{
		{"no_path", &Script{load: loaderFor(testBeacon)}},
		{"load_error", &Script{Path: "gone.tengo", load: func(string) ([]byte, error) { return nil, errors.New("missing") }}},
		{"compile_error", &Script{Path: "bad.tengo", load: loaderFor("on_step := func(")}},
		{"runtime_error", &Script{Path: "boom.tengo", load: loaderFor(`
on_step := func(engine, state, dt) { engine.set_velocity(1) }
on_contact := func(engine, state, other) {}
`)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			if tr := tc.s.Step(h.ctx, 0.1); tr.Kind() != behavior.KindDetach {
				t.Fatalf("expected detach, got %v", tr.Kind())
			}
		})
	}
}

func TestScriptDocument(t *testing.T) {
	s := &Script{Path: "scripts/beacon.tengo"}
	doc, err := behavior.Encode(s)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var node yaml.Node
	if err := node.Encode(map[string]string{"path": "scripts/other.tengo"}); err != nil {
		t.Fatalf("encode node: %v", err)
	}
	loaded := &Script{}
	if err := loaded.Decode(&doc.Data); err != nil || loaded.Path != s.Path {
		t.Fatalf("round trip failed: %v %q", err, loaded.Path)
	}
	if err := loaded.Decode(&node); err != nil || loaded.Path != "scripts/other.tengo" {
		t.Fatalf("decode failed: %v %q", err, loaded.Path)
	}
}
