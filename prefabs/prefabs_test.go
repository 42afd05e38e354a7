package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/quarrel/ecs/component"
)

func TestEmbeddedPrefabsParse(t *testing.T) {
	entries, err := PrefabsFS.ReadDir(".")
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if name == LibraryFile {
			continue
		}
		t.Run(name, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if spec.Name == "" || len(spec.Components) == 0 {
				t.Fatalf("prefab %s is empty: %+v", name, spec)
			}
			if _, ok := spec.Components["transform"]; !ok {
				t.Fatalf("prefab %s has no transform", name)
			}
		})
	}
}

func TestDecodeComponentSpec(t *testing.T) {
	spec, err := LoadEntityBuildSpec("enemy.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	body, err := DecodeComponentSpec[PhysicsBodyComponentSpec](spec.Components["physics_body"])
	if err != nil {
		t.Fatalf("physics body: %v", err)
	}
	if body.Radius != 0.6 || body.Mass != 2 || body.Static {
		t.Fatalf("unexpected body %+v", body)
	}

	sprite, err := DecodeComponentSpec[SpriteComponentSpec](spec.Components["sprite"])
	if err != nil {
		t.Fatalf("sprite: %v", err)
	}
	if sprite.Colour.R != 0xc0 || sprite.Colour.A != 255 {
		t.Fatalf("unexpected colour %v", sprite.Colour)
	}

	anim, err := DecodeComponentSpec[AnimationComponentSpec](spec.Components["animation"])
	if err != nil {
		t.Fatalf("animation: %v", err)
	}
	if anim.Clips["awake"].Frames != 6 || anim.Current != "dormant" || !anim.Loop {
		t.Fatalf("unexpected animation %+v", anim)
	}

	missing, err := DecodeComponentSpec[CameraComponentSpec](nil)
	if err != nil || missing != (CameraComponentSpec{}) {
		t.Fatalf("nil component should decode to zero, got %+v %v", missing, err)
	}
}

func TestCollisionLayerBits(t *testing.T) {
	category, mask, err := CollisionLayerComponentSpec{
		Category: []string{"fire"},
		Mask:     []string{"enemy", "player"},
	}.Bits()
	if err != nil {
		t.Fatalf("bits: %v", err)
	}
	if category != component.CategoryFire || mask != component.CategoryEnemy|component.CategoryPlayer {
		t.Fatalf("unexpected bits %b %b", category, mask)
	}

	category, mask, err = CollisionLayerComponentSpec{}.Bits()
	if err != nil || category != 0 || mask != 0 {
		t.Fatalf("empty layer should resolve to zero, got %b %b %v", category, mask, err)
	}

	_, _, err = CollisionLayerComponentSpec{Mask: []string{"ghost"}}.Bits()
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected unknown category, got %v", err)
	}
}

func TestLoadLibrary(t *testing.T) {
	lib, err := LoadLibrary()
	if err != nil {
		t.Fatalf("load library: %v", err)
	}
	fire, ok := lib.Lookup("Fire")
	if !ok || fire.CooldownTime != 0.75 {
		t.Fatalf("unexpected fire quarrel %+v", fire)
	}
	venom, ok := lib.Lookup("Venom")
	if !ok || venom.CooldownTime != 0.5 {
		t.Fatalf("missing cooldown should default, got %+v", venom)
	}
	if !IsLibrary("prefabs/quarrels.yaml") || IsLibrary("prefabs/player.yaml") {
		t.Fatalf("library detection is wrong")
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"beacon.tengo", "scripts/beacon.tengo", "prefabs/scripts/beacon.tengo"} {
		t.Run(name, func(t *testing.T) {
			src, err := LoadScript(name)
			if err != nil {
				t.Fatalf("load %s: %v", name, err)
			}
			if len(src) == 0 {
				t.Fatalf("empty script")
			}
		})
	}
	if _, err := LoadScript("missing.tengo"); err == nil {
		t.Fatalf("expected missing script to fail")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		kind ChangeKind
		ok   bool
	}{
		{"prefabs/player.yaml", ChangeSpec, true},
		{"prefabs/legacy.YML", ChangeSpec, true},
		{"prefabs/scripts/beacon.tengo", ChangeScript, true},
		{"prefabs/notes.txt", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			kind, ok := classify(tt.path)
			if ok != tt.ok || kind != tt.kind {
				t.Fatalf("classify(%q) = %v %v", tt.path, kind, ok)
			}
		})
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "quarrels.yaml")
	if err := os.WriteFile(path, []byte("types: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-w.Events:
		if change.Path != path || change.Kind != ChangeSpec {
			t.Fatalf("unexpected change %+v", change)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no change reported")
	}
}
