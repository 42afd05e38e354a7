// Package levels reads and writes world documents: which prefabs to place,
// where, and the saved state of each one's behavior.
package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/milk9111/quarrel/behavior"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

type Level struct {
	Name     string   `yaml:"name,omitempty"`
	Entities []Entity `yaml:"entities"`

	// Errors lists the entities that were placed without their behavior
	// when the level was last applied to a world.
	Errors []error `yaml:"-"`
}

// Entity is one placed prefab. Behavior overrides the prefab's own
// behavior document when set.
type Entity struct {
	ID       string        `yaml:"id"`
	Prefab   string        `yaml:"prefab"`
	X        float64       `yaml:"x"`
	Y        float64       `yaml:"y"`
	Rotation float64       `yaml:"rotation,omitempty"`
	Behavior *behavior.Doc `yaml:"behavior,omitempty"`
	// Detached marks an entity whose behavior let go of it. The prefab's
	// behavior is not attached on load.
	Detached bool          `yaml:"detached,omitempty"`
}

// Parse decodes a level and gives every entity without an id a fresh one.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	for i := range lvl.Entities {
		if lvl.Entities[i].Prefab == "" {
			return nil, fmt.Errorf("level entity %d: no prefab", i)
		}
		if lvl.Entities[i].ID == "" {
			lvl.Entities[i].ID = uuid.NewString()
		}
	}
	return &lvl, nil
}

// Load reads a level, preferring the copy on disk under levels/.
func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean)))
	if err != nil {
		data, err = LevelsFS.ReadFile(clean)
	}
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", clean, err)
	}
	return lvl, nil
}

func (l *Level) Marshal() ([]byte, error) {
	return yaml.Marshal(l)
}

// Save writes l to path.
func Save(path string, l *Level) error {
	data, err := l.Marshal()
	if err != nil {
		return fmt.Errorf("marshal level: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write level: %w", err)
	}
	return nil
}

func cleanLevelPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		return after
	}
	return s
}
