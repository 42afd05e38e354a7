package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/quarrel/common"
	"github.com/milk9111/quarrel/ecs/component"
	"gopkg.in/yaml.v3"
)

var ErrUnknownCategory = errors.New("prefabs: unknown collision category")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// EntityBuildSpec is a prefab: a named bag of component documents keyed by
// component name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

type PhysicsBodyComponentSpec struct {
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
	Static bool    `yaml:"static"`
	Sensor bool    `yaml:"sensor"`
}

// CollisionLayerComponentSpec names categories rather than bits. An empty
// list leaves the component default in place.
type CollisionLayerComponentSpec struct {
	Category []string `yaml:"category"`
	Mask     []string `yaml:"mask"`
}

// Bits resolves the category and mask names.
func (s CollisionLayerComponentSpec) Bits() (category, mask uint, err error) {
	if category, err = categoryBits(s.Category); err != nil {
		return 0, 0, err
	}
	if mask, err = categoryBits(s.Mask); err != nil {
		return 0, 0, err
	}
	return category, mask, nil
}

func categoryBits(names []string) (uint, error) {
	var bits uint
	for _, name := range names {
		bit, ok := component.CategoryByName[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
		}
		bits |= bit
	}
	return bits, nil
}

type SpriteComponentSpec struct {
	Image  string          `yaml:"image"`
	Radius float64         `yaml:"radius"`
	Colour common.HexColor `yaml:"color"`
	Layer  int             `yaml:"layer"`
}

type AnimationClipSpec struct {
	Frames int     `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
}

type AnimationComponentSpec struct {
	Clips    map[string]AnimationClipSpec `yaml:"clips"`
	Current  string                       `yaml:"current"`
	Loop     bool                         `yaml:"loop"`
	QueueCap int                          `yaml:"queue_cap"`
}

type AudioClipSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type AudioComponentSpec struct {
	Clips []AudioClipSpec `yaml:"clips"`
}

type CameraComponentSpec struct {
	Height float64 `yaml:"height"`
	Zoom   float64 `yaml:"zoom"`
}
