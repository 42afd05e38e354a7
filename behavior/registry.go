package behavior

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

var ErrUnknownBehavior = errors.New("behavior: unknown type")

// Factory makes a behavior with default settings.
type Factory func() Behavior

// Registry maps type names to factories for document loading.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory. Registering the same name twice panics.
func (r *Registry) Register(name string, f Factory) {
	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("behavior: %q registered twice", name))
	}
	r.factories[name] = f
}

func (r *Registry) New(name string) (Behavior, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBehavior, name)
	}
	return f(), nil
}

func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Doc is the stored form of a behavior: its type name plus whatever its
// MarshalYAML produced.
type Doc struct {
	Type string    `yaml:"type"`
	Data yaml.Node `yaml:"data,omitempty"`
}

// Encode captures b as a Doc.
func Encode(b Behavior) (Doc, error) {
	data, err := b.MarshalYAML()
	if err != nil {
		return Doc{}, fmt.Errorf("behavior: encode %s: %w", b.TypeName(), err)
	}
	doc := Doc{Type: b.TypeName()}
	if err := doc.Data.Encode(data); err != nil {
		return Doc{}, fmt.Errorf("behavior: encode %s: %w", b.TypeName(), err)
	}
	return doc, nil
}

// Decode builds a behavior from doc. An empty Data node leaves the factory
// defaults in place.
func (r *Registry) Decode(doc Doc) (Behavior, error) {
	b, err := r.New(doc.Type)
	if err != nil {
		return nil, err
	}
	if doc.Data.Kind == 0 {
		return b, nil
	}
	if err := b.Decode(&doc.Data); err != nil {
		return nil, fmt.Errorf("behavior: decode %s: %w", doc.Type, err)
	}
	return b, nil
}
