package behavior

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrUnknownField = errors.New("behavior: unknown field")

// Field is one editable value as shown in an inspector.
type Field struct {
	Name  string
	Value string
}

// Inspector exposes a behavior's editable settings as text.
type Inspector interface {
	Fields() []Field
	Set(name, value string) error
}

// FieldSet is an Inspector over string and float pointers owned by a
// behavior.
type FieldSet struct {
	names   []string
	strings map[string]*string
	floats  map[string]*float64
	bools   map[string]*bool
}

func NewFieldSet() *FieldSet {
	return &FieldSet{
		strings: map[string]*string{},
		floats:  map[string]*float64{},
		bools:   map[string]*bool{},
	}
}

func (f *FieldSet) Text(name string, p *string) *FieldSet {
	f.names = append(f.names, name)
	f.strings[name] = p
	return f
}

func (f *FieldSet) Float(name string, p *float64) *FieldSet {
	f.names = append(f.names, name)
	f.floats[name] = p
	return f
}

func (f *FieldSet) Bool(name string, p *bool) *FieldSet {
	f.names = append(f.names, name)
	f.bools[name] = p
	return f
}

func (f *FieldSet) Fields() []Field {
	out := make([]Field, 0, len(f.names))
	for _, name := range f.names {
		var v string
		switch {
		case f.strings[name] != nil:
			v = *f.strings[name]
		case f.floats[name] != nil:
			v = strconv.FormatFloat(*f.floats[name], 'g', -1, 64)
		case f.bools[name] != nil:
			v = strconv.FormatBool(*f.bools[name])
		}
		out = append(out, Field{Name: name, Value: v})
	}
	return out
}

func (f *FieldSet) Set(name, value string) error {
	if p, ok := f.strings[name]; ok {
		*p = value
		return nil
	}
	if p, ok := f.floats[name]; ok {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("behavior: field %s: %w", name, err)
		}
		*p = v
		return nil
	}
	if p, ok := f.bools[name]; ok {
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("behavior: field %s: %w", name, err)
		}
		*p = v
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownField, name)
}
