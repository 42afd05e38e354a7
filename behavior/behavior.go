// Package behavior defines the pluggable per-entity logic that actors
// implement and the host component that drives it.
//
// A behavior never installs or removes itself. Every callback returns a
// Transition and the Host applies it after the callback has returned, so a
// replaced behavior cannot run again once it has asked to be replaced.
package behavior

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/quarrel/ecs"
	"gopkg.in/yaml.v3"
)

// Behavior is the capability set every actor provides.
type Behavior interface {
	// TypeName identifies the behavior to other behaviors and documents.
	TypeName() string
	Step(ctx *Context, dt float64) Transition
	BeginContact(ctx *Context, c Contact) Transition
	EndContact(ctx *Context, c Contact) Transition
	MarshalYAML() (any, error)
	Decode(node *yaml.Node) error
	// Inspector builds an editor adapter, or nil when the behavior has no
	// editable fields.
	Inspector() Inspector
}

// Contact describes one side of a begin or end contact. Self is the shape
// belonging to the receiving entity.
type Contact struct {
	Other           ecs.Entity
	Self            *cp.Shape
	OtherShape      *cp.Shape
	OtherCategories uint
	OtherTypeName   string
}

// Base supplies no-op defaults. Embed it and override what you need.
type Base struct{}

func (Base) Step(*Context, float64) Transition         { return Continue() }
func (Base) BeginContact(*Context, Contact) Transition { return Continue() }
func (Base) EndContact(*Context, Contact) Transition   { return Continue() }
func (Base) MarshalYAML() (any, error)                 { return map[string]any{}, nil }
func (Base) Decode(*yaml.Node) error                   { return nil }
func (Base) Inspector() Inspector                      { return nil }

type TransitionKind int

const (
	KindContinue TransitionKind = iota
	KindReplace
	KindDetach
	KindDestroy
)

func (k TransitionKind) String() string {
	switch k {
	case KindContinue:
		return "continue"
	case KindReplace:
		return "replace"
	case KindDetach:
		return "detach"
	case KindDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// Transition is what a callback asks the host to do once it returns.
type Transition struct {
	kind TransitionKind
	next Behavior
}

// Continue keeps the current behavior.
func Continue() Transition {
	return Transition{kind: KindContinue}
}

// Replace installs next in place of the caller.
func Replace(next Behavior) Transition {
	return Transition{kind: KindReplace, next: next}
}

// Detach removes the behavior and keeps the entity.
func Detach() Transition {
	return Transition{kind: KindDetach}
}

// Destroy removes the entity.
func Destroy() Transition {
	return Transition{kind: KindDestroy}
}

func (t Transition) Kind() TransitionKind {
	return t.kind
}

func (t Transition) Next() Behavior {
	return t.next
}
