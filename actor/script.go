package actor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/quarrel/behavior"
	"github.com/milk9111/quarrel/ecs/component"
	"gopkg.in/yaml.v3"
)

var ErrNoScript = errors.New("script: no path")

// scriptDispatch is appended to every script. Scripts define on_step and
// on_contact.
const scriptDispatch = `
if __phase == "step" {
	on_step(__engine, __state, __dt)
} else if __phase == "contact" {
	on_contact(__engine, __state, __other)
}
`

// Script runs a tengo script as a behavior. The script asks for
// transitions through the engine functions detach, destroy and become.
type Script struct {
	behavior.Base

	Path string

	registry *behavior.Registry
	load     func(path string) ([]byte, error)
	rt       *scriptRuntime
}

type scriptRuntime struct {
	compiled *tengo.Compiled
	state    *tengo.Map
	pending  *behavior.Transition
}

func (*Script) TypeName() string { return TypeScript }

func (s *Script) Step(ctx *behavior.Context, dt float64) behavior.Transition {
	return s.run(ctx, "step", dt, "")
}

func (s *Script) BeginContact(ctx *behavior.Context, c behavior.Contact) behavior.Transition {
	return s.run(ctx, "contact", 0, c.OtherTypeName)
}

// run executes one phase. A script that fails to load or run is detached.
func (s *Script) run(ctx *behavior.Context, phase string, dt float64, other string) behavior.Transition {
	log := ctx.Logger()
	rt, err := s.runtime()
	if err != nil {
		log.Error("script load failed", "path", s.Path, "err", err)
		return behavior.Detach()
	}

	rt.pending = nil
	engine := s.engine(ctx, rt)
	for name, value := range map[string]any{
		"__phase":  phase,
		"__engine": engine,
		"__state":  rt.state,
		"__dt":     dt,
		"__other":  other,
	} {
		if err := rt.compiled.Set(name, value); err != nil {
			log.Error("script set failed", "path", s.Path, "var", name, "err", err)
			return behavior.Detach()
		}
	}
	if err := rt.compiled.Run(); err != nil {
		log.Error("script run failed", "path", s.Path, "phase", phase, "err", err)
		return behavior.Detach()
	}

	if rt.pending == nil {
		return behavior.Continue()
	}
	return *rt.pending
}

func (s *Script) runtime() (*scriptRuntime, error) {
	if s.rt != nil {
		return s.rt, nil
	}
	if strings.TrimSpace(s.Path) == "" {
		return nil, ErrNoScript
	}
	if s.load == nil {
		return nil, fmt.Errorf("script: no loader for %q", s.Path)
	}
	src, err := s.load(s.Path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + scriptDispatch))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__dt", 0.0)
	_ = script.Add("__other", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	s.rt = &scriptRuntime{
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}
	return s.rt, nil
}

func (s *Script) engine(ctx *behavior.Context, rt *scriptRuntime) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}
	set := func(t behavior.Transition) {
		if rt.pending == nil {
			rt.pending = &t
		}
	}

	values["now"] = &tengo.UserFunction{Name: "now", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: ctx.Now}, nil
	}}

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		pos := ctx.Body.Position()
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: pos.X}, &tengo.Float{Value: pos.Y}}}, nil
	}}

	values["set_velocity"] = &tengo.UserFunction{Name: "set_velocity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		x, okX := tengo.ToFloat64(args[0])
		y, okY := tengo.ToFloat64(args[1])
		if !okX || !okY {
			return tengo.FalseValue, nil
		}
		ctx.Body.SetVelocity(cp.Vector{X: x, Y: y})
		return tengo.TrueValue, nil
	}}

	values["animate"] = &tengo.UserFunction{Name: "animate", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		name, _ := tengo.ToString(args[0])
		repeat := component.RepeatNever
		if len(args) > 1 && !args[1].IsFalsy() {
			repeat = component.RepeatForever
		}
		if !ctx.View.SetAnimation(name, repeat) {
			ctx.Logger().Warn("couldn't set animation", "clip", name)
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	values["sound"] = &tengo.UserFunction{Name: "sound", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		name, _ := tengo.ToString(args[0])
		ctx.View.PlaySound(name)
		return tengo.UndefinedValue, nil
	}}

	values["stop_sound"] = &tengo.UserFunction{Name: "stop_sound", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		name, _ := tengo.ToString(args[0])
		ctx.View.StopSound(name)
		return tengo.UndefinedValue, nil
	}}

	// set_filter(category, mask...) takes collision layer names.
	values["set_filter"] = &tengo.UserFunction{Name: "set_filter", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		var bits [2]uint
		for i, a := range args {
			name, _ := tengo.ToString(a)
			bit, ok := component.CategoryByName[name]
			if !ok {
				ctx.Logger().Warn("script asked for unknown category", "path", s.Path, "category", name)
				return tengo.FalseValue, nil
			}
			bits[min(i, 1)] |= bit
		}
		ctx.Body.SetFilter(bits[0], bits[1])
		return tengo.TrueValue, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			str, _ := tengo.ToString(a)
			parts = append(parts, str)
		}
		ctx.Logger().Debug("script", "path", s.Path, "msg", strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	values["detach"] = &tengo.UserFunction{Name: "detach", Value: func(args ...tengo.Object) (tengo.Object, error) {
		set(behavior.Detach())
		return tengo.TrueValue, nil
	}}

	values["destroy"] = &tengo.UserFunction{Name: "destroy", Value: func(args ...tengo.Object) (tengo.Object, error) {
		set(behavior.Destroy())
		return tengo.TrueValue, nil
	}}

	values["become"] = &tengo.UserFunction{Name: "become", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		name, _ := tengo.ToString(args[0])
		if s.registry == nil {
			ctx.Logger().Warn("script can't become another behavior without a registry", "next", name)
			return tengo.FalseValue, nil
		}
		next, err := s.registry.New(name)
		if err != nil {
			ctx.Logger().Warn("script asked for unknown behavior", "next", name, "err", err)
			return tengo.FalseValue, nil
		}
		set(behavior.Replace(next))
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

type scriptDoc struct {
	Path string `yaml:"path"`
}

func (s *Script) MarshalYAML() (any, error) {
	return scriptDoc{Path: s.Path}, nil
}

func (s *Script) Decode(node *yaml.Node) error {
	doc := scriptDoc{Path: s.Path}
	if err := node.Decode(&doc); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	if doc.Path != s.Path {
		s.rt = nil
	}
	s.Path = doc.Path
	return nil
}

func (s *Script) Inspector() behavior.Inspector {
	return behavior.NewFieldSet().Text("Script", &s.Path)
}
