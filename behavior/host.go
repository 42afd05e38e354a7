package behavior

import "github.com/milk9111/quarrel/ecs/component"

// Host owns an entity's current behavior. A host with no behavior ignores
// every event.
type Host struct {
	Current Behavior

	attached Behavior
}

// Attacher is implemented by behaviors that set up their entity (sensors,
// filters, clips) the first time they receive a callback.
type Attacher interface {
	Attach(ctx *Context)
}

var HostComponent = component.NewComponent[Host]()

// Outcome reports what the caller must do to the entity after a callback.
type Outcome struct {
	Kind TransitionKind
	// DestroyEntity is set when the behavior asked for the entity to go.
	DestroyEntity bool
}

func (h *Host) Step(ctx *Context, dt float64) Outcome {
	if h.Current == nil {
		return Outcome{Kind: KindContinue}
	}
	h.attach(ctx)
	return h.apply(ctx, h.Current.Step(ctx, dt))
}

func (h *Host) BeginContact(ctx *Context, c Contact) Outcome {
	if h.Current == nil {
		return Outcome{Kind: KindContinue}
	}
	h.attach(ctx)
	return h.apply(ctx, h.Current.BeginContact(ctx, c))
}

func (h *Host) EndContact(ctx *Context, c Contact) Outcome {
	if h.Current == nil {
		return Outcome{Kind: KindContinue}
	}
	h.attach(ctx)
	return h.apply(ctx, h.Current.EndContact(ctx, c))
}

func (h *Host) attach(ctx *Context) {
	if h.attached == h.Current {
		return
	}
	h.attached = h.Current
	if a, ok := h.Current.(Attacher); ok {
		a.Attach(ctx)
	}
}

// TypeName reports the current behavior's name, or "" when empty.
func (h *Host) TypeName() string {
	if h == nil || h.Current == nil {
		return ""
	}
	return h.Current.TypeName()
}

func (h *Host) apply(ctx *Context, t Transition) Outcome {
	switch t.kind {
	case KindReplace:
		if t.next == nil {
			ctx.Logger().Warn("behavior replaced with nil, detaching", "behavior", h.Current.TypeName())
			h.Current = nil
			return Outcome{Kind: KindDetach}
		}
		ctx.Logger().Debug("behavior replaced", "behavior", h.Current.TypeName(), "next", t.next.TypeName())
		h.Current = t.next
	case KindDetach:
		ctx.Logger().Debug("behavior detached", "behavior", h.Current.TypeName())
		h.Current = nil
	case KindDestroy:
		h.Current = nil
		return Outcome{Kind: KindDestroy, DestroyEntity: true}
	}
	return Outcome{Kind: t.kind}
}
