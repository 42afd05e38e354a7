package render

import (
	"image/color"
	"log/slog"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/quarrel/ecs"
	"github.com/milk9111/quarrel/ecs/component"
)

var facingColour = color.NRGBA{R: 255, G: 255, B: 255, A: 160}

type Renderer struct {
	PixelsPerUnit float64

	camEntity ecs.Entity
	images    *imageCache
	log       *slog.Logger
}

func NewRenderer(log *slog.Logger) *Renderer {
	if log == nil {
		log = slog.Default()
	}
	return &Renderer{PixelsPerUnit: DefaultPixelsPerUnit, images: newImageCache(), log: log}
}

// ResetImages forgets cached sprite images so edited files are reloaded.
func (r *Renderer) ResetImages() {
	r.images.Reset()
}

// View returns the current camera view for a screen of the given size.
func (r *Renderer) View(w *ecs.World, width, height int) View {
	v := View{PixelsPerUnit: r.PixelsPerUnit, Width: width, Height: height, Camera: component.Camera{Zoom: 1}}
	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if e, _, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			r.camEntity = e
		}
	}
	if cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok {
		v.Camera = *cam
	}
	return v
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	b := screen.Bounds()
	view := r.View(w, b.Dx(), b.Dy())
	scale := view.scale()

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		si, _ := ecs.Get(w, entities[i], component.SpriteComponent.Kind())
		sj, _ := ecs.Get(w, entities[j], component.SpriteComponent.Kind())
		if si.Layer != sj.Layer {
			return si.Layer < sj.Layer
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if s.Radius <= 0 {
			continue
		}

		x, y := view.ToScreen(cp.Vector{X: t.X, Y: t.Y})
		radius := s.Radius * scale
		fill := Modulate(s.Colour, s.Tint)

		if s.Image != "" {
			if r.drawImage(screen, s, view, t, fill) {
				continue
			}
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), fill, true)

		facing := cp.Vector{X: t.X, Y: t.Y}.Add(cp.ForAngle(t.Rotation).Mult(s.Radius))
		fx, fy := view.ToScreen(facing)
		vector.StrokeLine(screen, float32(x), float32(y), float32(fx), float32(fy), 2, facingColour, true)
	}
}

func (r *Renderer) drawImage(screen *ebiten.Image, s *component.Sprite, view View, t *component.Transform, tint color.NRGBA) bool {
	img, fresh, err := r.images.get(s.Image)
	if err != nil {
		if fresh {
			r.log.Warn("sprite image unavailable", "image", s.Image, "err", err)
		}
		return false
	}

	bounds := img.Bounds()
	size := float64(max(bounds.Dx(), bounds.Dy()))
	if size == 0 {
		return false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	op.GeoM.Scale(2*s.Radius/size, 2*s.Radius/size)
	op.GeoM.Rotate(t.Rotation)
	op.GeoM.Translate(t.X, t.Y)
	op.GeoM.Concat(view.GeoM())
	op.ColorScale.ScaleWithColor(tint)
	screen.DrawImage(img, op)
	return true
}
