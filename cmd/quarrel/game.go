package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/quarrel/actor"
	"github.com/milk9111/quarrel/behavior"
	"github.com/milk9111/quarrel/ecs"
	"github.com/milk9111/quarrel/ecs/component"
	"github.com/milk9111/quarrel/ecs/entity"
	"github.com/milk9111/quarrel/ecs/render"
	"github.com/milk9111/quarrel/ecs/system"
	"github.com/milk9111/quarrel/levels"
	"github.com/milk9111/quarrel/prefabs"
	"github.com/milk9111/quarrel/quiver"
	"golang.design/x/clipboard"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Config struct {
	Level string
	Debug bool
	Watch bool
}

type Game struct {
	cfg    Config
	log    *slog.Logger
	frames int

	registry *behavior.Registry
	library  quiver.Library

	world     *ecs.World
	scheduler *ecs.Scheduler
	levelName string

	renderer *render.Renderer
	audioCtx *audio.Context
	audio    *render.AudioSystem
	watcher  *prefabs.Watcher

	paused    bool
	pauseUI   *ebitenui.UI
	quit      bool
	clipboard bool
}

func NewGame(cfg Config) (*Game, error) {
	g := &Game{
		cfg:      cfg,
		log:      slog.Default(),
		registry: actor.NewRegistry(),
		renderer: render.NewRenderer(slog.Default()),
		audioCtx: audio.NewContext(render.SampleRate),
	}
	g.audio = render.NewAudioSystem(g.audioCtx, g.log)
	g.pauseUI = NewPauseUI(g)

	lib, err := prefabs.LoadLibrary()
	if err != nil {
		return nil, fmt.Errorf("load quarrel library: %w", err)
	}
	g.library = lib

	if err := g.loadLevel(cfg.Level); err != nil {
		return nil, err
	}

	if cfg.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			g.log.Warn("prefab watcher not started", "err", err)
		} else {
			g.watcher = w
		}
	}
	if cfg.Debug {
		if err := clipboard.Init(); err != nil {
			g.log.Warn("clipboard unavailable", "err", err)
		} else {
			g.clipboard = true
		}
	}
	return g, nil
}

// loadLevel replaces the world. Entities that fail to load are logged and
// left out; the level itself only fails if it can't be read.
func (g *Game) loadLevel(name string) error {
	lvl, err := levels.Load(name)
	if err != nil {
		return fmt.Errorf("load level %s: %w", name, err)
	}

	w := ecs.NewWorld()
	if err := entity.LoadLevelToWorld(w, lvl, g.registry); err != nil {
		return fmt.Errorf("load level %s: %w", name, err)
	}
	for _, err := range lvl.Errors {
		g.log.Warn("level entity problem", "level", name, "err", err)
	}

	physics := system.NewPhysicsSystem()
	g.world = w
	g.levelName = name
	g.scheduler = ecs.NewScheduler(
		physics,
		system.NewBehaviorSystem(physics, g.log),
		system.NewAnimationSystem(),
		g.audio,
	)
	g.applyLibrary()
	g.log.Info("level loaded", "level", name, "entities", len(w.Entities()))
	return nil
}

func (g *Game) applyLibrary() {
	ecs.ForEach(g.world, behavior.HostComponent.Kind(), func(_ ecs.Entity, h *behavior.Host) {
		if p, ok := h.Current.(*actor.Player); ok {
			p.SetLibrary(g.library)
		}
	})
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if _, in, ok := ecs.First(g.world, component.PlayerInputComponent.Kind()); ok {
		*in = readInput(ebitenKeys{})
	}
	g.scheduler.Update(g.world)

	g.handleEvents()
	g.handleReloads()
	if g.cfg.Debug {
		g.handleDebugKeys()
	}
	return nil
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	g.scheduler.SetPaused(paused)
}

func (g *Game) handleEvents() {
	for _, evt := range g.world.Events().Drain() {
		if evt.Type != ecs.EventLevelRequested {
			continue
		}
		name, _ := evt.Data.(string)
		if err := g.loadLevel(name); err != nil {
			g.log.Error("level change failed", "level", name, "err", err)
		}
		// The old world's remaining events belong to entities that are gone.
		return
	}
}

func (g *Game) handleReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.Warn("prefab watcher", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	if change.Kind == prefabs.ChangeSpec && prefabs.IsLibrary(change.Path) {
		lib, err := prefabs.LoadLibrary()
		if err != nil {
			g.log.Error("quarrel library reload failed", "err", err)
			return
		}
		g.library = lib
		g.applyLibrary()
		g.log.Info("quarrel library reloaded", "types", len(lib.Types))
		return
	}

	g.log.Info("prefab changed, reloading level", "path", change.Path)
	g.renderer.ResetImages()
	if err := g.loadLevel(g.levelName); err != nil {
		g.log.Error("level reload failed", "level", g.levelName, "err", err)
	}
}

func (g *Game) handleDebugKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		if err := g.saveLevel(); err != nil {
			g.log.Error("level save failed", "err", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF6):
		if err := g.copyLevel(); err != nil {
			g.log.Warn("level copy failed", "err", err)
		}
	}
}

func (g *Game) snapshot() (*levels.Level, error) {
	return entity.SnapshotLevel(g.world, g.levelName)
}

func (g *Game) saveLevel() error {
	lvl, err := g.snapshot()
	if err != nil {
		return err
	}
	path := "levels/" + g.levelName
	if err := levels.Save(path, lvl); err != nil {
		return err
	}
	g.log.Info("level saved", "path", path)
	return nil
}

func (g *Game) copyLevel() error {
	if !g.clipboard {
		return errors.New("clipboard not initialised")
	}
	lvl, err := g.snapshot()
	if err != nil {
		return err
	}
	data, err := lvl.Marshal()
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, data)
	g.log.Info("level copied to clipboard", "bytes", len(data))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)
	render.DrawHUD(g.world, screen)

	if g.cfg.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Level: %s", g.frames, ebiten.ActualFPS(), g.levelName))
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
