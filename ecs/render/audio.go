package render

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/quarrel/assets"
	"github.com/milk9111/quarrel/ecs"
	"github.com/milk9111/quarrel/ecs/component"
)

// SampleRate is the rate every sound is decoded at.
const SampleRate = 44100

// AudioSystem turns the play and stop flags on Audio components into
// ebiten players. Players are shared per file. With no context the flags
// are still cleared, which keeps headless runs quiet.
type AudioSystem struct {
	ctx     *audio.Context
	players map[string]*audio.Player
	failed  map[string]bool
	log     *slog.Logger
}

func NewAudioSystem(ctx *audio.Context, log *slog.Logger) *AudioSystem {
	if log == nil {
		log = slog.Default()
	}
	return &AudioSystem{
		ctx:     ctx,
		players: make(map[string]*audio.Player),
		failed:  make(map[string]bool),
		log:     log,
	}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		for i := range audioComp.Play {
			if !audioComp.Play[i] {
				continue
			}
			audioComp.Play[i] = false

			player := a.player(audioComp, i)
			if player == nil {
				continue
			}
			if i < len(audioComp.Volume) {
				player.SetVolume(audioComp.Volume[i])
			}
			if err := player.Rewind(); err != nil {
				a.log.Warn("couldn't rewind sound", "sound", audioComp.Names[i], "err", err)
			}
			player.Play()
		}

		for i := range audioComp.Stop {
			if !audioComp.Stop[i] {
				continue
			}
			audioComp.Stop[i] = false

			if i < len(audioComp.Files) {
				if player := a.players[audioComp.Files[i]]; player != nil && player.IsPlaying() {
					player.Pause()
				}
			}
		}
	})
}

func (a *AudioSystem) player(audioComp *component.Audio, i int) *audio.Player {
	if a.ctx == nil || i >= len(audioComp.Files) {
		return nil
	}
	file := audioComp.Files[i]
	if player := a.players[file]; player != nil {
		return player
	}
	if a.failed[file] {
		return nil
	}

	stream, err := assets.LoadSound(file, a.ctx.SampleRate())
	if err == nil {
		var player *audio.Player
		if player, err = a.ctx.NewPlayer(stream); err == nil {
			a.players[file] = player
			return player
		}
	}
	a.failed[file] = true
	a.log.Warn("couldn't load sound", "sound", audioComp.Names[i], "file", file, "err", err)
	return nil
}
