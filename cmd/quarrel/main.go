package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and debug keys")
	levelName := flag.String("level", "arena.yaml", "level name in levels/")
	watch := flag.Bool("watch", false, "reload prefabs and scripts from prefabs/ when they change")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("quarrel")

	game, err := NewGame(Config{Level: *levelName, Debug: *debug, Watch: *watch})
	if err != nil {
		slog.Error("couldn't start", "err", err)
		os.Exit(1)
	}

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		slog.Error("game exited", "err", err)
		os.Exit(1)
	}
}
