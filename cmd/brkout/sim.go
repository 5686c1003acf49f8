// sim.go - Headless run driven by the autopilot
package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/drpaneas/brkout/config"
	"github.com/drpaneas/brkout/game"
	"github.com/drpaneas/brkout/render"
)

const simStep = 1.0 / 60

func simulate(cfg config.Config, src game.LevelSource, log *zap.Logger, frames int) error {
	audio := newLogAudio(log.Named("audio"))
	g, err := game.New(cfg.Simulation(), src,
		game.WithLogger(log.Named("game")),
		game.WithAudio(audio))
	if err != nil {
		return err
	}

	var rec render.Recorder
	wins := 0
	for i := 0; i < frames; i++ {
		before := g.State
		g.Tick(simStep, g.Autopilot())
		if g.State == game.StateWin && before != game.StateWin {
			wins++
		}
		rec.Reset()
		g.Render(&rec, &rec)
	}

	fields := append([]zap.Field{
		zap.Int("frames", frames),
		zap.Stringer("state", g.State),
		zap.Int("level", g.Level),
		zap.Int("remaining", g.CurrentLevel().Remaining()),
		zap.Int("wins", wins),
		zap.Int("sprites", len(rec.Sprites)),
	}, audio.fields()...)
	log.Info("Simulation finished", fields...)

	fmt.Printf("%d frames: level %d, %d bricks left, %d wins\n",
		frames, g.Level, g.CurrentLevel().Remaining(), wins)
	return nil
}
