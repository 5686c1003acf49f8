// audio.go - Sound sink. No audio device is opened; plays are logged.
package main

import (
	"go.uber.org/zap"

	"github.com/drpaneas/brkout/game"
)

type logAudio struct {
	log    *zap.Logger
	played [game.NumSounds]int
}

func newLogAudio(log *zap.Logger) *logAudio {
	return &logAudio{log: log}
}

func (a *logAudio) Play(s game.Sound) {
	if s >= 0 && s < game.NumSounds {
		a.played[s]++
	}
	a.log.Debug("Play", zap.Stringer("sound", s))
}

// fields summarizes how often each sound played.
func (a *logAudio) fields() []zap.Field {
	return []zap.Field{
		zap.Int("bleep", a.played[game.SoundBleep]),
		zap.Int("solid", a.played[game.SoundSolid]),
		zap.Int("powerup", a.played[game.SoundPowerUp]),
		zap.Int("paddle", a.played[game.SoundPaddle]),
	}
}
