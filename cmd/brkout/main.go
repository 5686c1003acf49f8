// brkout - Breakout on a desktop window, or headless
package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/drpaneas/brkout/config"
	"github.com/drpaneas/brkout/game"
	"github.com/drpaneas/brkout/level"
	"github.com/drpaneas/brkout/logging"
)

const version = "0.1.0"

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

type command int

const (
	cmdPlay command = iota
	cmdSim
	cmdLevels
	cmdConfig
	cmdVersion
)

var commands = map[string]command{
	"play":    cmdPlay,
	"sim":     cmdSim,
	"levels":  cmdLevels,
	"config":  cmdConfig,
	"version": cmdVersion,
}

const usage = "brkout: play|sim [frames]|levels|config [init]|version"

// configPath honors BRKOUT_CONFIG before the per-user default.
func configPath() string {
	if p := os.Getenv("BRKOUT_CONFIG"); p != "" {
		return p
	}
	return config.Path()
}

func levelSource(cfg config.Config) (*level.Source, error) {
	if cfg.LevelsDir == "" {
		return level.Embedded(), nil
	}
	return level.Dir(cfg.LevelsDir)
}

func main() {
	cmd := cmdPlay
	if len(os.Args) > 1 {
		c, ok := commands[os.Args[1]]
		if !ok {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		cmd = c
	}

	path := configPath()
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.New(cfg.Log.Dev)
	defer log.Sync() //nolint:errcheck

	if err := run(cmd, path, cfg, log); err != nil {
		log.Error("brkout failed", zap.Stringer("command", cmd), zap.Error(err))
		log.Sync() //nolint:errcheck
		os.Exit(1)
	}
}

func (c command) String() string {
	for name, cmd := range commands {
		if cmd == c {
			return name
		}
	}
	return "unknown"
}

func run(cmd command, path string, cfg config.Config, log *zap.Logger) error {
	switch cmd {
	case cmdVersion:
		fmt.Println("brkout " + version)
		return nil
	case cmdConfig:
		if len(os.Args) > 2 && os.Args[2] == "init" {
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			log.Info("Config written", zap.String("path", path))
			return nil
		}
		fmt.Printf("# %s\n", path)
		return printConfig(cfg)
	}

	src, err := levelSource(cfg)
	if err != nil {
		return err
	}
	src.WithLogger(log.Named("level"))

	switch cmd {
	case cmdLevels:
		return listLevels(src, cfg.Simulation())
	case cmdSim:
		frames := 3600
		if len(os.Args) > 2 {
			n, err := strconv.Atoi(os.Args[2])
			if err != nil || n < 0 {
				return fmt.Errorf("frames %q: want a non-negative number", os.Args[2])
			}
			frames = n
		}
		return simulate(cfg, src, log, frames)
	case cmdPlay:
		return play(cfg, src, log)
	}
	return nil
}

func listLevels(src *level.Source, sim game.Config) error {
	for id := 0; id < src.Levels(); id++ {
		tiles, err := src.Tiles(id)
		if err != nil {
			return err
		}
		l := game.Level{Bricks: level.Build(tiles, sim.Width, sim.Height/2)}
		fmt.Printf("%d %-8s %2dx%-2d %3d bricks %3d breakable\n",
			id, src.Name(id), tiles.Cols(), tiles.Rows(), len(l.Bricks), l.Remaining())
	}
	return nil
}

func printConfig(cfg config.Config) error {
	return toml.NewEncoder(os.Stdout).Encode(cfg)
}
