package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/rangeslider/internal/config"
	game_log "github.com/ingyamilmolinar/rangeslider/internal/log"
	"github.com/ingyamilmolinar/rangeslider/internal/ui"
)

const defaultConfigPath = "rangeslider.toml"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("rangeslider", flag.ExitOnError)
	cfgPath := fs.String("config", defaultConfigPath, "path to the TOML config file")
	level := fs.String("log-level", "", "override log_level from the config (debug, info, error, none)")
	dump := fs.Bool("print-config", false, "print the effective config and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	if *level != "" {
		cfg.LogLevel = *level
	}
	if *dump {
		data, err := config.Encode(cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	logger := game_log.New(os.Stderr, game_log.LevelFromString(cfg.LogLevel))
	g, err := ui.New(cfg, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	logger.Infof("starting with %d sliders", len(cfg.Sliders))
	return ebiten.RunGame(g)
}

// loadConfig reads path, falling back to the built-in defaults when the
// default config file does not exist.
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) && path == defaultConfigPath {
		cfg = config.Default()
		return cfg, cfg.Validate()
	}
	return cfg, err
}
