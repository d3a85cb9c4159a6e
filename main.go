// Command snakeclaw runs a terminal Snake game: tcell for the screen
// and input, a pure simulation engine underneath, and a JSON-backed
// high-score table.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/lixenwraith/snakeclaw/audio"
	"github.com/lixenwraith/snakeclaw/constants"
	"github.com/lixenwraith/snakeclaw/engine"
	"github.com/lixenwraith/snakeclaw/render"
	"github.com/lixenwraith/snakeclaw/score"
)

func main() {
	cmd := &cli.Command{
		Name:  "snakeclaw",
		Usage: "terminal snake game",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "width",
				Value: constants.DefaultWidth,
				Usage: "playfield width in cells",
			},
			&cli.IntFlag{
				Name:  "height",
				Value: constants.DefaultHeight,
				Usage: "playfield height in cells",
			},
			&cli.StringFlag{
				Name:  "scores",
				Usage: "high score file path (default: user config dir)",
			},
			&cli.BoolFlag{
				Name:  "no-sound",
				Usage: "disable audio",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "write a debug log to snakeclaw.log",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := gameConfig{
				width:      int(cmd.Int("width")),
				height:     int(cmd.Int("height")),
				scorePath:  cmd.String("scores"),
				soundOff:   cmd.Bool("no-sound"),
				debugLog:   cmd.Bool("debug"),
			}
			return run(cfg)
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "snakeclaw: %v\n", err)
		os.Exit(1)
	}
}

type gameConfig struct {
	width     int
	height    int
	scorePath string
	soundOff  bool
	debugLog  bool
}

// newLogger returns a file-backed logger in debug mode and a no-op
// logger otherwise: the TUI owns the terminal, so nothing may write to
// stdout or stderr while the game runs.
func newLogger(debugLog bool) zerolog.Logger {
	if !debugLog {
		return zerolog.Nop()
	}
	f, err := os.OpenFile("snakeclaw.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger()
}

// defaultScorePath resolves the high-score file location, preferring the
// platform config dir and degrading to the working directory.
func defaultScorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "highscores.json"
	}
	return filepath.Join(dir, "snakeclaw", "highscores.json")
}

func run(cfg gameConfig) error {
	if cfg.width < 10 || cfg.height < 10 {
		return fmt.Errorf("playfield must be at least 10x10, got %dx%d", cfg.width, cfg.height)
	}
	if cfg.scorePath == "" {
		cfg.scorePath = defaultScorePath()
	}

	logger := newLogger(cfg.debugLog)
	store := score.NewStore(cfg.scorePath, logger)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	eng := engine.New(cfg.width, cfg.height, store, rng)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// The terminal must be restored before a panic message can be seen
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "snakeclaw crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	var sound *audio.Player
	if cfg.soundOff {
		sound = audio.Disabled()
	} else {
		sound = audio.NewPlayer(logger)
	}
	defer sound.Close()

	renderer := render.New(screen, cfg.width, cfg.height)
	logger.Info().
		Int("width", cfg.width).
		Int("height", cfg.height).
		Str("scores", cfg.scorePath).
		Msg("starting game loop")

	runLoop(screen, eng, renderer, sound)
	return nil
}
