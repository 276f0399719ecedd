package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/starship/internal/assets"
	"github.com/vovakirdan/starship/internal/config"
	"github.com/vovakirdan/starship/internal/core"
	"github.com/vovakirdan/starship/internal/games/starship"
	"github.com/vovakirdan/starship/internal/platform/tui"
	"github.com/vovakirdan/starship/internal/storage"
)

// loadConfig loads the game config and applies the --difficulty preset.
func loadConfig() (config.Config, config.DifficultyPreset, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.Config{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, preset, nil
}

// newLoader returns the texture source: assets.dir when set, else the
// built-in sprites.
func newLoader(cfg config.Config) (assets.Loader, error) {
	if !cfg.Assets.Enabled {
		return nil, nil
	}
	if cfg.Assets.Dir == "" {
		return assets.NewEmbeddedLoader(), nil
	}
	dir, err := expandHome(cfg.Assets.Dir)
	if err != nil {
		return nil, err
	}
	loader, err := assets.NewDirLoader(dir)
	if err != nil {
		return nil, err
	}
	return loader, nil
}

// openStore opens the scores database. A failure is reported and the game
// runs without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// terminalSize returns the current terminal size, or 80x24.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// session holds everything needed to start runs.
type session struct {
	cfg    config.Config
	preset config.DifficultyPreset
	loader assets.Loader
	store  *storage.Store
}

func newSession() (*session, error) {
	cfg, preset, err := loadConfig()
	if err != nil {
		return nil, err
	}
	loader, err := newLoader(cfg)
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:    cfg,
		preset: preset,
		loader: loader,
		store:  openStore(),
	}, nil
}

// play runs one game until the player quits or, with allowBack, returns to
// the menu.
func (s *session) play(allowBack bool) (tui.Result, error) {
	width, height := terminalSize()
	game := starship.New(s.cfg, s.loader)

	return tui.Run(game, tui.Options{
		Store:  s.store,
		Logger: logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Difficulty: string(s.preset),
		RunID:      runID,
		HoldTicks:  s.cfg.Controls.HoldTicks,
		AllowBack:  allowBack,
	})
}

// best returns the stored high score for the session's difficulty.
func (s *session) best() int {
	if s.store == nil {
		return 0
	}
	high, err := s.store.HighScore(string(s.preset))
	if err != nil {
		logger.Warn("cannot read high score", "err", err)
		return 0
	}
	return high
}

func (s *session) close() {
	if s.store != nil {
		s.store.Close()
	}
}
