// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-survivors/internal/app"
	"go-survivors/internal/assets"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/event"
	"go-survivors/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "config/game.toml", "path to the TOML config")
	seed := flag.Int64("seed", 0, "spawn RNG seed, 0 for time based (overrides config)")
	table := flag.String("table", "", "spawn table name (overrides config)")
	debug := flag.Bool("debug", false, "debug logging")
	menu := flag.Bool("menu", false, "start on the title screen")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Spawn.Seed = *seed
	}
	if *table != "" {
		cfg.Spawn.Table = *table
	}
	if *debug {
		cfg.Logging.Level = "debug"
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(cfg, logger, *menu, *pprofAddr); err != nil {
		logger.Error("game exited", zap.Error(err))
		os.Exit(1)
	}
}

// loadConfig reads path, falling back to the defaults when the file does
// not exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

func run(cfg *config.Config, logger *zap.Logger, startFromMenu bool, pprofAddr string) error {
	if pprofAddr != "" {
		go func() {
			logger.Info("pprof listening", zap.String("addr", pprofAddr))
			if err := http.ListenAndServe(pprofAddr, nil); err != nil {
				logger.Warn("pprof stopped", zap.Error(err))
			}
		}()
	}

	defs.SetDataDir(cfg.Data.Dir)
	registry, err := defs.LoadRegistry(logger)
	if err != nil {
		return fmt.Errorf("load enemy templates: %w", err)
	}
	spawnTable, err := defs.LoadSpawnTable(cfg.Spawn.Table)
	if err != nil {
		return fmt.Errorf("load spawn table: %w", err)
	}
	logger.Info("spawn table loaded",
		zap.String("table", spawnTable.Name),
		zap.Int("stages", spawnTable.Len()))

	opts, err := app.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	opts.Registry = registry
	opts.Table = spawnTable

	var watcher *defs.Watcher
	if cfg.Data.Watch {
		watcher, err = defs.NewWatcher(cfg.Data.Dir)
		if err != nil {
			logger.Warn("data hot reload disabled", zap.String("dir", cfg.Data.Dir), zap.Error(err))
			watcher = nil
		} else {
			defer watcher.Close()
			go func() {
				for err := range watcher.Errors {
					logger.Warn("data watcher", zap.Error(err))
				}
			}()
		}
	}

	ctx := &state.Context{
		Options:      opts,
		TableName:    cfg.Spawn.Table,
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Assets:       assets.NewLibrary(cfg.Data.AssetsDir, logger),
		Watcher:      watcher,
		Dispatcher:   event.NewDispatcher(),
		Face:         basicfont.Face7x13,
		Logger:       logger,
	}

	sm := state.NewStateMachine()
	if startFromMenu {
		sm.SetState(state.NewMenuState(sm, ctx))
	} else {
		sm.SetState(state.NewGameState(sm, ctx))
	}

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          cfg.Window.Width,
		height:         cfg.Window.Height,
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	return ebiten.RunGame(game)
}
