// cmd/game/main.go
package main

import (
	"flag"
	"go-space-invaders/internal/app"
	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/logger"
	"go-space-invaders/internal/state"
	"go-space-invaders/pkg/render/ebitensurface"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	surface        *ebitensurface.Surface
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	a.surface.Bind(screen)
	a.stateMachine.Draw(a.surface)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.FieldWidth, config.FieldHeight
}

func main() {
	configPath := flag.String("config", "", "Path to a .yaml or .toml settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	logg, err := logger.New(settings.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logg.Sync()

	if settings.PprofAddr != "" {
		go func() {
			logg.Warn("pprof server stopped", zap.Error(http.ListenAndServe(settings.PprofAddr, nil)))
		}()
	}

	// --- Загрузка определений и спрайтов ---
	lib, err := defs.LoadDir(settings.DefsDir)
	if err != nil {
		logg.Fatal("failed to load definitions", zap.Error(err))
	}
	sheets, err := assets.Load(settings.AssetsDir, assets.Requirements(lib))
	if err != nil {
		logg.Fatal("failed to load sprites", zap.Error(err))
	}
	surface, err := ebitensurface.New(sheets)
	if err != nil {
		logg.Fatal("failed to prepare sprites", zap.Error(err))
	}

	// --- Инициализация игры ---
	game := app.NewGame(lib, settings.Seed, logg)
	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, game, newKeySource(), settings.MaxDeltaMs))

	appGame := &AppGame{
		stateMachine:   sm,
		surface:        surface,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(int(config.FieldWidth*settings.Scale), int(config.FieldHeight*settings.Scale))
	ebiten.SetWindowTitle(settings.Title)
	ebiten.SetTPS(settings.TPS)

	logg.Info("starting",
		zap.String("backend", "ebiten"),
		zap.Int64("seed", settings.Seed),
		zap.Stringer("run_id", game.RunID))
	if err := ebiten.RunGame(appGame); err != nil {
		logg.Fatal("game loop failed", zap.Error(err))
	}
}
