// cmd/game_raylib/main.go
package main

import (
	"flag"
	"go-space-invaders/internal/app"
	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/logger"
	"go-space-invaders/internal/state"
	"go-space-invaders/pkg/render/rlsurface"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

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

	// --- Инициализация Raylib ---
	width := int32(config.FieldWidth * settings.Scale)
	height := int32(config.FieldHeight * settings.Scale)
	rl.InitWindow(width, height, settings.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(settings.TPS))

	surface, err := rlsurface.New(sheets)
	if err != nil {
		logg.Fatal("failed to prepare sprites", zap.Error(err))
	}
	defer surface.Close()

	// --- Инициализация игры ---
	game := app.NewGame(lib, settings.Seed, logg)
	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, game, &keySource{}, settings.MaxDeltaMs))

	camera := rl.Camera2D{Zoom: float32(settings.Scale)}

	logg.Info("starting",
		zap.String("backend", "raylib"),
		zap.Int64("seed", settings.Seed),
		zap.Stringer("run_id", game.RunID))

	lastUpdateTime := time.Now()
	// --- Главный цикл игры ---
	for !rl.WindowShouldClose() {
		now := time.Now()
		deltaTime := now.Sub(lastUpdateTime).Seconds()
		lastUpdateTime = now

		sm.Update(deltaTime)

		rl.BeginDrawing()
		rl.ClearBackground(config.BackgroundColor)
		rl.BeginMode2D(camera)
		sm.Draw(surface)
		rl.EndMode2D()
		rl.EndDrawing()
	}
}

