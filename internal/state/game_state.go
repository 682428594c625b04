// internal/state/game_state.go
package state

import (
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/pkg/render"
)

// GameState — состояние игры. Переводит тики хоста в кадры игры:
// в Update передаёт нажатия и копит время, в Draw прогоняет один кадр.
type GameState struct {
	sm         *StateMachine
	game       interfaces.Game
	source     input.Source
	pendingMs  float64
	maxDeltaMs float64
}

func NewGameState(sm *StateMachine, game interfaces.Game, source input.Source, maxDeltaMs float64) *GameState {
	return &GameState{
		sm:         sm,
		game:       game,
		source:     source,
		maxDeltaMs: maxDeltaMs,
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

// Update принимает deltaTime в секундах.
func (g *GameState) Update(deltaTime float64) {
	for _, key := range g.source.JustPressed() {
		g.game.KeyDown(key)
	}
	for _, key := range g.source.JustReleased() {
		g.game.KeyUp(key)
	}
	g.pendingMs += deltaTime * 1000
}

func (g *GameState) Draw(surface render.Surface) {
	elapsed := g.pendingMs
	if elapsed > g.maxDeltaMs {
		elapsed = g.maxDeltaMs
	}
	g.pendingMs = 0
	g.game.Render(surface, elapsed)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
