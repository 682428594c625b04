// internal/app/listener.go
package app

import (
	"go-space-invaders/internal/event"

	"go.uber.org/zap"
)

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.EnemyKilled:
		data := e.Data.(event.EnemyKilledData)
		// После проигрыша очки не начисляются
		if !g.gameOver {
			g.Score += data.Points
		}
		g.logger().Debug("enemy killed",
			zap.String("enemy", data.EnemyID),
			zap.Int("points", data.Points),
			zap.Int("score", g.Score))
	case event.PlayerHit:
		data := e.Data.(event.PlayerHitData)
		g.logger().Debug("player hit",
			zap.String("enemy", data.EnemyID),
			zap.Int("lives", data.LivesAfter))
	case event.WaveSpawned:
		data := e.Data.(event.WaveData)
		g.logger().Info("wave spawned",
			zap.Int("wave", data.Number),
			zap.Int("columns", data.Columns),
			zap.Int("rows", data.Rows))
	case event.WaveCleared:
		data := e.Data.(event.WaveData)
		g.logger().Debug("wave cleared", zap.Int("wave", data.Number))
	case event.GameOver:
		data := e.Data.(event.GameOverData)
		g.logger().Info("game over",
			zap.String("reason", data.Reason),
			zap.Int("score", data.Score),
			zap.Int("wave", data.Wave))
	case event.GameRestarted:
		g.logger().Info("game restarted")
	}
}
