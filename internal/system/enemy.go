// internal/system/enemy.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/pkg/render"
)

// EnemySystem отвечает за столкновения, урон и анимацию смерти врагов.
// Поведение вариантов задаётся их defs.EnemyDefinition.
type EnemySystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewEnemySystem(world *entity.World, eventDispatcher *event.Dispatcher) *EnemySystem {
	return &EnemySystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

// Update ставит врага на место в формации и обрабатывает попадания,
// таран корабля и анимацию смерти.
func (s *EnemySystem) Update(e *component.Enemy, originX, originY float64, frame Frame) {
	e.X = originX + e.OffsetX
	e.Y = originY + e.OffsetY

	// Снаряды
	pool := s.world.Projectiles
	for _, proj := range pool.All() {
		if !proj.Free && e.Alive() && CheckCollision(e.Rect, proj.Rect) {
			s.Hit(e, 1)
			pool.Release(proj)
		}
	}

	// Анимация смерти идёт только на тиках спрайтов
	if !e.Alive() && !e.MarkedForDeletion {
		if frame.SpriteUpdate {
			e.FrameX++
		}
		if e.FrameX > e.Def.MaxFrame {
			e.MarkedForDeletion = true
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyKilled,
				Data: event.EnemyKilledData{EnemyID: e.Def.ID, Points: e.Def.Points()},
			})
		}
	}

	// Таран: враг жертвует собой и отнимает жизнь
	player := s.world.Player
	if e.Alive() && CheckCollision(e.Rect, player.Rect) {
		e.Health = 0
		if player.Lives > 0 {
			player.Lives--
		}
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PlayerHit,
			Data: event.PlayerHitData{EnemyID: e.Def.ID, LivesAfter: player.Lives},
		})
	}
}

// Hit наносит урон и обновляет кадр по правилу варианта.
func (s *EnemySystem) Hit(e *component.Enemy, damage float64) {
	e.Health -= damage
	if frame, ok := e.Def.FrameForHealth(e.Health); ok {
		e.FrameX = frame
	}
}

func (s *EnemySystem) Draw(surface render.Surface, e *component.Enemy) {
	if e.MarkedForDeletion {
		return
	}
	surface.DrawSprite(e.Def.Sheet, e.FrameX, e.FrameY, e.W, e.H, e.Rect)
}

// BelowField сообщает, опустился ли враг ниже нижнего края поля.
func (s *EnemySystem) BelowField(e *component.Enemy) bool {
	return e.Bottom() > s.world.Height
}
