// internal/component/enemy.go
package component

import (
	"go-space-invaders/internal/defs"
	"go-space-invaders/pkg/geom"
)

// Enemy представляет одного врага внутри формации.
type Enemy struct {
	geom.Rect
	OffsetX, OffsetY  float64 // смещение внутри формации
	Def               *defs.EnemyDefinition
	Health            float64
	FrameX, FrameY    int
	MarkedForDeletion bool
}

// Alive сообщает, осталось ли у врага здоровье.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}
