// internal/system/utils.go
package system

import "go-space-invaders/pkg/geom"

// Frame — общий контекст кадра. Передаётся системам явно вместо
// обратных ссылок на игру.
type Frame struct {
	// SpriteUpdate истинен не чаще раза в config.SpriteInterval мс:
	// в такие кадры сменяются кадры анимации и лучи наносят урон.
	SpriteUpdate bool
}

// CheckCollision проверяет пересечение двух прямоугольников.
func CheckCollision(a, b geom.Rect) bool {
	return a.Collides(b)
}
