package interfaces

import (
	"go-space-invaders/internal/input"
	"go-space-invaders/pkg/render"
)

// Game — то, чем управляет хост: переходы клавиш и покадровый проход.
type Game interface {
	KeyDown(key input.Key)
	KeyUp(key input.Key)
	Render(surface render.Surface, elapsedMs float64)
}
