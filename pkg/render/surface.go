// pkg/render/surface.go
package render

import (
	"go-space-invaders/pkg/geom"
	"image/color"
)

// Align — горизонтальное выравнивание текста относительно точки.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextOptions описывает стиль текста. Y в DrawText — базовая линия.
type TextOptions struct {
	Size         float64
	Align        Align
	Color        color.Color
	ShadowColor  color.Color // nil — без тени
	ShadowOffset float64
}

// Surface — всё, что нужно ядру от слоя отрисовки.
type Surface interface {
	FillRect(r geom.Rect, c color.Color)
	StrokeRect(r geom.Rect, c color.Color, width float32)
	DrawText(s string, x, y float64, opts TextOptions)
	// DrawSprite копирует кадр (col, row) размером cellW x cellH
	// из листа sheet в прямоугольник dst.
	DrawSprite(sheet string, col, row int, cellW, cellH float64, dst geom.Rect)
}

// Discard is a Surface that draws nothing.
var Discard Surface = discard{}

type discard struct{}

func (discard) FillRect(geom.Rect, color.Color) {}
func (discard) StrokeRect(geom.Rect, color.Color, float32) {}
func (discard) DrawText(string, float64, float64, TextOptions) {}
func (discard) DrawSprite(string, int, int, float64, float64, geom.Rect) {}
