// Package rendertest provides a recording render.Surface for tests.
package rendertest

import (
	"go-space-invaders/pkg/geom"
	"go-space-invaders/pkg/render"
	"image/color"
)

// Kind — тип записанной операции.
type Kind int

const (
	Fill Kind = iota
	Stroke
	Text
	Sprite
)

// Op — одна записанная операция отрисовки.
type Op struct {
	Kind     Kind
	Rect     geom.Rect
	Color    color.Color
	Text     string
	X, Y     float64
	TextOpts render.TextOptions
	Sheet    string
	Col, Row int
	CellW    float64
	CellH    float64
}

// Recorder implements render.Surface and keeps every call in order.
type Recorder struct {
	Ops []Op
}

var _ render.Surface = (*Recorder)(nil)

func (r *Recorder) FillRect(rect geom.Rect, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: Fill, Rect: rect, Color: c})
}

func (r *Recorder) StrokeRect(rect geom.Rect, c color.Color, _ float32) {
	r.Ops = append(r.Ops, Op{Kind: Stroke, Rect: rect, Color: c})
}

func (r *Recorder) DrawText(s string, x, y float64, opts render.TextOptions) {
	r.Ops = append(r.Ops, Op{Kind: Text, Text: s, X: x, Y: y, TextOpts: opts})
}

func (r *Recorder) DrawSprite(sheet string, col, row int, cellW, cellH float64, dst geom.Rect) {
	r.Ops = append(r.Ops, Op{Kind: Sprite, Sheet: sheet, Col: col, Row: row, CellW: cellW, CellH: cellH, Rect: dst})
}

// Reset очищает запись.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Filter возвращает операции заданного типа.
func (r *Recorder) Filter(kind Kind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Sprites возвращает отрисовки листа sheet.
func (r *Recorder) Sprites(sheet string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == Sprite && op.Sheet == sheet {
			out = append(out, op)
		}
	}
	return out
}

// Texts возвращает все нарисованные строки.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == Text {
			out = append(out, op.Text)
		}
	}
	return out
}

// FillsWithColor возвращает заливки цветом c.
func (r *Recorder) FillsWithColor(c color.Color) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == Fill && op.Color == c {
			out = append(out, op)
		}
	}
	return out
}
