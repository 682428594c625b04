// Package rlsurface draws render.Surface calls with raylib.
package rlsurface

import (
	"fmt"
	"go-space-invaders/pkg/geom"
	"go-space-invaders/pkg/render"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	fontBaseSize  = 64  // шрифт растеризуется один раз и масштабируется
	baselineRatio = 0.8 // доля высоты строки над базовой линией
	textSpacing   = 1
)

// Surface реализует render.Surface для окна raylib.
// Создаётся после rl.InitWindow и освобождается через Close.
type Surface struct {
	textures map[string]rl.Texture2D
	font     rl.Font
}

var _ render.Surface = (*Surface)(nil)

// New загружает PNG-листы в текстуры и шрифт Go Regular.
func New(sheets map[string][]byte) (*Surface, error) {
	s := &Surface{textures: make(map[string]rl.Texture2D, len(sheets))}
	for name, data := range sheets {
		img := rl.LoadImageFromMemory(".png", data, int32(len(data)))
		if img == nil || img.Width == 0 {
			s.Close()
			return nil, fmt.Errorf("failed to decode sheet %s", name)
		}
		s.textures[name] = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
	}

	s.font = rl.LoadFontFromMemory(".ttf", goregular.TTF, fontBaseSize, nil)
	rl.SetTextureFilter(s.font.Texture, rl.FilterBilinear)
	return s, nil
}

// Close освобождает текстуры и шрифт.
func (s *Surface) Close() {
	for name, tex := range s.textures {
		rl.UnloadTexture(tex)
		delete(s.textures, name)
	}
	if s.font.Texture.ID != 0 {
		rl.UnloadFont(s.font)
		s.font = rl.Font{}
	}
}

func (s *Surface) FillRect(r geom.Rect, c color.Color) {
	rl.DrawRectangleRec(rect(r), toRL(c))
}

func (s *Surface) StrokeRect(r geom.Rect, c color.Color, width float32) {
	rl.DrawRectangleLinesEx(rect(r), width, toRL(c))
}

func (s *Surface) DrawText(str string, x, y float64, opts render.TextOptions) {
	size := float32(opts.Size)
	pos := rl.NewVector2(float32(x), float32(y)-size*baselineRatio)
	switch opts.Align {
	case render.AlignCenter:
		pos.X -= rl.MeasureTextEx(s.font, str, size, textSpacing).X / 2
	case render.AlignRight:
		pos.X -= rl.MeasureTextEx(s.font, str, size, textSpacing).X
	}

	if opts.ShadowColor != nil && opts.ShadowOffset != 0 {
		off := float32(opts.ShadowOffset)
		rl.DrawTextEx(s.font, str, rl.NewVector2(pos.X+off, pos.Y+off), size, textSpacing, toRL(opts.ShadowColor))
	}
	rl.DrawTextEx(s.font, str, pos, size, textSpacing, toRL(opts.Color))
}

func (s *Surface) DrawSprite(sheet string, col, row int, cellW, cellH float64, dst geom.Rect) {
	tex, ok := s.textures[sheet]
	if !ok {
		return
	}
	src := rl.NewRectangle(float32(float64(col)*cellW), float32(float64(row)*cellH), float32(cellW), float32(cellH))
	rl.DrawTexturePro(tex, src, rect(dst), rl.NewVector2(0, 0), 0, rl.White)
}

func rect(r geom.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}

func toRL(c color.Color) color.RGBA {
	r, g, b, a := render.RGBA8(c)
	return color.RGBA{R: r, G: g, B: b, A: a}
}
