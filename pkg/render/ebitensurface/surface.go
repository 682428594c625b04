// Package ebitensurface draws render.Surface calls onto an ebiten image.
package ebitensurface

import (
	"bytes"
	"fmt"
	"go-space-invaders/pkg/geom"
	"go-space-invaders/pkg/render"
	"image"
	"image/color"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// Surface реализует render.Surface поверх *ebiten.Image.
// Перед каждым кадром цель задаётся через Bind.
type Surface struct {
	target *ebiten.Image
	sheets map[string]*ebiten.Image
	font   *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

var _ render.Surface = (*Surface)(nil)

// New декодирует PNG-листы и загружает шрифт.
func New(sheets map[string][]byte) (*Surface, error) {
	s := &Surface{
		sheets: make(map[string]*ebiten.Image, len(sheets)),
		faces:  make(map[float64]*text.GoTextFace),
	}
	for name, data := range sheets {
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode sheet %s: %w", name, err)
		}
		s.sheets[name] = ebiten.NewImageFromImage(img)
	}

	font, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	s.font = font
	return s, nil
}

// Bind задаёт изображение, на котором рисуется кадр.
func (s *Surface) Bind(target *ebiten.Image) {
	s.target = target
}

func (s *Surface) FillRect(r geom.Rect, c color.Color) {
	vector.DrawFilledRect(s.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s *Surface) StrokeRect(r geom.Rect, c color.Color, width float32) {
	vector.StrokeRect(s.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, c, false)
}

func (s *Surface) DrawText(str string, x, y float64, opts render.TextOptions) {
	face := s.face(opts.Size)
	// y — базовая линия, а text.Draw ждёт верх строки
	top := y - face.Metrics().HAscent

	if opts.ShadowColor != nil && opts.ShadowOffset != 0 {
		s.drawText(str, face, x+opts.ShadowOffset, top+opts.ShadowOffset, opts.Align, opts.ShadowColor)
	}
	s.drawText(str, face, x, top, opts.Align, opts.Color)
}

func (s *Surface) drawText(str string, face *text.GoTextFace, x, y float64, align render.Align, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	switch align {
	case render.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case render.AlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	text.Draw(s.target, str, face, op)
}

// face кэширует начертания по размеру, размеров в игре всего три.
func (s *Surface) face(size float64) *text.GoTextFace {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: s.font, Size: size}
	s.faces[size] = f
	return f
}

func (s *Surface) DrawSprite(sheet string, col, row int, cellW, cellH float64, dst geom.Rect) {
	img, ok := s.sheets[sheet]
	if !ok {
		return
	}
	x0, y0 := int(float64(col)*cellW), int(float64(row)*cellH)
	src := image.Rect(x0, y0, x0+int(cellW), y0+int(cellH))
	frame := img.SubImage(src).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/cellW, dst.H/cellH)
	op.GeoM.Translate(dst.X, dst.Y)
	s.target.DrawImage(frame, op)
}
