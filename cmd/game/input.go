// cmd/game/input.go
package main

import (
	"go-space-invaders/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyDigit1:     input.KeyPrimary,
	ebiten.KeyDigit2:     input.KeyLightBeam,
	ebiten.KeyDigit3:     input.KeyHeavyBeam,
	ebiten.KeyR:          input.KeyRestart,
}

// keySource переводит клавиши ebiten в input.Key. Клавиши вне keyMap
// тоже передаются: любое нажатие блокирует повторный выстрел.
type keySource struct {
	buf []ebiten.Key
	out []input.Key
}

func newKeySource() *keySource {
	return &keySource{}
}

func (s *keySource) JustPressed() []input.Key {
	s.buf = inpututil.AppendJustPressedKeys(s.buf[:0])
	return s.translate()
}

func (s *keySource) JustReleased() []input.Key {
	s.buf = inpututil.AppendJustReleasedKeys(s.buf[:0])
	return s.translate()
}

func (s *keySource) translate() []input.Key {
	s.out = s.out[:0]
	for _, k := range s.buf {
		if key, ok := keyMap[k]; ok {
			s.out = append(s.out, key)
		} else {
			s.out = append(s.out, input.Key(k.String()))
		}
	}
	return s.out
}
