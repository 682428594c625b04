// cmd/game_raylib/input.go
package main

import (
	"go-space-invaders/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyMap = []struct {
	rl  int32
	key input.Key
}{
	{rl.KeyLeft, input.KeyLeft},
	{rl.KeyRight, input.KeyRight},
	{rl.KeyOne, input.KeyPrimary},
	{rl.KeyTwo, input.KeyLightBeam},
	{rl.KeyThree, input.KeyHeavyBeam},
	{rl.KeyR, input.KeyRestart},
}

// keySource опрашивает raylib по известным клавишам раз за кадр.
type keySource struct {
	out []input.Key
}

func (s *keySource) JustPressed() []input.Key {
	s.out = s.out[:0]
	for _, m := range keyMap {
		if rl.IsKeyPressed(m.rl) {
			s.out = append(s.out, m.key)
		}
	}
	return s.out
}

func (s *keySource) JustReleased() []input.Key {
	s.out = s.out[:0]
	for _, m := range keyMap {
		if rl.IsKeyReleased(m.rl) {
			s.out = append(s.out, m.key)
		}
	}
	return s.out
}
