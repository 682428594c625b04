package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/input"
	"go-space-invaders/pkg/render/rendertest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerSystem_EnergyStaysInBounds(t *testing.T) {
	f := newFixture(t)
	keys := input.NewKeySet()
	p := f.world.Player

	p.Energy = 99.99
	f.player.Update(keys)
	assert.Equal(t, 100.0, p.Energy)

	f.player.Update(keys)
	assert.Equal(t, 100.0, p.Energy)

	p.Energy = -3
	f.player.Update(keys)
	assert.GreaterOrEqual(t, p.Energy, 0.0)
}

func TestPlayerSystem_CoolDownHysteresis(t *testing.T) {
	f := newFixture(t)
	keys := input.NewKeySet()
	p := f.world.Player

	p.Energy = 0.5
	f.player.Update(keys)
	require.True(t, p.CoolDown)

	// между 1 и 20 перегрев держится
	p.Energy = 10
	f.player.Update(keys)
	assert.True(t, p.CoolDown)
	p.Energy = 19.9
	f.player.Update(keys)
	assert.True(t, p.CoolDown)

	p.Energy = 20
	f.player.Update(keys)
	assert.False(t, p.CoolDown)

	// и не включается обратно, пока энергия не упадёт ниже 1
	p.Energy = 5
	f.player.Update(keys)
	assert.False(t, p.CoolDown)
}

func TestPlayerSystem_MovementAndJets(t *testing.T) {
	f := newFixture(t)
	keys := input.NewKeySet()
	p := f.world.Player

	keys.Press(input.KeyLeft)
	f.player.Update(keys)
	assert.Equal(t, 225.0, p.X)
	assert.Equal(t, config.JetsFrameLeft, p.JetsFrame)

	keys.Clear()
	keys.Press(input.KeyRight)
	f.player.Update(keys)
	assert.Equal(t, 230.0, p.X)
	assert.Equal(t, config.JetsFrameRight, p.JetsFrame)

	keys.Clear()
	f.player.Update(keys)
	assert.Equal(t, config.JetsFrameIdle, p.JetsFrame)
}

func TestPlayerSystem_ClampsToHalfOffField(t *testing.T) {
	f := newFixture(t)
	keys := input.NewKeySet()
	p := f.world.Player

	keys.Press(input.KeyLeft)
	p.X = -68
	f.player.Update(keys)
	assert.Equal(t, -70.0, p.X)

	keys.Clear()
	keys.Press(input.KeyRight)
	p.X = 528
	f.player.Update(keys)
	assert.Equal(t, 530.0, p.X)
}

func TestPlayerSystem_DrawFrames(t *testing.T) {
	tests := []struct {
		name      string
		key       input.Key
		coolDown  bool
		wantFrame int
		wantBeam  bool
	}{
		{name: "idle", wantFrame: config.PlayerFrameIdle},
		{name: "primary", key: input.KeyPrimary, wantFrame: config.PlayerFramePrimary},
		{name: "light beam", key: input.KeyLightBeam, wantFrame: config.PlayerFrameLightLaser, wantBeam: true},
		{name: "heavy beam", key: input.KeyHeavyBeam, wantFrame: config.PlayerFrameHeavyLaser, wantBeam: true},
		{name: "beam in cooldown", key: input.KeyHeavyBeam, coolDown: true, wantFrame: config.PlayerFrameIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			keys := input.NewKeySet()
			if tt.key != "" {
				keys.Press(tt.key)
			}
			f.world.Player.CoolDown = tt.coolDown
			rec := &rendertest.Recorder{}

			f.player.Draw(rec, keys, noTick)

			assert.Equal(t, tt.wantFrame, f.world.Player.FrameX)
			body := rec.Sprites(config.SheetPlayer)
			require.Len(t, body, 1)
			assert.Equal(t, tt.wantFrame, body[0].Col)
			assert.Len(t, rec.Sprites(config.SheetJets), 1)
			assert.Equal(t, tt.wantBeam, len(rec.FillsWithColor(config.LaserColor)) > 0)
		})
	}
}

func TestPlayerSystem_SelectWeapon(t *testing.T) {
	f := newFixture(t)
	keys := input.NewKeySet()
	assert.Equal(t, component.WeaponNone, f.player.SelectWeapon(keys))

	keys.Press(input.KeyLightBeam)
	assert.Equal(t, component.WeaponLightLaser, f.player.SelectWeapon(keys))
}
