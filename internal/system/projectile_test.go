package system

import (
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/event"
	"go-space-invaders/pkg/render/rendertest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerSystem_ShootExhaustsPool(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < config.ProjectilePoolSize; i++ {
		require.True(t, f.player.Shoot(), "shot %d", i)
	}
	assert.False(t, f.player.Shoot())
	assert.Equal(t, config.ProjectilePoolSize, f.world.Projectiles.Busy())
	assert.Len(t, f.eventsOf(event.ProjectileFired), config.ProjectilePoolSize)
}

func TestPlayerSystem_ShootFromShipCenter(t *testing.T) {
	f := newFixture(t)

	require.True(t, f.player.Shoot())
	proj := f.world.Projectiles.All()[0]
	assert.False(t, proj.Free)
	assert.Equal(t, f.world.Player.CenterX(), proj.CenterX())
	assert.Equal(t, f.world.Player.Y, proj.Y)
}

func TestProjectileSystem_ReleasesAboveField(t *testing.T) {
	f := newFixture(t)
	proj, ok := f.world.Projectiles.Acquire()
	require.True(t, ok)
	proj.Start(100, 0)

	f.projectiles.Update()
	assert.Equal(t, -20.0, proj.Y)
	f.projectiles.Update()
	assert.Equal(t, -40.0, proj.Y)
	assert.False(t, proj.Free, "y == -h is still on the field")

	f.projectiles.Update()
	assert.True(t, proj.Free)

	// освобождённый слот снова доступен
	next, ok := f.world.Projectiles.Acquire()
	require.True(t, ok)
	assert.Same(t, proj, next)
}

func TestProjectileSystem_DrawOnlyBusy(t *testing.T) {
	f := newFixture(t)
	rec := &rendertest.Recorder{}

	f.player.Shoot()
	f.player.Shoot()
	f.projectiles.Draw(rec)

	fills := rec.FillsWithColor(config.ProjectileColor)
	require.Len(t, fills, 2)
	assert.Equal(t, config.ProjectileWidth, fills[0].Rect.W)
	assert.Equal(t, config.ProjectileHeight, fills[0].Rect.H)
}
