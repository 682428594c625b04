package system

import (
	"go-space-invaders/internal/event"
	"go-space-invaders/pkg/render"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaveSystem_SpawnLayout(t *testing.T) {
	f := newFixture(t)

	wave := f.waves.Spawn(1)

	assert.Equal(t, 220.0, wave.X)
	assert.Equal(t, -160.0, wave.Y)
	assert.Equal(t, 160.0, wave.W)
	assert.Equal(t, 160.0, wave.H)
	assert.Contains(t, []float64{-1, 1}, wave.SpeedX)
	require.Len(t, wave.Enemies, 4)

	// порядок: строка за строкой
	assert.Equal(t, 80.0, wave.Enemies[1].OffsetX)
	assert.Equal(t, 0.0, wave.Enemies[1].OffsetY)
	assert.Equal(t, 0.0, wave.Enemies[2].OffsetX)
	assert.Equal(t, 80.0, wave.Enemies[2].OffsetY)
	for _, e := range wave.Enemies {
		assert.Equal(t, e.Def.Health, e.Health)
		assert.Less(t, e.FrameY, e.Def.SpriteRows)
	}

	spawned := f.eventsOf(event.WaveSpawned)
	require.Len(t, spawned, 1)
	assert.Equal(t, event.WaveData{Number: 1, Columns: 2, Rows: 2}, spawned[0].Data)
}

func TestWaveSystem_EntersFromAbove(t *testing.T) {
	f := newFixture(t)
	wave := f.waves.Spawn(1)
	wave.SpeedX = 1

	f.waves.Render(render.Discard, wave, noTick)
	assert.Equal(t, -155.0, wave.Y)
	assert.Equal(t, 221.0, wave.X)
	assert.Equal(t, 221.0, wave.Enemies[0].X)
	assert.Equal(t, -75.0, wave.Enemies[2].Y)
}

func TestWaveSystem_BouncesOffEdges(t *testing.T) {
	f := newFixture(t)
	wave := f.waves.Spawn(1)
	wave.Y = 10

	wave.X, wave.SpeedX = -1, -1
	f.waves.Render(render.Discard, wave, noTick)
	assert.Equal(t, 1.0, wave.SpeedX)
	assert.Equal(t, 0.0, wave.X)
	assert.Equal(t, 90.0, wave.Y)

	// шаг вниз только в кадр отскока
	f.waves.Render(render.Discard, wave, noTick)
	assert.Equal(t, 90.0, wave.Y)

	wave.X = 441
	f.waves.Render(render.Discard, wave, noTick)
	assert.Equal(t, -1.0, wave.SpeedX)
	assert.Equal(t, 440.0, wave.X)
	assert.Equal(t, 170.0, wave.Y)
}

func TestWaveSystem_ClearedOnce(t *testing.T) {
	f := newFixture(t)
	wave := f.waves.Spawn(1)
	for _, e := range wave.Enemies {
		e.MarkedForDeletion = true
	}

	f.waves.Render(render.Discard, wave, noTick)
	assert.True(t, wave.Cleared())
	assert.True(t, wave.MarkedForDeletion)

	f.waves.Render(render.Discard, wave, noTick)
	assert.Len(t, f.eventsOf(event.WaveCleared), 1)
}

func TestWaveSystem_CompactsKeepingOrder(t *testing.T) {
	f := newFixture(t)
	wave := f.waves.Spawn(1)
	first, last := wave.Enemies[0], wave.Enemies[3]
	wave.Enemies[1].MarkedForDeletion = true
	wave.Enemies[2].MarkedForDeletion = true

	f.waves.Render(render.Discard, wave, noTick)
	require.Len(t, wave.Enemies, 2)
	assert.Same(t, first, wave.Enemies[0])
	assert.Same(t, last, wave.Enemies[1])
	assert.False(t, wave.MarkedForDeletion)
}

func TestWaveSystem_GrowStaysWithinField(t *testing.T) {
	f := newFixture(t)
	w := f.world

	for i := 0; i < 200; i++ {
		f.waves.Grow()
		assert.LessOrEqual(t, float64(w.Columns-1)*w.EnemySize, w.Width*0.8)
		assert.LessOrEqual(t, float64(w.Rows-1)*w.EnemySize, w.Height*0.6)
	}
	// 80% от 600 = 480, 60% от 800 = 480: оба предела по 6 врагов
	assert.Equal(t, 6, w.Columns)
	assert.Equal(t, 6, w.Rows)
}

func TestWaveSystem_Breached(t *testing.T) {
	f := newFixture(t)
	wave := f.waves.Spawn(1)
	assert.False(t, f.waves.Breached(wave))

	wave.Enemies[3].Y = 721
	assert.True(t, f.waves.Breached(wave))
}
