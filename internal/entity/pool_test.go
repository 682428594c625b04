package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectilePool_AcquireRelease(t *testing.T) {
	pool := NewProjectilePool(15, 3, 40, 20)
	require.Equal(t, 15, pool.Cap())
	assert.Equal(t, 0, pool.Busy())

	for i := 0; i < 15; i++ {
		proj, ok := pool.Acquire()
		require.True(t, ok, "slot %d", i)
		proj.Start(100, 500)
	}
	assert.Equal(t, 15, pool.Busy())

	// Исчерпанный пул не выдаёт новых снарядов и не растёт
	proj, ok := pool.Acquire()
	assert.False(t, ok)
	assert.Nil(t, proj)
	assert.Equal(t, 15, pool.Cap())
	assert.Len(t, pool.All(), 15)

	first := pool.All()[0]
	pool.Release(first)
	pool.Release(first)
	assert.Equal(t, 14, pool.Busy())

	again, ok := pool.Acquire()
	require.True(t, ok)
	assert.Same(t, first, again, "freed slot is reused")

	pool.ReleaseAll()
	assert.Equal(t, 0, pool.Busy())
	assert.Equal(t, 15, pool.Cap())
}

func TestProjectilePool_AcquireDoesNotClaim(t *testing.T) {
	pool := NewProjectilePool(2, 3, 40, 20)
	a, _ := pool.Acquire()
	b, _ := pool.Acquire()
	assert.Same(t, a, b)
}

func TestProjectileStart(t *testing.T) {
	pool := NewProjectilePool(1, 3, 40, 20)
	proj, _ := pool.Acquire()
	proj.Start(100, 680)

	assert.False(t, proj.Free)
	assert.Equal(t, 98.5, proj.X)
	assert.Equal(t, 680.0, proj.Y)
	assert.Equal(t, 100.0, proj.CenterX())
}
