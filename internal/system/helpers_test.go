package system

import (
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/utils"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	tick   = Frame{SpriteUpdate: true}
	noTick = Frame{}
)

type fixture struct {
	lib         *defs.Library
	world       *entity.World
	dispatcher  *event.Dispatcher
	events      []event.Event
	enemies     *EnemySystem
	lasers      *LaserSystem
	player      *PlayerSystem
	projectiles *ProjectileSystem
	waves       *WaveSystem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	lib, err := defs.LoadDefault()
	require.NoError(t, err)

	f := &fixture{
		lib:        lib,
		world:      entity.NewWorld(config.FieldWidth, config.FieldHeight, lib),
		dispatcher: event.NewDispatcher(),
	}
	record := event.ListenerFunc(func(e event.Event) { f.events = append(f.events, e) })
	for _, typ := range []event.EventType{
		event.EnemyKilled, event.PlayerHit, event.ProjectileFired,
		event.WaveSpawned, event.WaveCleared,
	} {
		f.dispatcher.Subscribe(typ, record)
	}

	f.enemies = NewEnemySystem(f.world, f.dispatcher)
	f.lasers = NewLaserSystem(f.world, f.enemies)
	f.player = NewPlayerSystem(f.world, f.lasers, f.dispatcher)
	f.projectiles = NewProjectileSystem(f.world)
	f.waves = NewWaveSystem(f.world, f.enemies, lib, utils.NewPRNGService(42), f.dispatcher)
	return f
}

func (f *fixture) eventsOf(typ event.EventType) []event.Event {
	var out []event.Event
	for _, e := range f.events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}
