package state

import (
	"go-space-invaders/internal/app"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/input"
	"go-space-invaders/pkg/render"
	"go-space-invaders/pkg/render/rendertest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	pressed, released []input.Key
}

func (f *fakeSource) JustPressed() []input.Key {
	keys := f.pressed
	f.pressed = nil
	return keys
}

func (f *fakeSource) JustReleased() []input.Key {
	keys := f.released
	f.released = nil
	return keys
}

type recordingState struct {
	log *[]string
	id  string
}

func (s recordingState) Enter()              { *s.log = append(*s.log, "enter "+s.id) }
func (s recordingState) Update(float64)      { *s.log = append(*s.log, "update "+s.id) }
func (s recordingState) Draw(render.Surface) { *s.log = append(*s.log, "draw "+s.id) }
func (s recordingState) Exit()               { *s.log = append(*s.log, "exit "+s.id) }

func TestStateMachine_Transitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()

	sm.Update(0.016)
	sm.Draw(render.Discard)
	assert.Empty(t, log)

	sm.SetState(recordingState{log: &log, id: "a"})
	sm.Update(0.016)
	sm.SetState(recordingState{log: &log, id: "b"})
	sm.Draw(render.Discard)

	assert.Equal(t, []string{"enter a", "update a", "exit a", "enter b", "draw b"}, log)
}

func newGameState(t *testing.T) (*GameState, *app.Game, *fakeSource) {
	t.Helper()
	lib, err := defs.LoadDefault()
	require.NoError(t, err)
	src := &fakeSource{}
	g := app.NewGame(lib, 3, nil)
	sm := NewStateMachine()
	gs := NewGameState(sm, g, src, config.MaxDeltaMs)
	sm.SetState(gs)
	return gs, g, src
}

func TestGameState_ForwardsKeys(t *testing.T) {
	gs, g, src := newGameState(t)

	src.pressed = []input.Key{input.KeyPrimary, input.KeyLeft}
	gs.Update(0.016)
	assert.Equal(t, 1, g.World.Projectiles.Busy())
	assert.True(t, g.Keys.Held(input.KeyLeft))

	src.released = []input.Key{input.KeyLeft}
	gs.Update(0.016)
	assert.False(t, g.Keys.Held(input.KeyLeft))
}

func TestGameState_DrawRunsOneFrame(t *testing.T) {
	gs, _, _ := newGameState(t)
	rec := &rendertest.Recorder{}

	gs.Update(0.016)
	gs.Draw(rec)

	assert.Contains(t, rec.Texts(), "Score: 0")
	assert.Len(t, rec.Sprites(config.SheetPlayer), 1)
}

func TestGameState_ClampsElapsed(t *testing.T) {
	gs, g, _ := newGameState(t)

	// без ограничения секундная пауза дала бы тик анимации на втором кадре
	gs.Update(1.0)
	gs.Draw(render.Discard)
	assert.False(t, g.SpriteUpdate())

	gs.Update(1.0)
	gs.Draw(render.Discard)
	assert.False(t, g.SpriteUpdate())

	gs.Update(1.0)
	gs.Draw(render.Discard)
	assert.True(t, g.SpriteUpdate())
}
