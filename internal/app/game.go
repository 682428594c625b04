// internal/app/game.go
package app

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/system"
	"go-space-invaders/internal/ui"
	"go-space-invaders/internal/utils"
	"go-space-invaders/pkg/render"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Game holds the main game state and logic.
type Game struct {
	World           *entity.World
	Defs            *defs.Library
	EventDispatcher *event.Dispatcher
	Keys            *input.KeySet
	Rng             *utils.PRNGService
	Log             *zap.Logger
	Overlay         *ui.StatusOverlay

	ProjectileSystem *system.ProjectileSystem
	EnemySystem      *system.EnemySystem
	LaserSystem      *system.LaserSystem
	PlayerSystem     *system.PlayerSystem
	WaveSystem       *system.WaveSystem

	RunID     uuid.UUID // новый на каждый рестарт, идёт в логи
	Score     int
	WaveCount int

	// Game state
	spriteTimer  float64
	spriteUpdate bool
	gameOver     bool
	fired        bool              // основное оружие ждёт отпускания клавиши
	waveBuf      []*component.Wave // снимок списка волн на время прохода
}

var _ interfaces.Game = (*Game)(nil)

// NewGame initializes a new game instance. seed == 0 берёт сид от времени.
func NewGame(lib *defs.Library, seed int64, log *zap.Logger) *Game {
	if lib == nil {
		panic("defs library cannot be nil")
	}
	if log == nil {
		log = zap.NewNop()
	}

	world := entity.NewWorld(config.FieldWidth, config.FieldHeight, lib)
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		World:           world,
		Defs:            lib,
		EventDispatcher: eventDispatcher,
		Keys:            input.NewKeySet(),
		Rng:             utils.NewPRNGService(seed),
		Log:             log,
		Overlay:         ui.NewStatusOverlay(world.Width, world.Height),
		RunID:           uuid.New(),
	}
	g.ProjectileSystem = system.NewProjectileSystem(world)
	g.EnemySystem = system.NewEnemySystem(world, eventDispatcher)
	g.LaserSystem = system.NewLaserSystem(world, g.EnemySystem)
	g.PlayerSystem = system.NewPlayerSystem(world, g.LaserSystem, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(world, g.EnemySystem, lib, g.Rng, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.EnemyKilled, listener)
	eventDispatcher.Subscribe(event.PlayerHit, listener)
	eventDispatcher.Subscribe(event.WaveSpawned, listener)
	eventDispatcher.Subscribe(event.WaveCleared, listener)
	eventDispatcher.Subscribe(event.GameOver, listener)
	eventDispatcher.Subscribe(event.GameRestarted, listener)

	g.World.Waves = append(g.World.Waves, g.WaveSystem.Spawn(1))
	g.WaveCount = 1

	return g
}

// Render продвигает симуляцию на один кадр и рисует его.
// elapsedMs — время с прошлого кадра.
func (g *Game) Render(surface render.Surface, elapsedMs float64) {
	g.tickSprites(elapsedMs)
	frame := system.Frame{SpriteUpdate: g.spriteUpdate}

	g.Overlay.Draw(surface, g.Status())

	g.ProjectileSystem.Update()
	g.ProjectileSystem.Draw(surface)

	g.PlayerSystem.Draw(surface, g.Keys, frame)
	g.PlayerSystem.Update(g.Keys)

	// Новые волны добавляются в мир, но в этом кадре не обходятся
	g.waveBuf = append(g.waveBuf[:0], g.World.Waves...)
	for _, wave := range g.waveBuf {
		g.WaveSystem.Render(surface, wave, frame)
		g.checkLoss(wave)

		if wave.Cleared() && !wave.NextWaveTriggered && !g.gameOver {
			g.nextWave()
			wave.NextWaveTriggered = true
		}
	}
	for i := range g.waveBuf {
		g.waveBuf[i] = nil
	}

	g.pruneWaves()
}

func (g *Game) tickSprites(elapsedMs float64) {
	if g.spriteTimer > config.SpriteInterval {
		g.spriteUpdate = true
		g.spriteTimer = 0
	} else {
		g.spriteUpdate = false
		g.spriteTimer += elapsedMs
	}
}

// nextWave усложняет сетку, вызывает следующую волну и даёт жизнь.
func (g *Game) nextWave() {
	g.WaveSystem.Grow()
	g.WaveCount++
	g.World.Waves = append(g.World.Waves, g.WaveSystem.Spawn(g.WaveCount))

	p := g.World.Player
	if p.Lives < p.MaxLives {
		p.Lives++
	}
}

// checkLoss переводит игру в GameOver, если жизни кончились
// или враг волны ушёл ниже поля.
func (g *Game) checkLoss(wave *component.Wave) {
	if g.gameOver {
		return
	}

	var reason string
	switch {
	case g.World.Player.Lives < 1:
		reason = "no lives left"
	case g.WaveSystem.Breached(wave):
		reason = "enemy reached the bottom"
	default:
		return
	}

	g.gameOver = true
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{Reason: reason, Score: g.Score, Wave: g.WaveCount},
	})
}

func (g *Game) pruneWaves() {
	waves := g.World.Waves[:0]
	for _, wave := range g.World.Waves {
		if !wave.MarkedForDeletion {
			waves = append(waves, wave)
		}
	}
	for i := len(waves); i < len(g.World.Waves); i++ {
		g.World.Waves[i] = nil
	}
	g.World.Waves = waves
}

// KeyDown обрабатывает нажатие. Основное оружие стреляет по фронту:
// следующий выстрел только после отпускания клавиш.
func (g *Game) KeyDown(key input.Key) {
	if key == input.KeyPrimary && !g.fired {
		g.PlayerSystem.Shoot()
	}
	g.fired = true
	g.Keys.Press(key)

	if key == input.KeyRestart && g.gameOver {
		g.Restart()
	}
}

// KeyUp обрабатывает отпускание клавиши.
func (g *Game) KeyUp(key input.Key) {
	g.fired = false
	g.Keys.Release(key)
}

// Restart начинает игру заново: мир сброшен, одна свежая волна 2x2.
func (g *Game) Restart() {
	g.World.Reset()
	g.Score = 0
	g.WaveCount = 1
	g.gameOver = false
	g.RunID = uuid.New()

	g.World.Waves = append(g.World.Waves, g.WaveSystem.Spawn(1))
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameRestarted})
}

// GameOver сообщает, проиграна ли игра.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// SpriteUpdate сообщает, был ли текущий кадр тиком анимации.
func (g *Game) SpriteUpdate() bool {
	return g.spriteUpdate
}

// Status собирает данные для оверлея.
func (g *Game) Status() ui.Status {
	p := g.World.Player
	return ui.Status{
		Score:    g.Score,
		Wave:     g.WaveCount,
		Lives:    p.Lives,
		MaxLives: p.MaxLives,
		Energy:   p.Energy,
		CoolDown: p.CoolDown,
		GameOver: g.gameOver,
	}
}

func (g *Game) logger() *zap.Logger {
	return g.Log.With(zap.Stringer("run_id", g.RunID))
}
