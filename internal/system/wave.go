// internal/system/wave.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/utils"
	"go-space-invaders/pkg/geom"
	"go-space-invaders/pkg/render"
)

type WaveSystem struct {
	world           *entity.World
	enemies         *EnemySystem
	library         *defs.Library
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(world *entity.World, enemies *EnemySystem, library *defs.Library, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		world:           world,
		enemies:         enemies,
		library:         library,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Spawn создаёт волну по текущей сетке мира. Волна стартует над полем,
// по центру, и сама в мир не добавляется.
func (s *WaveSystem) Spawn(number int) *component.Wave {
	size := s.world.EnemySize
	cols, rows := s.world.Columns, s.world.Rows
	width := float64(cols) * size
	height := float64(rows) * size

	wave := &component.Wave{
		Rect: geom.Rect{
			X: s.world.Width*0.5 - width*0.5,
			Y: -height,
			W: width,
			H: height,
		},
		Number:  number,
		Columns: cols,
		Rows:    rows,
		SpeedX:  s.rng.Sign() * config.WaveSpeedX,
		Enemies: make([]*component.Enemy, 0, cols*rows),
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			def := s.library.Enemy(s.rng.ChooseWeighted(s.library.SpawnTable))
			offsetX, offsetY := float64(x)*size, float64(y)*size
			wave.Enemies = append(wave.Enemies, &component.Enemy{
				Rect:    geom.Rect{X: wave.X + offsetX, Y: wave.Y + offsetY, W: size, H: size},
				OffsetX: offsetX,
				OffsetY: offsetY,
				Def:     def,
				Health:  def.Health,
				FrameY:  s.rng.Intn(def.SpriteRows),
			})
		}
	}

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveSpawned,
		Data: event.WaveData{Number: number, Columns: cols, Rows: rows},
	})
	return wave
}

// Grow усложняет следующую волну: с вероятностью 50% добавляет столбец,
// если формация помещается в 80% ширины, иначе строку, если помещается в 60% высоты.
func (s *WaveSystem) Grow() {
	w := s.world
	if s.rng.Chance(config.GrowColumnChance) && float64(w.Columns)*w.EnemySize < w.Width*config.MaxColumnsFactor {
		w.Columns++
	} else if float64(w.Rows)*w.EnemySize < w.Height*config.MaxRowsFactor {
		w.Rows++
	}
}

// Render двигает формацию, обновляет и рисует врагов, затем убирает уничтоженных.
func (s *WaveSystem) Render(surface render.Surface, wave *component.Wave, frame Frame) {
	// Вход сверху
	if wave.Y < 0 {
		wave.Y += config.WaveEntrySpeed
	}

	// Отскок от краёв со ступенькой вниз
	wave.SpeedY = 0
	if wave.X < 0 || wave.X > s.world.Width-wave.W {
		wave.SpeedX *= -1
		wave.SpeedY = s.world.EnemySize
	}
	wave.X += wave.SpeedX
	wave.Y += wave.SpeedY

	for _, enemy := range wave.Enemies {
		s.enemies.Update(enemy, wave.X, wave.Y, frame)
		s.enemies.Draw(surface, enemy)
	}

	// Удаление после прохода, чтобы не ломать итерацию
	alive := wave.Enemies[:0]
	for _, enemy := range wave.Enemies {
		if !enemy.MarkedForDeletion {
			alive = append(alive, enemy)
		}
	}
	for i := len(alive); i < len(wave.Enemies); i++ {
		wave.Enemies[i] = nil
	}
	wave.Enemies = alive

	if wave.Cleared() && !wave.MarkedForDeletion {
		wave.MarkedForDeletion = true
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WaveCleared,
			Data: event.WaveData{Number: wave.Number, Columns: wave.Columns, Rows: wave.Rows},
		})
	}
}

// Breached сообщает, опустился ли хоть один враг волны ниже поля.
func (s *WaveSystem) Breached(wave *component.Wave) bool {
	for _, enemy := range wave.Enemies {
		if s.enemies.BelowField(enemy) {
			return true
		}
	}
	return false
}
