// internal/system/player_system.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/input"
	"go-space-invaders/pkg/geom"
	"go-space-invaders/pkg/render"
)

// PlayerSystem отвечает за движение корабля, энергию и выбор оружия.
type PlayerSystem struct {
	world           *entity.World
	lasers          *LaserSystem
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(world *entity.World, lasers *LaserSystem, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{
		world:           world,
		lasers:          lasers,
		eventDispatcher: eventDispatcher,
	}
}

// Update восстанавливает энергию, пересчитывает перегрев и двигает корабль.
func (s *PlayerSystem) Update(keys *input.KeySet) {
	p := s.world.Player

	// Энергия
	if p.Energy < p.MaxEnergy {
		p.Energy += p.EnergyRegen
	}
	p.Energy = geom.Clamp(p.Energy, 0, p.MaxEnergy)

	// Перегрев с гистерезисом: включается ниже 1, снимается выше 20% от максимума
	if p.Energy < config.CoolDownEnter {
		p.CoolDown = true
	} else if p.Energy > p.MaxEnergy*config.CoolDownExitFactor {
		p.CoolDown = false
	}

	// Горизонтальное движение
	switch {
	case keys.Held(input.KeyLeft):
		p.X -= p.Speed
		p.JetsFrame = config.JetsFrameLeft
	case keys.Held(input.KeyRight):
		p.X += p.Speed
		p.JetsFrame = config.JetsFrameRight
	default:
		p.JetsFrame = config.JetsFrameIdle
	}

	// Корабль может наполовину уйти за край
	p.X = geom.Clamp(p.X, -p.W*0.5, s.world.Width-p.W*0.5)
}

// Shoot запускает снаряд из пула. Если пул исчерпан, ничего не происходит.
func (s *PlayerSystem) Shoot() bool {
	proj, ok := s.world.Projectiles.Acquire()
	if !ok {
		return false
	}
	p := s.world.Player
	proj.Start(p.CenterX(), p.Y)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired})
	return true
}

// SelectWeapon выбирает оружие по удерживаемым клавишам.
func (s *PlayerSystem) SelectWeapon(keys *input.KeySet) component.WeaponSlot {
	switch {
	case keys.Held(input.KeyPrimary):
		return component.WeaponPrimary
	case keys.Held(input.KeyLightBeam):
		return component.WeaponLightLaser
	case keys.Held(input.KeyHeavyBeam):
		return component.WeaponHeavyLaser
	default:
		return component.WeaponNone
	}
}

// Draw выбирает кадр корпуса, стреляет выбранным лучом и рисует корабль.
// Луч рисуется раньше корабля, чтобы оказаться под ним.
func (s *PlayerSystem) Draw(surface render.Surface, keys *input.KeySet, frame Frame) {
	p := s.world.Player
	p.Weapon = s.SelectWeapon(keys)

	switch p.Weapon {
	case component.WeaponPrimary:
		p.FrameX = config.PlayerFramePrimary
	case component.WeaponLightLaser:
		p.FrameX = s.fireLaser(surface, s.world.LightLaser, frame)
	case component.WeaponHeavyLaser:
		p.FrameX = s.fireLaser(surface, s.world.HeavyLaser, frame)
	default:
		p.FrameX = config.PlayerFrameIdle
	}

	surface.DrawSprite(config.SheetPlayer, p.FrameX, 0, p.W, p.H, p.Rect)
	surface.DrawSprite(config.SheetJets, p.JetsFrame, 0, p.W, p.H, p.Rect)
}

func (s *PlayerSystem) fireLaser(surface render.Surface, laser *component.Laser, frame Frame) int {
	if s.lasers.Fire(surface, laser, frame) {
		return laser.Def.PlayerFrame
	}
	return config.PlayerFrameIdle
}
