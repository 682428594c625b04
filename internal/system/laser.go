// internal/system/laser.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/pkg/render"
)

// LaserSystem обслуживает лучевое оружие игрока.
type LaserSystem struct {
	world   *entity.World
	enemies *EnemySystem
}

func NewLaserSystem(world *entity.World, enemies *EnemySystem) *LaserSystem {
	return &LaserSystem{
		world:   world,
		enemies: enemies,
	}
}

// CanFire сообщает, хватает ли энергии для луча.
func (s *LaserSystem) CanFire() bool {
	p := s.world.Player
	return p.Energy > config.LaserMinEnergy && !p.CoolDown
}

// Fire рисует луч за кадр и тратит энергию. На тиках спрайтов луч бьёт
// всех живых врагов, которых касается. Возвращает false, если стрелять нечем.
func (s *LaserSystem) Fire(surface render.Surface, laser *component.Laser, frame Frame) bool {
	if !s.CanFire() {
		return false
	}

	p := s.world.Player
	laser.W = laser.Def.Width
	laser.H = s.world.Height - config.LaserBottomMargin
	laser.X = p.CenterX() - laser.W*0.5
	laser.Y = 0

	p.Energy -= laser.Def.Damage
	if p.Energy < 0 {
		p.Energy = 0
	}

	surface.FillRect(laser.Rect, config.LaserColor)
	core := laser.Rect
	core.X += laser.W * (1 - config.LaserCoreFactor) * 0.5
	core.W = laser.W * config.LaserCoreFactor
	surface.FillRect(core, config.LaserCoreColor)

	if frame.SpriteUpdate {
		s.world.ForEachEnemy(func(e *component.Enemy) {
			if e.Alive() && CheckCollision(e.Rect, laser.Rect) {
				s.enemies.Hit(e, laser.Def.Damage)
			}
		})
	}
	return true
}
