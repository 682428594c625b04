// internal/system/projectile.go
package system

import (
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/pkg/render"
)

// ProjectileSystem двигает снаряды основного оружия и возвращает в пул улетевшие.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update() {
	pool := s.world.Projectiles
	for _, proj := range pool.All() {
		if proj.Free {
			continue
		}
		proj.Y -= proj.Speed
		if proj.Y < -proj.H {
			pool.Release(proj)
		}
	}
}

func (s *ProjectileSystem) Draw(surface render.Surface) {
	for _, proj := range s.world.Projectiles.All() {
		if !proj.Free {
			surface.FillRect(proj.Rect, config.ProjectileColor)
		}
	}
}
