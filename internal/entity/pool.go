// internal/entity/pool.go
package entity

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/pkg/geom"
)

// ProjectilePool — пул снарядов фиксированного размера.
// Все снаряды создаются один раз, во время игры память не выделяется.
type ProjectilePool struct {
	slots []*component.Projectile
}

// NewProjectilePool создаёт пул из size свободных снарядов.
func NewProjectilePool(size int, width, height, speed float64) *ProjectilePool {
	slots := make([]*component.Projectile, size)
	for i := range slots {
		slots[i] = &component.Projectile{
			Rect:  geom.Rect{W: width, H: height},
			Speed: speed,
			Free:  true,
		}
	}
	return &ProjectilePool{slots: slots}
}

// Acquire returns the first free projectile, or false when the pool is exhausted.
// The projectile stays free until the caller Starts it.
func (p *ProjectilePool) Acquire() (*component.Projectile, bool) {
	for _, proj := range p.slots {
		if proj.Free {
			return proj, true
		}
	}
	return nil, false
}

// Release возвращает снаряд в пул. Повторный вызов ничего не меняет.
func (p *ProjectilePool) Release(proj *component.Projectile) {
	proj.Reset()
}

// ReleaseAll освобождает все снаряды.
func (p *ProjectilePool) ReleaseAll() {
	for _, proj := range p.slots {
		proj.Reset()
	}
}

// All возвращает все снаряды пула, свободные и занятые.
func (p *ProjectilePool) All() []*component.Projectile {
	return p.slots
}

// Cap — ёмкость пула.
func (p *ProjectilePool) Cap() int {
	return len(p.slots)
}

// Busy — число летящих снарядов.
func (p *ProjectilePool) Busy() int {
	n := 0
	for _, proj := range p.slots {
		if !proj.Free {
			n++
		}
	}
	return n
}
