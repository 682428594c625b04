// internal/component/projectile.go
package component

import "go-space-invaders/pkg/geom"

// Projectile представляет снаряд основного оружия. Живёт в пуле всю сессию.
type Projectile struct {
	geom.Rect
	Speed float64
	Free  bool
}

// Start занимает снаряд; x — центр, y — верхняя граница.
func (p *Projectile) Start(x, y float64) {
	p.X = x - p.W*0.5
	p.Y = y
	p.Free = false
}

// Reset возвращает снаряд в свободное состояние.
func (p *Projectile) Reset() {
	p.Free = true
}
