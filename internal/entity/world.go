// internal/entity/world.go
package entity

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/pkg/geom"
)

// World владеет всеми сущностями игры. Создаётся один раз и
// сбрасывается через Reset, а не пересоздаётся.
type World struct {
	Width, Height float64
	EnemySize     float64
	Columns, Rows int

	Player      *component.Player
	Projectiles *ProjectilePool
	Waves       []*component.Wave
	LightLaser  *component.Laser
	HeavyLaser  *component.Laser
}

// NewWorld создаёт мир с полем заданного размера.
func NewWorld(width, height float64, lib *defs.Library) *World {
	w := &World{
		Width:       width,
		Height:      height,
		EnemySize:   config.EnemySize,
		Columns:     config.InitialColumns,
		Rows:        config.InitialRows,
		Player:      &component.Player{},
		Projectiles: NewProjectilePool(config.ProjectilePoolSize, config.ProjectileWidth, config.ProjectileHeight, config.ProjectileSpeed),
		LightLaser:  &component.Laser{Def: lib.Laser(defs.LaserLight)},
		HeavyLaser:  &component.Laser{Def: lib.Laser(defs.LaserHeavy)},
	}
	w.ResetPlayer()
	return w
}

// ResetPlayer возвращает корабль в начальное состояние.
func (w *World) ResetPlayer() {
	p := w.Player
	p.Rect = geom.Rect{
		X: w.Width*0.5 - config.PlayerWidth*0.5,
		Y: w.Height - config.PlayerHeight,
		W: config.PlayerWidth,
		H: config.PlayerHeight,
	}
	p.Speed = config.PlayerSpeed
	p.Lives = config.PlayerLives
	p.MaxLives = config.PlayerMaxLives
	p.Energy = config.PlayerEnergy
	p.MaxEnergy = config.PlayerMaxEnergy
	p.EnergyRegen = config.PlayerEnergyRegen
	p.CoolDown = false
	p.Weapon = component.WeaponNone
	p.FrameX = config.PlayerFrameIdle
	p.JetsFrame = config.JetsFrameIdle
}

// Reset сбрасывает мир к началу игры: сетка 2x2, волн нет, снаряды свободны.
func (w *World) Reset() {
	w.ResetPlayer()
	w.Projectiles.ReleaseAll()
	w.Columns = config.InitialColumns
	w.Rows = config.InitialRows
	w.Waves = w.Waves[:0]
}

// Lasers возвращает оба луча.
func (w *World) Lasers() []*component.Laser {
	return []*component.Laser{w.LightLaser, w.HeavyLaser}
}

// ForEachEnemy вызывает fn для каждого врага каждой активной волны.
func (w *World) ForEachEnemy(fn func(*component.Enemy)) {
	for _, wave := range w.Waves {
		for _, enemy := range wave.Enemies {
			fn(enemy)
		}
	}
}
