// internal/component/weapon.go
package component

import (
	"go-space-invaders/internal/defs"
	"go-space-invaders/pkg/geom"
)

// WeaponSlot — оружие, выбранное удерживаемой клавишей в текущем кадре.
type WeaponSlot int

const (
	WeaponNone WeaponSlot = iota
	WeaponPrimary
	WeaponLightLaser
	WeaponHeavyLaser
)

func (w WeaponSlot) String() string {
	switch w {
	case WeaponPrimary:
		return "primary"
	case WeaponLightLaser:
		return "light_laser"
	case WeaponHeavyLaser:
		return "heavy_laser"
	default:
		return "none"
	}
}

// Laser — лучевое оружие игрока. Хранит только конфигурацию и прямоугольник луча.
type Laser struct {
	geom.Rect
	Def *defs.LaserDefinition
}
