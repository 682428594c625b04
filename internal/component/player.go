// internal/component/player.go
package component

import "go-space-invaders/pkg/geom"

// Player хранит состояние корабля игрока.
type Player struct {
	geom.Rect
	Speed       float64
	Lives       int
	MaxLives    int
	Energy      float64
	MaxEnergy   float64
	EnergyRegen float64 // прирост энергии за кадр
	CoolDown    bool    // перегрев: оружие недоступно
	Weapon      WeaponSlot
	FrameX      int // кадр корпуса
	JetsFrame   int // кадр реактивных струй
}
