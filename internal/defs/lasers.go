// internal/defs/lasers.go
package defs

import "fmt"

// LaserDefinition описывает лучевое оружие.
// Damage одновременно расход энергии за кадр и урон за тик анимации.
type LaserDefinition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Width       float64 `json:"width"`
	Damage      float64 `json:"damage"`
	PlayerFrame int     `json:"player_frame"` // кадр корабля во время стрельбы
}

func (d *LaserDefinition) validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("laser definition without id")
	case d.Width <= 0:
		return fmt.Errorf("laser %s: width must be positive", d.ID)
	case d.Damage <= 0:
		return fmt.Errorf("laser %s: damage must be positive", d.ID)
	}
	return nil
}
