// internal/defs/enemies.go
package defs

import (
	"fmt"
	"math"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Sheet      string       `json:"sheet"`       // имя листа спрайтов
	Health     float64      `json:"health"`      // максимальное здоровье, оно же награда
	MaxFrame   int          `json:"max_frame"`   // последний кадр анимации смерти
	SpriteRows int          `json:"sprite_rows"` // число вариантов раскраски в листе
	HitFrames  HitFrameMode `json:"hit_frames"`
}

// FrameForHealth возвращает кадр анимации после попадания.
// ok == false означает, что попадание кадр не меняет.
func (d *EnemyDefinition) FrameForHealth(health float64) (frame int, ok bool) {
	if d.HitFrames != HitFramesLinear {
		return 0, false
	}
	frame = int(d.Health - math.Floor(health))
	if frame < 0 {
		frame = 0
	}
	if frame > d.MaxFrame {
		frame = d.MaxFrame
	}
	return frame, true
}

// Points — очки за уничтожение.
func (d *EnemyDefinition) Points() int {
	return int(d.Health)
}

func (d *EnemyDefinition) validate() error {
	switch {
	case d.ID == "":
		return fmt.Errorf("enemy definition without id")
	case d.Sheet == "":
		return fmt.Errorf("enemy %s: sheet is required", d.ID)
	case d.Health <= 0:
		return fmt.Errorf("enemy %s: health must be positive", d.ID)
	case d.MaxFrame < 0:
		return fmt.Errorf("enemy %s: max_frame must not be negative", d.ID)
	case d.SpriteRows < 1:
		return fmt.Errorf("enemy %s: sprite_rows must be at least 1", d.ID)
	}
	switch d.HitFrames {
	case HitFramesNone, HitFramesLinear:
	default:
		return fmt.Errorf("enemy %s: unknown hit_frames %q", d.ID, d.HitFrames)
	}
	return nil
}
