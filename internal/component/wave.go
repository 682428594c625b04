// internal/component/wave.go
package component

import "go-space-invaders/pkg/geom"

// Wave — формация врагов, движущаяся как единое целое.
type Wave struct {
	geom.Rect
	Number            int
	Columns, Rows     int
	SpeedX, SpeedY    float64
	Enemies           []*Enemy
	NextWaveTriggered bool // следующая волна уже вызвана этой зачисткой
	MarkedForDeletion bool
}

// Cleared сообщает, что в волне не осталось врагов.
func (w *Wave) Cleared() bool {
	return len(w.Enemies) == 0
}
