// internal/defs/types.go
package defs

// HitFrameMode defines how a hit maps remaining health to an animation frame.
type HitFrameMode string

const (
	// HitFramesNone — кадр не меняется до смерти (одного попадания хватает).
	HitFramesNone HitFrameMode = "NONE"
	// HitFramesLinear — кадр растёт вместе с полученным уроном.
	HitFramesLinear HitFrameMode = "LINEAR"
)

// Идентификаторы встроенных определений
const (
	EnemyBeetlemorph = "BEETLEMORPH"
	EnemyRhinomorph  = "RHINOMORPH"
	LaserLight       = "LIGHT_LASER"
	LaserHeavy       = "HEAVY_LASER"
)
