// internal/defs/spawn_table.go
package defs

// SpawnEntry представляет одну запись в таблице появления врагов.
// Weight - относительный шанс, что клетка формации получит этот тип.
type SpawnEntry struct {
	EnemyID string `json:"enemy_id"`
	Weight  int    `json:"weight"`
}
