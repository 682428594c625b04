// internal/event/types.go
package event

const (
	EnemyKilled     EventType = "EnemyKilled"     // Враг доиграл анимацию смерти
	PlayerHit       EventType = "PlayerHit"       // Враг протаранил корабль
	ProjectileFired EventType = "ProjectileFired" // Выстрел основного оружия
	WaveSpawned     EventType = "WaveSpawned"     // Появилась новая волна
	WaveCleared     EventType = "WaveCleared"     // В волне не осталось врагов
	GameOver        EventType = "GameOver"        // Игра проиграна
	GameRestarted   EventType = "GameRestarted"   // Игра начата заново
)

// EnemyKilledData передаётся с EnemyKilled.
type EnemyKilledData struct {
	EnemyID string
	Points  int
}

// PlayerHitData передаётся с PlayerHit.
type PlayerHitData struct {
	EnemyID    string
	LivesAfter int
}

// WaveData передаётся с WaveSpawned и WaveCleared.
type WaveData struct {
	Number        int
	Columns, Rows int
}

// GameOverData передаётся с GameOver.
type GameOverData struct {
	Reason string
	Score  int
	Wave   int
}
