// internal/input/keys.go
package input

// Key — идентификатор клавиши, не зависящий от платформы.
type Key string

const (
	KeyLeft      Key = "ArrowLeft"
	KeyRight     Key = "ArrowRight"
	KeyPrimary   Key = "1"
	KeyLightBeam Key = "2"
	KeyHeavyBeam Key = "3"
	KeyRestart   Key = "r"
)

// Source поставляет переходы клавиш, накопленные хостом за тик.
type Source interface {
	JustPressed() []Key
	JustReleased() []Key
}

// KeySet — набор удерживаемых клавиш в порядке нажатия.
type KeySet struct {
	keys []Key
}

// NewKeySet создаёт пустой набор.
func NewKeySet() *KeySet {
	return &KeySet{}
}

// Press добавляет клавишу. Возвращает false, если она уже удерживается.
func (k *KeySet) Press(key Key) bool {
	if k.Held(key) {
		return false
	}
	k.keys = append(k.keys, key)
	return true
}

// Release убирает клавишу из набора.
func (k *KeySet) Release(key Key) {
	for i, held := range k.keys {
		if held == key {
			k.keys = append(k.keys[:i], k.keys[i+1:]...)
			return
		}
	}
}

// Held сообщает, удерживается ли клавиша.
func (k *KeySet) Held(key Key) bool {
	for _, held := range k.keys {
		if held == key {
			return true
		}
	}
	return false
}

// Len — число удерживаемых клавиш.
func (k *KeySet) Len() int {
	return len(k.keys)
}

// Clear отпускает все клавиши.
func (k *KeySet) Clear() {
	k.keys = k.keys[:0]
}
