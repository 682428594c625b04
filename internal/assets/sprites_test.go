package assets

import (
	"bytes"
	"go-space-invaders/internal/defs"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	lib, err := defs.LoadDefault()
	require.NoError(t, err)

	reqs := Requirements(lib)
	require.Len(t, reqs, 4)

	sheets, err := Load("", reqs)
	require.NoError(t, err)
	for _, name := range []string{"player", "player_jets", "beetlemorph", "rhinomorph"} {
		assert.NotEmpty(t, sheets[name], name)
	}
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	reqs := []Requirement{{Name: "ship", CellW: 10, CellH: 10, Cols: 2, Rows: 1}}

	_, err := Load(dir, reqs)
	assert.Error(t, err, "missing sheet must fail fast")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ship.png"), encodePNG(t, 15, 10), 0o644))
	_, err = Load(dir, reqs)
	assert.ErrorContains(t, err, "need at least 20x10")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ship.png"), []byte("not a png"), 0o644))
	_, err = Load(dir, reqs)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ship.png"), encodePNG(t, 20, 10), 0o644))
	sheets, err := Load(dir, reqs)
	require.NoError(t, err)
	assert.Contains(t, sheets, "ship")
}
