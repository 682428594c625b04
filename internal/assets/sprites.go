// internal/assets/sprites.go
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"image"
	_ "image/png" // декодер для DecodeConfig
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed images/*.png
var embedded embed.FS

// Requirement описывает лист спрайтов, без которого игра не запустится.
type Requirement struct {
	Name         string
	CellW, CellH int
	Cols, Rows   int
}

// Requirements возвращает листы, нужные кораблю и всем врагам из таблицы появления.
func Requirements(lib *defs.Library) []Requirement {
	reqs := []Requirement{
		{Name: config.SheetPlayer, CellW: config.PlayerWidth, CellH: config.PlayerHeight, Cols: 4, Rows: 1},
		{Name: config.SheetJets, CellW: config.PlayerWidth, CellH: config.PlayerHeight, Cols: 3, Rows: 1},
	}
	seen := make(map[string]bool)
	for _, entry := range lib.SpawnTable {
		def := lib.Enemies[entry.EnemyID]
		if def == nil || seen[def.Sheet] {
			continue
		}
		seen[def.Sheet] = true
		reqs = append(reqs, Requirement{
			Name:  def.Sheet,
			CellW: config.EnemySize,
			CellH: config.EnemySize,
			Cols:  def.MaxFrame + 1,
			Rows:  def.SpriteRows,
		})
	}
	return reqs
}

// Load читает PNG-листы из dir (или встроенные, если dir пуст) и проверяет размеры.
// Возвращает содержимое файлов по имени листа.
func Load(dir string, reqs []Requirement) (map[string][]byte, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(embedded, "images")
		if err != nil {
			return nil, err
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}
	return load(fsys, reqs)
}

func load(fsys fs.FS, reqs []Requirement) (map[string][]byte, error) {
	sheets := make(map[string][]byte, len(reqs))
	for _, req := range reqs {
		name := req.Name + ".png"
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sprite sheet %s: %w", name, err)
		}
		cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode sprite sheet %s: %w", name, err)
		}
		if format != "png" {
			return nil, fmt.Errorf("sprite sheet %s: expected png, got %s", name, format)
		}
		wantW, wantH := req.Cols*req.CellW, req.Rows*req.CellH
		if cfg.Width < wantW || cfg.Height < wantH {
			return nil, fmt.Errorf("sprite sheet %s is %dx%d, need at least %dx%d",
				filepath.Base(name), cfg.Width, cfg.Height, wantW, wantH)
		}
		sheets[req.Name] = data
	}
	return sheets, nil
}
