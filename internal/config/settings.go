package config

import (
	"bytes"
	"fmt"
	"go-space-invaders/internal/logger"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Settings — параметры запуска, которые не влияют на правила игры.
type Settings struct {
	Title      string        `yaml:"title" toml:"title"`
	Scale      float64       `yaml:"scale" toml:"scale"`
	TPS        int           `yaml:"tps" toml:"tps"`
	Seed       int64         `yaml:"seed" toml:"seed"` // 0 — текущее время
	AssetsDir  string        `yaml:"assets_dir" toml:"assets_dir"`
	DefsDir    string        `yaml:"defs_dir" toml:"defs_dir"`
	PprofAddr  string        `yaml:"pprof_addr" toml:"pprof_addr"`
	MaxDeltaMs float64       `yaml:"max_delta_ms" toml:"max_delta_ms"`
	Log        logger.Config `yaml:"log" toml:"log"`
}

// DefaultSettings returns settings for a plain windowed run.
func DefaultSettings() Settings {
	return Settings{
		Title:      "Space Invaders",
		Scale:      1,
		TPS:        60,
		MaxDeltaMs: MaxDeltaMs,
		Log:        logger.DefaultConfig(),
	}
}

// Load читает настройки из YAML или TOML файла (по расширению).
// Пустой путь возвращает значения по умолчанию.
func Load(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return s, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return s, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return s, fmt.Errorf("unknown settings keys in %s: %v", path, undecoded)
		}
	default:
		return s, fmt.Errorf("unsupported settings format %q", ext)
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate проверяет значения, которые нельзя молча исправить.
func (s Settings) Validate() error {
	if s.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", s.Scale)
	}
	if s.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", s.TPS)
	}
	if s.MaxDeltaMs <= 0 {
		return fmt.Errorf("max_delta_ms must be positive, got %v", s.MaxDeltaMs)
	}
	return nil
}
