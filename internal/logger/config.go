package logger

// Config описывает параметры логгера
type Config struct {
	Level       string `yaml:"level" toml:"level"`
	Format      string `yaml:"format" toml:"format"` // json или console
	Development bool   `yaml:"development" toml:"development"`
}

// DefaultConfig returns the configuration used when no settings file is given.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "console",
		Development: false,
	}
}

// DevelopmentConfig включает debug-уровень и человекочитаемый вывод
func DevelopmentConfig() Config {
	return Config{
		Level:       "debug",
		Format:      "console",
		Development: true,
	}
}
