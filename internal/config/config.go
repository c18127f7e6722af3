// Package config provides configuration loading for wpg.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Dir returns the wpg config directory, respecting XDG_CONFIG_HOME.
// Defaults to ~/.config/wpg if XDG_CONFIG_HOME is not set.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "wpg"), nil
}

// Config is the root configuration.
type Config struct {
	Import    ImportConfig    `yaml:"import"`
	Split     SplitConfig     `yaml:"split"`
	Generator GeneratorConfig `yaml:"generator"`
	Log       LogConfig       `yaml:"log"`
}

// ImportConfig controls which lines of a word list enter the dictionary.
type ImportConfig struct {
	MinLetters int  `yaml:"min_letters" env:"WPG_IMPORT_MIN_LETTERS" env-default:"0"`
	MaxLetters int  `yaml:"max_letters" env:"WPG_IMPORT_MAX_LETTERS" env-default:"8"`
	Strict     bool `yaml:"strict"      env:"WPG_IMPORT_STRICT"      env-default:"true"`
}

// SplitConfig controls splitting a large word list into review files.
type SplitConfig struct {
	UnitsPer   int `yaml:"units_per"   env:"WPG_SPLIT_UNITS_PER"   env-default:"2000"`
	MinLetters int `yaml:"min_letters" env:"WPG_SPLIT_MIN_LETTERS" env-default:"2"`
	MaxLetters int `yaml:"max_letters" env:"WPG_SPLIT_MAX_LETTERS" env-default:"8"`
}

// GeneratorConfig controls puzzle selection and output.
type GeneratorConfig struct {
	MinWordLetters   int    `yaml:"min_word_letters"   env:"WPG_GEN_MIN_WORD_LETTERS"   env-default:"3"`
	MinLetters       int    `yaml:"min_letters"        env:"WPG_GEN_MIN_LETTERS"        env-default:"4"`
	MaxLetters       int    `yaml:"max_letters"        env:"WPG_GEN_MAX_LETTERS"        env-default:"7"`
	MinWords         int    `yaml:"min_words"          env:"WPG_GEN_MIN_WORDS"          env-default:"4"`
	MaxWords         int    `yaml:"max_words"          env:"WPG_GEN_MAX_WORDS"          env-default:"0"`
	PuzzlesPerLength int    `yaml:"puzzles_per_length" env:"WPG_GEN_PUZZLES_PER_LENGTH" env-default:"10"`
	OutputDir        string `yaml:"output_dir"         env:"WPG_GEN_OUTPUT_DIR"         env-default:"puzzles"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"WPG_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"WPG_LOG_FORMAT" env-default:"text"`
}

// Load reads the YAML file at path and applies environment overrides.
// Priority: ENV > YAML > defaults. A missing file is not an error; the
// configuration then comes from ENV and defaults only. Defaults also fill
// fields the file sets to their zero value, so use WPG_IMPORT_STRICT=false
// to turn off strict import.
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// DefaultPath returns {Dir()}/config.yaml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
