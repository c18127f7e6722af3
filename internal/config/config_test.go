package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir_XDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/config/wpg", dir)
}

func TestDir_Default(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	dir, err := Dir()
	require.NoError(t, err)

	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, ".config", "wpg"), dir)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Import.MaxLetters)
	assert.True(t, cfg.Import.Strict)
	assert.Equal(t, 2000, cfg.Split.UnitsPer)
	assert.Equal(t, 3, cfg.Generator.MinWordLetters)
	assert.Equal(t, 4, cfg.Generator.MinLetters)
	assert.Equal(t, 7, cfg.Generator.MaxLetters)
	assert.Equal(t, 10, cfg.Generator.PuzzlesPerLength)
	assert.Equal(t, "puzzles", cfg.Generator.OutputDir)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_YAMLAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
import:
  min_letters: 2
generator:
  min_letters: 5
  max_letters: 6
  output_dir: out
log:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	t.Setenv("WPG_GEN_MAX_LETTERS", "8")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Import.MinLetters)
	assert.True(t, cfg.Import.Strict)
	assert.Equal(t, 5, cfg.Generator.MinLetters)
	assert.Equal(t, 8, cfg.Generator.MaxLetters, "env overrides yaml")
	assert.Equal(t, "out", cfg.Generator.OutputDir)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Generator.PuzzlesPerLength, "unset keys keep defaults")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generator: [\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Import:    ImportConfig{MaxLetters: 8},
			Split:     SplitConfig{UnitsPer: 10, MinLetters: 2, MaxLetters: 8},
			Generator: GeneratorConfig{MinWordLetters: 3, MinLetters: 4, MaxLetters: 7, OutputDir: "out"},
			Log:       LogConfig{Level: "info", Format: "text"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"unbounded import max", func(c *Config) { c.Import.MaxLetters = 0 }, false},
		{"inverted generator letters", func(c *Config) { c.Generator.MinLetters = 9 }, true},
		{"zero generator max letters", func(c *Config) { c.Generator.MaxLetters = 0 }, true},
		{"inverted word bounds", func(c *Config) { c.Generator.MinWords, c.Generator.MaxWords = 5, 2 }, true},
		{"negative import min", func(c *Config) { c.Import.MinLetters = -1 }, true},
		{"zero units per", func(c *Config) { c.Split.UnitsPer = 0 }, true},
		{"zero min word letters", func(c *Config) { c.Generator.MinWordLetters = 0 }, true},
		{"missing output dir", func(c *Config) { c.Generator.OutputDir = "" }, true},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
