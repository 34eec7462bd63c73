package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/whack/audio"
	"github.com/lixenwraith/whack/mole"
)

// TestDefault verifies defaults match the stock balance
func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Round.Seconds != 30 {
		t.Errorf("round seconds = %d, want 30", cfg.Round.Seconds)
	}
	if cfg.Holes() != 9 {
		t.Errorf("holes = %d, want 9", cfg.Holes())
	}
	if got, want := cfg.MoleBalance(), mole.DefaultBalance(); got != want {
		t.Errorf("balance = %+v, want %+v", got, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "whack.toml")
	content := `
debug = true

[round]
seconds = 45

[grid]
rows = 2
cols = 4

[balance]
hit_min_ms = 1200
hit_max_ms = 2200
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WHACK_ROUND_SECONDS", "20")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Round.Seconds != 20 {
		t.Errorf("env should override file: seconds = %d", cfg.Round.Seconds)
	}
	if cfg.Grid.Rows != 2 || cfg.Grid.Cols != 4 {
		t.Errorf("grid = %dx%d", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if !cfg.Debug {
		t.Error("debug not read from file")
	}
	b := cfg.MoleBalance()
	if b.HitMin != 1200*time.Millisecond || b.HitMax != 2200*time.Millisecond {
		t.Errorf("hit range = [%v, %v]", b.HitMin, b.HitMax)
	}
	if b.SpawnMin != 1500*time.Millisecond {
		t.Errorf("unset key lost default: spawn min = %v", b.SpawnMin)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing explicit file")
	}
}

func TestLoadWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load without file: %v", err)
	}
	if cfg.Round.Seconds != 30 {
		t.Errorf("seconds = %d", cfg.Round.Seconds)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("WHACK_GRID_ROWS", "4")
	_, err := Load(writeEmpty(t))
	if !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("err = %v, want ErrInvalidGrid", err)
	}
}

func writeEmpty(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "empty.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero seconds", func(c *Config) { c.Round.Seconds = 0 }, ErrInvalidRound},
		{"empty grid", func(c *Config) { c.Grid.Cols = 0 }, ErrInvalidGrid},
		{"too many holes", func(c *Config) { c.Grid.Rows, c.Grid.Cols = 5, 2 }, ErrInvalidGrid},
		{"spawn inverted", func(c *Config) { c.Balance.SpawnMaxMs = 10 }, ErrInvalidBalance},
		{"hit zero", func(c *Config) { c.Balance.HitMinMs = 0 }, ErrInvalidBalance},
		{"negative step", func(c *Config) { c.Balance.FactorStep = -0.1 }, ErrInvalidBalance},
		{"zero floor", func(c *Config) { c.Balance.MinFactor = 0 }, ErrInvalidBalance},
		{"floor above one", func(c *Config) { c.Balance.MinFactor = 1.5 }, ErrInvalidBalance},
		{"floor under 1ms", func(c *Config) { c.Balance.HitMinMs, c.Balance.MinFactor = 1, 0.1 }, ErrInvalidBalance},
		{"loud", func(c *Config) { c.Audio.HitVolume = 1.2 }, ErrInvalidAudio},
		{"no rate", func(c *Config) { c.Audio.SampleRate = 0 }, ErrInvalidAudio},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAudioConfigConversion(t *testing.T) {
	cfg := Default()
	cfg.Audio.HitVolume = 0.25
	ac := cfg.AudioConfig()

	if ac.PoolVolumes[audio.PoolHit] != 0.25 {
		t.Errorf("hit volume = %v", ac.PoolVolumes[audio.PoolHit])
	}
	if ac.SampleRate != cfg.Audio.SampleRate || !ac.Enabled {
		t.Errorf("audio config = %+v", ac)
	}
}

func TestLoadDotEnv(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("WHACK_TEST_DOTENV=yes\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WHACK_TEST_DOTENV", "")
	os.Unsetenv("WHACK_TEST_DOTENV")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("WHACK_TEST_DOTENV"); got != "yes" {
		t.Errorf("WHACK_TEST_DOTENV = %q", got)
	}
}
