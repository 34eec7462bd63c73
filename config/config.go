// Package config loads game settings from defaults, an optional TOML file,
// a .env file and WHACK_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lixenwraith/whack/audio"
	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/mole"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. WHACK_ROUND_SECONDS
const EnvPrefix = "WHACK"

// DefaultConfigName is looked up in the working directory when no path is given
const DefaultConfigName = "whack"

var (
	ErrInvalidBalance = errors.New("invalid balance")
	ErrInvalidGrid    = errors.New("invalid grid")
	ErrInvalidRound   = errors.New("invalid round")
	ErrInvalidAudio   = errors.New("invalid audio")
)

// Config is the complete game configuration
type Config struct {
	Round   RoundConfig   `mapstructure:"round"`
	Grid    GridConfig    `mapstructure:"grid"`
	Balance BalanceConfig `mapstructure:"balance"`
	Audio   AudioSection  `mapstructure:"audio"`
	Debug   bool          `mapstructure:"debug"`
}

// RoundConfig controls round length and initial mute
type RoundConfig struct {
	Seconds int  `mapstructure:"seconds"`
	Muted   bool `mapstructure:"muted"`
}

// GridConfig sizes the hole grid
type GridConfig struct {
	Rows int `mapstructure:"rows"`
	Cols int `mapstructure:"cols"`
}

// BalanceConfig holds mole timing in milliseconds and the difficulty curve
type BalanceConfig struct {
	SpawnMinMs int     `mapstructure:"spawn_min_ms"`
	SpawnMaxMs int     `mapstructure:"spawn_max_ms"`
	HitMinMs   int     `mapstructure:"hit_min_ms"`
	HitMaxMs   int     `mapstructure:"hit_max_ms"`
	FactorStep float64 `mapstructure:"factor_step"`
	MinFactor  float64 `mapstructure:"min_factor"`
}

// AudioSection holds playback settings
type AudioSection struct {
	Enabled        bool    `mapstructure:"enabled"`
	SampleRate     int     `mapstructure:"sample_rate"`
	MasterVolume   float64 `mapstructure:"master_volume"`
	HitVolume      float64 `mapstructure:"hit_volume"`
	GameOverVolume float64 `mapstructure:"gameover_volume"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("round.seconds", constants.RoundSeconds)
	v.SetDefault("round.muted", false)

	v.SetDefault("grid.rows", constants.GridRows)
	v.SetDefault("grid.cols", constants.GridCols)

	v.SetDefault("balance.spawn_min_ms", constants.SpawnDelayMin.Milliseconds())
	v.SetDefault("balance.spawn_max_ms", constants.SpawnDelayMax.Milliseconds())
	v.SetDefault("balance.hit_min_ms", constants.HitDelayMin.Milliseconds())
	v.SetDefault("balance.hit_max_ms", constants.HitDelayMax.Milliseconds())
	v.SetDefault("balance.factor_step", constants.DelayFactorStep)
	v.SetDefault("balance.min_factor", constants.MinDelayFactor)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.sample_rate", constants.SampleRate)
	v.SetDefault("audio.master_volume", constants.DefaultMasterVolume)
	v.SetDefault("audio.hit_volume", constants.DefaultHitVolume)
	v.SetDefault("audio.gameover_volume", constants.DefaultGameOverVolume)

	v.SetDefault("debug", false)
}

// Default returns the configuration with no file or environment applied
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	// Defaults alone always decode
	_ = v.Unmarshal(cfg)
	return cfg
}

// LoadDotEnv loads KEY=VALUE pairs from path into the environment
// A missing file is not an error; existing variables are not overwritten
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads the configuration; path may be empty to look for ./whack.toml
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings that would break the game invariants
func (c *Config) Validate() error {
	if c.Round.Seconds <= 0 {
		return fmt.Errorf("%w: seconds must be positive, got %d", ErrInvalidRound, c.Round.Seconds)
	}

	holes := c.Grid.Rows * c.Grid.Cols
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 || holes > constants.MaxHoles {
		return fmt.Errorf("%w: %dx%d must hold 1-%d holes", ErrInvalidGrid, c.Grid.Rows, c.Grid.Cols, constants.MaxHoles)
	}

	b := c.Balance
	if b.SpawnMinMs <= 0 || b.SpawnMaxMs < b.SpawnMinMs {
		return fmt.Errorf("%w: spawn range [%d, %d]ms", ErrInvalidBalance, b.SpawnMinMs, b.SpawnMaxMs)
	}
	if b.HitMinMs <= 0 || b.HitMaxMs < b.HitMinMs {
		return fmt.Errorf("%w: hit range [%d, %d]ms", ErrInvalidBalance, b.HitMinMs, b.HitMaxMs)
	}
	if b.FactorStep < 0 {
		return fmt.Errorf("%w: factor step %v is negative", ErrInvalidBalance, b.FactorStep)
	}
	if b.MinFactor <= 0 || b.MinFactor > 1 {
		return fmt.Errorf("%w: min factor %v outside (0, 1]", ErrInvalidBalance, b.MinFactor)
	}
	// The floor must still yield at least a millisecond
	if lo, _ := mole.DelayRange(constants.MaxCheckedScore, c.MoleBalance()); lo < time.Millisecond {
		return fmt.Errorf("%w: delay floor %v below 1ms", ErrInvalidBalance, lo)
	}

	a := c.Audio
	if a.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidAudio, a.SampleRate)
	}
	for name, vol := range map[string]float64{"master": a.MasterVolume, "hit": a.HitVolume, "gameover": a.GameOverVolume} {
		if vol < 0 || vol > 1 {
			return fmt.Errorf("%w: %s volume %v outside [0, 1]", ErrInvalidAudio, name, vol)
		}
	}
	return nil
}

// Holes returns the number of holes in the grid
func (c *Config) Holes() int {
	return c.Grid.Rows * c.Grid.Cols
}

// MoleBalance converts the balance section for the mole package
func (c *Config) MoleBalance() mole.Balance {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	return mole.Balance{
		SpawnMin:   ms(c.Balance.SpawnMinMs),
		SpawnMax:   ms(c.Balance.SpawnMaxMs),
		HitMin:     ms(c.Balance.HitMinMs),
		HitMax:     ms(c.Balance.HitMaxMs),
		FactorStep: c.Balance.FactorStep,
		MinFactor:  c.Balance.MinFactor,
	}
}

// AudioConfig converts the audio section for the audio package
func (c *Config) AudioConfig() *audio.AudioConfig {
	return &audio.AudioConfig{
		Enabled:      c.Audio.Enabled,
		SampleRate:   c.Audio.SampleRate,
		MasterVolume: c.Audio.MasterVolume,
		PoolVolumes: map[audio.Pool]float64{
			audio.PoolHit:      c.Audio.HitVolume,
			audio.PoolGameOver: c.Audio.GameOverVolume,
		},
	}
}
