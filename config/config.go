// Package config loads game settings from YAML, .env files and SIMON_*
// environment variables, in that order of increasing precedence
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/lixenwraith/simon/audio"
	"github.com/lixenwraith/simon/constants"
)

// Environment variables read by Load
const (
	EnvSeed    = "SIMON_SEED"
	EnvStrict  = "SIMON_STRICT"
	EnvDebug   = "SIMON_DEBUG"
	EnvJournal = "SIMON_JOURNAL"

	EnvAudioEnabled = "SIMON_AUDIO_ENABLED"
	EnvMasterVolume = "SIMON_MASTER_VOLUME" // 0-100
	EnvSampleRate   = "SIMON_SAMPLE_RATE"
	EnvWave         = "SIMON_WAVE"
)

// DefaultEnvFile is loaded when present
const DefaultEnvFile = ".env"

var (
	ErrInvalidVolume     = errors.New("volume must be within 0-100")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)

// Config is the on-disk settings document
type Config struct {
	Seed    int64             `yaml:"seed"`
	Strict  bool              `yaml:"strict"`
	Debug   bool              `yaml:"debug"`
	Journal string            `yaml:"journal,omitempty"`
	Audio   AudioSection      `yaml:"audio"`
	Keys    map[string]string `yaml:"keys,omitempty"`
}

// AudioSection mirrors audio.AudioConfig in file-friendly units
type AudioSection struct {
	Enabled    bool   `yaml:"enabled"`
	Volume     int    `yaml:"volume"` // percent
	SampleRate int    `yaml:"sample_rate"`
	Wave       string `yaml:"wave"`
}

// Default returns the built-in settings; seed 0 means time-seeded
func Default() *Config {
	return &Config{
		Audio: AudioSection{
			Enabled:    true,
			Volume:     int(constants.DefaultMasterVolume * 100),
			SampleRate: constants.DefaultSampleRate,
			Wave:       audio.WaveSine.String(),
		},
	}
}

// Load reads path (optional), the given env files (DefaultEnvFile when none)
// and the process environment. Missing files are not errors
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("open config: %w", err)
		default:
			err = cfg.decode(f)
			f.Close()
			if err != nil {
				return nil, fmt.Errorf("config %s: %w", path, err)
			}
		}
	}

	if err := LoadEnvFiles(envFiles...); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(r); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return yaml.UnmarshalStrict(data, c)
}

// LoadEnvFiles populates unset environment variables from .env files
// Variables already present in the environment win
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("env file %s: %w", file, err)
		}
	}
	return nil
}

// applyEnv overrides fields from SIMON_* variables; malformed values are ignored
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvSeed); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = seed
		}
	}
	if v := os.Getenv(EnvStrict); v != "" {
		if strict, err := strconv.ParseBool(v); err == nil {
			c.Strict = strict
		}
	}
	if v := os.Getenv(EnvDebug); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Debug = debug
		}
	}
	if v := os.Getenv(EnvJournal); v != "" {
		c.Journal = v
	}
	c.Audio.applyEnv()
}

// applyEnv overrides the audio section; volumes outside 0-100 are clamped
func (a *AudioSection) applyEnv() {
	if v := os.Getenv(EnvAudioEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			a.Enabled = enabled
		}
	}
	if v := os.Getenv(EnvMasterVolume); v != "" {
		if volume, err := strconv.Atoi(v); err == nil {
			a.Volume = min(max(volume, 0), 100)
		}
	}
	if v := os.Getenv(EnvSampleRate); v != "" {
		if rate, err := strconv.Atoi(v); err == nil && rate > 0 {
			a.SampleRate = rate
		}
	}
	if v := os.Getenv(EnvWave); v != "" {
		if wave, err := audio.ParseWave(v); err == nil {
			a.Wave = wave.String()
		}
	}
}

// Validate checks ranges that YAML cannot express
func (c *Config) Validate() error {
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		return fmt.Errorf("%w: got %d", ErrInvalidVolume, c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleRate, c.Audio.SampleRate)
	}
	if _, err := audio.ParseWave(c.Audio.Wave); err != nil {
		return err
	}
	return nil
}

// ToAudioConfig converts the audio section as loaded and overridden
func (c *Config) ToAudioConfig() *audio.AudioConfig {
	cfg := audio.DefaultAudioConfig()
	cfg.Enabled = c.Audio.Enabled
	cfg.MasterVolume = float64(c.Audio.Volume) / 100.0
	cfg.SampleRate = c.Audio.SampleRate
	if wave, err := audio.ParseWave(c.Audio.Wave); err == nil {
		cfg.Wave = wave
	}
	return cfg
}

// Save writes the config as YAML
func (c *Config) Save(w io.Writer) error {
	out, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
