package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"doodlepet/internal/pet"
	"doodlepet/internal/storage"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DOODLEPET_"

// Config is the runtime configuration. Load layers the YAML file and then
// the environment over the defaults.
type Config struct {
	StateDir string      `yaml:"state_dir" env:"STATE_DIR"`
	Store    StoreConfig `yaml:"store" envPrefix:"STORE_"`
	Pet      PetConfig   `yaml:"pet" envPrefix:"PET_"`
	UI       UIConfig    `yaml:"ui" envPrefix:"UI_"`
	Log      LogConfig   `yaml:"log" envPrefix:"LOG_"`
	Seed     int64       `yaml:"seed" env:"SEED"` // 0 picks a random seed
	Policy   pet.Policy  `yaml:"policy" envPrefix:"POLICY_"`
}

// StoreConfig selects where stats and preferences are saved.
type StoreConfig struct {
	Backend string `yaml:"backend" env:"BACKEND"` // "file", "sqlite" or "memory"
	Path    string `yaml:"path" env:"PATH"`
}

// PetConfig holds first-launch preferences. Saved preferences win.
type PetConfig struct {
	Language string  `yaml:"language" env:"LANGUAGE"` // Empty follows $LANG
	Skin     string  `yaml:"skin" env:"SKIN"`
	Scale    float64 `yaml:"scale" env:"SCALE"`
}

// UIConfig tunes the terminal host.
type UIConfig struct {
	FrameInterval      time.Duration `yaml:"frame_interval" env:"FRAME_INTERVAL"`
	CheckpointInterval time.Duration `yaml:"checkpoint_interval" env:"CHECKPOINT_INTERVAL"`
	Bell               bool          `yaml:"bell" env:"BELL"` // Ring the terminal bell for sound cues
	Mouse              bool          `yaml:"mouse" env:"MOUSE"`
}

// LogConfig places the debug log. The terminal is owned by the UI, so
// logs always go to a file.
type LogConfig struct {
	Path string `yaml:"path" env:"PATH"`
}

// DefaultStateDir returns ~/.config/doodlepet.
func DefaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".doodlepet"
	}
	return filepath.Join(home, ".config", "doodlepet")
}

// DefaultPath returns the config file location used when none is given.
func DefaultPath() string {
	return filepath.Join(DefaultStateDir(), "config.yaml")
}

func defaults() *Config {
	return &Config{
		StateDir: DefaultStateDir(),
		Store: StoreConfig{
			Backend: storage.BackendFile,
		},
		Pet: PetConfig{
			Skin:  pet.DefaultSkin,
			Scale: pet.DefaultScale,
		},
		UI: UIConfig{
			FrameInterval:      50 * time.Millisecond,
			CheckpointInterval: time.Minute,
			Bell:               false,
			Mouse:              true,
		},
		Policy: pet.DefaultPolicy(),
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// if it exists, then DOODLEPET_* environment variables.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// No file: defaults plus env vars
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.resolvePaths()
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolvePaths fills in file locations left empty under the state dir.
func (c *Config) resolvePaths() {
	if strings.TrimSpace(c.StateDir) == "" {
		c.StateDir = DefaultStateDir()
	}
	if c.Store.Path == "" {
		name := "state.json"
		if strings.EqualFold(c.Store.Backend, storage.BackendSQLite) {
			name = "state.db"
		}
		c.Store.Path = filepath.Join(c.StateDir, name)
	}
	if c.Log.Path == "" {
		c.Log.Path = filepath.Join(c.StateDir, "doodlepet.log")
	}
}

func validate(cfg *Config) error {
	switch strings.ToLower(cfg.Store.Backend) {
	case storage.BackendFile, storage.BackendSQLite, storage.BackendMemory:
	default:
		return fmt.Errorf("store.backend must be file, sqlite or memory, got %q", cfg.Store.Backend)
	}
	if cfg.UI.FrameInterval <= 0 {
		return fmt.Errorf("ui.frame_interval must be positive, got %s", cfg.UI.FrameInterval)
	}
	if cfg.UI.CheckpointInterval <= 0 {
		return fmt.Errorf("ui.checkpoint_interval must be positive, got %s", cfg.UI.CheckpointInterval)
	}
	if cfg.Pet.Scale < pet.MinScale || cfg.Pet.Scale > pet.MaxScale {
		return fmt.Errorf("pet.scale must be between %.1f and %.1f, got %v", pet.MinScale, pet.MaxScale, cfg.Pet.Scale)
	}
	if _, ok := pet.Skins[cfg.Pet.Skin]; !ok {
		return fmt.Errorf("pet.skin %q is not a known skin", cfg.Pet.Skin)
	}
	if err := cfg.Policy.Validate(); err != nil {
		return fmt.Errorf("invalid policy: %w", err)
	}
	return nil
}

// DefaultPrefs returns the preferences a first launch starts with.
func (c *Config) DefaultPrefs(language string) pet.Prefs {
	p := pet.DefaultPrefs(language)
	p.Skin = c.Pet.Skin
	p.Scale = pet.ClampScale(c.Pet.Scale)
	return p
}
