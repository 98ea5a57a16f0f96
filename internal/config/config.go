package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"pitchdeck/internal/eventbus"
)

// LocalFileName is the per-deck config file looked up next to the deck
const LocalFileName = ".pitchdeck.toml"

// Pagination styles
const (
	PaginationCounter  = "counter"
	PaginationNumbered = "numbered"
	PaginationDots     = "dots"
)

// ErrConfigNotFound is returned by LoadFromPath for a missing file
var ErrConfigNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version int           `toml:"version"`
	UI      UISettings    `toml:"ui"`
	Input   InputSettings `toml:"input"`
	Deck    DeckSettings  `toml:"deck"`
}

// UISettings represents presentation-related configuration
type UISettings struct {
	Pagination       string `toml:"pagination"`        // counter, numbered or dots
	Theme            string `toml:"theme"`             // glamour style name or path; "auto" detects
	ConstrainedWidth int    `toml:"constrained_width"` // columns at or below which pagination is windowed
	OverviewColumns  int    `toml:"overview_columns"`
	StartFullscreen  bool   `toml:"start_fullscreen"`
	Animations       bool   `toml:"animations"`
	StaggerMs        int    `toml:"stagger_ms"`   // delay between revealed blocks
	IdleHideMs       int    `toml:"idle_hide_ms"` // presentation mode chrome timeout
	WordWrap         int    `toml:"word_wrap"`    // 0 wraps at the terminal width
}

// InputSettings represents gesture tuning
type InputSettings struct {
	SwipeThreshold  float64 `toml:"swipe_threshold"` // logical pixels
	WheelDebounceMs int     `toml:"wheel_debounce_ms"`
	CellWidthPx     float64 `toml:"cell_width_px"`
	CellHeightPx    float64 `toml:"cell_height_px"`
}

// DeckSettings represents deck discovery configuration
type DeckSettings struct {
	Pattern string `toml:"pattern"` // glob for directory decks
	Watch   bool   `toml:"watch"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the user-level config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "pitchdeck", "config.toml")
}

// NewConfigService creates a config service backed by path.
// An empty path selects DefaultPath().
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults
// when the file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrConfigNotFound) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing
// from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks values that would otherwise break the presenter
func (c *Config) Validate() error {
	switch c.UI.Pagination {
	case PaginationCounter, PaginationNumbered, PaginationDots:
	default:
		return fmt.Errorf("unknown pagination style %q", c.UI.Pagination)
	}
	if c.UI.ConstrainedWidth < 0 {
		return fmt.Errorf("constrained_width must not be negative")
	}
	if c.UI.OverviewColumns < 1 {
		return fmt.Errorf("overview_columns must be positive")
	}
	if c.UI.StaggerMs < 0 || c.UI.IdleHideMs < 0 {
		return fmt.Errorf("animation timings must not be negative")
	}
	if c.Input.SwipeThreshold <= 0 {
		return fmt.Errorf("swipe_threshold must be positive")
	}
	if c.Input.WheelDebounceMs <= 0 {
		return fmt.Errorf("wheel_debounce_ms must be positive")
	}
	if c.Input.CellWidthPx <= 0 || c.Input.CellHeightPx <= 0 {
		return fmt.Errorf("cell sizes must be positive")
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UI: UISettings{
			Pagination:       PaginationNumbered,
			Theme:            "auto",
			ConstrainedWidth: 80,
			OverviewColumns:  4,
			StartFullscreen:  true,
			Animations:       true,
			StaggerMs:        100,
			IdleHideMs:       3000,
		},
		Input: InputSettings{
			SwipeThreshold:  50,
			WheelDebounceMs: 100,
			CellWidthPx:     8,
			CellHeightPx:    16,
		},
		Deck: DeckSettings{
			Pattern: "**/*.md",
		},
	}
}
