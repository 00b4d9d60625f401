package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/soettl/fluentui/internal/domain"
	"github.com/soettl/fluentui/internal/eventbus"
)

// ErrInvalidConfig is wrapped by every validation error
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	appName        = "detailslist"
	configFileName = "config.toml"
)

// Config represents the application configuration
type Config struct {
	Version   int            `toml:"version"`
	ItemCount int            `toml:"item_count"`
	List      ListSettings   `toml:"list"`
	Scroll    ScrollSettings `toml:"scroll"`
	Loader    LoaderSettings `toml:"loader"`
}

// ListSettings describes the list geometry
type ListSettings struct {
	ItemHeight                  float64 `toml:"item_height"`
	CompactItemHeight           float64 `toml:"compact_item_height"`
	Compact                     bool    `toml:"compact"`
	SurfaceTop                  float64 `toml:"surface_top"`
	OverscanRatio               float64 `toml:"overscan_ratio"`
	ScrollOverscanRatio         float64 `toml:"scroll_overscan_ratio"`
	EnableHardwareAccelleration bool    `toml:"enable_hardware_accelleration"`
}

// ScrollSettings configures scroll sampling
type ScrollSettings struct {
	FrameInterval           Duration `toml:"frame_interval"`
	StoppedScrollingTimeout Duration `toml:"stopped_scrolling_timeout"`
	WheelStep               int      `toml:"wheel_step"`
}

// LoaderSettings configures on-demand item loading
type LoaderSettings struct {
	PageSize       int      `toml:"page_size"`
	LoadAheadCount int      `toml:"load_ahead_count"`
	Latency        Duration `toml:"latency"`
}

// Duration is a time.Duration written as a string such as "200ms"
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

// CurrentItemHeight returns the row height for the current density
func (l ListSettings) CurrentItemHeight() float64 {
	if l.Compact {
		return l.CompactItemHeight
	}
	return l.ItemHeight
}

// Validate checks the configuration for values the list cannot work with
func (c *Config) Validate() error {
	if c.ItemCount < 0 {
		return fmt.Errorf("%w: item_count must not be negative (got %d)", ErrInvalidConfig, c.ItemCount)
	}
	if !positive(c.List.ItemHeight) {
		return fmt.Errorf("%w: list.item_height must be positive (got %v)", ErrInvalidConfig, c.List.ItemHeight)
	}
	if !positive(c.List.CompactItemHeight) {
		return fmt.Errorf("%w: list.compact_item_height must be positive (got %v)", ErrInvalidConfig, c.List.CompactItemHeight)
	}
	if !nonNegative(c.List.SurfaceTop) {
		return fmt.Errorf("%w: list.surface_top must be finite and not negative (got %v)", ErrInvalidConfig, c.List.SurfaceTop)
	}
	if !nonNegative(c.List.OverscanRatio) {
		return fmt.Errorf("%w: list.overscan_ratio must be finite and not negative (got %v)", ErrInvalidConfig, c.List.OverscanRatio)
	}
	if !nonNegative(c.List.ScrollOverscanRatio) {
		return fmt.Errorf("%w: list.scroll_overscan_ratio must be finite and not negative (got %v)", ErrInvalidConfig, c.List.ScrollOverscanRatio)
	}
	if c.Scroll.FrameInterval.Duration <= 0 {
		return fmt.Errorf("%w: scroll.frame_interval must be positive", ErrInvalidConfig)
	}
	if c.Scroll.StoppedScrollingTimeout.Duration <= 0 {
		return fmt.Errorf("%w: scroll.stopped_scrolling_timeout must be positive", ErrInvalidConfig)
	}
	if c.Scroll.WheelStep <= 0 {
		return fmt.Errorf("%w: scroll.wheel_step must be positive (got %d)", ErrInvalidConfig, c.Scroll.WheelStep)
	}
	if c.Loader.PageSize <= 0 {
		return fmt.Errorf("%w: loader.page_size must be positive (got %d)", ErrInvalidConfig, c.Loader.PageSize)
	}
	if c.Loader.LoadAheadCount < 0 {
		return fmt.Errorf("%w: loader.load_ahead_count must not be negative (got %d)", ErrInvalidConfig, c.Loader.LoadAheadCount)
	}
	if c.Loader.Latency.Duration < 0 {
		return fmt.Errorf("%w: loader.latency must not be negative", ErrInvalidConfig)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
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

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, appName, configFileName)
}

// NewConfigService creates a new config service for the default location
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceWithBus creates a config service with event bus support.
// An empty path selects the default location.
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{bus: bus, filePath: path}
}

// Path returns the file the service loads from
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to the defaults when
// the file does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config

	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Publish ConfigLoaded event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	// Publish ConfigSaved event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
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

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:   1,
		ItemCount: 20000,
		List: ListSettings{
			ItemHeight:                  2,
			CompactItemHeight:           1,
			OverscanRatio:               0.5,
			EnableHardwareAccelleration: true,
		},
		Scroll: ScrollSettings{
			FrameInterval:           Duration{16 * time.Millisecond},
			StoppedScrollingTimeout: Duration{200 * time.Millisecond},
			WheelStep:               3,
		},
		Loader: LoaderSettings{
			PageSize:       50,
			LoadAheadCount: 20,
			Latency:        Duration{150 * time.Millisecond},
		},
	}
}
