// Package config loads server settings from defaults, an optional YAML file
// and CYBERFOLIO_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "cyberfolio.yml"

// EnvPrefix prefixes environment overrides. Nested keys use a double
// underscore: CYBERFOLIO_LIVE__POINTER_THROTTLE=20ms.
const EnvPrefix = "CYBERFOLIO_"

// Config holds every server setting.
type Config struct {
	Port        string    `koanf:"port" yaml:"port"`
	Mode        string    `koanf:"mode" yaml:"mode"`
	Database    string    `koanf:"database" yaml:"database"`
	ContentPath string    `koanf:"content_path" yaml:"content_path"`
	ImagesDir   string    `koanf:"images_dir" yaml:"images_dir"`
	Admin       Admin     `koanf:"admin" yaml:"admin"`
	Live        Live      `koanf:"live" yaml:"live"`
	Name        NameIntro `koanf:"name" yaml:"name"`
	Roles       RoleTyper `koanf:"roles" yaml:"roles"`
	// VisitorRetention is how long page views are kept.
	VisitorRetention time.Duration `koanf:"visitor_retention" yaml:"visitor_retention"`
}

// Admin holds dashboard credentials.
type Admin struct {
	Username string `koanf:"username" yaml:"username"`
	Password string `koanf:"password" yaml:"password"`
}

// Live tunes the websocket session.
type Live struct {
	PointerThrottle time.Duration `koanf:"pointer_throttle" yaml:"pointer_throttle"`
	ScrollThrottle  time.Duration `koanf:"scroll_throttle" yaml:"scroll_throttle"`
	QueueSize       int           `koanf:"queue_size" yaml:"queue_size"`
}

// NameIntro paces the hero name animation.
type NameIntro struct {
	Hold time.Duration `koanf:"hold" yaml:"hold"`
	Step time.Duration `koanf:"step" yaml:"step"`
}

// RoleTyper paces the tagline role cycle.
type RoleTyper struct {
	Stroke time.Duration `koanf:"stroke" yaml:"stroke"`
	Pause  time.Duration `koanf:"pause" yaml:"pause"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Port:        "8080",
		Mode:        "debug",
		Database:    "data/cyberfolio.db",
		ContentPath: "",
		ImagesDir:   "./images",
		Live: Live{
			PointerThrottle: 10 * time.Millisecond,
			QueueSize:       64,
		},
		Name: NameIntro{
			Hold: 2000 * time.Millisecond,
			Step: 100 * time.Millisecond,
		},
		Roles: RoleTyper{
			Stroke: 50 * time.Millisecond,
			Pause:  2000 * time.Millisecond,
		},
		VisitorRetention: 365 * 24 * time.Hour,
	}
}

// Load reads the config file at path if it exists, then applies
// environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// PORT is honored as-is for hosting platforms that set it.
	if port := os.Getenv("PORT"); port != "" {
		k.Set("port", port)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

var validModes = map[string]bool{
	"debug":   true,
	"release": true,
	"test":    true,
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode %q: must be one of debug, release, test", c.Mode)
	}
	if c.Database == "" {
		return fmt.Errorf("database is required")
	}
	if c.Live.PointerThrottle < 0 || c.Live.ScrollThrottle < 0 {
		return fmt.Errorf("live throttles must be non-negative")
	}
	if c.Live.QueueSize < 1 {
		return fmt.Errorf("live.queue_size must be positive")
	}
	if c.Name.Hold <= 0 || c.Name.Step <= 0 {
		return fmt.Errorf("name.hold and name.step must be positive")
	}
	if c.Roles.Stroke <= 0 || c.Roles.Pause <= 0 {
		return fmt.Errorf("roles.stroke and roles.pause must be positive")
	}
	return nil
}
