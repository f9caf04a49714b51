package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/deathfx/internal/effect"
)

// Service holds all configuration for the death effect query service.
type Service struct {
	// Network
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`

	// Connection limits
	ReadTimeout   time.Duration `yaml:"read_timeout"`    // idle client disconnect (default: 120s)
	WriteTimeout  time.Duration `yaml:"write_timeout"`   // per-write deadline (default: 5s)
	MaxPacketSize int           `yaml:"max_packet_size"` // bytes, header included (max 65535)

	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Database holds effect definitions. Leave host empty to run from
	// DefinitionsFile only.
	Database DatabaseConfig `yaml:"database"`

	// DefinitionsFile is a YAML list of magic effect definitions.
	DefinitionsFile string `yaml:"definitions_file"`

	Keywords Keywords `yaml:"keywords"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// Enabled reports whether a database is configured.
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// DSN returns the PostgreSQL connection string.
// Credentials and database name are URL-escaped.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

// Keywords are the keyword editor IDs the classifier keys off.
type Keywords struct {
	NoDeathEffect string `yaml:"no_death_effect"`
	Sun           string `yaml:"sun"`
	Fire          string `yaml:"fire"`
	Frost         string `yaml:"frost"`
	Shock         string `yaml:"shock"`
	Ghost         string `yaml:"ghost"`
}

// DefaultKeywords returns the vanilla keyword editor IDs.
func DefaultKeywords() Keywords {
	return Keywords(effect.DefaultKeywords())
}

// Effect converts to the resolver's keyword set.
func (k Keywords) Effect() effect.Keywords {
	return effect.Keywords(k)
}

// DefaultService returns Service config with sensible defaults.
func DefaultService() Service {
	return Service{
		BindAddress:     "127.0.0.1",
		Port:            7780,
		ReadTimeout:     120 * time.Second,
		WriteTimeout:    5 * time.Second,
		MaxPacketSize:   16 * 1024,
		LogLevel:        "info",
		DefinitionsFile: "config/effects.yaml",
		Database: DatabaseConfig{
			Port:    5432,
			User:    "deathfx",
			DBName:  "deathfx",
			SSLMode: "disable",
		},
		Keywords: DefaultKeywords(),
	}
}

// Validate checks values that would otherwise fail at runtime.
func (s Service) Validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("invalid port %d", s.Port)
	}
	if s.MaxPacketSize < 64 || s.MaxPacketSize > 65535 {
		return fmt.Errorf("max_packet_size %d out of range [64, 65535]", s.MaxPacketSize)
	}
	if s.ReadTimeout < 0 || s.WriteTimeout < 0 {
		return fmt.Errorf("negative timeout")
	}
	return nil
}

// LoadService loads service config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadService(path string) (Service, error) {
	cfg := DefaultService()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
