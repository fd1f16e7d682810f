// Package config loads the service configuration from a YAML file.
//
// The file location is resolved in order: the RESERVATIONS_CONFIG
// environment variable, ./reservation.yaml, ~/.config/reservation.yaml,
// /etc/reservation.yaml. Individual values can be overridden through
// RESERVATIONS_* environment variables (RESERVATIONS_DB_PASSWORD etc).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"reservation-service/internal/pkg/errs"
)

const envConfigPath = "RESERVATIONS_CONFIG"

type Config struct {
	DB      DBConfig      `mapstructure:"db" yaml:"db"`
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

type DBConfig struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     uint16 `mapstructure:"port" yaml:"port"`
	User     string `mapstructure:"user" yaml:"user"`
	Password string `mapstructure:"password" yaml:"password"`
	DBName   string `mapstructure:"dbname" yaml:"dbname"`
	// MaxConnects caps the pgx pool size. Zero falls back to the default.
	MaxConnects int32 `mapstructure:"max_connects" yaml:"max_connects"`
}

type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port uint16 `mapstructure:"port" yaml:"port"`
}

// MetricsConfig controls the optional Prometheus endpoint. A zero port
// disables it.
type MetricsConfig struct {
	Port uint16 `mapstructure:"port" yaml:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// ServerURL is the connection string without a database name, used when
// creating or dropping databases in tests.
func (c DBConfig) ServerURL() string {
	if c.Password == "" {
		return fmt.Sprintf("postgres://%s@%s:%d", c.User, c.Host, c.Port)
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d", c.User, c.Password, c.Host, c.Port)
}

// URL is the full connection string for the configured database.
func (c DBConfig) URL() string {
	return c.ServerURL() + "/" + c.DBName
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Resolve returns the first existing config file from the standard
// locations, or an error when none exists.
func Resolve() (string, error) {
	candidates := make([]string, 0, 4)
	if p := os.Getenv(envConfigPath); p != "" {
		candidates = append(candidates, p)
	}
	candidates = append(candidates, "reservation.yaml")
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "reservation.yaml"))
	}
	candidates = append(candidates, "/etc/reservation.yaml")

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", errs.NewReadConfig(fmt.Errorf("no config file found in %v", candidates))
}

// Load reads and decodes the YAML file at path. An empty path resolves
// through the standard locations first.
func Load(path string) (Config, error) {
	if path == "" {
		resolved, err := Resolve()
		if err != nil {
			return Config{}, err
		}
		path = resolved
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("RESERVATIONS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigParseError); ok {
			return Config{}, errs.NewParseConfig(err)
		}
		return Config{}, errs.NewReadConfig(err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errs.NewParseConfig(err)
	}

	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.DB.Host == "" {
		cfg.DB.Host = "localhost"
	}
	if cfg.DB.Port == 0 {
		cfg.DB.Port = 5432
	}
	if cfg.DB.MaxConnects == 0 {
		cfg.DB.MaxConnects = 5
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 50051
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}
