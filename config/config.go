package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/nzai/stockapi/constants"
	"go.uber.org/zap"
)

// Config global config
type Config struct {
	Server Server `toml:"server"`
	Yahoo  Yahoo  `toml:"yahoo"`
	Cache  Cache  `toml:"cache"`
	Log    Log    `toml:"log"`
}

// Server http server config
type Server struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	Pprof           bool   `toml:"pprof"`
	ReadTimeoutSec  int    `toml:"read_timeout_sec"`
	WriteTimeoutSec int    `toml:"write_timeout_sec"`
}

// Address return listen address
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// ReadTimeout return read timeout
func (s Server) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSec) * time.Second
}

// WriteTimeout return write timeout
func (s Server) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSec) * time.Second
}

// Yahoo yahoo finance source config
type Yahoo struct {
	BaseURL    string `toml:"base_url"`
	UserAgent  string `toml:"user_agent"`
	TimeoutSec int    `toml:"timeout_sec"`
}

// Timeout return outbound request timeout
func (y Yahoo) Timeout() time.Duration {
	return time.Duration(y.TimeoutSec) * time.Second
}

// Cache record cache config, disabled when store is empty
type Cache struct {
	Store  string `toml:"store"`
	TTLSec int    `toml:"ttl_sec"`
}

// Enabled check cache is configured
func (c Cache) Enabled() bool {
	return c.Store != "" && c.TTLSec > 0
}

// TTL return record ttl
func (c Cache) TTL() time.Duration {
	return time.Duration(c.TTLSec) * time.Second
}

// Log logger config, file empty means stdout only
type Log struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// Default return config with default values
func Default() *Config {
	return &Config{
		Server: Server{
			Host:            constants.DefaultHost,
			Port:            constants.DefaultPort,
			ReadTimeoutSec:  30,
			WriteTimeoutSec: 120,
		},
		Yahoo: Yahoo{
			BaseURL:    constants.DefaultYahooBaseURL,
			UserAgent:  constants.DefaultUserAgent,
			TimeoutSec: int(constants.DefaultRequestTimeout / time.Second),
		},
		Log: Log{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  100,
			MaxBackups: 7,
			MaxAgeDays: 30,
		},
	}
}

// Valid validate config
func (s Config) Valid() error {
	if strings.TrimSpace(s.Server.Host) == "" {
		return errors.New("server.host undefined")
	}

	if s.Server.Port <= 0 || s.Server.Port > 65535 {
		return fmt.Errorf("server.port %d invalid", s.Server.Port)
	}

	if s.Server.ReadTimeoutSec < 0 || s.Server.WriteTimeoutSec < 0 {
		return errors.New("server timeouts must not be negative")
	}

	if strings.TrimSpace(s.Yahoo.BaseURL) == "" {
		return errors.New("yahoo.base_url undefined")
	}

	if s.Yahoo.TimeoutSec <= 0 {
		return errors.New("yahoo.timeout_sec must be positive")
	}

	if s.Cache.TTLSec < 0 {
		return errors.New("cache.ttl_sec must not be negative")
	}

	if s.Cache.TTLSec > 0 && strings.TrimSpace(s.Cache.Store) == "" {
		return errors.New("cache.store undefined while cache.ttl_sec set")
	}

	switch s.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format %s invalid", s.Log.Format)
	}

	return nil
}

// Parse parse config from file, an empty path keeps defaults.
// A .env file in working directory and environment variables override the file.
func Parse(filePath string) (*Config, error) {
	config := Default()
	if filePath != "" {
		err := decodeFile(filePath, config)
		if err != nil {
			return nil, err
		}
	}

	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		zap.L().Warn("load .env failed", zap.Error(err))
	}

	err = config.applyEnv(os.LookupEnv)
	if err != nil {
		return nil, err
	}

	return config, config.Valid()
}

func decodeFile(filePath string, config *Config) error {
	meta, err := toml.DecodeFile(filePath, config)
	if err != nil {
		zap.L().Error("decode config file failed", zap.Error(err), zap.String("path", filePath))
		return err
	}

	for _, key := range meta.Undecoded() {
		zap.L().Warn("unknown config key", zap.String("key", key.String()), zap.String("path", filePath))
	}

	return nil
}

func (s *Config) applyEnv(lookup func(string) (string, bool)) error {
	if value, found := lookup("HOST"); found && value != "" {
		s.Server.Host = value
	}

	if value, found := lookup("PORT"); found && value != "" {
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("PORT %q invalid: %w", value, err)
		}
		s.Server.Port = port
	}

	if value, found := lookup("LOG_LEVEL"); found && value != "" {
		s.Log.Level = value
	}

	if value, found := lookup("YAHOO_BASE_URL"); found && value != "" {
		s.Yahoo.BaseURL = value
	}

	if value, found := lookup("CACHE_STORE"); found {
		s.Cache.Store = value
	}

	if value, found := lookup("CACHE_TTL_SEC"); found && value != "" {
		ttl, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("CACHE_TTL_SEC %q invalid: %w", value, err)
		}
		s.Cache.TTLSec = ttl
	}

	return nil
}
