package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Session SessionConfig `mapstructure:"session"`
	Render  RenderConfig  `mapstructure:"render"`
	Export  ExportConfig  `mapstructure:"export"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Port        string        `mapstructure:"port"`
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
}

type SessionConfig struct {
	TTL    time.Duration `mapstructure:"ttl"`
	Cookie string        `mapstructure:"cookie"`
	Max    int           `mapstructure:"max"` // live sessions before the least recently used is dropped
}

type RenderConfig struct {
	DefaultTemplate string `mapstructure:"default_template"`
}

type ExportConfig struct {
	ChromePath  string        `mapstructure:"chrome_path"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Attempts    int           `mapstructure:"attempts"`
	Backoff     time.Duration `mapstructure:"backoff"`
	PaperWidth  float64       `mapstructure:"paper_width"`
	PaperHeight float64       `mapstructure:"paper_height"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

const (
	configName = "resume-builder"
	envPrefix  = "RESUME"

	maxExportAttempts = 10
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("session.ttl", 2*time.Hour)
	v.SetDefault("session.cookie", "resume_session")
	v.SetDefault("session.max", 10000)
	v.SetDefault("render.default_template", "classic")
	v.SetDefault("export.chrome_path", "")
	v.SetDefault("export.timeout", 60*time.Second)
	v.SetDefault("export.attempts", 3)
	v.SetDefault("export.backoff", time.Second)
	v.SetDefault("export.paper_width", 8.27)
	v.SetDefault("export.paper_height", 11.69)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Load reads configuration from defaults, an optional config file and the
// environment, in increasing order of precedence. An empty path searches
// the working directory and ~/.resume-builder for resume-builder.yaml.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// kept for deployments that predate the RESUME_ prefix
	_ = v.BindEnv("server.port", envPrefix+"_SERVER_PORT", "PORT")
	_ = v.BindEnv("export.chrome_path", envPrefix+"_EXPORT_CHROME_PATH", "CHROME_PATH")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, "."+configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return errors.New("config: server.port is empty")
	}
	if c.Session.Cookie == "" {
		return errors.New("config: session.cookie is empty")
	}
	if c.Session.Max < 1 {
		return fmt.Errorf("config: session.max must be at least 1, got %d", c.Session.Max)
	}
	if c.Export.Attempts < 1 || c.Export.Attempts > maxExportAttempts {
		return fmt.Errorf("config: export.attempts must be between 1 and %d, got %d", maxExportAttempts, c.Export.Attempts)
	}
	return nil
}
