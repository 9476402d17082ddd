package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/studyplan/internal/pomodoro"
)

// Config is the application configuration.
type Config struct {
	DB     DBConfig     `mapstructure:"db"`
	Log    LogConfig    `mapstructure:"log"`
	Timer  TimerConfig  `mapstructure:"timer"`
	Export ExportConfig `mapstructure:"export"`
}

// DBConfig locates the session database. An empty path uses the default
// data directory.
type DBConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File receives log output. Empty means studyplan.log in the data dir.
	File string `mapstructure:"file"`
}

// TimerConfig sets Pomodoro phase lengths.
type TimerConfig struct {
	Work           time.Duration `mapstructure:"work"`
	ShortBreak     time.Duration `mapstructure:"short_break"`
	LongBreak      time.Duration `mapstructure:"long_break"`
	LongBreakEvery int           `mapstructure:"long_break_every"`
}

// Pomodoro converts the timer settings.
func (t TimerConfig) Pomodoro() pomodoro.Config {
	return pomodoro.Config{
		Work:           t.Work,
		ShortBreak:     t.ShortBreak,
		LongBreak:      t.LongBreak,
		LongBreakEvery: t.LongBreakEvery,
	}
}

// ExportConfig controls calendar export.
type ExportConfig struct {
	// Timezone is an IANA name used for ICS event times; "Local" uses the
	// system zone.
	Timezone string `mapstructure:"timezone"`
}

// Location resolves the export timezone.
func (e ExportConfig) Location() (*time.Location, error) {
	if e.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(e.Timezone)
}

// Load reads configuration from path (or config.yaml in the standard
// locations), then environment variables prefixed STUDYPLAN_.
// Precedence: environment > file > defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := pomodoro.DefaultConfig()
	v.SetDefault("db.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
	v.SetDefault("timer.work", def.Work)
	v.SetDefault("timer.short_break", def.ShortBreak)
	v.SetDefault("timer.long_break", def.LongBreak)
	v.SetDefault("timer.long_break_every", def.LongBreakEvery)
	v.SetDefault("export.timezone", "Local")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("STUDYPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid config: log.format must be json or console, got %q", c.Log.Format)
	}
	if c.Timer.Work <= 0 || c.Timer.ShortBreak <= 0 || c.Timer.LongBreak <= 0 {
		return errors.New("invalid config: timer durations must be positive")
	}
	if c.Timer.LongBreakEvery < 1 {
		return errors.New("invalid config: timer.long_break_every must be at least 1")
	}
	if _, err := c.Export.Location(); err != nil {
		return fmt.Errorf("invalid config: export.timezone: %w", err)
	}
	return nil
}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "studyplan"), nil
}
