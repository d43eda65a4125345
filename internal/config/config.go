package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	ccerrors "github.com/alexisbeaulieu97/contentcards/pkg/errors"
)

const (
	envPrefix = "CONTENTCARDS"
	appDir    = "contentcards"

	defaultLogLevel     = "info"
	defaultTheme        = "default"
	defaultPolicy       = "degrade"
	defaultImageTimeout = 10 * time.Second
)

// Config is the resolved runtime configuration for the contentcards
// binary. Keys match the config file, CONTENTCARDS_* environment
// variables (dashes become underscores) and command line flags.
type Config struct {
	Feed            string        `mapstructure:"feed" validate:"required"`
	CacheDir        string        `mapstructure:"cache-dir"`
	ReadStatusPath  string        `mapstructure:"read-status-path"`
	JournalPath     string        `mapstructure:"journal-path"`
	LogLevel        string        `mapstructure:"log-level" validate:"oneof=trace debug info warn error"`
	LogHuman        bool          `mapstructure:"log-human"`
	ImageWidth      int           `mapstructure:"image-width" validate:"gte=0,lte=400"`
	Capacity        int           `mapstructure:"capacity" validate:"gte=0"`
	OpenURLs        bool          `mapstructure:"open-urls"`
	Theme           string        `mapstructure:"theme" validate:"oneof=default dark light"`
	Policy          string        `mapstructure:"policy" validate:"oneof=propagate degrade"`
	RefreshInterval time.Duration `mapstructure:"refresh-interval" validate:"gte=0"`
	ImageTimeout    time.Duration `mapstructure:"image-timeout" validate:"gte=0"`
}

// DefaultPath returns ~/.config/contentcards/config.yml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", appDir, "config.yml"), nil
}

// Load reads configuration from configPath (or DefaultPath when empty),
// the environment and any changed flags, in increasing precedence. A
// missing config file is not an error.
func Load(configPath string, flags *pflag.FlagSet) (Config, error) {
	cfg, err := load(configPath, flags)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadPaths resolves configuration like Load but does not require a feed.
// Commands that only touch the read status store or the event journal use
// it.
func LoadPaths(configPath string, flags *pflag.FlagSet) (Config, error) {
	cfg, err := load(configPath, flags)
	if err != nil {
		return cfg, err
	}
	if err := convertValidationError(validatorInstance().StructExcept(cfg, "Feed")); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(configPath string, flags *pflag.FlagSet) (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if err := setDefaults(v); err != nil {
		return cfg, err
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return cfg, ccerrors.NewConfigError("flags", "bind flags", err)
		}
	}

	if configPath == "" {
		path, err := DefaultPath()
		if err != nil {
			return cfg, ccerrors.NewConfigError("config", "resolve default path", err)
		}
		configPath = path
	}
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !errors.Is(err, os.ErrNotExist) {
			return cfg, ccerrors.NewConfigError("config", "read "+configPath, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, ccerrors.NewConfigError("config", "decode", err)
	}

	cfg.Feed = expandHome(cfg.Feed)
	cfg.CacheDir = expandHome(cfg.CacheDir)
	cfg.ReadStatusPath = expandHome(cfg.ReadStatusPath)
	cfg.JournalPath = expandHome(cfg.JournalPath)
	return cfg, nil
}

// Validate checks field constraints and reports the first failure as a
// ConfigError.
func (c Config) Validate() error {
	return convertValidationError(validatorInstance().Struct(c))
}

func setDefaults(v *viper.Viper) error {
	cacheRoot, err := os.UserCacheDir()
	if err != nil {
		return ccerrors.NewConfigError("cache-dir", "resolve user cache dir", err)
	}
	configRoot, err := os.UserConfigDir()
	if err != nil {
		return ccerrors.NewConfigError("read-status-path", "resolve user config dir", err)
	}

	v.SetDefault("feed", "")
	v.SetDefault("cache-dir", filepath.Join(cacheRoot, appDir, "images"))
	v.SetDefault("read-status-path", filepath.Join(configRoot, appDir, "read-status.json"))
	v.SetDefault("journal-path", filepath.Join(cacheRoot, appDir, "events.jsonl"))
	v.SetDefault("log-level", defaultLogLevel)
	v.SetDefault("log-human", true)
	v.SetDefault("image-width", 0)
	v.SetDefault("capacity", 0)
	v.SetDefault("open-urls", true)
	v.SetDefault("theme", defaultTheme)
	v.SetDefault("policy", defaultPolicy)
	v.SetDefault("refresh-interval", time.Duration(0))
	v.SetDefault("image-timeout", defaultImageTimeout)
	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
