package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"wortkiste/internal/application"
)

const (
	appName      = "wortkiste"
	envPrefix    = "WORTKISTE"
	defaultWords = "words.db"
)

type Config struct {
	DataDir   string          `mapstructure:"data_dir"`
	WordsDB   string          `mapstructure:"words_db"`
	Assets    AssetsConfig    `mapstructure:"assets"`
	Download  DownloadConfig  `mapstructure:"download"`
	Translate TranslateConfig `mapstructure:"translate"`
	Log       LogConfig       `mapstructure:"log"`
}

// AssetsConfig lists where compressed dictionaries are searched, in order
type AssetsConfig struct {
	BundledPrefixes []string `mapstructure:"bundled_prefixes"`
	DevPrefixes     []string `mapstructure:"dev_prefixes"`
}

type DownloadConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// TranslateConfig points at a LibreTranslate compatible server. Source and
// Target are the default language pair.
type TranslateConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
	Source  string        `mapstructure:"source"`
	Target  string        `mapstructure:"target"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from configFile, or from config.yaml in the
// working directory or $HOME/.config/wortkiste when configFile is empty.
// WORTKISTE_* environment variables override both.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/" + appName)
	}

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	if dir, err := os.UserConfigDir(); err == nil {
		v.SetDefault("data_dir", filepath.Join(dir, appName))
	} else {
		v.SetDefault("data_dir", "")
	}
	v.SetDefault("words_db", defaultWords)
	v.SetDefault("assets.bundled_prefixes", []string{"", "_up_/public", "public"})
	v.SetDefault("assets.dev_prefixes", []string{"../public", "../../public", "../../../public"})
	v.SetDefault("download.base_url", "")
	v.SetDefault("download.timeout", 5*time.Minute)
	v.SetDefault("translate.base_url", "")
	v.SetDefault("translate.api_key", "")
	v.SetDefault("translate.timeout", 30*time.Second)
	v.SetDefault("translate.source", "de")
	v.SetDefault("translate.target", "en")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// DataDirectory returns the writable directory dictionaries are
// materialized into
func (c *Config) DataDirectory() (string, error) {
	if c.DataDir == "" {
		return "", fmt.Errorf("data directory %w: set data_dir or %s_DATA_DIR", application.ErrNotConfigured, envPrefix)
	}
	return c.DataDir, nil
}

// WordsPath returns the words database path. Relative names live in the
// data directory.
func (c *Config) WordsPath() (string, error) {
	name := c.WordsDB
	if name == "" {
		name = defaultWords
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	dir, err := c.DataDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
