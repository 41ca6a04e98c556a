package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/gogpu/clearpass"
	"github.com/gogpu/clearpass/render"
)

// EnvPrefix is the prefix of environment variable overrides, e.g.
// CLEARPASS_CLEAR_COLOR_DEFAULT.
const EnvPrefix = "CLEARPASS"

// Config holds application configuration.
type Config struct {
	// Backend names the command backend, see backend.Available.
	Backend string `mapstructure:"backend"`

	ClearColor ClearColorConfig `mapstructure:"clear_color"`
	Scene      Scene            `mapstructure:"scene"`
}

// ClearColorConfig is the file form of clearpass.ClearColor. Colors are hex
// strings, destinations use the render.ParseDestination syntax.
type ClearColorConfig struct {
	Default   string            `mapstructure:"default"`
	Overrides map[string]string `mapstructure:"overrides"`
}

// Load reads configuration from path and the environment. An empty path
// searches for clearpass.{toml,yaml,json} in the working directory and in
// $HOME/.config/clearpass, and uses defaults when none exists. Env var
// overrides use prefix CLEARPASS_.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("backend", "software")
	v.SetDefault("clear_color.default", clearpass.DefaultClearColor.Hex())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("clearpass")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "clearpass"))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks colors, destinations and the scene.
func (c Config) Validate() error {
	if _, err := c.ClearColor.Build(); err != nil {
		return err
	}
	return c.Scene.Validate()
}

// Build converts the file form into a clear color configuration.
func (c ClearColorConfig) Build() (*clearpass.ClearColor, error) {
	cc := clearpass.NewClearColor()
	if c.Default != "" {
		col, err := clearpass.ParseHex(c.Default)
		if err != nil {
			return nil, fmt.Errorf("clear_color.default: %w", err)
		}
		cc.Default = col
	}
	for key, hex := range c.Overrides {
		dst, err := render.ParseDestination(key)
		if err != nil {
			return nil, fmt.Errorf("clear_color.overrides: %w", err)
		}
		if _, dup := cc.Override(dst); dup {
			return nil, fmt.Errorf("clear_color.overrides: %s configured twice", dst)
		}
		col, err := clearpass.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("clear_color.overrides[%s]: %w", key, err)
		}
		cc.Set(dst, col)
	}
	return cc, nil
}
