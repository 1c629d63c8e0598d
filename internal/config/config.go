package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"swipetodo/internal/model"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SWIPETODO_UI_MOUSE=false.
const EnvPrefix = "SWIPETODO"

// Config holds application configuration.
type Config struct {
	Seed   SeedConfig   `mapstructure:"seed" json:"seed"`
	UI     UIConfig     `mapstructure:"ui" json:"ui"`
	Log    LogConfig    `mapstructure:"log" json:"log"`
	Output OutputConfig `mapstructure:"output" json:"output"`
}

// SeedConfig lists the tasks a new screen starts with.
type SeedConfig struct {
	Tasks []string `mapstructure:"tasks" json:"tasks"`
}

// UIConfig holds presentation settings for the TUI.
type UIConfig struct {
	Mouse  bool   `mapstructure:"mouse" json:"mouse"`
	Glyphs string `mapstructure:"glyphs" json:"glyphs"`
	// HelpStyle is a glamour standard style name ("dark", "light", "notty", ...).
	HelpStyle string `mapstructure:"help_style" json:"helpStyle"`
}

type LogConfig struct {
	File    string `mapstructure:"file" json:"file,omitempty"`
	Level   string `mapstructure:"level" json:"level"`
	Journal bool   `mapstructure:"journal" json:"journal"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" json:"format"`
	Pretty bool   `mapstructure:"pretty" json:"pretty"`
}

// flagKeys maps persistent flag names onto config keys.
var flagKeys = map[string]string{
	"log-file":    "log.file",
	"log-level":   "log.level",
	"log-journal": "log.journal",
	"format":      "output.format",
	"pretty":      "output.pretty",
	"glyphs":      "ui.glyphs",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed.tasks", model.DefaultSeedTitles)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.glyphs", "unicode")
	v.SetDefault("ui.help_style", "dark")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.journal", false)
	v.SetDefault("output.format", "json")
	v.SetDefault("output.pretty", false)
}

// DefaultPath is where the config file lives when neither --config nor
// SWIPETODO_CONFIG is set.
func DefaultPath() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); dir != "" {
		return filepath.Join(dir, "swipetodo", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "swipetodo", "config.toml"), nil
}

// Load reads configuration from file, env and flags (highest wins: flags set by
// the user, then env, then file, then defaults). path may be empty.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvPrefix + "_CONFIG"))
	}
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// SWIPETODO_FORMAT is the short alias for output.format.
	if err := v.BindEnv("output.format", EnvPrefix+"_OUTPUT_FORMAT", EnvPrefix+"_FORMAT"); err != nil {
		return Config{}, fmt.Errorf("bind env output.format: %w", err)
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
		if f := flags.Lookup("no-mouse"); f != nil && f.Changed {
			v.Set("ui.mouse", false)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
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

// Validate rejects values the rest of the program cannot interpret.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.UI.Glyphs)) {
	case "", "unicode", "utf8", "ascii":
	default:
		return fmt.Errorf("invalid ui.glyphs %q (want unicode|ascii)", c.UI.Glyphs)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Output.Format {
	case "", "json", "edn", "text":
	default:
		return fmt.Errorf("invalid output.format %q (want json|edn|text)", c.Output.Format)
	}
	return nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lv slog.Level
	s := strings.TrimSpace(l.Level)
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := lv.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log.level %q: %w", l.Level, err)
	}
	return lv, nil
}
