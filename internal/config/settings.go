// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ConfigName is the optional settings file looked up in the config directory.
const ConfigName = "space_shooter.cfg.json"

// Settings are the runtime knobs of a frontend.
type Settings struct {
	Width        int     `mapstructure:"width"`
	Height       int     `mapstructure:"height"`
	Title        string  `mapstructure:"title"`
	Seed         int64   `mapstructure:"seed"`
	MaxDeltaTime float64 `mapstructure:"maxDeltaTime"`
	ViewHeight   float64 `mapstructure:"viewHeight"`
	LogLevel     string  `mapstructure:"logLevel"`
	Debug        bool    `mapstructure:"debug"`
	PprofAddr    string  `mapstructure:"pprofAddr"`
	Telemetry    bool    `mapstructure:"telemetry"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("width", ScreenWidth)
	v.SetDefault("height", ScreenHeight)
	v.SetDefault("title", WindowTitle)
	v.SetDefault("seed", 0)
	v.SetDefault("maxDeltaTime", MaxDeltaTime)
	v.SetDefault("viewHeight", ViewHeight)
	v.SetDefault("logLevel", "info")
	v.SetDefault("debug", false)
	v.SetDefault("pprofAddr", "")
	v.SetDefault("telemetry", true)
}

// Flags returns the command line flags understood by Load.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", ".", "directory containing "+ConfigName)
	fs.Int64("seed", 0, "random seed, 0 picks one from the clock")
	fs.Bool("debug", false, "show the debug overlay")
	fs.String("log-level", "info", "trace, debug, info, warn or error")
	fs.String("pprof", "", "serve net/http/pprof on this address")
	return fs
}

// Load merges defaults, the optional config file in configDir,
// SPACESHOOTER_* environment variables and flags (highest priority).
// A missing config file is not an error.
func Load(configDir string, flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(ConfigName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("SPACESHOOTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if flags != nil {
		for key, flag := range map[string]string{
			"seed":      "seed",
			"debug":     "debug",
			"logLevel":  "log-level",
			"pprofAddr": "pprof",
		} {
			if f := flags.Lookup(flag); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("binding flag %s: %w", flag, err)
				}
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	if s.MaxDeltaTime <= 0 {
		s.MaxDeltaTime = MaxDeltaTime
	}
	if s.ViewHeight <= 0 {
		s.ViewHeight = ViewHeight
	}
	return s, nil
}

// LoadFromArgs parses args with Flags and calls Load with the --config directory.
func LoadFromArgs(name string, args []string) (Settings, error) {
	fs := Flags(name)
	if err := fs.Parse(args); err != nil {
		return Settings{}, fmt.Errorf("parsing flags: %w", err)
	}
	dir, _ := fs.GetString("config")
	return Load(dir, fs)
}
