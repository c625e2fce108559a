// Package config resolves the inputs for one invocation. Values layer in
// viper's order: flag, then HOMEDRAFT_* environment variable, then config
// file, then flag default.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Keys shared by the flag set, the environment (dashes become underscores,
// e.g. HOMEDRAFT_PLOT_WIDTH) and config files.
const (
	KeyBrief       = "brief"
	KeyImages      = "images"
	KeyRooms       = "rooms"
	KeyPlotWidth   = "plot-width"
	KeyPlotDepth   = "plot-depth"
	KeySlope       = "slope"
	KeyClimate     = "climate"
	KeyOrientation = "orientation"
	KeyJSON        = "json"
	KeyLogLevel    = "log-level"
)

const envPrefix = "HOMEDRAFT"

// Defaults for the invocation-level options. The required inputs (brief and
// plot dimensions) have no defaults on purpose; validation reports them.
const (
	DefaultRooms    = "3 bedrooms,2 bathrooms,open kitchen,living room"
	DefaultLogLevel = "warn"
)

type Config struct {
	Brief       string
	Images      string
	Rooms       string
	PlotWidthM  float64
	PlotDepthM  float64
	Slope       string
	Climate     string
	Orientation string
	JSON        bool
	LogLevel    string
}

// NewViper builds a viper instance with the homedraft environment binding.
// Flag binding and config-file loading happen in the CLI layer.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file and materializes the resolved Config.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		slog.Debug("Loaded config file", "file", v.ConfigFileUsed())
	}

	return &Config{
		Brief:       v.GetString(KeyBrief),
		Images:      v.GetString(KeyImages),
		Rooms:       v.GetString(KeyRooms),
		PlotWidthM:  v.GetFloat64(KeyPlotWidth),
		PlotDepthM:  v.GetFloat64(KeyPlotDepth),
		Slope:       v.GetString(KeySlope),
		Climate:     v.GetString(KeyClimate),
		Orientation: v.GetString(KeyOrientation),
		JSON:        v.GetBool(KeyJSON),
		LogLevel:    v.GetString(KeyLogLevel),
	}, nil
}
