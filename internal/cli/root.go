// Package cli wires flags, environment and config files into the design
// planner and prints the resulting concept.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/homedraft/homedraft/internal/config"
	"github.com/homedraft/homedraft/internal/design"
	"github.com/homedraft/homedraft/internal/logger"
	"github.com/homedraft/homedraft/internal/render"
)

// NewRootCommand builds the homedraft command with its own viper instance so
// tests can execute commands independently.
func NewRootCommand() *cobra.Command {
	v := config.NewViper()
	var configFile string

	cmd := &cobra.Command{
		Use:   "homedraft",
		Short: "Generate a house design concept from a written brief",
		Long: fmt.Sprintf(`Homedraft turns a written design brief, optional inspiration image
descriptions and a room program into a structured house design concept:
selected style, exterior and interior finishes, feature suggestions, site
strategy and room planning notes.

Styles considered: %s.

Output is a readable report on stdout, or JSON with --json.`,
			strings.Join(design.StyleNames(), ", ")),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, configFile)
		},
	}

	flags := cmd.Flags()
	flags.String(config.KeyBrief, "", "written description of the desired house style and goals")
	flags.String(config.KeyImages, "", "comma-separated inspiration image descriptors (e.g. \"dark roof, white facade\")")
	flags.String(config.KeyRooms, config.DefaultRooms, "comma-separated required rooms/spaces")
	flags.Float64(config.KeyPlotWidth, 0, "plot width in meters")
	flags.Float64(config.KeyPlotDepth, 0, "plot depth in meters")
	flags.String(config.KeySlope, design.DefaultSlope, "site slope label")
	flags.String(config.KeyClimate, design.DefaultClimate, "climate label used for envelope guidance")
	flags.String(config.KeyOrientation, design.DefaultOrientation, "street orientation of the plot")
	flags.Bool(config.KeyJSON, false, "print the concept as JSON instead of a report")
	flags.String(config.KeyLogLevel, config.DefaultLogLevel, "log level (error|warn|info|debug)")
	flags.StringVar(&configFile, "config", "", "config file with defaults for any flag")

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, configFile string) error {
	// Binding happens after parsing; only flags the user actually set
	// outrank environment and config file values.
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logCfg := logger.DefaultConfig()
	logCfg.Level = level
	logCfg.Output = cmd.ErrOrStderr()
	logger.Init(logCfg)

	req, err := design.BuildRequest(design.RawInput{
		Brief:       cfg.Brief,
		Images:      cfg.Images,
		Rooms:       cfg.Rooms,
		PlotWidthM:  cfg.PlotWidthM,
		PlotDepthM:  cfg.PlotDepthM,
		Slope:       cfg.Slope,
		Climate:     cfg.Climate,
		Orientation: cfg.Orientation,
	})
	if err != nil {
		return err
	}

	proposal, err := design.NewPlanner().Propose(req)
	if err != nil {
		return err
	}

	if cfg.JSON {
		return render.JSON(cmd.OutOrStdout(), proposal)
	}
	return render.Text(cmd.OutOrStdout(), proposal)
}

// Execute runs the root command and reports its error for main to handle.
func Execute() error {
	return NewRootCommand().Execute()
}
