package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/haermaeus/ttt"
	"github.com/haermaeus/ttt/ebitenhost"
	"github.com/haermaeus/ttt/internal/config"
	"github.com/haermaeus/ttt/internal/page"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

func runCmd() *cobra.Command {
	var configPath string
	var profileMode string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the game window",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("profile") {
				conf.Profile = profileMode
			}

			logger, err := initLogger(conf)
			if err != nil {
				return err
			}

			slog.SetDefault(logger)

			stop, err := startProfile(conf.Profile)
			if err != nil {
				return err
			}

			defer stop()

			opts, err := pageOptions(conf, logger)
			if err != nil {
				return err
			}

			logger.Info("Starting",
				slog.String("version", version),
				slog.Int("width", opts.Window.Width),
				slog.Int("height", opts.Window.Height),
			)

			var app ttt.App
			app.AddPlugin(page.HostedPlugin(opts))

			if err := app.Run(); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yml", "Path to the config file")
	cmd.Flags().StringVar(&profileMode, "profile", "", "Enable profiling, one of cpu or mem")

	return cmd
}

func initLogger(conf *config.Config) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(conf.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.LogLevel, err)
	}

	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(conf.LogFormat) {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", conf.LogFormat)
	}
}

func startProfile(mode string) (stop func(), err error) {
	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop, nil
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop, nil
	default:
		return nil, fmt.Errorf("invalid profile mode %q", mode)
	}
}

func pageOptions(conf *config.Config, logger *slog.Logger) (page.Options, error) {
	splashConfig, err := conf.Splash.Effect()
	if err != nil {
		return page.Options{}, err
	}

	glitchConfig, err := conf.Glitch.Effect()
	if err != nil {
		return page.Options{}, err
	}

	return page.Options{
		Window: ebitenhost.WindowConfig{
			Title:         conf.Window.Title,
			Width:         conf.Window.Width,
			Height:        conf.Window.Height,
			DisableResize: conf.Window.FixedSize,
		},
		Splash: splashConfig,
		Glitch: glitchConfig,
		Logger: logger,
	}, nil
}
