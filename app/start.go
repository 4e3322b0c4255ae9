package app

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/KittyCore/portfolio/internal/config"
	"github.com/KittyCore/portfolio/internal/daemon"
	"github.com/KittyCore/portfolio/internal/logger"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	startCmd.Flags().BoolVar(
		&browseStatic,
		"browse",
		false,
		"Enable static file browsing (for development purposes only)",
	)

	rootCmd.AddCommand(startCmd)
}

var (
	err          error
	devMode      bool
	browseStatic bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the portfolio web service",
		PreRunE: func(_ *cobra.Command, _ []string) error {
			// a missing .env is fine, the environment may be set by the deployment
			_ = godotenv.Load()

			if cfg, err = config.ReadConfig(configPath); err != nil {
				return err
			}

			if devMode {
				cfg.DevMode = true
			}

			if browseStatic {
				cfg.Webserver.BrowseStatic = true
			}

			return logger.Init(cfg.Log)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				log.Error().Err(err).Msg("failed to start")
				return err
			}

			return d.Start()
		},
	}
)
