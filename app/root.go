// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/KittyCore/portfolio/internal/config"
)

var (
	cfg        config.Config
	configPath string // Path to the configuration directory
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "portfolio serves the personal portfolio site",
	Long: `portfolio serves the personal portfolio site: static pages, contact,
support, review and app request forms, an audio converter and the admin dashboard.`,
	Args: cobra.OnlyValidArgs,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"./etc/",
		"Directory holding main.toml",
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
