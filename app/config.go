package app

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KittyCore/portfolio/internal/config"
)

func init() { //nolint: gochecknoinits
	configCmd.Flags().BoolVar(&dumpJSON, "json", false, "Print JSON instead of TOML")

	rootCmd.AddCommand(configCmd)
}

var (
	dumpJSON bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration with secrets masked",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()

			c, err := config.ReadConfig(configPath)
			if err != nil {
				return err
			}

			masked := c.Masked()

			dump := config.DumpConfig
			if dumpJSON {
				dump = config.DumpConfigJSON
			}

			out, err := dump(&masked)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err
		},
	}
)
