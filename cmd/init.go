package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/zodiac/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize zodiac configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks for the port, default locale and cache backend, generates an auth secret, and writes .zodiac.yml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (port %d, locale %s, cache %s)\n",
			cfgFile, cfg.Server.Port, cfg.DefaultLocale, cfg.Cache.Driver)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
