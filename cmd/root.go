package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "zodiac",
	Short: "Multi-locale horoscope, compatibility and birth chart service",
	Long: `Zodiac generates deterministic daily, weekly and monthly horoscopes,
sign compatibility scores, simplified birth charts and biorhythms in
English, Spanish, Portuguese, French and German. Run it as an HTTP API,
as an MCP server for AI agents, or straight from the command line.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".zodiac.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
