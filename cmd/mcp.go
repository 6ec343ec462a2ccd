package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/zodiac/internal/cache"
	mcpserver "github.com/ziadkadry99/zodiac/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing horoscope, compatibility, birth chart, biorhythm and sign tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		// Stdout carries the protocol; the logger writes to stderr.
		logger, err := setupLogger(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		svc, err := newService(cfg, cache.NewMemoryStore())
		if err != nil {
			return err
		}

		mcpserver.Version = Version
		fmt.Fprintf(os.Stderr, "zodiac MCP server started on stdio (locale=%s)\n", svc.DefaultLocale)

		return mcpserver.NewServer(svc).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
