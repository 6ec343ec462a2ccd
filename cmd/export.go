package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/zodiac/internal/cache"
	"github.com/ziadkadry99/zodiac/internal/export"
	"github.com/ziadkadry99/zodiac/internal/i18n"
	"github.com/ziadkadry99/zodiac/internal/progress"
)

var (
	exportOut     string
	exportFrom    string
	exportDays    int
	exportLocales string
	exportWorkers int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Pre-generate daily readings as static JSON files",
	Long:  `Writes <out>/<locale>/<date>/<sign>.json for every sign, locale and day in the range, plus a manifest.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := setupLogger(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		from, err := dateFlag("from", exportFrom)
		if err != nil {
			return err
		}
		var locales []i18n.Locale
		if exportLocales != "" {
			for _, v := range strings.Split(exportLocales, ",") {
				loc, err := i18n.ParseLocale(v)
				if err != nil {
					return err
				}
				locales = append(locales, loc)
			}
		}
		out := cfg.Export.OutputDir
		if exportOut != "" {
			out = exportOut
		}
		workers := cfg.Export.MaxConcurrency
		if exportWorkers > 0 {
			workers = exportWorkers
		}

		svc, err := newService(cfg, cache.NopStore{})
		if err != nil {
			return err
		}
		m, err := export.Run(cmd.Context(), svc, export.Options{
			OutDir:      out,
			From:        from,
			Days:        exportDays,
			Locales:     locales,
			Concurrency: workers,
			Reporter:    progress.NewReporter("Exporting readings"),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files for %s..%s to %s\n", m.Files, m.From, m.To, out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output directory (overrides export.output_dir)")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "first date as YYYY-MM-DD (default today, UTC)")
	exportCmd.Flags().IntVar(&exportDays, "days", 7, "number of days to export")
	exportCmd.Flags().StringVar(&exportLocales, "locales", "", "comma-separated locales (default all)")
	exportCmd.Flags().IntVarP(&exportWorkers, "concurrency", "j", 0, "parallel workers (overrides export.max_concurrency)")
	rootCmd.AddCommand(exportCmd)
}
