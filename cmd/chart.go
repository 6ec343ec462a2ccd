package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/zodiac/internal/birthchart"
	"github.com/ziadkadry99/zodiac/internal/zodiac"
)

var (
	chartTime      string
	chartLatitude  float64
	chartLongitude float64
	chartTimezone  string
	chartLocale    string
	chartJSON      bool
)

var chartCmd = &cobra.Command{
	Use:   "chart <YYYY-MM-DD>",
	Short: "Compute a Sun, Moon and Rising chart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		loc, err := localeFlag(cfg, chartLocale)
		if err != nil {
			return err
		}
		lat, lon := chartLatitude, chartLongitude
		r, err := birthchart.Calculate(birthchart.Input{
			Date:      args[0],
			Time:      chartTime,
			Latitude:  &lat,
			Longitude: &lon,
			Timezone:  chartTimezone,
		}, loc)
		if err != nil {
			return err
		}

		if chartJSON {
			return printJSON(cmd.OutOrStdout(), r)
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Sun     %s %s\n", r.Sun.Symbol, r.Sun.Name)
		fmt.Fprintf(w, "Moon    %s %s (%.2f°)\n", r.Moon.Symbol, r.Moon.Name, r.MoonLongitude)
		fmt.Fprintf(w, "Rising  %s %s\n", r.Rising.Symbol, r.Rising.Name)
		fmt.Fprintf(w, "Solar time %s · UTC %s\n", r.SolarTime, r.UTC)
		for _, e := range []zodiac.Element{zodiac.Fire, zodiac.Earth, zodiac.Air, zodiac.Water} {
			if n := r.Elements[e]; n > 0 {
				fmt.Fprintf(w, "%s: %d\n", zodiac.ElementName(e, loc), n)
			}
		}
		return nil
	},
}

func init() {
	chartCmd.Flags().StringVar(&chartTime, "time", "12:00", "birth time as HH:MM, 24h")
	chartCmd.Flags().Float64Var(&chartLatitude, "lat", 0, "birth latitude, -90..90")
	chartCmd.Flags().Float64Var(&chartLongitude, "lon", 0, "birth longitude, -180..180, east positive")
	chartCmd.Flags().StringVar(&chartTimezone, "tz", "", "IANA zone or ±HH:MM offset (default derived from longitude)")
	chartCmd.Flags().StringVar(&chartLocale, "locale", "", "output locale (en, es, pt, fr, de)")
	chartCmd.Flags().BoolVar(&chartJSON, "json", false, "print JSON")
	rootCmd.AddCommand(chartCmd)
}
