package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/zodiac/internal/horoscope"
	"github.com/ziadkadry99/zodiac/internal/zodiac"
)

var (
	dailyDate   string
	dailyPeriod string
	dailyLocale string
	dailyJSON   bool
)

var dailyCmd = &cobra.Command{
	Use:   "daily <sign>",
	Short: "Print a horoscope for a sign",
	Long:  `Generates the daily horoscope of a sign, or with --period the reading for the ISO week or month containing --date.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		sign, err := zodiac.Parse(args[0])
		if err != nil {
			return err
		}
		loc, err := localeFlag(cfg, dailyLocale)
		if err != nil {
			return err
		}
		date, err := dateFlag("date", dailyDate)
		if err != nil {
			return err
		}

		g := horoscope.NewGenerator()
		var r *horoscope.Reading
		switch horoscope.Period(dailyPeriod) {
		case horoscope.Daily:
			r, err = g.Daily(sign, date, loc)
		case horoscope.Weekly:
			r, err = g.Weekly(sign, date, loc)
		case horoscope.Monthly:
			r, err = g.Monthly(sign, date.Year(), date.Month(), loc)
		default:
			return fmt.Errorf("unknown period %q, want daily, weekly or monthly", dailyPeriod)
		}
		if err != nil {
			return err
		}

		if dailyJSON {
			return printJSON(cmd.OutOrStdout(), r)
		}
		printReading(cmd.OutOrStdout(), r)
		return nil
	},
}

func printReading(w io.Writer, r *horoscope.Reading) {
	title := fmt.Sprintf("%s · %s %s", r.SignName, r.Period, r.Key)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len([]rune(title))))
	fmt.Fprintln(w, r.Intro)
	fmt.Fprintln(w)
	for _, c := range r.Categories {
		fmt.Fprintf(w, "%-10s %s  %s\n", c.Label, stars(c.Score), c.Text)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Overall: %s  %s\n", stars(r.Overall), r.Summary)
	fmt.Fprintf(w, "Lucky number %d · color %s · time %s\n", r.LuckyNumber, r.LuckyColor, r.LuckyTime)
	if r.BestDay != "" {
		fmt.Fprintf(w, "Best day: %s\n", r.BestDay)
	}
	if len(r.KeyDates) > 0 {
		fmt.Fprintf(w, "Key dates: %s\n", strings.Join(r.KeyDates, ", "))
	}
}

func init() {
	dailyCmd.Flags().StringVar(&dailyDate, "date", "", "date as YYYY-MM-DD (default today, UTC)")
	dailyCmd.Flags().StringVar(&dailyPeriod, "period", string(horoscope.Daily), "daily, weekly or monthly")
	dailyCmd.Flags().StringVar(&dailyLocale, "locale", "", "output locale (en, es, pt, fr, de)")
	dailyCmd.Flags().BoolVar(&dailyJSON, "json", false, "print JSON")
	rootCmd.AddCommand(dailyCmd)
}
