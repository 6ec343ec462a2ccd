package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/zodiac/internal/biorhythm"
	"github.com/ziadkadry99/zodiac/internal/calendar"
)

var (
	bioDate string
	bioDays int
	bioJSON bool
)

var biorhythmCmd = &cobra.Command{
	Use:   "biorhythm <birth YYYY-MM-DD>",
	Short: "Print biorhythm cycles for a birth date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		birth, err := calendar.ParseDate("birth", args[0])
		if err != nil {
			return err
		}
		from, err := dateFlag("date", bioDate)
		if err != nil {
			return err
		}
		series, err := biorhythm.Series(birth, from, bioDays)
		if err != nil {
			return err
		}
		if bioJSON {
			return printJSON(cmd.OutOrStdout(), series)
		}
		printBiorhythm(cmd.OutOrStdout(), series)
		return nil
	},
}

func printBiorhythm(w io.Writer, series []biorhythm.Reading) {
	fmt.Fprintf(w, "%-10s %6s", "date", "day")
	for _, c := range biorhythm.Cycles {
		fmt.Fprintf(w, " %13s", c)
	}
	fmt.Fprintln(w)
	for _, r := range series {
		fmt.Fprintf(w, "%-10s %6d", r.Date, r.Days)
		for _, v := range r.Values {
			mark := " "
			if v.Critical {
				mark = "!"
			}
			fmt.Fprintf(w, " %4d %-7s%s", v.Value, v.Phase, mark)
		}
		fmt.Fprintln(w)
	}
}

func init() {
	biorhythmCmd.Flags().StringVar(&bioDate, "date", "", "first date as YYYY-MM-DD (default today, UTC)")
	biorhythmCmd.Flags().IntVar(&bioDays, "days", 7, "number of days to print, 1..90")
	biorhythmCmd.Flags().BoolVar(&bioJSON, "json", false, "print JSON")
	rootCmd.AddCommand(biorhythmCmd)
}
