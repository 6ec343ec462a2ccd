package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/zodiac/internal/compatibility"
	"github.com/ziadkadry99/zodiac/internal/zodiac"
)

var (
	compatLocale string
	compatJSON   bool
	compatMatrix bool
)

var compatCmd = &cobra.Command{
	Use:   "compat <sign> <sign>",
	Short: "Score the compatibility of two signs",
	Long:  `Prints the aspect, element harmony and love, friendship and work scores of two signs. With --matrix it prints the grid of overall scores instead.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if compatMatrix {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if compatMatrix {
			printMatrix(cmd.OutOrStdout(), compatibility.Matrix())
			return nil
		}
		a, err := zodiac.Parse(args[0])
		if err != nil {
			return err
		}
		b, err := zodiac.Parse(args[1])
		if err != nil {
			return err
		}
		loc, err := localeFlag(cfg, compatLocale)
		if err != nil {
			return err
		}

		r := compatibility.Compare(a, b, loc)
		if compatJSON {
			return printJSON(cmd.OutOrStdout(), r)
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s + %s: %s, %s\n", r.NameA, r.NameB, r.AspectName, r.HarmonyText)
		fmt.Fprintf(w, "Love %d · Friendship %d · Work %d · Overall %d\n", r.Love, r.Friendship, r.Work, r.Overall)
		fmt.Fprintln(w, r.Summary)
		return nil
	},
}

func printMatrix(w io.Writer, m [12][12]int) {
	signs := zodiac.All()
	fmt.Fprintf(w, "%4s", "")
	for _, s := range signs {
		fmt.Fprintf(w, "%4s", s.Symbol)
	}
	fmt.Fprintln(w)
	for i, s := range signs {
		fmt.Fprintf(w, "%4s", s.Symbol)
		for j := range signs {
			fmt.Fprintf(w, "%4d", m[i][j])
		}
		fmt.Fprintln(w)
	}
}

func init() {
	compatCmd.Flags().StringVar(&compatLocale, "locale", "", "output locale (en, es, pt, fr, de)")
	compatCmd.Flags().BoolVar(&compatJSON, "json", false, "print JSON")
	compatCmd.Flags().BoolVar(&compatMatrix, "matrix", false, "print the full score matrix")
	rootCmd.AddCommand(compatCmd)
}
