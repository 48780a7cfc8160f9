package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkStrict bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the book for broken links and outline anchors",
	Long: `Loads the book and reports navigation entries that point nowhere,
malformed navigation entries, and outline entries whose anchor is missing
from the chapter body.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, _, err := loadBook(cfg)
		if err != nil {
			return err
		}

		problems := checkBook(cfg, store)
		out := cmd.OutOrStdout()
		if len(problems) == 0 {
			fmt.Fprintf(out, "%d chapters, no problems found\n", len(store.Chapters()))
			return nil
		}
		for _, p := range problems {
			fmt.Fprintln(out, p)
		}
		fmt.Fprintf(out, "%d problem(s) found\n", len(problems))
		if checkStrict {
			return fmt.Errorf("book check failed with %d problem(s)", len(problems))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "exit with an error when problems are found")
	rootCmd.AddCommand(checkCmd)
}
