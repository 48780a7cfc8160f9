package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/livebook/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize livebook configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the book and writes the config file (default .livebook.yml).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.RunWizard(cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfgFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
