package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/livebook/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "livebook",
	Short: "Serve and export an AI-native live book",
	Long: `Livebook serves a book of chapters as a documentation site with a
collapsible sidebar, in-page outlines, a dark/light theme and a chat
assistant placeholder. The same book can be exported as a static site
or exposed to AI agents over MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
