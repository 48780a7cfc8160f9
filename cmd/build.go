package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/livebook/internal/progress"
	"github.com/ziadkadry99/livebook/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the book as a static website",
	Long:  `Renders every chapter, the chat placeholder and the not-found page into a directory any static file host can serve.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to build.output_dir)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.Build.OutputDir = out
	}

	store, fsys, err := loadBook(cfg)
	if err != nil {
		return err
	}
	for _, p := range checkBook(cfg, store) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", p)
	}

	s, err := newSite(cfg, store)
	if err != nil {
		return err
	}

	gen := site.NewGenerator(s, cfg.Build.OutputDir)
	gen.Content = fsys
	gen.Assets = cfg.Build.Assets
	gen.Reporter = progress.NewReporter()

	count, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Built %d pages into %s\n", count, cfg.Build.OutputDir)
	return nil
}
