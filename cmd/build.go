package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/site"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the portfolio as a static site",
		Long: `Renders the portfolio page and copies the static directory into the output
directory, ready to be published by any static file host.`,
		Args: cobra.NoArgs,
		RunE: runBuild,
	}
	cmd.Flags().String("output", "", "override output directory")
	return cmd
}

func init() {
	rootCmd.AddCommand(newBuildCmd())
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadContent(cfg)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	if err := site.CheckOutputDir(cfg.StaticDir, outputDir); err != nil {
		return fmt.Errorf("--output: %w", err)
	}

	generator := newGenerator(cfg, c, outputDir)
	generator.Reporter = progress.NewReporter("Copying assets")
	res, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}
	logger.Debug("build finished", zapResult(res)...)

	fmt.Fprintf(cmd.OutOrStdout(), "Portfolio exported: %s (%d files, %d assets)\n", outputDir, len(res.Files), res.Assets)
	return nil
}

// newGenerator prepares a site generator from the config.
func newGenerator(cfg *config.Config, c *content.Content, outputDir string) *site.SiteGenerator {
	g := site.NewSiteGenerator(c, cfg.StaticDir, outputDir)
	g.BasePath = cfg.BasePath
	g.SiteTitle = cfg.SiteTitle
	g.Exclude = cfg.Exclude
	return g
}
