package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/view"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [fragment]",
		Short: "Print the document for one route",
		Long: `Resolves the fragment (default "#/") to a route and prints that route's
document to stdout. Each --toggle flips one paper's abstract away from its
default: "jmp", "wp-N" or "wip-N", counting from zero.`,
		Example: `  folio render '#/research' --toggle jmp --toggle wp-0`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runRender,
	}
	cmd.Flags().StringArray("toggle", nil, "flip the abstract of the given item")
	return cmd
}

func init() {
	rootCmd.AddCommand(newRenderCmd())
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadContent(cfg)
	if err != nil {
		return err
	}

	renderer, err := view.New(view.Options{
		BasePath:  cfg.BasePath,
		SiteTitle: cfg.SiteTitle,
	})
	if err != nil {
		return err
	}

	session := renderer.NewSession(c)
	if len(args) > 0 {
		session.Navigate(args[0])
	}
	toggles, _ := cmd.Flags().GetStringArray("toggle")
	for _, key := range toggles {
		session.Toggle(view.ItemKey(key))
	}
	return session.Render(cmd.OutOrStdout())
}
