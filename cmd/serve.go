package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/server"
	"github.com/ziadkadry99/folio/internal/site"
	"github.com/ziadkadry99/folio/internal/watch"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the portfolio and preview it with live reload",
	Long: `Builds the portfolio into the output directory and serves it locally. While
the server runs, edits to the content file or the static directory trigger a
rebuild and every open page reloads itself.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port for the dev server (defaults to serve.port)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Serve.Port, _ = cmd.Flags().GetInt("port")
	}
	c, err := loadContent(cfg)
	if err != nil {
		return err
	}

	generator := newGenerator(cfg, c, cfg.OutputDir)
	generator.LiveReload = cfg.Serve.LiveReload
	generator.Reporter = progress.NewReporter("Copying assets")
	res, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}
	generator.Reporter = progress.Nop{}
	logger.Debug("initial build finished", zapResult(res)...)

	srv, err := server.New(server.Config{
		Port:       cfg.Serve.Port,
		OutputDir:  cfg.OutputDir,
		BasePath:   cfg.BasePath,
		SiteTitle:  cfg.SiteTitle,
		LiveReload: cfg.Serve.LiveReload,
		AllowAll:   cfg.Serve.AllowAllOrigins,
	}, c, logger)
	if err != nil {
		return err
	}

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Serve.LiveReload {
		w := watch.New(logger, rebuilder(cfg, generator, srv))
		w.Files = []string{cfg.ContentFile, cfgFile}
		w.Dirs = []string{cfg.StaticDir}
		w.Exclude = cfg.Exclude
		w.Ignore = []string{cfg.OutputDir}
		w.Debounce = time.Duration(cfg.Serve.DebounceMillis) * time.Millisecond
		if err := w.Start(ctx); err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		defer func() { <-w.Done() }()
	}

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	url := fmt.Sprintf("http://localhost:%d%s", cfg.Serve.Port, cfg.BasePath)
	fmt.Fprintf(os.Stderr, "Serving %s at %s, press Ctrl+C to stop\n", cfg.OutputDir, url)
	if open, _ := cmd.Flags().GetBool("open"); open {
		openBrowser(url)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		stop()
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}

// rebuilder reloads the content, regenerates the export and tells open pages
// to reload. A content file that fails to load keeps the last good build.
func rebuilder(cfg *config.Config, generator *site.SiteGenerator, srv *server.Server) watch.ChangeFunc {
	configPath, _ := filepath.Abs(cfgFile)
	return func(ctx context.Context, changed []string) error {
		for _, p := range changed {
			if p == configPath {
				logger.Warn("config changed; restart folio serve to apply it", zap.String("config", cfgFile))
			}
		}

		c, err := content.Load(cfg.ContentFile)
		if err != nil {
			return err
		}
		generator.Content = c
		generator.BuildID = ""
		res, err := generator.Generate()
		if err != nil {
			return fmt.Errorf("rebuilding site: %w", err)
		}
		srv.SetContent(c)
		pages := srv.Reload()
		logger.Info("rebuilt", append(zapResult(res), zap.Strings("changed", changed), zap.Int("pages_reloaded", pages))...)
		return nil
	}
}

func zapResult(res *site.Result) []zap.Field {
	return []zap.Field{
		zap.String("build_id", res.BuildID),
		zap.Int("assets", res.Assets),
		zap.Strings("files", res.Files),
	}
}
