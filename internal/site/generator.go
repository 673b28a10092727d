package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/google/uuid"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/router"
	"github.com/ziadkadry99/folio/internal/view"
)

// SiteGenerator exports a portfolio as a static directory.
type SiteGenerator struct {
	Content   *content.Content
	StaticDir string
	OutputDir string

	// BasePath is the URL prefix the export is served under.
	BasePath  string
	SiteTitle string
	Exclude   []string

	// LiveReload embeds the dev server's reload hook in the page.
	LiveReload bool

	// BuildID tags asset URLs. A fresh UUID is used when empty.
	BuildID string

	Reporter progress.Reporter
}

// NewSiteGenerator creates a SiteGenerator with the given directories.
func NewSiteGenerator(c *content.Content, staticDir, outputDir string) *SiteGenerator {
	return &SiteGenerator{
		Content:   c,
		StaticDir: staticDir,
		OutputDir: outputDir,
		BasePath:  "/",
		Exclude:   DefaultExcludes,
	}
}

// Result summarizes an export.
type Result struct {
	BuildID string
	Assets  int
	Files   []string
}

// Generate builds the export. Static assets are copied first so that the
// generated files win if a static file shares their name.
func (g *SiteGenerator) Generate() (*Result, error) {
	if g.Content == nil {
		return nil, fmt.Errorf("no content to export")
	}
	buildID := g.BuildID
	if buildID == "" {
		buildID = uuid.NewString()
	}
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	if err := CheckOutputDir(g.StaticDir, g.OutputDir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, err
	}

	assets, err := collectAssets(g.StaticDir, g.Exclude, g.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("listing static assets: %w", err)
	}
	if err := copyAssets(g.StaticDir, g.OutputDir, assets, reporter); err != nil {
		return nil, fmt.Errorf("copying static assets: %w", err)
	}

	renderer, err := view.New(view.Options{
		BasePath:   g.BasePath,
		SiteTitle:  g.SiteTitle,
		BuildID:    buildID,
		LiveReload: g.LiveReload,
	})
	if err != nil {
		return nil, err
	}

	var page bytes.Buffer
	if err := renderer.Shell(&page, router.Home, g.Content, view.NewVisibility()); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}

	highlightCSS, err := highlightStylesheet()
	if err != nil {
		return nil, fmt.Errorf("building highlight stylesheet: %w", err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{"index.html", page.Bytes()},
		{"style.css", []byte(cssContent)},
		{"highlight.css", highlightCSS},
		{"script.js", []byte(jsContent)},
	}
	res := &Result{BuildID: buildID, Assets: len(assets)}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(g.OutputDir, f.name), f.data, 0o644); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, f.name)
	}

	if err := g.Content.WriteJSON(filepath.Join(g.OutputDir, "content.json")); err != nil {
		return nil, fmt.Errorf("writing content feed: %w", err)
	}
	res.Files = append(res.Files, "content.json")

	return res, nil
}

// highlightStylesheet renders the CSS for the classes the markdown
// highlighter emits.
func highlightStylesheet() ([]byte, error) {
	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(content.HighlightStyle)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
