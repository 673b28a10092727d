package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/router"
)

func TestMatchesExclude(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"profile.jpg", nil, false},
		{".DS_Store", DefaultExcludes, true},
		{"papers/.DS_Store", DefaultExcludes, true},
		{"papers/draft.pdf.swp", DefaultExcludes, true},
		{".git/HEAD", DefaultExcludes, true},
		{"papers/jmp.pdf", DefaultExcludes, false},
		{"drafts/old.pdf", []string{"drafts/**"}, true},
		{"papers/old.pdf", []string{"drafts/**"}, false},
	}
	for _, tt := range tests {
		if got := MatchesExclude(tt.path, tt.patterns); got != tt.want {
			t.Errorf("MatchesExclude(%q, %v) = %v, want %v", tt.path, tt.patterns, got, tt.want)
		}
	}
}

func TestCollectAssetsMissingDir(t *testing.T) {
	assets, err := collectAssets(filepath.Join(t.TempDir(), "absent"), nil)
	if err != nil || len(assets) != 0 {
		t.Errorf("collectAssets on missing dir = %v, %v; want none", assets, err)
	}
}

func TestFullSiteGeneration(t *testing.T) {
	staticDir := t.TempDir()
	outputDir := t.TempDir()

	writeTestFile(t, filepath.Join(staticDir, "profile.jpg"), "jpeg")
	writeTestFile(t, filepath.Join(staticDir, "cv.pdf"), "pdf")
	writeTestFile(t, filepath.Join(staticDir, "papers", "jmp.pdf"), "pdf")
	writeTestFile(t, filepath.Join(staticDir, ".DS_Store"), "junk")
	writeTestFile(t, filepath.Join(staticDir, "drafts", "secret.pdf"), "pdf")

	c := content.Sample()
	c.Profile.Name = "Test Person"

	gen := NewSiteGenerator(c, staticDir, outputDir)
	gen.Exclude = append(append([]string{}, DefaultExcludes...), "drafts/**")
	gen.BuildID = "build-1"
	res, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if res.BuildID != "build-1" {
		t.Errorf("BuildID = %q", res.BuildID)
	}
	if res.Assets != 3 {
		t.Errorf("Assets = %d, want 3", res.Assets)
	}
	wantFiles := []string{"index.html", "style.css", "highlight.css", "script.js", "content.json"}
	if diff := cmp.Diff(wantFiles, res.Files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}

	expected := append(wantFiles, "profile.jpg", "cv.pdf", "papers/jmp.pdf")
	for _, f := range expected {
		if _, err := os.Stat(filepath.Join(outputDir, filepath.FromSlash(f))); os.IsNotExist(err) {
			t.Errorf("expected file %s does not exist", f)
		}
	}
	for _, f := range []string{".DS_Store", "drafts/secret.pdf"} {
		if _, err := os.Stat(filepath.Join(outputDir, filepath.FromSlash(f))); err == nil {
			t.Errorf("excluded file %s was copied", f)
		}
	}

	index, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	if err != nil {
		t.Fatalf("reading index.html: %v", err)
	}
	html := string(index)
	for _, want := range []string{
		"Test Person",
		`data-route="home"`,
		`data-route="research" hidden`,
		`data-route="teaching" hidden`,
		"style.css?v=build-1",
		"script.js?v=build-1",
		"No teaching listed yet.",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("index.html missing %q", want)
		}
	}
	if strings.Contains(html, "data-livereload") {
		t.Error("live reload should be off by default")
	}

	script, err := os.ReadFile(filepath.Join(outputDir, "script.js"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(script), "'#/research'") || !strings.Contains(string(script), "preventDefault") {
		t.Error("script.js should carry the fragment router and toggle handler")
	}

	highlight, err := os.ReadFile(filepath.Join(outputDir, "highlight.css"))
	if err != nil {
		t.Fatal(err)
	}
	if len(highlight) == 0 {
		t.Error("highlight.css should not be empty")
	}

	feed, err := os.ReadFile(filepath.Join(outputDir, "content.json"))
	if err != nil {
		t.Fatal(err)
	}
	var decoded content.Content
	if err := json.Unmarshal(feed, &decoded); err != nil {
		t.Fatalf("parsing content.json: %v", err)
	}
	if decoded.Profile.Name != "Test Person" || len(decoded.WorkingPapers) != len(c.WorkingPapers) {
		t.Errorf("content.json does not match the content: %+v", decoded.Profile)
	}
}

func TestGenerateFreshBuildID(t *testing.T) {
	gen := NewSiteGenerator(content.Sample(), "", t.TempDir())
	first, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if first.BuildID == "" || first.BuildID == second.BuildID {
		t.Errorf("each build should get a new id: %q %q", first.BuildID, second.BuildID)
	}
}

func TestGenerateLiveReload(t *testing.T) {
	outputDir := t.TempDir()
	gen := NewSiteGenerator(content.Sample(), "", outputDir)
	gen.LiveReload = true
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	index, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), `data-livereload="true"`) {
		t.Error("index.html should enable live reload")
	}
}

func TestGenerateNoContent(t *testing.T) {
	gen := NewSiteGenerator(nil, "", t.TempDir())
	_, err := gen.Generate()
	if err == nil || !strings.Contains(err.Error(), "no content") {
		t.Errorf("error = %v, want it to mention no content", err)
	}
}

func TestCheckOutputDir(t *testing.T) {
	tests := []struct {
		static, output string
		wantErr        bool
	}{
		{"public", "dist", false},
		{"public", "public-dist", false},
		{"site/public", "site", false},
		{"", "dist", false},
		{"public", "public", true},
		{"public", "./public/", true},
		{"public", "public/dist", true},
		{".", "dist", true},
	}
	for _, tt := range tests {
		err := CheckOutputDir(tt.static, tt.output)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckOutputDir(%q, %q) = %v, wantErr %v", tt.static, tt.output, err, tt.wantErr)
		}
	}
}

func TestGenerateOutputIsStaticDir(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "cv.pdf"), "MY CV BYTES")

	_, err := NewSiteGenerator(content.Sample(), dir, dir).Generate()
	if err == nil {
		t.Fatal("expected an error when output is the static dir")
	}
	data, err := os.ReadFile(filepath.Join(dir, "cv.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "MY CV BYTES" {
		t.Errorf("cv.pdf was modified: %q", data)
	}
}

func TestGenerateOutputInsideStaticDir(t *testing.T) {
	staticDir := t.TempDir()
	writeTestFile(t, filepath.Join(staticDir, "cv.pdf"), "pdf")
	outputDir := filepath.Join(staticDir, "dist")

	gen := NewSiteGenerator(content.Sample(), staticDir, outputDir)
	for i := 0; i < 2; i++ {
		if _, err := gen.Generate(); err == nil {
			t.Fatal("expected an error when output is inside the static dir")
		}
	}
	if _, err := os.Stat(outputDir); !os.IsNotExist(err) {
		t.Errorf("no output should be written inside the static dir, stat err = %v", err)
	}
}

func TestCollectAssetsSkipsDirs(t *testing.T) {
	staticDir := t.TempDir()
	writeTestFile(t, filepath.Join(staticDir, "cv.pdf"), "pdf")
	writeTestFile(t, filepath.Join(staticDir, "dist", "index.html"), "old export")
	writeTestFile(t, filepath.Join(staticDir, "dist", "dist", "index.html"), "older export")

	assets, err := collectAssets(staticDir, nil, filepath.Join(staticDir, "dist"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"cv.pdf"}, assets); diff != "" {
		t.Errorf("assets mismatch (-want +got):\n%s", diff)
	}
}

func TestScriptRouting(t *testing.T) {
	// The page script resolves fragments with the same prefixes as the router.
	for _, rt := range router.Routes {
		if rt == router.Home {
			continue
		}
		want := "hash.indexOf('" + rt.Fragment() + "') === 0) return '" + rt.String() + "'"
		if !strings.Contains(jsContent, want) {
			t.Errorf("script does not route %s: missing %q", rt, want)
		}
	}
	if !strings.Contains(jsContent, "return 'home';") {
		t.Error("script should fall back to home")
	}
	for _, rt := range router.Routes {
		want := rt.String() + ": '" + rt.Fragment() + "'"
		if !strings.Contains(jsContent, want) {
			t.Errorf("script fragment table is missing %q", want)
		}
	}
}

func TestScriptRenderedDocuments(t *testing.T) {
	// A rendered single-route document has no hash; its route comes from the body.
	initial := strings.Index(jsContent, "if (!window.location.hash)")
	if initial < 0 {
		t.Fatal("script should normalize an empty hash")
	}
	block := jsContent[initial:]
	if !strings.Contains(block[:strings.Index(block, "replaceState")], "fragments[document.body.getAttribute('data-active-route')]") {
		t.Error("empty hash on a rendered document should keep the rendered route")
	}
	if !strings.Contains(jsContent, "new URLSearchParams(window.location.search)") ||
		!strings.Contains(jsContent, "params.set('fragment', window.location.hash)") {
		t.Error("redirects to the render endpoint should keep the toggle parameters")
	}
}

func TestScriptTogglesDoNotNavigate(t *testing.T) {
	click := strings.Index(jsContent, "addEventListener('click'")
	if click < 0 {
		t.Fatal("script should handle clicks")
	}
	handler := jsContent[click:]
	prevent := strings.Index(handler, "e.preventDefault()")
	flip := strings.Index(handler, "abstract.hidden = !abstract.hidden")
	if prevent < 0 || flip < 0 || prevent > flip {
		t.Error("toggle clicks should call preventDefault before flipping the abstract")
	}
	if !strings.Contains(handler, "getAttribute('data-toggle')") {
		t.Error("click handler should look for data-toggle")
	}
}

// writeTestFile is a helper that creates a file with intermediate directories.
func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
