package site

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/folio/internal/progress"
)

// DefaultExcludes are static-directory patterns never copied into the export.
var DefaultExcludes = []string{
	".DS_Store",
	"Thumbs.db",
	"**/.git/**",
	"**/*.swp",
	"**/*~",
}

// MatchesExclude returns true if the given relative path matches any of the
// exclude patterns. If patterns is empty, nothing is excluded.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	normalized := filepath.ToSlash(relPath)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		// Try doublestar matching (supports **).
		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}

		// Also try matching against just the filename.
		base := filepath.Base(normalized)
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

// CheckOutputDir rejects an output directory that is the static directory
// or lies inside it. Copying assets onto themselves truncates them.
func CheckOutputDir(staticDir, outputDir string) error {
	if staticDir == "" {
		return nil
	}
	if within(staticDir, outputDir) {
		return fmt.Errorf("output_dir %s must not be static_dir %s or inside it", outputDir, staticDir)
	}
	return nil
}

// within reports whether path is dir or lies below it, comparing absolute
// paths.
func within(dir, path string) bool {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// collectAssets lists the files under dir that survive the exclude patterns,
// as slash-separated paths relative to dir. A missing dir yields no assets.
// Directories named in skip are not descended into.
func collectAssets(dir string, exclude []string, skip ...string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	var assets []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			for _, s := range skip {
				if s != "" && within(s, path) {
					return filepath.SkipDir
				}
			}
		}
		if MatchesExclude(rel, exclude) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			assets = append(assets, filepath.ToSlash(rel))
		}
		return nil
	})
	return assets, err
}

// copyAssets copies the listed files from src to dst, reporting each one.
func copyAssets(src, dst string, assets []string, reporter progress.Reporter) error {
	reporter.Start(len(assets))
	defer reporter.Finish()
	for i, rel := range assets {
		if err := copyFile(filepath.Join(src, filepath.FromSlash(rel)), filepath.Join(dst, filepath.FromSlash(rel))); err != nil {
			return err
		}
		reporter.Update(i+1, rel)
	}
	return nil
}

// copyFile copies a single file.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
