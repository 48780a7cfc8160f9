package site

import (
	"fmt"
	"html"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/livebook/internal/progress"
)

// Generator exports the book as a static site that any file server can host.
type Generator struct {
	Site      *Site
	OutputDir string
	// Content is searched for files matching Assets, which are copied
	// verbatim. Either may be empty.
	Content  fs.FS
	Assets   []string
	Reporter progress.Reporter
}

// NewGenerator creates a Generator writing to outputDir.
func NewGenerator(site *Site, outputDir string) *Generator {
	return &Generator{
		Site:      site,
		OutputDir: outputDir,
		Reporter:  progress.Discard,
	}
}

// Generate writes the full static site. Returns the number of pages generated.
func (g *Generator) Generate() (int, error) {
	shell := g.Site.Shell()
	chapters := g.Site.store.Chapters()

	type page struct {
		location string
		file     string
		title    string
		view     View
	}
	pages := make([]page, 0, len(chapters)+2)
	for _, c := range chapters {
		// The chat view owns its path; a chapter there is never reachable.
		if c.Path == shell.ChatPath() {
			continue
		}
		pages = append(pages, page{location: c.Path, title: c.Title, view: shell.Decide(c.Path)})
	}
	pages = append(pages, page{location: shell.ChatPath(), title: shell.opts.Title + " AI Assistant", view: shell.Decide(shell.ChatPath())})
	pages = append(pages, page{file: "404.html", title: "Page not found", view: View{Kind: ViewNotFound}})

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Discard
	}
	reporter.Start(len(pages))

	for i, p := range pages {
		rel := p.file
		if rel == "" {
			var err error
			if rel, err = pageFile(p.location); err != nil {
				return 0, err
			}
		}
		if err := g.writePage(rel, p.view); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", rel, err)
		}
		reporter.Wrote(i+1, progress.Page{Title: p.title, File: rel})
	}
	reporter.Done()

	if err := g.writeRedirect(shell.DefaultPath()); err != nil {
		return 0, fmt.Errorf("writing index.html: %w", err)
	}

	if err := WriteSearchIndex(g.Site.Index(), filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	// Write static assets.
	assetsDir := filepath.Join(g.OutputDir, "assets")
	if err := os.MkdirAll(assetsDir, 0o755); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(assetsDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(assetsDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}

	if err := g.copyAssets(); err != nil {
		return 0, fmt.Errorf("copying assets: %w", err)
	}

	return len(pages), nil
}

// pageFile maps a location such as /docs/preface to docs/preface/index.html.
func pageFile(location string) (string, error) {
	rel := strings.Trim(path.Clean("/"+location), "/")
	if rel == "" {
		return "", fmt.Errorf("location %q cannot be exported", location)
	}
	return rel + "/index.html", nil
}

func (g *Generator) writePage(rel string, v View) error {
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return g.Site.Shell().render(f, v, nil, true)
}

const redirectPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta http-equiv="refresh" content="0; url=%[1]s">
  <link rel="canonical" href="%[1]s">
  <script>if (location.hash.indexOf("#/") === 0) { location.replace(location.hash.slice(1)); }</script>
</head>
<body><a href="%[1]s">Continue reading</a></body>
</html>
`

// writeRedirect writes the root index.html that forwards to target.
func (g *Generator) writeRedirect(target string) error {
	page := fmt.Sprintf(redirectPage, html.EscapeString(target))
	return os.WriteFile(filepath.Join(g.OutputDir, "index.html"), []byte(page), 0o644)
}

// copyAssets copies every file in Content matching one of the Assets globs.
func (g *Generator) copyAssets() error {
	if g.Content == nil {
		return nil
	}
	copied := make(map[string]bool)
	for _, pattern := range g.Assets {
		matches, err := doublestar.Glob(g.Content, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return fmt.Errorf("pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if copied[m] {
				continue
			}
			copied[m] = true

			data, err := fs.ReadFile(g.Content, m)
			if err != nil {
				return err
			}
			outPath := filepath.Join(g.OutputDir, filepath.FromSlash(m))
			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return err
			}
		}
	}
	return nil
}
