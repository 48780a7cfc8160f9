package book

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestName is the file, relative to the content root, that lists the
// chapters and the navigation tree.
const ManifestName = "book.yaml"

// Renderer turns authored chapter source into the HTML payload stored on
// each Chapter.
type Renderer interface {
	Render(src []byte) (template.HTML, error)
}

// manifest mirrors book.yaml.
type manifest struct {
	Title       string         `yaml:"title"`
	DefaultPath string         `yaml:"default_path"`
	Chapters    []chapterEntry `yaml:"chapters"`
	Navigation  []navEntry     `yaml:"navigation"`
}

type chapterEntry struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	Path        string         `yaml:"path"`
	Description string         `yaml:"description"`
	File        string         `yaml:"file"`
	Outline     []OutlineEntry `yaml:"outline"`
}

// navEntry is the permissive on-disk shape of a navigation entry. It is
// converted to Branch, Leaf or Inert by decodeNav.
type navEntry struct {
	Label string     `yaml:"label"`
	Path  string     `yaml:"path"`
	Items []navEntry `yaml:"items"`
}

// Load reads the manifest and every chapter file from fsys, renders each
// chapter with r and returns the resulting Store.
func Load(fsys fs.FS, r Renderer) (*Store, error) {
	raw, err := fs.ReadFile(fsys, ManifestName)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ManifestName, err)
	}

	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ManifestName, err)
	}

	chapters := make([]Chapter, 0, len(m.Chapters))
	for _, entry := range m.Chapters {
		c := Chapter{
			ID:          entry.ID,
			Title:       entry.Title,
			Path:        entry.Path,
			Description: strings.TrimSpace(entry.Description),
			Outline:     entry.Outline,
		}
		if entry.File != "" {
			src, err := fs.ReadFile(fsys, path.Clean(entry.File))
			if err != nil {
				return nil, fmt.Errorf("reading chapter %q: %w", entry.ID, err)
			}
			content, err := r.Render(src)
			if err != nil {
				return nil, fmt.Errorf("rendering chapter %q: %w", entry.ID, err)
			}
			c.Content = content
		}
		chapters = append(chapters, c)
	}

	store, err := New(chapters, decodeNav(m.Navigation), m.DefaultPath)
	if err != nil {
		return nil, fmt.Errorf("building book: %w", err)
	}
	store.title = m.Title
	return store, nil
}

// decodeNav converts manifest entries into the tagged node types. An entry
// with both a path and children, or with neither, becomes Inert.
func decodeNav(entries []navEntry) []NavNode {
	if len(entries) == 0 {
		return nil
	}
	nodes := make([]NavNode, 0, len(entries))
	for _, e := range entries {
		hasPath := e.Path != ""
		hasItems := len(e.Items) > 0
		switch {
		case hasPath && !hasItems:
			nodes = append(nodes, Leaf{Title: e.Label, Path: e.Path})
		case hasItems && !hasPath:
			nodes = append(nodes, Branch{Title: e.Label, Children: decodeNav(e.Items)})
		default:
			nodes = append(nodes, Inert{Title: e.Label})
		}
	}
	return nodes
}
