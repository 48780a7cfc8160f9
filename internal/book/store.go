package book

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Resolve when no chapter has the requested path.
var ErrNotFound = errors.New("chapter not found")

// Store holds the fixed, ordered chapter set and the navigation forest.
// It is immutable after construction and safe for concurrent readers.
type Store struct {
	chapters    []Chapter
	nav         []NavNode
	defaultPath string
	title       string
}

// New builds a Store. It rejects empty or duplicate chapter paths,
// duplicate chapter IDs, and a default path that names no chapter.
// Navigation branches without children and leaves without a path are
// stored as Inert.
func New(chapters []Chapter, nav []NavNode, defaultPath string) (*Store, error) {
	if len(chapters) == 0 {
		return nil, fmt.Errorf("book has no chapters")
	}

	paths := make(map[string]bool, len(chapters))
	ids := make(map[string]bool, len(chapters))
	for i, c := range chapters {
		if c.Path == "" {
			return nil, fmt.Errorf("chapter %d (%q) has no path", i, c.Title)
		}
		if paths[c.Path] {
			return nil, fmt.Errorf("duplicate chapter path %q", c.Path)
		}
		paths[c.Path] = true
		if c.ID != "" {
			if ids[c.ID] {
				return nil, fmt.Errorf("duplicate chapter id %q", c.ID)
			}
			ids[c.ID] = true
		}
	}

	if defaultPath == "" {
		defaultPath = chapters[0].Path
	}
	if !paths[defaultPath] {
		return nil, fmt.Errorf("default path %q does not match any chapter", defaultPath)
	}

	s := &Store{
		chapters:    make([]Chapter, len(chapters)),
		nav:         cloneNodes(nav),
		defaultPath: defaultPath,
	}
	for i, c := range chapters {
		c.Outline = append([]OutlineEntry(nil), c.Outline...)
		s.chapters[i] = c
	}
	return s, nil
}

// Chapters returns the chapters in authored order. The slice is a copy.
func (s *Store) Chapters() []Chapter {
	out := make([]Chapter, len(s.chapters))
	copy(out, s.chapters)
	return out
}

// Navigation returns the navigation forest. The tree is a copy.
func (s *Store) Navigation() []NavNode {
	return cloneNodes(s.nav)
}

// Title returns the book title declared in the manifest, if any.
func (s *Store) Title() string { return s.title }

// DefaultPath returns the path the site root redirects to.
func (s *Store) DefaultPath() string { return s.defaultPath }

// Resolve returns the chapter whose path equals path exactly. No case or
// trailing-slash normalization is applied.
func (s *Store) Resolve(path string) (Chapter, error) {
	for _, c := range s.chapters {
		if c.Path == path {
			return c, nil
		}
	}
	return Chapter{}, fmt.Errorf("%w: %s", ErrNotFound, path)
}

func cloneNodes(nodes []NavNode) []NavNode {
	if nodes == nil {
		return nil
	}
	out := make([]NavNode, len(nodes))
	for i, n := range nodes {
		out[i] = normalizeNode(n)
	}
	return out
}

// normalizeNode copies n, turning a childless Branch or a pathless Leaf
// into an Inert label.
func normalizeNode(n NavNode) NavNode {
	switch n := n.(type) {
	case Branch:
		if len(n.Children) == 0 {
			return Inert{Title: n.Title}
		}
		n.Children = cloneNodes(n.Children)
		return n
	case Leaf:
		if n.Path == "" {
			return Inert{Title: n.Title}
		}
	}
	return n
}
