package book

import "html/template"

// Chapter is one page of book content with a unique route.
type Chapter struct {
	ID          string
	Title       string
	Path        string
	Description string
	Content     template.HTML // Pre-rendered body; positioned by the page shell, never inspected.
	Outline     []OutlineEntry
}

// OutlineEntry is one in-page jump target. ID must match an element id in
// the chapter content.
type OutlineEntry struct {
	ID    string `yaml:"id" json:"id"`
	Text  string `yaml:"text" json:"text"`
	Level int    `yaml:"level" json:"level"`
}

// NavNode is an entry in the sidebar tree. The concrete type is one of
// Branch, Leaf or Inert.
type NavNode interface {
	Label() string
	navNode()
}

// Branch groups other entries and toggles their visibility.
type Branch struct {
	Title    string
	Children []NavNode
}

// Leaf links directly to a location.
type Leaf struct {
	Title string
	Path  string
}

// Inert is a label with neither a path nor children. Malformed manifest
// entries decode to it.
type Inert struct {
	Title string
}

func (b Branch) Label() string { return b.Title }
func (l Leaf) Label() string   { return l.Title }
func (i Inert) Label() string  { return i.Title }

func (Branch) navNode() {}
func (Leaf) navNode()   {}
func (Inert) navNode()  {}
