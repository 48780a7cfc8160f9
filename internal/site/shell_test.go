package site

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/ziadkadry99/livebook/internal/book"
	"github.com/ziadkadry99/livebook/internal/markup"
	"github.com/ziadkadry99/livebook/internal/nav"
	"github.com/ziadkadry99/livebook/internal/theme"
)

func testChapters() []book.Chapter {
	return []book.Chapter{
		{
			ID:          "preface",
			Title:       "Preface",
			Path:        "/docs/preface",
			Description: "Welcome to AI-Driven Education",
			Content:     `<h2 id="mission">Mission</h2><p>Our mission is co-learning between humans and AI.</p>`,
			Outline:     []book.OutlineEntry{{ID: "mission", Text: "Mission", Level: 2}},
		},
		{
			ID:          "ch4",
			Title:       "4. Building Live Books with Docusaurus",
			Path:        "/docs/live-books",
			Description: "Creating static sites that breathe.",
			Content:     `<p>Initialize a Docusaurus project and add a chat widget.</p>`,
		},
	}
}

func testNav() []book.NavNode {
	return []book.NavNode{
		book.Branch{Title: "Introduction", Children: []book.NavNode{
			book.Leaf{Title: "Preface", Path: "/docs/preface"},
		}},
		book.Branch{Title: "Foundations", Children: []book.NavNode{
			book.Leaf{Title: "4. Live Books", Path: "/docs/live-books"},
		}},
		book.Leaf{Title: "Chat", Path: "/ask"},
	}
}

func testStore(t *testing.T) *book.Store {
	t.Helper()
	s, err := book.New(testChapters(), testNav(), "/docs/preface")
	if err != nil {
		t.Fatalf("building store: %v", err)
	}
	return s
}

func testShell(t *testing.T, opts Options) (*Shell, *theme.Theme) {
	t.Helper()
	th := theme.New(theme.Dark)
	if opts.Title == "" {
		opts.Title = "Panaversity"
	}
	sh, err := NewShell(testStore(t), th, opts)
	if err != nil {
		t.Fatalf("NewShell: %v", err)
	}
	return sh, th
}

func renderDoc(t *testing.T, sh *Shell, location string, state *nav.State) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	if err := sh.Render(&buf, sh.Decide(location), state); err != nil {
		t.Fatalf("Render(%q): %v", location, err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("parsing page: %v", err)
	}
	return doc
}

func TestDecide(t *testing.T) {
	sh, _ := testShell(t, Options{})

	tests := []struct {
		location string
		want     ViewKind
	}{
		{"/docs/preface", ViewChapter},
		{"/docs/live-books", ViewChapter},
		{"/ask", ViewChat},
		{"/docs/nonexistent", ViewNotFound},
		{"/docs/preface/", ViewNotFound},
		{"/", ViewNotFound},
		{"", ViewNotFound},
	}
	for _, tt := range tests {
		v := sh.Decide(tt.location)
		if v.Kind != tt.want {
			t.Errorf("Decide(%q) = %v, want %v", tt.location, v.Kind, tt.want)
		}
	}

	if v := sh.Decide("/docs/preface"); v.Chapter.Title != "Preface" {
		t.Errorf("Decide(/docs/preface) chapter = %q, want Preface", v.Chapter.Title)
	}
}

func TestDecideChatWinsOverChapter(t *testing.T) {
	store, err := book.New([]book.Chapter{{ID: "ask", Title: "Ask", Path: "/ask"}}, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	sh, err := NewShell(store, theme.New(theme.Dark), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if v := sh.Decide("/ask"); v.Kind != ViewChat {
		t.Errorf("Decide(/ask) = %v, want chat", v.Kind)
	}
}

func TestDecideCustomChatPath(t *testing.T) {
	sh, _ := testShell(t, Options{ChatPath: "/assistant"})
	if v := sh.Decide("/assistant"); v.Kind != ViewChat {
		t.Errorf("Decide(/assistant) = %v, want chat", v.Kind)
	}
	if v := sh.Decide("/ask"); v.Kind != ViewNotFound {
		t.Errorf("Decide(/ask) = %v, want not-found", v.Kind)
	}
}

func TestRenderChapter(t *testing.T) {
	sh, _ := testShell(t, Options{Tagline: "AI-Driven Education"})
	doc := renderDoc(t, sh, "/docs/preface", nil)

	if got := doc.Find("h1.doc-title").Text(); got != "Preface" {
		t.Errorf("title = %q, want Preface", got)
	}
	if got := doc.Find("p.doc-description").Text(); got != "Welcome to AI-Driven Education" {
		t.Errorf("description = %q", got)
	}
	if doc.Find(".page-content h2#mission").Length() != 1 {
		t.Error("chapter content missing")
	}
	if href, _ := doc.Find(".doc-outline a.outline-link").Attr("href"); href != "#mission" {
		t.Errorf("outline href = %q, want #mission", href)
	}
	if !doc.Find("html").HasClass("dark") {
		t.Error("html element should carry the dark class")
	}
	if got := doc.Find(".brand-tagline").Text(); !strings.Contains(got, "AI-Driven Education") {
		t.Errorf("tagline = %q", got)
	}
	if got := doc.Find(".footer-title").Text(); got != "Panaversity" {
		t.Errorf("footer title = %q", got)
	}
}

func TestRenderChapterWithoutOutline(t *testing.T) {
	sh, _ := testShell(t, Options{})
	doc := renderDoc(t, sh, "/docs/live-books", nil)
	if doc.Find(".doc-outline").Length() != 0 {
		t.Error("a chapter without outline should render no outline panel")
	}
	if doc.Find(".page-content").Length() != 1 {
		t.Error("chapter content missing")
	}
}

func TestRenderNotFound(t *testing.T) {
	sh, _ := testShell(t, Options{})
	doc := renderDoc(t, sh, "/docs/nonexistent", nil)

	nf := doc.Find(".not-found")
	if got := nf.Find("h2").Text(); got != "404 - Page Not Found" {
		t.Errorf("heading = %q", got)
	}
	link := nf.Find("a")
	if href, _ := link.Attr("href"); href != "/docs/preface" {
		t.Errorf("exit link = %q, want /docs/preface", href)
	}
	if link.Text() != "Go to Preface" {
		t.Errorf("exit link text = %q", link.Text())
	}
	if doc.Find(".nav-tree").Length() != 1 {
		t.Error("not-found view should keep the navigation tree")
	}
}

func TestRenderChat(t *testing.T) {
	sh, _ := testShell(t, Options{})
	doc := renderDoc(t, sh, "/ask", nil)

	panel := doc.Find("#chat-panel")
	if panel.Length() != 1 {
		t.Fatal("chat panel missing")
	}
	if got := panel.Find(".chat-header h2").Text(); got != "Panaversity AI Assistant" {
		t.Errorf("chat header = %q", got)
	}
	if got := panel.Find(".chat-note").Text(); got != "(Iframe Placeholder for RAG Agent)" {
		t.Errorf("chat note = %q", got)
	}
	if panel.Find(".chat-suggestion").Length() != 2 {
		t.Error("expected two suggested questions")
	}
	if doc.Find(".page-content").Length() != 0 {
		t.Error("chat view should not render chapter content")
	}
}

func TestRenderActiveHighlight(t *testing.T) {
	tests := []struct {
		name      string
		highlight bool
		wantCount int
	}{
		{"exact match", true, 1},
		{"always inactive", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, _ := testShell(t, Options{HighlightActive: tt.highlight})
			doc := renderDoc(t, sh, "/docs/preface", nil)
			active := doc.Find("a.nav-link.active")
			if active.Length() != tt.wantCount {
				t.Fatalf("active links = %d, want %d", active.Length(), tt.wantCount)
			}
			if tt.wantCount == 1 {
				if href, _ := active.Attr("href"); href != "/docs/preface" {
					t.Errorf("active href = %q", href)
				}
			}
		})
	}
}

func TestRenderCollapsedBranch(t *testing.T) {
	sh, _ := testShell(t, Options{})
	state := nav.NewState()
	state.Toggle("Foundations")

	doc := renderDoc(t, sh, "/docs/preface", state)
	btn := doc.Find(`button[data-nav-key="Foundations"]`)
	if v, _ := btn.Attr("aria-expanded"); v != "false" {
		t.Errorf("aria-expanded = %q, want false", v)
	}
	if _, hidden := btn.Next().Attr("hidden"); !hidden {
		t.Error("collapsed branch children should be hidden")
	}
	if _, hidden := doc.Find(`button[data-nav-key="Introduction"]`).Next().Attr("hidden"); hidden {
		t.Error("other branches should stay expanded")
	}
}

func TestRenderFollowsTheme(t *testing.T) {
	sh, th := testShell(t, Options{})
	th.Toggle()
	doc := renderDoc(t, sh, "/docs/preface", nil)
	if doc.Find("html").HasClass("dark") {
		t.Error("light theme should not set the dark class")
	}
}

func TestNewShellFallsBackToManifestTitle(t *testing.T) {
	fsys := book.DefaultContent()
	store, err := book.Load(fsys, markup.NewRenderer(markup.DefaultStyle))
	if err != nil {
		t.Fatalf("loading embedded book: %v", err)
	}
	sh, err := NewShell(store, theme.New(theme.Light), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if sh.opts.Title != "Panaversity" {
		t.Errorf("title = %q, want Panaversity", sh.opts.Title)
	}
	if sh.ChatPath() != DefaultChatPath {
		t.Errorf("chat path = %q", sh.ChatPath())
	}
}
