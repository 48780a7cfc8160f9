package site

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/ziadkadry99/livebook/internal/book"
	"github.com/ziadkadry99/livebook/internal/nav"
	"github.com/ziadkadry99/livebook/internal/outline"
	"github.com/ziadkadry99/livebook/internal/theme"
)

// DefaultChatPath is the route of the assistant placeholder.
const DefaultChatPath = "/ask"

// ViewKind is the content the shell shows for a location.
type ViewKind int

const (
	ViewChapter ViewKind = iota
	ViewChat
	ViewNotFound
)

func (k ViewKind) String() string {
	switch k {
	case ViewChapter:
		return "chapter"
	case ViewChat:
		return "chat"
	default:
		return "not-found"
	}
}

// View is the outcome of Decide.
type View struct {
	Kind     ViewKind
	Location string
	Chapter  book.Chapter // Set for ViewChapter only.
}

// Options configures the shell chrome.
type Options struct {
	Title           string // Falls back to the manifest title.
	Tagline         string
	ChatPath        string // Defaults to DefaultChatPath.
	HighlightActive bool   // Mark the nav leaf whose path equals the location.
}

// Shell composes the header bar, navigation tree, content area and footer
// around whatever Decide picks for a location.
type Shell struct {
	store *book.Store
	theme *theme.Theme
	opts  Options
	tmpl  *template.Template
	year  int
}

// NewShell creates a Shell over store. The theme is read at render time.
func NewShell(store *book.Store, th *theme.Theme, opts Options) (*Shell, error) {
	if opts.Title == "" {
		opts.Title = store.Title()
	}
	if opts.ChatPath == "" {
		opts.ChatPath = DefaultChatPath
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	return &Shell{
		store: store,
		theme: th,
		opts:  opts,
		tmpl:  tmpl,
		year:  time.Now().Year(),
	}, nil
}

// Decide maps a location to a view: the chat route wins over any chapter,
// then an exact chapter match, otherwise not found.
func (s *Shell) Decide(location string) View {
	if location == s.opts.ChatPath {
		return View{Kind: ViewChat, Location: location}
	}
	c, err := s.store.Resolve(location)
	if err != nil {
		return View{Kind: ViewNotFound, Location: location}
	}
	return View{Kind: ViewChapter, Location: location, Chapter: c}
}

// DefaultPath is where the site root redirects.
func (s *Shell) DefaultPath() string { return s.store.DefaultPath() }

// ChatPath is the route of the assistant placeholder.
func (s *Shell) ChatPath() string { return s.opts.ChatPath }

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title        string
	BookTitle    string
	Tagline      string
	ThemeClass   string
	Dark         bool
	View         string
	Location     string
	Description  string
	Content      template.HTML
	NavHTML      template.HTML
	OutlineHTML  template.HTML
	DefaultPath  string
	DefaultTitle string
	ChatPath     string
	Suggestions  []string
	Year         int
	Static       bool
}

// chatSuggestions are the canned questions on the assistant placeholder.
var chatSuggestions = []string{
	"Explain Spec-Kit Plus",
	"What is Co-Learning?",
}

// Render writes the full page for v. A nil state renders every branch
// expanded.
func (s *Shell) Render(w io.Writer, v View, state *nav.State) error {
	return s.render(w, v, state, false)
}

func (s *Shell) render(w io.Writer, v View, state *nav.State, static bool) error {
	isActive := nav.Never
	if s.opts.HighlightActive {
		isActive = func(path string) bool { return path == v.Location }
	}

	data := pageData{
		BookTitle:   s.opts.Title,
		Tagline:     s.opts.Tagline,
		ThemeClass:  s.theme.Class(),
		Dark:        s.theme.Dark(),
		View:        v.Kind.String(),
		Location:    v.Location,
		NavHTML:     nav.Render(s.store.Navigation(), isActive, state),
		DefaultPath: s.store.DefaultPath(),
		ChatPath:    s.opts.ChatPath,
		Year:        s.year,
		Static:      static,
	}
	if def, err := s.store.Resolve(data.DefaultPath); err == nil {
		data.DefaultTitle = def.Title
	}

	switch v.Kind {
	case ViewChapter:
		data.Title = v.Chapter.Title
		data.Description = v.Chapter.Description
		data.Content = v.Chapter.Content
		data.OutlineHTML = outline.Render(v.Chapter.Outline)
	case ViewChat:
		data.Title = s.opts.Title + " AI Assistant"
		data.Suggestions = chatSuggestions
	default:
		data.Title = "404 - Page Not Found"
	}

	return s.tmpl.Execute(w, data)
}
