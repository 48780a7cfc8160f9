package site

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/livebook/internal/book"
	"github.com/ziadkadry99/livebook/internal/nav"
	"github.com/ziadkadry99/livebook/internal/theme"
)

const (
	defaultSearchLimit = 8
	maxSearchLimit     = 20
)

// Site serves the book: rendered pages, assets, search, the theme flag
// and the chat placeholder socket.
type Site struct {
	shell *Shell
	store *book.Store
	theme *theme.Theme
	index []SearchEntry
}

// New creates a Site over store.
func New(store *book.Store, th *theme.Theme, opts Options) (*Site, error) {
	shell, err := NewShell(store, th, opts)
	if err != nil {
		return nil, err
	}
	return &Site{
		shell: shell,
		store: store,
		theme: th,
		index: BuildSearchIndex(store),
	}, nil
}

// Shell returns the page shell used for rendering.
func (s *Site) Shell() *Shell { return s.shell }

// Index returns the search index.
func (s *Site) Index() []SearchEntry { return s.index }

// RegisterRoutes mounts all site routes onto the given router. Any GET not
// claimed by a more specific route is treated as a book location.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Get("/", s.handleRoot)
	r.Get("/assets/style.css", serveAsset("text/css; charset=utf-8", cssContent))
	r.Get("/assets/script.js", serveAsset("application/javascript; charset=utf-8", jsContent))
	r.Get("/search-index.json", s.handleSearchIndex)
	r.Get("/api/search", s.handleSearch)
	r.Get("/api/theme", s.handleGetTheme)
	r.Post("/api/theme", s.handleToggleTheme)
	r.Get("/ws/chat", s.handleWebSocket)
	r.Get("/*", s.handlePage)
}

func (s *Site) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, s.shell.DefaultPath(), http.StatusFound)
}

func (s *Site) handlePage(w http.ResponseWriter, r *http.Request) {
	view := s.shell.Decide(r.URL.Path)

	state := nav.NewState()
	if c, err := r.Cookie(nav.CookieName); err == nil {
		state = nav.ParseState(c.Value)
	}

	var buf bytes.Buffer
	if err := s.shell.Render(&buf, view, state); err != nil {
		log.Printf("livebook: rendering %s: %v", r.URL.Path, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if view.Kind == ViewNotFound {
		status = http.StatusNotFound
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

func (s *Site) handleSearchIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.index)
}

// searchResult is one hit in the /api/search response.
type searchResult struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

type searchResponse struct {
	Query   string         `json:"query"`
	Results []searchResult `json:"results"`
}

func (s *Site) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query is required"})
		return
	}

	limit := defaultSearchLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = min(n, maxSearchLimit)
		}
	}

	results := []searchResult{}
	for _, e := range Search(s.index, query, limit) {
		results = append(results, searchResult{Path: e.Path, Title: e.Title, Summary: e.Summary})
	}
	writeJSON(w, http.StatusOK, searchResponse{Query: query, Results: results})
}

type themeResponse struct {
	Dark bool       `json:"dark"`
	Mode theme.Mode `json:"mode"`
}

func (s *Site) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, themeResponse{Dark: s.theme.Dark(), Mode: s.theme.Mode()})
}

func (s *Site) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	dark := s.theme.Toggle()
	mode := theme.Light
	if dark {
		mode = theme.Dark
	}
	writeJSON(w, http.StatusOK, themeResponse{Dark: dark, Mode: mode})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
