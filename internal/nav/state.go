// Package nav renders the sidebar navigation tree and tracks which
// branches are expanded.
package nav

import (
	"net/url"
	"sort"
	"strings"
)

// CookieName is the cookie the page script writes the collapsed branch
// keys to, so the server renders the tree the way the reader left it.
const CookieName = "livebook_nav"

// State maps branch keys to their expanded flag. Branches that were never
// toggled are expanded. The zero value is ready to use.
type State struct {
	collapsed map[string]bool
}

// NewState returns a State with every branch expanded.
func NewState() *State {
	return &State{}
}

// Expanded reports whether the branch with the given key is expanded.
// A nil State treats every branch as expanded.
func (s *State) Expanded(key string) bool {
	if s == nil {
		return true
	}
	return !s.collapsed[key]
}

// Toggle flips one branch and returns its new expanded flag. Other
// branches, including the branch's descendants, keep their own flags.
func (s *State) Toggle(key string) bool {
	if s.collapsed == nil {
		s.collapsed = make(map[string]bool)
	}
	if s.collapsed[key] {
		delete(s.collapsed, key)
		return true
	}
	s.collapsed[key] = true
	return false
}

// Reset expands every branch again, as on a fresh mount of the tree.
func (s *State) Reset() {
	s.collapsed = nil
}

// BranchKey derives the stable key of a branch from its parent's key and
// its own label, so equally named branches under different parents stay
// independent. The label is path-escaped, so a "/" or newline inside it
// can neither join two keys nor split a cookie entry.
func BranchKey(parent, label string) string {
	label = url.PathEscape(label)
	if parent == "" {
		return label
	}
	return parent + "/" + label
}

// Collapsed returns the keys of collapsed branches in sorted order.
func (s *State) Collapsed() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.collapsed))
	for k := range s.collapsed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Encode serializes the collapsed keys for the nav cookie.
func (s *State) Encode() string {
	return url.QueryEscape(strings.Join(s.Collapsed(), "\n"))
}

// ParseState rebuilds a State from an Encode result. Malformed input
// yields a fully expanded State.
func ParseState(encoded string) *State {
	s := NewState()
	raw, err := url.QueryUnescape(encoded)
	if err != nil || raw == "" {
		return s
	}
	for _, key := range strings.Split(raw, "\n") {
		if key != "" && s.Expanded(key) {
			s.Toggle(key)
		}
	}
	return s
}
