package nav

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/ziadkadry99/livebook/internal/book"
)

// ActiveFunc reports whether a leaf path is the page being viewed.
type ActiveFunc func(path string) bool

// Never is an ActiveFunc that marks no leaf as active.
func Never(string) bool { return false }

// Render renders the navigation forest as nested HTML. A nil isActive is
// treated as Never and a nil state expands every branch.
func Render(nodes []book.NavNode, isActive ActiveFunc, state *State) template.HTML {
	if isActive == nil {
		isActive = Never
	}
	var b strings.Builder
	b.WriteString(`<div class="nav-tree">` + "\n")
	for _, n := range nodes {
		renderNode(&b, n, isActive, state, 0, "")
	}
	b.WriteString("</div>\n")
	return template.HTML(b.String())
}

func renderNode(b *strings.Builder, node book.NavNode, isActive ActiveFunc, state *State, depth int, parentKey string) {
	switch n := node.(type) {
	case book.Branch:
		if len(n.Children) == 0 {
			renderInert(b, n.Title)
			return
		}
		key := BranchKey(parentKey, n.Title)
		expanded := state.Expanded(key)

		class := "nav-toggle nested"
		if depth == 0 {
			class = "nav-toggle top-level"
		}
		fmt.Fprintf(b, `<div class="nav-branch depth-%d">`+"\n", depth)
		fmt.Fprintf(b, `<button type="button" class="%s" data-nav-key="%s" aria-expanded="%t"><span class="nav-label">%s</span>`,
			class, template.HTMLEscapeString(key), expanded, template.HTMLEscapeString(n.Title))
		if depth == 0 {
			chevron := "chevron-right"
			if expanded {
				chevron = "chevron-down"
			}
			fmt.Fprintf(b, `<span class="chevron %s" aria-hidden="true"></span>`, chevron)
		}
		b.WriteString("</button>\n")

		hidden := ""
		if !expanded {
			hidden = " hidden"
		}
		fmt.Fprintf(b, `<div class="nav-children"%s>`+"\n", hidden)
		for _, child := range n.Children {
			renderNode(b, child, isActive, state, depth+1, key)
		}
		b.WriteString("</div>\n</div>\n")

	case book.Leaf:
		if n.Path == "" {
			renderInert(b, n.Title)
			return
		}
		label := template.HTMLEscapeString(n.Title)
		href := template.HTMLEscapeString(n.Path)
		if isActive(n.Path) {
			fmt.Fprintf(b, `<a class="nav-link active" href="%s" aria-current="page">%s</a>`+"\n", href, label)
		} else {
			fmt.Fprintf(b, `<a class="nav-link inactive" href="%s">%s</a>`+"\n", href, label)
		}

	case book.Inert:
		renderInert(b, n.Title)
	}
}

// renderInert writes a label that neither links nor toggles.
func renderInert(b *strings.Builder, title string) {
	fmt.Fprintf(b, `<span class="nav-inert">%s</span>`+"\n", template.HTMLEscapeString(title))
}
