// Package outline renders a chapter's "On this page" jump links.
package outline

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/ziadkadry99/livebook/internal/book"
)

// Render returns the outline as a list of anchor links in the given order.
// Entries deeper than the shallowest level present are indented. An empty
// outline renders nothing at all.
func Render(entries []book.OutlineEntry) template.HTML {
	if len(entries) == 0 {
		return ""
	}

	minLevel := entries[0].Level
	for _, e := range entries[1:] {
		if e.Level < minLevel {
			minLevel = e.Level
		}
	}

	var b strings.Builder
	b.WriteString(`<nav class="outline" aria-label="On this page">` + "\n")
	b.WriteString(`<h4 class="outline-title">On this page</h4>` + "\n")
	b.WriteString(`<ul class="outline-list">` + "\n")
	for _, e := range entries {
		class := "outline-link"
		if e.Level > minLevel {
			class += " indent"
		}
		fmt.Fprintf(&b, `<li><a class="%s" href="#%s">%s</a></li>`+"\n",
			class, template.HTMLEscapeString(e.ID), template.HTMLEscapeString(e.Text))
	}
	b.WriteString("</ul>\n</nav>\n")
	return template.HTML(b.String())
}
