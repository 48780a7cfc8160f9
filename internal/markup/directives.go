package markup

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// admonitionKinds are the callout styles recognised after ":::".
var admonitionKinds = map[string]bool{
	"note":    true,
	"tip":     true,
	"info":    true,
	"warning": true,
	"danger":  true,
}

// badgeColors are the colors accepted by {{badge:color|text}}.
var badgeColors = map[string]bool{
	"blue":   true,
	"green":  true,
	"yellow": true,
	"red":    true,
}

var (
	badgePattern     = regexp.MustCompile(`\{\{badge:([a-z]+)\|([^}]+)\}\}`)
	fenceAttrPattern = regexp.MustCompile(`(\w+)="([^"]*)"`)
)

// fence tracks the open fenced code block while expanding directives.
type fence struct {
	char    byte
	count   int
	mermaid bool
	caption string
	lines   []string
}

// expandDirectives rewrites the book's authoring directives into raw HTML
// blocks that goldmark passes through. Every emitted HTML block is kept
// free of blank lines and surrounded by them, so the markdown between an
// opening and closing block is still parsed as markdown.
func expandDirectives(src []byte) []byte {
	var out []string
	var open *fence
	admonitions := 0

	emit := func(lines ...string) { out = append(out, lines...) }

	for _, line := range strings.Split(strings.ReplaceAll(string(src), "\r\n", "\n"), "\n") {
		trimmed := strings.TrimSpace(line)

		if open != nil {
			if isFenceClose(trimmed, open) {
				if open.mermaid {
					emit("", diagramHTML(open.lines, open.caption), "")
				} else {
					emit(line, "", "</div>", "")
				}
				open = nil
				continue
			}
			if open.mermaid {
				open.lines = append(open.lines, line)
			} else {
				emit(line)
			}
			continue
		}

		if f, info, ok := parseFenceOpen(trimmed); ok {
			lang, attrs := parseFenceInfo(info)
			open = f
			if lang == "mermaid" {
				open.mermaid = true
				open.caption = attrs["caption"]
				continue
			}
			emit("", `<div class="code-block">`)
			if title := attrs["title"]; title != "" {
				emit(fmt.Sprintf(`<div class="code-header"><span class="code-filename">%s</span><span class="code-lang">%s</span></div>`,
					html.EscapeString(title), html.EscapeString(lang)))
			}
			emit("", strings.Repeat(string(f.char), f.count)+lang)
			continue
		}

		if strings.HasPrefix(trimmed, ":::") {
			rest := strings.TrimSpace(strings.TrimPrefix(trimmed, ":::"))
			if rest == "" && admonitions > 0 {
				emit("", "</div>", "</div>", "")
				admonitions--
				continue
			}
			kind, title, _ := strings.Cut(rest, " ")
			if admonitionKinds[kind] {
				title = strings.TrimSpace(title)
				if title == "" {
					title = kind
				}
				emit("",
					fmt.Sprintf(`<div class="admonition admonition-%s">`, kind),
					fmt.Sprintf(`<p class="admonition-title"><span class="admonition-icon icon-%s"></span>%s</p>`, kind, html.EscapeString(title)),
					`<div class="admonition-body">`,
					"")
				admonitions++
				continue
			}
		}

		emit(expandBadges(line))
	}

	// Close anything the author left open so the page layout survives.
	if open != nil {
		if open.mermaid {
			emit("", diagramHTML(open.lines, open.caption), "")
		} else {
			emit(strings.Repeat(string(open.char), open.count), "", "</div>", "")
		}
	}
	for ; admonitions > 0; admonitions-- {
		emit("", "</div>", "</div>", "")
	}

	return []byte(strings.Join(out, "\n"))
}

// parseFenceOpen reports whether line opens a fenced code block and returns
// the fence and its info string.
func parseFenceOpen(line string) (*fence, string, bool) {
	if len(line) < 3 || (line[0] != '`' && line[0] != '~') {
		return nil, "", false
	}
	ch := line[0]
	n := 0
	for n < len(line) && line[n] == ch {
		n++
	}
	if n < 3 {
		return nil, "", false
	}
	info := strings.TrimSpace(line[n:])
	if ch == '`' && strings.Contains(info, "`") {
		return nil, "", false
	}
	return &fence{char: ch, count: n}, info, true
}

func isFenceClose(line string, f *fence) bool {
	if len(line) < f.count {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != f.char {
			return false
		}
	}
	return true
}

// parseFenceInfo splits `python title="x.py"` into the language and its
// key="value" attributes.
func parseFenceInfo(info string) (string, map[string]string) {
	attrs := make(map[string]string)
	lang, rest, _ := strings.Cut(info, " ")
	if strings.Contains(lang, "=") {
		lang, rest = "", info
	}
	for _, m := range fenceAttrPattern.FindAllStringSubmatch(rest, -1) {
		attrs[m[1]] = m[2]
	}
	return lang, attrs
}

// diagramHTML renders the diagram placeholder as a single line so that
// blank lines in the definition cannot end the HTML block early.
func diagramHTML(lines []string, caption string) string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	escaped := make([]string, len(lines))
	for i, l := range lines {
		escaped[i] = html.EscapeString(l)
	}
	definition := strings.Join(escaped, "&#10;")

	var b strings.Builder
	b.WriteString(`<figure class="diagram"><div class="diagram-frame">`)
	b.WriteString(`<div class="diagram-label">Mermaid Diagram Preview</div>`)
	fmt.Fprintf(&b, `<pre class="mermaid-source">%s</pre>`, definition)
	b.WriteString(`<div class="diagram-footer">Diagram Visualization</div></div>`)
	if caption != "" {
		fmt.Fprintf(&b, `<figcaption>%s</figcaption>`, html.EscapeString(caption))
	}
	b.WriteString(`</figure>`)
	return b.String()
}

// expandBadges replaces {{badge:color|text}} with an inline badge span.
// Unknown colors fall back to blue.
func expandBadges(line string) string {
	if !strings.Contains(line, "{{badge:") {
		return line
	}
	return badgePattern.ReplaceAllStringFunc(line, func(m string) string {
		parts := badgePattern.FindStringSubmatch(m)
		color := parts[1]
		if !badgeColors[color] {
			color = "blue"
		}
		return fmt.Sprintf(`<span class="badge badge-%s">%s</span>`, color, html.EscapeString(parts[2]))
	})
}
