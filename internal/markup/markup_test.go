package markup

import (
	"html/template"
	"strings"
	"testing"
)

func render(t *testing.T, src string) string {
	t.Helper()
	out, err := NewRenderer("").Render([]byte(src))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return string(out)
}

func TestRenderHeadingAttributes(t *testing.T) {
	out := render(t, "## Learning Objectives {#objectives}\n\nText.\n")
	if !strings.Contains(out, `<h2 id="objectives">Learning Objectives</h2>`) {
		t.Errorf("explicit heading id missing:\n%s", out)
	}
}

func TestRenderAdmonition(t *testing.T) {
	src := ":::tip Best Practice\nAlways **version** your specs.\n:::\n\nAfter.\n"
	out := render(t, src)

	for _, want := range []string{
		`<div class="admonition admonition-tip">`,
		`<p class="admonition-title"><span class="admonition-icon icon-tip"></span>Best Practice</p>`,
		`<strong>version</strong>`,
		`<p>After.</p>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderAdmonitionDefaultTitle(t *testing.T) {
	out := render(t, ":::warning\nCareful.\n:::\n")
	if !strings.Contains(out, `</span>warning</p>`) {
		t.Errorf("expected kind as title:\n%s", out)
	}
}

func TestRenderUnknownAdmonitionPassesThrough(t *testing.T) {
	out := render(t, ":::sparkle\ntext\n")
	if strings.Contains(out, "admonition") {
		t.Errorf("unknown kind should not become an admonition:\n%s", out)
	}
}

func TestRenderTitledCodeBlock(t *testing.T) {
	src := "```python title=\"faculty_agent.py\"\nprint('hi')\n```\n"
	out := render(t, src)

	if !strings.Contains(out, `<div class="code-block">`) {
		t.Errorf("missing code-block wrapper:\n%s", out)
	}
	if !strings.Contains(out, `<span class="code-filename">faculty_agent.py</span><span class="code-lang">python</span>`) {
		t.Errorf("missing code header:\n%s", out)
	}
	if !strings.Contains(out, "<pre") {
		t.Errorf("missing pre element:\n%s", out)
	}
}

func TestRenderUntitledCodeBlockHasNoHeader(t *testing.T) {
	out := render(t, "```bash\nnpm start\n```\n")
	if strings.Contains(out, "code-header") {
		t.Errorf("untitled block should not have a header:\n%s", out)
	}
	if !strings.Contains(out, `<div class="code-block">`) {
		t.Errorf("missing code-block wrapper:\n%s", out)
	}
}

func TestRenderNestedFence(t *testing.T) {
	src := "````markdown title=\"SPEC.md\"\n# Title\n```\ninner\n```\n````\n\nTail paragraph.\n"
	out := render(t, src)
	if strings.Count(out, `<div class="code-block">`) != 1 {
		t.Errorf("expected exactly one code block:\n%s", out)
	}
	if !strings.Contains(out, "<p>Tail paragraph.</p>") {
		t.Errorf("content after the outer fence was swallowed:\n%s", out)
	}
}

func TestRenderMermaidPlaceholder(t *testing.T) {
	src := "```mermaid caption=\"Pipeline\"\ngraph LR\n\n    A --> B\n```\n"
	out := render(t, src)

	for _, want := range []string{
		`<figure class="diagram">`,
		`Mermaid Diagram Preview`,
		`graph LR&#10;&#10;    A --&gt; B`,
		`<figcaption>Pipeline</figcaption>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMermaidWithoutCaption(t *testing.T) {
	out := render(t, "```mermaid\nsequenceDiagram\n```\n")
	if strings.Contains(out, "figcaption") {
		t.Errorf("caption rendered without one being set:\n%s", out)
	}
}

func TestRenderBadge(t *testing.T) {
	out := render(t, "A {{badge:green|Beta}} and {{badge:purple|Odd}}.\n")
	if !strings.Contains(out, `<span class="badge badge-green">Beta</span>`) {
		t.Errorf("green badge missing:\n%s", out)
	}
	if !strings.Contains(out, `<span class="badge badge-blue">Odd</span>`) {
		t.Errorf("unknown color should fall back to blue:\n%s", out)
	}
}

func TestBadgesIgnoredInsideCode(t *testing.T) {
	got := string(expandDirectives([]byte("```\n{{badge:red|x}}\n```")))
	if strings.Contains(got, "badge-red") {
		t.Errorf("badge expanded inside fenced code:\n%s", got)
	}
}

func TestUnclosedDirectivesAreClosed(t *testing.T) {
	got := string(expandDirectives([]byte(":::note\nopen\n```go\nx := 1")))
	if strings.Count(got, "</div>") != 3 {
		t.Errorf("expected code and admonition wrappers to be closed:\n%s", got)
	}
}

func TestParseFenceInfo(t *testing.T) {
	tests := []struct {
		info      string
		wantLang  string
		wantTitle string
	}{
		{`python title="a.py"`, "python", "a.py"},
		{`go`, "go", ""},
		{``, "", ""},
		{`title="only.txt"`, "", "only.txt"},
	}
	for _, tt := range tests {
		lang, attrs := parseFenceInfo(tt.info)
		if lang != tt.wantLang || attrs["title"] != tt.wantTitle {
			t.Errorf("parseFenceInfo(%q) = %q, %q; want %q, %q", tt.info, lang, attrs["title"], tt.wantLang, tt.wantTitle)
		}
	}
}

func TestAnchorsDocumentOrder(t *testing.T) {
	content := template.HTML(`<h2 id="b">B</h2><p>x</p><h3 id="a">A</h3><div id="c"></div>`)
	got := Anchors(content)
	want := []string{"b", "a", "c"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Anchors = %v, want %v", got, want)
	}
}

func TestPlainText(t *testing.T) {
	got := PlainText(template.HTML("<h2>Title</h2>\n<p>Some  <strong>bold</strong>\ntext.</p>"))
	if got != "Title Some bold text." {
		t.Errorf("PlainText = %q", got)
	}
}

func TestValidStyle(t *testing.T) {
	if !ValidStyle(DefaultStyle) {
		t.Errorf("%q should be a known style", DefaultStyle)
	}
	if ValidStyle("no-such-style") {
		t.Error("unknown style reported valid")
	}
	if ValidStyle("") {
		t.Error("empty style reported valid")
	}
}
