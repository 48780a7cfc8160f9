package nav

import (
	"strings"
	"testing"

	"github.com/ziadkadry99/livebook/internal/book"
)

func sampleTree() []book.NavNode {
	return []book.NavNode{
		book.Branch{Title: "Introduction", Children: []book.NavNode{
			book.Leaf{Title: "Preface", Path: "/docs/preface"},
		}},
		book.Branch{Title: "Foundations", Children: []book.NavNode{
			book.Leaf{Title: "1. Future of Faculty", Path: "/docs/future-faculty"},
			book.Branch{Title: "Extras", Children: []book.NavNode{
				book.Leaf{Title: "Appendix", Path: "/docs/appendix"},
			}},
		}},
		book.Leaf{Title: "Chat", Path: "/ask"},
	}
}

func TestStateDefaultsExpanded(t *testing.T) {
	s := NewState()
	if !s.Expanded("Foundations") {
		t.Error("new state should expand every branch")
	}
	var nilState *State
	if !nilState.Expanded("anything") {
		t.Error("nil state should expand every branch")
	}
}

func TestStateToggleIsolated(t *testing.T) {
	s := NewState()
	if got := s.Toggle("Foundations"); got {
		t.Error("first toggle should collapse")
	}
	if s.Expanded("Foundations") {
		t.Error("Foundations should be collapsed")
	}
	if !s.Expanded("Introduction") {
		t.Error("sibling branch changed")
	}
	if !s.Expanded("Foundations/Extras") {
		t.Error("descendant branch flag changed")
	}
	if got := s.Toggle("Foundations"); !got {
		t.Error("second toggle should expand")
	}
}

func TestStateReset(t *testing.T) {
	s := NewState()
	s.Toggle("Introduction")
	s.Toggle("Foundations")
	s.Reset()
	if !s.Expanded("Introduction") || !s.Expanded("Foundations") {
		t.Error("Reset should expand every branch")
	}
}

func TestBranchKey(t *testing.T) {
	if got := BranchKey("", "Foundations"); got != "Foundations" {
		t.Errorf("BranchKey root = %q", got)
	}
	if got := BranchKey("Foundations", "Extras"); got != "Foundations/Extras" {
		t.Errorf("BranchKey nested = %q", got)
	}
}

func TestRenderExpandedByDefault(t *testing.T) {
	out := string(Render(sampleTree(), nil, nil))

	if strings.Contains(out, " hidden") {
		t.Errorf("no branch should be hidden on first render:\n%s", out)
	}
	for _, want := range []string{
		`data-nav-key="Foundations" aria-expanded="true"`,
		`data-nav-key="Foundations/Extras" aria-expanded="true"`,
		`<a class="nav-link inactive" href="/docs/preface">Preface</a>`,
		`<a class="nav-link inactive" href="/ask">Chat</a>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderDepthStyling(t *testing.T) {
	out := string(Render(sampleTree(), nil, nil))

	if !strings.Contains(out, `class="nav-toggle top-level" data-nav-key="Foundations"`) {
		t.Errorf("top-level branch not distinguished:\n%s", out)
	}
	if !strings.Contains(out, `class="nav-toggle nested" data-nav-key="Foundations/Extras"`) {
		t.Errorf("nested branch styled as top level:\n%s", out)
	}
	if got := strings.Count(out, "chevron-down"); got != 2 {
		t.Errorf("chevrons = %d, want 2 (top-level branches only)", got)
	}
}

func TestRenderCollapsedHidesChildren(t *testing.T) {
	s := NewState()
	s.Toggle("Foundations")
	out := string(Render(sampleTree(), nil, s))

	if !strings.Contains(out, `data-nav-key="Foundations" aria-expanded="false"`) {
		t.Errorf("Foundations should render collapsed:\n%s", out)
	}
	if got := strings.Count(out, `<div class="nav-children" hidden>`); got != 1 {
		t.Errorf("hidden child containers = %d, want 1:\n%s", got, out)
	}
	if !strings.Contains(out, "chevron-right") {
		t.Errorf("collapsed top-level branch should show a right chevron:\n%s", out)
	}
}

func TestRenderToggleTwiceRestores(t *testing.T) {
	s := NewState()
	before := Render(sampleTree(), nil, s)
	s.Toggle("Foundations")
	if Render(sampleTree(), nil, s) == before {
		t.Fatal("single toggle should change the output")
	}
	s.Toggle("Foundations")
	if after := Render(sampleTree(), nil, s); after != before {
		t.Errorf("double toggle changed output:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

func TestRenderActiveLeaf(t *testing.T) {
	active := func(p string) bool { return p == "/docs/future-faculty" }
	out := string(Render(sampleTree(), active, nil))

	if !strings.Contains(out, `<a class="nav-link active" href="/docs/future-faculty" aria-current="page">`) {
		t.Errorf("active leaf not highlighted:\n%s", out)
	}
	if strings.Count(out, "aria-current") != 1 {
		t.Errorf("exactly one leaf should be active:\n%s", out)
	}
}

func TestRenderInertNode(t *testing.T) {
	out := string(Render([]book.NavNode{book.Inert{Title: "Broken"}}, nil, nil))
	if !strings.Contains(out, `<span class="nav-inert">Broken</span>`) {
		t.Errorf("inert node not rendered as label:\n%s", out)
	}
	if strings.Contains(out, "<a ") || strings.Contains(out, "<button") {
		t.Errorf("inert node should not be interactive:\n%s", out)
	}
}

func TestRenderEscapesLabels(t *testing.T) {
	out := string(Render([]book.NavNode{book.Leaf{Title: "<b>x</b>", Path: "/docs/x"}}, nil, nil))
	if strings.Contains(out, "<b>") {
		t.Errorf("label not escaped:\n%s", out)
	}
}

func TestStateEncodeRoundTrip(t *testing.T) {
	s := NewState()
	s.Toggle("Foundations/Extras")
	s.Toggle("Introduction")

	parsed := ParseState(s.Encode())
	if parsed.Expanded("Introduction") || parsed.Expanded("Foundations/Extras") {
		t.Error("collapsed keys were not restored")
	}
	if !parsed.Expanded("Foundations") {
		t.Error("untouched branch should stay expanded")
	}
}

func TestParseStateMalformed(t *testing.T) {
	for _, in := range []string{"", "%zz", "%0A%0A"} {
		s := ParseState(in)
		if len(s.Collapsed()) != 0 {
			t.Errorf("ParseState(%q) collapsed %v, want none", in, s.Collapsed())
		}
	}
}

func TestParseStateMatchesScriptEncoding(t *testing.T) {
	// encodeURIComponent(["Foundations", "Foundations/Extras"].join("\n"))
	s := ParseState("Foundations%0AFoundations%2FExtras")
	got := s.Collapsed()
	if len(got) != 2 || got[0] != "Foundations" || got[1] != "Foundations/Extras" {
		t.Errorf("Collapsed() = %v", got)
	}
}

func TestBranchKeyEscapesSeparators(t *testing.T) {
	nested := BranchKey(BranchKey("", "A"), "B")
	slashed := BranchKey("", "A/B")
	if nested == slashed {
		t.Fatalf("nested and slash-titled branches share key %q", nested)
	}
	if got := BranchKey("", "Line\nbreak"); strings.Contains(got, "\n") {
		t.Errorf("key %q contains a newline", got)
	}
}

func TestToggleSlashTitledBranchIsIsolated(t *testing.T) {
	tree := []book.NavNode{
		book.Branch{Title: "A", Children: []book.NavNode{
			book.Branch{Title: "B", Children: []book.NavNode{
				book.Leaf{Title: "x", Path: "/docs/x"},
			}},
		}},
		book.Branch{Title: "A/B", Children: []book.NavNode{
			book.Leaf{Title: "y", Path: "/docs/y"},
		}},
	}
	s := NewState()
	s.Toggle(BranchKey("", "A/B"))

	out := string(Render(tree, nil, s))
	if got := strings.Count(out, `<div class="nav-children" hidden>`); got != 1 {
		t.Errorf("hidden containers = %d, want 1:\n%s", got, out)
	}

	parsed := ParseState(s.Encode())
	if parsed.Expanded(BranchKey("", "A/B")) || !parsed.Expanded(BranchKey(BranchKey("", "A"), "B")) {
		t.Error("cookie round trip mixed up the two branches")
	}
}

func TestRenderMalformedNodesAsInert(t *testing.T) {
	out := string(Render([]book.NavNode{
		book.Branch{Title: "Empty"},
		book.Leaf{Title: "NoPath"},
	}, nil, nil))

	for _, label := range []string{"Empty", "NoPath"} {
		if !strings.Contains(out, `<span class="nav-inert">`+label+`</span>`) {
			t.Errorf("%s not rendered as inert label:\n%s", label, out)
		}
	}
	if strings.Contains(out, "<button") || strings.Contains(out, "<a ") || strings.Contains(out, "nav-children") {
		t.Errorf("malformed nodes should not be interactive:\n%s", out)
	}
}
