package book

import (
	"fmt"
	"html/template"
)

// ProblemKind classifies a Check finding.
type ProblemKind string

const (
	ProblemMissingAnchor   ProblemKind = "missing-anchor"
	ProblemOutlineOrder    ProblemKind = "outline-order"
	ProblemDanglingLink    ProblemKind = "dangling-link"
	ProblemInertNav        ProblemKind = "inert-nav"
	ProblemUnlinkedChapter ProblemKind = "unlinked-chapter"
	ProblemShadowedChapter ProblemKind = "shadowed-chapter"
)

// Problem is a soft authoring issue. None of them prevent the book from
// being served.
type Problem struct {
	Kind    ProblemKind
	Subject string // Chapter path or navigation label.
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("[%s] %s: %s", p.Kind, p.Subject, p.Message)
}

// AnchorFunc lists the element ids of rendered content in document order.
type AnchorFunc func(content template.HTML) []string

// Check inspects the store for authoring mistakes. Navigation leaves whose
// path is listed in routes (for example the chat page) are not reported as
// dangling; chapters at one of those paths are reported as shadowed.
func Check(s *Store, anchors AnchorFunc, routes ...string) []Problem {
	var problems []Problem

	known := make(map[string]bool, len(routes))
	for _, r := range routes {
		known[r] = true
	}

	for _, c := range s.chapters {
		if len(c.Outline) == 0 || anchors == nil {
			continue
		}
		position := make(map[string]int)
		for i, id := range anchors(c.Content) {
			if _, seen := position[id]; !seen {
				position[id] = i
			}
		}
		last := -1
		for _, entry := range c.Outline {
			pos, ok := position[entry.ID]
			if !ok {
				problems = append(problems, Problem{
					Kind:    ProblemMissingAnchor,
					Subject: c.Path,
					Message: fmt.Sprintf("outline entry %q has no matching anchor", entry.ID),
				})
				continue
			}
			if pos < last {
				problems = append(problems, Problem{
					Kind:    ProblemOutlineOrder,
					Subject: c.Path,
					Message: fmt.Sprintf("outline entry %q appears earlier in the content than the entry before it", entry.ID),
				})
			}
			last = pos
		}
	}

	linked := make(map[string]bool)
	walkNav(s.nav, func(n NavNode) {
		switch n := n.(type) {
		case Leaf:
			linked[n.Path] = true
			if known[n.Path] {
				return
			}
			if _, err := s.Resolve(n.Path); err != nil {
				problems = append(problems, Problem{
					Kind:    ProblemDanglingLink,
					Subject: n.Title,
					Message: fmt.Sprintf("links to %q, which is not a chapter", n.Path),
				})
			}
		case Inert:
			problems = append(problems, Problem{
				Kind:    ProblemInertNav,
				Subject: n.Title,
				Message: "entry needs either a path or child items, not both or neither",
			})
		}
	})

	for _, c := range s.chapters {
		if known[c.Path] {
			problems = append(problems, Problem{
				Kind:    ProblemShadowedChapter,
				Subject: c.Path,
				Message: "chapter path is taken by a built-in page, so the chapter is never shown",
			})
		}
		if !linked[c.Path] {
			problems = append(problems, Problem{
				Kind:    ProblemUnlinkedChapter,
				Subject: c.Path,
				Message: "chapter is not reachable from the navigation tree",
			})
		}
	}

	return problems
}

func walkNav(nodes []NavNode, fn func(NavNode)) {
	for _, n := range nodes {
		fn(n)
		if b, ok := n.(Branch); ok {
			walkNav(b.Children, fn)
		}
	}
}
