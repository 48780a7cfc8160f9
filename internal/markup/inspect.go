package markup

import (
	"html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Anchors returns the id attribute of every element in content, in
// document order. Unparseable content yields no anchors.
func Anchors(content template.HTML) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(content)))
	if err != nil {
		return nil
	}
	var ids []string
	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		if id, ok := s.Attr("id"); ok && id != "" {
			ids = append(ids, id)
		}
	})
	return ids
}

// PlainText strips markup from content and collapses whitespace.
func PlainText(content template.HTML) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(content)))
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
