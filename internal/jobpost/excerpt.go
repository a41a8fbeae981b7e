package jobpost

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// ExcerptLength is the rune length of job description excerpts
const ExcerptLength = 160

// PlainText return the visible text of an HTML job description with whitespace collapsed
func PlainText(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.Join(strings.Fields(html), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Excerpt return the first ExcerptLength runes of the description text
func Excerpt(html string) string {
	text := PlainText(html)
	if utf8.RuneCountInString(text) <= ExcerptLength {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:ExcerptLength])) + "..."
}
