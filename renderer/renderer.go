// Package renderer turns cryptofolio view models into markdown documents.
package renderer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	md "github.com/nao1215/markdown"
)

// na is displayed in place of a missing value.
const na = "N/A"

// blank appends an empty line, separating two blocks.
func blank(doc *md.Markdown) *md.Markdown { return doc.PlainText("") }

// fenced appends a fenced code block.
func fenced(doc *md.Markdown, lang, content string) *md.Markdown {
	return doc.PlainText("```" + lang + "\n" + strings.TrimRight(content, "\n") + "\n```")
}

// capitalize upper cases the first letter of s, "bitcoin" becomes "Bitcoin".
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
