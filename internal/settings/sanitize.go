package settings

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// SanitizeFunc cleans a submitted option value before it is stored.
type SanitizeFunc func(string) string

var (
	whitespaceRun = regexp.MustCompile(`[\r\n\t ]+`)
	percentOctet  = regexp.MustCompile(`%[a-fA-F0-9]{2}`)
)

// SanitizeTextField reduces s to a single line of plain text. Script and style
// elements are dropped with their content, other tags are stripped, whitespace
// collapses to single spaces and percent-encoded octets are removed. Character
// references are kept as written.
func SanitizeTextField(s string) string {
	if !utf8.ValidString(s) {
		return ""
	}
	out := s
	// Stripping can join fragments into a new tag, so repeat until stable.
	// Every pass that changes the string removes at least one tag.
	for strings.Contains(out, "<") {
		next := stripTags(out)
		if next == out {
			break
		}
		out = next
	}
	out = whitespaceRun.ReplaceAllString(out, " ")
	if percentOctet.MatchString(out) {
		for percentOctet.MatchString(out) {
			out = percentOctet.ReplaceAllString(out, "")
		}
		out = whitespaceRun.ReplaceAllString(out, " ")
	}
	return strings.TrimSpace(out)
}

// stripTags removes every tag, comment and doctype from s, along with the
// content of script and style elements. Text is copied byte for byte.
func stripTags(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	skip := ""
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			if skip == "" {
				b.Write(z.Raw())
			}
		case html.StartTagToken:
			name, _ := z.TagName()
			if tag := string(name); tag == "script" || tag == "style" {
				skip = tag
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) == skip {
				skip = ""
			}
		}
	}
}
