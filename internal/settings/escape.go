package settings

import "strings"

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscAttr escapes s for use inside a double-quoted HTML attribute.
func EscAttr(s string) string {
	return htmlReplacer.Replace(s)
}

// EscHTML escapes s for use as an HTML text node.
func EscHTML(s string) string {
	return htmlReplacer.Replace(s)
}
