package web

import (
	"embed"
	"strings"
)

//go:embed static/index.html
var staticFS embed.FS

var indexHTML = mustRead("static/index.html")

func mustRead(name string) string {
	b, err := staticFS.ReadFile(name)
	if err != nil {
		panic("web: " + err.Error())
	}
	return string(b)
}

// IndexHTML returns the embedded site index page.
func IndexHTML() string {
	return indexHTML
}

// InjectHead inserts markup right after the first <head> tag of page. Pages
// without a <head> tag are returned unchanged.
func InjectHead(page, markup string) string {
	if markup == "" {
		return page
	}
	i := strings.Index(page, "<head>")
	if i < 0 {
		return page
	}
	i += len("<head>")
	return page[:i] + "\n" + markup + page[i:]
}
