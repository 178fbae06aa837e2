package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexHTMLHasHead(t *testing.T) {
	assert.Contains(t, IndexHTML(), "<head>")
}

func TestMustReadMissingPanics(t *testing.T) {
	assert.Panics(t, func() { mustRead("static/missing.html") })
	assert.NotPanics(t, func() { mustRead("static/index.html") })
}

func TestInjectHead(t *testing.T) {
	page := "<html><head><title>x</title></head></html>"
	got := InjectHead(page, `<meta name="a" />`)
	assert.Equal(t, "<html><head>\n<meta name=\"a\" /><title>x</title></head></html>", got)

	assert.Equal(t, page, InjectHead(page, ""))
	assert.Equal(t, "<p>no head</p>", InjectHead("<p>no head</p>", "<meta />"))
	assert.Equal(t, 1, strings.Count(InjectHead("<head><head>", "m"), "m"))
}
