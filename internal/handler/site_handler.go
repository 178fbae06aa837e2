package handler

import (
	"log"
	"net/http"
	"strings"

	"fbverify/internal/settings"
	"fbverify/web"

	"github.com/gin-gonic/gin"
)

// SiteHandler serves public pages with the verification meta tag in their head.
type SiteHandler struct {
	head  *settings.HeadRenderer
	index string
}

func NewSiteHandler(head *settings.HeadRenderer, index string) *SiteHandler {
	return &SiteHandler{head: head, index: index}
}

// Index handles GET /.
func (h *SiteHandler) Index(c *gin.Context) {
	page := web.InjectHead(h.index, h.headMarkup())
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// Head handles GET /head and returns only the head fragment.
func (h *SiteHandler) Head(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(h.headMarkup()))
}

// headMarkup renders the head fragment. A failed store read leaves the page
// without the tag rather than failing the request.
func (h *SiteHandler) headMarkup() string {
	var b strings.Builder
	if err := h.head.Render(&b); err != nil {
		log.Printf("[settings] head render: %v", err)
		return ""
	}
	return b.String()
}
