package settings

import (
	"fmt"
	"io"
)

// HeadRenderer writes the domain verification meta tag into a document head.
type HeadRenderer struct {
	store OptionStore
	key   string
}

func NewHeadRenderer(store OptionStore, key string) *HeadRenderer {
	return &HeadRenderer{store: store, key: key}
}

// MetaTag formats the verification meta tag for code.
func MetaTag(code string) string {
	return fmt.Sprintf(`<meta name="facebook-domain-verification" content="%s" />`, EscAttr(code))
}

// Render writes the meta tag for the stored code. Nothing is written when no
// code is configured.
func (h *HeadRenderer) Render(w io.Writer) error {
	code, err := h.store.Get(h.key)
	if err != nil {
		return fmt.Errorf("read verification code: %w", err)
	}
	if code == "" {
		return nil
	}
	_, err = io.WriteString(w, MetaTag(code))
	return err
}
