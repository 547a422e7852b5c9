package site

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"log"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Backdrop is the full-page background image, inlined as a data URI. The zero
// value means no backdrop.
type Backdrop struct {
	mime string
	data string
}

// LoadBackdrop reads the background image once. A missing or non-image file
// is logged and yields the zero Backdrop; it never fails startup.
func LoadBackdrop(path string) Backdrop {
	if path == "" {
		return Backdrop{}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Background image unavailable, rendering without backdrop: %v", err)
		return Backdrop{}
	}

	mt := mimetype.Detect(raw)
	if !strings.HasPrefix(mt.String(), "image/") {
		log.Printf("Background %s is %s, not an image; rendering without backdrop", path, mt.String())
		return Backdrop{}
	}

	log.Printf("Background image loaded: %s (%s, %d bytes)", path, mt.String(), len(raw))
	return Backdrop{
		mime: mt.String(),
		data: base64.StdEncoding.EncodeToString(raw),
	}
}

func (b Backdrop) Present() bool {
	return b.data != ""
}

// CSS returns the style rule applying the image behind a dark gradient.
func (b Backdrop) CSS() template.CSS {
	if !b.Present() {
		return ""
	}
	// mime comes from mimetype and data is base64, so neither can break out
	// of the url() string.
	return template.CSS(fmt.Sprintf(
		`.app{background-image:linear-gradient(rgba(0, 0, 0, 0.8), rgba(0, 0, 0, 0.8)),url("data:%s;base64,%s");}`,
		b.mime, b.data))
}
