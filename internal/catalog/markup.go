// Package catalog loads gallery items from the places a gallery can be
// described: card markup, a TOML manifest, a directory of images or an
// object storage bucket.
package catalog

import (
	"fmt"
	"io"
	"strings"

	nethtml "golang.org/x/net/html"

	"gallery-viewer/internal/gallery"
)

const (
	cardClass   = "card"
	captionAttr = "data-caption"
	sourceAttr  = "data-source"
)

// ParseMarkup extracts items from every <a class="card"> element in document
// order. data-source, or the href when it is absent, is the image location
// and data-caption the optional caption. Cards without a source are skipped.
func ParseMarkup(r io.Reader) ([]gallery.Item, error) {
	doc, err := nethtml.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMarkup, err)
	}

	var items []gallery.Item
	var walk func(n *nethtml.Node)
	walk = func(n *nethtml.Node) {
		if n.Type == nethtml.ElementNode && n.Data == "a" && hasClass(n, cardClass) {
			source := attr(n, sourceAttr)
			if source == "" {
				source = attr(n, "href")
			}
			if source != "" {
				items = append(items, gallery.Item{
					Source:  source,
					Caption: attr(n, captionAttr),
				})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return items, nil
}

func attr(n *nethtml.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

func hasClass(n *nethtml.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
