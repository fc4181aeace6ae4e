package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"gallery-viewer/internal/gallery"
)

// Manifest is the TOML description of a gallery:
//
//	title = "Fan art"
//
//	[[item]]
//	source = "/img/01.jpg"
//	caption = "First"
type Manifest struct {
	Title string         `toml:"title"`
	Items []ManifestItem `toml:"item"`
}

// ManifestItem is one [[item]] table
type ManifestItem struct {
	Source  string `toml:"source"`
	Caption string `toml:"caption"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
}

// ParseManifest decodes a TOML manifest. Every item must name a source.
func ParseManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	for i, item := range m.Items {
		if strings.TrimSpace(item.Source) == "" {
			return nil, fmt.Errorf("%w: item %d has no source", ErrInvalidManifest, i+1)
		}
		if item.Width < 0 || item.Height < 0 {
			return nil, fmt.Errorf("%w: item %d has negative dimensions", ErrInvalidManifest, i+1)
		}
	}

	return &m, nil
}

// GalleryItems converts the manifest entries into gallery items
func (m *Manifest) GalleryItems() []gallery.Item {
	items := make([]gallery.Item, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, gallery.Item{
			Source:  strings.TrimSpace(it.Source),
			Caption: it.Caption,
			Width:   it.Width,
			Height:  it.Height,
		})
	}
	return items
}
