package testutils

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"gallery-viewer/internal/gallery"
)

// CreateTestPNG returns an encoded PNG of the given size
func CreateTestPNG(width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(fmt.Sprintf("failed to encode test png: %v", err))
	}
	return buf.Bytes()
}

// CreateTestItems returns n items with predictable sources and captions
func CreateTestItems(n int) []gallery.Item {
	items := make([]gallery.Item, n)
	for i := range items {
		items[i] = gallery.Item{
			Source:  fmt.Sprintf("/media/%02d.jpg", i),
			Caption: fmt.Sprintf("Photo %d", i),
		}
	}
	return items
}

// CreateTestCatalog wraps CreateTestItems in a catalog
func CreateTestCatalog(n int) *gallery.Catalog {
	return gallery.NewCatalog(CreateTestItems(n))
}

// CardMarkup renders items as the card markup the markup source consumes
func CardMarkup(items []gallery.Item) string {
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html><html><body><main class=\"grid\">")
	for _, it := range items {
		fmt.Fprintf(&buf, "<a class=\"card\" href=\"%s\" data-caption=\"%s\"><img src=\"%s\"></a>", it.Source, it.Caption, it.Source)
	}
	buf.WriteString("</main></body></html>")
	return buf.String()
}
