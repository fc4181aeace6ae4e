package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-viewer/internal/gallery"
)

func TestParseManifest(t *testing.T) {
	t.Run("valid manifest", func(t *testing.T) {
		doc := `
title = "Fan art"

[[item]]
source = "/img/01.jpg"
caption = "First"
width = 800
height = 600

[[item]]
source = " /img/02.jpg "
`
		m, err := ParseManifest(strings.NewReader(doc))
		require.NoError(t, err)
		assert.Equal(t, "Fan art", m.Title)
		require.Len(t, m.Items, 2)

		assert.Equal(t, []gallery.Item{
			{Source: "/img/01.jpg", Caption: "First", Width: 800, Height: 600},
			{Source: "/img/02.jpg"},
		}, m.GalleryItems())
	})

	t.Run("empty manifest has no items", func(t *testing.T) {
		m, err := ParseManifest(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, m.GalleryItems())
	})

	errorCases := []struct {
		name string
		doc  string
	}{
		{"missing source", "[[item]]\ncaption = \"x\"\n"},
		{"blank source", "[[item]]\nsource = \"  \"\n"},
		{"negative width", "[[item]]\nsource = \"/a.jpg\"\nwidth = -1\n"},
		{"unknown field", "[[item]]\nsource = \"/a.jpg\"\nalt = \"nope\"\n"},
		{"malformed toml", "title = \n"},
	}

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidManifest)
		})
	}
}
