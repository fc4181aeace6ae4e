package catalog

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-viewer/internal/testutils"
)

func TestFromDir(t *testing.T) {
	fsys := fstest.MapFS{
		"b_second.png":       {Data: testutils.CreateTestPNG(4, 3)},
		"a-first.PNG":        {Data: testutils.CreateTestPNG(2, 2)},
		"nested/c_third.png": {Data: testutils.CreateTestPNG(1, 5)},
		"notes.txt":          {Data: []byte("not an image")},
		"broken.jpg":         {Data: []byte("garbage")},
		".cache/hidden.png":  {Data: testutils.CreateTestPNG(1, 1)},
	}

	items, err := FromDir(fsys, "/media/")
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "/media/a-first.PNG", items[0].Source)
	assert.Equal(t, "a first", items[0].Caption)
	assert.Equal(t, 2, items[0].Width)
	assert.Equal(t, 2, items[0].Height)

	assert.Equal(t, "/media/b_second.png", items[1].Source)
	assert.Equal(t, "b second", items[1].Caption)
	assert.Equal(t, 4, items[1].Width)
	assert.Equal(t, 3, items[1].Height)

	assert.Equal(t, "/media/nested/c_third.png", items[2].Source)
	assert.Equal(t, 5, items[2].Height)
}

func TestFromDir_Empty(t *testing.T) {
	items, err := FromDir(fstest.MapFS{}, "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestIsImageName(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"photo.webp", true},
		{"anim.gif", true},
		{"doc.pdf", false},
		{"noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsImageName(tt.name))
		})
	}
}

func TestCaptionFromName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"sunset_over-sea.jpg", "sunset over sea"},
		{"dir/nested/cat.png", "cat"},
		{"__odd__name__.gif", "odd name"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CaptionFromName(tt.name))
		})
	}
}
