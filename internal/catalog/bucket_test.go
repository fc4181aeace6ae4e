package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-viewer/internal/platform/storage"
)

type fakeLister struct {
	objects []storage.ObjectInfo
	err     error
	prefix  string
}

func (f *fakeLister) ListObjects(_ context.Context, prefix string, _ int) ([]storage.ObjectInfo, error) {
	f.prefix = prefix
	return f.objects, f.err
}

func TestFromBucket(t *testing.T) {
	lister := &fakeLister{objects: []storage.ObjectInfo{
		{Key: "gallery/c.bin", ContentType: "image/png"},
		{Key: "gallery/a.jpg", UserMetadata: map[string]string{"X-Amz-Meta-Caption": "Alpha"}},
		{Key: "gallery/", ContentType: "application/x-directory"},
		{Key: "gallery/readme.txt", ContentType: "text/plain"},
		{Key: "gallery/b_two.webp", UserMetadata: map[string]string{"original-filename": "beach_day.webp"}},
	}}

	items, err := FromBucket(context.Background(), lister, "gallery/", "/media")
	require.NoError(t, err)
	assert.Equal(t, "gallery/", lister.prefix)

	require.Len(t, items, 3)
	assert.Equal(t, "/media/gallery/a.jpg", items[0].Source)
	assert.Equal(t, "Alpha", items[0].Caption)
	assert.Equal(t, "/media/gallery/b_two.webp", items[1].Source)
	assert.Equal(t, "beach day", items[1].Caption)
	assert.Equal(t, "/media/gallery/c.bin", items[2].Source)
	assert.Equal(t, "c", items[2].Caption)
}

func TestFromBucket_Errors(t *testing.T) {
	_, err := FromBucket(context.Background(), nil, "", "")
	assert.ErrorIs(t, err, ErrNoStorage)

	listErr := errors.New("connection refused")
	_, err = FromBucket(context.Background(), &fakeLister{err: listErr}, "", "")
	assert.ErrorIs(t, err, listErr)
}

func TestIsImageObject(t *testing.T) {
	tests := []struct {
		name     string
		obj      storage.ObjectInfo
		expected bool
	}{
		{"content type", storage.ObjectInfo{Key: "x", ContentType: "image/webp"}, true},
		{"extension fallback", storage.ObjectInfo{Key: "x.jpg", ContentType: "binary/octet-stream"}, true},
		{"neither", storage.ObjectInfo{Key: "x.txt", ContentType: "text/plain"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsImageObject(tt.obj))
		})
	}
}
