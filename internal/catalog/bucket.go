package catalog

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"gallery-viewer/internal/gallery"
	"gallery-viewer/internal/platform/storage"
)

// Object metadata keys consulted for captions
const (
	metaCaption          = "Caption"
	metaOriginalFilename = "Original-Filename"
)

// ObjectLister lists the objects of a bucket
type ObjectLister interface {
	ListObjects(ctx context.Context, prefix string, maxKeys int) ([]storage.ObjectInfo, error)
}

var imageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// IsImageObject reports whether an object is an image, by content type
// first and extension second
func IsImageObject(obj storage.ObjectInfo) bool {
	if obj.ContentType != "" && imageContentTypes[obj.ContentType] {
		return true
	}
	return IsImageName(obj.Key)
}

// FromBucket lists the image objects below prefix ordered by key. Sources
// point at urlPrefix + key so the host can stream them.
func FromBucket(ctx context.Context, lister ObjectLister, prefix, urlPrefix string) ([]gallery.Item, error) {
	if lister == nil {
		return nil, ErrNoStorage
	}

	objects, err := lister.ListObjects(ctx, prefix, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list bucket: %w", err)
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })

	items := make([]gallery.Item, 0, len(objects))
	for _, obj := range objects {
		if strings.HasSuffix(obj.Key, "/") || !IsImageObject(obj) {
			continue
		}
		items = append(items, gallery.Item{
			Source:  joinURL(urlPrefix, obj.Key),
			Caption: objectCaption(obj),
		})
	}

	return items, nil
}

func objectCaption(obj storage.ObjectInfo) string {
	if caption := metadata(obj.UserMetadata, metaCaption); caption != "" {
		return caption
	}
	if name := metadata(obj.UserMetadata, metaOriginalFilename); name != "" {
		return CaptionFromName(name)
	}
	return CaptionFromName(path.Base(obj.Key))
}

// metadata looks a key up case-insensitively, with or without the
// X-Amz-Meta- prefix the listing API may keep
func metadata(meta map[string]string, key string) string {
	for k, v := range meta {
		k = strings.TrimPrefix(strings.ToLower(k), "x-amz-meta-")
		if k == strings.ToLower(key) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
