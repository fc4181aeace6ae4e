package catalog

import (
	"fmt"
	"image"
	_ "image/gif"  // register gif decoding
	_ "image/jpeg" // register jpeg decoding
	_ "image/png"  // register png decoding
	"io/fs"
	"path"
	"sort"
	"strings"

	_ "golang.org/x/image/webp" // register webp decoding

	"gallery-viewer/internal/gallery"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// IsImageName reports whether name carries a supported image extension
func IsImageName(name string) bool {
	return imageExtensions[strings.ToLower(path.Ext(name))]
}

// FromDir lists the images below root in lexical path order. Sources are
// urlPrefix joined with the slash-separated path. Dimensions are read from
// the image header; files whose header cannot be decoded are skipped.
func FromDir(fsys fs.FS, urlPrefix string) ([]gallery.Item, error) {
	var paths []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if IsImageName(p) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk image directory: %w", err)
	}
	sort.Strings(paths)

	items := make([]gallery.Item, 0, len(paths))
	for _, p := range paths {
		cfg, ok := decodeConfig(fsys, p)
		if !ok {
			continue
		}
		items = append(items, gallery.Item{
			Source:  joinURL(urlPrefix, p),
			Caption: CaptionFromName(p),
			Width:   cfg.Width,
			Height:  cfg.Height,
		})
	}

	return items, nil
}

func decodeConfig(fsys fs.FS, p string) (image.Config, bool) {
	f, err := fsys.Open(p)
	if err != nil {
		return image.Config{}, false
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return image.Config{}, false
	}
	return cfg, true
}

// CaptionFromName derives a caption from a file name: the base name
// without extension, with separators turned into spaces.
func CaptionFromName(name string) string {
	base := path.Base(name)
	base = strings.TrimSuffix(base, path.Ext(base))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	return strings.Join(strings.Fields(base), " ")
}

func joinURL(prefix, p string) string {
	if prefix == "" {
		return p
	}
	return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(p, "/")
}
