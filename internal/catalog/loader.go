package catalog

import (
	"context"
	"fmt"
	"os"

	"gallery-viewer/internal/gallery"
)

// Kind names where a catalog is loaded from
type Kind string

const (
	KindMarkup   Kind = "markup"
	KindManifest Kind = "manifest"
	KindDir      Kind = "dir"
	KindBucket   Kind = "bucket"
)

// Request describes a catalog to load
type Request struct {
	Kind Kind
	// Path is the markup file, manifest file, image directory or bucket prefix
	Path string
	// MediaPrefix is prepended to directory and bucket sources
	MediaPrefix string
}

// Result is a loaded catalog plus the title found in the source, if any
type Result struct {
	Catalog *gallery.Catalog
	Title   string
}

// Load reads the catalog described by req. The bucket kind needs lister.
func Load(ctx context.Context, req Request, lister ObjectLister) (*Result, error) {
	switch req.Kind {
	case KindMarkup:
		if req.Path == "" {
			return nil, ErrMissingPath
		}
		f, err := os.Open(req.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open markup: %w", err)
		}
		defer f.Close()

		items, err := ParseMarkup(f)
		if err != nil {
			return nil, err
		}
		return &Result{Catalog: gallery.NewCatalog(items)}, nil

	case KindManifest:
		if req.Path == "" {
			return nil, ErrMissingPath
		}
		f, err := os.Open(req.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open manifest: %w", err)
		}
		defer f.Close()

		m, err := ParseManifest(f)
		if err != nil {
			return nil, err
		}
		return &Result{Catalog: gallery.NewCatalog(m.GalleryItems()), Title: m.Title}, nil

	case KindDir:
		if req.Path == "" {
			return nil, ErrMissingPath
		}
		items, err := FromDir(os.DirFS(req.Path), req.MediaPrefix)
		if err != nil {
			return nil, err
		}
		return &Result{Catalog: gallery.NewCatalog(items)}, nil

	case KindBucket:
		items, err := FromBucket(ctx, lister, req.Path, req.MediaPrefix)
		if err != nil {
			return nil, err
		}
		return &Result{Catalog: gallery.NewCatalog(items)}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, req.Kind)
	}
}
