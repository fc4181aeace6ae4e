package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-viewer/internal/catalog"
	"gallery-viewer/internal/testutils"
)

func TestGallery_PagedRender(t *testing.T) {
	h := newTestHandler(t, 10, pagedOptions(4))

	rec := doRequest(t, h, http.MethodGet, "/gallery", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "<title>Test Gallery</title>")
	assert.Contains(t, body, `data-source="/media/03.jpg" data-caption="Photo 3">`)
	assert.Contains(t, body, `data-source="/media/04.jpg" data-caption="Photo 4" hidden>`)
	assert.Contains(t, body, `href="/gallery?open=%2Fmedia%2F00.jpg&amp;page=1"`)
	assert.Contains(t, body, `class="modal" aria-hidden="true"`)
	assert.Contains(t, body, `<body class="mode-paged">`)

	// Pager: page 1 current, Prev disabled, links for 2 and 3
	assert.Contains(t, body, `<span class="current" aria-current="page">1</span>`)
	assert.Contains(t, body, `<span class="disabled" aria-disabled="true">Prev</span>`)
	assert.Contains(t, body, `<a href="/gallery?page=2">2</a>`)
	assert.Contains(t, body, `<a href="/gallery?page=2" rel="next">Next</a>`)
	assert.NotContains(t, body, "Load more")
}

func TestGallery_RenderedPageIsMarkupSource(t *testing.T) {
	h := newTestHandler(t, 10, pagedOptions(4))

	rec := doRequest(t, h, http.MethodGet, "/gallery?page=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	items, err := catalog.ParseMarkup(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, testutils.CreateTestItems(10), items)
}

func TestGallery_OpenModal(t *testing.T) {
	h := newTestHandler(t, 10, pagedOptions(4))

	rec := doRequest(t, h, http.MethodGet, "/gallery?page=2&open=/media/05.jpg", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `<body class="mode-paged scroll-locked">`)
	assert.Contains(t, body, `class="modal is-open" aria-hidden="false"`)
	assert.Contains(t, body, `<img src="/media/05.jpg" alt="Photo 5">`)
	assert.Contains(t, body, "<figcaption>Photo 5</figcaption>")
	assert.Contains(t, body, `class="card is-current"`)

	// Prev and next stay on the page; paged mode never scrolls
	assert.Contains(t, body, `class="modal-prev" href="/gallery?open=%2Fmedia%2F04.jpg&amp;page=2"`)
	assert.Contains(t, body, `class="modal-next" href="/gallery?open=%2Fmedia%2F06.jpg&amp;page=2"`)
	assert.Contains(t, body, `class="modal-close" href="/gallery?page=2#card-5"`)

	// Changing page from an open modal lands closed
	assert.Contains(t, body, `<a href="/gallery?page=3" rel="next">Next</a>`)
}

func TestGallery_SingleItemPageDisablesNavigation(t *testing.T) {
	h := newTestHandler(t, 5, pagedOptions(4))

	rec := doRequest(t, h, http.MethodGet, "/gallery?page=2&open=/media/04.jpg", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `class="modal is-open"`)
	assert.NotContains(t, body, "modal-prev")
	assert.NotContains(t, body, "modal-next")
	assert.Contains(t, body, `<span class="disabled" aria-disabled="true">&larr;</span>`)
}

func TestGallery_HiddenOpenSourceRendersClosed(t *testing.T) {
	h := newTestHandler(t, 10, pagedOptions(4))

	rec := doRequest(t, h, http.MethodGet, "/gallery?page=1&open=/media/09.jpg", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `class="modal" aria-hidden="true"`)
}

func TestGallery_PageRewrite(t *testing.T) {
	h := newTestHandler(t, 10, pagedOptions(4))

	tests := []struct {
		name     string
		target   string
		location string
	}{
		{"above range", "/gallery?page=99&theme=dark", "/gallery?page=3&theme=dark"},
		{"below range", "/gallery?page=0", "/gallery?page=1"},
		{"garbage", "/gallery?page=abc", "/gallery?page=1"},
		{"negative", "/gallery?page=-3&open=%2Fmedia%2F01.jpg", "/gallery?open=%2Fmedia%2F01.jpg&page=1"},
		{"padded", "/gallery?page=02", "/gallery?page=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodGet, tt.target, nil)
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
		})
	}

	rec := doRequest(t, h, http.MethodGet, "/gallery?page=3", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGallery_BatchRender(t *testing.T) {
	h := newTestHandler(t, 10, batchOptions(4))

	t.Run("closed", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/gallery", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, `data-source="/media/03.jpg" data-caption="Photo 3">`)
		assert.Contains(t, body, `data-source="/media/04.jpg" data-caption="Photo 4" hidden>`)
		assert.Contains(t, body, `<a href="/gallery?shown=8">Load more</a>`)
		assert.NotContains(t, body, `class="pager"`)
	})

	t.Run("stepping past the revealed range reveals and scrolls", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/gallery?shown=4&open=/media/03.jpg", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, `class="modal-next" href="/gallery?open=%2Fmedia%2F04.jpg&amp;shown=8#card-4"`)
		assert.Contains(t, body, `class="modal-prev" href="/gallery?open=%2Fmedia%2F02.jpg&amp;shown=4#card-2"`)
	})

	t.Run("everything shown hides load more", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/gallery?shown=10", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "Load more")
	})
}
