// Package gallery implements the gallery viewer: an ordered item catalog,
// the disclosure strategies that decide which thumbnails are visible, the
// modal navigator and the input adapters that drive it.
package gallery

// Item represents one image entry of the gallery
type Item struct {
	Source  string `json:"source"`
	Caption string `json:"caption,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}

// Alt returns the alternative text shown for the full-size image
func (i Item) Alt() string {
	return i.Caption
}

// Catalog is the immutable ordered sequence of gallery items.
// An item's identity is its position in the catalog.
type Catalog struct {
	items    []Item
	bySource map[string]int
}

// NewCatalog builds a catalog from items. The slice is copied.
func NewCatalog(items []Item) *Catalog {
	c := &Catalog{
		items:    make([]Item, len(items)),
		bySource: make(map[string]int, len(items)),
	}
	copy(c.items, items)

	for i, item := range c.items {
		// first occurrence wins
		if _, exists := c.bySource[item.Source]; !exists {
			c.bySource[item.Source] = i
		}
	}

	return c
}

// Len returns the number of items in the catalog
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// ListAll returns a copy of every item in catalog order
func (c *Catalog) ListAll() []Item {
	if c == nil {
		return nil
	}
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// At returns the item stored at position i
func (c *Catalog) At(i int) (Item, bool) {
	if c == nil || i < 0 || i >= len(c.items) {
		return Item{}, false
	}
	return c.items[i], true
}

// IndexOfBySource returns the catalog position of the item with the given source
func (c *Catalog) IndexOfBySource(source string) (int, bool) {
	if c == nil {
		return -1, false
	}
	i, ok := c.bySource[source]
	if !ok {
		return -1, false
	}
	return i, true
}
