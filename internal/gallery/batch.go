package gallery

const (
	DefaultBatchSize    = 12
	DefaultRevealMargin = 300
)

// LoadMoreState describes the "load more" control
type LoadMoreState struct {
	Visible bool `json:"visible"`
	Enabled bool `json:"enabled"`
}

// BatchReveal discloses items in fixed-size batches, either on explicit
// request or when the trigger sentinel approaches the viewport. The
// navigator walks the full sequence and reveals items on demand.
type BatchReveal struct {
	visible   visibility
	shown     int
	batchSize int
	margin    int
}

// NewBatchReveal creates a batch strategy with nothing shown yet
func NewBatchReveal(total, batchSize, margin int) *BatchReveal {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if margin < 0 {
		margin = DefaultRevealMargin
	}
	return &BatchReveal{
		visible:   newVisibility(total),
		batchSize: batchSize,
		margin:    margin,
	}
}

func (b *BatchReveal) Mode() Mode { return ModeBatch }

func (b *BatchReveal) Visible(i int) bool { return b.visible.has(i) }

func (b *BatchReveal) Active() []int { return identity(len(b.visible)) }

// Prepare makes sure the item about to be opened is revealed
func (b *BatchReveal) Prepare(i int) {
	b.EnsureRevealed(i)
}

// Shown returns how many items are revealed
func (b *BatchReveal) Shown() int { return b.shown }

// Total returns the number of items managed by the strategy
func (b *BatchReveal) Total() int { return len(b.visible) }

// BatchSize returns the number of items revealed per batch
func (b *BatchReveal) BatchSize() int { return b.batchSize }

// Margin returns the look-ahead distance of the reveal trigger
func (b *BatchReveal) Margin() int { return b.margin }

// Done reports whether every item has been revealed
func (b *BatchReveal) Done() bool { return b.shown >= len(b.visible) }

// RevealBatch reveals the next batch, clamped to the total.
// It reports whether anything changed.
func (b *BatchReveal) RevealBatch() bool {
	return b.RevealTo(b.shown + b.batchSize)
}

// RevealTo reveals items until n are shown. Shown never decreases.
func (b *BatchReveal) RevealTo(n int) bool {
	if n > len(b.visible) {
		n = len(b.visible)
	}
	if n <= b.shown {
		return false
	}
	for i := b.shown; i < n; i++ {
		b.visible[i] = true
	}
	b.shown = n
	return true
}

// EnsureRevealed reveals whole batches until item i is shown
func (b *BatchReveal) EnsureRevealed(i int) bool {
	changed := false
	for i+1 > b.shown && !b.Done() {
		if !b.RevealBatch() {
			break
		}
		changed = true
	}
	return changed
}

// Observe handles an intersection signal: distance is how far the trigger
// sentinel is from the viewport edge. A batch is revealed once the trigger
// is within the look-ahead margin.
func (b *BatchReveal) Observe(distance int) bool {
	if distance > b.margin || b.Done() {
		return false
	}
	return b.RevealBatch()
}

// LoadMore returns the state of the load-more control
func (b *BatchReveal) LoadMore() LoadMoreState {
	remaining := !b.Done()
	return LoadMoreState{
		Visible: remaining,
		Enabled: remaining,
	}
}
