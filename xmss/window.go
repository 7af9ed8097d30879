package xmss

import "github.com/geanlabs/leansig/core/types"

// preparationWindow tracks the half-open epoch range [start, end) whose
// authentication paths are cached and signable, plus which of those epochs
// have already consumed their one-time key. The window only moves forward:
// push extends end by one and, once the window is at capacity, evicts the
// path behind start. Evicted state is gone; un-advancing is impossible.
type preparationWindow struct {
	start    uint64
	end      uint64
	capacity int
	paths    map[uint64][]types.Hash
	consumed map[uint64]struct{}
}

// newPreparationWindow returns an empty window positioned at start.
func newPreparationWindow(start uint64, capacity int) *preparationWindow {
	return &preparationWindow{
		start:    start,
		end:      start,
		capacity: capacity,
		paths:    make(map[uint64][]types.Hash),
		consumed: make(map[uint64]struct{}),
	}
}

// push caches the authentication path for the epoch at end and slides end
// forward. If the window would exceed its capacity, the oldest epoch's path
// and consumed flag are discarded and start slides forward with it.
func (w *preparationWindow) push(path []types.Hash) {
	w.paths[w.end] = path
	w.end++
	if w.end-w.start > uint64(w.capacity) {
		delete(w.paths, w.start)
		delete(w.consumed, w.start)
		w.start++
	}
}

// contains reports whether epoch is inside the prepared range.
func (w *preparationWindow) contains(epoch uint64) bool {
	return epoch >= w.start && epoch < w.end
}

// path returns the cached authentication path for a contained epoch.
func (w *preparationWindow) path(epoch uint64) []types.Hash {
	return w.paths[epoch]
}

// markConsumed records that epoch's one-time key has signed.
func (w *preparationWindow) markConsumed(epoch uint64) {
	w.consumed[epoch] = struct{}{}
}

// isConsumed reports whether epoch's one-time key has already signed.
func (w *preparationWindow) isConsumed(epoch uint64) bool {
	_, ok := w.consumed[epoch]
	return ok
}
