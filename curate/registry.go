package curate

import (
	"sync"

	"ewintr.nl/hobbyplan/model"
)

// UsedVideoRegistry tracks the videos already assigned within one plan run.
// It is safe for concurrent use.
type UsedVideoRegistry struct {
	mu  sync.Mutex
	ids map[model.YoutubeVideoID]struct{}
}

func NewRegistry() *UsedVideoRegistry {
	return &UsedVideoRegistry{
		ids: make(map[model.YoutubeVideoID]struct{}),
	}
}

// Claim adds id and reports whether it was still free. Only one of several
// concurrent callers claiming the same id gets true.
func (r *UsedVideoRegistry) Claim(id model.YoutubeVideoID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, used := r.ids[id]; used {
		return false
	}
	r.ids[id] = struct{}{}
	return true
}

func (r *UsedVideoRegistry) Contains(id model.YoutubeVideoID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, used := r.ids[id]
	return used
}

func (r *UsedVideoRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.ids)
}
