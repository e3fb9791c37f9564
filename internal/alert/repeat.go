package alert

import (
	"fmt"
	"sync"
)

type RepeatPolicy string

const (
	RepeatEveryTick      RepeatPolicy = "every_tick"
	RepeatOnceUntilReset RepeatPolicy = "once_until_reset"
)

func ParseRepeatPolicy(s string) (RepeatPolicy, error) {
	switch p := RepeatPolicy(s); p {
	case "":
		return RepeatEveryTick, nil
	case RepeatEveryTick, RepeatOnceUntilReset:
		return p, nil
	default:
		return "", fmt.Errorf("unknown repeat policy %q", s)
	}
}

// firedSet remembers which subscriptions already notified while their
// condition keeps holding. Lives in memory only.
type firedSet struct {
	mu    sync.Mutex
	fired map[int64]struct{}
}

func newFiredSet() *firedSet {
	return &firedSet{fired: make(map[int64]struct{})}
}

// mark returns false if id was already marked.
func (f *firedSet) mark(id int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.fired[id]; ok {
		return false
	}
	f.fired[id] = struct{}{}
	return true
}

func (f *firedSet) reset(id int64) {
	f.mu.Lock()
	delete(f.fired, id)
	f.mu.Unlock()
}

// retain drops every id that is not in keep.
func (f *firedSet) retain(keep map[int64]struct{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id := range f.fired {
		if _, ok := keep[id]; !ok {
			delete(f.fired, id)
		}
	}
}

func (f *firedSet) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.fired)
}
