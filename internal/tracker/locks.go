package tracker

import (
	"sort"
	"sync"
)

// dateLocks serializes work per calendar day.
type dateLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func newDateLocks() *dateLocks {
	return &dateLocks{m: make(map[string]*sync.Mutex)}
}

func (l *dateLocks) get(date string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	mu, ok := l.m[date]
	if !ok {
		mu = &sync.Mutex{}
		l.m[date] = mu
	}
	return mu
}

// lock acquires every distinct date in ascending order and returns the
// matching unlock.
func (l *dateLocks) lock(dates ...string) func() {
	uniq := make([]string, 0, len(dates))
	seen := make(map[string]bool, len(dates))
	for _, d := range dates {
		if d != "" && !seen[d] {
			seen[d] = true
			uniq = append(uniq, d)
		}
	}
	sort.Strings(uniq)
	held := make([]*sync.Mutex, len(uniq))
	for i, d := range uniq {
		held[i] = l.get(d)
		held[i].Lock()
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
