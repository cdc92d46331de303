package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/akyairhashvil/DPT/internal/models"
)

var ErrDuplicateDate = errors.New("date already has a record")

// MemoryStore is an in-memory record store for tests. Records are cloned on
// the way in and out so callers never share memory with the store.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*models.DailyRecord // by id

	// Set to make the corresponding operation fail.
	GetErr    error
	GetAllErr error
	PutErr    error

	Puts []string // record ids in write order
}

func NewMemoryStore(records ...*models.DailyRecord) *MemoryStore {
	s := &MemoryStore{records: make(map[string]*models.DailyRecord)}
	for _, r := range records {
		s.records[r.ID] = r.Clone()
	}
	return s
}

func (s *MemoryStore) GetByDate(ctx context.Context, date string) (*models.DailyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	for _, r := range s.records {
		if r.Date == date {
			return r.Clone(), nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) GetAll(ctx context.Context) ([]*models.DailyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.GetAllErr != nil {
		return nil, s.GetAllErr
	}
	return s.sortedLocked(func(*models.DailyRecord) bool { return true }), nil
}

func (s *MemoryStore) GetInRange(ctx context.Context, start, end string) ([]*models.DailyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.GetAllErr != nil {
		return nil, s.GetAllErr
	}
	return s.sortedLocked(func(r *models.DailyRecord) bool {
		return r.Date >= start && r.Date <= end
	}), nil
}

func (s *MemoryStore) Put(ctx context.Context, record *models.DailyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PutErr != nil {
		return s.PutErr
	}
	for id, r := range s.records {
		if r.Date == record.Date && id != record.ID {
			return ErrDuplicateDate
		}
	}
	s.records[record.ID] = record.Clone()
	s.Puts = append(s.Puts, record.ID)
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

// Record returns the stored record for date, or nil.
func (s *MemoryStore) Record(date string) *models.DailyRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.Date == date {
			return r.Clone()
		}
	}
	return nil
}

func (s *MemoryStore) sortedLocked(keep func(*models.DailyRecord) bool) []*models.DailyRecord {
	out := make([]*models.DailyRecord, 0, len(s.records))
	for _, r := range s.records {
		if keep(r) {
			out = append(out, r.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
