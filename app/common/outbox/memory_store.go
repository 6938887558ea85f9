package outbox

import (
	"context"
	"sort"
	"sync"
	"time"

	outboxmodel "KissaHub/app/dal/outbox"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// MemoryStore keeps outbox rows in process, for local mode and tests. The
// session argument is ignored.
type MemoryStore struct {
	mu   sync.Mutex
	rows map[string]*outboxmodel.OutboxEvents
	seq  []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[string]*outboxmodel.OutboxEvents)}
}

func (s *MemoryStore) InsertWithSession(_ context.Context, _ sqlx.Session, data *outboxmodel.OutboxEvents) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row, ok := s.rows[data.Id]; ok {
		row.Payload = data.Payload
		row.RetryCount = 0
		row.LastError.Valid = false
		row.PublishedAt.Valid = false
		return nil
	}
	cp := *data
	cp.CreatedAt = time.Now()
	s.rows[cp.Id] = &cp
	s.seq = append(s.seq, cp.Id)
	return nil
}

func (s *MemoryStore) FindPending(_ context.Context, maxRetries, limit int64) ([]*outboxmodel.OutboxEvents, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*outboxmodel.OutboxEvents
	for _, id := range s.seq {
		row := s.rows[id]
		if row.PublishedAt.Valid || row.RetryCount >= maxRetries {
			continue
		}
		cp := *row
		out = append(out, &cp)
		if int64(len(out)) == limit {
			break
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) MarkPublished(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row, ok := s.rows[id]; ok && !row.PublishedAt.Valid {
		row.PublishedAt.Time, row.PublishedAt.Valid = time.Now(), true
		row.LastError.Valid = false
	}
	return nil
}

func (s *MemoryStore) MarkFailed(_ context.Context, id, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row, ok := s.rows[id]; ok {
		row.RetryCount++
		row.LastError.String, row.LastError.Valid = reason, true
	}
	return nil
}

// Row returns a copy of the staged row with id.
func (s *MemoryStore) Row(id string) (outboxmodel.OutboxEvents, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return outboxmodel.OutboxEvents{}, false
	}
	return *row, true
}

// Rows returns copies of every staged row in staging order.
func (s *MemoryStore) Rows() []outboxmodel.OutboxEvents {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]outboxmodel.OutboxEvents, 0, len(s.seq))
	for _, id := range s.seq {
		out = append(out, *s.rows[id])
	}
	return out
}
