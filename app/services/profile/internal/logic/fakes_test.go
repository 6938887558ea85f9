package logic

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"KissaHub/app/common/bus"
	model "KissaHub/app/dal/profile"
	"KissaHub/app/services/profile/internal/svc"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type profileState struct {
	profiles  map[int64]model.UserProfiles
	stats     map[int64]model.UserStatistics
	processed map[string]string
}

func (s profileState) clone() profileState {
	out := profileState{
		profiles:  make(map[int64]model.UserProfiles, len(s.profiles)),
		stats:     make(map[int64]model.UserStatistics, len(s.stats)),
		processed: make(map[string]string, len(s.processed)),
	}
	for k, v := range s.profiles {
		out.profiles[k] = v
	}
	for k, v := range s.stats {
		out.stats[k] = v
	}
	for k, v := range s.processed {
		out.processed[k] = v
	}
	return out
}

type fakeProfileDB struct {
	mu       sync.Mutex
	state    profileState
	failIncr error
	evicted  []int64
}

func newFakeProfileDB() *fakeProfileDB {
	return &fakeProfileDB{state: profileState{}.clone()}
}

func (f *fakeProfileDB) statsOf(userId int64) (model.UserStatistics, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.state.stats[userId]
	return s, ok
}

type fakeStatistics struct{ *fakeProfileDB }

func (f fakeStatistics) Insert(_ context.Context, data *model.UserStatistics) (sql.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.stats[data.UserId] = *data
	return nil, nil
}

func (f fakeStatistics) FindOne(_ context.Context, userId int64) (*model.UserStatistics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.state.stats[userId]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &s, nil
}

func (f fakeStatistics) Lookup(ctx context.Context, userId int64) (*model.UserStatistics, error) {
	return f.FindOne(ctx, userId)
}

func (f fakeStatistics) Update(_ context.Context, data *model.UserStatistics) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.stats[data.UserId] = *data
	return nil
}

func (f fakeStatistics) Delete(_ context.Context, userId int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.state.stats, userId)
	return nil
}

func (f fakeStatistics) ExecWithTransaction(ctx context.Context, fn func(context.Context, sqlx.Session) error) error {
	f.mu.Lock()
	saved := f.state.clone()
	f.mu.Unlock()
	if err := fn(ctx, nil); err != nil {
		f.mu.Lock()
		f.state = saved
		f.mu.Unlock()
		return err
	}
	return nil
}

func (f fakeStatistics) IncrWithSession(_ context.Context, _ sqlx.Session, userId int64, counter model.Counter, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIncr != nil {
		return f.failIncr
	}
	s, ok := f.state.stats[userId]
	if !ok {
		s = model.UserStatistics{UserId: userId}
	}
	switch counter {
	case model.CounterNone:
		if ok {
			return nil
		}
	case model.CounterAddedShops:
		s.AddedShopsCount++
	case model.CounterCheckins:
		s.CheckinCount++
	case model.CounterReviews:
		s.ReviewCount++
	default:
		return fmt.Errorf("unknown statistics counter %q", counter)
	}
	s.LastUpdatedAt = at
	f.state.stats[userId] = s
	return nil
}

func (f fakeStatistics) EvictCache(_ context.Context, userId int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.evicted = append(f.evicted, userId)
	return nil
}

type fakeProfiles struct{ *fakeProfileDB }

func (f fakeProfiles) Insert(_ context.Context, data *model.UserProfiles) (sql.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.profiles[data.Id] = *data
	return nil, nil
}

func (f fakeProfiles) FindOne(_ context.Context, id int64) (*model.UserProfiles, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.state.profiles[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &p, nil
}

func (f fakeProfiles) Update(_ context.Context, data *model.UserProfiles) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.profiles[data.Id] = *data
	return nil
}

func (f fakeProfiles) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.state.profiles, id)
	return nil
}

func (f fakeProfiles) UpsertWithSession(_ context.Context, _ sqlx.Session, data *model.UserProfiles) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.state.profiles[data.Id]
	p.Id, p.Email, p.UserName = data.Id, data.Email, data.UserName
	f.state.profiles[data.Id] = p
	return nil
}

func (f fakeProfiles) EnsureWithSession(_ context.Context, _ sqlx.Session, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.state.profiles[id]; !ok {
		f.state.profiles[id] = model.UserProfiles{Id: id}
	}
	return nil
}

type fakeProcessed struct{ *fakeProfileDB }

func (f fakeProcessed) Insert(_ context.Context, data *model.ProcessedEvents) (sql.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.processed[data.EventId] = data.EventType
	return nil, nil
}

func (f fakeProcessed) FindOne(_ context.Context, eventId string) (*model.ProcessedEvents, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.state.processed[eventId]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &model.ProcessedEvents{EventId: eventId, EventType: t}, nil
}

func (f fakeProcessed) Update(context.Context, *model.ProcessedEvents) error { return nil }

func (f fakeProcessed) Delete(_ context.Context, eventId string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.state.processed, eventId)
	return nil
}

func (f fakeProcessed) MarkWithSession(_ context.Context, _ sqlx.Session, eventId, eventType string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.state.processed[eventId]; ok {
		return false, nil
	}
	f.state.processed[eventId] = eventType
	return true, nil
}

func newTestServiceContext(t *testing.T) (*svc.ServiceContext, *fakeProfileDB, *bus.MemoryBus) {
	t.Helper()
	db := newFakeProfileDB()
	mb := bus.NewMemoryBus()
	return &svc.ServiceContext{
		UserProfilesModel:    fakeProfiles{db},
		UserStatisticsModel:  fakeStatistics{db},
		ProcessedEventsModel: fakeProcessed{db},
		Bus:                  &bus.Bus{Publisher: mb, Subscriber: mb},
	}, db, mb
}
