package logic

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"KissaHub/app/common/bus"
	"KissaHub/app/common/consts/biz"
	"KissaHub/app/common/geocode"
	"KissaHub/app/common/outbox"
	model "KissaHub/app/dal/moderation"
	"KissaHub/app/services/moderation/internal/svc"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type fakeListings struct {
	mu    sync.Mutex
	rows  map[int64]*model.Listings
	fail  error
	evict int
}

func newFakeListings() *fakeListings {
	return &fakeListings{rows: make(map[int64]*model.Listings)}
}

func (f *fakeListings) Insert(_ context.Context, data *model.Listings) (sql.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	cp := *data
	cp.CreatedAt, cp.UpdatedAt = time.Now(), time.Now()
	f.rows[cp.Id] = &cp
	return nil, nil
}

func (f *fakeListings) FindOne(_ context.Context, id int64) (*model.Listings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (f *fakeListings) Update(_ context.Context, data *model.Listings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *data
	f.rows[cp.Id] = &cp
	return nil
}

func (f *fakeListings) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	return nil
}

// ExecWithTransaction snapshots rows and restores them when fn fails.
func (f *fakeListings) ExecWithTransaction(ctx context.Context, fn func(context.Context, sqlx.Session) error) error {
	f.mu.Lock()
	saved := make(map[int64]model.Listings, len(f.rows))
	for id, row := range f.rows {
		saved[id] = *row
	}
	f.mu.Unlock()

	if err := fn(ctx, nil); err != nil {
		f.mu.Lock()
		f.rows = make(map[int64]*model.Listings, len(saved))
		for id, row := range saved {
			r := row
			f.rows[id] = &r
		}
		f.mu.Unlock()
		return err
	}
	return nil
}

func (f *fakeListings) FindActiveDuplicate(_ context.Context, name, address string, ownerId int64) (*model.Listings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.Name == name && row.UnvalidatedAddress == address && row.OwnerId == ownerId &&
			row.Status != biz.ListingStatusRejected {
			cp := *row
			return &cp, nil
		}
	}
	return nil, model.ErrNotFound
}

func (f *fakeListings) Lookup(ctx context.Context, id int64) (*model.Listings, error) {
	return f.FindOne(ctx, id)
}

func (f *fakeListings) FindOneForUpdate(ctx context.Context, _ sqlx.Session, id int64) (*model.Listings, error) {
	return f.FindOne(ctx, id)
}

func (f *fakeListings) UpdateReviewWithSession(ctx context.Context, _ sqlx.Session, data *model.Listings) error {
	return f.Update(ctx, data)
}

func (f *fakeListings) EvictCache(context.Context, int64) error {
	f.mu.Lock()
	f.evict++
	f.mu.Unlock()
	return nil
}

type stubGeocoder struct {
	loc *geocode.Location
	err error
}

func (s stubGeocoder) Geocode(context.Context, string) (*geocode.Location, error) {
	return s.loc, s.err
}

var errGeocoderDown = errors.New("geocoder unavailable")

type harness struct {
	svcCtx   *svc.ServiceContext
	listings *fakeListings
	store    *outbox.MemoryStore
	bus      *bus.MemoryBus
}

func newHarness(t *testing.T, g geocode.Geocoder) *harness {
	t.Helper()
	listings := newFakeListings()
	store := outbox.NewMemoryStore()
	mb := bus.NewMemoryBus()
	return &harness{
		svcCtx: &svc.ServiceContext{
			ListingsModel: listings,
			Outbox:        outbox.NewRelay(store, mb, outbox.RelayConf{}),
			Geocoder:      g,
			Bus:           &bus.Bus{Publisher: mb, Subscriber: mb},
		},
		listings: listings,
		store:    store,
		bus:      mb,
	}
}

func asUser(id int64) context.Context {
	return context.WithValue(context.Background(), biz.USER_KEY, id)
}

