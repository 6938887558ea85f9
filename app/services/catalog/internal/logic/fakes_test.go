package logic

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"KissaHub/app/common/bus"
	appcache "KissaHub/app/common/cache"
	"KissaHub/app/common/consts/biz"
	"KissaHub/app/common/outbox"
	model "KissaHub/app/dal/catalog"
	"KissaHub/app/services/catalog/internal/config"
	"KissaHub/app/services/catalog/internal/svc"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-sql-driver/mysql"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type catalogState struct {
	shops     map[int64]model.CoffeeShops
	locations map[int64]model.ShopLocations
	contacts  map[int64]model.ShopContacts
	photos    []model.ShopPhotos
	schedules []model.ShopSchedules
	reviews   []model.Reviews
	checkins  []model.Checkins
}

func (s catalogState) clone() catalogState {
	out := catalogState{
		shops:     make(map[int64]model.CoffeeShops, len(s.shops)),
		locations: make(map[int64]model.ShopLocations, len(s.locations)),
		contacts:  make(map[int64]model.ShopContacts, len(s.contacts)),
		photos:    append([]model.ShopPhotos(nil), s.photos...),
		schedules: append([]model.ShopSchedules(nil), s.schedules...),
		reviews:   append([]model.Reviews(nil), s.reviews...),
		checkins:  append([]model.Checkins(nil), s.checkins...),
	}
	for k, v := range s.shops {
		out.shops[k] = v
	}
	for k, v := range s.locations {
		out.locations[k] = v
	}
	for k, v := range s.contacts {
		out.contacts[k] = v
	}
	return out
}

// fakeCatalog backs every catalog model with one in-memory state so a failed
// transaction can restore all tables at once.
type fakeCatalog struct {
	mu    sync.Mutex
	state catalogState

	// hideSourceLookup makes FindOneBySourceListingId miss, as a racing
	// delivery would see before the other insert committed.
	hideSourceLookup bool
	failSchedules    error
	findOneCalls     int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{state: catalogState{}.clone()}
}

func duplicateEntry() error {
	return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
}

func (f *fakeCatalog) tx(ctx context.Context, fn func(context.Context, sqlx.Session) error) error {
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

func (f *fakeCatalog) shopCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.state.shops)
}

func (f *fakeCatalog) onlyShop(t *testing.T) model.CoffeeShops {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.state.shops) != 1 {
		t.Fatalf("expected exactly one shop, got %d", len(f.state.shops))
	}
	for _, s := range f.state.shops {
		return s
	}
	return model.CoffeeShops{}
}

func (f *fakeCatalog) seedShop(s model.CoffeeShops) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	f.state.shops[s.Id] = s
}

type fakeShops struct{ *fakeCatalog }

func (f fakeShops) Insert(ctx context.Context, data *model.CoffeeShops) (sql.Result, error) {
	return nil, f.InsertWithSession(ctx, nil, data)
}

func (f fakeShops) FindOne(_ context.Context, id int64) (*model.CoffeeShops, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findOneCalls++
	s, ok := f.state.shops[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &s, nil
}

func (f fakeShops) FindOneBySourceListingId(_ context.Context, sourceListingId int64) (*model.CoffeeShops, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hideSourceLookup {
		return nil, model.ErrNotFound
	}
	for _, s := range f.state.shops {
		if s.SourceListingId == sourceListingId {
			cp := s
			return &cp, nil
		}
	}
	return nil, model.ErrNotFound
}

func (f fakeShops) Update(_ context.Context, data *model.CoffeeShops) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.shops[data.Id] = *data
	return nil
}

func (f fakeShops) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.state.shops, id)
	return nil
}

func (f fakeShops) ExecWithTransaction(ctx context.Context, fn func(context.Context, sqlx.Session) error) error {
	return f.tx(ctx, fn)
}

func (f fakeShops) InsertWithSession(_ context.Context, _ sqlx.Session, data *model.CoffeeShops) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.state.shops {
		if s.SourceListingId == data.SourceListingId {
			return duplicateEntry()
		}
	}
	row := *data
	row.CreatedAt, row.UpdatedAt = time.Now(), time.Now()
	f.state.shops[row.Id] = row
	return nil
}

func (f fakeShops) FindByCity(_ context.Context, city string, offset, limit int64) ([]*model.CoffeeShops, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*model.CoffeeShops
	for _, s := range f.state.shops {
		if strings.EqualFold(s.City, city) {
			cp := s
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Id < all[j].Id })
	if offset >= int64(len(all)) {
		return nil, nil
	}
	end := offset + limit
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[offset:end], nil
}

func (f fakeShops) CountByCity(_ context.Context, city string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, s := range f.state.shops {
		if strings.EqualFold(s.City, city) {
			n++
		}
	}
	return n, nil
}

func (f fakeShops) FindTopRated(_ context.Context, limit int64) ([]*model.CoffeeShops, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*model.CoffeeShops
	for _, s := range f.state.shops {
		if s.ReviewCount > 0 {
			cp := s
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		ai := float64(all[i].RatingTotal) / float64(all[i].ReviewCount)
		aj := float64(all[j].RatingTotal) / float64(all[j].ReviewCount)
		if ai != aj {
			return ai > aj
		}
		if all[i].ReviewCount != all[j].ReviewCount {
			return all[i].ReviewCount > all[j].ReviewCount
		}
		return all[i].Id < all[j].Id
	})
	if int64(len(all)) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f fakeShops) AddRatingWithSession(_ context.Context, _ sqlx.Session, id, rating int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.state.shops[id]
	if !ok {
		return model.ErrRowsAffectedIsZero
	}
	s.ReviewCount++
	s.RatingTotal += rating
	f.state.shops[id] = s
	return nil
}

func (f fakeShops) IncrCheckinWithSession(_ context.Context, _ sqlx.Session, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.state.shops[id]
	if !ok {
		return model.ErrRowsAffectedIsZero
	}
	s.CheckinCount++
	f.state.shops[id] = s
	return nil
}

type fakeLocations struct{ *fakeCatalog }

func (f fakeLocations) Insert(ctx context.Context, data *model.ShopLocations) (sql.Result, error) {
	return nil, f.InsertWithSession(ctx, nil, data)
}

func (f fakeLocations) FindOne(_ context.Context, id int64) (*model.ShopLocations, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.state.locations {
		if l.Id == id {
			return &l, nil
		}
	}
	return nil, model.ErrNotFound
}

func (f fakeLocations) FindOneByShopId(_ context.Context, shopId int64) (*model.ShopLocations, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.state.locations[shopId]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &l, nil
}

func (f fakeLocations) Update(_ context.Context, data *model.ShopLocations) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.locations[data.ShopId] = *data
	return nil
}

func (f fakeLocations) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for shopId, l := range f.state.locations {
		if l.Id == id {
			delete(f.state.locations, shopId)
		}
	}
	return nil
}

func (f fakeLocations) InsertWithSession(_ context.Context, _ sqlx.Session, data *model.ShopLocations) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.state.locations[data.ShopId]; ok {
		return duplicateEntry()
	}
	f.state.locations[data.ShopId] = *data
	return nil
}

type fakeContacts struct{ *fakeCatalog }

func (f fakeContacts) Insert(ctx context.Context, data *model.ShopContacts) (sql.Result, error) {
	return nil, f.InsertWithSession(ctx, nil, data)
}

func (f fakeContacts) FindOne(_ context.Context, id int64) (*model.ShopContacts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.state.contacts {
		if c.Id == id {
			return &c, nil
		}
	}
	return nil, model.ErrNotFound
}

func (f fakeContacts) FindOneByShopId(_ context.Context, shopId int64) (*model.ShopContacts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.state.contacts[shopId]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &c, nil
}

func (f fakeContacts) Update(_ context.Context, data *model.ShopContacts) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.contacts[data.ShopId] = *data
	return nil
}

func (f fakeContacts) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for shopId, c := range f.state.contacts {
		if c.Id == id {
			delete(f.state.contacts, shopId)
		}
	}
	return nil
}

func (f fakeContacts) InsertWithSession(_ context.Context, _ sqlx.Session, data *model.ShopContacts) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.state.contacts[data.ShopId]; ok {
		return duplicateEntry()
	}
	f.state.contacts[data.ShopId] = *data
	return nil
}

type fakePhotos struct{ *fakeCatalog }

func (f fakePhotos) Insert(ctx context.Context, data *model.ShopPhotos) (sql.Result, error) {
	return nil, f.BatchInsertWithSession(ctx, nil, []*model.ShopPhotos{data})
}

func (f fakePhotos) FindOne(_ context.Context, id int64) (*model.ShopPhotos, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.state.photos {
		if p.Id == id {
			return &p, nil
		}
	}
	return nil, model.ErrNotFound
}

func (f fakePhotos) Update(context.Context, *model.ShopPhotos) error { return nil }

func (f fakePhotos) Delete(context.Context, int64) error { return nil }

func (f fakePhotos) BatchInsertWithSession(_ context.Context, _ sqlx.Session, data []*model.ShopPhotos) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range data {
		f.state.photos = append(f.state.photos, *p)
	}
	return nil
}

func (f fakePhotos) FindByShopId(_ context.Context, shopId int64) ([]*model.ShopPhotos, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.ShopPhotos
	for _, p := range f.state.photos {
		if p.ShopId == shopId {
			cp := p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

type fakeSchedules struct{ *fakeCatalog }

func (f fakeSchedules) Insert(ctx context.Context, data *model.ShopSchedules) (sql.Result, error) {
	return nil, f.BatchInsertWithSession(ctx, nil, []*model.ShopSchedules{data})
}

func (f fakeSchedules) FindOne(_ context.Context, id int64) (*model.ShopSchedules, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.state.schedules {
		if s.Id == id {
			return &s, nil
		}
	}
	return nil, model.ErrNotFound
}

func (f fakeSchedules) Update(context.Context, *model.ShopSchedules) error { return nil }

func (f fakeSchedules) Delete(context.Context, int64) error { return nil }

func (f fakeSchedules) BatchInsertWithSession(_ context.Context, _ sqlx.Session, data []*model.ShopSchedules) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSchedules != nil {
		return f.failSchedules
	}
	for _, s := range data {
		f.state.schedules = append(f.state.schedules, *s)
	}
	return nil
}

func (f fakeSchedules) FindByShopId(_ context.Context, shopId int64) ([]*model.ShopSchedules, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.ShopSchedules
	for _, s := range f.state.schedules {
		if s.ShopId == shopId {
			cp := s
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeReviews struct{ *fakeCatalog }

func (f fakeReviews) Insert(ctx context.Context, data *model.Reviews) (sql.Result, error) {
	return nil, f.InsertWithSession(ctx, nil, data)
}

func (f fakeReviews) FindOne(_ context.Context, id int64) (*model.Reviews, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.state.reviews {
		if r.Id == id {
			return &r, nil
		}
	}
	return nil, model.ErrNotFound
}

func (f fakeReviews) Update(context.Context, *model.Reviews) error { return nil }

func (f fakeReviews) Delete(context.Context, int64) error { return nil }

func (f fakeReviews) InsertWithSession(_ context.Context, _ sqlx.Session, data *model.Reviews) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.reviews = append(f.state.reviews, *data)
	return nil
}

func (f fakeReviews) FindByShopId(_ context.Context, shopId, offset, limit int64) ([]*model.Reviews, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*model.Reviews
	for i := len(f.state.reviews) - 1; i >= 0; i-- {
		if r := f.state.reviews[i]; r.ShopId == shopId {
			all = append(all, &r)
		}
	}
	if offset >= int64(len(all)) {
		return nil, nil
	}
	end := offset + limit
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[offset:end], nil
}

func (f fakeReviews) CountByShopId(_ context.Context, shopId int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, r := range f.state.reviews {
		if r.ShopId == shopId {
			n++
		}
	}
	return n, nil
}

type fakeCheckins struct{ *fakeCatalog }

func (f fakeCheckins) Insert(ctx context.Context, data *model.Checkins) (sql.Result, error) {
	return nil, f.InsertWithSession(ctx, nil, data)
}

func (f fakeCheckins) FindOne(_ context.Context, id int64) (*model.Checkins, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.state.checkins {
		if c.Id == id {
			return &c, nil
		}
	}
	return nil, model.ErrNotFound
}

func (f fakeCheckins) Update(context.Context, *model.Checkins) error { return nil }

func (f fakeCheckins) Delete(context.Context, int64) error { return nil }

func (f fakeCheckins) InsertWithSession(_ context.Context, _ sqlx.Session, data *model.Checkins) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.checkins = append(f.state.checkins, *data)
	return nil
}

type harness struct {
	svcCtx  *svc.ServiceContext
	db      *fakeCatalog
	mr      *miniredis.Miniredis
	store   *outbox.MemoryStore
	bus     *bus.MemoryBus
	shopTTL time.Duration
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db := newFakeCatalog()
	mr := miniredis.RunT(t)
	cacheStore := appcache.NewRedisStore(redis.New(mr.Addr()))
	store := outbox.NewMemoryStore()
	mb := bus.NewMemoryBus()

	return &harness{
		svcCtx: &svc.ServiceContext{
			Config:             config.Config{ShopCacheTTL: 5 * time.Minute},
			CoffeeShopsModel:   fakeShops{db},
			ShopLocationsModel: fakeLocations{db},
			ShopContactsModel:  fakeContacts{db},
			ShopPhotosModel:    fakePhotos{db},
			ShopSchedulesModel: fakeSchedules{db},
			ReviewsModel:       fakeReviews{db},
			CheckinsModel:      fakeCheckins{db},
			Cache:              appcache.NewReadThrough(cacheStore),
			Invalidator:        appcache.NewInvalidator(cacheStore),
			Outbox:             outbox.NewRelay(store, mb, outbox.RelayConf{}),
			Bus:                &bus.Bus{Publisher: mb, Subscriber: mb},
		},
		db:      db,
		mr:      mr,
		store:   store,
		bus:     mb,
		shopTTL: 5 * time.Minute,
	}
}

func asUser(id int64) context.Context {
	return context.WithValue(context.Background(), biz.USER_KEY, id)
}
