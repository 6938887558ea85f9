package logic

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"KissaHub/app/common/bus"
	"KissaHub/app/common/consts/biz"
	"KissaHub/app/common/outbox"
	model "KissaHub/app/dal/user"
	"KissaHub/app/services/user/internal/svc"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-sql-driver/mysql"
	"github.com/zeromicro/go-zero/core/bloom"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type fakeUsers struct {
	mu      sync.Mutex
	rows    map[int64]*model.Users
	lookups int
	evicted []int64
	// raceName simulates a concurrent insert of the same username
	raceName string
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{rows: make(map[int64]*model.Users)}
}

func (f *fakeUsers) Insert(ctx context.Context, data *model.Users) (sql.Result, error) {
	return nil, f.InsertWithSession(ctx, nil, data)
}

func (f *fakeUsers) FindOne(_ context.Context, id int64) (*model.Users, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (f *fakeUsers) FindOneByUsername(_ context.Context, username string) (*model.Users, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	for _, row := range f.rows {
		if row.Username == username {
			cp := *row
			return &cp, nil
		}
	}
	return nil, model.ErrNotFound
}

func (f *fakeUsers) Update(_ context.Context, data *model.Users) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *data
	f.rows[cp.Id] = &cp
	return nil
}

func (f *fakeUsers) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	return nil
}

func (f *fakeUsers) FindAllUsername(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.rows))
	for _, row := range f.rows {
		names = append(names, row.Username)
	}
	return names, nil
}

func (f *fakeUsers) ExecWithTransaction(ctx context.Context, fn func(context.Context, sqlx.Session) error) error {
	f.mu.Lock()
	snapshot := make(map[int64]*model.Users, len(f.rows))
	for id, row := range f.rows {
		snapshot[id] = row
	}
	f.mu.Unlock()

	if err := fn(ctx, nil); err != nil {
		f.mu.Lock()
		f.rows = snapshot
		f.mu.Unlock()
		return err
	}
	return nil
}

func (f *fakeUsers) InsertWithSession(_ context.Context, _ sqlx.Session, data *model.Users) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if data.Username == f.raceName {
		return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	}
	for _, row := range f.rows {
		if row.Username == data.Username {
			return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
		}
	}
	cp := *data
	cp.CreatedAt, cp.UpdatedAt = time.Now(), time.Now()
	f.rows[cp.Id] = &cp
	return nil
}

func (f *fakeUsers) EvictCache(_ context.Context, data *model.Users) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.evicted = append(f.evicted, data.Id)
	return nil
}

func (f *fakeUsers) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type harness struct {
	svcCtx *svc.ServiceContext
	users  *fakeUsers
	store  *outbox.MemoryStore
	bus    *bus.MemoryBus
	mr     *miniredis.Miniredis
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	mr := miniredis.RunT(t)
	users := newFakeUsers()
	store := outbox.NewMemoryStore()
	mb := bus.NewMemoryBus()
	return &harness{
		svcCtx: &svc.ServiceContext{
			UsersModel: users,
			Bloom:      bloom.New(redis.New(mr.Addr()), biz.USER_REGISTER_BLOOM, biz.USER_REGISTER_BLOOM_BIT),
			Outbox:     outbox.NewRelay(store, mb, outbox.RelayConf{}),
			Bus:        &bus.Bus{Publisher: mb, Subscriber: mb},
		},
		users: users,
		store: store,
		bus:   mb,
		mr:    mr,
	}
}
