package logic

import (
	"testing"

	"KissaHub/app/common/bus"
	"KissaHub/app/services/profile/internal/svc"
)

// NewTestServiceContext wires the in-memory profile fakes for tests outside
// this package. failIncr makes every counter update fail until reset.
func NewTestServiceContext(t *testing.T) (*svc.ServiceContext, *bus.MemoryBus, func(error)) {
	sc, db, mb := newTestServiceContext(t)
	return sc, mb, func(err error) {
		db.mu.Lock()
		db.failIncr = err
		db.mu.Unlock()
	}
}
