package logic

import (
	"testing"

	"KissaHub/app/common/bus"
	"KissaHub/app/services/catalog/internal/svc"

	"github.com/alicebob/miniredis/v2"
)

// NewTestServiceContext wires the in-memory catalog fakes for tests outside
// this package.
func NewTestServiceContext(t *testing.T) (*svc.ServiceContext, *bus.MemoryBus, *miniredis.Miniredis) {
	h := newHarness(t)
	return h.svcCtx, h.bus, h.mr
}
