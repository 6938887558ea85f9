package logic

import (
	"context"
	"errors"
	"testing"

	"KissaHub/app/common/consts/biz"
	"KissaHub/app/common/consts/errno"
	"KissaHub/app/common/events"
	"KissaHub/app/common/geocode"
	"KissaHub/app/services/moderation/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reviewerId = int64(7)

func submitted(t *testing.T, h *harness) int64 {
	t.Helper()
	resp, err := NewSubmitListingLogic(asUser(42), h.svcCtx).SubmitListing(oakStreet())
	require.NoError(t, err)
	require.Equal(t, errno.StatusOK, resp.StatusCode)
	return resp.Listing.Id
}

func transition(t *testing.T, h *harness, id int64, status string) *types.ListingResponse {
	t.Helper()
	resp, err := NewTransitionListingLogic(asUser(reviewerId), h.svcCtx).
		TransitionListing(&types.TransitionListingRequest{Id: id, Status: status})
	require.NoError(t, err)
	return resp
}

func approvals(t *testing.T, h *harness) []*events.Envelope {
	t.Helper()
	var out []*events.Envelope
	for _, msg := range h.bus.Published(events.TypeCoffeeShopApproved) {
		env, err := events.Decode(msg.Value)
		require.NoError(t, err)
		out = append(out, env)
	}
	return out
}

func TestApprovePublishesSnapshot(t *testing.T) {
	h := newHarness(t, stubGeocoder{loc: &geocode.Location{
		Latitude: 45.52, Longitude: -122.67, DisplayName: "12 Oak St, Portland", City: "Portland",
	}})
	id := submitted(t, h)

	resp := transition(t, h, id, "approved")
	require.Equal(t, errno.StatusOK, resp.StatusCode)
	assert.Equal(t, biz.ListingStatusApproved, resp.Listing.Status)
	assert.Equal(t, reviewerId, resp.Listing.ReviewerId)
	assert.NotZero(t, resp.Listing.ReviewedAt)
	assert.Equal(t, 1, h.listings.evict)

	published := approvals(t, h)
	require.Len(t, published, 1)
	env := published[0]
	assert.Equal(t, events.ProducerModeration, env.Producer)

	var snap events.ApprovalEvent
	require.NoError(t, env.Bind(&snap))
	assert.Equal(t, id, snap.ListingId)
	assert.Equal(t, "Oak St Coffee", snap.Name)
	assert.Equal(t, biz.ListingStatusApproved, snap.Status)
	assert.Equal(t, reviewerId, snap.ApprovedBy)
	assert.Equal(t, int64(42), snap.OwnerId)
	require.NotNil(t, snap.City)
	assert.Equal(t, "Portland", *snap.City)
	assert.True(t, snap.HasCoordinates())
	require.NotNil(t, snap.Contact)
	require.NotNil(t, snap.ContactId)
	assert.Equal(t, snap.Contact.Id, *snap.ContactId)
	assert.Len(t, snap.Photos, 2)
	assert.Len(t, snap.Schedules, 2)

	row, ok := h.store.Row(env.EventID)
	require.True(t, ok)
	assert.True(t, row.PublishedAt.Valid)
}

func TestApproveUnvalidatedListingOmitsCoordinates(t *testing.T) {
	h := newHarness(t, stubGeocoder{err: errGeocoderDown})
	id := submitted(t, h)

	require.Equal(t, errno.StatusOK, transition(t, h, id, biz.ListingStatusApproved).StatusCode)

	published := approvals(t, h)
	require.Len(t, published, 1)
	var snap events.ApprovalEvent
	require.NoError(t, published[0].Bind(&snap))
	assert.False(t, snap.HasCoordinates())
	assert.Nil(t, snap.City)
}

func TestRejectPublishesNothing(t *testing.T) {
	h := newHarness(t, stubGeocoder{err: errGeocoderDown})
	id := submitted(t, h)

	resp := transition(t, h, id, biz.ListingStatusRejected)
	require.Equal(t, errno.StatusOK, resp.StatusCode)
	assert.Equal(t, biz.ListingStatusRejected, resp.Listing.Status)
	assert.Empty(t, approvals(t, h))
	assert.Empty(t, h.store.Rows())

	// repeating the rejection is a no-op
	resp = transition(t, h, id, biz.ListingStatusRejected)
	assert.Equal(t, errno.StatusOK, resp.StatusCode)
	assert.Empty(t, h.store.Rows())
}

func TestTransitionUnknownListing(t *testing.T) {
	h := newHarness(t, stubGeocoder{err: errGeocoderDown})

	for _, id := range []int64{999, 0, -1} {
		resp := transition(t, h, id, biz.ListingStatusApproved)
		assert.Equal(t, errno.ListingNotFound, resp.StatusCode, "id %d", id)
		assert.Nil(t, resp.Listing)
	}
	assert.Empty(t, approvals(t, h))
	assert.Empty(t, h.store.Rows())
}

func TestTransitionRejectsNonTerminalTarget(t *testing.T) {
	h := newHarness(t, stubGeocoder{err: errGeocoderDown})
	id := submitted(t, h)

	for _, status := range []string{biz.ListingStatusPending, "ARCHIVED", ""} {
		resp := transition(t, h, id, status)
		assert.Equal(t, errno.InvalidTransition, resp.StatusCode, status)
	}
	assert.Equal(t, biz.ListingStatusPending, h.listings.rows[id].Status)
}

func TestTerminalListingCannotFlip(t *testing.T) {
	h := newHarness(t, stubGeocoder{err: errGeocoderDown})
	rejected := submitted(t, h)
	require.Equal(t, errno.StatusOK, transition(t, h, rejected, biz.ListingStatusRejected).StatusCode)

	resp := transition(t, h, rejected, biz.ListingStatusApproved)
	assert.Equal(t, errno.InvalidTransition, resp.StatusCode)
	assert.Equal(t, biz.ListingStatusRejected, h.listings.rows[rejected].Status)
	assert.Empty(t, approvals(t, h))

	approved := submitted(t, h)
	require.Equal(t, errno.StatusOK, transition(t, h, approved, biz.ListingStatusApproved).StatusCode)
	resp = transition(t, h, approved, biz.ListingStatusRejected)
	assert.Equal(t, errno.InvalidTransition, resp.StatusCode)
	assert.Equal(t, biz.ListingStatusApproved, h.listings.rows[approved].Status)
}

func TestReapproveReemitsSameEvent(t *testing.T) {
	h := newHarness(t, stubGeocoder{err: errGeocoderDown})
	id := submitted(t, h)

	require.Equal(t, errno.StatusOK, transition(t, h, id, biz.ListingStatusApproved).StatusCode)
	reviewedAt := h.listings.rows[id].ReviewedAt

	resp := transition(t, h, id, biz.ListingStatusApproved)
	require.Equal(t, errno.StatusOK, resp.StatusCode)
	assert.Equal(t, reviewedAt, h.listings.rows[id].ReviewedAt)

	published := approvals(t, h)
	require.Len(t, published, 2)
	assert.Equal(t, published[0].EventID, published[1].EventID)
	assert.Len(t, h.store.Rows(), 1)
}

func TestApprovePublishFailureLeavesRowPending(t *testing.T) {
	h := newHarness(t, stubGeocoder{err: errGeocoderDown})
	id := submitted(t, h)

	h.bus.FailPublishes(errors.New("broker down"))
	resp := transition(t, h, id, biz.ListingStatusApproved)
	assert.Equal(t, errno.EventPublishFailed, resp.StatusCode)
	require.NotNil(t, resp.Listing)
	assert.Equal(t, biz.ListingStatusApproved, h.listings.rows[id].Status)

	rows := h.store.Rows()
	require.Len(t, rows, 1)
	assert.False(t, rows[0].PublishedAt.Valid)
	assert.Equal(t, int64(1), rows[0].RetryCount)

	h.bus.FailPublishes(nil)
	sent, err := h.svcCtx.Outbox.DispatchPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Len(t, approvals(t, h), 1)
}

func TestTransitionRequiresIdentity(t *testing.T) {
	h := newHarness(t, stubGeocoder{err: errGeocoderDown})
	id := submitted(t, h)

	_, err := NewTransitionListingLogic(context.Background(), h.svcCtx).
		TransitionListing(&types.TransitionListingRequest{Id: id, Status: biz.ListingStatusApproved})
	assert.Error(t, err)
	assert.Equal(t, biz.ListingStatusPending, h.listings.rows[id].Status)
}

func TestGetListing(t *testing.T) {
	h := newHarness(t, stubGeocoder{err: errGeocoderDown})
	id := submitted(t, h)

	resp, err := NewGetListingLogic(context.Background(), h.svcCtx).GetListing(&types.GetListingRequest{Id: id})
	require.NoError(t, err)
	require.Equal(t, errno.StatusOK, resp.StatusCode)
	assert.Equal(t, "Oak St Coffee", resp.Listing.Name)
	assert.Equal(t, "+1 503 555 0100", resp.Listing.Contact.Phone)

	for _, missing := range []int64{id + 1, 0} {
		resp, err = NewGetListingLogic(context.Background(), h.svcCtx).GetListing(&types.GetListingRequest{Id: missing})
		require.NoError(t, err)
		assert.Equal(t, errno.ListingNotFound, resp.StatusCode)
	}
}
