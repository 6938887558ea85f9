package logic

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"KissaHub/app/common/consts/biz"
	"KissaHub/app/common/consts/errno"
	"KissaHub/app/common/events"
	"KissaHub/app/common/response"
	"KissaHub/app/common/util"
	model "KissaHub/app/dal/moderation"
	"KissaHub/app/services/moderation/internal/svc"
	"KissaHub/app/services/moderation/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var errInvalidTransition = errors.New("invalid listing transition")

type TransitionListingLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewTransitionListingLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TransitionListingLogic {
	return &TransitionListingLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// TransitionListing moves a PENDING listing to APPROVED or REJECTED. The
// status change and the approval snapshot commit together; the snapshot is
// then published right away, and the outbox relay retries it if that fails.
//
// Repeating the current terminal status is accepted: a repeated approval
// re-emits the snapshot under its original event id, a repeated rejection
// changes nothing.
func (l *TransitionListingLogic) TransitionListing(req *types.TransitionListingRequest) (*types.ListingResponse, error) {
	resp := &types.ListingResponse{Result: response.Fail(errno.InternalError)}

	actorId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}
	if req.Id <= 0 {
		resp.Result = response.Fail(errno.ListingNotFound)
		return resp, nil
	}

	target := strings.ToUpper(strings.TrimSpace(req.Status))
	if target != biz.ListingStatusApproved && target != biz.ListingStatusRejected {
		resp.Result = response.NewResult(errno.InvalidTransition, "target status must be APPROVED or REJECTED")
		return resp, nil
	}

	var (
		listing *model.Listings
		env     *events.Envelope
	)
	err = l.svcCtx.ListingsModel.ExecWithTransaction(l.ctx, func(ctx context.Context, session sqlx.Session) error {
		var err error
		listing, err = l.svcCtx.ListingsModel.FindOneForUpdate(ctx, session, req.Id)
		if err != nil {
			return err
		}

		switch {
		case listing.Status == target:
			if target == biz.ListingStatusRejected {
				return nil
			}
		case listing.Status != biz.ListingStatusPending:
			return errInvalidTransition
		default:
			listing.Status = target
			listing.ReviewerId.Int64, listing.ReviewerId.Valid = actorId, true
			listing.ReviewedAt.Time, listing.ReviewedAt.Valid = time.Now().UTC().Truncate(time.Second), true
			if err := l.svcCtx.ListingsModel.UpdateReviewWithSession(ctx, session, listing); err != nil {
				return err
			}
			if target == biz.ListingStatusRejected {
				return nil
			}
		}

		env, err = newApprovalEnvelope(listing)
		if err != nil {
			return err
		}
		return l.svcCtx.Outbox.Stage(ctx, session, env)
	})
	switch {
	case err == nil:
	case errors.Is(err, model.ErrNotFound):
		resp.Result = response.Fail(errno.ListingNotFound)
		return resp, nil
	case errors.Is(err, errInvalidTransition):
		resp.Result = response.NewResult(errno.InvalidTransition,
			"listing is already "+listing.Status)
		return resp, nil
	default:
		l.Errorw("transition listing failed",
			logx.Field("listing_id", req.Id),
			logx.Field("target", target),
			logx.Field("err", err))
		return resp, nil
	}

	if err := l.svcCtx.ListingsModel.EvictCache(l.ctx, listing.Id); err != nil {
		l.Errorw("evict listing cache failed", logx.Field("listing_id", listing.Id), logx.Field("err", err))
	}

	view, err := toListing(listing)
	if err != nil {
		return nil, err
	}
	resp.Listing = view

	if env != nil {
		if err := l.svcCtx.Outbox.Deliver(l.ctx, env); err != nil {
			l.Errorw("publish approval failed, left for relay",
				logx.Field("listing_id", listing.Id),
				logx.Field("event_id", env.EventID),
				logx.Field("err", err))
			resp.Result = response.Fail(errno.EventPublishFailed)
			return resp, nil
		}
	}

	resp.Result = response.OK()
	return resp, nil
}

func newApprovalEnvelope(listing *model.Listings) (*events.Envelope, error) {
	snapshot, err := approvalSnapshot(listing)
	if err != nil {
		return nil, err
	}
	key := strconv.FormatInt(listing.Id, 10)
	env, err := events.New(events.TypeCoffeeShopApproved, events.ProducerModeration, key, snapshot)
	if err != nil {
		return nil, err
	}
	env.EventID = events.StableID(events.TypeCoffeeShopApproved, key)
	return env, nil
}
