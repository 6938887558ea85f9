package logic

import (
	"context"
	"database/sql"
	"strings"

	"KissaHub/app/common/consts/biz"
	"KissaHub/app/common/consts/errno"
	"KissaHub/app/common/events"
	"KissaHub/app/common/response"
	"KissaHub/app/common/snowflake"
	"KissaHub/app/common/util"
	model "KissaHub/app/dal/moderation"
	"KissaHub/app/services/moderation/internal/svc"
	"KissaHub/app/services/moderation/internal/types"

	"github.com/zeromicro/go-zero/core/jsonx"
	"github.com/zeromicro/go-zero/core/logx"
)

type SubmitListingLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSubmitListingLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SubmitListingLogic {
	return &SubmitListingLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SubmitListingLogic) SubmitListing(req *types.SubmitListingRequest) (*types.ListingResponse, error) {
	resp := &types.ListingResponse{Result: response.Fail(errno.InternalError)}

	ownerId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	address := strings.TrimSpace(req.Address)
	if name == "" || address == "" {
		resp.Result = response.NewResult(errno.InvalidParam, "name and address are required")
		return resp, nil
	}
	for _, s := range req.Schedules {
		if !validSchedule(s) {
			resp.Result = response.NewResult(errno.InvalidParam, "schedule needs a weekday 0-6 and HH:MM hours")
			return resp, nil
		}
	}
	for _, p := range req.Photos {
		if strings.TrimSpace(p.Url) == "" {
			resp.Result = response.NewResult(errno.InvalidParam, "photo url is required")
			return resp, nil
		}
	}

	// duplicate check precedes the insert
	if _, err := l.svcCtx.ListingsModel.FindActiveDuplicate(l.ctx, name, address, ownerId); err == nil {
		resp.Result = response.Fail(errno.DuplicateSubmission)
		return resp, nil
	} else if err != model.ErrNotFound {
		l.Errorw("find duplicate listing failed", logx.Field("owner_id", ownerId), logx.Field("err", err))
		return resp, nil
	}

	listing := &model.Listings{
		Id:                 snowflake.Next(),
		Name:               name,
		UnvalidatedAddress: address,
		OwnerId:            ownerId,
		Status:             biz.ListingStatusPending,
	}
	if err := fillDetails(listing, req); err != nil {
		l.Errorw("encode listing details failed", logx.Field("err", err))
		return resp, nil
	}
	l.geocode(listing)

	if _, err := l.svcCtx.ListingsModel.Insert(l.ctx, listing); err != nil {
		if util.IsDuplicateEntry(err) {
			resp.Result = response.Fail(errno.DuplicateSubmission)
			return resp, nil
		}
		l.Errorw("insert listing failed", logx.Field("listing_id", listing.Id), logx.Field("err", err))
		return resp, nil
	}

	view, err := toListing(listing)
	if err != nil {
		return nil, err
	}
	resp.Result = response.OK()
	resp.Listing = view
	return resp, nil
}

// geocode is best effort. A failure leaves the listing unvalidated with no
// coordinates, submission still succeeds.
func (l *SubmitListingLogic) geocode(listing *model.Listings) {
	loc, err := l.svcCtx.Geocoder.Geocode(l.ctx, listing.UnvalidatedAddress)
	if err != nil {
		l.Infow("address not validated",
			logx.Field("listing_id", listing.Id),
			logx.Field("err", err.Error()))
		return
	}
	listing.AddressValidated = 1
	listing.ValidatedAddress = nullString(loc.DisplayName)
	listing.City = nullString(loc.City)
	listing.Latitude = sql.NullFloat64{Float64: loc.Latitude, Valid: true}
	listing.Longitude = sql.NullFloat64{Float64: loc.Longitude, Valid: true}
}

func fillDetails(listing *model.Listings, req *types.SubmitListingRequest) error {
	if c := req.Contact; c != nil {
		body, err := jsonx.MarshalToString(events.Contact{
			Id:        snowflake.Next(),
			Phone:     strings.TrimSpace(c.Phone),
			Email:     strings.TrimSpace(c.Email),
			Website:   strings.TrimSpace(c.Website),
			Instagram: strings.TrimSpace(c.Instagram),
		})
		if err != nil {
			return err
		}
		listing.Contact = sql.NullString{String: body, Valid: true}
	}

	photos := make([]events.Photo, 0, len(req.Photos))
	for i, p := range req.Photos {
		pos := p.Position
		if pos == 0 {
			pos = i
		}
		photos = append(photos, events.Photo{Url: strings.TrimSpace(p.Url), Position: pos})
	}
	schedules := make([]events.Schedule, 0, len(req.Schedules))
	for _, s := range req.Schedules {
		schedules = append(schedules, events.Schedule{DayOfWeek: s.DayOfWeek, OpensAt: s.OpensAt, ClosesAt: s.ClosesAt, Closed: s.Closed})
	}

	var err error
	if listing.Photos, err = jsonx.MarshalToString(photos); err != nil {
		return err
	}
	listing.Schedules, err = jsonx.MarshalToString(schedules)
	return err
}
