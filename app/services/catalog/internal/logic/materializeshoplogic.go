package logic

import (
	"context"
	"strings"

	appcache "KissaHub/app/common/cache"
	"KissaHub/app/common/consts/biz"
	"KissaHub/app/common/events"
	"KissaHub/app/common/snowflake"
	"KissaHub/app/common/util"
	model "KissaHub/app/dal/catalog"
	"KissaHub/app/services/catalog/internal/svc"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type MaterializeShopLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewMaterializeShopLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MaterializeShopLogic {
	return &MaterializeShopLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Materialize turns an approval snapshot into a catalog shop. Applying the
// same snapshot again is a no-op keyed on the source listing id. A returned
// error means nothing was written and the event should be redelivered.
func (l *MaterializeShopLogic) Materialize(evt *events.ApprovalEvent) error {
	if evt.Status != biz.ListingStatusApproved {
		l.Infow("skip listing event that is not an approval",
			logx.Field("listing_id", evt.ListingId),
			logx.Field("status", evt.Status))
		return nil
	}

	switch existing, err := l.svcCtx.CoffeeShopsModel.FindOneBySourceListingId(l.ctx, evt.ListingId); err {
	case nil:
		l.Infow("listing already materialized",
			logx.Field("listing_id", evt.ListingId),
			logx.Field("shop_id", existing.Id))
		return nil
	case model.ErrNotFound:
	default:
		return err
	}

	shop := newShop(evt)
	err := l.svcCtx.CoffeeShopsModel.ExecWithTransaction(l.ctx, func(ctx context.Context, session sqlx.Session) error {
		if err := l.svcCtx.CoffeeShopsModel.InsertWithSession(ctx, session, shop); err != nil {
			return err
		}
		if evt.HasCoordinates() {
			if err := l.svcCtx.ShopLocationsModel.InsertWithSession(ctx, session, &model.ShopLocations{
				Id:        snowflake.Next(),
				ShopId:    shop.Id,
				Latitude:  *evt.Latitude,
				Longitude: *evt.Longitude,
			}); err != nil {
				return err
			}
		}
		if evt.Contact != nil {
			if err := l.svcCtx.ShopContactsModel.InsertWithSession(ctx, session, newContact(shop.Id, evt)); err != nil {
				return err
			}
		}
		if err := l.svcCtx.ShopPhotosModel.BatchInsertWithSession(ctx, session, newPhotos(shop.Id, evt.Photos)); err != nil {
			return err
		}
		return l.svcCtx.ShopSchedulesModel.BatchInsertWithSession(ctx, session, newSchedules(shop.Id, evt.Schedules))
	})
	if err != nil {
		if util.IsDuplicateEntry(err) {
			// a concurrent delivery of the same snapshot won the insert
			l.Infow("listing materialized concurrently",
				logx.Field("listing_id", evt.ListingId))
			return nil
		}
		l.Errorw("materialize shop failed",
			logx.Field("listing_id", evt.ListingId),
			logx.Field("err", err))
		return err
	}

	inv := appcache.Invalidation{Patterns: []string{appcache.TopRatedPattern}}
	if shop.City != "" {
		inv.Patterns = append(inv.Patterns, appcache.ShopCityPattern(shop.City))
	}
	l.svcCtx.Invalidator.Invalidate(l.ctx, inv)

	l.Infow("shop materialized",
		logx.Field("listing_id", evt.ListingId),
		logx.Field("shop_id", shop.Id))
	return nil
}

func newShop(evt *events.ApprovalEvent) *model.CoffeeShops {
	shop := &model.CoffeeShops{
		Id:              snowflake.Next(),
		SourceListingId: evt.ListingId,
		Name:            evt.Name,
		OwnerId:         evt.OwnerId,
		Address:         evt.UnvalidatedAddress,
	}
	if evt.ValidatedAddress != nil && *evt.ValidatedAddress != "" {
		shop.Address = *evt.ValidatedAddress
	}
	if evt.City != nil {
		shop.City = strings.TrimSpace(*evt.City)
	}
	return shop
}

func newContact(shopId int64, evt *events.ApprovalEvent) *model.ShopContacts {
	id := evt.Contact.Id
	if evt.ContactId != nil {
		id = *evt.ContactId
	}
	if id == 0 {
		id = snowflake.Next()
	}
	return &model.ShopContacts{
		Id:        id,
		ShopId:    shopId,
		Phone:     evt.Contact.Phone,
		Email:     evt.Contact.Email,
		Website:   evt.Contact.Website,
		Instagram: evt.Contact.Instagram,
	}
}

func newPhotos(shopId int64, photos []events.Photo) []*model.ShopPhotos {
	out := make([]*model.ShopPhotos, 0, len(photos))
	for _, p := range photos {
		out = append(out, &model.ShopPhotos{
			Id:       snowflake.Next(),
			ShopId:   shopId,
			Url:      p.Url,
			Position: int64(p.Position),
		})
	}
	return out
}

func newSchedules(shopId int64, schedules []events.Schedule) []*model.ShopSchedules {
	out := make([]*model.ShopSchedules, 0, len(schedules))
	for _, s := range schedules {
		row := &model.ShopSchedules{
			Id:        snowflake.Next(),
			ShopId:    shopId,
			DayOfWeek: int64(s.DayOfWeek),
			OpensAt:   s.OpensAt,
			ClosesAt:  s.ClosesAt,
		}
		if s.Closed {
			row.Closed = 1
		}
		out = append(out, row)
	}
	return out
}
