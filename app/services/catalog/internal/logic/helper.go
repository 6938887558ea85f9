package logic

import (
	"context"
	"math"

	"KissaHub/app/common/consts/biz"
	model "KissaHub/app/dal/catalog"
	"KissaHub/app/services/catalog/internal/svc"
	"KissaHub/app/services/catalog/internal/types"
)

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = biz.DefaultPageSize
	}
	if size > biz.MaxPageSize {
		size = biz.MaxPageSize
	}
	return page, size
}

func offsetOf(page, size int) int64 {
	return int64(page-1) * int64(size)
}

// averageRating rounds to two decimals; shops without reviews report zero.
func averageRating(s *model.CoffeeShops) float64 {
	if s.ReviewCount == 0 {
		return 0
	}
	return math.Round(float64(s.RatingTotal)/float64(s.ReviewCount)*100) / 100
}

func toSummary(s *model.CoffeeShops) types.ShopSummary {
	return types.ShopSummary{
		Id:            s.Id,
		Name:          s.Name,
		Address:       s.Address,
		City:          s.City,
		ReviewCount:   s.ReviewCount,
		AverageRating: averageRating(s),
		CheckinCount:  s.CheckinCount,
	}
}

func toSummaries(rows []*model.CoffeeShops) []types.ShopSummary {
	out := make([]types.ShopSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSummary(row))
	}
	return out
}

func toReview(r *model.Reviews) types.Review {
	return types.Review{
		Id:        r.Id,
		ShopId:    r.ShopId,
		UserId:    r.UserId,
		Rating:    r.Rating,
		Content:   r.Content,
		CreatedAt: r.CreatedAt.Unix(),
	}
}

// loadShop assembles the shop with its sub-records. Missing location or
// contact rows are normal and leave the fields nil.
func loadShop(ctx context.Context, svcCtx *svc.ServiceContext, id int64) (*types.Shop, error) {
	shop, err := svcCtx.CoffeeShopsModel.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &types.Shop{
		Id:              shop.Id,
		SourceListingId: shop.SourceListingId,
		Name:            shop.Name,
		OwnerId:         shop.OwnerId,
		Address:         shop.Address,
		City:            shop.City,
		Photos:          []types.Photo{},
		Schedules:       []types.Schedule{},
		ReviewCount:     shop.ReviewCount,
		AverageRating:   averageRating(shop),
		CheckinCount:    shop.CheckinCount,
		CreatedAt:       shop.CreatedAt.Unix(),
	}

	switch loc, err := svcCtx.ShopLocationsModel.FindOneByShopId(ctx, id); err {
	case nil:
		out.Location = &types.Location{Latitude: loc.Latitude, Longitude: loc.Longitude}
	case model.ErrNotFound:
	default:
		return nil, err
	}

	switch c, err := svcCtx.ShopContactsModel.FindOneByShopId(ctx, id); err {
	case nil:
		out.Contact = &types.Contact{Id: c.Id, Phone: c.Phone, Email: c.Email, Website: c.Website, Instagram: c.Instagram}
	case model.ErrNotFound:
	default:
		return nil, err
	}

	photos, err := svcCtx.ShopPhotosModel.FindByShopId(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, p := range photos {
		out.Photos = append(out.Photos, types.Photo{Url: p.Url, Position: p.Position})
	}

	schedules, err := svcCtx.ShopSchedulesModel.FindByShopId(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, s := range schedules {
		out.Schedules = append(out.Schedules, types.Schedule{
			DayOfWeek: s.DayOfWeek,
			OpensAt:   s.OpensAt,
			ClosesAt:  s.ClosesAt,
			Closed:    s.Closed != 0,
		})
	}
	return out, nil
}
