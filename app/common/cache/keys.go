package cache

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	kindShop   = "CoffeeShop"
	kindReview = "Review"

	TopRatedPattern = kindShop + ":top-rated:*"
)

// CityPartition maps a city name onto a key segment. Names that differ only
// in case or surrounding space share a segment; any other difference yields a
// distinct one. The hex alphabet keeps the segment free of glob metacharacters.
func CityPartition(city string) string {
	return hex.EncodeToString([]byte(strings.ToLower(strings.TrimSpace(city))))
}

func ShopKey(id int64) string {
	return fmt.Sprintf("%s:%d", kindShop, id)
}

func ShopCityPageKey(city string, page, size int) string {
	return fmt.Sprintf("%s:city:%s:page:%d:size:%d", kindShop, CityPartition(city), page, size)
}

func ShopCityPattern(city string) string {
	return fmt.Sprintf("%s:city:%s:*", kindShop, CityPartition(city))
}

func TopRatedKey(limit int) string {
	return fmt.Sprintf("%s:top-rated:limit:%d", kindShop, limit)
}

func ShopReviewsPageKey(shopId int64, page, size int) string {
	return fmt.Sprintf("%s:shop:%d:page:%d:size:%d", kindReview, shopId, page, size)
}

func ShopReviewsPattern(shopId int64) string {
	return fmt.Sprintf("%s:shop:%d:*", kindReview, shopId)
}
