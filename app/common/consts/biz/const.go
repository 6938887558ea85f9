package biz

import "time"

type CtxKey string

const (
	USER_KEY CtxKey = "user_id"

	// set by the gateway once the caller is authenticated
	USER_ID_HEADER = "X-User-Id"
)

const (
	USER_REGISTER_BLOOM     = "bloom:users:username"
	USER_REGISTER_BLOOM_BIT = 1 << 20
)

// listing lifecycle
const (
	ListingStatusPending  = "PENDING"
	ListingStatusApproved = "APPROVED"
	ListingStatusRejected = "REJECTED"
)

const (
	DefaultShopCacheTTL = 10 * time.Minute
	DefaultPageSize     = 20
	MaxPageSize         = 100
	DefaultTopRated     = 10
)
