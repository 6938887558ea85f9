package events

import "time"

// Event types double as Kafka topic names.
const (
	TypeUserRegistered     = "user.registered"
	TypeCoffeeShopApproved = "coffeeshop.approved"
	TypeReviewAdded        = "review.added"
	TypeCheckinCreated     = "checkin.created"
	TypeLoginNotified      = "user.login_notified"
)

const (
	ProducerModeration = "moderation"
	ProducerCatalog    = "catalog"
	ProducerUser       = "user"
)

type UserRegistered struct {
	UserId   int64  `json:"user_id"`
	Email    string `json:"email"`
	UserName string `json:"user_name"`
}

type Contact struct {
	Id        int64  `json:"id"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Website   string `json:"website,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type Photo struct {
	Url      string `json:"url"`
	Position int    `json:"position"`
}

// Schedule is one weekly opening window. DayOfWeek follows time.Weekday.
type Schedule struct {
	DayOfWeek int    `json:"day_of_week"`
	OpensAt   string `json:"opens_at"`
	ClosesAt  string `json:"closes_at"`
	Closed    bool   `json:"closed,omitempty"`
}

// ApprovalEvent is the full snapshot of a listing at the moment it was approved.
// It carries everything the catalog needs, the catalog never calls back.
type ApprovalEvent struct {
	ListingId          int64      `json:"listing_id"`
	Name               string     `json:"name"`
	UnvalidatedAddress string     `json:"unvalidated_address"`
	OwnerId            int64      `json:"owner_id"`
	ValidatedAddress   *string    `json:"validated_address,omitempty"`
	City               *string    `json:"city,omitempty"`
	ContactId          *int64     `json:"contact_id,omitempty"`
	Status             string     `json:"status"`
	Contact            *Contact   `json:"contact,omitempty"`
	Photos             []Photo    `json:"photos"`
	Schedules          []Schedule `json:"schedules"`
	Latitude           *float64   `json:"latitude,omitempty"`
	Longitude          *float64   `json:"longitude,omitempty"`
	ApprovedBy         int64      `json:"approved_by"`
	ApprovedAt         time.Time  `json:"approved_at"`
}

func (e *ApprovalEvent) HasCoordinates() bool {
	return e.Latitude != nil && e.Longitude != nil
}

type ReviewAdded struct {
	UserId    int64     `json:"user_id"`
	ShopId    int64     `json:"shop_id"`
	ReviewId  int64     `json:"review_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CheckinCreated struct {
	UserId    int64     `json:"user_id"`
	ShopId    int64     `json:"shop_id"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginNotified struct {
	UserId     int64     `json:"user_id"`
	UserName   string    `json:"user_name"`
	LoggedInAt time.Time `json:"logged_in_at"`
}
