package logic

import (
	"database/sql"
	"fmt"
	"time"

	"KissaHub/app/common/events"
	model "KissaHub/app/dal/moderation"
	"KissaHub/app/services/moderation/internal/types"

	"github.com/zeromicro/go-zero/core/jsonx"
)

func toListing(l *model.Listings) (*types.Listing, error) {
	if l == nil {
		return nil, nil
	}
	snap, err := decodeDetails(l)
	if err != nil {
		return nil, err
	}
	out := &types.Listing{
		Id:                 l.Id,
		Name:               l.Name,
		UnvalidatedAddress: l.UnvalidatedAddress,
		ValidatedAddress:   l.ValidatedAddress.String,
		City:               l.City.String,
		AddressValidated:   l.AddressValidated != 0,
		OwnerId:            l.OwnerId,
		Status:             l.Status,
		Photos:             make([]types.Photo, 0, len(snap.Photos)),
		Schedules:          make([]types.Schedule, 0, len(snap.Schedules)),
		CreatedAt:          l.CreatedAt.Unix(),
	}
	if l.Latitude.Valid && l.Longitude.Valid {
		lat, lon := l.Latitude.Float64, l.Longitude.Float64
		out.Latitude, out.Longitude = &lat, &lon
	}
	if l.ReviewerId.Valid {
		out.ReviewerId = l.ReviewerId.Int64
	}
	if l.ReviewedAt.Valid {
		out.ReviewedAt = l.ReviewedAt.Time.Unix()
	}
	if c := snap.Contact; c != nil {
		out.Contact = &types.Contact{Id: c.Id, Phone: c.Phone, Email: c.Email, Website: c.Website, Instagram: c.Instagram}
	}
	for _, p := range snap.Photos {
		out.Photos = append(out.Photos, types.Photo{Url: p.Url, Position: p.Position})
	}
	for _, s := range snap.Schedules {
		out.Schedules = append(out.Schedules, types.Schedule{DayOfWeek: s.DayOfWeek, OpensAt: s.OpensAt, ClosesAt: s.ClosesAt, Closed: s.Closed})
	}
	return out, nil
}

type details struct {
	Contact   *events.Contact
	Photos    []events.Photo
	Schedules []events.Schedule
}

func decodeDetails(l *model.Listings) (*details, error) {
	d := &details{}
	if l.Contact.Valid && l.Contact.String != "" {
		d.Contact = &events.Contact{}
		if err := jsonx.UnmarshalFromString(l.Contact.String, d.Contact); err != nil {
			return nil, fmt.Errorf("listing %d contact: %w", l.Id, err)
		}
	}
	if l.Photos != "" {
		if err := jsonx.UnmarshalFromString(l.Photos, &d.Photos); err != nil {
			return nil, fmt.Errorf("listing %d photos: %w", l.Id, err)
		}
	}
	if l.Schedules != "" {
		if err := jsonx.UnmarshalFromString(l.Schedules, &d.Schedules); err != nil {
			return nil, fmt.Errorf("listing %d schedules: %w", l.Id, err)
		}
	}
	return d, nil
}

// approvalSnapshot freezes everything the catalog needs from l.
func approvalSnapshot(l *model.Listings) (*events.ApprovalEvent, error) {
	d, err := decodeDetails(l)
	if err != nil {
		return nil, err
	}
	evt := &events.ApprovalEvent{
		ListingId:          l.Id,
		Name:               l.Name,
		UnvalidatedAddress: l.UnvalidatedAddress,
		OwnerId:            l.OwnerId,
		Status:             l.Status,
		Contact:            d.Contact,
		Photos:             d.Photos,
		Schedules:          d.Schedules,
		ApprovedBy:         l.ReviewerId.Int64,
		ApprovedAt:         l.ReviewedAt.Time,
	}
	if evt.Photos == nil {
		evt.Photos = []events.Photo{}
	}
	if evt.Schedules == nil {
		evt.Schedules = []events.Schedule{}
	}
	if l.ValidatedAddress.Valid {
		v := l.ValidatedAddress.String
		evt.ValidatedAddress = &v
	}
	if l.City.Valid {
		v := l.City.String
		evt.City = &v
	}
	if d.Contact != nil {
		id := d.Contact.Id
		evt.ContactId = &id
	}
	if l.Latitude.Valid && l.Longitude.Valid {
		lat, lon := l.Latitude.Float64, l.Longitude.Float64
		evt.Latitude, evt.Longitude = &lat, &lon
	}
	return evt, nil
}

func validSchedule(s types.Schedule) bool {
	if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
		return false
	}
	if s.Closed {
		return true
	}
	return validClock(s.OpensAt) && validClock(s.ClosesAt)
}

// validClock accepts HH:MM in 24h form.
func validClock(v string) bool {
	_, err := time.Parse("15:04", v)
	return err == nil
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
