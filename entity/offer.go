package entity

import (
	"time"

	"gorm.io/gorm"
)

type OfferType string

const (
	OfferNewUser     OfferType = "new_user"
	OfferFlashDeal   OfferType = "flash_deal"
	OfferWeekend     OfferType = "weekend"
	OfferPartnership OfferType = "partnership"
)

func (t OfferType) Valid() bool {
	switch t {
	case OfferNewUser, OfferFlashDeal, OfferWeekend, OfferPartnership:
		return true
	}
	return false
}

type OfferStatus string

const (
	OfferActive    OfferStatus = "active"
	OfferExpired   OfferStatus = "expired"
	OfferScheduled OfferStatus = "scheduled"
)

func (s OfferStatus) Valid() bool {
	switch s {
	case OfferActive, OfferExpired, OfferScheduled:
		return true
	}
	return false
}

type Offer struct {
	gorm.Model
	Title      string      `json:"title"`
	Code       string      `json:"code" gorm:"uniqueIndex"`
	Discount   string      `json:"discount"`
	ValidUntil time.Time   `json:"validUntil"`
	Type       OfferType   `json:"type"`
	Status     OfferStatus `json:"status"`
	UsageCount int         `json:"usageCount"` // incremented by the ordering system, read-only here
}

// CurrentStatus derives the effective status at a point in time. An offer
// past its validity date is expired no matter what was stored; a scheduled
// offer stays scheduled until something activates it.
func (o *Offer) CurrentStatus(now time.Time) OfferStatus {
	if now.After(o.ValidUntil) {
		return OfferExpired
	}
	if o.Status == OfferScheduled {
		return OfferScheduled
	}
	return OfferActive
}
