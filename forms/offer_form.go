package forms

import (
	"context"
	"time"

	"github.com/basiljilani/Foodo-admin/entity"
)

type OfferForm struct {
	session
	Title      string
	Code       string
	Discount   string
	ValidUntil string // YYYY-MM-DD, the date-input wire format
	Type       entity.OfferType
	Status     entity.OfferStatus

	id uint
}

func NewOfferForm() *OfferForm {
	return &OfferForm{Type: entity.OfferNewUser, Status: entity.OfferActive}
}

func EditOfferForm(o *entity.Offer) *OfferForm {
	return &OfferForm{
		Title:      o.Title,
		Code:       o.Code,
		Discount:   o.Discount,
		ValidUntil: o.ValidUntil.Format("2006-01-02"),
		Type:       o.Type,
		Status:     o.Status,
		id:         o.ID,
	}
}

func (f *OfferForm) validate() error {
	if f.Title == "" {
		return invalid("Offer title is required")
	}
	if f.Code == "" {
		return invalid("Offer code is required")
	}
	if !f.Type.Valid() {
		return invalid("Unknown offer type")
	}
	if !f.Status.Valid() {
		return invalid("Unknown offer status")
	}
	if _, err := time.Parse("2006-01-02", f.ValidUntil); err != nil {
		return invalid("Valid until must be a date (YYYY-MM-DD)")
	}
	return nil
}

func (f *OfferForm) Submit(_ context.Context) (*entity.Offer, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.end()

	if err := f.validate(); err != nil {
		return nil, err
	}
	until, _ := time.Parse("2006-01-02", f.ValidUntil)

	offer := &entity.Offer{
		Title:      f.Title,
		Code:       f.Code,
		Discount:   f.Discount,
		ValidUntil: until,
		Type:       f.Type,
		Status:     f.Status,
	}
	offer.ID = f.id
	return offer, nil
}
