// repository/offer_repository.go
package repository

import (
	"github.com/basiljilani/Foodo-admin/entity"
	"gorm.io/gorm"
)

type OfferRepository struct {
	DB *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{DB: db}
}

func (r *OfferRepository) FindAll() ([]entity.Offer, error) {
	var offers []entity.Offer
	if err := r.DB.Order("created_at DESC").Find(&offers).Error; err != nil {
		return nil, remoteErr("list offers", err)
	}
	return offers, nil
}

func (r *OfferRepository) FindByID(id uint) (*entity.Offer, error) {
	var offer entity.Offer
	if err := r.DB.First(&offer, id).Error; err != nil {
		return nil, remoteErr("find offer", err)
	}
	return &offer, nil
}

// Create rejects duplicate codes before writing. Two sessions racing the
// same code still fall through to the unique index.
func (r *OfferRepository) Create(offer *entity.Offer) error {
	var n int64
	if err := r.DB.Model(&entity.Offer{}).
		Where("code = ?", offer.Code).
		Count(&n).Error; err != nil {
		return remoteErr("check offer code", err)
	}
	if n > 0 {
		return ErrCodeTaken
	}
	if err := r.DB.Create(offer).Error; err != nil {
		return remoteErr("create offer", err)
	}
	return nil
}

func (r *OfferRepository) Update(offer *entity.Offer) error {
	var existing entity.Offer
	if err := r.DB.First(&existing, offer.ID).Error; err != nil {
		return remoteErr("find offer", err)
	}
	if offer.Code != existing.Code {
		var n int64
		if err := r.DB.Model(&entity.Offer{}).
			Where("code = ? AND id <> ?", offer.Code, offer.ID).
			Count(&n).Error; err != nil {
			return remoteErr("check offer code", err)
		}
		if n > 0 {
			return ErrCodeTaken
		}
	}
	offer.CreatedAt = existing.CreatedAt
	if err := r.DB.Save(offer).Error; err != nil {
		return remoteErr("update offer", err)
	}
	return nil
}

// Delete removes the offer for good. A soft-deleted row would keep the
// code pinned in the unique index, so deletion must free it.
func (r *OfferRepository) Delete(id uint) error {
	var existing entity.Offer
	if err := r.DB.First(&existing, id).Error; err != nil {
		return remoteErr("find offer", err)
	}
	if err := r.DB.Unscoped().Delete(&entity.Offer{}, id).Error; err != nil {
		return remoteErr("delete offer", err)
	}
	return nil
}
