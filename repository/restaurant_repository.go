// repository/restaurant_repository.go
package repository

import (
	"github.com/basiljilani/Foodo-admin/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// FindAll returns restaurants newest first.
func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	if err := r.DB.Order("created_at DESC").Find(&rests).Error; err != nil {
		return nil, remoteErr("list restaurants", err)
	}
	return rests, nil
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, remoteErr("find restaurant", err)
	}
	return &rest, nil
}

// Create persists a new restaurant and applies the rating default when the
// form left it unset.
func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	if rest.Rating == 0 {
		rest.Rating = entity.DefaultRating
	}
	if err := r.DB.Create(rest).Error; err != nil {
		return remoteErr("create restaurant", err)
	}
	return nil
}

func (r *RestaurantRepository) Update(rest *entity.Restaurant) error {
	var existing entity.Restaurant
	if err := r.DB.First(&existing, rest.ID).Error; err != nil {
		return remoteErr("find restaurant", err)
	}
	rest.CreatedAt = existing.CreatedAt
	if err := r.DB.Save(rest).Error; err != nil {
		return remoteErr("update restaurant", err)
	}
	return nil
}

// Delete removes the restaurant together with its categories and menu
// items. Categories and items never outlive their restaurant.
func (r *RestaurantRepository) Delete(id uint) error {
	var existing entity.Restaurant
	if err := r.DB.First(&existing, id).Error; err != nil {
		return remoteErr("find restaurant", err)
	}
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", id).Delete(&entity.MenuItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&entity.Category{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Restaurant{}, id).Error
	})
	if err != nil {
		return remoteErr("delete restaurant", err)
	}
	return nil
}
