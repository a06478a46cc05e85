// repository/menu_item_repository.go
package repository

import (
	"github.com/basiljilani/Foodo-admin/entity"
	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

// FindAll returns every menu item with its restaurant preloaded so search
// can match on the restaurant name.
func (r *MenuItemRepository) FindAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	if err := r.DB.Preload("Restaurant").Find(&items).Error; err != nil {
		return nil, remoteErr("list menu items", err)
	}
	return items, nil
}

func (r *MenuItemRepository) FindByRestaurant(restID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	if err := r.DB.Where("restaurant_id = ?", restID).Find(&items).Error; err != nil {
		return nil, remoteErr("list menu items", err)
	}
	return items, nil
}

func (r *MenuItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, remoteErr("find menu item", err)
	}
	return &item, nil
}

// Create fails fast, before any write, when the restaurant has no
// categories or the chosen category belongs to another restaurant.
func (r *MenuItemRepository) Create(item *entity.MenuItem) error {
	if err := r.checkReferences(item); err != nil {
		return err
	}
	if err := r.DB.Create(item).Error; err != nil {
		return remoteErr("create menu item", err)
	}
	return nil
}

func (r *MenuItemRepository) Update(item *entity.MenuItem) error {
	var existing entity.MenuItem
	if err := r.DB.First(&existing, item.ID).Error; err != nil {
		return remoteErr("find menu item", err)
	}
	if item.RestaurantID == 0 {
		item.RestaurantID = existing.RestaurantID
	}
	item.CreatedAt = existing.CreatedAt
	if err := r.checkReferences(item); err != nil {
		return err
	}
	if err := r.DB.Save(item).Error; err != nil {
		return remoteErr("update menu item", err)
	}
	return nil
}

func (r *MenuItemRepository) Delete(id uint) error {
	var existing entity.MenuItem
	if err := r.DB.First(&existing, id).Error; err != nil {
		return remoteErr("find menu item", err)
	}
	if err := r.DB.Delete(&entity.MenuItem{}, id).Error; err != nil {
		return remoteErr("delete menu item", err)
	}
	return nil
}

func (r *MenuItemRepository) checkReferences(item *entity.MenuItem) error {
	var n int64
	if err := r.DB.Model(&entity.Category{}).
		Where("restaurant_id = ?", item.RestaurantID).
		Count(&n).Error; err != nil {
		return remoteErr("count categories", err)
	}
	if n == 0 {
		return ErrMissingCategory
	}

	if item.CategoryID != 0 {
		var cat entity.Category
		if err := r.DB.First(&cat, item.CategoryID).Error; err != nil {
			return remoteErr("find category", err)
		}
		if cat.RestaurantID != item.RestaurantID {
			return ErrCategoryMismatch
		}
	}
	return nil
}
