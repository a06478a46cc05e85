// repository/category_repository.go
package repository

import (
	"github.com/basiljilani/Foodo-admin/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// FindByRestaurant returns the restaurant's categories in display order.
func (r *CategoryRepository) FindByRestaurant(restID uint) ([]entity.Category, error) {
	var cats []entity.Category
	if err := r.DB.
		Where("restaurant_id = ?", restID).
		Order("display_order ASC").
		Find(&cats).Error; err != nil {
		return nil, remoteErr("list categories", err)
	}
	return cats, nil
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, remoteErr("find category", err)
	}
	return &cat, nil
}

func (r *CategoryRepository) CountByRestaurant(restID uint) (int64, error) {
	var n int64
	if err := r.DB.Model(&entity.Category{}).
		Where("restaurant_id = ?", restID).
		Count(&n).Error; err != nil {
		return 0, remoteErr("count categories", err)
	}
	return n, nil
}

// Create requires a resolved restaurant id and verifies the parent exists
// before writing.
func (r *CategoryRepository) Create(cat *entity.Category) error {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, cat.RestaurantID).Error; err != nil {
		return remoteErr("find restaurant", err)
	}
	if err := r.DB.Create(cat).Error; err != nil {
		return remoteErr("create category", err)
	}
	return nil
}

func (r *CategoryRepository) Update(cat *entity.Category) error {
	var existing entity.Category
	if err := r.DB.First(&existing, cat.ID).Error; err != nil {
		return remoteErr("find category", err)
	}
	// parent restaurant never changes on update
	cat.RestaurantID = existing.RestaurantID
	cat.CreatedAt = existing.CreatedAt
	if err := r.DB.Save(cat).Error; err != nil {
		return remoteErr("update category", err)
	}
	return nil
}

// Delete removes the category and every item filed under it.
func (r *CategoryRepository) Delete(id uint) error {
	var existing entity.Category
	if err := r.DB.First(&existing, id).Error; err != nil {
		return remoteErr("find category", err)
	}
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&entity.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Category{}, id).Error
	})
	if err != nil {
		return remoteErr("delete category", err)
	}
	return nil
}
