package forms

import (
	"context"

	"github.com/basiljilani/Foodo-admin/entity"
)

type CategoryForm struct {
	session
	Name         string
	Description  string
	DisplayOrder int
	RestaurantID uint

	id uint
}

func NewCategoryForm(restaurantID uint) *CategoryForm {
	return &CategoryForm{RestaurantID: restaurantID}
}

func EditCategoryForm(c *entity.Category) *CategoryForm {
	return &CategoryForm{
		Name:         c.Name,
		Description:  c.Description,
		DisplayOrder: c.DisplayOrder,
		RestaurantID: c.RestaurantID,
		id:           c.ID,
	}
}

func (f *CategoryForm) SetDisplayOrder(input string) {
	f.DisplayOrder = ParseOrder(input)
}

func (f *CategoryForm) validate() error {
	if f.Name == "" {
		return invalid("Category name is required")
	}
	return nil
}

func (f *CategoryForm) Submit(_ context.Context) (*entity.Category, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.end()

	if err := f.validate(); err != nil {
		return nil, err
	}
	cat := &entity.Category{
		Name:         f.Name,
		Description:  f.Description,
		DisplayOrder: f.DisplayOrder,
		RestaurantID: f.RestaurantID,
	}
	cat.ID = f.id
	return cat, nil
}
