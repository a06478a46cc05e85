package forms

import (
	"context"

	"github.com/basiljilani/Foodo-admin/entity"
	"github.com/basiljilani/Foodo-admin/uploads"
)

type MenuItemForm struct {
	session
	Name            string
	Description     string
	Price           float64
	CategoryID      uint
	RestaurantID    uint
	IsAvailable     bool
	PreparationTime string
	Allergens       []string
	SpicyLevel      entity.SpicyLevel
	IsVegetarian    bool
	IsVegan         bool

	id uint
}

func NewMenuItemForm(u *uploads.Uploader, restaurantID uint) *MenuItemForm {
	return &MenuItemForm{
		session:      session{uploader: u},
		RestaurantID: restaurantID,
		IsAvailable:  true,
		SpicyLevel:   entity.SpicyNone,
	}
}

func EditMenuItemForm(u *uploads.Uploader, m *entity.MenuItem) *MenuItemForm {
	return &MenuItemForm{
		session:         session{uploader: u, imageURL: m.Image},
		Name:            m.Name,
		Description:     m.Description,
		Price:           m.Price,
		CategoryID:      m.CategoryID,
		RestaurantID:    m.RestaurantID,
		IsAvailable:     m.IsAvailable,
		PreparationTime: m.PreparationTime,
		Allergens:       append([]string(nil), m.Allergens...),
		SpicyLevel:      m.SpicyLevel,
		IsVegetarian:    m.IsVegetarian,
		IsVegan:         m.IsVegan,
		id:              m.ID,
	}
}

// ToggleAllergen selects an allergen, or deselects it when already
// selected. Strings outside the fixed vocabulary are ignored, keeping the
// staged set a subset of it.
func (f *MenuItemForm) ToggleAllergen(a string) {
	if !entity.IsAllergen(a) {
		return
	}
	f.Allergens = toggle(f.Allergens, a)
}

func (f *MenuItemForm) SetPrice(input string) {
	f.Price = ParseDecimal(input)
}

func (f *MenuItemForm) validate() error {
	if f.Name == "" {
		return invalid("Menu item name is required")
	}
	if f.Price <= 0 {
		return invalid("Price must be greater than zero")
	}
	if !f.SpicyLevel.Valid() {
		return invalid("Unknown spicy level")
	}
	return nil
}

func (f *MenuItemForm) Submit(ctx context.Context) (*entity.MenuItem, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.end()

	if err := f.validate(); err != nil {
		return nil, err
	}
	img, err := f.commitImage(ctx)
	if err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		Name:            f.Name,
		Description:     f.Description,
		Price:           f.Price,
		Image:           img,
		CategoryID:      f.CategoryID,
		RestaurantID:    f.RestaurantID,
		IsAvailable:     f.IsAvailable,
		PreparationTime: f.PreparationTime,
		Allergens:       f.Allergens,
		SpicyLevel:      f.SpicyLevel,
		IsVegetarian:    f.IsVegetarian,
		IsVegan:         f.IsVegan,
	}
	item.ID = f.id
	return item, nil
}
