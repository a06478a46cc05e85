package entity

import (
	"gorm.io/gorm"
)

// Category is a menu section belonging to exactly one restaurant.
type Category struct {
	gorm.Model
	Name         string `json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	MenuItems []MenuItem `json:"-"`
}
