package entity

import (
	"gorm.io/gorm"
)

// DefaultRating is applied when a restaurant is created without one.
const DefaultRating = 4.5

// RestaurantCategories is the fixed taxonomy a restaurant can be tagged with.
var RestaurantCategories = []string{
	"biryani", "karahi", "bbq", "nihari", "paratha", "chaat", "dessert",
}

// PriceRanges lists the four ordinal price tiers.
var PriceRanges = []string{"$", "$$", "$$$", "$$$$"}

func IsRestaurantCategory(s string) bool {
	for _, c := range RestaurantCategories {
		if c == s {
			return true
		}
	}
	return false
}

func IsPriceRange(s string) bool {
	for _, p := range PriceRanges {
		if p == s {
			return true
		}
	}
	return false
}

type Restaurant struct {
	gorm.Model
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Image         string   `json:"image"` // public URL, empty until an upload is committed
	OpeningHours  string   `json:"openingHours"`
	Category      string   `json:"category"`
	PriceRange    string   `json:"priceRange"`
	Tags          []string `json:"tags" gorm:"serializer:json"`
	Rating        float64  `json:"rating"`
	Featured      bool     `json:"featured"`
	Distance      string   `json:"distance"`
	EstimatedTime string   `json:"estimatedTime"`

	// preload only when a detail view needs them
	Categories []Category `json:"-"`
	MenuItems  []MenuItem `json:"-"`
}
