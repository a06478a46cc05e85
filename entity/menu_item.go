package entity

import (
	"gorm.io/gorm"
)

// SpicyLevel is an ordinal scale used to render heat intensity.
type SpicyLevel string

const (
	SpicyNone     SpicyLevel = "none"
	SpicyMild     SpicyLevel = "mild"
	SpicyMedium   SpicyLevel = "medium"
	SpicyHot      SpicyLevel = "hot"
	SpicyExtraHot SpicyLevel = "extra hot"
)

var spicyRank = map[SpicyLevel]int{
	SpicyNone:     0,
	SpicyMild:     1,
	SpicyMedium:   2,
	SpicyHot:      3,
	SpicyExtraHot: 4,
}

func (l SpicyLevel) Valid() bool {
	_, ok := spicyRank[l]
	return ok
}

// Rank returns the position on the heat scale; unknown levels rank lowest.
func (l SpicyLevel) Rank() int {
	return spicyRank[l]
}

// Allergens is the fixed 8-item vocabulary a menu item may declare.
var Allergens = []string{
	"Milk", "Eggs", "Fish", "Shellfish", "Tree Nuts", "Peanuts", "Wheat", "Soy",
}

func IsAllergen(s string) bool {
	for _, a := range Allergens {
		if a == s {
			return true
		}
	}
	return false
}

type MenuItem struct {
	gorm.Model
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Price           float64    `json:"price"`
	Image           string     `json:"image"`
	IsAvailable     bool       `json:"isAvailable"`
	PreparationTime string     `json:"preparationTime"`
	Allergens       []string   `json:"allergens" gorm:"serializer:json"`
	SpicyLevel      SpicyLevel `json:"spicyLevel"`
	IsVegetarian    bool       `json:"isVegetarian"`
	IsVegan         bool       `json:"isVegan"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload when search needs the restaurant name
}
