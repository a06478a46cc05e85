package configs

import (
	"time"

	"github.com/basiljilani/Foodo-admin/entity"
	"gorm.io/gorm"
)

// SeedData is an injectable dataset. Production never bakes one in; the
// sample below is only applied when SEED_SAMPLE_DATA=true, and tests build
// their own.
type SeedData struct {
	Restaurants []entity.Restaurant
	Categories  []entity.Category
	MenuItems   []entity.MenuItem
	Offers      []entity.Offer
}

// SeedCatalog inserts the dataset, skipping rows that already exist.
// Categories and menu items resolve their restaurant by name so the
// dataset stays readable.
func SeedCatalog(db *gorm.DB, data SeedData) error {
	ids := map[string]uint{}
	for i := range data.Restaurants {
		r := &data.Restaurants[i]
		if err := db.Where(&entity.Restaurant{Name: r.Name}).FirstOrCreate(r).Error; err != nil {
			return err
		}
		ids[r.Name] = r.ID
	}

	catIDs := map[string]uint{}
	for i := range data.Categories {
		c := &data.Categories[i]
		if c.RestaurantID == 0 && c.Restaurant.Name != "" {
			c.RestaurantID = ids[c.Restaurant.Name]
			c.Restaurant = entity.Restaurant{}
		}
		if err := db.Where(&entity.Category{Name: c.Name, RestaurantID: c.RestaurantID}).FirstOrCreate(c).Error; err != nil {
			return err
		}
		catIDs[c.Name] = c.ID
	}

	for i := range data.MenuItems {
		m := &data.MenuItems[i]
		if m.RestaurantID == 0 && m.Restaurant.Name != "" {
			m.RestaurantID = ids[m.Restaurant.Name]
			m.Restaurant = entity.Restaurant{}
		}
		if m.CategoryID == 0 && m.Category.Name != "" {
			m.CategoryID = catIDs[m.Category.Name]
			m.Category = entity.Category{}
		}
		if err := db.Where(&entity.MenuItem{Name: m.Name, RestaurantID: m.RestaurantID}).FirstOrCreate(m).Error; err != nil {
			return err
		}
	}

	for i := range data.Offers {
		o := &data.Offers[i]
		if err := db.Where(&entity.Offer{Code: o.Code}).FirstOrCreate(o).Error; err != nil {
			return err
		}
	}
	return nil
}

// SampleData mirrors the demo catalog used while the console had no real
// backend.
func SampleData() SeedData {
	return SeedData{
		Restaurants: []entity.Restaurant{
			{
				Name:          "Pizza Palace",
				Description:   "Stone-oven pizzas and fresh pasta",
				Image:         "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3",
				OpeningHours:  "11:00 - 23:00",
				Category:      "bbq",
				PriceRange:    "$$",
				Tags:          []string{"pizza", "italian"},
				Rating:        entity.DefaultRating,
				Featured:      true,
				Distance:      "1.2 km",
				EstimatedTime: "25-35 mins",
			},
			{
				Name:          "Sushi Master",
				Description:   "Fresh sushi and sashimi daily",
				Image:         "https://images.unsplash.com/photo-1579871494447-9811cf80d66c",
				OpeningHours:  "12:00 - 22:00",
				Category:      "chaat",
				PriceRange:    "$$$",
				Tags:          []string{"sushi", "japanese"},
				Rating:        4.8,
				Distance:      "2.4 km",
				EstimatedTime: "30-40 mins",
			},
		},
		Categories: []entity.Category{
			{Name: "Appetizers", Description: "Start your meal right", DisplayOrder: 1, Restaurant: entity.Restaurant{Name: "Pizza Palace"}},
			{Name: "Main Course", Description: "Hearty main dishes", DisplayOrder: 2, Restaurant: entity.Restaurant{Name: "Pizza Palace"}},
			{Name: "Desserts", Description: "Sweet endings", DisplayOrder: 3, Restaurant: entity.Restaurant{Name: "Pizza Palace"}},
			{Name: "Sashimi & Rolls", Description: "Fresh from the counter", DisplayOrder: 1, Restaurant: entity.Restaurant{Name: "Sushi Master"}},
			{Name: "Beverages", Description: "Refreshing drinks", DisplayOrder: 2, Restaurant: entity.Restaurant{Name: "Sushi Master"}},
		},
		MenuItems: []entity.MenuItem{
			{
				Name:            "Margherita Pizza",
				Description:     "Fresh tomatoes, mozzarella, basil",
				Price:           12.99,
				Image:           "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3",
				IsAvailable:     true,
				PreparationTime: "20-25 mins",
				Allergens:       []string{"Milk", "Wheat"},
				SpicyLevel:      entity.SpicyNone,
				IsVegetarian:    true,
				Restaurant:      entity.Restaurant{Name: "Pizza Palace"},
				Category:        entity.Category{Name: "Main Course"},
			},
			{
				Name:            "Spicy Tuna Roll",
				Description:     "Fresh tuna, spicy mayo, cucumber",
				Price:           14.99,
				Image:           "https://images.unsplash.com/photo-1579871494447-9811cf80d66c",
				IsAvailable:     true,
				PreparationTime: "15-20 mins",
				Allergens:       []string{"Fish", "Eggs"},
				SpicyLevel:      entity.SpicyMedium,
				Restaurant:      entity.Restaurant{Name: "Sushi Master"},
				Category:        entity.Category{Name: "Sashimi & Rolls"},
			},
		},
		Offers: []entity.Offer{
			{
				Title:      "Welcome Discount",
				Code:       "WELCOME50",
				Discount:   "50% OFF",
				ValidUntil: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
				Type:       entity.OfferNewUser,
				Status:     entity.OfferActive,
				UsageCount: 156,
			},
			{
				Title:      "Weekend Special",
				Code:       "WEEKEND25",
				Discount:   "25% OFF",
				ValidUntil: time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC),
				Type:       entity.OfferWeekend,
				Status:     entity.OfferScheduled,
			},
		},
	}
}
