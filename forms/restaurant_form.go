package forms

import (
	"context"

	"github.com/basiljilani/Foodo-admin/entity"
	"github.com/basiljilani/Foodo-admin/uploads"
)

type RestaurantForm struct {
	session
	Name          string
	Description   string
	OpeningHours  string
	Category      string
	PriceRange    string
	Tags          []string
	Rating        *float64 // nil lets the repository apply its default
	Featured      bool
	Distance      string
	EstimatedTime string

	id uint
}

func NewRestaurantForm(u *uploads.Uploader) *RestaurantForm {
	return &RestaurantForm{session: session{uploader: u}}
}

// EditRestaurantForm re-stages a copy of a persisted restaurant.
func EditRestaurantForm(u *uploads.Uploader, r *entity.Restaurant) *RestaurantForm {
	rating := r.Rating
	return &RestaurantForm{
		session:       session{uploader: u, imageURL: r.Image},
		Name:          r.Name,
		Description:   r.Description,
		OpeningHours:  r.OpeningHours,
		Category:      r.Category,
		PriceRange:    r.PriceRange,
		Tags:          append([]string(nil), r.Tags...),
		Rating:        &rating,
		Featured:      r.Featured,
		Distance:      r.Distance,
		EstimatedTime: r.EstimatedTime,
		id:            r.ID,
	}
}

// ToggleTag selects a tag, or deselects it when already selected.
func (f *RestaurantForm) ToggleTag(tag string) {
	f.Tags = toggle(f.Tags, tag)
}

func (f *RestaurantForm) SetRating(input string) {
	f.Rating = ParseRating(input)
}

func (f *RestaurantForm) validate() error {
	if f.Name == "" || f.Description == "" {
		return invalid("Please fill in all required fields")
	}
	if !f.hasImage() {
		return invalid("Please upload an image")
	}
	if f.Category != "" && !entity.IsRestaurantCategory(f.Category) {
		return invalid("Unknown restaurant category")
	}
	if f.PriceRange != "" && !entity.IsPriceRange(f.PriceRange) {
		return invalid("Unknown price range")
	}
	if f.Rating != nil && (*f.Rating < 0 || *f.Rating > 5) {
		return invalid("Rating must be between 0 and 5")
	}
	return nil
}

// Submit validates, commits any staged image, and builds the payload. The
// image commit always finishes before the payload exists; re-entrant calls
// are rejected while it runs.
func (f *RestaurantForm) Submit(ctx context.Context) (*entity.Restaurant, error) {
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

	rest := &entity.Restaurant{
		Name:          f.Name,
		Description:   f.Description,
		Image:         img,
		OpeningHours:  f.OpeningHours,
		Category:      f.Category,
		PriceRange:    f.PriceRange,
		Tags:          f.Tags,
		Featured:      f.Featured,
		Distance:      f.Distance,
		EstimatedTime: f.EstimatedTime,
	}
	if f.Rating != nil {
		rest.Rating = *f.Rating
	}
	rest.ID = f.id
	return rest, nil
}
