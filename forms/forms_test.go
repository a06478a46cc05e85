package forms

import (
	"context"
	"testing"

	"github.com/basiljilani/Foodo-admin/entity"
	"github.com/basiljilani/Foodo-admin/uploads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	calls int
	fail  error
}

func (f *fakeStore) Upload(_ context.Context, _, _, _ string, _ []byte) error {
	f.calls++
	return f.fail
}

func (f *fakeStore) PublicURL(bucket, key string) string {
	return "https://cdn.test/" + bucket + "/" + key
}

func testUploader(store *fakeStore) *uploads.Uploader {
	return uploads.NewUploader(store, "restaurant-images")
}

func TestRestaurantFormFirstErrorWins(t *testing.T) {
	f := NewRestaurantForm(testUploader(&fakeStore{}))

	_, err := f.Submit(context.Background())
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please fill in all required fields", vErr.Reason)

	f.Name = "Kebabish"
	f.Description = "Charcoal grills"
	_, err = f.Submit(context.Background())
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please upload an image", vErr.Reason)
}

func TestRestaurantFormNoImageNoStoreCall(t *testing.T) {
	store := &fakeStore{}
	f := NewRestaurantForm(testUploader(store))
	f.Name = "Kebabish"

	_, err := f.Submit(context.Background())

	assert.Error(t, err)
	assert.Zero(t, store.calls, "validation failure must happen before any network call")
}

func TestRestaurantFormCommitsStagedImageOnSubmit(t *testing.T) {
	store := &fakeStore{}
	f := NewRestaurantForm(testUploader(store))
	f.Name = "Kebabish"
	f.Description = "Charcoal grills"
	require.NoError(t, f.StageImage("front.jpg", "image/jpeg", []byte{1}))
	assert.Zero(t, store.calls, "staging must not upload")

	rest, err := f.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, store.calls)
	assert.Contains(t, rest.Image, "https://cdn.test/restaurant-images/")
}

func TestRestaurantFormCancelDiscardsPreview(t *testing.T) {
	store := &fakeStore{}
	f := NewRestaurantForm(testUploader(store))
	require.NoError(t, f.StageImage("front.jpg", "image/jpeg", []byte{1}))

	// closing the form = dropping it; nothing ever reached the store
	f.ClearImage()
	assert.Zero(t, store.calls)
	assert.Empty(t, f.PreviewURL())
}

func TestRestaurantFormRatingFallback(t *testing.T) {
	f := NewRestaurantForm(testUploader(&fakeStore{}))

	f.SetRating("not a number")
	assert.Nil(t, f.Rating, "invalid rating stays unset so the store default applies")

	f.SetRating("3.7")
	require.NotNil(t, f.Rating)
	assert.Equal(t, 3.7, *f.Rating)
}

func TestRestaurantFormRejectsOutOfRangeRating(t *testing.T) {
	f := NewRestaurantForm(testUploader(&fakeStore{}))
	f.Name = "Kebabish"
	f.Description = "Charcoal grills"
	f.imageURL = "https://cdn.test/existing.jpg"
	f.SetRating("7")

	_, err := f.Submit(context.Background())
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Rating must be between 0 and 5", vErr.Reason)
}

func TestRestaurantFormTagToggleIdempotent(t *testing.T) {
	f := NewRestaurantForm(testUploader(&fakeStore{}))

	f.ToggleTag("halal")
	f.ToggleTag("family")
	assert.Equal(t, []string{"halal", "family"}, f.Tags, "insertion order kept")

	f.ToggleTag("halal")
	f.ToggleTag("halal")
	assert.Equal(t, []string{"family", "halal"}, f.Tags)
}

func TestEditRestaurantFormKeepsPersistedImage(t *testing.T) {
	store := &fakeStore{}
	rest := &entity.Restaurant{
		Name:        "Kebabish",
		Description: "Charcoal grills",
		Image:       "https://cdn.test/existing.jpg",
		Rating:      4.2,
	}
	rest.ID = 7

	f := EditRestaurantForm(testUploader(store), rest)
	out, err := f.Submit(context.Background())
	require.NoError(t, err)

	assert.Zero(t, store.calls, "no staged image, no upload")
	assert.Equal(t, "https://cdn.test/existing.jpg", out.Image)
	assert.Equal(t, uint(7), out.ID)
	assert.Equal(t, 4.2, out.Rating)
}

func TestMenuItemFormValidation(t *testing.T) {
	f := NewMenuItemForm(testUploader(&fakeStore{}), 1)

	_, err := f.Submit(context.Background())
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Menu item name is required", vErr.Reason)

	f.Name = "Chicken Karahi"
	f.SetPrice("0")
	_, err = f.Submit(context.Background())
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Price must be greater than zero", vErr.Reason)

	f.SetPrice("garbage")
	_, err = f.Submit(context.Background())
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Price must be greater than zero", vErr.Reason, "unparseable price coerces to 0")
}

func TestMenuItemFormDefaults(t *testing.T) {
	f := NewMenuItemForm(testUploader(&fakeStore{}), 1)

	assert.True(t, f.IsAvailable)
	assert.Equal(t, entity.SpicyNone, f.SpicyLevel)
	assert.Empty(t, f.Allergens)
}

func TestMenuItemFormAllergenToggleIdempotent(t *testing.T) {
	f := NewMenuItemForm(testUploader(&fakeStore{}), 1)

	f.ToggleAllergen("Milk")
	f.ToggleAllergen("Wheat")
	before := append([]string(nil), f.Allergens...)

	f.ToggleAllergen("Peanuts")
	f.ToggleAllergen("Peanuts")
	assert.Equal(t, before, f.Allergens, "double toggle restores the set")
}

func TestMenuItemFormIgnoresUnknownAllergen(t *testing.T) {
	f := NewMenuItemForm(testUploader(&fakeStore{}), 1)

	f.ToggleAllergen("Gluten")
	assert.Empty(t, f.Allergens)
}

func TestMenuItemFormPriceExact(t *testing.T) {
	f := NewMenuItemForm(testUploader(&fakeStore{}), 1)
	f.Name = "Chicken Karahi"
	f.SetPrice("12.99")

	item, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12.99, item.Price, "two-decimal price survives unchanged")
}

func TestCategoryFormRequiresName(t *testing.T) {
	f := NewCategoryForm(3)
	f.SetDisplayOrder("1")

	_, err := f.Submit(context.Background())
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Category name is required", vErr.Reason)

	f.Name = "Starters"
	cat, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint(3), cat.RestaurantID)
	assert.Equal(t, 1, cat.DisplayOrder)
}

func TestCategoryFormOrderFallback(t *testing.T) {
	f := NewCategoryForm(3)
	f.SetDisplayOrder("first")
	assert.Zero(t, f.DisplayOrder)
}

func TestOfferFormValidation(t *testing.T) {
	f := NewOfferForm()

	_, err := f.Submit(context.Background())
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Offer title is required", vErr.Reason)

	f.Title = "Welcome Discount"
	f.Code = "WELCOME50"
	f.Status = entity.OfferStatus("bogus")
	_, err = f.Submit(context.Background())
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Unknown offer status", vErr.Reason)

	f.Status = entity.OfferActive
	f.ValidUntil = "soon"
	_, err = f.Submit(context.Background())
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Valid until must be a date (YYYY-MM-DD)", vErr.Reason)

	f.ValidUntil = "2026-03-31"
	offer, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.OfferNewUser, offer.Type)
	assert.Equal(t, 2026, offer.ValidUntil.Year())
}

func TestSubmitLatchRejectsReentry(t *testing.T) {
	f := NewCategoryForm(1)
	f.Name = "Starters"
	require.NoError(t, f.begin())

	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	f.end()
	_, err = f.Submit(context.Background())
	assert.NoError(t, err)
}

func TestUploadFailureAbortsSubmit(t *testing.T) {
	store := &fakeStore{fail: assert.AnError}
	f := NewMenuItemForm(testUploader(store), 1)
	f.Name = "Chicken Karahi"
	f.SetPrice("9.50")
	require.NoError(t, f.StageImage("karahi.jpg", "image/jpeg", []byte{1}))

	_, err := f.Submit(context.Background())

	var upErr *uploads.UploadError
	assert.ErrorAs(t, err, &upErr)
	assert.False(t, f.submitting, "latch released after a failed submit")
}
