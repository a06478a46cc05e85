package query

import (
	"testing"

	"github.com/basiljilani/Foodo-admin/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRestaurants() []entity.Restaurant {
	mk := func(id uint, name, category string, tags ...string) entity.Restaurant {
		r := entity.Restaurant{Name: name, Category: category, Tags: tags}
		r.ID = id
		return r
	}
	return []entity.Restaurant{
		mk(1, "Pizza Palace", "bbq", "pizza", "italian"),
		mk(2, "Sushi Master", "chaat", "sushi"),
		mk(3, "Karahi House", "karahi", "desi", "Spicy Food"),
	}
}

func sampleItems() []entity.MenuItem {
	mk := func(id, catID, restID uint, name, restName string) entity.MenuItem {
		m := entity.MenuItem{Name: name, CategoryID: catID, RestaurantID: restID}
		m.ID = id
		m.Restaurant.Name = restName
		return m
	}
	return []entity.MenuItem{
		mk(1, 2, 1, "Margherita Pizza", "Pizza Palace"),
		mk(2, 1, 2, "Spicy Tuna Roll", "Sushi Master"),
		mk(3, 2, 1, "Pepperoni Pizza", "Pizza Palace"),
	}
}

func TestEmptyFilterMatchesEverything(t *testing.T) {
	rests := Restaurants(sampleRestaurants(), RestaurantFilter{})
	assert.Len(t, rests, 3)

	items := MenuItems(sampleItems(), MenuItemFilter{})
	assert.Len(t, items, 3)
}

func TestTextMatchIsCaseInsensitive(t *testing.T) {
	rests := Restaurants(sampleRestaurants(), RestaurantFilter{Text: "PIZZA"})
	require.Len(t, rests, 1)
	assert.Equal(t, "Pizza Palace", rests[0].Name)

	// tag match, mixed case both sides
	rests = Restaurants(sampleRestaurants(), RestaurantFilter{Text: "spicy"})
	require.Len(t, rests, 1)
	assert.Equal(t, "Karahi House", rests[0].Name)
}

func TestMenuItemTextMatchesRestaurantName(t *testing.T) {
	items := MenuItems(sampleItems(), MenuItemFilter{Text: "sushi"})
	require.Len(t, items, 1)
	assert.Equal(t, "Spicy Tuna Roll", items[0].Name)
}

func TestFiltersComposeWithAND(t *testing.T) {
	items := MenuItems(sampleItems(), MenuItemFilter{
		Text:       "pizza",
		CategoryID: 2,
		Restaurant: "1",
	})
	assert.Len(t, items, 2)

	items = MenuItems(sampleItems(), MenuItemFilter{
		Text:       "pizza",
		CategoryID: 1, // no pizza in category 1
		Restaurant: "1",
	})
	assert.Empty(t, items)
}

func TestRestaurantSelectAllPasses(t *testing.T) {
	items := MenuItems(sampleItems(), MenuItemFilter{Restaurant: "all"})
	assert.Len(t, items, 3)

	rests := Restaurants(sampleRestaurants(), RestaurantFilter{Category: "all"})
	assert.Len(t, rests, 3)
}

func TestFilteredIsSubsetOfUnfiltered(t *testing.T) {
	all := MenuItems(sampleItems(), MenuItemFilter{})
	for _, q := range []string{"", "pizza", "roll", "zzz", "A"} {
		got := MenuItems(sampleItems(), MenuItemFilter{Text: q})
		assert.LessOrEqual(t, len(got), len(all), "query %q", q)
		for _, m := range got {
			assert.Contains(t, idsOf(all), m.ID, "query %q", q)
		}
	}
}

func TestFilteringPreservesInputOrder(t *testing.T) {
	items := MenuItems(sampleItems(), MenuItemFilter{Restaurant: "1"})
	require.Len(t, items, 2)
	assert.Equal(t, uint(1), items[0].ID)
	assert.Equal(t, uint(3), items[1].ID)
}

func idsOf(items []entity.MenuItem) []uint {
	out := make([]uint, len(items))
	for i, m := range items {
		out[i] = m.ID
	}
	return out
}
