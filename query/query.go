// Package query filters in-memory catalog collections. Pure functions, no
// I/O: filters compose with AND and never re-sort, so result order is the
// input order.
package query

import (
	"strconv"
	"strings"

	"github.com/basiljilani/Foodo-admin/entity"
)

// RestaurantFilter narrows a restaurant collection. Zero values disable a
// clause; Category "all" matches everything.
type RestaurantFilter struct {
	Text     string
	Category string
}

func Restaurants(list []entity.Restaurant, f RestaurantFilter) []entity.Restaurant {
	q := strings.ToLower(f.Text)
	var out []entity.Restaurant
	for _, r := range list {
		if q != "" && !matchRestaurant(&r, q) {
			continue
		}
		if f.Category != "" && f.Category != "all" && r.Category != f.Category {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchRestaurant(r *entity.Restaurant, q string) bool {
	if strings.Contains(strings.ToLower(r.Name), q) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// MenuItemFilter narrows a menu-item collection. Restaurant is the select
// value from the console: "all" or a numeric id as a string.
type MenuItemFilter struct {
	Text       string
	CategoryID uint
	Restaurant string
}

func MenuItems(list []entity.MenuItem, f MenuItemFilter) []entity.MenuItem {
	q := strings.ToLower(f.Text)
	var out []entity.MenuItem
	for _, m := range list {
		if q != "" && !matchMenuItem(&m, q) {
			continue
		}
		if f.CategoryID != 0 && m.CategoryID != f.CategoryID {
			continue
		}
		if f.Restaurant != "" && f.Restaurant != "all" &&
			strconv.FormatUint(uint64(m.RestaurantID), 10) != f.Restaurant {
			continue
		}
		out = append(out, m)
	}
	return out
}

func matchMenuItem(m *entity.MenuItem, q string) bool {
	if strings.Contains(strings.ToLower(m.Name), q) {
		return true
	}
	return strings.Contains(strings.ToLower(m.Restaurant.Name), q)
}
