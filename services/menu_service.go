// services/menu_service.go
package services

import (
	"sync"

	"github.com/basiljilani/Foodo-admin/entity"
	"github.com/basiljilani/Foodo-admin/repository"
)

// MenuService manages one restaurant's menu: its categories and items,
// mirrored in memory after each confirmed write.
type MenuService struct {
	RestaurantID uint
	Restaurants  *repository.RestaurantRepository
	Categories   *repository.CategoryRepository
	Items        *repository.MenuItemRepository

	mu     sync.Mutex
	cats   []entity.Category
	items  []entity.MenuItem
	loaded bool
}

func NewMenuService(restRepo *repository.RestaurantRepository, catRepo *repository.CategoryRepository, itemRepo *repository.MenuItemRepository, restaurantID uint) *MenuService {
	return &MenuService{
		RestaurantID: restaurantID,
		Restaurants:  restRepo,
		Categories:   catRepo,
		Items:        itemRepo,
	}
}

// Load fetches categories (display order) and items for the restaurant.
// A stale restaurant id surfaces ErrNotFound instead of an empty menu.
func (s *MenuService) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}
	if _, err := s.Restaurants.FindByID(s.RestaurantID); err != nil {
		return err
	}
	cats, err := s.Categories.FindByRestaurant(s.RestaurantID)
	if err != nil {
		return err
	}
	items, err := s.Items.FindByRestaurant(s.RestaurantID)
	if err != nil {
		return err
	}
	s.cats = cats
	s.items = items
	s.loaded = true
	return nil
}

func (s *MenuService) CategoryList() ([]entity.Category, error) {
	if err := s.Load(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Category(nil), s.cats...), nil
}

func (s *MenuService) ItemList() ([]entity.MenuItem, error) {
	if err := s.Load(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.MenuItem(nil), s.items...), nil
}

func (s *MenuService) AddCategory(cat *entity.Category) error {
	if err := s.Load(); err != nil {
		return err
	}
	cat.RestaurantID = s.RestaurantID
	if err := s.Categories.Create(cat); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cats = append(s.cats, *cat)
	return nil
}

func (s *MenuService) UpdateCategory(cat *entity.Category) error {
	if err := s.Load(); err != nil {
		return err
	}
	if err := s.Categories.Update(cat); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cats {
		if s.cats[i].ID == cat.ID {
			s.cats[i] = *cat
			break
		}
	}
	return nil
}

func (s *MenuService) DeleteCategory(id uint) error {
	if err := s.Load(); err != nil {
		return err
	}
	if err := s.Categories.Delete(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cats {
		if s.cats[i].ID == id {
			s.cats = append(s.cats[:i], s.cats[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MenuService) AddItem(item *entity.MenuItem) error {
	if err := s.Load(); err != nil {
		return err
	}
	item.RestaurantID = s.RestaurantID
	if err := s.Items.Create(item); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, *item)
	return nil
}

func (s *MenuService) UpdateItem(item *entity.MenuItem) error {
	if err := s.Load(); err != nil {
		return err
	}
	if err := s.Items.Update(item); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = *item
			break
		}
	}
	return nil
}

// DeleteItem removes the item remotely first; a stale id surfaces
// ErrNotFound and the local collection keeps the entry.
func (s *MenuService) DeleteItem(id uint) error {
	if err := s.Load(); err != nil {
		return err
	}
	if err := s.Items.Delete(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return nil
}
