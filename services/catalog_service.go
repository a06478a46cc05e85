// services/catalog_service.go
package services

import (
	"sync"

	"github.com/basiljilani/Foodo-admin/entity"
	"github.com/basiljilani/Foodo-admin/query"
	"github.com/basiljilani/Foodo-admin/repository"
)

// CatalogService owns the in-memory restaurant collection backing the
// console's list view. Every confirmed write patches the collection in
// place instead of refetching; a failed write leaves it untouched.
type CatalogService struct {
	Repo *repository.RestaurantRepository

	mu          sync.Mutex
	restaurants []entity.Restaurant
	loaded      bool
}

func NewCatalogService(repo *repository.RestaurantRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

// Load fetches the collection once; later calls reuse the local copy.
func (s *CatalogService) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}
	rests, err := s.Repo.FindAll()
	if err != nil {
		return err
	}
	s.restaurants = rests
	s.loaded = true
	return nil
}

// List returns the filtered collection, newest first (load order).
func (s *CatalogService) List(f query.RestaurantFilter) ([]entity.Restaurant, error) {
	if err := s.Load(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return query.Restaurants(s.restaurants, f), nil
}

func (s *CatalogService) Get(id uint) (*entity.Restaurant, error) {
	return s.Repo.FindByID(id)
}

func (s *CatalogService) Create(rest *entity.Restaurant) error {
	if err := s.Load(); err != nil {
		return err
	}
	if err := s.Repo.Create(rest); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// newest first
	s.restaurants = append([]entity.Restaurant{*rest}, s.restaurants...)
	return nil
}

func (s *CatalogService) Update(rest *entity.Restaurant) error {
	if err := s.Load(); err != nil {
		return err
	}
	if err := s.Repo.Update(rest); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.restaurants {
		if s.restaurants[i].ID == rest.ID {
			s.restaurants[i] = *rest
			break
		}
	}
	return nil
}

func (s *CatalogService) Delete(id uint) error {
	if err := s.Load(); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.restaurants {
		if s.restaurants[i].ID == id {
			s.restaurants = append(s.restaurants[:i], s.restaurants[i+1:]...)
			break
		}
	}
	return nil
}
