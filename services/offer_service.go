// services/offer_service.go
package services

import (
	"sync"
	"time"

	"github.com/basiljilani/Foodo-admin/entity"
	"github.com/basiljilani/Foodo-admin/repository"
)

// copiedIndicatorTTL is how long the "copied" badge stays on after a code
// is copied.
const copiedIndicatorTTL = 2 * time.Second

// OfferService manages promotional offers and the transient copied-code
// indicator from the offers view.
type OfferService struct {
	Repo *repository.OfferRepository

	mu     sync.Mutex
	offers []entity.Offer
	loaded bool

	copied     string
	copiedTime time.Time
	now        func() time.Time
}

func NewOfferService(repo *repository.OfferRepository) *OfferService {
	return &OfferService{Repo: repo, now: time.Now}
}

// List returns offers with their status recomputed: anything past its
// validity date reads as expired regardless of what was stored.
func (s *OfferService) List() ([]entity.Offer, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	out := append([]entity.Offer(nil), s.offers...)
	for i := range out {
		out[i].Status = out[i].CurrentStatus(now)
	}
	return out, nil
}

func (s *OfferService) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}
	offers, err := s.Repo.FindAll()
	if err != nil {
		return err
	}
	s.offers = offers
	s.loaded = true
	return nil
}

func (s *OfferService) Create(offer *entity.Offer) error {
	if err := s.load(); err != nil {
		return err
	}
	if err := s.Repo.Create(offer); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers = append([]entity.Offer{*offer}, s.offers...)
	return nil
}

func (s *OfferService) Update(offer *entity.Offer) error {
	if err := s.load(); err != nil {
		return err
	}
	if err := s.Repo.Update(offer); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.offers {
		if s.offers[i].ID == offer.ID {
			s.offers[i] = *offer
			break
		}
	}
	return nil
}

func (s *OfferService) Delete(id uint) error {
	if err := s.load(); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.offers {
		if s.offers[i].ID == id {
			s.offers = append(s.offers[:i], s.offers[i+1:]...)
			break
		}
	}
	return nil
}

// CopyCode records which code the operator copied. The indicator expires
// on its own after copiedIndicatorTTL.
func (s *OfferService) CopyCode(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.copied = code
	s.copiedTime = s.now()
}

// CopiedCode returns the active indicator, or "" once it has expired.
func (s *OfferService) CopiedCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.copied == "" || s.now().Sub(s.copiedTime) > copiedIndicatorTTL {
		return ""
	}
	return s.copied
}
