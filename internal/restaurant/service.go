package restaurant

import (
	"errors"
	"regexp"

	"github.com/RiniPat/aaDinehub/internal/apperr"
)

// Slugs are URL-safe by construction: lowercase letters, digits, hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name        string
	Slug        string
	Address     string
	CuisineType string
	Description string
	CoverImage  string
}

// Create validates and persists a restaurant for the owner. The slug
// check here is read-then-write; the repository re-enforces uniqueness
// at insert so the race between two identical creations cannot write
// twice.
func (s *Service) Create(ownerID int, in CreateInput) (*Restaurant, error) {
	if in.Name == "" {
		return nil, apperr.Validation("name", "name is required")
	}
	if in.Slug == "" {
		return nil, apperr.Validation("slug", "slug is required")
	}
	if !slugPattern.MatchString(in.Slug) {
		return nil, apperr.Validation("slug", "slug may only contain lowercase letters, digits, and hyphens")
	}

	if _, err := s.repo.GetBySlug(in.Slug); err == nil {
		return nil, apperr.Conflict("Restaurant slug already exists")
	}

	restaurant := &Restaurant{
		UserID:      ownerID,
		Name:        in.Name,
		Slug:        in.Slug,
		Address:     in.Address,
		CuisineType: in.CuisineType,
		Description: in.Description,
		CoverImage:  in.CoverImage,
	}

	if err := s.repo.Create(restaurant); err != nil {
		if errors.Is(err, ErrDuplicateSlug) {
			return nil, apperr.Conflict("Restaurant slug already exists")
		}
		return nil, err
	}

	return restaurant, nil
}

func (s *Service) ListByOwner(ownerID int) ([]*Restaurant, error) {
	return s.repo.ListByOwner(ownerID)
}

func (s *Service) GetByID(id int) (*Restaurant, error) {
	restaurant, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperr.NotFound("Restaurant not found")
	}
	return restaurant, nil
}

func (s *Service) GetBySlug(slug string) (*Restaurant, error) {
	restaurant, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, apperr.NotFound("Restaurant not found")
	}
	return restaurant, nil
}

// SetCoverImage records an uploaded cover image URL. Only the owner
// may change it.
func (s *Service) SetCoverImage(id, ownerID int, url string) error {
	restaurant, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if restaurant.UserID != ownerID {
		return apperr.Auth("Unauthorized")
	}
	return s.repo.SetCoverImage(id, url)
}

// DefaultRestaurant picks "the" restaurant shown on the dashboard:
// the lowest-id one the user owns.
func DefaultRestaurant(restaurants []*Restaurant) *Restaurant {
	var def *Restaurant
	for _, r := range restaurants {
		if def == nil || r.ID < def.ID {
			def = r
		}
	}
	return def
}
