package restaurant

import (
	"errors"
	"testing"

	"github.com/RiniPat/aaDinehub/internal/apperr"
)

func TestCreate_Success(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	restaurant, err := service.Create(1, CreateInput{Name: "Bistro", Slug: "bistro"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restaurant.ID == 0 {
		t.Error("expected ID to be assigned")
	}
	if restaurant.UserID != 1 {
		t.Errorf("expected owner 1, got %d", restaurant.UserID)
	}
}

func TestCreate_MissingFields(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	_, err := service.Create(1, CreateInput{Slug: "bistro"})
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Field != "name" {
		t.Fatalf("expected validation error on name, got %v", err)
	}

	_, err = service.Create(1, CreateInput{Name: "Bistro"})
	if !errors.As(err, &appErr) || appErr.Field != "slug" {
		t.Fatalf("expected validation error on slug, got %v", err)
	}
}

func TestCreate_SlugMustBeURLSafe(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	for _, slug := range []string{"Bistro", "my slug", "café", "slash/slug"} {
		_, err := service.Create(1, CreateInput{Name: "Bistro", Slug: slug})
		var appErr *apperr.Error
		if !errors.As(err, &appErr) || appErr.Kind != apperr.KindValidation {
			t.Errorf("expected validation error for slug %q, got %v", slug, err)
		}
	}

	if _, err := service.Create(1, CreateInput{Name: "Bistro", Slug: "bistro-42"}); err != nil {
		t.Errorf("expected slug 'bistro-42' to be accepted, got %v", err)
	}
}

func TestCreate_DuplicateSlugWritesNothing(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	if _, err := service.Create(1, CreateInput{Name: "Bistro", Slug: "bistro"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := service.Create(2, CreateInput{Name: "Copycat", Slug: "bistro"})
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}

	// the losing write must not exist under any owner
	others, _ := repo.ListByOwner(2)
	if len(others) != 0 {
		t.Fatalf("expected no record for the rejected creation, got %d", len(others))
	}
}

func TestListByOwner_OwnedOnly(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	service.Create(1, CreateInput{Name: "A", Slug: "a"})
	service.Create(1, CreateInput{Name: "B", Slug: "b"})
	service.Create(2, CreateInput{Name: "C", Slug: "c"})

	mine, err := service.ListByOwner(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 restaurants, got %d", len(mine))
	}
}

func TestGetBySlug_NotFound(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	_, err := service.GetBySlug("does-not-exist")
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDefaultRestaurant_LowestID(t *testing.T) {
	a := &Restaurant{ID: 3}
	b := &Restaurant{ID: 1}
	c := &Restaurant{ID: 2}

	if got := DefaultRestaurant([]*Restaurant{a, b, c}); got != b {
		t.Fatalf("expected restaurant 1, got %d", got.ID)
	}
	if got := DefaultRestaurant(nil); got != nil {
		t.Fatal("expected nil for empty list")
	}
}

func TestSetCoverImage_OwnerOnly(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	r, _ := service.Create(1, CreateInput{Name: "Bistro", Slug: "bistro"})

	if err := service.SetCoverImage(r.ID, 2, "https://img/x.png"); err == nil {
		t.Fatal("expected error for non-owner")
	}
	if err := service.SetCoverImage(r.ID, 1, "https://img/x.png"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := service.GetByID(r.ID)
	if got.CoverImage != "https://img/x.png" {
		t.Fatalf("cover image not saved, got %q", got.CoverImage)
	}
}
