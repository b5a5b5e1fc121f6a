package services

import (
	"context"
	"fmt"
	"testing"

	"eventmap/internal/models"
)

type fakeCategoryRepo struct {
	categories []models.Category
	listErr    error
}

func (f *fakeCategoryRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.categories, nil
}

func (f *fakeCategoryRepo) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	cat := models.Category{ID: fmt.Sprintf("c%d", len(f.categories)+1), Name: name}
	f.categories = append(f.categories, cat)
	return &cat, nil
}

func (f *fakeCategoryRepo) UpdateCategory(ctx context.Context, id, name string) (*models.Category, error) {
	return &models.Category{ID: id, Name: name}, nil
}

func (f *fakeCategoryRepo) DeleteCategory(ctx context.Context, id string) error {
	return nil
}

func TestCategoryCreateTrimsName(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo, discardLogger())

	cat, err := svc.Create(context.Background(), "  Music  ")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if cat.Name != "Music" {
		t.Errorf("Expected trimmed name, got %q", cat.Name)
	}
}

func TestCategoryCreateRejectsBlankName(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo, discardLogger())

	if _, err := svc.Create(context.Background(), "   "); !IsValidationError(err) {
		t.Fatalf("Expected a validation error, got %v", err)
	}
	if len(repo.categories) != 0 {
		t.Error("A blank name must not reach the remote store")
	}
}

func TestCategoryListFailureYieldsEmptyList(t *testing.T) {
	repo := &fakeCategoryRepo{listErr: fmt.Errorf("remote down")}
	svc := NewCategoryService(repo, discardLogger())

	got := svc.List(context.Background())
	if got == nil || len(got) != 0 {
		t.Errorf("Remote failure should yield an empty non-nil list, got %v", got)
	}
}
