package services

import (
	"context"
	"log/slog"
	"strings"

	"eventmap/internal/models"
)

type CategoryService struct {
	categories models.CategoryRepo
	logger     *slog.Logger
}

func NewCategoryService(categories models.CategoryRepo, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		categories: categories,
		logger:     logger,
	}
}

func (s *CategoryService) List(ctx context.Context) []models.Category {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		s.logger.Error("failed to load categories", "error", err)
		return []models.Category{}
	}
	return categories
}

func (s *CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationError("category name is required")
	}
	category, err := s.categories.CreateCategory(ctx, name)
	if err != nil {
		s.logger.Error("failed to create category", "error", err)
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id, name string) *models.Category {
	category, err := s.categories.UpdateCategory(ctx, id, strings.TrimSpace(name))
	if err != nil {
		s.logger.Error("failed to update category", "id", id, "error", err)
		return nil
	}
	return category
}

func (s *CategoryService) Delete(ctx context.Context, id string) bool {
	if err := s.categories.DeleteCategory(ctx, id); err != nil {
		s.logger.Error("failed to delete category", "id", id, "error", err)
		return false
	}
	return true
}
