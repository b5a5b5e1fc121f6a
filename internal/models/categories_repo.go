package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
)

type CategoryRepo interface {
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, name string) (*Category, error)
	UpdateCategory(ctx context.Context, id, name string) (*Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

func (su *SupabaseRepo) ListCategories(ctx context.Context) ([]Category, error) {
	data, count, err := su.supabaseClient.From(CategoriesTable).
		Select("*", "exact", false).
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %v", err)
	}
	if count == 0 {
		return []Category{}, nil
	}

	var categories []Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %v", err)
	}
	return categories, nil
}

func (su *SupabaseRepo) CreateCategory(ctx context.Context, name string) (*Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category name cannot be empty")
	}

	data, count, err := su.supabaseClient.From(CategoriesTable).
		Insert(map[string]interface{}{"name": name}, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no category row returned after insert")
	}

	var created []Category
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created category: %v", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("no category data returned after insert")
	}
	return &created[0], nil
}

func (su *SupabaseRepo) UpdateCategory(ctx context.Context, id, name string) (*Category, error) {
	if id == "" {
		return nil, fmt.Errorf("no category ID provided")
	}
	if name == "" {
		return nil, fmt.Errorf("category name cannot be empty")
	}

	data, count, err := su.supabaseClient.From(CategoriesTable).
		Update(map[string]interface{}{"name": name}, "", "exact").
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no category found to update")
	}

	var updated []Category
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated category: %v", err)
	}
	if len(updated) == 0 {
		return nil, fmt.Errorf("no category data returned after update")
	}
	return &updated[0], nil
}

func (su *SupabaseRepo) DeleteCategory(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("no category ID provided")
	}

	_, _, err := su.supabaseClient.From(CategoriesTable).
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete category: %v", err)
	}
	return nil
}
