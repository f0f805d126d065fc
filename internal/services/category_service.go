package services

import (
	"context"
	"errors"
	"strings"

	"github.com/vijay-72-CMK/product-microservice/internal/models"
	"github.com/vijay-72-CMK/product-microservice/internal/repository"
)

// CategoryService owns category lookups and the admin-side management
// operations. Names are lower-cased here so the repository only ever sees the
// normalized join key.
type CategoryService struct {
	categories CategoryStore
}

func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	category, err := s.categories.GetByName(ctx, normalized)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, models.NotFoundf("category %s does not exist", normalized)
	}
	if err != nil {
		return nil, models.DataAccessf(err, "database error while fetching category %s", normalized)
	}
	return category, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string, requiredAttributes []string) (*models.Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return nil, models.InvalidArgumentf("category name is required")
	}

	category := &models.Category{
		Name:               normalized,
		RequiredAttributes: models.StringList(requiredAttributes),
	}

	created, err := s.categories.Create(ctx, category)
	if errors.Is(err, repository.ErrCategoryExists) {
		return nil, models.Conflictf("category %s already exists", normalized)
	}
	if err != nil {
		return nil, models.DataAccessf(err, "database error while creating category %s", normalized)
	}
	return created, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, models.DataAccessf(err, "database error while fetching all categories")
	}
	return categories, nil
}
