package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/vijay-72-CMK/product-microservice/internal/models"
)

// ProductStore defines the product collection operations the service layer
// needs. Implemented by repository.ProductRepository.
type ProductStore interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	Save(ctx context.Context, product *models.Product) (*models.Product, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
	SearchPage(ctx context.Context, filter bson.M, sort bson.D, page, size int64) (*models.PagedResult, error)
}

// CategoryStore defines the category operations the service layer needs.
// Implemented by repository.CategoryRepository.
type CategoryStore interface {
	GetByName(ctx context.Context, name string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
}
