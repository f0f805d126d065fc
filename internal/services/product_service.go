package services

import (
	"context"
	"errors"
	"strings"

	"github.com/vijay-72-CMK/product-microservice/internal/models"
	"github.com/vijay-72-CMK/product-microservice/internal/repository"
)

// ProductService orchestrates validation and persistence for the catalog.
// It holds no state between calls; everything lives in the store.
type ProductService struct {
	products   ProductStore
	categories CategoryStore
}

func NewProductService(products ProductStore, categories CategoryStore) *ProductService {
	return &ProductService{products: products, categories: categories}
}

// AddProduct validates the product against its category's required attributes
// and persists it. Returns the store-generated id.
func (s *ProductService) AddProduct(ctx context.Context, product *models.Product, categoryName string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(categoryName))

	category, err := s.categories.GetByName(ctx, name)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return "", models.NotFoundf("category %s does not exist", name)
	}
	if err != nil {
		return "", models.DataAccessf(err, "database error while adding product")
	}

	if missing := missingAttributes(category.RequiredAttributes, product.Attributes); len(missing) > 0 {
		return "", models.InvalidArgumentf(
			"missing required attributes for category %s: %s",
			category.Name, strings.Join(missing, ", "),
		)
	}

	product.CategoryName = name

	saved, err := s.products.Save(ctx, product)
	if err != nil {
		return "", models.DataAccessf(err, "database error while adding product")
	}
	return saved.ID.Hex(), nil
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, models.DataAccessf(err, "database error while fetching all products")
	}
	return products, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	count, err := s.products.DeleteByID(ctx, id)
	if err != nil {
		return models.DataAccessf(err, "database error while deleting product with id %s", id)
	}
	if count == 0 {
		return models.NotFoundf("cannot delete product with id %s as id does not exist", id)
	}
	return nil
}

// SearchProducts validates the criteria, builds the filter conjunction and
// sort spec, and runs the single paged-fetch-plus-count aggregation.
func (s *ProductService) SearchProducts(ctx context.Context, criteria models.SearchCriteria) (*models.PagedResult, error) {
	if err := ValidateCriteria(criteria); err != nil {
		return nil, err
	}

	filter := BuildSearchFilter(criteria)
	sort := BuildSortSpec(criteria.SortBy, criteria.SortDirection)

	result, err := s.products.SearchPage(ctx, filter, sort, criteria.Page, criteria.Size)
	if err != nil {
		return nil, models.DataAccessf(err, "database error while searching products")
	}
	return result, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, models.NotFoundf("product with id %s does not exist", id)
	}
	if err != nil {
		return nil, models.DataAccessf(err, "database error while getting product with id %s", id)
	}
	return product, nil
}

// UpdateProduct overwrites exactly the mutable fields. CategoryName and
// Attributes stay as they were at creation.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, edit models.ProductEdit) error {
	product, err := s.products.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return models.NotFoundf("product with id %s does not exist", id)
	}
	if err != nil {
		return models.DataAccessf(err, "database error while editing product with id %s", id)
	}

	product.Name = edit.Name
	product.Price = edit.Price
	product.AvailableQuantity = edit.AvailableQuantity
	product.Description = edit.Description

	if _, err := s.products.Save(ctx, product); err != nil {
		return models.DataAccessf(err, "database error while editing product with id %s", id)
	}
	return nil
}

func (s *ProductService) GetAvailableQuantity(ctx context.Context, id string) (int, error) {
	product, err := s.products.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return 0, models.NotFoundf("cannot get quantity as product id %s does not exist", id)
	}
	if err != nil {
		return 0, models.DataAccessf(err, "database error while getting quantity for product id %s", id)
	}
	return product.AvailableQuantity, nil
}

// missingAttributes reports which required attribute keys the product's
// attribute map lacks, in the order the category declares them.
func missingAttributes(required []string, attributes map[string]string) []string {
	missing := make([]string, 0)
	for _, key := range required {
		if _, ok := attributes[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
