package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vijay-72-CMK/product-microservice/internal/models"
	"github.com/vijay-72-CMK/product-microservice/internal/repository"
	"github.com/vijay-72-CMK/product-microservice/internal/services"
)

type stubProductStore struct {
	byID  map[string]models.Product
	order []string
}

func newStubProductStore() *stubProductStore {
	return &stubProductStore{byID: make(map[string]models.Product)}
}

func (f *stubProductStore) FindByID(_ context.Context, id string) (*models.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &p, nil
}

func (f *stubProductStore) FindAll(_ context.Context) ([]models.Product, error) {
	all := make([]models.Product, 0, len(f.order))
	for _, id := range f.order {
		all = append(all, f.byID[id])
	}
	return all, nil
}

func (f *stubProductStore) Save(_ context.Context, product *models.Product) (*models.Product, error) {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
		f.order = append(f.order, product.ID.Hex())
	}
	f.byID[product.ID.Hex()] = *product
	return product, nil
}

func (f *stubProductStore) DeleteByID(_ context.Context, id string) (int64, error) {
	if _, ok := f.byID[id]; !ok {
		return 0, nil
	}
	delete(f.byID, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func (f *stubProductStore) SearchPage(_ context.Context, _ bson.M, _ bson.D, page, size int64) (*models.PagedResult, error) {
	all := make([]models.Product, 0, len(f.order))
	for _, id := range f.order {
		all = append(all, f.byID[id])
	}
	start := page * size
	if start > int64(len(all)) {
		start = int64(len(all))
	}
	end := start + size
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return &models.PagedResult{Products: all[start:end], TotalCount: int64(len(all))}, nil
}

type stubCategoryStore struct {
	byName map[string]models.Category
}

func newStubCategoryStore(categories ...models.Category) *stubCategoryStore {
	f := &stubCategoryStore{byName: make(map[string]models.Category)}
	for _, c := range categories {
		f.byName[c.Name] = c
	}
	return f
}

func (f *stubCategoryStore) GetByName(_ context.Context, name string) (*models.Category, error) {
	c, ok := f.byName[name]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	return &c, nil
}

func (f *stubCategoryStore) Create(_ context.Context, category *models.Category) (*models.Category, error) {
	if _, ok := f.byName[category.Name]; ok {
		return nil, repository.ErrCategoryExists
	}
	category.ID = primitive.NewObjectID()
	f.byName[category.Name] = *category
	return category, nil
}

func (f *stubCategoryStore) List(_ context.Context) ([]models.Category, error) {
	all := make([]models.Category, 0, len(f.byName))
	for _, c := range f.byName {
		all = append(all, c)
	}
	return all, nil
}

func newTestRouter(products *stubProductStore, categories *stubCategoryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	productSvc := services.NewProductService(products, categories)
	categorySvc := services.NewCategoryService(categories)

	r := gin.New()
	api := r.Group("/api")

	p := api.Group("/products")
	p.GET("/all", GetAllProducts(productSvc))
	p.GET("/search", SearchProducts(productSvc))
	p.GET("/get-quantity/:productId", GetAvailableQuantity(productSvc))
	p.GET("/:id", GetProductByID(productSvc))
	p.POST("/add-product/:categoryName", AddProduct(productSvc))
	p.PATCH("/edit-product/:id", EditProduct(productSvc))
	p.DELETE("/remove-product/:id", RemoveProduct(productSvc))

	c := api.Group("/categories")
	c.GET("", GetCategories(categorySvc))
	c.POST("", CreateCategory(categorySvc))

	return r
}

func testCategory() models.Category {
	return models.Category{
		ID:                 primitive.NewObjectID(),
		Name:               "boardgames",
		RequiredAttributes: models.StringList{"brand", "price"},
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddProductHandler(t *testing.T) {
	r := newTestRouter(newStubProductStore(), newStubCategoryStore(testCategory()))

	w := doJSON(t, r, http.MethodPost, "/api/products/add-product/BoardGames", gin.H{
		"name":              "Catan",
		"price":             39.99,
		"availableQuantity": 3,
		"description":       "strategy game",
		"attributes":        gin.H{"brand": "X", "price": "20"},
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["id"])
}

func TestAddProductHandlerValidation(t *testing.T) {
	r := newTestRouter(newStubProductStore(), newStubCategoryStore(testCategory()))

	w := doJSON(t, r, http.MethodPost, "/api/products/add-product/boardgames", gin.H{
		"price":       10.0,
		"description": "no name",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name is required")
}

func TestAddProductHandlerMissingAttributes(t *testing.T) {
	r := newTestRouter(newStubProductStore(), newStubCategoryStore(testCategory()))

	w := doJSON(t, r, http.MethodPost, "/api/products/add-product/boardgames", gin.H{
		"name":        "Catan",
		"description": "strategy game",
		"attributes":  gin.H{"brand": "X"},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing required attributes for category boardgames")
}

func TestGetProductByIDNotFound(t *testing.T) {
	r := newTestRouter(newStubProductStore(), newStubCategoryStore())

	w := doJSON(t, r, http.MethodGet, "/api/products/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchHandlerRejectsBadSortBy(t *testing.T) {
	r := newTestRouter(newStubProductStore(), newStubCategoryStore())

	w := doJSON(t, r, http.MethodGet, "/api/products/search?sortBy=averageRating", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "available sorting options")
}

func TestSearchHandlerRejectsBadPagination(t *testing.T) {
	r := newTestRouter(newStubProductStore(), newStubCategoryStore())

	w := doJSON(t, r, http.MethodGet, "/api/products/search?page=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/products/search?size=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/products/search?minPrice=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchHandlerReturnsPagination(t *testing.T) {
	products := newStubProductStore()
	r := newTestRouter(products, newStubCategoryStore(testCategory()))

	for i := 0; i < 5; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/products/add-product/boardgames", gin.H{
			"name":        fmt.Sprintf("game-%d", i),
			"price":       20.0,
			"description": "d",
			"attributes":  gin.H{"brand": "X", "price": "20"},
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/products/search?minPrice=10&maxPrice=50&page=0&size=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data       []models.Product `json:"data"`
		Pagination struct {
			Page       int64 `json:"page"`
			Size       int64 `json:"size"`
			Total      int64 `json:"total"`
			TotalPages int64 `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(5), resp.Pagination.Total)
	assert.Equal(t, int64(3), resp.Pagination.TotalPages)
	assert.Equal(t, int64(2), resp.Pagination.Size)
}

func TestEditProductHandler(t *testing.T) {
	products := newStubProductStore()
	r := newTestRouter(products, newStubCategoryStore(testCategory()))

	w := doJSON(t, r, http.MethodPost, "/api/products/add-product/boardgames", gin.H{
		"name":        "Catan",
		"price":       39.99,
		"description": "strategy game",
		"attributes":  gin.H{"brand": "X", "price": "20"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"]

	w = doJSON(t, r, http.MethodPatch, "/api/products/edit-product/"+id, gin.H{
		"name":              "Catan Deluxe",
		"price":             49.99,
		"availableQuantity": 2,
		"description":       "deluxe edition",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/products/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "Catan Deluxe", fetched.Name)
	assert.Equal(t, "boardgames", fetched.CategoryName)
	assert.Equal(t, map[string]string{"brand": "X", "price": "20"}, fetched.Attributes)
}

func TestRemoveProductHandler(t *testing.T) {
	products := newStubProductStore()
	r := newTestRouter(products, newStubCategoryStore(testCategory()))

	w := doJSON(t, r, http.MethodDelete, "/api/products/remove-product/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/products/add-product/boardgames", gin.H{
		"name":        "Catan",
		"description": "strategy game",
		"attributes":  gin.H{"brand": "X", "price": "20"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodDelete, "/api/products/remove-product/"+created["id"], nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/products/"+created["id"], nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetQuantityHandler(t *testing.T) {
	products := newStubProductStore()
	r := newTestRouter(products, newStubCategoryStore(testCategory()))

	w := doJSON(t, r, http.MethodPost, "/api/products/add-product/boardgames", gin.H{
		"name":              "Catan",
		"availableQuantity": 12,
		"description":       "strategy game",
		"attributes":        gin.H{"brand": "X", "price": "20"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodGet, "/api/products/get-quantity/"+created["id"], nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"availableQuantity\":12")
}

func TestCreateCategoryHandler(t *testing.T) {
	r := newTestRouter(newStubProductStore(), newStubCategoryStore())

	w := doJSON(t, r, http.MethodPost, "/api/categories", gin.H{
		"name":               "BoardGames",
		"requiredAttributes": []string{"brand", "price"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "boardgames", created.Name)

	w = doJSON(t, r, http.MethodPost, "/api/categories", gin.H{"name": "boardgames"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}
