package handlers

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vijay-72-CMK/product-microservice/internal/models"
	"github.com/vijay-72-CMK/product-microservice/internal/services"
)

type ProductCreateRequest struct {
	Name              string            `json:"name" binding:"required"`
	Brand             string            `json:"brand"`
	Price             float64           `json:"price" binding:"gte=0"`
	AvailableQuantity int               `json:"availableQuantity" binding:"gte=0"`
	Description       string            `json:"description" binding:"required"`
	Images            []string          `json:"images"`
	Tags              []string          `json:"tags"`
	BoardSize         string            `json:"boardSize"`
	AverageRating     float64           `json:"averageRating"`
	Attributes        map[string]string `json:"attributes"`
}

type ProductEditRequest struct {
	Name              string  `json:"name" binding:"required"`
	Price             float64 `json:"price" binding:"gte=0"`
	AvailableQuantity int     `json:"availableQuantity" binding:"gte=0"`
	Description       string  `json:"description" binding:"required"`
}

/*
POST /api/products/add-product/:categoryName
- admin only
- product must carry every attribute the category requires
*/
func AddProduct(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/products/add-product"
		defer handlePanic(c, route)

		categoryName := strings.TrimSpace(c.Param("categoryName"))
		if categoryName == "" {
			respondWithError(c, http.StatusBadRequest, route, "categoryName required")
			return
		}

		var req ProductCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}

		product := models.Product{
			Name:              strings.TrimSpace(req.Name),
			Brand:             strings.TrimSpace(req.Brand),
			Price:             req.Price,
			AvailableQuantity: req.AvailableQuantity,
			Description:       strings.TrimSpace(req.Description),
			Images:            models.StringList(req.Images),
			Tags:              models.StringList(req.Tags),
			BoardSize:         strings.TrimSpace(req.BoardSize),
			AverageRating:     req.AverageRating,
			Attributes:        req.Attributes,
		}

		id, err := svc.AddProduct(c.Request.Context(), &product, categoryName)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}

		log.Printf("[%s] added product id=%s category=%s", route, id, categoryName)
		c.JSON(http.StatusCreated, gin.H{
			"message": "product added successfully",
			"id":      id,
		})
	}
}

/*
GET /api/products/all
- full collection, no filtering or pagination
*/
func GetAllProducts(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/all"
		defer handlePanic(c, route)

		products, err := svc.GetAllProducts(c.Request.Context())
		if err != nil {
			respondServiceError(c, route, err)
			return
		}

		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, products)
	}
}

/*
DELETE /api/products/remove-product/:id
- admin only
*/
func RemoveProduct(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/products/remove-product"
		defer handlePanic(c, route)

		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			respondWithError(c, http.StatusBadRequest, route, "id required")
			return
		}

		if err := svc.DeleteProduct(c.Request.Context(), id); err != nil {
			respondServiceError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "product deleted successfully"})
	}
}

/*
GET /api/products/search
- every filter parameter optional; sortBy/sortDirection validated against the
  allow-list by the service
*/
func SearchProducts(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/search"
		defer handlePanic(c, route)

		criteria, ok := parseSearchCriteria(c, route)
		if !ok {
			return
		}

		result, err := svc.SearchProducts(c.Request.Context(), criteria)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}

		totalPages := int64(0)
		if result.TotalCount > 0 {
			totalPages = int64(math.Ceil(float64(result.TotalCount) / float64(criteria.Size)))
		}

		log.Printf("[%s] returning %d of %d products page=%d", route, len(result.Products), result.TotalCount, criteria.Page)
		c.JSON(http.StatusOK, gin.H{
			"data": result.Products,
			"pagination": gin.H{
				"page":       criteria.Page,
				"size":       criteria.Size,
				"total":      result.TotalCount,
				"totalPages": totalPages,
			},
		})
	}
}

/*
GET /api/products/get-quantity/:productId
*/
func GetAvailableQuantity(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/get-quantity"
		defer handlePanic(c, route)

		id := strings.TrimSpace(c.Param("productId"))
		if id == "" {
			respondWithError(c, http.StatusBadRequest, route, "productId required")
			return
		}

		quantity, err := svc.GetAvailableQuantity(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"availableQuantity": quantity})
	}
}

/*
GET /api/products/:id
*/
func GetProductByID(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/:id"
		defer handlePanic(c, route)

		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			respondWithError(c, http.StatusBadRequest, route, "id required")
			return
		}

		product, err := svc.GetProductByID(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

/*
PATCH /api/products/edit-product/:id
- admin only
- overwrites name, price, availableQuantity and description; category and
  attributes are untouched
*/
func EditProduct(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /api/products/edit-product"
		defer handlePanic(c, route)

		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			respondWithError(c, http.StatusBadRequest, route, "id required")
			return
		}

		var req ProductEditRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}

		edit := models.ProductEdit{
			Name:              strings.TrimSpace(req.Name),
			Price:             req.Price,
			AvailableQuantity: req.AvailableQuantity,
			Description:       strings.TrimSpace(req.Description),
		}

		if err := svc.UpdateProduct(c.Request.Context(), id, edit); err != nil {
			respondServiceError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "product updated successfully"})
	}
}

// parseSearchCriteria turns the raw query parameters into SearchCriteria,
// rejecting malformed numbers and out-of-range pagination here so the service
// only sees well-formed input.
func parseSearchCriteria(c *gin.Context, route string) (models.SearchCriteria, bool) {
	criteria := models.SearchCriteria{
		Keyword:       strings.TrimSpace(c.Query("keyword")),
		Categories:    services.SplitCSV(c.DefaultQuery("category", "")),
		BoardSizes:    services.SplitCSV(c.DefaultQuery("boardSize", "")),
		Brands:        services.SplitCSV(c.DefaultQuery("brand", "")),
		SortBy:        c.DefaultQuery("sortBy", "name"),
		SortDirection: c.DefaultQuery("sortDirection", "asc"),
	}

	if raw := strings.TrimSpace(c.Query("minPrice")); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "minPrice must be a number")
			return criteria, false
		}
		criteria.MinPrice = &value
	}
	if raw := strings.TrimSpace(c.Query("maxPrice")); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "maxPrice must be a number")
			return criteria, false
		}
		criteria.MaxPrice = &value
	}

	page, err := strconv.ParseInt(c.DefaultQuery("page", "0"), 10, 64)
	if err != nil || page < 0 {
		respondWithError(c, http.StatusBadRequest, route, "page must be zero or greater")
		return criteria, false
	}
	criteria.Page = page

	size, err := strconv.ParseInt(c.DefaultQuery("size", "10"), 10, 64)
	if err != nil || size < 1 {
		respondWithError(c, http.StatusBadRequest, route, "size must be greater than zero")
		return criteria, false
	}
	criteria.Size = size

	return criteria, true
}
