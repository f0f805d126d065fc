package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vijay-72-CMK/product-microservice/internal/services"
)

type CategoryCreateRequest struct {
	Name               string   `json:"name" binding:"required"`
	RequiredAttributes []string `json:"requiredAttributes"`
}

/*
GET /api/categories
*/
func GetCategories(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/categories"
		defer handlePanic(c, route)

		categories, err := svc.ListCategories(c.Request.Context())
		if err != nil {
			respondServiceError(c, route, err)
			return
		}

		log.Printf("[%s] returning %d categories", route, len(categories))
		c.JSON(http.StatusOK, categories)
	}
}

/*
POST /api/categories
- admin only
- name is stored lower-cased; duplicates rejected
*/
func CreateCategory(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/categories"
		defer handlePanic(c, route)

		var req CategoryCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, route, err)
			return
		}

		category, err := svc.CreateCategory(c.Request.Context(), req.Name, req.RequiredAttributes)
		if err != nil {
			respondServiceError(c, route, err)
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}
