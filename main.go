package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/vijay-72-CMK/product-microservice/internal/config"
	"github.com/vijay-72-CMK/product-microservice/internal/database"
	"github.com/vijay-72-CMK/product-microservice/internal/handlers"
	"github.com/vijay-72-CMK/product-microservice/internal/middleware"
	"github.com/vijay-72-CMK/product-microservice/internal/repository"
	"github.com/vijay-72-CMK/product-microservice/internal/services"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureCategoryIndexes(db); err != nil {
		log.Printf("category index warning: %v", err)
	}

	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	productSvc := services.NewProductService(productRepo, categoryRepo)
	categorySvc := services.NewCategoryService(categoryRepo)

	adminOnly := middleware.AdminAuth(config.AppEnv.JWTSecret)

	r := gin.Default()

	api := r.Group("/api")

	api.POST("/auth/login", handlers.Login(db, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))

	products := api.Group("/products")
	{
		products.GET("/all", handlers.GetAllProducts(productSvc))
		products.GET("/search", handlers.SearchProducts(productSvc))
		products.GET("/get-quantity/:productId", handlers.GetAvailableQuantity(productSvc))
		products.GET("/:id", handlers.GetProductByID(productSvc))

		products.POST("/add-product/:categoryName", adminOnly, handlers.AddProduct(productSvc))
		products.PATCH("/edit-product/:id", adminOnly, handlers.EditProduct(productSvc))
		products.DELETE("/remove-product/:id", adminOnly, handlers.RemoveProduct(productSvc))
	}

	categories := api.Group("/categories")
	{
		categories.GET("", handlers.GetCategories(categorySvc))
		categories.POST("", adminOnly, handlers.CreateCategory(categorySvc))
	}

	r.Run(":" + config.AppEnv.Port)
}
