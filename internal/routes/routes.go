package routes

import (
	"net/http"
	"os"

	"github.com/01moynul/review-seller-golang/internal/handlers"
	"github.com/01moynul/review-seller-golang/internal/store"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the configured frontend origin to call the API
// with credentials.
func CORSMiddleware() gin.HandlerFunc {
	clientURL := os.Getenv("CLIENT_URL")
	if clientURL == "" {
		clientURL = "http://localhost:5174"
	}
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", clientURL)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// SetupRouter wires every endpoint. The nine item collections and the
// two checkout ledgers register through loops over the collection table
// so a new collection is one line in store.Collections.
func SetupRouter(h *handlers.Handlers, uploadDir string) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Server Running Success!"})
	})
	router.Static("/uploads", uploadDir)

	api := router.Group("/api/v1")
	{
		api.POST("/items/categories", h.CreateCategory)
		api.GET("/items/categories", h.ShowCategories)
		api.GET("/items/categories/:id", h.SingleCategory)
		api.PUT("/items/categories/:id", h.UpdateCategory)
		api.DELETE("/items/categories/:id", h.DestroyCategory)
		api.POST("/items/categories/reconcile", h.ReconcileCategories)

		for _, col := range store.Collections {
			group := api.Group("/" + col.Kind.Prefix() + "/items/" + col.Slug)
			group.POST("", h.CreateItem(col))
			group.GET("", h.ShowItems(col))
			group.GET("/:id", h.SingleItem(col))
			group.PUT("/:id", h.UpdateItem(col))
			group.DELETE("/:id", h.DestroyItem(col))
		}

		for _, kind := range []store.CollectionKind{store.KindReview, store.KindBoost} {
			group := api.Group("/" + kind.Prefix() + "/checkout")
			group.POST("", h.CreateOrder(kind))
			group.GET("", h.ShowOrders(kind))
			group.GET("/:id", h.SingleOrder(kind))
			group.PUT("/:id", h.UpdateOrder(kind))
			group.DELETE("/:id", h.DestroyOrder(kind))
		}

		api.POST("/contact-from", h.CreateContact)
		api.GET("/contact-from", h.ShowContacts)
		api.GET("/contact-from/:id", h.SingleContact)
		api.PUT("/contact-from/:id", h.UpdateContact)
		api.DELETE("/contact-from/:id", h.DestroyContact)

		api.POST("/auth/users", h.Register)
		api.POST("/auth/users/login", h.Login)
		api.GET("/auth/users", h.ShowUsers)
		api.GET("/auth/users/:id", h.SingleUser)
		api.PUT("/auth/users/:id", h.UpdateUser)
		api.DELETE("/auth/users/:id", h.DestroyUser)
	}

	return router
}
