package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/01moynul/review-seller-golang/internal/models"
	"github.com/01moynul/review-seller-golang/internal/store"
	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope:
// {success, message, payload?, pagination?}. Field validation failures
// are 400s, unexpected failures are 500s, and business-rule failures
// (not found, duplicate, invalid id, delete guard, unavailable item)
// deliberately stay 200 with success:false. Existing clients key off
// the body, not the status code.

func respondOK(c *gin.Context, message string, payload any) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"payload": payload,
	})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

func respondList(c *gin.Context, message string, pagination models.Pagination, payload any) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    message,
		"pagination": pagination,
		"payload":    payload,
	})
}

func respondFail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": false,
		"message": message,
	})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
	})
}

func respondInternal(c *gin.Context, err error) {
	log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Internal Server Error",
	})
}

// respondStoreError maps the store's sentinel errors onto the envelope.
// notFoundMsg varies per endpoint ("No Data Found" on reads, "Item Not
// Found" on mutations).
func respondStoreError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		respondFail(c, "Invalid ID Format")
	case errors.Is(err, store.ErrCategoryNotFound):
		respondFail(c, "Category Not Found")
	case errors.Is(err, store.ErrCategoryHasItems):
		respondFail(c, "The category cannot be deleted because it contains items.")
	case errors.Is(err, store.ErrItemUnavailable):
		respondFail(c, "Item is not available for purchase")
	case errors.Is(err, store.ErrEmailTaken):
		respondFail(c, "Email Already Exists. Try Another !")
	case errors.Is(err, store.ErrPhoneTaken):
		respondFail(c, "Phone Already Exists. Try Another !")
	case errors.Is(err, store.ErrDuplicate):
		respondFail(c, "Already exists. Try another")
	case errors.Is(err, store.ErrNotFound):
		respondFail(c, notFoundMsg)
	default:
		respondInternal(c, err)
	}
}
