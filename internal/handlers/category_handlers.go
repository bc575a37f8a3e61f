package handlers

import (
	"errors"
	"strings"

	"github.com/01moynul/review-seller-golang/internal/store"
	"github.com/gin-gonic/gin"
)

type CategoryInput struct {
	CategoriesName string `json:"categories_name"`
}

// CreateCategory handles POST /api/v1/items/categories.
func (h *Handlers) CreateCategory(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if strings.TrimSpace(input.CategoriesName) == "" {
		respondBadRequest(c, "categories_name is required and must be a non-empty string.")
		return
	}

	cat, err := store.CreateCategory(c.Request.Context(), h.DB, input.CategoriesName)
	if err != nil {
		// Category duplicates use a lowercase message, unlike items.
		if errors.Is(err, store.ErrDuplicate) {
			respondFail(c, "already exists. try another.")
			return
		}
		respondStoreError(c, err, "Item Not Found")
		return
	}
	respondOK(c, "Item Create Success", cat)
}

// ShowCategories handles GET /api/v1/items/categories.
func (h *Handlers) ShowCategories(c *gin.Context) {
	opts := listOptions(c)
	cats, total, err := store.ListCategories(c.Request.Context(), h.DB, opts)
	if err != nil {
		respondStoreError(c, err, "No Data Found")
		return
	}
	if len(cats) == 0 {
		respondFail(c, "No Data Found")
		return
	}
	respondList(c, "Item Show Success", paginationFor(opts, total), cats)
}

// SingleCategory handles GET /api/v1/items/categories/:id.
func (h *Handlers) SingleCategory(c *gin.Context) {
	cat, err := store.GetCategory(c.Request.Context(), h.DB, c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "No Data Found")
		return
	}
	respondOK(c, "Item Show Success", cat)
}

// UpdateCategory handles PUT /api/v1/items/categories/:id.
func (h *Handlers) UpdateCategory(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if strings.TrimSpace(input.CategoriesName) == "" {
		respondBadRequest(c, "categories_name is required and must be a non-empty string.")
		return
	}

	cat, err := store.RenameCategory(c.Request.Context(), h.DB, c.Param("id"), input.CategoriesName)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondFail(c, "already exists. try another.")
			return
		}
		respondStoreError(c, err, "Not Found By ID")
		return
	}
	respondOK(c, "Item Update Success", cat)
}

// DestroyCategory handles DELETE /api/v1/items/categories/:id. Deletion
// is refused while the category still owns items.
func (h *Handlers) DestroyCategory(c *gin.Context) {
	if err := store.DeleteCategory(c.Request.Context(), h.DB, c.Param("id")); err != nil {
		respondStoreError(c, err, "Item Not Found")
		return
	}
	respondMessage(c, "Item Destroy Success")
}

// ReconcileCategories handles POST /api/v1/items/categories/reconcile,
// the operational repair that recomputes every items_count from the
// items table.
func (h *Handlers) ReconcileCategories(c *gin.Context) {
	n, err := store.ReconcileItemsCounts(c.Request.Context(), h.DB)
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, "Items Count Reconcile Success", gin.H{"categories_updated": n})
}
