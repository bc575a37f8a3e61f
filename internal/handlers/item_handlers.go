package handlers

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/01moynul/review-seller-golang/internal/blob"
	"github.com/01moynul/review-seller-golang/internal/models"
	"github.com/01moynul/review-seller-golang/internal/store"
	"github.com/gin-gonic/gin"
)

// The nine item collections share one set of handlers, parameterized by
// the collection descriptor. Requests arrive as multipart/form-data so
// an attachment file can ride along with the fields.

// CreateItem handles POST <shop>/items/<collection>. The attachment blob
// is stored before the item row: a blob failure aborts the whole create
// with no item and no counter change.
func (h *Handlers) CreateItem(col store.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields, ok := h.bindItemForm(c, col, true)
		if !ok {
			return
		}

		if file, err := c.FormFile("attachment"); err == nil {
			att, err := h.storeAttachment(c, col, file)
			if err != nil {
				log.Printf("attachment upload failed: %v", err)
				respondFail(c, "Error processing file upload")
				return
			}
			fields.Attachment = att
		}

		item, err := store.CreateItem(c.Request.Context(), h.DB, col, fields)
		if err != nil {
			// The blob went in first; take it back out so a failed create
			// leaves nothing behind.
			h.deleteAttachment(fields.Attachment)
			respondStoreError(c, err, "Item Not Found")
			return
		}
		respondOK(c, "Item Create Success", item)
	}
}

// ShowItems handles GET <shop>/items/<collection>. A malformed
// categories filter is rejected; an unknown status filter is ignored.
func (h *Handlers) ShowItems(col store.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := store.ItemListOptions{
			ListOptions:  listOptions(c),
			CategoriesID: queryFilter(c, "categories"),
			Status:       queryFilter(c, "status"),
		}

		items, total, err := store.ListItems(c.Request.Context(), h.DB, col, opts)
		if err != nil {
			respondStoreError(c, err, "No Data Found")
			return
		}
		if len(items) == 0 {
			respondFail(c, "No Data Found")
			return
		}
		respondList(c, "Item Show Success", paginationFor(opts.ListOptions, total), items)
	}
}

// SingleItem handles GET <shop>/items/<collection>/:id.
func (h *Handlers) SingleItem(col store.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := store.GetItem(c.Request.Context(), h.DB, col, c.Param("id"))
		if err != nil {
			respondStoreError(c, err, "No Data Found")
			return
		}
		respondOK(c, "Item Show Success", item)
	}
}

// UpdateItem handles PUT <shop>/items/<collection>/:id. Fields absent
// from the form are left untouched; present fields pass the same rules
// as create. A replacement attachment is stored before the old blob is
// deleted, and that delete is best-effort.
func (h *Handlers) UpdateItem(col store.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields, ok := h.bindItemForm(c, col, false)
		if !ok {
			return
		}

		if file, err := c.FormFile("attachment"); err == nil {
			att, err := h.storeAttachment(c, col, file)
			if err != nil {
				log.Printf("attachment upload failed: %v", err)
				respondFail(c, "Error processing file upload")
				return
			}
			fields.Attachment = att
		}

		item, replaced, err := store.UpdateItem(c.Request.Context(), h.DB, col, c.Param("id"), fields)
		if err != nil {
			h.deleteAttachment(fields.Attachment)
			respondStoreError(c, err, "Item Not Found")
			return
		}
		h.deleteAttachment(replaced)
		respondOK(c, "Item Update Success", item)
	}
}

// DestroyItem handles DELETE <shop>/items/<collection>/:id.
func (h *Handlers) DestroyItem(col store.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		att, err := store.DeleteItem(c.Request.Context(), h.DB, col, c.Param("id"))
		if err != nil {
			respondStoreError(c, err, "Item Not Found")
			return
		}
		h.deleteAttachment(att)
		respondMessage(c, "Item Destroy Success")
	}
}

// bindItemForm reads and validates the collection's form fields. With
// require set (create), every field must be present; otherwise (update)
// only supplied fields are validated. A false return means the response
// has already been written.
func (h *Handlers) bindItemForm(c *gin.Context, col store.Collection, require bool) (store.ItemFields, bool) {
	var f store.ItemFields

	for _, key := range []string{"item_name", "review_from"} {
		v, present := c.GetPostForm(key)
		if !present {
			if require {
				respondBadRequest(c, key+" is required and must be a non-empty string.")
				return f, false
			}
			continue
		}
		v = strings.TrimSpace(v)
		if v == "" {
			respondBadRequest(c, key+" is required and must be a non-empty string.")
			return f, false
		}
		val := v
		switch key {
		case "item_name":
			f.ItemName = &val
		case "review_from":
			f.ReviewFrom = &val
		}
	}

	if v, present := c.GetPostForm("categories_id"); present {
		if !store.ValidID(v) {
			respondBadRequest(c, "categories_id is required and must be a valid id.")
			return f, false
		}
		f.CategoriesID = &v
	} else if require {
		respondBadRequest(c, "categories_id is required and must be a valid id.")
		return f, false
	}

	var priceKeys []string
	if col.Kind == store.KindReview {
		priceKeys = []string{"price_usd", "price_bdt"}
	} else {
		priceKeys = []string{"price"}
	}
	for _, key := range priceKeys {
		v, present := c.GetPostForm(key)
		if !present {
			if require {
				respondBadRequest(c, key+" is required and must be a positive number.")
				return f, false
			}
			continue
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || n <= 0 {
			respondBadRequest(c, key+" is required and must be a positive number.")
			return f, false
		}
		switch key {
		case "price_usd":
			f.PriceUSD = &n
		case "price_bdt":
			f.PriceBDT = &n
		case "price":
			f.Price = &n
		}
	}

	if col.Kind == store.KindBoost {
		// duration is required, quentity falls back to the schema default.
		if n, ok := h.bindPositiveInt(c, "duration", require); !ok {
			return f, false
		} else if n != nil {
			f.Duration = n
		}
		if n, ok := h.bindPositiveInt(c, "quentity", false); !ok {
			return f, false
		} else if n != nil {
			f.Quantity = n
		}
	}

	if values, present := c.GetPostFormArray("features"); present {
		features := make([]string, 0, len(values))
		for _, v := range values {
			v = strings.TrimSpace(v)
			if v == "" {
				respondBadRequest(c, "features must be a non-empty array of non-empty strings.")
				return f, false
			}
			features = append(features, v)
		}
		if len(features) == 0 {
			respondBadRequest(c, "features must be a non-empty array of non-empty strings.")
			return f, false
		}
		f.Features = features
	} else if require {
		respondBadRequest(c, "features must be a non-empty array of non-empty strings.")
		return f, false
	}

	if v, present := c.GetPostForm("status"); present && v != "" {
		if !validChoice(v, models.ItemStatuses) {
			respondBadRequest(c, `status must be either "active" or "deactive"`)
			return f, false
		}
		f.Status = &v
	}

	if col.Kind == store.KindBoost {
		if v, present := c.GetPostForm("duration_type"); present && v != "" {
			if !validChoice(v, models.DurationTypes) {
				respondBadRequest(c, fmt.Sprintf("duration_type must be one of [ %s ]", strings.Join(models.DurationTypes, ", ")))
				return f, false
			}
			f.DurationType = &v
		}
	}

	if v, present := c.GetPostForm("notes"); present {
		f.Notes = &v
	}

	return f, true
}

// bindPositiveInt reads an optional whole-number form field. Fractional
// values are rejected rather than truncated. A nil int with ok means the
// field was absent and not required.
func (h *Handlers) bindPositiveInt(c *gin.Context, key string, require bool) (*int, bool) {
	v, present := c.GetPostForm(key)
	if !present {
		if require {
			respondBadRequest(c, key+" is required and must be a positive number.")
			return nil, false
		}
		return nil, true
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		respondBadRequest(c, key+" is required and must be a positive number.")
		return nil, false
	}
	return &n, true
}

func (h *Handlers) storeAttachment(c *gin.Context, col store.Collection, file *multipart.FileHeader) (*blob.Attachment, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	att, err := h.Blob.Save(c.Request.Context(), col.Kind.Prefix(), file.Filename, src)
	if err != nil {
		return nil, err
	}
	return &att, nil
}

// deleteAttachment removes a blob best-effort. Failures are logged and
// never surfaced; blob cleanup must not block the entity mutation.
func (h *Handlers) deleteAttachment(att *blob.Attachment) {
	if att == nil {
		return
	}
	if err := h.Blob.Delete(context.Background(), att.PublicID); err != nil {
		log.Printf("attachment delete failed for %s: %v", att.PublicID, err)
	}
}

func validChoice(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
