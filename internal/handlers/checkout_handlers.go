package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/01moynul/review-seller-golang/internal/models"
	"github.com/01moynul/review-seller-golang/internal/store"
	"github.com/gin-gonic/gin"
)

// Each shop keeps its own checkout ledger; the handlers are shared and
// parameterized by the shop kind.

type checkoutInput struct {
	ItemID         string                `json:"item_id"`
	BillingAddress models.BillingAddress `json:"billing_address"`
	PaymentMethod  *string               `json:"payment_method"`
	Notes          string                `json:"notes"`
}

type checkoutUpdateInput struct {
	DeliveryDateAndTime string  `json:"delivery_date_and_time"`
	PaymentMethod       string  `json:"payment_method"`
	Status              string  `json:"status"`
	Notes               *string `json:"notes"`
}

// CreateOrder handles POST <shop>/checkout. The billing address is
// required in full; payment method and notes are optional here even
// though update insists on them.
func (h *Handlers) CreateOrder(kind store.CollectionKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in checkoutInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBadRequest(c, "Invalid request body")
			return
		}

		required := []struct {
			name  string
			value string
		}{
			{"item_id", in.ItemID},
			{"first_name", in.BillingAddress.FirstName},
			{"last_name", in.BillingAddress.LastName},
			{"email", in.BillingAddress.Email},
			{"phone", in.BillingAddress.Phone},
			{"country", in.BillingAddress.Country},
			{"address", in.BillingAddress.Address},
		}
		for _, field := range required {
			if strings.TrimSpace(field.value) == "" {
				respondBadRequest(c, field.name+" is required (string)")
				return
			}
		}
		if in.PaymentMethod != nil && !validChoice(*in.PaymentMethod, models.PaymentMethods) {
			respondBadRequest(c, fmt.Sprintf("payment_method must be one of [ %s ]", strings.Join(models.PaymentMethods, ", ")))
			return
		}

		order, err := store.CreateOrder(c.Request.Context(), h.DB, kind, in.ItemID, in.BillingAddress, in.PaymentMethod, in.Notes)
		if err != nil {
			respondStoreError(c, err, "Item Not Found")
			return
		}
		respondOK(c, "Order Success", order)
	}
}

// ShowOrders handles GET <shop>/checkout.
func (h *Handlers) ShowOrders(kind store.CollectionKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := store.OrderListOptions{
			ListOptions: listOptions(c),
			FromDate:    queryDate(c, "from_date"),
			ToDate:      queryDate(c, "to_date"),
			Payment:     queryFilter(c, "payment"),
			Status:      queryFilter(c, "status"),
		}

		orders, total, err := store.ListOrders(c.Request.Context(), h.DB, kind, opts)
		if err != nil {
			respondStoreError(c, err, "No Data Found")
			return
		}
		if len(orders) == 0 {
			respondFail(c, "No Data Found")
			return
		}
		respondList(c, "Item Show Success", paginationFor(opts.ListOptions, total), orders)
	}
}

// SingleOrder handles GET <shop>/checkout/:id.
func (h *Handlers) SingleOrder(kind store.CollectionKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := store.GetOrder(c.Request.Context(), h.DB, kind, c.Param("id"))
		if err != nil {
			respondStoreError(c, err, "No Data Found")
			return
		}
		respondOK(c, "Item Show Success", order)
	}
}

// UpdateOrder handles PUT <shop>/checkout/:id. Unlike create, the
// payment method and status are mandatory.
func (h *Handlers) UpdateOrder(kind store.CollectionKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in checkoutUpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBadRequest(c, "Invalid request body")
			return
		}

		if !validChoice(in.PaymentMethod, models.PaymentMethods) {
			respondBadRequest(c, fmt.Sprintf("payment_method must be one of [ %s ]", strings.Join(models.PaymentMethods, ", ")))
			return
		}
		if !validChoice(in.Status, models.OrderStatuses) {
			respondBadRequest(c, fmt.Sprintf("status must be one of [ %s ]", strings.Join(models.OrderStatuses, ", ")))
			return
		}

		u := store.OrderUpdate{
			PaymentMethod: in.PaymentMethod,
			Status:        in.Status,
			Notes:         in.Notes,
		}
		if in.DeliveryDateAndTime != "" {
			when, err := parseDeliveryDate(in.DeliveryDateAndTime)
			if err != nil {
				respondBadRequest(c, "delivery_date_and_time must be a valid date")
				return
			}
			u.DeliveryDateAndTime = &when
		}

		order, err := store.UpdateOrder(c.Request.Context(), h.DB, kind, c.Param("id"), u)
		if err != nil {
			respondStoreError(c, err, "Item Not Found")
			return
		}
		respondOK(c, "Item Update Success", order)
	}
}

// DestroyOrder handles DELETE <shop>/checkout/:id.
func (h *Handlers) DestroyOrder(kind store.CollectionKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.DeleteOrder(c.Request.Context(), h.DB, kind, c.Param("id")); err != nil {
			respondStoreError(c, err, "Item Not Found")
			return
		}
		respondMessage(c, "Item Destroy Success")
	}
}

// parseDeliveryDate accepts a full RFC 3339 timestamp or a bare date.
func parseDeliveryDate(value string) (time.Time, error) {
	if when, err := time.Parse(time.RFC3339, value); err == nil {
		return when, nil
	}
	return time.Parse("2006-01-02", value)
}
