package handlers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/01moynul/review-seller-golang/internal/models"
	"github.com/01moynul/review-seller-golang/internal/store"
	"github.com/gin-gonic/gin"
)

var (
	emailPattern = regexp.MustCompile(`.+@.+\..+`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

type contactInput struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Subject *string `json:"subject"`
	Message *string `json:"message"`
	Status  *string `json:"status"`
}

// CreateContact handles POST /contact-from. Status is server-assigned;
// any status in the request body is ignored.
func (h *Handlers) CreateContact(c *gin.Context) {
	var in contactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	required := []struct {
		name  string
		value *string
	}{
		{"name", in.Name},
		{"email", in.Email},
		{"phone", in.Phone},
		{"subject", in.Subject},
		{"message", in.Message},
	}
	for _, field := range required {
		if field.value == nil || strings.TrimSpace(*field.value) == "" {
			respondBadRequest(c, field.name+" is required and must be a non-empty string.")
			return
		}
	}
	if !emailPattern.MatchString(strings.TrimSpace(*in.Email)) {
		respondBadRequest(c, "email must be a valid email address.")
		return
	}
	if !phonePattern.MatchString(strings.TrimSpace(*in.Phone)) {
		respondBadRequest(c, "phone must be a valid phone number.")
		return
	}

	contact, err := store.CreateContact(c.Request.Context(), h.DB, *in.Name, *in.Email, *in.Phone, *in.Subject, *in.Message)
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, "Item Create Success", contact)
}

// ShowContacts handles GET /contact-from.
func (h *Handlers) ShowContacts(c *gin.Context) {
	opts := store.ContactListOptions{
		ListOptions: listOptions(c),
		Status:      queryFilter(c, "status"),
		FromDate:    queryDate(c, "from_date"),
		ToDate:      queryDate(c, "to_date"),
	}

	contacts, total, err := store.ListContacts(c.Request.Context(), h.DB, opts)
	if err != nil {
		respondStoreError(c, err, "No Data Found")
		return
	}
	if len(contacts) == 0 {
		respondFail(c, "No Data Found")
		return
	}
	respondList(c, "Item Show Success", paginationFor(opts.ListOptions, total), contacts)
}

// SingleContact handles GET /contact-from/:id.
func (h *Handlers) SingleContact(c *gin.Context) {
	contact, err := store.GetContact(c.Request.Context(), h.DB, c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "No Data Found")
		return
	}
	respondOK(c, "Item Show Success", contact)
}

// UpdateContact handles PUT /contact-from/:id. Only supplied fields
// change; supplied fields pass the same rules as create.
func (h *Handlers) UpdateContact(c *gin.Context) {
	var in contactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	for _, field := range []struct {
		name  string
		value *string
	}{
		{"name", in.Name},
		{"email", in.Email},
		{"phone", in.Phone},
		{"subject", in.Subject},
		{"message", in.Message},
	} {
		if field.value != nil && strings.TrimSpace(*field.value) == "" {
			respondBadRequest(c, field.name+" is required and must be a non-empty string.")
			return
		}
	}
	if in.Email != nil && !emailPattern.MatchString(strings.TrimSpace(*in.Email)) {
		respondBadRequest(c, "email must be a valid email address.")
		return
	}
	if in.Phone != nil && !phonePattern.MatchString(strings.TrimSpace(*in.Phone)) {
		respondBadRequest(c, "phone must be a valid phone number.")
		return
	}
	if in.Status != nil && !validChoice(*in.Status, models.ContactStatuses) {
		respondBadRequest(c, fmt.Sprintf("status must be one of [ %s ]", strings.Join(models.ContactStatuses, ", ")))
		return
	}

	contact, err := store.UpdateContact(c.Request.Context(), h.DB, c.Param("id"), store.ContactFields{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: in.Subject,
		Message: in.Message,
		Status:  in.Status,
	})
	if err != nil {
		respondStoreError(c, err, "Item Not Found")
		return
	}
	respondOK(c, "Item Update Success", contact)
}

// DestroyContact handles DELETE /contact-from/:id.
func (h *Handlers) DestroyContact(c *gin.Context) {
	if err := store.DeleteContact(c.Request.Context(), h.DB, c.Param("id")); err != nil {
		respondStoreError(c, err, "Item Not Found")
		return
	}
	respondMessage(c, "Item Destroy Success")
}
