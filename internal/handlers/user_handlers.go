package handlers

import (
	"fmt"
	"strings"

	"github.com/01moynul/review-seller-golang/internal/auth"
	"github.com/01moynul/review-seller-golang/internal/models"
	"github.com/01moynul/review-seller-golang/internal/store"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// allowedEmailDomains limits registration to consumer mail providers.
var allowedEmailDomains = []string{
	"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "live.com",
	"icloud.com", "aol.com", "mail.com", "protonmail.com", "zoho.com",
	"gmx.com", "rediffmail.com", "naver.com", "qq.com",
}

type registerInput struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Country         string `json:"country"`
	Gender          string `json:"gender"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userUpdateInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Country   *string `json:"country"`
	Gender    *string `json:"gender"`
	Role      *string `json:"role"`
	Status    *string `json:"status"`
}

// Register handles POST /auth/users. New accounts always start as role
// "user" and status "pending"; promotion happens through update.
func (h *Handlers) Register(c *gin.Context) {
	var in registerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	required := []struct {
		name  string
		value string
	}{
		{"first_name", in.FirstName},
		{"last_name", in.LastName},
		{"email", in.Email},
		{"phone", in.Phone},
		{"country", in.Country},
		{"gender", in.Gender},
		{"password", in.Password},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			respondBadRequest(c, field.name+" is required and must be a non-empty string.")
			return
		}
	}
	if !validEmailDomain(in.Email) {
		respondBadRequest(c, "email must use a supported mail provider.")
		return
	}
	if !phonePattern.MatchString(strings.TrimSpace(in.Phone)) {
		respondBadRequest(c, "phone must be a valid phone number.")
		return
	}
	if !validChoice(in.Gender, models.UserGenders) {
		respondBadRequest(c, fmt.Sprintf("gender must be one of [ %s ]", strings.Join(models.UserGenders, ", ")))
		return
	}
	if len(in.Password) < 6 {
		respondBadRequest(c, "password must be at least 6 characters.")
		return
	}
	if in.Password != in.ConfirmPassword {
		respondBadRequest(c, "password and confirm_password do not match.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		respondInternal(c, err)
		return
	}

	user, err := store.CreateUser(c.Request.Context(), h.DB, store.NewUser{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		Country:      in.Country,
		Gender:       in.Gender,
		PasswordHash: string(hash),
	})
	if err != nil {
		respondStoreError(c, err, "Item Not Found")
		return
	}
	respondOK(c, "Register Success", user)
}

// Login handles POST /auth/users/login. A wrong email and a wrong
// password produce the same failure message.
func (h *Handlers) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		respondBadRequest(c, "email and password are required.")
		return
	}

	user, err := store.GetUserByEmail(c.Request.Context(), h.DB, in.Email)
	if err != nil {
		respondFail(c, "Invalid email or password")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)) != nil {
		respondFail(c, "Invalid email or password")
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondOK(c, "Login Success", gin.H{"token": token, "user": user})
}

// ShowUsers handles GET /auth/users.
func (h *Handlers) ShowUsers(c *gin.Context) {
	opts := store.UserListOptions{
		ListOptions: listOptions(c),
		Gender:      queryFilter(c, "gender"),
		Role:        queryFilter(c, "role"),
		Status:      queryFilter(c, "status"),
		FromDate:    queryDate(c, "from_date"),
		ToDate:      queryDate(c, "to_date"),
	}

	users, total, err := store.ListUsers(c.Request.Context(), h.DB, opts)
	if err != nil {
		respondStoreError(c, err, "No Data Found")
		return
	}
	if len(users) == 0 {
		respondFail(c, "No Data Found")
		return
	}
	respondList(c, "Item Show Success", paginationFor(opts.ListOptions, total), users)
}

// SingleUser handles GET /auth/users/:id.
func (h *Handlers) SingleUser(c *gin.Context) {
	user, err := store.GetUser(c.Request.Context(), h.DB, c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "No Data Found")
		return
	}
	respondOK(c, "Item Show Success", user)
}

// UpdateUser handles PUT /auth/users/:id. Email, phone and password are
// not editable here.
func (h *Handlers) UpdateUser(c *gin.Context) {
	var in userUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	if in.Gender != nil && !validChoice(*in.Gender, models.UserGenders) {
		respondBadRequest(c, fmt.Sprintf("gender must be one of [ %s ]", strings.Join(models.UserGenders, ", ")))
		return
	}
	if in.Role != nil && !validChoice(*in.Role, models.UserRoles) {
		respondBadRequest(c, fmt.Sprintf("role must be one of [ %s ]", strings.Join(models.UserRoles, ", ")))
		return
	}
	if in.Status != nil && !validChoice(*in.Status, models.UserStatuses) {
		respondBadRequest(c, fmt.Sprintf("status must be one of [ %s ]", strings.Join(models.UserStatuses, ", ")))
		return
	}

	user, err := store.UpdateUser(c.Request.Context(), h.DB, c.Param("id"), store.UserFields{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Country:   in.Country,
		Gender:    in.Gender,
		Role:      in.Role,
		Status:    in.Status,
	})
	if err != nil {
		respondStoreError(c, err, "Item Not Found")
		return
	}
	respondOK(c, "Item Update Success", user)
}

// DestroyUser handles DELETE /auth/users/:id.
func (h *Handlers) DestroyUser(c *gin.Context) {
	if err := store.DeleteUser(c.Request.Context(), h.DB, c.Param("id")); err != nil {
		respondStoreError(c, err, "Item Not Found")
		return
	}
	respondMessage(c, "Item Destroy Success")
}

func validEmailDomain(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return false
	}
	at := strings.LastIndex(email, "@")
	domain := email[at+1:]
	for _, d := range allowedEmailDomains {
		if domain == d {
			return true
		}
	}
	return false
}
