package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/01moynul/review-seller-golang/internal/blob"
	"github.com/01moynul/review-seller-golang/internal/database"
	"github.com/01moynul/review-seller-golang/internal/handlers"
	"github.com/01moynul/review-seller-golang/internal/routes"
	"github.com/gin-gonic/gin"
)

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Payload    json.RawMessage `json:"payload"`
	Pagination json.RawMessage `json:"pagination"`
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := database.NewTestDB(t)
	uploadDir := t.TempDir()
	store, err := blob.NewDiskStore(uploadDir, "http://localhost:5000")
	if err != nil {
		t.Fatalf("blob store: %v", err)
	}
	h := &handlers.Handlers{DB: db, Blob: store}
	return routes.SetupRouter(h, uploadDir)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w, env
}

func createCategoryT(t *testing.T, router *gin.Engine, name string) string {
	t.Helper()
	w, env := doJSON(t, router, http.MethodPost, "/api/v1/items/categories", gin.H{"categories_name": name})
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("create category %q: code %d body %q", name, w.Code, env.Message)
	}
	var cat struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Payload, &cat); err != nil {
		t.Fatalf("decode category: %v", err)
	}
	return cat.ID
}

func createItemT(t *testing.T, router *gin.Engine, collection, name, categoryID string) string {
	t.Helper()
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	form.WriteField("item_name", name)
	form.WriteField("categories_id", categoryID)
	form.WriteField("features", "5 reviews")
	form.WriteField("features", "fast delivery")
	form.WriteField("price_usd", "10")
	form.WriteField("price_bdt", "1100")
	form.WriteField("review_from", "USA")
	form.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/marketplace-reviews/items/"+collection, &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	if w.Code != http.StatusOK || !env.Success || env.Message != "Item Create Success" {
		t.Fatalf("create item: code %d message %q", w.Code, env.Message)
	}
	var item struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Payload, &item); err != nil {
		t.Fatalf("decode item: %v", err)
	}
	return item.ID
}

func TestCategoryLifecycle(t *testing.T) {
	router := newTestServer(t)

	id := createCategoryT(t, router, "Electronics")

	// Duplicate names fail in the body, not the status code. Categories
	// use the lowercase variant of the duplicate message.
	w, env := doJSON(t, router, http.MethodPost, "/api/v1/items/categories", gin.H{"categories_name": "electronics"})
	if w.Code != http.StatusOK || env.Success || env.Message != "already exists. try another." {
		t.Fatalf("duplicate: code %d success %v message %q", w.Code, env.Success, env.Message)
	}

	w, env = doJSON(t, router, http.MethodPut, "/api/v1/items/categories/"+id, gin.H{"categories_name": "Gadgets"})
	if w.Code != http.StatusOK || !env.Success || env.Message != "Item Update Success" {
		t.Fatalf("rename: code %d message %q", w.Code, env.Message)
	}

	otherID := createCategoryT(t, router, "Books")
	_, env = doJSON(t, router, http.MethodPut, "/api/v1/items/categories/"+otherID, gin.H{"categories_name": "gadgets"})
	if env.Success || env.Message != "already exists. try another." {
		t.Fatalf("rename duplicate: success %v message %q", env.Success, env.Message)
	}

	w, env = doJSON(t, router, http.MethodGet, "/api/v1/items/categories/"+id, nil)
	if !env.Success {
		t.Fatalf("single: %q", env.Message)
	}
	var cat struct {
		Name       string `json:"categories_name"`
		ItemsCount int    `json:"items_count"`
	}
	if err := json.Unmarshal(env.Payload, &cat); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cat.Name != "Gadgets" || cat.ItemsCount != 0 {
		t.Fatalf("unexpected category %+v", cat)
	}

	w, env = doJSON(t, router, http.MethodDelete, "/api/v1/items/categories/"+id, nil)
	if !env.Success || env.Message != "Item Destroy Success" {
		t.Fatalf("delete: %q", env.Message)
	}
	_, env = doJSON(t, router, http.MethodGet, "/api/v1/items/categories/"+id, nil)
	if env.Success || env.Message != "No Data Found" {
		t.Fatalf("expected No Data Found, got %q", env.Message)
	}
}

func TestCategoryValidation(t *testing.T) {
	router := newTestServer(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/items/categories", gin.H{"categories_name": "   "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank name, got %d", w.Code)
	}

	// Malformed ids fail in the body with a 200.
	w, env := doJSON(t, router, http.MethodGet, "/api/v1/items/categories/garbage", nil)
	if w.Code != http.StatusOK || env.Success || env.Message != "Invalid ID Format" {
		t.Fatalf("invalid id: code %d message %q", w.Code, env.Message)
	}
}

func TestCategoryDeleteGuard(t *testing.T) {
	router := newTestServer(t)

	catID := createCategoryT(t, router, "Reviews")
	createItemT(t, router, "fiverr", "Fiverr Gig", catID)

	_, env := doJSON(t, router, http.MethodDelete, "/api/v1/items/categories/"+catID, nil)
	if env.Success || env.Message != "The category cannot be deleted because it contains items." {
		t.Fatalf("expected delete guard, got success=%v %q", env.Success, env.Message)
	}
}

func TestItemCreateAndCounterViaAPI(t *testing.T) {
	router := newTestServer(t)

	catID := createCategoryT(t, router, "Reviews")
	createItemT(t, router, "fiverr", "Fiverr Gig", catID)

	_, env := doJSON(t, router, http.MethodGet, "/api/v1/items/categories/"+catID, nil)
	var cat struct {
		ItemsCount int `json:"items_count"`
	}
	if err := json.Unmarshal(env.Payload, &cat); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cat.ItemsCount != 1 {
		t.Fatalf("expected items_count 1 after create, got %d", cat.ItemsCount)
	}

	// Missing required fields are a 400.
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	form.WriteField("item_name", "No Category")
	form.Close()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/marketplace-reviews/items/fiverr", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d: %s", w.Code, w.Body.String())
	}
}

func TestItemListPaginationEnvelope(t *testing.T) {
	router := newTestServer(t)

	catID := createCategoryT(t, router, "Bulk")
	names := []string{"Alpha", "Bravo", "Charlie"}
	for _, n := range names {
		createItemT(t, router, "upwork", n, catID)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/marketplace-reviews/items/upwork?page=1&limit=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Success || env.Message != "Item Show Success" {
		t.Fatalf("list: %q", env.Message)
	}

	var p struct {
		PerPage     int  `json:"per_page"`
		CurrentPage int  `json:"current_page"`
		TotalData   int  `json:"total_data"`
		TotalPage   int  `json:"total_page"`
		Previous    *int `json:"previous"`
		Next        *int `json:"next"`
	}
	if err := json.Unmarshal(env.Pagination, &p); err != nil {
		t.Fatalf("decode pagination: %v", err)
	}
	if p.TotalData != 3 || p.TotalPage != 2 || p.CurrentPage != 1 {
		t.Fatalf("unexpected pagination %+v", p)
	}
	if p.Previous != nil || p.Next == nil || *p.Next != 2 {
		t.Fatalf("unexpected pagination edges %+v", p)
	}

	// Empty collections answer with a body failure.
	_, env = doJSON(t, router, http.MethodGet, "/api/v1/marketplace-reviews/items/kwork", nil)
	if env.Success || env.Message != "No Data Found" {
		t.Fatalf("expected No Data Found, got %q", env.Message)
	}
}

func TestCheckoutFlow(t *testing.T) {
	router := newTestServer(t)

	catID := createCategoryT(t, router, "Reviews")
	itemID := createItemT(t, router, "fiverr", "Fiverr Gig", catID)

	order := gin.H{
		"item_id": itemID,
		"billing_address": gin.H{
			"first_name": "Ada",
			"last_name":  "Lovelace",
			"email":      "ada@gmail.com",
			"phone":      "+8801711111111",
			"country":    "Bangladesh",
			"address":    "12 Analytical Lane",
		},
	}
	w, env := doJSON(t, router, http.MethodPost, "/api/v1/marketplace-reviews/checkout", order)
	if w.Code != http.StatusOK || !env.Success || env.Message != "Order Success" {
		t.Fatalf("checkout: code %d message %q", w.Code, env.Message)
	}
	var created struct {
		ID       string  `json:"id"`
		ItemName string  `json:"item_name"`
		PriceUSD float64 `json:"price_usd"`
		Status   string  `json:"status"`
	}
	if err := json.Unmarshal(env.Payload, &created); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if created.ItemName != "Fiverr Gig" || created.PriceUSD != 10 || created.Status != "pending" {
		t.Fatalf("unexpected order %+v", created)
	}

	// Update insists on payment method and status.
	w, _ = doJSON(t, router, http.MethodPut, "/api/v1/marketplace-reviews/checkout/"+created.ID, gin.H{
		"status": "completed",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without payment_method, got %d", w.Code)
	}

	w, env = doJSON(t, router, http.MethodPut, "/api/v1/marketplace-reviews/checkout/"+created.ID, gin.H{
		"payment_method": "mobile_bank",
		"status":         "completed",
	})
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("order update: code %d message %q", w.Code, env.Message)
	}

	// A review item is invisible to the boost shop's checkout.
	_, env = doJSON(t, router, http.MethodPost, "/api/v1/social-media-boost/checkout", order)
	if env.Success || env.Message != "Item Not Found" {
		t.Fatalf("expected Item Not Found, got %q", env.Message)
	}
}

func TestCheckoutBillingValidation(t *testing.T) {
	router := newTestServer(t)

	catID := createCategoryT(t, router, "Reviews")
	itemID := createItemT(t, router, "fiverr", "Fiverr Gig", catID)

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/marketplace-reviews/checkout", gin.H{
		"item_id": itemID,
		"billing_address": gin.H{
			"first_name": "Ada",
		},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(env.Message, "is required (string)") {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestContactFormFlow(t *testing.T) {
	router := newTestServer(t)

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/contact-from", gin.H{
		"name":    "Alan Turing",
		"email":   "alan@gmail.com",
		"phone":   "+447911123456",
		"subject": "Enquiry",
		"message": "Do you sell bulk reviews?",
	})
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("contact create: code %d message %q", w.Code, env.Message)
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/contact-from", gin.H{
		"name":    "Alan",
		"email":   "not-an-email",
		"phone":   "+447911123456",
		"subject": "Enquiry",
		"message": "Hello",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", w.Code)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	router := newTestServer(t)

	register := gin.H{
		"first_name":       "Grace",
		"last_name":        "Hopper",
		"email":            "grace@gmail.com",
		"phone":            "+8801712222222",
		"country":          "USA",
		"gender":           "female",
		"password":         "secret123",
		"confirm_password": "secret123",
	}
	w, env := doJSON(t, router, http.MethodPost, "/api/v1/auth/users", register)
	if w.Code != http.StatusOK || !env.Success || env.Message != "Register Success" {
		t.Fatalf("register: code %d message %q", w.Code, env.Message)
	}
	var user struct {
		Role     string `json:"role"`
		Status   string `json:"status"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal(env.Payload, &user); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if user.Role != "user" || user.Status != "pending" {
		t.Fatalf("unexpected defaults %+v", user)
	}
	if user.Password != "" {
		t.Fatalf("password hash leaked in response")
	}

	_, env = doJSON(t, router, http.MethodPost, "/api/v1/auth/users", register)
	if env.Success || env.Message != "Email Already Exists. Try Another !" {
		t.Fatalf("expected email duplicate, got %q", env.Message)
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/users", gin.H{
		"first_name":       "Bad",
		"last_name":        "Domain",
		"email":            "someone@corporate.example",
		"phone":            "+8801713333333",
		"country":          "USA",
		"gender":           "male",
		"password":         "secret123",
		"confirm_password": "secret123",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported mail domain, got %d", w.Code)
	}

	_, env = doJSON(t, router, http.MethodPost, "/api/v1/auth/users/login", gin.H{
		"email":    "Grace@Gmail.Com",
		"password": "secret123",
	})
	if !env.Success || env.Message != "Login Success" {
		t.Fatalf("login: %q", env.Message)
	}
	var session struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Payload, &session); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if session.Token == "" {
		t.Fatalf("expected a token")
	}

	_, env = doJSON(t, router, http.MethodPost, "/api/v1/auth/users/login", gin.H{
		"email":    "grace@gmail.com",
		"password": "wrong",
	})
	if env.Success || env.Message != "Invalid email or password" {
		t.Fatalf("expected login failure, got %q", env.Message)
	}
}

func TestReconcileEndpoint(t *testing.T) {
	router := newTestServer(t)

	catID := createCategoryT(t, router, "Reviews")
	createItemT(t, router, "fiverr", "Fiverr Gig", catID)

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/items/categories/reconcile", nil)
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("reconcile: code %d message %q", w.Code, env.Message)
	}

	_, env = doJSON(t, router, http.MethodGet, "/api/v1/items/categories/"+catID, nil)
	var cat struct {
		ItemsCount int `json:"items_count"`
	}
	if err := json.Unmarshal(env.Payload, &cat); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cat.ItemsCount != 1 {
		t.Fatalf("expected items_count 1 after reconcile, got %d", cat.ItemsCount)
	}
}

func postForm(t *testing.T, router *gin.Engine, path string, fields map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	for key, value := range fields {
		form.WriteField(key, value)
	}
	form.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w, env
}

func TestBoostItemFieldContract(t *testing.T) {
	router := newTestServer(t)
	catID := createCategoryT(t, router, "Boosts")

	// quentity is optional and defaults to 0; review_from is required and
	// stored for boost items too.
	w, env := postForm(t, router, "/api/v1/social-media-boost/items/facebook", map[string]string{
		"item_name":     "Page Likes",
		"categories_id": catID,
		"features":      "1k likes",
		"price":         "30",
		"duration":      "7",
		"review_from":   "Mixed",
	})
	if w.Code != http.StatusOK || !env.Success || env.Message != "Item Create Success" {
		t.Fatalf("boost create: code %d message %q", w.Code, env.Message)
	}
	var item struct {
		ID         string `json:"id"`
		Quantity   int    `json:"quentity"`
		ReviewFrom string `json:"review_from"`
	}
	if err := json.Unmarshal(env.Payload, &item); err != nil {
		t.Fatalf("decode item: %v", err)
	}
	if item.Quantity != 0 {
		t.Fatalf("expected quentity default 0, got %d", item.Quantity)
	}
	if item.ReviewFrom != "Mixed" {
		t.Fatalf("expected review_from stored, got %q", item.ReviewFrom)
	}

	// The stored review_from flows into the boost checkout snapshot.
	_, env = doJSON(t, router, http.MethodPost, "/api/v1/social-media-boost/checkout", gin.H{
		"item_id": item.ID,
		"billing_address": gin.H{
			"first_name": "Ada",
			"last_name":  "Lovelace",
			"email":      "ada@gmail.com",
			"phone":      "+8801711111111",
			"country":    "Bangladesh",
			"address":    "12 Analytical Lane",
		},
	})
	if !env.Success || env.Message != "Order Success" {
		t.Fatalf("boost checkout: %q", env.Message)
	}
	var order struct {
		ReviewFrom string `json:"review_from"`
	}
	if err := json.Unmarshal(env.Payload, &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if order.ReviewFrom != "Mixed" {
		t.Fatalf("expected review_from snapshotted, got %q", order.ReviewFrom)
	}

	// Missing review_from is a 400 for boost items as well.
	w, _ = postForm(t, router, "/api/v1/social-media-boost/items/facebook", map[string]string{
		"item_name":     "Post Shares",
		"categories_id": catID,
		"features":      "500 shares",
		"price":         "15",
		"duration":      "3",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without review_from, got %d", w.Code)
	}

	// Fractional counts are rejected, not truncated.
	w, env = postForm(t, router, "/api/v1/social-media-boost/items/facebook", map[string]string{
		"item_name":     "Video Views",
		"categories_id": catID,
		"features":      "10k views",
		"price":         "20",
		"duration":      "7",
		"quentity":      "2.9",
		"review_from":   "Mixed",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for fractional quentity, got %d: %s", w.Code, env.Message)
	}
}

func TestItemDuplicateMessage(t *testing.T) {
	router := newTestServer(t)
	catID := createCategoryT(t, router, "Reviews")
	createItemT(t, router, "fiverr", "Fiverr Gig", catID)

	// Items keep the capitalized duplicate message.
	w, env := postForm(t, router, "/api/v1/marketplace-reviews/items/fiverr", map[string]string{
		"item_name":     "fiverr gig",
		"categories_id": catID,
		"features":      "x",
		"price_usd":     "5",
		"price_bdt":     "550",
		"review_from":   "USA",
	})
	if w.Code != http.StatusOK || env.Success || env.Message != "Already exists. Try another" {
		t.Fatalf("item duplicate: code %d success %v message %q", w.Code, env.Success, env.Message)
	}
}

func TestOrderPaymentFilter(t *testing.T) {
	router := newTestServer(t)
	catID := createCategoryT(t, router, "Reviews")
	itemID := createItemT(t, router, "fiverr", "Fiverr Gig", catID)

	billing := gin.H{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@gmail.com",
		"phone":      "+8801711111111",
		"country":    "Bangladesh",
		"address":    "12 Analytical Lane",
	}
	for _, payment := range []string{"bank", "mobile_bank"} {
		_, env := doJSON(t, router, http.MethodPost, "/api/v1/marketplace-reviews/checkout", gin.H{
			"item_id":         itemID,
			"billing_address": billing,
			"payment_method":  payment,
		})
		if !env.Success {
			t.Fatalf("checkout with %s: %q", payment, env.Message)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/marketplace-reviews/checkout?payment=bank", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Success {
		t.Fatalf("filtered list: %q", env.Message)
	}
	var orders []struct {
		PaymentMethod string `json:"payment_method"`
	}
	if err := json.Unmarshal(env.Payload, &orders); err != nil {
		t.Fatalf("decode orders: %v", err)
	}
	if len(orders) != 1 || orders[0].PaymentMethod != "bank" {
		t.Fatalf("expected only the bank order, got %+v", orders)
	}
}

func TestHealthRoute(t *testing.T) {
	router := newTestServer(t)

	w, env := doJSON(t, router, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK || !env.Success || env.Message != "Server Running Success!" {
		t.Fatalf("health: code %d message %q", w.Code, env.Message)
	}
}
