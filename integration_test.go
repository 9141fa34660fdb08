package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tanakrit-dev/restaurant-order-api/models"
	"github.com/tanakrit-dev/restaurant-order-api/router"
	"github.com/tanakrit-dev/restaurant-order-api/utils"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "integration-secret")
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Menu{},
		&models.Order{},
		&models.Payment{},
		&models.Shipping{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode %q: %v", w.Body.String(), err)
	}
	return body
}

// Register, login, then read the new user back: unauthenticated reads are
// rejected, authenticated reads succeed and never expose the password.
func TestRegisterLoginAndProtectedRead(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db, bcrypt.MinCost)

	w := do(t, r, http.MethodPost, "/api/users", "", map[string]string{
		"username": "alice",
		"password": "p1",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["id"].(float64)

	w = do(t, r, http.MethodPost, "/login", "", map[string]string{
		"username": "alice",
		"password": "p1",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	token := decode(t, w)["token"].(string)
	assert.NotEmpty(t, token)

	userPath := fmt.Sprintf("/api/users/%d", int(id))

	w = do(t, r, http.MethodGet, userPath, "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, r, http.MethodGet, userPath, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "alice", data["username"])
	_, hasPassword := data["password"]
	assert.False(t, hasPassword)

	// The principal the gate attached is visible on /api/profile.
	w = do(t, r, http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	profile := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "alice", profile["username"])
	assert.EqualValues(t, id, profile["id"])

	w = do(t, r, http.MethodPost, "/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// Full ordering flow: restaurant -> menu -> order (server-side price) ->
// payment marked paid -> shipping.
func TestOrderFlow(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db, bcrypt.MinCost)

	do(t, r, http.MethodPost, "/api/users", "", map[string]string{
		"username": "staff",
		"password": "s3cret",
	})
	w := do(t, r, http.MethodPost, "/login", "", map[string]string{
		"username": "staff",
		"password": "s3cret",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	token := decode(t, w)["token"].(string)

	w = do(t, r, http.MethodPost, "/api/restaurants", token, map[string]interface{}{
		"restaurant_name": "Khao Gaeng",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	restaurantID := decode(t, w)["id"].(float64)

	w = do(t, r, http.MethodPost, "/api/menus", token, map[string]interface{}{
		"restaurant_id": restaurantID,
		"menu_name":     "Green Curry",
		"price":         50,
		"category":      "main",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	menuID := decode(t, w)["id"].(float64)

	w = do(t, r, http.MethodPost, "/api/orders", token, map[string]interface{}{
		"customer_id":   1,
		"restaurant_id": restaurantID,
		"menu_id":       menuID,
		"quantity":      2,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	orderID := decode(t, w)["id"].(float64)

	var order models.Order
	assert.NoError(t, db.First(&order, uint(orderID)).Error)
	assert.Equal(t, 100.0, order.TotalPrice)

	w = do(t, r, http.MethodPost, "/api/payments", token, map[string]interface{}{
		"order_id":       orderID,
		"payment_method": "prompay",
		"payment_status": "paid",
		"amount":         order.TotalPrice,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	paymentID := decode(t, w)["id"].(float64)

	var payment models.Payment
	assert.NoError(t, db.First(&payment, uint(paymentID)).Error)
	assert.NotNil(t, payment.PaidAt)

	w = do(t, r, http.MethodPost, "/api/shippings", token, map[string]interface{}{
		"order_id":         orderID,
		"receiver_name":    "Alice",
		"shipping_address": "123 Sukhumvit Rd",
		"phone":            "0812345678",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodGet, "/api/orders/summary", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 1, body["count"])
	row := body["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Green Curry", row["menu_name"])
	assert.Equal(t, "Khao Gaeng", row["restaurant_name"])
}

func TestPingIsPublic(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db, bcrypt.MinCost)

	w := do(t, r, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["message"])
}
