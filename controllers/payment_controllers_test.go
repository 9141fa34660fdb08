package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/tanakrit-dev/restaurant-order-api/controllers"
	"github.com/tanakrit-dev/restaurant-order-api/models"
)

func setupPaymentRoutes(db *gorm.DB) *gin.Engine {
	r := newTestRouter()
	ctrl := controllers.NewPaymentController(db)

	r.GET("/api/payments", ctrl.GetAllPayments)
	r.POST("/api/payments", ctrl.CreatePayment)
	r.GET("/api/payments/:id", ctrl.GetPaymentByID)
	r.PUT("/api/payments/:id", ctrl.UpdatePayment)
	r.DELETE("/api/payments/:id", ctrl.DeletePayment)
	return r
}

func TestPaymentStrictPagination(t *testing.T) {
	db := setupTestDB(t)
	r := setupPaymentRoutes(db)

	for i := 0; i < 12; i++ {
		db.Create(&models.Payment{OrderID: 1, PaymentMethod: "cash", PaymentStatus: "unpaid", Amount: 10})
	}

	// Limit defaults to 10 and metadata is always present.
	w := performJSON(t, r, http.MethodGet, "/api/payments", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 10, body["count"])
	assert.Len(t, body["data"].([]interface{}), 10)
	assert.EqualValues(t, 12, body["total"])
	assert.EqualValues(t, 1, body["page"])
	assert.EqualValues(t, 10, body["limit"])

	// An explicitly bad limit is rejected on the strict family.
	w = performJSON(t, r, http.MethodGet, "/api/payments?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "limit must be a positive number", decodeBody(t, w)["message"])

	w = performJSON(t, r, http.MethodGet, "/api/payments?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A bad page still falls back to 1.
	w = performJSON(t, r, http.MethodGet, "/api/payments?page=-3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["page"])
}

func TestPaymentCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	r := setupPaymentRoutes(db)

	w := performJSON(t, r, http.MethodPost, "/api/payments", map[string]interface{}{
		"order_id":       1,
		"payment_method": "cash",
		"amount":         120.5,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var payment models.Payment
	assert.NoError(t, db.First(&payment, 1).Error)
	assert.Equal(t, "unpaid", payment.PaymentStatus)
	assert.Nil(t, payment.PaidAt)

	w = performJSON(t, r, http.MethodPost, "/api/payments", map[string]interface{}{
		"order_id":       1,
		"payment_method": "bitcoin",
		"amount":         10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid payment_method", decodeBody(t, w)["message"])

	w = performJSON(t, r, http.MethodPost, "/api/payments", map[string]interface{}{
		"order_id":       1,
		"payment_method": "cash",
		"payment_status": "refunded",
		"amount":         10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid payment_status", decodeBody(t, w)["message"])

	w = performJSON(t, r, http.MethodPost, "/api/payments", map[string]interface{}{
		"order_id": 1,
		"amount":   10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentPaidAtLifecycle(t *testing.T) {
	db := setupTestDB(t)
	r := setupPaymentRoutes(db)

	// Creating as paid stamps paid_at.
	w := performJSON(t, r, http.MethodPost, "/api/payments", map[string]interface{}{
		"order_id":       1,
		"payment_method": "prompay",
		"payment_status": "paid",
		"amount":         80,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var payment models.Payment
	assert.NoError(t, db.First(&payment, 1).Error)
	assert.NotNil(t, payment.PaidAt)

	// Transitioning to unpaid clears it in the same update.
	w = performJSON(t, r, http.MethodPut, "/api/payments/1", map[string]interface{}{
		"payment_status": "unpaid",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Re-fetch into a fresh struct: gorm leaves a stale pointer field
	// untouched when scanning a NULL column into a reused struct.
	payment = models.Payment{}
	assert.NoError(t, db.First(&payment, 1).Error)
	assert.Equal(t, "unpaid", payment.PaymentStatus)
	assert.Nil(t, payment.PaidAt)

	// And back to paid stamps it again.
	w = performJSON(t, r, http.MethodPut, "/api/payments/1", map[string]interface{}{
		"payment_status": "paid",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	payment = models.Payment{}
	assert.NoError(t, db.First(&payment, 1).Error)
	assert.NotNil(t, payment.PaidAt)
}

func TestPaymentUpdateValidation(t *testing.T) {
	db := setupTestDB(t)
	r := setupPaymentRoutes(db)

	db.Create(&models.Payment{OrderID: 1, PaymentMethod: "cash", PaymentStatus: "unpaid", Amount: 10})

	w := performJSON(t, r, http.MethodPut, "/api/payments/1", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No fields to update", decodeBody(t, w)["message"])

	w = performJSON(t, r, http.MethodPut, "/api/payments/1", map[string]interface{}{
		"amount": -5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "amount must be a positive number", decodeBody(t, w)["message"])

	w = performJSON(t, r, http.MethodPut, "/api/payments/abc", map[string]interface{}{
		"amount": 5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "id must be a number", decodeBody(t, w)["message"])

	w = performJSON(t, r, http.MethodPut, "/api/payments/999", map[string]interface{}{
		"amount": 5,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
