package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tanakrit-dev/restaurant-order-api/models"
	"github.com/tanakrit-dev/restaurant-order-api/utils"
	"gorm.io/gorm"
)

const paymentColumns = "id, order_id, payment_method, payment_status, amount, paid_at, created_at, updated_at"

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

func isOneOf(value string, choices []string) bool {
	for _, choice := range choices {
		if value == choice {
			return true
		}
	}
	return false
}

// GetAllPayments uses the strict pagination family: a limit is always in
// effect (default 10) and an explicitly bad limit is a 400.
func (pc *PaymentController) GetAllPayments(c *gin.Context) {
	pg, err := utils.ParseStrictPageParams(c)
	if err != nil {
		utils.RespondBadRequest(c, err.Error())
		return
	}

	var payments []models.Payment
	if err := pc.DB.Model(&models.Payment{}).
		Select(paymentColumns).
		Limit(pg.Limit).
		Offset(pg.Offset()).
		Find(&payments).Error; err != nil {
		utils.RespondDBError(c, err)
		return
	}

	var total int64
	if err := pc.DB.Model(&models.Payment{}).Count(&total).Error; err != nil {
		utils.RespondDBError(c, err)
		return
	}
	utils.RespondPagedList(c, len(payments), payments, total, pg.Page, pg.Limit)
}

func (pc *PaymentController) GetPaymentByID(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	var payment models.Payment
	if err := pc.DB.Select(paymentColumns).First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondNotFound(c, "Payment not found")
			return
		}
		utils.RespondDBError(c, err)
		return
	}
	utils.RespondOK(c, payment)
}

func (pc *PaymentController) CreatePayment(c *gin.Context) {
	type request struct {
		OrderID       uint    `json:"order_id" binding:"required"`
		PaymentMethod string  `json:"payment_method" binding:"required"`
		PaymentStatus string  `json:"payment_status"`
		Amount        float64 `json:"amount" binding:"required"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBadRequest(c, "Missing required fields")
		return
	}

	if req.PaymentStatus == "" {
		req.PaymentStatus = "unpaid"
	}
	if !isOneOf(req.PaymentMethod, models.PaymentMethods) {
		utils.RespondBadRequest(c, "Invalid payment_method")
		return
	}
	if !isOneOf(req.PaymentStatus, models.PaymentStatuses) {
		utils.RespondBadRequest(c, "Invalid payment_status")
		return
	}

	payment := models.Payment{
		OrderID:       req.OrderID,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
		Amount:        req.Amount,
	}
	if req.PaymentStatus == "paid" {
		now := time.Now()
		payment.PaidAt = &now
	}

	if err := pc.DB.Create(&payment).Error; err != nil {
		utils.RespondDBError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"id": payment.ID})
}

func (pc *PaymentController) UpdatePayment(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		PaymentMethod *string  `json:"payment_method"`
		PaymentStatus *string  `json:"payment_status"`
		Amount        *float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBadRequest(c, "Invalid request body")
		return
	}

	fields := map[string]interface{}{}
	if req.PaymentMethod != nil {
		if !isOneOf(*req.PaymentMethod, models.PaymentMethods) {
			utils.RespondBadRequest(c, "Invalid payment_method")
			return
		}
		fields["payment_method"] = *req.PaymentMethod
	}
	if req.PaymentStatus != nil {
		if !isOneOf(*req.PaymentStatus, models.PaymentStatuses) {
			utils.RespondBadRequest(c, "Invalid payment_status")
			return
		}
		fields["payment_status"] = *req.PaymentStatus

		// paid_at rides in the same update: set on paid, cleared otherwise.
		if *req.PaymentStatus == "paid" {
			fields["paid_at"] = time.Now()
		} else {
			fields["paid_at"] = nil
		}
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			utils.RespondBadRequest(c, "amount must be a positive number")
			return
		}
		fields["amount"] = *req.Amount
	}

	if len(fields) == 0 {
		utils.RespondBadRequest(c, "No fields to update")
		return
	}

	res := pc.DB.Model(&models.Payment{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		utils.RespondDBError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondNotFound(c, "Payment not found")
		return
	}
	utils.RespondMessage(c, "Payment updated successfully")
}

func (pc *PaymentController) DeletePayment(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	res := pc.DB.Delete(&models.Payment{}, id)
	if res.Error != nil {
		utils.RespondDBError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondNotFound(c, "Payment not found")
		return
	}
	utils.RespondMessage(c, "Payment deleted successfully")
}
