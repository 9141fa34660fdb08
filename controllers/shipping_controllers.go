package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tanakrit-dev/restaurant-order-api/models"
	"github.com/tanakrit-dev/restaurant-order-api/utils"
	"gorm.io/gorm"
)

const shippingColumns = "id, order_id, receiver_name, shipping_address, phone, shipping_status, created_at, updated_at"

type ShippingController struct {
	DB *gorm.DB
}

func NewShippingController(db *gorm.DB) *ShippingController {
	return &ShippingController{DB: db}
}

func (sc *ShippingController) GetAllShippings(c *gin.Context) {
	pg := utils.ParsePageParams(c)

	query := sc.DB.Model(&models.Shipping{}).Select(shippingColumns)
	if pg.Limited {
		query = query.Limit(pg.Limit).Offset(pg.Offset())
	}

	var shippings []models.Shipping
	if err := query.Find(&shippings).Error; err != nil {
		utils.RespondDBError(c, err)
		return
	}

	if !pg.Limited {
		utils.RespondList(c, len(shippings), shippings)
		return
	}

	var total int64
	if err := sc.DB.Model(&models.Shipping{}).Count(&total).Error; err != nil {
		utils.RespondDBError(c, err)
		return
	}
	utils.RespondPagedList(c, len(shippings), shippings, total, pg.Page, pg.Limit)
}

func (sc *ShippingController) GetShippingByID(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	var shipping models.Shipping
	if err := sc.DB.Select(shippingColumns).First(&shipping, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondNotFound(c, "Shipping not found")
			return
		}
		utils.RespondDBError(c, err)
		return
	}
	utils.RespondOK(c, shipping)
}

func (sc *ShippingController) CreateShipping(c *gin.Context) {
	type request struct {
		OrderID         uint   `json:"order_id" binding:"required"`
		ReceiverName    string `json:"receiver_name" binding:"required"`
		ShippingAddress string `json:"shipping_address" binding:"required"`
		Phone           string `json:"phone" binding:"required"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBadRequest(c, "Missing required fields")
		return
	}

	shipping := models.Shipping{
		OrderID:         req.OrderID,
		ReceiverName:    req.ReceiverName,
		ShippingAddress: req.ShippingAddress,
		Phone:           req.Phone,
		ShippingStatus:  "pending",
	}
	if err := sc.DB.Create(&shipping).Error; err != nil {
		utils.RespondDBError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"id": shipping.ID})
}

func (sc *ShippingController) UpdateShipping(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		ReceiverName    *string `json:"receiver_name"`
		ShippingAddress *string `json:"shipping_address"`
		Phone           *string `json:"phone"`
		ShippingStatus  *string `json:"shipping_status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBadRequest(c, "Invalid request body")
		return
	}

	fields := map[string]interface{}{}
	if req.ReceiverName != nil {
		fields["receiver_name"] = *req.ReceiverName
	}
	if req.ShippingAddress != nil {
		fields["shipping_address"] = *req.ShippingAddress
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.ShippingStatus != nil {
		fields["shipping_status"] = *req.ShippingStatus
	}

	if len(fields) == 0 {
		utils.RespondBadRequest(c, "No fields to update")
		return
	}

	res := sc.DB.Model(&models.Shipping{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		utils.RespondDBError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondNotFound(c, "Shipping not found")
		return
	}
	utils.RespondMessage(c, "Shipping updated successfully")
}

func (sc *ShippingController) DeleteShipping(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	res := sc.DB.Delete(&models.Shipping{}, id)
	if res.Error != nil {
		utils.RespondDBError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondNotFound(c, "Shipping not found")
		return
	}
	utils.RespondMessage(c, "Shipping deleted successfully")
}
