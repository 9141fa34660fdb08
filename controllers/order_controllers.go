package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tanakrit-dev/restaurant-order-api/models"
	"github.com/tanakrit-dev/restaurant-order-api/utils"
	"gorm.io/gorm"
)

const orderColumns = "id, customer_id, restaurant_id, menu_id, quantity, price, total_price, status, created_at, updated_at"

const orderSummaryColumns = "orders.id, menus.menu_name, restaurants.restaurant_name, " +
	"orders.quantity, orders.total_price, orders.status, orders.created_at"

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

func (oc *OrderController) GetAllOrders(c *gin.Context) {
	pg := utils.ParsePageParams(c)

	query := oc.DB.Model(&models.Order{}).Select(orderColumns)
	if pg.Limited {
		query = query.Limit(pg.Limit).Offset(pg.Offset())
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondDBError(c, err)
		return
	}

	if !pg.Limited {
		utils.RespondList(c, len(orders), orders)
		return
	}

	var total int64
	if err := oc.DB.Model(&models.Order{}).Count(&total).Error; err != nil {
		utils.RespondDBError(c, err)
		return
	}
	utils.RespondPagedList(c, len(orders), orders, total, pg.Page, pg.Limit)
}

// GetOrderSummary lists orders joined with menu and restaurant names.
func (oc *OrderController) GetOrderSummary(c *gin.Context) {
	var rows []models.OrderSummary
	err := oc.DB.Table("orders").
		Select(orderSummaryColumns).
		Joins("JOIN menus ON menus.id = orders.menu_id").
		Joins("JOIN restaurants ON restaurants.id = orders.restaurant_id").
		Scan(&rows).Error
	if err != nil {
		utils.RespondDBError(c, err)
		return
	}
	utils.RespondList(c, len(rows), rows)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	var order models.Order
	if err := oc.DB.Select(orderColumns).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondNotFound(c, "Order not found")
			return
		}
		utils.RespondDBError(c, err)
		return
	}
	utils.RespondOK(c, order)
}

// CreateOrder looks the unit price up from the menu row; the caller never
// supplies a price.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type request struct {
		CustomerID   uint `json:"customer_id" binding:"required"`
		RestaurantID uint `json:"restaurant_id" binding:"required"`
		MenuID       uint `json:"menu_id" binding:"required"`
		Quantity     int  `json:"quantity" binding:"required"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBadRequest(c, "Missing required fields")
		return
	}

	var menu models.Menu
	if err := oc.DB.Select("id, price").First(&menu, req.MenuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondNotFound(c, "Menu not found")
			return
		}
		utils.RespondDBError(c, err)
		return
	}

	order := models.Order{
		CustomerID:   req.CustomerID,
		RestaurantID: req.RestaurantID,
		MenuID:       req.MenuID,
		Quantity:     req.Quantity,
		Price:        menu.Price,
		TotalPrice:   float64(req.Quantity) * menu.Price,
		Status:       "pending",
	}
	if err := oc.DB.Create(&order).Error; err != nil {
		utils.RespondDBError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"id": order.ID})
}

func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBadRequest(c, "Invalid request body")
		return
	}

	fields := map[string]interface{}{}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	if len(fields) == 0 {
		utils.RespondBadRequest(c, "No fields to update")
		return
	}

	res := oc.DB.Model(&models.Order{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		utils.RespondDBError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondNotFound(c, "Order not found")
		return
	}
	utils.RespondMessage(c, "Order updated successfully")
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	res := oc.DB.Delete(&models.Order{}, id)
	if res.Error != nil {
		utils.RespondDBError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondNotFound(c, "Order not found")
		return
	}
	utils.RespondMessage(c, "Order deleted successfully")
}
