package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tanakrit-dev/restaurant-order-api/models"
	"github.com/tanakrit-dev/restaurant-order-api/utils"
	"gorm.io/gorm"
)

const menuColumns = "id, restaurant_id, menu_name, description, price, category, created_at, updated_at"

const menuJoinedColumns = "menus.id, menus.restaurant_id, restaurants.restaurant_name, " +
	"menus.menu_name, menus.description, menus.price, menus.category, menus.created_at, menus.updated_at"

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenus lists menus joined with their restaurant name.
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	pg := utils.ParsePageParams(c)

	query := mc.DB.Table("menus").
		Select(menuJoinedColumns).
		Joins("JOIN restaurants ON restaurants.id = menus.restaurant_id")
	if pg.Limited {
		query = query.Limit(pg.Limit).Offset(pg.Offset())
	}

	var menus []models.MenuWithRestaurant
	if err := query.Scan(&menus).Error; err != nil {
		utils.RespondDBError(c, err)
		return
	}

	if !pg.Limited {
		utils.RespondList(c, len(menus), menus)
		return
	}

	var total int64
	if err := mc.DB.Model(&models.Menu{}).Count(&total).Error; err != nil {
		utils.RespondDBError(c, err)
		return
	}
	utils.RespondPagedList(c, len(menus), menus, total, pg.Page, pg.Limit)
}

func (mc *MenuController) GetMenuByID(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	var menu models.Menu
	if err := mc.DB.Select(menuColumns).First(&menu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondNotFound(c, "Menu not found")
			return
		}
		utils.RespondDBError(c, err)
		return
	}
	utils.RespondOK(c, menu)
}

func (mc *MenuController) CreateMenu(c *gin.Context) {
	type request struct {
		RestaurantID uint    `json:"restaurant_id" binding:"required"`
		MenuName     string  `json:"menu_name" binding:"required"`
		Description  *string `json:"description"`
		Price        float64 `json:"price" binding:"required"`
		Category     string  `json:"category" binding:"required"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBadRequest(c, "Missing required fields")
		return
	}

	menu := models.Menu{
		RestaurantID: req.RestaurantID,
		MenuName:     req.MenuName,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
	}
	if err := mc.DB.Create(&menu).Error; err != nil {
		utils.RespondDBError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"id": menu.ID})
}

func (mc *MenuController) UpdateMenu(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		RestaurantID *uint    `json:"restaurant_id"`
		MenuName     *string  `json:"menu_name"`
		Description  *string  `json:"description"`
		Price        *float64 `json:"price"`
		Category     *string  `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBadRequest(c, "Invalid request body")
		return
	}

	fields := map[string]interface{}{}
	if req.RestaurantID != nil {
		fields["restaurant_id"] = *req.RestaurantID
	}
	if req.MenuName != nil {
		fields["menu_name"] = *req.MenuName
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}

	if len(fields) == 0 {
		utils.RespondBadRequest(c, "No fields to update")
		return
	}

	res := mc.DB.Model(&models.Menu{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		utils.RespondDBError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondNotFound(c, "Menu not found")
		return
	}
	utils.RespondMessage(c, "Menu updated successfully")
}

func (mc *MenuController) DeleteMenu(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	res := mc.DB.Delete(&models.Menu{}, id)
	if res.Error != nil {
		utils.RespondDBError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondNotFound(c, "Menu not found")
		return
	}
	utils.RespondMessage(c, "Menu deleted successfully")
}
