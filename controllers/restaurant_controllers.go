package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tanakrit-dev/restaurant-order-api/models"
	"github.com/tanakrit-dev/restaurant-order-api/utils"
	"gorm.io/gorm"
)

const restaurantColumns = "id, restaurant_name, address, phone, menu_description, created_at, updated_at"

type RestaurantController struct {
	DB *gorm.DB
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

// GetAllRestaurants uses the strict pagination family, same as payments.
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	pg, err := utils.ParseStrictPageParams(c)
	if err != nil {
		utils.RespondBadRequest(c, err.Error())
		return
	}

	var restaurants []models.Restaurant
	if err := rc.DB.Model(&models.Restaurant{}).
		Select(restaurantColumns).
		Limit(pg.Limit).
		Offset(pg.Offset()).
		Find(&restaurants).Error; err != nil {
		utils.RespondDBError(c, err)
		return
	}

	var total int64
	if err := rc.DB.Model(&models.Restaurant{}).Count(&total).Error; err != nil {
		utils.RespondDBError(c, err)
		return
	}
	utils.RespondPagedList(c, len(restaurants), restaurants, total, pg.Page, pg.Limit)
}

func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	var restaurant models.Restaurant
	if err := rc.DB.Select(restaurantColumns).First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondNotFound(c, "Restaurant not found")
			return
		}
		utils.RespondDBError(c, err)
		return
	}
	utils.RespondOK(c, restaurant)
}

func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	type request struct {
		RestaurantName  string  `json:"restaurant_name"`
		Address         *string `json:"address"`
		Phone           *string `json:"phone"`
		MenuDescription *string `json:"menu_description"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBadRequest(c, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.RestaurantName) == "" {
		utils.RespondBadRequest(c, "restaurant_name is required")
		return
	}

	restaurant := models.Restaurant{
		RestaurantName:  req.RestaurantName,
		Address:         req.Address,
		Phone:           req.Phone,
		MenuDescription: req.MenuDescription,
	}
	if err := rc.DB.Create(&restaurant).Error; err != nil {
		utils.RespondDBError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"id": restaurant.ID})
}

func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		RestaurantName  *string `json:"restaurant_name"`
		Address         *string `json:"address"`
		Phone           *string `json:"phone"`
		MenuDescription *string `json:"menu_description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBadRequest(c, "Invalid request body")
		return
	}

	fields := map[string]interface{}{}
	if req.RestaurantName != nil {
		fields["restaurant_name"] = *req.RestaurantName
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.MenuDescription != nil {
		fields["menu_description"] = *req.MenuDescription
	}

	if len(fields) == 0 {
		utils.RespondBadRequest(c, "No fields to update")
		return
	}

	res := rc.DB.Model(&models.Restaurant{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		utils.RespondDBError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondNotFound(c, "Restaurant not found")
		return
	}
	utils.RespondMessage(c, "Restaurant updated successfully")
}

func (rc *RestaurantController) DeleteRestaurant(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	res := rc.DB.Delete(&models.Restaurant{}, id)
	if res.Error != nil {
		utils.RespondDBError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondNotFound(c, "Restaurant not found")
		return
	}
	utils.RespondMessage(c, "Restaurant deleted successfully")
}
