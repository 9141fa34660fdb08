package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanakrit-dev/restaurant-order-api/models"
	"github.com/tanakrit-dev/restaurant-order-api/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Password is never part of any user projection.
const userColumns = "id, username, firstname, fullname, lastname, address, phone, email, created_at, updated_at"

type UserController struct {
	DB         *gorm.DB
	BcryptCost int
}

func NewUserController(db *gorm.DB, bcryptCost int) *UserController {
	return &UserController{DB: db, BcryptCost: bcryptCost}
}

// Register -> POST /api/users (public)
func (uc *UserController) Register(c *gin.Context) {
	type request struct {
		Username  string  `json:"username" binding:"required"`
		Password  string  `json:"password" binding:"required"`
		Firstname *string `json:"firstname"`
		Fullname  *string `json:"fullname"`
		Lastname  *string `json:"lastname"`
		Address   *string `json:"address"`
		Phone     *string `json:"phone"`
		Email     *string `json:"email"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBadRequest(c, "Missing required fields")
		return
	}

	// Uniqueness is checked before the insert so a duplicate answers 409
	// instead of surfacing as a driver error.
	dup := uc.DB.Model(&models.User{}).Where("username = ?", req.Username)
	if req.Email != nil {
		dup = uc.DB.Model(&models.User{}).Where("username = ? OR email = ?", req.Username, *req.Email)
	}
	var count int64
	if err := dup.Count(&count).Error; err != nil {
		utils.RespondDBError(c, err)
		return
	}
	if count > 0 {
		utils.RespondConflict(c, "Username or email already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.BcryptCost)
	if err != nil {
		utils.RespondServerError(c, "Server error")
		return
	}

	user := models.User{
		Username:  req.Username,
		Password:  string(hashed),
		Firstname: req.Firstname,
		Fullname:  req.Fullname,
		Lastname:  req.Lastname,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
	}
	if err := uc.DB.Create(&user).Error; err != nil {
		utils.RespondDBError(c, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s", user.Username)
	utils.RespondCreated(c, gin.H{"id": user.ID, "username": user.Username})
}

// Login -> POST /login, answers a signed token on success.
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondBadRequest(c, "Missing required fields")
		return
	}

	var user models.User
	if err := uc.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondUnauthorized(c, "Invalid username or password")
			return
		}
		utils.RespondDBError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondUnauthorized(c, "Invalid username or password")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username)
	if err != nil {
		utils.RespondServerError(c, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout is stateless: the client discards its token, expiry does the rest.
func (uc *UserController) Logout(c *gin.Context) {
	utils.RespondMessage(c, "Logout successful")
}

// GetProfile echoes the principal attached by the auth middleware.
func (uc *UserController) GetProfile(c *gin.Context) {
	utils.RespondOK(c, gin.H{
		"id":       c.GetUint("user_id"),
		"username": c.GetString("username"),
	})
}

func (uc *UserController) GetAllUsers(c *gin.Context) {
	pg := utils.ParsePageParams(c)

	query := uc.DB.Model(&models.User{}).Select(userColumns)
	if pg.Limited {
		query = query.Limit(pg.Limit).Offset(pg.Offset())
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		utils.RespondDBError(c, err)
		return
	}

	if !pg.Limited {
		utils.RespondList(c, len(users), users)
		return
	}

	var total int64
	if err := uc.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		utils.RespondDBError(c, err)
		return
	}
	utils.RespondPagedList(c, len(users), users, total, pg.Page, pg.Limit)
}

func (uc *UserController) GetUserByID(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := uc.DB.Select(userColumns).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondNotFound(c, "User not found")
			return
		}
		utils.RespondDBError(c, err)
		return
	}
	utils.RespondOK(c, user)
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Username  *string `json:"username"`
		Password  *string `json:"password"`
		Firstname *string `json:"firstname"`
		Fullname  *string `json:"fullname"`
		Lastname  *string `json:"lastname"`
		Address   *string `json:"address"`
		Phone     *string `json:"phone"`
		Email     *string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBadRequest(c, "Invalid request body")
		return
	}

	fields := map[string]interface{}{}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Firstname != nil {
		fields["firstname"] = *req.Firstname
	}
	if req.Fullname != nil {
		fields["fullname"] = *req.Fullname
	}
	if req.Lastname != nil {
		fields["lastname"] = *req.Lastname
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), uc.BcryptCost)
		if err != nil {
			utils.RespondServerError(c, "Server error")
			return
		}
		fields["password"] = string(hashed)
	}

	if len(fields) == 0 {
		utils.RespondBadRequest(c, "No fields to update")
		return
	}

	res := uc.DB.Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		utils.RespondDBError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondNotFound(c, "User not found")
		return
	}
	utils.RespondMessage(c, "User updated successfully")
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	res := uc.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		utils.RespondDBError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondNotFound(c, "User not found")
		return
	}
	utils.RespondMessage(c, "User deleted successfully")
}
