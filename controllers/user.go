package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taskdesk/constants"
	"taskdesk/middleware"
	"taskdesk/models"
	"taskdesk/policy"
	"taskdesk/utils"
)

type UserController struct {
	DB *gorm.DB
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateUser creates an account with the given role. Admin only.
func (uc *UserController) CreateUser(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	if !policy.CanCreateUser(actor) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
		return
	}

	var input createUserRequest
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	role, err := constants.ParseRole(input.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
		return
	}

	var position models.Position
	if err := uc.DB.WithContext(c.Request.Context()).
		Where("role = ?", role.String()).
		First(&position).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		RoleID:   position.ID,
	}
	if err := uc.DB.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("%s created successfully", role),
	})
}

type userRow struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ListUsers lists id and name of every user holding the requested
// role. Any authenticated caller may ask; the result feeds assignee
// pickers.
func (uc *UserController) ListUsers(c *gin.Context) {
	raw := c.Query("role")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Role is required"})
		return
	}

	role, err := constants.ParseRole(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
		return
	}

	var rows []userRow
	if err := uc.DB.WithContext(c.Request.Context()).
		Table("users").
		Select("users.id, users.name").
		Joins("JOIN positions ON positions.id = users.role_id").
		Where("positions.role = ?", role.String()).
		Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list users"})
		return
	}

	c.JSON(http.StatusOK, rows)
}
