package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taskdesk/constants"
	"taskdesk/models"
	"taskdesk/session"
	"taskdesk/utils"
)

type AuthController struct {
	DB       *gorm.DB
	Sessions session.Store
	Secret   []byte
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login checks credentials and the client's claimed role, then
// establishes the session binding and sets the signed cookie. The
// claimed role must match the account's recorded role; knowing the
// password does not let a client assert a different role.
func (ac *AuthController) Login(c *gin.Context) {
	var input loginRequest
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var user models.User
	if err := ac.DB.WithContext(c.Request.Context()).
		Where("email = ?", input.Email).
		First(&user).Error; err != nil {

		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	if !utils.CheckPassword(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	var position models.Position
	if err := ac.DB.WithContext(c.Request.Context()).First(&position, user.RoleID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to resolve role"})
		return
	}

	if position.Role != input.Role {
		c.JSON(http.StatusForbidden, gin.H{
			"message": fmt.Sprintf("Role mismatch. Please login as %s", position.Role),
		})
		return
	}

	identity := session.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   constants.Role(position.Role),
	}

	sid := session.NewID()
	if err := ac.Sessions.Create(c.Request.Context(), sid, identity, session.TTL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create session"})
		return
	}

	token, err := utils.SignSessionToken(ac.Secret, sid, session.TTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create session"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, token, int(session.TTL.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s login successful", position.Role),
		"role":    position.Role,
		"name":    user.Name,
		"email":   user.Email,
	})
}

// Logout destroys the session binding if one exists. Always succeeds,
// with or without an active session.
func (ac *AuthController) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(session.CookieName); err == nil {
		if sid, err := utils.ParseSessionToken(ac.Secret, cookie); err == nil {
			_ = ac.Sessions.Delete(c.Request.Context(), sid)
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
