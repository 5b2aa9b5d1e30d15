package config

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"taskdesk/constants"
	"taskdesk/models"
	"taskdesk/utils"
)

// Seed inserts the three fixed positions and the bootstrap admin user
// when absent. Safe to run on every start.
func Seed(db *gorm.DB, cfg Config) error {
	var count int64
	if err := db.Model(&models.Position{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count positions: %w", err)
	}
	if count == 0 {
		positions := make([]models.Position, 0, len(constants.AllRoles))
		for _, r := range constants.AllRoles {
			positions = append(positions, models.Position{Role: r.String()})
		}
		if err := db.Create(&positions).Error; err != nil {
			return fmt.Errorf("seed positions: %w", err)
		}
	}

	var adminPos models.Position
	if err := db.Where("role = ?", constants.RoleAdmin.String()).First(&adminPos).Error; err != nil {
		return fmt.Errorf("find admin position: %w", err)
	}

	var existing models.User
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("find admin user: %w", err)
	}

	hashed, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := models.User{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: hashed,
		RoleID:   adminPos.ID,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	log.Println("Admin user created in DB")
	return nil
}
