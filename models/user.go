package models

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:500;not null" json:"-"`
	RoleID   uint   `gorm:"not null" json:"role_id"`

	Position Position `gorm:"foreignKey:RoleID" json:"-"`
}
