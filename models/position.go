package models

// Position is a role row. The role column is free text in the schema;
// the closed set is enforced by seeding and by ParseRole at the API
// boundary, never by the database.
type Position struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Role string `gorm:"size:20;not null" json:"role"`

	Users []User `gorm:"foreignKey:RoleID" json:"-"`
}
