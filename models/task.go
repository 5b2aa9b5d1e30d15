package models

import (
	"time"

	"taskdesk/constants"
)

// DeadlineLayout is the wire format for task deadlines, on input and
// output alike.
const DeadlineLayout = "2006-01-02 15:04:05"

type Task struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Title       string           `gorm:"size:255;not null" json:"title"`
	Description string           `gorm:"type:text;not null" json:"description"`
	Deadline    time.Time        `gorm:"not null" json:"deadline"`
	Status      constants.Status `gorm:"size:20;default:'Pending'" json:"status"`
	Remark      string           `gorm:"type:text" json:"remark"`

	CreatedBy  *uint `json:"created_by"`
	AssignedTo *uint `json:"assigned_to"`
	// ApprovedBy exists in the schema but no operation writes it;
	// approval is tracked by status plus remark only.
	ApprovedBy *uint `json:"approved_by"`

	CreatedAt time.Time `json:"created_at"`

	Creator  *User `gorm:"foreignKey:CreatedBy" json:"-"`
	Assignee *User `gorm:"foreignKey:AssignedTo" json:"-"`
	Approver *User `gorm:"foreignKey:ApprovedBy" json:"-"`
}
