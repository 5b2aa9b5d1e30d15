// Package queries answers "which tasks may this actor see" with
// explicit joins. Each query returns denormalized projection rows, so
// the callers never walk task → assignee → position relations
// themselves.
package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"taskdesk/constants"
	"taskdesk/models"
	"taskdesk/session"
)

// View names for ListTasks. The empty view is the role-scoped
// default.
const (
	ViewMy      = "my"
	ViewApprove = "approve"
)

// TaskRow is the projection returned by GET /tasks.
type TaskRow struct {
	ID           uint    `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Status       string  `json:"status"`
	Remark       string  `json:"remark"`
	Deadline     *string `json:"deadline"`
	AssignedTo   *string `json:"assigned_to"`
	AssignedRole *string `json:"assigned_role"`
	CreatedBy    *string `json:"created_by"`
}

// InboundTaskRow is the projection returned by GET /my-tasks. It
// additionally names the creator's role, since that is what the view
// filters on.
type InboundTaskRow struct {
	ID           uint    `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Status       string  `json:"status"`
	Remark       string  `json:"remark"`
	AssignedTo   *string `json:"assigned_to"`
	AssignedRole *string `json:"assigned_role"`
	CreatedBy    *string `json:"created_by"`
	CreatorRole  *string `json:"creator_role"`
}

// scanRow is the flat shape the joined select lands in. References
// are left-joined, so every derived column is nullable.
type scanRow struct {
	ID           uint
	Title        string
	Description  string
	Status       string
	Remark       string
	Deadline     *time.Time
	AssigneeName *string
	AssigneeRole *string
	CreatorName  *string
	CreatorRole  *string
}

func joined(db *gorm.DB) *gorm.DB {
	return db.Table("tasks").
		Select("tasks.id, tasks.title, tasks.description, tasks.status, tasks.remark, tasks.deadline, " +
			"assignee.name AS assignee_name, assignee_pos.role AS assignee_role, " +
			"creator.name AS creator_name, creator_pos.role AS creator_role").
		Joins("LEFT JOIN users AS assignee ON assignee.id = tasks.assigned_to").
		Joins("LEFT JOIN positions AS assignee_pos ON assignee_pos.id = assignee.role_id").
		Joins("LEFT JOIN users AS creator ON creator.id = tasks.created_by").
		Joins("LEFT JOIN positions AS creator_pos ON creator_pos.id = creator.role_id")
}

// ListTasks returns the tasks the actor may see under the given view.
//
// view=my: tasks assigned to the actor, whoever created them.
// view=approve: Done tasks awaiting a decision — all of them for an
// Admin, Employee-assigned ones for a Manager, none for an Employee.
// default view: Admins see everything, Managers see Employee-assigned
// tasks, Employees see their own.
func ListTasks(ctx context.Context, db *gorm.DB, actor session.Identity, view string) ([]TaskRow, error) {
	tx := joined(db.WithContext(ctx))

	switch view {
	case ViewMy:
		tx = tx.Where("tasks.assigned_to = ?", actor.UserID)

	case ViewApprove:
		switch actor.Role {
		case constants.RoleAdmin:
			tx = tx.Where("tasks.status = ?", constants.StatusDone)
		case constants.RoleManager:
			tx = tx.Where("tasks.status = ? AND assignee_pos.role = ?",
				constants.StatusDone, constants.RoleEmployee)
		default:
			return []TaskRow{}, nil
		}

	default:
		switch actor.Role {
		case constants.RoleAdmin:
			// no filter
		case constants.RoleManager:
			tx = tx.Where("assignee_pos.role = ?", constants.RoleEmployee)
		default:
			tx = tx.Where("tasks.assigned_to = ?", actor.UserID)
		}
	}

	var rows []scanRow
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]TaskRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, TaskRow{
			ID:           r.ID,
			Title:        r.Title,
			Description:  r.Description,
			Status:       r.Status,
			Remark:       r.Remark,
			Deadline:     formatDeadline(r.Deadline),
			AssignedTo:   r.AssigneeName,
			AssignedRole: r.AssigneeRole,
			CreatedBy:    r.CreatorName,
		})
	}
	return out, nil
}

// ListInbound returns the tasks assigned to the actor, filtered by
// who delegated them: Managers see work handed down by an Admin,
// Employees see work handed down by an Admin or a Manager. The
// caller gates out other roles.
func ListInbound(ctx context.Context, db *gorm.DB, actor session.Identity) ([]InboundTaskRow, error) {
	tx := joined(db.WithContext(ctx)).Where("tasks.assigned_to = ?", actor.UserID)

	switch actor.Role {
	case constants.RoleManager:
		tx = tx.Where("creator_pos.role = ?", constants.RoleAdmin)
	case constants.RoleEmployee:
		tx = tx.Where("creator_pos.role IN ?", []constants.Role{constants.RoleAdmin, constants.RoleManager})
	default:
		return []InboundTaskRow{}, nil
	}

	var rows []scanRow
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]InboundTaskRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, InboundTaskRow{
			ID:           r.ID,
			Title:        r.Title,
			Description:  r.Description,
			Status:       r.Status,
			Remark:       r.Remark,
			AssignedTo:   r.AssigneeName,
			AssignedRole: r.AssigneeRole,
			CreatedBy:    r.CreatorName,
			CreatorRole:  r.CreatorRole,
		})
	}
	return out, nil
}

// AssigneeRole resolves the role held by a task's assignee, for the
// approval policy. An absent assignee yields the zero role.
func AssigneeRole(ctx context.Context, db *gorm.DB, assigneeID *uint) (constants.Role, error) {
	if assigneeID == nil {
		return "", nil
	}
	var role string
	err := db.WithContext(ctx).Table("users").
		Select("positions.role").
		Joins("JOIN positions ON positions.id = users.role_id").
		Where("users.id = ?", *assigneeID).
		Scan(&role).Error
	if err != nil {
		return "", err
	}
	return constants.Role(role), nil
}

func formatDeadline(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(models.DeadlineLayout)
	return &s
}
