// Package policy decides who may do what to a task. Decisions are
// pure: callers hand in the actor and the denormalized facts about
// the task (creator id, assignee id, assignee role) and get a
// verdict. Nothing in here touches storage.
package policy

import (
	"taskdesk/constants"
	"taskdesk/session"
)

// TaskFacts is the slice of a task the policy needs. Creator and
// assignee references are nullable in the schema, so they arrive as
// pointers; an absent reference never matches any actor.
type TaskFacts struct {
	CreatorID    *uint
	AssigneeID   *uint
	AssigneeRole constants.Role // zero when the assignee reference is absent
}

// CanEdit reports whether the actor may update the task's fields.
// Managers may edit only tasks they created. Admins may edit any
// task. Employees pass with nothing beyond an active session; that
// matches the system this replaces and is a known gap, kept on
// purpose rather than silently fixed.
func CanEdit(actor session.Identity, task TaskFacts) bool {
	if actor.Role == constants.RoleManager {
		return task.CreatorID != nil && *task.CreatorID == actor.UserID
	}
	return true
}

// CanDelete mirrors CanEdit: the same creator-ownership rule for
// Managers, the same Employee gap.
func CanDelete(actor session.Identity, task TaskFacts) bool {
	return CanEdit(actor, task)
}

// CanSetProgress reports whether the actor may move the task between
// Pending and Done. Only the task's assignee may, whatever their
// role.
func CanSetProgress(actor session.Identity, task TaskFacts) bool {
	return task.AssigneeID != nil && *task.AssigneeID == actor.UserID
}

// CanDecide reports whether the actor may approve or reject the
// task. Admins may decide any task; Managers only tasks assigned to
// an Employee; Employees never.
func CanDecide(actor session.Identity, task TaskFacts) bool {
	switch actor.Role {
	case constants.RoleAdmin:
		return true
	case constants.RoleManager:
		return task.AssigneeRole == constants.RoleEmployee
	}
	return false
}

// CanCreateUser reports whether the actor may create accounts.
func CanCreateUser(actor session.Identity) bool {
	return actor.Role == constants.RoleAdmin
}
