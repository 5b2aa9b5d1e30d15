package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskdesk/constants"
	"taskdesk/session"
)

func actor(role constants.Role, id uint) session.Identity {
	return session.Identity{UserID: id, Email: "a@example.com", Role: role}
}

func uintPtr(v uint) *uint { return &v }

// The full (role × ownership) grid for edits. The Employee row is
// permissive on purpose: the system this replaces never checked
// ownership for Employees and that behavior is kept.
func TestCanEdit(t *testing.T) {
	self := uint(7)
	other := uint(8)

	cases := []struct {
		name    string
		role    constants.Role
		creator *uint
		want    bool
	}{
		{"admin on own task", constants.RoleAdmin, uintPtr(self), true},
		{"admin on foreign task", constants.RoleAdmin, uintPtr(other), true},
		{"admin on creatorless task", constants.RoleAdmin, nil, true},
		{"manager on own task", constants.RoleManager, uintPtr(self), true},
		{"manager on foreign task", constants.RoleManager, uintPtr(other), false},
		{"manager on creatorless task", constants.RoleManager, nil, false},
		{"employee on own task", constants.RoleEmployee, uintPtr(self), true},
		{"employee on foreign task", constants.RoleEmployee, uintPtr(other), true},
		{"employee on creatorless task", constants.RoleEmployee, nil, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CanEdit(actor(tc.role, self), TaskFacts{CreatorID: tc.creator})
			assert.Equal(t, tc.want, got)

			// Deletion follows the exact same rule.
			assert.Equal(t, tc.want, CanDelete(actor(tc.role, self), TaskFacts{CreatorID: tc.creator}))
		})
	}
}

func TestCanSetProgress(t *testing.T) {
	self := uint(7)
	other := uint(8)

	for _, role := range constants.AllRoles {
		t.Run(role.String(), func(t *testing.T) {
			assert.True(t, CanSetProgress(actor(role, self), TaskFacts{AssigneeID: uintPtr(self)}),
				"assignee may always move their task")
			assert.False(t, CanSetProgress(actor(role, self), TaskFacts{AssigneeID: uintPtr(other)}),
				"non-assignee may never move a task")
			assert.False(t, CanSetProgress(actor(role, self), TaskFacts{AssigneeID: nil}),
				"an unassigned task has no mover")
		})
	}
}

func TestCanDecide(t *testing.T) {
	cases := []struct {
		name         string
		role         constants.Role
		assigneeRole constants.Role
		want         bool
	}{
		{"admin over employee", constants.RoleAdmin, constants.RoleEmployee, true},
		{"admin over manager", constants.RoleAdmin, constants.RoleManager, true},
		{"admin over admin", constants.RoleAdmin, constants.RoleAdmin, true},
		{"admin over unassigned", constants.RoleAdmin, "", true},
		{"manager over employee", constants.RoleManager, constants.RoleEmployee, true},
		{"manager over manager", constants.RoleManager, constants.RoleManager, false},
		{"manager over admin", constants.RoleManager, constants.RoleAdmin, false},
		{"manager over unassigned", constants.RoleManager, "", false},
		{"employee over employee", constants.RoleEmployee, constants.RoleEmployee, false},
		{"employee over manager", constants.RoleEmployee, constants.RoleManager, false},
		{"employee over admin", constants.RoleEmployee, constants.RoleAdmin, false},
		{"employee over unassigned", constants.RoleEmployee, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CanDecide(actor(tc.role, 1), TaskFacts{AssigneeRole: tc.assigneeRole})
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCanCreateUser(t *testing.T) {
	assert.True(t, CanCreateUser(actor(constants.RoleAdmin, 1)))
	assert.False(t, CanCreateUser(actor(constants.RoleManager, 1)))
	assert.False(t, CanCreateUser(actor(constants.RoleEmployee, 1)))
}
