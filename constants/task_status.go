package constants

import "fmt"

// Status is the task lifecycle state. Tasks start Pending, the
// assignee toggles Pending/Done, an approver settles Done work as
// Approved or Rejected.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusDone     Status = "Done"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusDone, StatusApproved, StatusRejected:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// IsDecision reports whether the status is one an approver sets.
func (s Status) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// IsProgress reports whether the status is one an assignee sets.
func (s Status) IsProgress() bool {
	return s == StatusPending || s == StatusDone
}

func (s Status) String() string {
	return string(s)
}
