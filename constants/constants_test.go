package constants

import "testing"

func TestParseRole(t *testing.T) {
	for _, role := range AllRoles {
		got, err := ParseRole(role.String())
		if err != nil || got != role {
			t.Fatalf("ParseRole(%q) = %v, %v", role, got, err)
		}
	}

	for _, bad := range []string{"", "admin", "Intern", "ADMIN"} {
		if _, err := ParseRole(bad); err == nil {
			t.Fatalf("ParseRole(%q) must fail", bad)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, status := range []Status{StatusPending, StatusDone, StatusApproved, StatusRejected} {
		got, err := ParseStatus(status.String())
		if err != nil || got != status {
			t.Fatalf("ParseStatus(%q) = %v, %v", status, got, err)
		}
	}
	if _, err := ParseStatus("done"); err == nil {
		t.Fatalf("status parsing is case sensitive")
	}

	if !StatusApproved.IsDecision() || !StatusRejected.IsDecision() {
		t.Fatalf("Approved and Rejected are decisions")
	}
	if StatusPending.IsDecision() || StatusDone.IsDecision() {
		t.Fatalf("Pending and Done are not decisions")
	}
	if !StatusPending.IsProgress() || !StatusDone.IsProgress() {
		t.Fatalf("Pending and Done are progress statuses")
	}
	if StatusApproved.IsProgress() || StatusRejected.IsProgress() {
		t.Fatalf("decisions are not progress statuses")
	}
}
