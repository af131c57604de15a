package domain

import "testing"

func TestIsKnownStatus(t *testing.T) {
	known := []Status{
		StatusNew, StatusContacted, StatusQualified,
		StatusProposal, StatusNegotiation, StatusClosed, StatusDeleted,
	}
	for _, s := range known {
		if !IsKnownStatus(s) {
			t.Fatalf("expected %q to be a known status", s)
		}
	}

	for _, s := range []Status{"", "archived", "New", "CLOSED"} {
		if IsKnownStatus(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestNeedsFollowup(t *testing.T) {
	for _, s := range []Status{StatusNew, StatusContacted, StatusQualified, StatusProposal, StatusNegotiation} {
		if !s.NeedsFollowup() {
			t.Fatalf("expected %q to keep a follow-up date", s)
		}
	}
	if StatusClosed.NeedsFollowup() {
		t.Fatal("closed leads must not be due for contact")
	}
	if StatusDeleted.NeedsFollowup() {
		t.Fatal("deleted leads must not be due for contact")
	}
}
