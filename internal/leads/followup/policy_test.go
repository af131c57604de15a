package followup

import (
	"testing"
	"time"
)

func TestInitialDate(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	policy := NewPolicyWithClock(24*time.Hour, 72*time.Hour, func() time.Time { return base })

	got := policy.InitialDate()
	want := base.Add(24 * time.Hour)
	if !got.Equal(want) {
		t.Fatalf("expected initial date %v, got %v", want, got)
	}
}

func TestExtendedDateUsesPreviousDateNotClock(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	policy := NewPolicyWithClock(24*time.Hour, 72*time.Hour, func() time.Time { return base })

	previous := base.Add(-5 * 24 * time.Hour)
	got := policy.ExtendedDate(previous)
	want := previous.Add(72 * time.Hour)
	if !got.Equal(want) {
		t.Fatalf("expected extended date %v, got %v", want, got)
	}
}

func TestDatesAreUTC(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, loc)
	policy := NewPolicyWithClock(time.Hour, time.Hour, func() time.Time { return base })

	if zone, _ := policy.InitialDate().Zone(); zone != "UTC" {
		t.Fatalf("expected UTC initial date, got zone %q", zone)
	}
	if zone, _ := policy.ExtendedDate(base).Zone(); zone != "UTC" {
		t.Fatalf("expected UTC extended date, got zone %q", zone)
	}
}
