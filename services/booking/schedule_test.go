package booking

import (
	"testing"
	"time"
)

func TestComputeInterval_NormalizesShortTime(t *testing.T) {
	iv, err := ComputeInterval("2026-09-01", "10:00", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	if !iv.Start.Equal(want) {
		t.Fatalf("expected start %s, got %s", want, iv.Start)
	}
	if !iv.End.Equal(want.Add(30 * time.Minute)) {
		t.Fatalf("expected end %s, got %s", want.Add(30*time.Minute), iv.End)
	}
}

func TestComputeInterval_AcceptsSeconds(t *testing.T) {
	iv, err := ComputeInterval("2026-09-01", "14:30:00", 45)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iv.End.Sub(iv.Start) != 45*time.Minute {
		t.Fatalf("expected 45m interval, got %s", iv.End.Sub(iv.Start))
	}
}

func TestComputeInterval_InvalidInputs(t *testing.T) {
	cases := []struct {
		name     string
		date     string
		timeOfD  string
		duration int
	}{
		{"bad date", "not-a-date", "10:00", 30},
		{"bad time", "2026-09-01", "25:99", 30},
		{"empty time", "2026-09-01", "", 30},
		{"zero duration", "2026-09-01", "10:00", 0},
		{"negative duration", "2026-09-01", "10:00", -15},
	}
	for _, tc := range cases {
		if _, err := ComputeInterval(tc.date, tc.timeOfD, tc.duration); err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
	}
}

func TestOverlaps_BackToBackIsNotAConflict(t *testing.T) {
	first, err := ComputeInterval("2026-09-01", "10:00", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeInterval("2026-09-01", "10:30", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Overlaps(second) || second.Overlaps(first) {
		t.Fatal("appointments that touch at a boundary must not conflict")
	}
}

func TestOverlaps_PartialAndContained(t *testing.T) {
	base, _ := ComputeInterval("2026-09-01", "10:00", 60)
	partial, _ := ComputeInterval("2026-09-01", "10:30", 60)
	contained, _ := ComputeInterval("2026-09-01", "10:15", 15)
	before, _ := ComputeInterval("2026-09-01", "08:00", 60)

	if !base.Overlaps(partial) {
		t.Fatal("expected partial overlap to conflict")
	}
	if !base.Overlaps(contained) {
		t.Fatal("expected contained interval to conflict")
	}
	if base.Overlaps(before) {
		t.Fatal("expected disjoint intervals not to conflict")
	}
}

func TestOverlaps_Symmetric(t *testing.T) {
	a, _ := ComputeInterval("2026-09-01", "09:00", 90)
	b, _ := ComputeInterval("2026-09-01", "10:00", 30)

	if a.Overlaps(b) != b.Overlaps(a) {
		t.Fatal("overlap must be symmetric")
	}
}

func TestHasConflict(t *testing.T) {
	candidate, _ := ComputeInterval("2026-09-01", "10:00", 30)
	other, _ := ComputeInterval("2026-09-01", "11:00", 30)
	clash, _ := ComputeInterval("2026-09-01", "10:15", 30)

	if HasConflict(candidate, []Interval{other}) {
		t.Fatal("expected no conflict against a disjoint set")
	}
	if !HasConflict(candidate, []Interval{other, clash}) {
		t.Fatal("expected a conflict when any interval overlaps")
	}
	if HasConflict(candidate, nil) {
		t.Fatal("expected no conflict against an empty set")
	}
}
