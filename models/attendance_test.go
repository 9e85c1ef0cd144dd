package models

import (
	"testing"
	"time"
)

func TestAttendanceStatusDerivation(t *testing.T) {
	punchIn := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	punchOut := time.Date(2026, 9, 15, 17, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		attendance Attendance
		want       string
	}{
		{"tanpa punch", Attendance{}, StatusNotPunchedIn},
		{"hanya punch-in", Attendance{PunchIn: &punchIn}, StatusPunchedIn},
		{"punch-in dan punch-out", Attendance{PunchIn: &punchIn, PunchOut: &punchOut}, StatusPunchedOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.attendance.Status(); got != tt.want {
				t.Errorf("Status() = %q, harusnya %q", got, tt.want)
			}
		})
	}
}

func TestRoundHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  float64
	}{
		{8.5, 8.5},
		{7.333333333, 7.33},
		{7.336, 7.34},
		{0.004, 0},
		{0.005, 0.01},
		{0, 0},
	}

	for _, tt := range tests {
		if got := RoundHours(tt.hours); got != tt.want {
			t.Errorf("RoundHours(%v) = %v, harusnya %v", tt.hours, got, tt.want)
		}
	}
}

func TestToResponseIncludesDerivedStatus(t *testing.T) {
	punchIn := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	attendance := Attendance{Date: "2026-09-15", PunchIn: &punchIn}

	response := attendance.ToResponse()
	if response.Status != StatusPunchedIn {
		t.Errorf("status = %q, harusnya %q", response.Status, StatusPunchedIn)
	}
	if response.Date != "2026-09-15" {
		t.Errorf("date = %q, harusnya 2026-09-15", response.Date)
	}
}
