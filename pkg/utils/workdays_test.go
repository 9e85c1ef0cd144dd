package util

import (
	"testing"
	"time"
)

func TestCountWorkdays(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2026, time.September, 22},
		{2026, time.February, 20},
		{2026, time.May, 21},
		{2024, time.February, 21}, // tahun kabisat
	}

	for _, tt := range tests {
		got, err := CountWorkdays(tt.year, tt.month, time.UTC)
		if err != nil {
			t.Fatalf("CountWorkdays(%d, %v) error: %v", tt.year, tt.month, err)
		}
		if got != tt.want {
			t.Errorf("CountWorkdays(%d, %v) = %d, harusnya %d", tt.year, tt.month, got, tt.want)
		}
	}
}
