package util

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// CountWorkdays menghitung jumlah hari kerja terjadwal (Senin-Jumat) dalam
// satu bulan kalender. Dipakai sebagai pembanding di ringkasan kehadiran
// bulanan.
func CountWorkdays(year int, month time.Month, loc *time.Location) (int, error) {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.DAILY,
		Dtstart:   firstOfMonth,
		Until:     lastOfMonth,
		Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
	})
	if err != nil {
		return 0, fmt.Errorf("gagal membuat recurrence rule hari kerja: %w", err)
	}

	return len(rule.All()), nil
}
