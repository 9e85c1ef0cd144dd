package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Parlour-Admin-Dashboard/models"
)

func newRecord(employeeID primitive.ObjectID, date string, punchIn time.Time) *models.Attendance {
	in := punchIn
	return &models.Attendance{
		ID:         primitive.NewObjectID(),
		EmployeeID: employeeID,
		Date:       date,
		PunchIn:    &in,
	}
}

func TestMemoryCreateRejectsDuplicate(t *testing.T) {
	repo := NewMemoryAttendanceRepository()
	employeeID := primitive.NewObjectID()
	punchIn := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)

	if err := repo.Create(context.Background(), newRecord(employeeID, "2026-09-15", punchIn)); err != nil {
		t.Fatalf("create pertama gagal: %v", err)
	}
	err := repo.Create(context.Background(), newRecord(employeeID, "2026-09-15", punchIn))
	if !errors.Is(err, ErrDuplicateRecord) {
		t.Fatalf("create kedua = %v, harusnya ErrDuplicateRecord", err)
	}

	// Tanggal lain dan karyawan lain tetap boleh.
	if err := repo.Create(context.Background(), newRecord(employeeID, "2026-09-16", punchIn)); err != nil {
		t.Errorf("tanggal berbeda ditolak: %v", err)
	}
	if err := repo.Create(context.Background(), newRecord(primitive.NewObjectID(), "2026-09-15", punchIn)); err != nil {
		t.Errorf("karyawan berbeda ditolak: %v", err)
	}
}

func TestMemoryCreateConcurrentExactlyOneWins(t *testing.T) {
	repo := NewMemoryAttendanceRepository()
	employeeID := primitive.NewObjectID()
	punchIn := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)

	const workers = 32
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(context.Background(), newRecord(employeeID, "2026-09-15", punchIn))
		}(i)
	}
	wg.Wait()

	var success int
	for _, err := range errs {
		if err == nil {
			success++
		} else if !errors.Is(err, ErrDuplicateRecord) {
			t.Fatalf("error tidak terduga: %v", err)
		}
	}
	if success != 1 {
		t.Fatalf("sukses = %d, harusnya tepat 1", success)
	}
}

func TestMemoryUpdateSetPunchOutOnlyClosesOpenRecord(t *testing.T) {
	repo := NewMemoryAttendanceRepository()
	employeeID := primitive.NewObjectID()
	punchIn := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	record := newRecord(employeeID, "2026-09-15", punchIn)

	if err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("create gagal: %v", err)
	}

	punchOut := punchIn.Add(8 * time.Hour)
	updated, err := repo.UpdateSetPunchOut(context.Background(), record.ID, punchOut, 8)
	if err != nil {
		t.Fatalf("update gagal: %v", err)
	}
	if updated == nil {
		t.Fatalf("update pertama harusnya mengenai record")
	}
	if updated.TotalHours != 8 || updated.PunchOut == nil {
		t.Errorf("hasil update tidak lengkap: %+v", updated)
	}

	// Record yang sudah tertutup tidak cocok lagi, seperti filter $exists:false.
	again, err := repo.UpdateSetPunchOut(context.Background(), record.ID, punchOut.Add(time.Hour), 9)
	if err != nil {
		t.Fatalf("update kedua error: %v", err)
	}
	if again != nil {
		t.Fatalf("update kedua harusnya tidak mengenai record")
	}

	stored, _ := repo.FindByEmployeeAndDate(context.Background(), employeeID, "2026-09-15")
	if stored.TotalHours != 8 {
		t.Errorf("total_hours tertimpa jadi %v", stored.TotalHours)
	}
}

func TestMemoryUpdateSetPunchOutUnknownID(t *testing.T) {
	repo := NewMemoryAttendanceRepository()

	updated, err := repo.UpdateSetPunchOut(context.Background(), primitive.NewObjectID(), time.Now(), 1)
	if err != nil {
		t.Fatalf("error untuk ID tidak dikenal: %v", err)
	}
	if updated != nil {
		t.Fatalf("ID tidak dikenal harusnya mengembalikan nil")
	}
}

func TestMemoryFindByEmployeeAndDateRange(t *testing.T) {
	repo := NewMemoryAttendanceRepository()
	employeeID := primitive.NewObjectID()
	punchIn := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	for _, date := range []string{"2026-08-31", "2026-09-01", "2026-09-15", "2026-09-30", "2026-10-01"} {
		if err := repo.Create(context.Background(), newRecord(employeeID, date, punchIn)); err != nil {
			t.Fatalf("create %s gagal: %v", date, err)
		}
	}

	records, err := repo.FindByEmployeeAndDateRange(context.Background(), employeeID, "2026-09-01", "2026-09-30")
	if err != nil {
		t.Fatalf("query range gagal: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("jumlah record = %d, harusnya 3", len(records))
	}
	// Urut naik berdasarkan tanggal.
	for i := 1; i < len(records); i++ {
		if records[i-1].Date > records[i].Date {
			t.Errorf("hasil tidak terurut: %s sebelum %s", records[i-1].Date, records[i].Date)
		}
	}
}

func TestMemoryCounts(t *testing.T) {
	repo := NewMemoryAttendanceRepository()
	punchIn := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)

	open := newRecord(primitive.NewObjectID(), "2026-09-15", punchIn)
	closed := newRecord(primitive.NewObjectID(), "2026-09-15", punchIn)
	other := newRecord(primitive.NewObjectID(), "2026-09-14", punchIn)

	for _, record := range []*models.Attendance{open, closed, other} {
		if err := repo.Create(context.Background(), record); err != nil {
			t.Fatalf("create gagal: %v", err)
		}
	}
	if _, err := repo.UpdateSetPunchOut(context.Background(), closed.ID, punchIn.Add(8*time.Hour), 8); err != nil {
		t.Fatalf("update gagal: %v", err)
	}

	total, err := repo.CountByDate(context.Background(), "2026-09-15")
	if err != nil || total != 2 {
		t.Errorf("CountByDate = %d (%v), harusnya 2", total, err)
	}
	openCount, err := repo.CountOpenByDate(context.Background(), "2026-09-15")
	if err != nil || openCount != 1 {
		t.Errorf("CountOpenByDate = %d (%v), harusnya 1", openCount, err)
	}
}

func TestMemoryFindAllWithEmployeeResolvesDisplayFields(t *testing.T) {
	repo := NewMemoryAttendanceRepository()
	employee := &models.Employee{
		ID:         primitive.NewObjectID(),
		EmployeeID: "EMP0001",
		FirstName:  "Siti",
		LastName:   "Rahayu",
		Position:   "Senior Stylist",
		Department: "Styling",
	}
	repo.ResolveEmployee = func(id primitive.ObjectID) *models.Employee {
		if id == employee.ID {
			return employee
		}
		return nil
	}

	punchIn := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	if err := repo.Create(context.Background(), newRecord(employee.ID, "2026-09-15", punchIn)); err != nil {
		t.Fatalf("create gagal: %v", err)
	}

	rows, err := repo.FindAllWithEmployee(context.Background())
	if err != nil {
		t.Fatalf("FindAllWithEmployee gagal: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("jumlah baris = %d, harusnya 1", len(rows))
	}
	if rows[0].EmployeeCode != "EMP0001" || rows[0].FirstName != "Siti" {
		t.Errorf("field display tidak terisi: %+v", rows[0])
	}
	if rows[0].Status() != models.StatusPunchedIn {
		t.Errorf("status = %q, harusnya %q", rows[0].Status(), models.StatusPunchedIn)
	}
}
