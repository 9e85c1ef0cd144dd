package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Parlour-Admin-Dashboard/models"
	"Parlour-Admin-Dashboard/repository"
)

type fakeDirectory struct {
	employees map[primitive.ObjectID]*models.Employee
}

func (d *fakeDirectory) FindEmployeeByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	employee, exists := d.employees[id]
	if !exists {
		return nil, nil
	}
	return employee, nil
}

type recordingNotifier struct {
	mu      sync.Mutex
	events  []models.AttendanceEvent
	onEvent func(models.AttendanceEvent)
}

func (n *recordingNotifier) BroadcastAttendanceUpdate(event models.AttendanceEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	if n.onEvent != nil {
		n.onEvent(event)
	}
}

func (n *recordingNotifier) Events() []models.AttendanceEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]models.AttendanceEvent, len(n.events))
	copy(out, n.events)
	return out
}

func newTestEmployee(active bool) *models.Employee {
	return &models.Employee{
		ID:         primitive.NewObjectID(),
		EmployeeID: "EMP0001",
		FirstName:  "Siti",
		LastName:   "Rahayu",
		IsActive:   active,
	}
}

func newTestService(employees ...*models.Employee) (*AttendanceService, *repository.MemoryAttendanceRepository, *recordingNotifier) {
	directory := &fakeDirectory{employees: make(map[primitive.ObjectID]*models.Employee)}
	for _, employee := range employees {
		directory.employees[employee.ID] = employee
	}
	repo := repository.NewMemoryAttendanceRepository()
	notifier := &recordingNotifier{}
	svc := NewAttendanceService(repo, directory, notifier, time.UTC)
	return svc, repo, notifier
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestPunchInCreatesRecord(t *testing.T) {
	employee := newTestEmployee(true)
	svc, repo, _ := newTestService(employee)
	now := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	svc.SetClock(fixedClock(now))

	attendance, err := svc.PunchIn(context.Background(), employee.ID.Hex())
	if err != nil {
		t.Fatalf("PunchIn gagal: %v", err)
	}

	if attendance.Date != "2026-09-15" {
		t.Errorf("date = %q, harusnya 2026-09-15", attendance.Date)
	}
	if attendance.PunchIn == nil || !attendance.PunchIn.Equal(now) {
		t.Errorf("punch_in = %v, harusnya %v", attendance.PunchIn, now)
	}
	if attendance.PunchOut != nil {
		t.Errorf("punch_out harus nil setelah punch-in, dapat %v", attendance.PunchOut)
	}
	if got := attendance.Status(); got != models.StatusPunchedIn {
		t.Errorf("status = %q, harusnya %q", got, models.StatusPunchedIn)
	}

	stored, err := repo.FindByEmployeeAndDate(context.Background(), employee.ID, "2026-09-15")
	if err != nil || stored == nil {
		t.Fatalf("record tidak tersimpan di repository: %v", err)
	}
}

func TestPunchInTwiceSameDayFails(t *testing.T) {
	employee := newTestEmployee(true)
	svc, repo, _ := newTestService(employee)
	svc.SetClock(fixedClock(time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)))

	first, err := svc.PunchIn(context.Background(), employee.ID.Hex())
	if err != nil {
		t.Fatalf("punch-in pertama gagal: %v", err)
	}

	svc.SetClock(fixedClock(time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)))
	if _, err := svc.PunchIn(context.Background(), employee.ID.Hex()); !errors.Is(err, ErrAlreadyPunchedIn) {
		t.Fatalf("punch-in kedua = %v, harusnya ErrAlreadyPunchedIn", err)
	}

	// Record asli tidak boleh berubah.
	stored, _ := repo.FindByEmployeeAndDate(context.Background(), employee.ID, "2026-09-15")
	if stored == nil || stored.ID != first.ID {
		t.Fatalf("record asli hilang atau tertimpa")
	}
	if !stored.PunchIn.Equal(*first.PunchIn) {
		t.Errorf("punch_in berubah dari %v menjadi %v", first.PunchIn, stored.PunchIn)
	}
}

func TestPunchInNextDayAllowed(t *testing.T) {
	employee := newTestEmployee(true)
	svc, _, _ := newTestService(employee)
	svc.SetClock(fixedClock(time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)))

	if _, err := svc.PunchIn(context.Background(), employee.ID.Hex()); err != nil {
		t.Fatalf("punch-in hari pertama gagal: %v", err)
	}

	svc.SetClock(fixedClock(time.Date(2026, 9, 16, 9, 0, 0, 0, time.UTC)))
	if _, err := svc.PunchIn(context.Background(), employee.ID.Hex()); err != nil {
		t.Fatalf("punch-in hari berikutnya gagal: %v", err)
	}
}

func TestPunchInUnknownEmployee(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.PunchIn(context.Background(), primitive.NewObjectID().Hex()); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("err = %v, harusnya ErrEmployeeNotFound", err)
	}
	if _, err := svc.PunchIn(context.Background(), "bukan-object-id"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("ID tidak valid = %v, harusnya ErrEmployeeNotFound", err)
	}
}

func TestPunchInInactiveEmployee(t *testing.T) {
	employee := newTestEmployee(false)
	svc, _, notifier := newTestService(employee)

	if _, err := svc.PunchIn(context.Background(), employee.ID.Hex()); !errors.Is(err, ErrEmployeeInactive) {
		t.Fatalf("err = %v, harusnya ErrEmployeeInactive", err)
	}
	if len(notifier.Events()) != 0 {
		t.Errorf("tidak boleh ada broadcast untuk punch yang gagal")
	}
}

func TestPunchOutComputesTotalHours(t *testing.T) {
	employee := newTestEmployee(true)
	svc, _, _ := newTestService(employee)
	svc.SetClock(fixedClock(time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)))

	if _, err := svc.PunchIn(context.Background(), employee.ID.Hex()); err != nil {
		t.Fatalf("PunchIn gagal: %v", err)
	}

	svc.SetClock(fixedClock(time.Date(2026, 9, 15, 17, 30, 0, 0, time.UTC)))
	attendance, err := svc.PunchOut(context.Background(), employee.ID.Hex())
	if err != nil {
		t.Fatalf("PunchOut gagal: %v", err)
	}

	if attendance.TotalHours != 8.5 {
		t.Errorf("total_hours = %v, harusnya 8.5", attendance.TotalHours)
	}
	if got := attendance.Status(); got != models.StatusPunchedOut {
		t.Errorf("status = %q, harusnya %q", got, models.StatusPunchedOut)
	}
}

func TestPunchOutRoundsToTwoDecimals(t *testing.T) {
	employee := newTestEmployee(true)
	svc, _, _ := newTestService(employee)
	svc.SetClock(fixedClock(time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)))

	if _, err := svc.PunchIn(context.Background(), employee.ID.Hex()); err != nil {
		t.Fatalf("PunchIn gagal: %v", err)
	}

	// 7 jam 20 menit = 7.3333... jam, dibulatkan jadi 7.33.
	svc.SetClock(fixedClock(time.Date(2026, 9, 15, 16, 20, 0, 0, time.UTC)))
	attendance, err := svc.PunchOut(context.Background(), employee.ID.Hex())
	if err != nil {
		t.Fatalf("PunchOut gagal: %v", err)
	}
	if attendance.TotalHours != 7.33 {
		t.Errorf("total_hours = %v, harusnya 7.33", attendance.TotalHours)
	}
}

func TestPunchOutWithoutPunchIn(t *testing.T) {
	employee := newTestEmployee(true)
	svc, _, _ := newTestService(employee)
	svc.SetClock(fixedClock(time.Date(2026, 9, 15, 17, 0, 0, 0, time.UTC)))

	if _, err := svc.PunchOut(context.Background(), employee.ID.Hex()); !errors.Is(err, ErrNoActivePunchIn) {
		t.Fatalf("err = %v, harusnya ErrNoActivePunchIn", err)
	}
}

func TestDoublePunchOutFails(t *testing.T) {
	employee := newTestEmployee(true)
	svc, repo, _ := newTestService(employee)
	svc.SetClock(fixedClock(time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)))

	if _, err := svc.PunchIn(context.Background(), employee.ID.Hex()); err != nil {
		t.Fatalf("PunchIn gagal: %v", err)
	}

	svc.SetClock(fixedClock(time.Date(2026, 9, 15, 17, 0, 0, 0, time.UTC)))
	first, err := svc.PunchOut(context.Background(), employee.ID.Hex())
	if err != nil {
		t.Fatalf("punch-out pertama gagal: %v", err)
	}

	svc.SetClock(fixedClock(time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC)))
	if _, err := svc.PunchOut(context.Background(), employee.ID.Hex()); !errors.Is(err, ErrNoActivePunchIn) {
		t.Fatalf("punch-out kedua = %v, harusnya ErrNoActivePunchIn", err)
	}

	// Hasil punch-out pertama tidak boleh tertimpa.
	stored, _ := repo.FindByEmployeeAndDate(context.Background(), employee.ID, "2026-09-15")
	if stored == nil || !stored.PunchOut.Equal(*first.PunchOut) {
		t.Errorf("punch_out berubah setelah punch-out kedua yang gagal")
	}
	if stored.TotalHours != first.TotalHours {
		t.Errorf("total_hours berubah dari %v menjadi %v", first.TotalHours, stored.TotalHours)
	}
}

func TestPunchOutMustBeAfterPunchIn(t *testing.T) {
	employee := newTestEmployee(true)
	svc, _, _ := newTestService(employee)
	now := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	svc.SetClock(fixedClock(now))

	if _, err := svc.PunchIn(context.Background(), employee.ID.Hex()); err != nil {
		t.Fatalf("PunchIn gagal: %v", err)
	}

	// Jam tidak bergerak: punch-out di detik yang sama harus ditolak.
	if _, err := svc.PunchOut(context.Background(), employee.ID.Hex()); !errors.Is(err, ErrInvalidPunchOut) {
		t.Fatalf("err = %v, harusnya ErrInvalidPunchOut", err)
	}
}

func TestGetStatusTransitions(t *testing.T) {
	employee := newTestEmployee(true)
	svc, _, _ := newTestService(employee)
	svc.SetClock(fixedClock(time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)))
	ctx := context.Background()

	status, err := svc.GetStatus(ctx, employee.ID.Hex())
	if err != nil {
		t.Fatalf("GetStatus gagal: %v", err)
	}
	if status.Status != models.StatusNotPunchedIn {
		t.Errorf("status awal = %q, harusnya %q", status.Status, models.StatusNotPunchedIn)
	}

	svc.SetClock(fixedClock(time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)))
	if _, err := svc.PunchIn(ctx, employee.ID.Hex()); err != nil {
		t.Fatalf("PunchIn gagal: %v", err)
	}

	status, _ = svc.GetStatus(ctx, employee.ID.Hex())
	if status.Status != models.StatusPunchedIn {
		t.Errorf("status setelah punch-in = %q, harusnya %q", status.Status, models.StatusPunchedIn)
	}
	if status.PunchIn == nil {
		t.Errorf("punch_in_time harus terisi setelah punch-in")
	}

	svc.SetClock(fixedClock(time.Date(2026, 9, 15, 17, 0, 0, 0, time.UTC)))
	if _, err := svc.PunchOut(ctx, employee.ID.Hex()); err != nil {
		t.Fatalf("PunchOut gagal: %v", err)
	}

	status, _ = svc.GetStatus(ctx, employee.ID.Hex())
	if status.Status != models.StatusPunchedOut {
		t.Errorf("status setelah punch-out = %q, harusnya %q", status.Status, models.StatusPunchedOut)
	}

	// GetStatus murni: memanggil berulang tidak mengubah hasil.
	again, _ := svc.GetStatus(ctx, employee.ID.Hex())
	if again.Status != status.Status {
		t.Errorf("GetStatus tidak konsisten: %q lalu %q", status.Status, again.Status)
	}
}

func TestConcurrentPunchInExactlyOneWins(t *testing.T) {
	employee := newTestEmployee(true)
	svc, _, notifier := newTestService(employee)
	svc.SetClock(fixedClock(time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)))

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.PunchIn(context.Background(), employee.ID.Hex())
		}(i)
	}
	wg.Wait()

	var success, duplicate int
	for _, err := range errs {
		switch {
		case err == nil:
			success++
		case errors.Is(err, ErrAlreadyPunchedIn):
			duplicate++
		default:
			t.Fatalf("error tidak terduga: %v", err)
		}
	}

	if success != 1 {
		t.Fatalf("sukses = %d, harusnya tepat 1", success)
	}
	if duplicate != workers-1 {
		t.Fatalf("duplikat = %d, harusnya %d", duplicate, workers-1)
	}
	if got := len(notifier.Events()); got != 1 {
		t.Errorf("broadcast = %d, harusnya tepat 1 (hanya pemenang)", got)
	}
}

func TestTwoEmployeesSameDayBothSucceed(t *testing.T) {
	first := newTestEmployee(true)
	second := newTestEmployee(true)
	second.EmployeeID = "EMP0002"
	svc, _, _ := newTestService(first, second)
	svc.SetClock(fixedClock(time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)))

	if _, err := svc.PunchIn(context.Background(), first.ID.Hex()); err != nil {
		t.Fatalf("punch-in karyawan pertama gagal: %v", err)
	}
	if _, err := svc.PunchIn(context.Background(), second.ID.Hex()); err != nil {
		t.Fatalf("punch-in karyawan kedua gagal: %v", err)
	}
}

func TestBroadcastHappensAfterCommit(t *testing.T) {
	employee := newTestEmployee(true)
	directory := &fakeDirectory{employees: map[primitive.ObjectID]*models.Employee{employee.ID: employee}}
	repo := repository.NewMemoryAttendanceRepository()
	notifier := &recordingNotifier{}
	svc := NewAttendanceService(repo, directory, notifier, time.UTC)
	svc.SetClock(fixedClock(time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)))

	// Saat event diterima, record harus sudah ada di store.
	notifier.onEvent = func(event models.AttendanceEvent) {
		stored, err := repo.FindByEmployeeAndDate(context.Background(), employee.ID, "2026-09-15")
		if err != nil || stored == nil {
			t.Errorf("broadcast terjadi sebelum record tersimpan")
		}
	}

	if _, err := svc.PunchIn(context.Background(), employee.ID.Hex()); err != nil {
		t.Fatalf("PunchIn gagal: %v", err)
	}

	svc.SetClock(fixedClock(time.Date(2026, 9, 15, 17, 0, 0, 0, time.UTC)))
	notifier.onEvent = func(event models.AttendanceEvent) {
		stored, _ := repo.FindByEmployeeAndDate(context.Background(), employee.ID, "2026-09-15")
		if stored == nil || stored.PunchOut == nil {
			t.Errorf("broadcast punch-out terjadi sebelum update tersimpan")
		}
	}
	if _, err := svc.PunchOut(context.Background(), employee.ID.Hex()); err != nil {
		t.Fatalf("PunchOut gagal: %v", err)
	}

	events := notifier.Events()
	if len(events) != 2 {
		t.Fatalf("jumlah event = %d, harusnya 2", len(events))
	}
	if events[0].Status != models.StatusPunchedIn || events[1].Status != models.StatusPunchedOut {
		t.Errorf("urutan event salah: %q lalu %q", events[0].Status, events[1].Status)
	}
	if events[0].EmployeeID != employee.ID.Hex() {
		t.Errorf("employeeId event = %q, harusnya %q", events[0].EmployeeID, employee.ID.Hex())
	}
	if events[0].EmployeeName != "Siti Rahayu" {
		t.Errorf("employeeName event = %q, harusnya %q", events[0].EmployeeName, "Siti Rahayu")
	}
}

func TestMonthlySummary(t *testing.T) {
	employee := newTestEmployee(true)
	svc, _, _ := newTestService(employee)
	ctx := context.Background()

	// Tiga hari kerja penuh di September 2026.
	days := []int{14, 15, 16}
	for _, day := range days {
		svc.SetClock(fixedClock(time.Date(2026, 9, day, 9, 0, 0, 0, time.UTC)))
		if _, err := svc.PunchIn(ctx, employee.ID.Hex()); err != nil {
			t.Fatalf("punch-in tanggal %d gagal: %v", day, err)
		}
		svc.SetClock(fixedClock(time.Date(2026, 9, day, 17, 0, 0, 0, time.UTC)))
		if _, err := svc.PunchOut(ctx, employee.ID.Hex()); err != nil {
			t.Fatalf("punch-out tanggal %d gagal: %v", day, err)
		}
	}

	summary, err := svc.MonthlySummary(ctx, employee.ID.Hex(), "2026-09")
	if err != nil {
		t.Fatalf("MonthlySummary gagal: %v", err)
	}

	if summary.DaysPresent != 3 {
		t.Errorf("days_present = %d, harusnya 3", summary.DaysPresent)
	}
	if summary.TotalHours != 24 {
		t.Errorf("total_hours = %v, harusnya 24", summary.TotalHours)
	}
	// September 2026 punya 22 hari kerja Senin-Jumat.
	if summary.WorkdaysCount != 22 {
		t.Errorf("scheduled_workdays = %d, harusnya 22", summary.WorkdaysCount)
	}
	if summary.Month != "2026-09" {
		t.Errorf("month = %q, harusnya 2026-09", summary.Month)
	}
}

func TestMonthlySummaryInvalidMonth(t *testing.T) {
	employee := newTestEmployee(true)
	svc, _, _ := newTestService(employee)

	if _, err := svc.MonthlySummary(context.Background(), employee.ID.Hex(), "September 2026"); err == nil {
		t.Fatalf("format bulan tidak valid harus ditolak")
	}
}
