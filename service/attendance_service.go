package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Parlour-Admin-Dashboard/models"
	"Parlour-Admin-Dashboard/repository"
	util "Parlour-Admin-Dashboard/pkg/utils"
)

// EmployeeDirectory adalah potongan kecil dari EmployeeRepository yang
// dibutuhkan mesin status untuk memverifikasi karyawan.
type EmployeeDirectory interface {
	FindEmployeeByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error)
}

// Notifier menyiarkan perubahan status absensi ke client realtime.
// Best-effort: kegagalan kirim tidak pernah menggagalkan operasi punch.
type Notifier interface {
	BroadcastAttendanceUpdate(event models.AttendanceEvent)
}

// AttendanceService adalah mesin status punch-in/punch-out. Semua aturan
// transisi ada di sini, terlepas dari jalur masuk request (HTTP, websocket,
// test harness). Serialisasi antar request untuk karyawan yang sama tidak
// pakai lock in-process; sepenuhnya mengandalkan jaminan atomik repository.
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	employees      EmployeeDirectory
	notifier       Notifier
	loc            *time.Location
	now            func() time.Time
}

func NewAttendanceService(attendanceRepo repository.AttendanceRepository, employees EmployeeDirectory, notifier Notifier, loc *time.Location) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		employees:      employees,
		notifier:       notifier,
		loc:            loc,
		now:            time.Now,
	}
}

// SetClock mengganti sumber waktu. Hanya untuk test.
func (s *AttendanceService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *AttendanceService) lookupEmployee(ctx context.Context, employeeID string) (*models.Employee, error) {
	objectID, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}

	employee, err := s.employees.FindEmployeeByID(ctx, objectID)
	if err != nil {
		return nil, fmt.Errorf("gagal memverifikasi karyawan: %w", err)
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	return employee, nil
}

// PunchIn membuat record absensi baru untuk hari ini. Kebijakan: satu siklus
// punch per hari; record apa pun yang sudah ada untuk (karyawan, hari ini)
// membuat request ini gagal dengan ErrAlreadyPunchedIn. Tidak ada pre-check
// find-then-insert; insert langsung dan biarkan unique index yang memutuskan
// pemenang saat ada request bersamaan.
func (s *AttendanceService) PunchIn(ctx context.Context, employeeID string) (*models.Attendance, error) {
	employee, err := s.lookupEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !employee.IsActive {
		return nil, ErrEmployeeInactive
	}

	now := s.now().In(s.loc)
	punchIn := now

	attendance := &models.Attendance{
		ID:         primitive.NewObjectID(),
		EmployeeID: employee.ID,
		Date:       now.Format(models.DateLayout),
		PunchIn:    &punchIn,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		if errors.Is(err, repository.ErrDuplicateRecord) {
			return nil, ErrAlreadyPunchedIn
		}
		return nil, err
	}

	// Broadcast hanya setelah write dipastikan commit, tidak pernah spekulatif.
	s.notifier.BroadcastAttendanceUpdate(models.AttendanceEvent{
		EmployeeID:   employee.ID.Hex(),
		EmployeeName: employee.FullName(),
		Status:       models.StatusPunchedIn,
		Timestamp:    now,
	})

	return attendance, nil
}

// PunchOut menutup record hari ini dan menghitung total jam kerja.
func (s *AttendanceService) PunchOut(ctx context.Context, employeeID string) (*models.Attendance, error) {
	employee, err := s.lookupEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !employee.IsActive {
		return nil, ErrEmployeeInactive
	}

	now := s.now().In(s.loc)
	today := now.Format(models.DateLayout)

	attendance, err := s.attendanceRepo.FindByEmployeeAndDate(ctx, employee.ID, today)
	if err != nil {
		return nil, err
	}
	if attendance == nil || attendance.PunchIn == nil {
		return nil, ErrNoActivePunchIn
	}
	if attendance.PunchOut != nil {
		// Punch-out kedua adalah kegagalan eksplisit, bukan sukses diam-diam.
		return nil, ErrNoActivePunchIn
	}
	if !now.After(*attendance.PunchIn) {
		return nil, ErrInvalidPunchOut
	}

	totalHours := models.RoundHours(now.Sub(*attendance.PunchIn).Hours())

	updated, err := s.attendanceRepo.UpdateSetPunchOut(ctx, attendance.ID, now, totalHours)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Kalah balapan dengan punch-out lain yang sudah menutup record.
		return nil, ErrNoActivePunchIn
	}

	s.notifier.BroadcastAttendanceUpdate(models.AttendanceEvent{
		EmployeeID:   employee.ID.Hex(),
		EmployeeName: employee.FullName(),
		Status:       models.StatusPunchedOut,
		Timestamp:    now,
	})

	return updated, nil
}

// GetStatus mengembalikan status hari ini. Murni: hasilnya hanya fungsi dari
// record yang tersimpan, tanpa state tersembunyi.
func (s *AttendanceService) GetStatus(ctx context.Context, employeeID string) (*models.AttendanceStatusResponse, error) {
	employee, err := s.lookupEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	today := s.now().In(s.loc).Format(models.DateLayout)

	attendance, err := s.attendanceRepo.FindByEmployeeAndDate(ctx, employee.ID, today)
	if err != nil {
		return nil, err
	}
	if attendance == nil {
		return &models.AttendanceStatusResponse{Status: models.StatusNotPunchedIn}, nil
	}

	return &models.AttendanceStatusResponse{
		Status:   attendance.Status(),
		PunchIn:  attendance.PunchIn,
		PunchOut: attendance.PunchOut,
	}, nil
}

// GetAllAttendance mengembalikan semua record, terbaru dulu, dengan field
// display karyawan.
func (s *AttendanceService) GetAllAttendance(ctx context.Context) ([]models.AttendanceWithEmployee, error) {
	return s.attendanceRepo.FindAllWithEmployee(ctx)
}

// MonthlySummary merangkum kehadiran satu karyawan untuk satu bulan, termasuk
// jumlah hari kerja terjadwal (Senin-Jumat) sebagai pembanding.
func (s *AttendanceService) MonthlySummary(ctx context.Context, employeeID, month string) (*models.AttendanceSummary, error) {
	employee, err := s.lookupEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	firstOfMonth, err := time.ParseInLocation("2006-01", month, s.loc)
	if err != nil {
		return nil, fmt.Errorf("format bulan tidak valid (harus YYYY-MM): %w", err)
	}
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.FindByEmployeeAndDateRange(
		ctx,
		employee.ID,
		firstOfMonth.Format(models.DateLayout),
		lastOfMonth.Format(models.DateLayout),
	)
	if err != nil {
		return nil, err
	}

	summary := &models.AttendanceSummary{
		EmployeeID: employee.ID.Hex(),
		Month:      month,
	}
	for _, record := range records {
		if record.PunchIn != nil {
			summary.DaysPresent++
		}
		summary.TotalHours += record.TotalHours
	}
	summary.TotalHours = models.RoundHours(summary.TotalHours)

	workdays, err := util.CountWorkdays(firstOfMonth.Year(), firstOfMonth.Month(), s.loc)
	if err != nil {
		return nil, fmt.Errorf("gagal menghitung hari kerja terjadwal: %w", err)
	}
	summary.WorkdaysCount = workdays

	return summary, nil
}
