package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Parlour-Admin-Dashboard/models"
)

// MemoryAttendanceRepository adalah implementasi in-memory dari
// AttendanceRepository. Dipakai oleh test dan oleh ATTENDANCE_STORE=memory.
// Ini BUKAN fallback diam-diam saat database mati; pemilihannya selalu
// eksplisit lewat konfigurasi saat startup.
type MemoryAttendanceRepository struct {
	mu      sync.Mutex
	records map[string]*models.Attendance // key: employeeID hex + "|" + date

	// ResolveEmployee opsional, dipakai FindAllWithEmployee untuk mengisi
	// field display karyawan. Nil berarti field display dibiarkan kosong.
	ResolveEmployee func(employeeID primitive.ObjectID) *models.Employee
}

func NewMemoryAttendanceRepository() *MemoryAttendanceRepository {
	return &MemoryAttendanceRepository{
		records: make(map[string]*models.Attendance),
	}
}

func memoryKey(employeeID primitive.ObjectID, date string) string {
	return employeeID.Hex() + "|" + date
}

// Create menolak duplikat (employee_id, date) di bawah satu mutex, meniru
// jaminan atomik unique index Mongo.
func (r *MemoryAttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := memoryKey(attendance.EmployeeID, attendance.Date)
	if _, exists := r.records[key]; exists {
		return ErrDuplicateRecord
	}

	stored := *attendance
	r.records[key] = &stored
	return nil
}

func (r *MemoryAttendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID primitive.ObjectID, date string) (*models.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.records[memoryKey(employeeID, date)]
	if !exists {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

func (r *MemoryAttendanceRepository) UpdateSetPunchOut(ctx context.Context, id primitive.ObjectID, punchOut time.Time, totalHours float64) (*models.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, record := range r.records {
		if record.ID != id {
			continue
		}
		if record.PunchOut != nil {
			// Sama seperti filter Mongo: record yang sudah punch-out tidak cocok.
			return nil, nil
		}
		out := punchOut
		record.PunchOut = &out
		record.TotalHours = totalHours
		record.UpdatedAt = time.Now()
		copied := *record
		return &copied, nil
	}
	return nil, nil
}

func (r *MemoryAttendanceRepository) FindAllWithEmployee(ctx context.Context) ([]models.AttendanceWithEmployee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := make([]models.AttendanceWithEmployee, 0, len(r.records))
	for _, record := range r.records {
		row := models.AttendanceWithEmployee{
			ID:         record.ID,
			EmployeeID: record.EmployeeID,
			Date:       record.Date,
			PunchIn:    record.PunchIn,
			PunchOut:   record.PunchOut,
			TotalHours: record.TotalHours,
		}
		if r.ResolveEmployee != nil {
			if emp := r.ResolveEmployee(record.EmployeeID); emp != nil {
				row.EmployeeCode = emp.EmployeeID
				row.FirstName = emp.FirstName
				row.LastName = emp.LastName
				row.Position = emp.Position
				row.Department = emp.Department
			}
		}
		results = append(results, row)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Date > results[j].Date
	})
	return results, nil
}

func (r *MemoryAttendanceRepository) FindByEmployeeID(ctx context.Context, employeeID primitive.ObjectID) ([]models.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := []models.Attendance{}
	for _, record := range r.records {
		if record.EmployeeID == employeeID {
			results = append(results, *record)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Date > results[j].Date
	})
	return results, nil
}

func (r *MemoryAttendanceRepository) FindByEmployeeAndDateRange(ctx context.Context, employeeID primitive.ObjectID, from, to string) ([]models.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := []models.Attendance{}
	for _, record := range r.records {
		if record.EmployeeID == employeeID && record.Date >= from && record.Date <= to {
			results = append(results, *record)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Date < results[j].Date
	})
	return results, nil
}

func (r *MemoryAttendanceRepository) CountByDate(ctx context.Context, date string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total int64
	for _, record := range r.records {
		if record.Date == date {
			total++
		}
	}
	return total, nil
}

func (r *MemoryAttendanceRepository) CountOpenByDate(ctx context.Context, date string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total int64
	for _, record := range r.records {
		if record.Date == date && record.PunchIn != nil && record.PunchOut == nil {
			total++
		}
	}
	return total, nil
}
