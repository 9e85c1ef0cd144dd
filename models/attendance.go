package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status kehadiran untuk satu (karyawan, hari). Nilai ini tidak pernah
// disimpan di database; selalu dihitung ulang dari punch_in/punch_out.
const (
	StatusNotPunchedIn = "NOT_PUNCHED_IN"
	StatusPunchedIn    = "PUNCHED_IN"
	StatusPunchedOut   = "PUNCHED_OUT"
)

// DateLayout adalah format kolom date: hari kalender tanpa komponen waktu.
const DateLayout = "2006-01-02"

type Attendance struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID primitive.ObjectID `json:"employee_id" bson:"employee_id,omitempty"`
	Date       string             `json:"date" bson:"date,omitempty"`
	PunchIn    *time.Time         `json:"punch_in_time,omitempty" bson:"punch_in,omitempty"`
	PunchOut   *time.Time         `json:"punch_out_time,omitempty" bson:"punch_out,omitempty"`
	TotalHours float64            `json:"total_hours,omitempty" bson:"total_hours,omitempty"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

// Status menurunkan status kehadiran murni dari kedua field timestamp.
func (a *Attendance) Status() string {
	switch {
	case a.PunchIn == nil:
		return StatusNotPunchedIn
	case a.PunchOut == nil:
		return StatusPunchedIn
	default:
		return StatusPunchedOut
	}
}

// RoundHours membulatkan durasi kerja ke 2 angka di belakang koma.
func RoundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}

type PunchPayload struct {
	EmployeeID string `json:"employeeId" validate:"required"`
}

type AttendanceResponse struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employee_id"`
	Date       string     `json:"date"`
	PunchIn    *time.Time `json:"punch_in_time,omitempty"`
	PunchOut   *time.Time `json:"punch_out_time,omitempty"`
	TotalHours float64    `json:"total_hours,omitempty"`
	Status     string     `json:"status"`
}

func (a *Attendance) ToResponse() AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID.Hex(),
		EmployeeID: a.EmployeeID.Hex(),
		Date:       a.Date,
		PunchIn:    a.PunchIn,
		PunchOut:   a.PunchOut,
		TotalHours: a.TotalHours,
		Status:     a.Status(),
	}
}

type AttendanceWithEmployee struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	EmployeeID   primitive.ObjectID `json:"employee_id" bson:"employee_id"`
	Date         string             `json:"date" bson:"date"`
	PunchIn      *time.Time         `json:"punch_in_time,omitempty" bson:"punch_in,omitempty"`
	PunchOut     *time.Time         `json:"punch_out_time,omitempty" bson:"punch_out,omitempty"`
	TotalHours   float64            `json:"total_hours,omitempty" bson:"total_hours,omitempty"`
	EmployeeCode string             `json:"employee_code" bson:"employee_code"`
	FirstName    string             `json:"first_name" bson:"first_name"`
	LastName     string             `json:"last_name" bson:"last_name"`
	Position     string             `json:"position,omitempty" bson:"position,omitempty"`
	Department   string             `json:"department,omitempty" bson:"department,omitempty"`
}

// Status dihitung dengan aturan yang sama seperti Attendance.Status.
func (a *AttendanceWithEmployee) Status() string {
	switch {
	case a.PunchIn == nil:
		return StatusNotPunchedIn
	case a.PunchOut == nil:
		return StatusPunchedIn
	default:
		return StatusPunchedOut
	}
}

type AttendanceStatusResponse struct {
	Status   string     `json:"status"`
	PunchIn  *time.Time `json:"punch_in_time,omitempty"`
	PunchOut *time.Time `json:"punch_out_time,omitempty"`
}

// AttendanceEvent adalah payload broadcast realtime saat status absensi berubah.
type AttendanceEvent struct {
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
}

type AttendanceSummary struct {
	EmployeeID    string  `json:"employee_id"`
	Month         string  `json:"month"`
	DaysPresent   int     `json:"days_present"`
	TotalHours    float64 `json:"total_hours"`
	WorkdaysCount int     `json:"scheduled_workdays"`
}
