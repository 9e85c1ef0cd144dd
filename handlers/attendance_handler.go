package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"Parlour-Admin-Dashboard/models"
	util "Parlour-Admin-Dashboard/pkg/utils"
	"Parlour-Admin-Dashboard/service"
)

type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// attendanceErrorResponse memetakan error domain mesin status ke kode HTTP.
func attendanceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	case errors.Is(err, service.ErrEmployeeInactive):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Karyawan sudah tidak aktif"})
	case errors.Is(err, service.ErrAlreadyPunchedIn):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Sudah melakukan punch-in hari ini"})
	case errors.Is(err, service.ErrNoActivePunchIn):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tidak ada punch-in aktif untuk hari ini"})
	case errors.Is(err, service.ErrInvalidPunchOut):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Waktu punch-out harus setelah punch-in"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Terjadi kesalahan pada server", "details": err.Error()})
	}
}

// PunchIn godoc
// @Summary Punch In
// @Description Mencatat mulai kehadiran karyawan untuk hari ini
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.PunchPayload true "ID karyawan"
// @Success 201 {object} models.AttendanceResponse "Berhasil punch-in"
// @Failure 400 {object} models.ErrorResponse "Sudah punch-in hari ini"
// @Failure 404 {object} models.NotFoundErrorResponse "Karyawan tidak ditemukan"
// @Router /attendance/punch-in [post]
func (h *AttendanceHandler) PunchIn(c *fiber.Ctx) error {
	var payload models.PunchPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	attendance, err := h.attendanceService.PunchIn(c.Context(), payload.EmployeeID)
	if err != nil {
		return attendanceErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(attendance.ToResponse())
}

// PunchOut godoc
// @Summary Punch Out
// @Description Mencatat akhir kehadiran karyawan dan menghitung total jam kerja
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.PunchPayload true "ID karyawan"
// @Success 200 {object} models.AttendanceResponse "Berhasil punch-out"
// @Failure 404 {object} models.NotFoundErrorResponse "Tidak ada punch-in aktif"
// @Router /attendance/punch-out [post]
func (h *AttendanceHandler) PunchOut(c *fiber.Ctx) error {
	var payload models.PunchPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	attendance, err := h.attendanceService.PunchOut(c.Context(), payload.EmployeeID)
	if err != nil {
		return attendanceErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(attendance.ToResponse())
}

// GetAllAttendance godoc
// @Summary Daftar semua absensi
// @Description Mengambil semua record absensi, terbaru dulu, dengan data karyawan
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AttendanceWithEmployee
// @Router /attendance [get]
func (h *AttendanceHandler) GetAllAttendance(c *fiber.Ctx) error {
	attendanceList, err := h.attendanceService.GetAllAttendance(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil daftar kehadiran"})
	}

	return c.Status(fiber.StatusOK).JSON(attendanceList)
}

// GetEmployeeStatus godoc
// @Summary Status absensi karyawan hari ini
// @Description Mengembalikan status punch hari ini untuk satu karyawan
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param employeeId path string true "ID karyawan"
// @Success 200 {object} models.AttendanceStatusResponse
// @Failure 404 {object} models.NotFoundErrorResponse "Karyawan tidak ditemukan"
// @Router /attendance/{employeeId} [get]
func (h *AttendanceHandler) GetEmployeeStatus(c *fiber.Ctx) error {
	status, err := h.attendanceService.GetStatus(c.Context(), c.Params("employeeId"))
	if err != nil {
		return attendanceErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(status)
}

// GetMonthlySummary godoc
// @Summary Ringkasan absensi bulanan
// @Description Merangkum kehadiran satu karyawan untuk satu bulan (default bulan berjalan)
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param employeeId path string true "ID karyawan"
// @Param month query string false "Bulan dengan format YYYY-MM"
// @Success 200 {object} models.AttendanceSummary
// @Failure 404 {object} models.NotFoundErrorResponse "Karyawan tidak ditemukan"
// @Router /attendance/summary/{employeeId} [get]
func (h *AttendanceHandler) GetMonthlySummary(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Query parameter 'month' wajib diisi (format YYYY-MM)"})
	}

	summary, err := h.attendanceService.MonthlySummary(c.Context(), c.Params("employeeId"), month)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			return attendanceErrorResponse(c, err)
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}
