package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"Parlour-Admin-Dashboard/models"
	"Parlour-Admin-Dashboard/repository"
)

type DashboardHandler struct {
	employeeRepo   *repository.EmployeeRepository
	taskRepo       *repository.TaskRepository
	attendanceRepo repository.AttendanceRepository
	loc            *time.Location
}

func NewDashboardHandler(employeeRepo *repository.EmployeeRepository, taskRepo *repository.TaskRepository, attendanceRepo repository.AttendanceRepository, loc *time.Location) *DashboardHandler {
	return &DashboardHandler{
		employeeRepo:   employeeRepo,
		taskRepo:       taskRepo,
		attendanceRepo: attendanceRepo,
		loc:            loc,
	}
}

// GetStats godoc
// @Summary Statistik dashboard
// @Description Mengambil angka ringkasan untuk halaman utama dashboard
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardStats
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/dashboard-stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	today := time.Now().In(h.loc).Format(models.DateLayout)

	totalEmployees, err := h.employeeRepo.CountEmployees(ctx, bson.M{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghitung karyawan"})
	}

	activeEmployees, err := h.employeeRepo.CountEmployees(ctx, bson.M{"is_active": true})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghitung karyawan aktif"})
	}

	todayAttendance, err := h.attendanceRepo.CountByDate(ctx, today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghitung kehadiran hari ini"})
	}

	punchedInNow, err := h.attendanceRepo.CountOpenByDate(ctx, today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghitung karyawan yang sedang bekerja"})
	}

	pendingTasks, err := h.taskRepo.CountTasks(ctx, bson.M{"status": models.TaskStatusPending})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghitung task pending"})
	}

	stats := models.DashboardStats{
		TotalEmployees:  totalEmployees,
		ActiveEmployees: activeEmployees,
		TodayAttendance: todayAttendance,
		PunchedInNow:    punchedInNow,
		PendingTasks:    pendingTasks,
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
