package handlers

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Parlour-Admin-Dashboard/models"
	util "Parlour-Admin-Dashboard/pkg/utils"
	"Parlour-Admin-Dashboard/repository"
)

type EmployeeHandler struct {
	repo *repository.EmployeeRepository
}

func NewEmployeeHandler(repo *repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{repo: repo}
}

// GetAllEmployees godoc
// @Summary Daftar karyawan
// @Description Mengambil daftar karyawan dengan pagination
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Param page query int false "Halaman" default(1)
// @Param limit query int false "Jumlah per halaman" default(20)
// @Success 200 {object} models.GetAllEmployeesSuccessResponse
// @Router /employees [get]
func (h *EmployeeHandler) GetAllEmployees(c *fiber.Ctx) error {
	page := int64(c.QueryInt("page", 1))
	limit := int64(c.QueryInt("limit", 20))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filter := bson.M{}
	if department := c.Query("department"); department != "" {
		filter["department"] = department
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employees, total, err := h.repo.GetAllEmployees(ctx, filter, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data karyawan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Data karyawan berhasil diambil",
		"employees": employees,
		"total":     total,
	})
}

// GetEmployeeByID godoc
// @Summary Detail karyawan
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID karyawan"
// @Success 200 {object} models.Employee
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployeeByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.repo.FindEmployeeByID(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data karyawan"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(employee)
}

// CreateEmployee godoc
// @Summary Tambah karyawan
// @Description Membuat karyawan baru dengan employee ID otomatis (superadmin only)
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employee body models.EmployeeCreatePayload true "Data karyawan"
// @Success 201 {object} models.Employee
// @Failure 400 {object} models.ErrorResponse
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau data sesi rusak"})
	}

	var payload models.EmployeeCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	hireDate := time.Now()
	if payload.HireDate != "" {
		parsed, err := time.Parse("2006-01-02", payload.HireDate)
		if err == nil {
			hireDate = parsed
		}
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	nextID, err := h.repo.NextEmployeeID(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat employee ID baru"})
	}

	employee := &models.Employee{
		EmployeeID: nextID,
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		Email:      payload.Email,
		Phone:      payload.Phone,
		Position:   payload.Position,
		Department: payload.Department,
		HireDate:   hireDate,
		Salary:     payload.Salary,
		IsActive:   true,
		CreatedBy:  claims.UserID,
		UpdatedBy:  claims.UserID,
	}

	if _, err := h.repo.CreateEmployee(ctx, employee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(employee)
}

// UpdateEmployee godoc
// @Summary Update karyawan
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID karyawan"
// @Param employee body models.EmployeeUpdatePayload true "Data yang diubah"
// @Success 200 {object} fiber.Map
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau data sesi rusak"})
	}

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID tidak valid"})
	}

	var payload models.EmployeeUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	updateData := bson.M{"updated_by": claims.UserID}
	if payload.FirstName != "" {
		updateData["first_name"] = payload.FirstName
	}
	if payload.LastName != "" {
		updateData["last_name"] = payload.LastName
	}
	if payload.Email != "" {
		updateData["email"] = payload.Email
	}
	if payload.Phone != "" {
		updateData["phone"] = payload.Phone
	}
	if payload.Position != "" {
		updateData["position"] = payload.Position
	}
	if payload.Department != "" {
		updateData["department"] = payload.Department
	}
	if payload.Salary > 0 {
		updateData["salary"] = payload.Salary
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.repo.UpdateEmployee(ctx, id, updateData)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate karyawan"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Karyawan berhasil diupdate",
		"employee_id": id.Hex(),
	})
}

// DeleteEmployee godoc
// @Summary Hapus karyawan
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID karyawan"
// @Success 200 {object} fiber.Map
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.repo.DeleteEmployee(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus karyawan"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Karyawan berhasil dihapus",
		"employee_id": id.Hex(),
	})
}

// ToggleEmployeeStatus godoc
// @Summary Aktif/nonaktifkan karyawan
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID karyawan"
// @Success 200 {object} models.Employee
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /employees/{id}/toggle-status [patch]
func (h *EmployeeHandler) ToggleEmployeeStatus(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.repo.ToggleEmployeeStatus(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengubah status karyawan"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(employee)
}

// GetEmployeeQRBadge godoc
// @Summary QR badge karyawan
// @Description Membuat gambar QR berisi ID karyawan untuk di-scan kiosk absensi
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID karyawan"
// @Success 200 {object} models.QRBadgeSuccessResponse
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /employees/{id}/qr-badge [get]
func (h *EmployeeHandler) GetEmployeeQRBadge(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.repo.FindEmployeeByID(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data karyawan"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	// QR berisi ObjectID hex, nilai yang sama dengan body punch-in/punch-out.
	png, err := qrcode.Encode(employee.ID.Hex(), qrcode.Medium, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat gambar QR badge"})
	}

	encodedString := base64.StdEncoding.EncodeToString(png)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "QR badge berhasil dibuat",
		"employee_id":   employee.EmployeeID,
		"qr_code_image": "data:image/png;base64," + encodedString,
	})
}
