package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Parlour-Admin-Dashboard/models"
	util "Parlour-Admin-Dashboard/pkg/utils"
	"Parlour-Admin-Dashboard/repository"
)

type TaskHandler struct {
	taskRepo     *repository.TaskRepository
	employeeRepo *repository.EmployeeRepository
}

func NewTaskHandler(taskRepo *repository.TaskRepository, employeeRepo *repository.EmployeeRepository) *TaskHandler {
	return &TaskHandler{
		taskRepo:     taskRepo,
		employeeRepo: employeeRepo,
	}
}

// GetAllTasks godoc
// @Summary Daftar task
// @Description Mengambil semua task dengan data karyawan, bisa difilter status dan assignee
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter status task"
// @Param assigned_to query string false "Filter ID karyawan"
// @Success 200 {array} models.TaskWithEmployee
// @Router /tasks [get]
func (h *TaskHandler) GetAllTasks(c *fiber.Ctx) error {
	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if assignedTo := c.Query("assigned_to"); assignedTo != "" {
		id, err := primitive.ObjectIDFromHex(assignedTo)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format assigned_to tidak valid"})
		}
		filter["assigned_to"] = id
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	tasks, err := h.taskRepo.GetAllTasksWithEmployee(ctx, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil daftar task"})
	}

	return c.Status(fiber.StatusOK).JSON(tasks)
}

// GetTaskByID godoc
// @Summary Detail task
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID task"
// @Success 200 {object} models.Task
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTaskByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	task, err := h.taskRepo.FindTaskByID(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data task"})
	}
	if task == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(task)
}

// CreateTask godoc
// @Summary Buat task
// @Description Membuat task baru untuk seorang karyawan
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param task body models.TaskCreatePayload true "Data task"
// @Success 201 {object} models.Task
// @Failure 400 {object} models.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau data sesi rusak"})
	}

	var payload models.TaskCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	assignedTo, err := primitive.ObjectIDFromHex(payload.AssignedTo)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format assigned_to tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.FindEmployeeByID(ctx, assignedTo)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memverifikasi karyawan"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	dueDate, err := time.Parse("2006-01-02", payload.DueDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format due_date tidak valid"})
	}

	task := &models.Task{
		Title:       payload.Title,
		Description: payload.Description,
		AssignedTo:  assignedTo,
		AssignedBy:  claims.UserID,
		Status:      models.TaskStatusPending,
		Priority:    payload.Priority,
		DueDate:     dueDate,
	}

	if _, err := h.taskRepo.CreateTask(ctx, task); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat task"})
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

// UpdateTask godoc
// @Summary Update task
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID task"
// @Param task body models.TaskUpdatePayload true "Data yang diubah"
// @Success 200 {object} fiber.Map
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID tidak valid"})
	}

	var payload models.TaskUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	updateData := bson.M{}
	if payload.Title != "" {
		updateData["title"] = payload.Title
	}
	if payload.Description != "" {
		updateData["description"] = payload.Description
	}
	if payload.Priority != "" {
		updateData["priority"] = payload.Priority
	}
	if payload.AssignedTo != "" {
		assignedTo, err := primitive.ObjectIDFromHex(payload.AssignedTo)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format assigned_to tidak valid"})
		}
		updateData["assigned_to"] = assignedTo
	}
	if payload.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", payload.DueDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format due_date tidak valid"})
		}
		updateData["due_date"] = dueDate
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.taskRepo.UpdateTask(ctx, id, updateData)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate task"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Task berhasil diupdate",
		"task_id": id.Hex(),
	})
}

// UpdateTaskStatus godoc
// @Summary Update status task
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID task"
// @Param status body models.TaskStatusPayload true "Status baru"
// @Success 200 {object} models.Task
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /tasks/{id}/status [patch]
func (h *TaskHandler) UpdateTaskStatus(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID tidak valid"})
	}

	var payload models.TaskStatusPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	task, err := h.taskRepo.UpdateTaskStatus(ctx, id, payload.Status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengubah status task"})
	}
	if task == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(task)
}

// DeleteTask godoc
// @Summary Hapus task
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID task"
// @Success 200 {object} fiber.Map
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.taskRepo.DeleteTask(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus task"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Task berhasil dihapus",
		"task_id": id.Hex(),
	})
}
