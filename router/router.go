package router

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Parlour-Admin-Dashboard/config"
	"Parlour-Admin-Dashboard/config/middleware"
	_ "Parlour-Admin-Dashboard/docs"
	"Parlour-Admin-Dashboard/handlers"
	"Parlour-Admin-Dashboard/models"
	"Parlour-Admin-Dashboard/realtime"
	"Parlour-Admin-Dashboard/repository"
	"Parlour-Admin-Dashboard/service"
)

func SetupRoutes(app *fiber.App, cfg *config.AppConfig, hub *realtime.Hub, loc *time.Location) {
	log.Println("Memulai pendaftaran rute aplikasi...")

	// Inisialisasi Repositories
	userRepo := repository.NewUserRepository()
	employeeRepo := repository.NewEmployeeRepository()
	taskRepo := repository.NewTaskRepository()

	// Store absensi dipilih eksplisit lewat konfigurasi, bukan fallback
	// diam-diam saat database bermasalah.
	var attendanceRepo repository.AttendanceRepository
	switch cfg.AttendanceStore {
	case "memory":
		memRepo := repository.NewMemoryAttendanceRepository()
		memRepo.ResolveEmployee = func(id primitive.ObjectID) *models.Employee {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			employee, err := employeeRepo.FindEmployeeByID(ctx, id)
			if err != nil {
				return nil
			}
			return employee
		}
		attendanceRepo = memRepo
		log.Println("ATTENDANCE_STORE=memory: record absensi tidak persisten")
	case "mongo":
		attendanceRepo = repository.NewAttendanceRepository()
	default:
		log.Fatalf("ATTENDANCE_STORE tidak dikenal: %q (pilihan: mongo, memory)", cfg.AttendanceStore)
	}

	// Inisialisasi Services
	attendanceService := service.NewAttendanceService(attendanceRepo, employeeRepo, hub, loc)

	// Inisialisasi Handlers
	authHandler := handlers.NewAuthHandler(userRepo)
	userHandler := handlers.NewUserHandler(userRepo)
	employeeHandler := handlers.NewEmployeeHandler(employeeRepo)
	taskHandler := handlers.NewTaskHandler(taskRepo, employeeRepo)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	dashboardHandler := handlers.NewDashboardHandler(employeeRepo, taskRepo, attendanceRepo, loc)

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Parlour Admin Dashboard API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	// Websocket untuk push event attendanceUpdate. Autentikasi lewat query
	// token karena browser tidak bisa set header di handshake websocket.
	app.Use("/ws", handlers.UpgradeRequired)
	app.Get("/ws", middleware.AuthMiddleware(), handlers.AttendanceSocket(hub))

	// API v1 group
	api := app.Group("/api/v1")

	// Authentication routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", middleware.AuthMiddleware(), middleware.SuperAdminMiddleware(), authHandler.Register)

	// User routes
	protectedUserGroup := api.Group("/users", middleware.AuthMiddleware())
	protectedUserGroup.Post("/change-password", authHandler.ChangePassword)
	protectedUserGroup.Get("/profile", authHandler.GetProfile)

	// Admin routes
	adminGroup := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware())
	adminGroup.Get("/dashboard-stats", dashboardHandler.GetStats)
	superAdminGroup := adminGroup.Group("/", middleware.SuperAdminMiddleware())
	superAdminGroup.Get("/users", userHandler.GetAllUsers)
	superAdminGroup.Delete("/users/:id", userHandler.DeleteUser)

	// Employee routes
	employeeGroup := api.Group("/employees", middleware.AuthMiddleware())
	employeeGroup.Get("/", employeeHandler.GetAllEmployees)
	employeeGroup.Get("/:id", employeeHandler.GetEmployeeByID)
	employeeGroup.Get("/:id/qr-badge", employeeHandler.GetEmployeeQRBadge)
	superAdminEmployeeGroup := employeeGroup.Group("/", middleware.SuperAdminMiddleware())
	superAdminEmployeeGroup.Post("/", employeeHandler.CreateEmployee)
	superAdminEmployeeGroup.Put("/:id", employeeHandler.UpdateEmployee)
	superAdminEmployeeGroup.Patch("/:id/toggle-status", employeeHandler.ToggleEmployeeStatus)
	superAdminEmployeeGroup.Delete("/:id", employeeHandler.DeleteEmployee)

	// Task routes
	taskGroup := api.Group("/tasks", middleware.AuthMiddleware())
	taskGroup.Get("/", taskHandler.GetAllTasks)
	taskGroup.Get("/:id", taskHandler.GetTaskByID)
	taskGroup.Patch("/:id/status", taskHandler.UpdateTaskStatus)
	adminTaskGroup := taskGroup.Group("/", middleware.AdminMiddleware())
	adminTaskGroup.Post("/", taskHandler.CreateTask)
	adminTaskGroup.Put("/:id", taskHandler.UpdateTask)
	adminTaskGroup.Delete("/:id", taskHandler.DeleteTask)

	// Attendance routes
	attendanceGroup := api.Group("/attendance", middleware.AuthMiddleware())
	attendanceGroup.Post("/punch-in", attendanceHandler.PunchIn)
	attendanceGroup.Post("/punch-out", attendanceHandler.PunchOut)
	attendanceGroup.Get("/", middleware.AdminMiddleware(), attendanceHandler.GetAllAttendance)
	attendanceGroup.Get("/summary/:employeeId", middleware.AdminMiddleware(), attendanceHandler.GetMonthlySummary)
	attendanceGroup.Get("/:employeeId", attendanceHandler.GetEmployeeStatus)

	log.Println("Semua rute aplikasi berhasil didaftarkan.")
	log.Println("Routes yang tersedia:")
	log.Println("- POST /api/v1/auth/login")
	log.Println("- POST /api/v1/auth/register (superadmin only)")
	log.Println("- POST /api/v1/users/change-password (protected)")
	log.Println("- GET /api/v1/users/profile (protected)")
	log.Println("- GET /api/v1/admin/dashboard-stats (admin only)")
	log.Println("- GET /api/v1/admin/users (superadmin only)")
	log.Println("- DELETE /api/v1/admin/users/:id (superadmin only)")
	log.Println("- GET /api/v1/employees (protected)")
	log.Println("- GET /api/v1/employees/:id (protected)")
	log.Println("- GET /api/v1/employees/:id/qr-badge (protected)")
	log.Println("- POST /api/v1/employees (superadmin only)")
	log.Println("- PUT /api/v1/employees/:id (superadmin only)")
	log.Println("- PATCH /api/v1/employees/:id/toggle-status (superadmin only)")
	log.Println("- DELETE /api/v1/employees/:id (superadmin only)")
	log.Println("- GET /api/v1/tasks (protected)")
	log.Println("- GET /api/v1/tasks/:id (protected)")
	log.Println("- PATCH /api/v1/tasks/:id/status (protected)")
	log.Println("- POST /api/v1/tasks (admin only)")
	log.Println("- PUT /api/v1/tasks/:id (admin only)")
	log.Println("- DELETE /api/v1/tasks/:id (admin only)")
	log.Println("- POST /api/v1/attendance/punch-in (protected)")
	log.Println("- POST /api/v1/attendance/punch-out (protected)")
	log.Println("- GET /api/v1/attendance (admin only)")
	log.Println("- GET /api/v1/attendance/summary/:employeeId (admin only)")
	log.Println("- GET /api/v1/attendance/:employeeId (protected)")
	log.Println("- GET /ws (websocket, token query param)")
	log.Println("Swagger documentation tersedia di: /docs/index.html")
}
