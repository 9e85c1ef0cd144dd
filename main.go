package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"Parlour-Admin-Dashboard/config"
	"Parlour-Admin-Dashboard/pkg/paseto"
	"Parlour-Admin-Dashboard/realtime"
	"Parlour-Admin-Dashboard/repository"
	"Parlour-Admin-Dashboard/router"
	"Parlour-Admin-Dashboard/seeder"

	_ "Parlour-Admin-Dashboard/docs" // Import docs untuk swagger
	_ "time/tzdata"
)

// @title Parlour Admin Dashboard API
// @version 1.0
// @description API dashboard admin salon: manajemen karyawan, task, absensi punch-in/punch-out, dan notifikasi realtime
// @termsOfService https://github.com/your-repo/terms/
//
// @contact.name API Support
// @contact.url https://github.com/your-repo
// @contact.email support@example.com
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:5000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and PASETO token.
//
// @tag.name Auth
// @tag.description Authentication endpoints
//
// @tag.name Users
// @tag.description User management endpoints
//
// @tag.name Employees
// @tag.description Employee management endpoints
//
// @tag.name Tasks
// @tag.description Task management endpoints
//
// @tag.name Attendance
// @tag.description Attendance punch-in/punch-out endpoints
//
// @tag.name Dashboard
// @tag.description Dashboard statistics endpoints
func main() {

	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file tidak ditemukan, menggunakan environment variables sistem")
	}

	cfg := config.LoadConfig()

	if err := paseto.Init(cfg.PASETO_SECRET); err != nil {
		log.Fatalf("Gagal inisialisasi PASETO: %v", err)
	}

	// Zona waktu batas hari absensi. Satu nilai per deployment.
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("APP_TIMEZONE tidak valid (%q): %v", cfg.Timezone, err)
	}

	config.MongoConnect()
	config.InitDatabase()

	defer config.DisconnectDB()

	app := fiber.New()

	// Setup CORS menggunakan konfigurasi dari cors.go
	config.SetupCORS(app)

	app.Use(logger.New())

	hub := realtime.NewHub()

	// Setup routes (termasuk Swagger dan websocket di dalamnya)
	router.SetupRoutes(app, cfg, hub, loc)

	// Seed data awal
	seeder.SeedUsers(repository.NewUserRepository())
	seeder.SeedEmployees(repository.NewEmployeeRepository())

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("Health Check: http://localhost:%s/", cfg.Port)
	log.Printf("Realtime attendance: ws://localhost:%s/ws", cfg.Port)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins())
	log.Fatal(app.Listen(":" + cfg.Port))
}
