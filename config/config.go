package config

import (
	"encoding/base64"
	"log"
	"os"

	"github.com/joho/godotenv"

	util "Parlour-Admin-Dashboard/pkg/utils"
)

type AppConfig struct {
	Port            string
	MONGOSTRING     string
	PASETO_SECRET   string
	Timezone        string
	AttendanceStore string
}

// LoadConfig loads configuration from .env file
func LoadConfig() *AppConfig {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file (might not exist in production): %v", err)
	}

	secretBase64 := getEnv("PASETO_SECRET", "")
	if secretBase64 == "" {
		// Tanpa secret di env, buat kunci sementara supaya server development tetap bisa jalan.
		// Token tidak akan valid lagi setelah restart.
		generated, genErr := util.GenerateBase64Key(32)
		if genErr != nil {
			log.Fatalf("PASETO_SECRET belum di set dan gagal membuat kunci sementara: %v", genErr)
		}
		log.Println("Warning: PASETO_SECRET belum di set, menggunakan kunci sementara (token hangus saat restart)")
		secretBase64 = generated
	}

	secretBytes, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		log.Fatalf("PASETO_SECRET in .env is not a valid Base64 URL-encoded string: %v", err)
	}

	if len(secretBytes) != 32 {
		log.Fatalf("PASETO_SECRET (decoded) must be exactly 32 bytes long. Current length: %d", len(secretBytes))
	}

	return &AppConfig{
		Port:          getEnv("PORT", "5000"),
		MONGOSTRING:   getEnv("MONGOSTRING", ""),
		PASETO_SECRET: secretBase64,
		// Zona waktu untuk batas hari absensi. Kebijakan ini fixed per deployment,
		// bukan mengikuti zona waktu request.
		Timezone:        getEnv("APP_TIMEZONE", "Asia/Jakarta"),
		AttendanceStore: getEnv("ATTENDANCE_STORE", "mongo"),
	}
}

// Helper function to get environment variable or fallback to default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
