// file: seeder/user_seeder.go

package seeder

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"Parlour-Admin-Dashboard/models"
	"Parlour-Admin-Dashboard/repository"
)

// SeedUsers memastikan akun superadmin default ada supaya dashboard bisa
// langsung dipakai setelah deploy pertama. Password wajib diganti setelah
// login pertama.
func SeedUsers(userRepo *repository.UserRepository) {
	log.Println("🌱 Memulai seeding user...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminEmail := "admin@parlour.com"
	existing, err := userRepo.FindUserByEmail(ctx, adminEmail)
	if err == nil && existing != nil {
		log.Println("✅ User superadmin sudah ada, seeding user dilewati.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Admin@123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Gagal hash password: %v", err)
	}

	superAdmin := &models.User{
		ID:        primitive.NewObjectID(),
		Email:     adminEmail,
		Password:  string(hashedPassword),
		FirstName: "Super",
		LastName:  "Admin",
		Role:      models.RoleSuperAdmin,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := userRepo.CreateUser(ctx, superAdmin); err != nil {
		log.Printf("❌ Gagal menyimpan user superadmin: %v\n", err)
		return
	}

	log.Printf("✔ User superadmin (%s) berhasil ditambahkan. Segera ganti password default!\n", adminEmail)
	log.Println("✅ Seeding user selesai.")
}
