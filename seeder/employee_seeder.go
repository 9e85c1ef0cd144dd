// file: seeder/employee_seeder.go

package seeder

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Parlour-Admin-Dashboard/models"
	"Parlour-Admin-Dashboard/repository"
)

// SeedEmployees mengisi data karyawan contoh untuk development. Dilewati
// kalau koleksi sudah berisi data.
func SeedEmployees(employeeRepo *repository.EmployeeRepository) {
	log.Println("🌱 Memulai seeding karyawan...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := employeeRepo.CountEmployees(ctx, bson.M{})
	if err != nil {
		log.Printf("❌ Gagal menghitung karyawan: %v\n", err)
		return
	}
	if count > 0 {
		log.Println("✅ Data karyawan sudah ada, seeding karyawan dilewati.")
		return
	}

	departmentPositions := map[string][]string{
		"Styling":      {"Senior Stylist", "Junior Stylist", "Colorist"},
		"Treatment":    {"Beautician", "Nail Artist", "Massage Therapist"},
		"Front Office": {"Receptionist", "Kasir"},
		"Operasional":  {"Supervisor", "Staf Kebersihan"},
	}
	departments := []string{"Styling", "Treatment", "Front Office", "Operasional"}

	firstNames := []string{"Budi", "Siti", "Agus", "Dewi", "Rina", "Andi", "Maya", "Dian", "Putri", "Rizky"}
	lastNames := []string{"Santoso", "Wijaya", "Putra", "Utami", "Rahayu", "Pratama", "Lestari", "Setiawan", "Wulandari", "Hidayat"}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	log.Println("🔄 Menambahkan 10 karyawan contoh...")
	for i := 1; i <= 10; i++ {
		code, err := employeeRepo.NextEmployeeID(ctx)
		if err != nil {
			log.Printf("❌ Gagal membuat ID karyawan: %v\n", err)
			return
		}

		department := departments[rng.Intn(len(departments))]
		positions := departmentPositions[department]

		employee := &models.Employee{
			ID:         primitive.NewObjectID(),
			EmployeeID: code,
			FirstName:  firstNames[rng.Intn(len(firstNames))],
			LastName:   lastNames[rng.Intn(len(lastNames))],
			Email:      fmt.Sprintf("karyawan%02d@parlour.com", i),
			Phone:      fmt.Sprintf("+62812%08d", rng.Intn(100000000)),
			Position:   positions[rng.Intn(len(positions))],
			Department: department,
			HireDate:   time.Now().AddDate(0, -rng.Intn(24), 0),
			Salary:     float64(rng.Intn(3000001) + 4000000),
			IsActive:   true,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}

		if _, err := employeeRepo.CreateEmployee(ctx, employee); err != nil {
			log.Printf("❌ Gagal menyimpan karyawan %s: %v\n", employee.FullName(), err)
			continue
		}
		fmt.Printf("✔ Karyawan %s (%s - %s) berhasil ditambahkan.\n", employee.FullName(), employee.EmployeeID, employee.Department)
	}

	log.Println("✅ Seeding karyawan selesai.")
}
