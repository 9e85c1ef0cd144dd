package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Parlour-Admin-Dashboard/config"
	"Parlour-Admin-Dashboard/models"
)

// ErrDuplicateRecord dikembalikan Create saat sudah ada record absensi untuk
// pasangan (karyawan, tanggal) yang sama. Service menerjemahkannya menjadi
// error AlreadyPunchedIn.
var ErrDuplicateRecord = errors.New("record absensi untuk karyawan dan tanggal ini sudah ada")

// AttendanceRepository adalah satu-satunya komponen yang boleh membaca/menulis
// dokumen absensi. Ada dua implementasi: Mongo (produksi) dan in-memory
// (ATTENDANCE_STORE=memory, dipakai juga sebagai test double). Keduanya wajib
// menjaga invariant satu record per (employee_id, date) secara atomik di
// operasi Create, bukan lewat find-then-insert.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *models.Attendance) error
	FindByEmployeeAndDate(ctx context.Context, employeeID primitive.ObjectID, date string) (*models.Attendance, error)
	UpdateSetPunchOut(ctx context.Context, id primitive.ObjectID, punchOut time.Time, totalHours float64) (*models.Attendance, error)
	FindAllWithEmployee(ctx context.Context) ([]models.AttendanceWithEmployee, error)
	FindByEmployeeID(ctx context.Context, employeeID primitive.ObjectID) ([]models.Attendance, error)
	FindByEmployeeAndDateRange(ctx context.Context, employeeID primitive.ObjectID, from, to string) ([]models.Attendance, error)
	CountByDate(ctx context.Context, date string) (int64, error)
	CountOpenByDate(ctx context.Context, date string) (int64, error)
}

type attendanceRepository struct {
	collection *mongo.Collection
}

func NewAttendanceRepository() AttendanceRepository {
	return &attendanceRepository{
		collection: config.GetCollection(config.AttendanceCollection),
	}
}

// Create mengandalkan unique index (employee_id, date); dua insert bersamaan
// untuk karyawan dan hari yang sama dijamin menghasilkan tepat satu sukses.
func (r *attendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	_, err := r.collection.InsertOne(ctx, attendance)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("gagal membuat record absensi: %w", err)
	}
	return nil
}

func (r *attendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID primitive.ObjectID, date string) (*models.Attendance, error) {
	var attendance models.Attendance
	filter := bson.M{"employee_id": employeeID, "date": date}
	err := r.collection.FindOne(ctx, filter).Decode(&attendance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal mencari absensi berdasarkan karyawan dan tanggal: %w", err)
	}
	return &attendance, nil
}

// UpdateSetPunchOut hanya mengenai record yang belum punya punch_out, jadi
// dua request punch-out bersamaan tidak bisa sama-sama menang. Mengembalikan
// (nil, nil) kalau tidak ada record yang cocok.
func (r *attendanceRepository) UpdateSetPunchOut(ctx context.Context, id primitive.ObjectID, punchOut time.Time, totalHours float64) (*models.Attendance, error) {
	filter := bson.M{
		"_id":       id,
		"punch_out": bson.M{"$exists": false},
	}
	update := bson.M{
		"$set": bson.M{
			"punch_out":   punchOut,
			"total_hours": totalHours,
			"updated_at":  time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Attendance
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal update punch-out absensi: %w", err)
	}
	return &updated, nil
}

func (r *attendanceRepository) FindAllWithEmployee(ctx context.Context) ([]models.AttendanceWithEmployee, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}, {Key: "punch_in", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.EmployeeCollection},
			{Key: "localField", Value: "employee_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "employeeDetails"},
		}}},
		{{Key: "$unwind", Value: "$employeeDetails"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: "$_id"},
			{Key: "employee_id", Value: 1},
			{Key: "date", Value: 1},
			{Key: "punch_in", Value: 1},
			{Key: "punch_out", Value: 1},
			{Key: "total_hours", Value: 1},
			{Key: "employee_code", Value: "$employeeDetails.employee_id"},
			{Key: "first_name", Value: "$employeeDetails.first_name"},
			{Key: "last_name", Value: "$employeeDetails.last_name"},
			{Key: "position", Value: "$employeeDetails.position"},
			{Key: "department", Value: "$employeeDetails.department"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("gagal aggregation untuk daftar kehadiran: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.AttendanceWithEmployee
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode hasil aggregation kehadiran: %w", err)
	}

	if len(results) == 0 {
		return []models.AttendanceWithEmployee{}, nil
	}
	return results, nil
}

func (r *attendanceRepository) FindByEmployeeID(ctx context.Context, employeeID primitive.ObjectID) ([]models.Attendance, error) {
	filter := bson.M{"employee_id": employeeID}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mencari riwayat absensi karyawan: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Attendance
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode riwayat absensi: %w", err)
	}

	if len(results) == 0 {
		return []models.Attendance{}, nil
	}
	return results, nil
}

// FindByEmployeeAndDateRange memanfaatkan format tanggal 2006-01-02 yang
// terurut secara leksikografis, jadi perbandingan string di Mongo aman.
func (r *attendanceRepository) FindByEmployeeAndDateRange(ctx context.Context, employeeID primitive.ObjectID, from, to string) ([]models.Attendance, error) {
	filter := bson.M{
		"employee_id": employeeID,
		"date":        bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mencari absensi per rentang tanggal: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Attendance
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode absensi per rentang tanggal: %w", err)
	}

	if len(results) == 0 {
		return []models.Attendance{}, nil
	}
	return results, nil
}

func (r *attendanceRepository) CountByDate(ctx context.Context, date string) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{"date": date})
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung absensi hari ini: %w", err)
	}
	return total, nil
}

func (r *attendanceRepository) CountOpenByDate(ctx context.Context, date string) (int64, error) {
	filter := bson.M{
		"date":      date,
		"punch_in":  bson.M{"$exists": true},
		"punch_out": bson.M{"$exists": false},
	}
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung karyawan yang masih punch-in: %w", err)
	}
	return total, nil
}
