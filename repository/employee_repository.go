package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Parlour-Admin-Dashboard/config"
	"Parlour-Admin-Dashboard/models"
)

type EmployeeRepository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{
		collection: config.GetCollection(config.EmployeeCollection),
	}
}

// NextEmployeeID membuat ID bisnis berikutnya dengan format EMP0001.
func (r *EmployeeRepository) NextEmployeeID(ctx context.Context) (string, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "employee_id", Value: -1}})

	var last models.Employee
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "EMP0001", nil
		}
		return "", fmt.Errorf("gagal mencari employee ID terakhir: %w", err)
	}

	lastNumber, err := strconv.Atoi(strings.TrimPrefix(last.EmployeeID, "EMP"))
	if err != nil {
		return "", fmt.Errorf("format employee ID terakhir tidak valid (%s): %w", last.EmployeeID, err)
	}

	return fmt.Sprintf("EMP%04d", lastNumber+1), nil
}

func (r *EmployeeRepository) CreateEmployee(ctx context.Context, employee *models.Employee) (*mongo.InsertOneResult, error) {
	employee.ID = primitive.NewObjectID()
	employee.CreatedAt = time.Now()
	employee.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, employee)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("employee ID atau email sudah terdaftar")
		}
		return nil, fmt.Errorf("gagal membuat karyawan: %w", err)
	}
	return result, nil
}

func (r *EmployeeRepository) FindEmployeeByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	var employee models.Employee
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&employee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan karyawan berdasarkan ID: %w", err)
	}
	return &employee, nil
}

func (r *EmployeeRepository) FindEmployeeByCode(ctx context.Context, employeeID string) (*models.Employee, error) {
	var employee models.Employee
	err := r.collection.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&employee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan karyawan berdasarkan employee ID: %w", err)
	}
	return &employee, nil
}

func (r *EmployeeRepository) GetAllEmployees(ctx context.Context, filter bson.M, page, limit int64) ([]models.Employee, int64, error) {
	findOptions := options.Find()
	findOptions.SetSkip((page - 1) * limit)
	findOptions.SetLimit(limit)
	findOptions.SetSort(bson.D{{Key: "employee_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menemukan karyawan: %w", err)
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err = cursor.All(ctx, &employees); err != nil {
		return nil, 0, fmt.Errorf("gagal mendecode karyawan: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menghitung karyawan: %w", err)
	}

	return employees, total, nil
}

func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()
	filter := bson.M{"_id": id}
	update := bson.M{"$set": updateData}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate karyawan: %w", err)
	}
	return result, nil
}

func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus karyawan: %w", err)
	}
	return result, nil
}

// ToggleEmployeeStatus membalik flag is_active dan mengembalikan dokumen terbaru.
func (r *EmployeeRepository) ToggleEmployeeStatus(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	employee, err := r.FindEmployeeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}

	update := bson.M{"$set": bson.M{"is_active": !employee.IsActive, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Employee
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("gagal mengubah status karyawan: %w", err)
	}
	return &updated, nil
}

func (r *EmployeeRepository) CountEmployees(ctx context.Context, filter bson.M) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung karyawan: %w", err)
	}
	return total, nil
}
