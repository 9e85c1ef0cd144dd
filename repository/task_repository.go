package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Parlour-Admin-Dashboard/config"
	"Parlour-Admin-Dashboard/models"
)

type TaskRepository struct {
	collection *mongo.Collection
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{
		collection: config.GetCollection(config.TaskCollection),
	}
}

func (r *TaskRepository) CreateTask(ctx context.Context, task *models.Task) (*mongo.InsertOneResult, error) {
	task.ID = primitive.NewObjectID()
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat task: %w", err)
	}
	return result, nil
}

func (r *TaskRepository) FindTaskByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	var task models.Task
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan task berdasarkan ID: %w", err)
	}
	return &task, nil
}

// GetAllTasksWithEmployee mengambil semua task (opsional difilter) dengan
// field display karyawan yang ditugaskan, terbaru dulu.
func (r *TaskRepository) GetAllTasksWithEmployee(ctx context.Context, filter bson.M) ([]models.TaskWithEmployee, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.EmployeeCollection},
			{Key: "localField", Value: "assigned_to"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "employeeDetails"},
		}}},
		{{Key: "$unwind", Value: "$employeeDetails"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: "$_id"},
			{Key: "title", Value: 1},
			{Key: "description", Value: 1},
			{Key: "assigned_to", Value: 1},
			{Key: "assigned_by", Value: 1},
			{Key: "status", Value: 1},
			{Key: "priority", Value: 1},
			{Key: "due_date", Value: 1},
			{Key: "completed_date", Value: 1},
			{Key: "employee_code", Value: "$employeeDetails.employee_id"},
			{Key: "first_name", Value: "$employeeDetails.first_name"},
			{Key: "last_name", Value: "$employeeDetails.last_name"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("gagal aggregation untuk daftar task: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.TaskWithEmployee
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode hasil aggregation task: %w", err)
	}

	if len(results) == 0 {
		return []models.TaskWithEmployee{}, nil
	}
	return results, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()
	filter := bson.M{"_id": id}
	update := bson.M{"$set": updateData}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("gagal mengupdate task: %w", err)
	}
	return result, nil
}

// UpdateTaskStatus mengubah status dan mengelola completed_date: diisi saat
// COMPLETED, dikosongkan saat keluar dari COMPLETED.
func (r *TaskRepository) UpdateTaskStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Task, error) {
	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		},
	}
	if status == models.TaskStatusCompleted {
		update["$set"].(bson.M)["completed_date"] = time.Now()
	} else {
		update["$unset"] = bson.M{"completed_date": ""}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Task
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal mengubah status task: %w", err)
	}
	return &updated, nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("gagal menghapus task: %w", err)
	}
	return result, nil
}

func (r *TaskRepository) CountTasks(ctx context.Context, filter bson.M) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung task: %w", err)
	}
	return total, nil
}
