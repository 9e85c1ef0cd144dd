package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TaskStatusPending    = "PENDING"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusCompleted  = "COMPLETED"
	TaskStatusCancelled  = "CANCELLED"
)

const (
	TaskPriorityLow    = "LOW"
	TaskPriorityMedium = "MEDIUM"
	TaskPriorityHigh   = "HIGH"
)

type Task struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title,omitempty"`
	Description   string             `json:"description" bson:"description,omitempty"`
	AssignedTo    primitive.ObjectID `json:"assigned_to" bson:"assigned_to,omitempty"`
	AssignedBy    primitive.ObjectID `json:"assigned_by" bson:"assigned_by,omitempty"`
	Status        string             `json:"status" bson:"status,omitempty"`
	Priority      string             `json:"priority" bson:"priority,omitempty"`
	DueDate       time.Time          `json:"due_date" bson:"due_date,omitempty"`
	CompletedDate *time.Time         `json:"completed_date,omitempty" bson:"completed_date,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type TaskCreatePayload struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=1000"`
	AssignedTo  string `json:"assigned_to" validate:"required"`
	Priority    string `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH"`
	DueDate     string `json:"due_date" validate:"required,datetime=2006-01-02"`
}

type TaskUpdatePayload struct {
	Title       string `json:"title,omitempty" validate:"omitempty,max=200"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
	AssignedTo  string `json:"assigned_to,omitempty"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate     string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type TaskStatusPayload struct {
	Status string `json:"status" validate:"required,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
}

type TaskWithEmployee struct {
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	Title         string             `json:"title" bson:"title"`
	Description   string             `json:"description" bson:"description"`
	AssignedTo    primitive.ObjectID `json:"assigned_to" bson:"assigned_to"`
	AssignedBy    primitive.ObjectID `json:"assigned_by" bson:"assigned_by"`
	Status        string             `json:"status" bson:"status"`
	Priority      string             `json:"priority" bson:"priority"`
	DueDate       time.Time          `json:"due_date" bson:"due_date"`
	CompletedDate *time.Time         `json:"completed_date,omitempty" bson:"completed_date,omitempty"`
	EmployeeCode  string             `json:"employee_code" bson:"employee_code"`
	FirstName     string             `json:"first_name" bson:"first_name"`
	LastName      string             `json:"last_name" bson:"last_name"`
}
