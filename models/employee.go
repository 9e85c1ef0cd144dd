package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Employee struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID   string             `json:"employee_id" bson:"employee_id,omitempty"`
	FirstName    string             `json:"first_name" bson:"first_name,omitempty"`
	LastName     string             `json:"last_name" bson:"last_name,omitempty"`
	Email        string             `json:"email" bson:"email,omitempty"`
	Phone        string             `json:"phone" bson:"phone,omitempty"`
	Position     string             `json:"position" bson:"position,omitempty"`
	Department   string             `json:"department" bson:"department,omitempty"`
	HireDate     time.Time          `json:"hire_date" bson:"hire_date,omitempty"`
	Salary       float64            `json:"salary" bson:"salary,omitempty"`
	IsActive     bool               `json:"is_active" bson:"is_active"`
	ProfileImage string             `json:"profile_image,omitempty" bson:"profile_image,omitempty"`
	CreatedBy    primitive.ObjectID `json:"created_by,omitempty" bson:"created_by,omitempty"`
	UpdatedBy    primitive.ObjectID `json:"updated_by,omitempty" bson:"updated_by,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type EmployeeCreatePayload struct {
	FirstName  string  `json:"first_name" validate:"required,min=2,max=50"`
	LastName   string  `json:"last_name" validate:"required,min=2,max=50"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      string  `json:"phone" validate:"required,min=10,max=20"`
	Position   string  `json:"position" validate:"required,max=100"`
	Department string  `json:"department" validate:"required,max=100"`
	HireDate   string  `json:"hire_date" validate:"omitempty,datetime=2006-01-02"`
	Salary     float64 `json:"salary" validate:"min=0"`
}

type EmployeeUpdatePayload struct {
	FirstName  string  `json:"first_name,omitempty" validate:"omitempty,min=2,max=50"`
	LastName   string  `json:"last_name,omitempty" validate:"omitempty,min=2,max=50"`
	Email      string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string  `json:"phone,omitempty" validate:"omitempty,min=10,max=20"`
	Position   string  `json:"position,omitempty" validate:"omitempty,max=100"`
	Department string  `json:"department,omitempty" validate:"omitempty,max=100"`
	Salary     float64 `json:"salary,omitempty" validate:"omitempty,min=0"`
}
