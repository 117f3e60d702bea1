package dto

import "time"

type EmployeeInput struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Position     string  `json:"position"`
	Salary       float64 `json:"salary"`
	HireDate     string  `json:"hireDate"`
	Status       string  `json:"status"`
	DepartmentID *int64  `json:"departmentId"`
}

type EmployeeOutput struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Position     string    `json:"position"`
	Salary       float64   `json:"salary"`
	HireDate     string    `json:"hireDate"`
	Status       string    `json:"status"`
	DepartmentID *int64    `json:"departmentId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
