package domain

import "time"

const (
	StatusActive     = "ACTIVE"
	StatusInactive   = "INACTIVE"
	StatusTerminated = "TERMINATED"
)

type Employee struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Position     string
	Salary       float64
	HireDate     time.Time
	Status       string
	DepartmentID *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ValidStatus(status string) bool {
	switch status {
	case StatusActive, StatusInactive, StatusTerminated:
		return true
	}
	return false
}
