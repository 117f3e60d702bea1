package domain

import "time"

type Department struct {
	ID          int64
	Name        string
	Description string
	Location    string
	ManagerName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
