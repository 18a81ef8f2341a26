package employee

import "time"

// Employee is the directory entry the core consults for id → name lookups.
// Everything else about employees is owned by the surrounding CRUD screens.
type Employee struct {
	ID        string
	FullName  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
