package employee

import "context"

type EmployeeFilter struct {
	Role *Role
}

type EmployeeRepository interface {
	// Create returns ErrEmailExists or ErrEmployeeCodeExists on a uniqueness clash.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	// List is ordered by name.
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
}
