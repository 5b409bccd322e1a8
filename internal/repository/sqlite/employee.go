package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/database"
	"github.com/google/uuid"
)

type employeeRepository struct {
	db *database.SQLiteDB
}

func NewEmployeeRepository(db *database.SQLiteDB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, name, email, password_hash, role, employee_code, department, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row rowScanner) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.PasswordHash, &emp.Role,
		&emp.EmployeeCode, &emp.Department, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	id, err := uuid.NewV7()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to generate employee id: %w", err)
	}
	newEmployee.ID = id.String()
	now := time.Now().UTC()
	newEmployee.CreatedAt, newEmployee.UpdatedAt = now, now

	query := `
		INSERT INTO employees (id, name, email, password_hash, role, employee_code, department, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = q.ExecContext(ctx, query,
		newEmployee.ID, newEmployee.Name, newEmployee.Email, newEmployee.PasswordHash,
		newEmployee.Role, newEmployee.EmployeeCode, newEmployee.Department, now, now,
	)
	if err != nil {
		violated := uniqueViolation(err)
		switch {
		case strings.Contains(violated, "employees.email"):
			return employee.Employee{}, employee.ErrEmailExists
		case strings.Contains(violated, "employees.employee_code"):
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	emp, err := scanEmployee(q.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id %s: %w", id, err)
	}
	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (e *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	emp, err := scanEmployee(q.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE email = ?`, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees`
	args := []interface{}{}
	if filter.Role != nil {
		query += ` WHERE role = ?`
		args = append(args, *filter.Role)
	}
	query += ` ORDER BY name ASC, id ASC`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}
