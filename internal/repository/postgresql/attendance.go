package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `a.id, a.employee_id, a.date::text, a.check_in_time, a.check_out_time, a.status, a.total_hours, a.created_at, a.updated_at`

func scanAttendance(row pgx.Row, extra ...interface{}) (attendance.Attendance, error) {
	var att attendance.Attendance
	dest := []interface{}{
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckInTime, &att.CheckOutTime,
		&att.Status, &att.TotalHours, &att.CreatedAt, &att.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}
	newAttendance.ID = id.String()
	newAttendance.TotalHours = decimal.Zero

	// The unique (employee_id, date) constraint arbitrates concurrent check-ins.
	query := `
		INSERT INTO attendances (id, employee_id, date, check_in_time, status, total_hours, created_at, updated_at)
		VALUES ($1, $2, $3::date, $4, $5, 0, NOW(), NOW())
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING created_at, updated_at
	`
	err = q.QueryRow(ctx, query,
		newAttendance.ID, newAttendance.EmployeeID, newAttendance.Date,
		newAttendance.CheckInTime.UTC(), newAttendance.Status,
	).Scan(&newAttendance.CreatedAt, &newAttendance.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrDuplicateCheckIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date = $2::date
	`
	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance for employee %s on %s: %w", employeeID, date, err)
	}
	return att, nil
}

// CloseSession implements attendance.AttendanceRepository.
func (r *attendanceRepository) CloseSession(ctx context.Context, id string, checkOut time.Time, status attendance.Status, totalHours decimal.Decimal) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances a
		SET check_out_time = $2, status = $3, total_hours = $4, updated_at = NOW()
		WHERE a.id = $1 AND a.check_out_time IS NULL
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, id, checkOut.UTC(), status, totalHours))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.Attendance{}, fmt.Errorf("failed to close attendance %s: %w", id, err)
	}
	return att, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `, e.name, e.email, e.employee_code, e.department, e.role
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND a.date >= $%d::date", argIdx)
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND a.date <= $%d::date", argIdx)
		args = append(args, *filter.To)
		argIdx++
	}
	query += " ORDER BY a.date DESC, a.check_in_time DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	attendances := make([]attendance.Attendance, 0)
	for rows.Next() {
		var name, email, code, department, role *string
		att, err := scanAttendance(rows, &name, &email, &code, &department, &role)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		att.EmployeeName, att.EmployeeEmail, att.EmployeeCode = name, email, code
		att.EmployeeDepartment, att.EmployeeRole = department, role
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, nil
}
