package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type attendanceRepository struct {
	db *database.SQLiteDB
}

func NewAttendanceRepository(db *database.SQLiteDB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `a.id, a.employee_id, a.date, a.check_in_time, a.check_out_time, a.status, a.total_hours, a.created_at, a.updated_at`

func scanAttendance(row rowScanner, extra ...interface{}) (attendance.Attendance, error) {
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
	now := time.Now().UTC()
	newAttendance.CreatedAt, newAttendance.UpdatedAt = now, now

	query := `
		INSERT INTO attendances (id, employee_id, date, check_in_time, status, total_hours, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, '0', ?, ?)
		ON CONFLICT (employee_id, date) DO NOTHING
	`
	res, err := q.ExecContext(ctx, query,
		newAttendance.ID, newAttendance.EmployeeID, newAttendance.Date,
		newAttendance.CheckInTime.UTC(), newAttendance.Status, now, now,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	if affected == 0 {
		return attendance.Attendance{}, attendance.ErrDuplicateCheckIn
	}

	return newAttendance, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances a WHERE a.employee_id = ? AND a.date = ?`
	att, err := scanAttendance(q.QueryRowContext(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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
		UPDATE attendances
		SET check_out_time = ?, status = ?, total_hours = ?, updated_at = ?
		WHERE id = ? AND check_out_time IS NULL
	`
	res, err := q.ExecContext(ctx, query, checkOut.UTC(), status, totalHours.String(), time.Now().UTC(), id)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to close attendance %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to close attendance %s: %w", id, err)
	}
	if affected == 0 {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
	}

	att, err := scanAttendance(q.QueryRowContext(ctx, `SELECT `+attendanceColumns+` FROM attendances a WHERE a.id = ?`, id))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to reload attendance %s: %w", id, err)
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

	if filter.EmployeeID != nil {
		query += " AND a.employee_id = ?"
		args = append(args, *filter.EmployeeID)
	}
	if filter.From != nil {
		query += " AND a.date >= ?"
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		query += " AND a.date <= ?"
		args = append(args, *filter.To)
	}
	query += " ORDER BY a.date DESC, a.check_in_time DESC"

	rows, err := q.QueryContext(ctx, query, args...)
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
