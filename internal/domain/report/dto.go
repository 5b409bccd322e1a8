package report

import (
	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/validator"
)

// ========================================
// FILTERS
// ========================================

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ReportFilter is shared by the team report and the export.
type ReportFilter struct {
	From       *string `json:"from,omitempty"` // YYYY-MM-DD, inclusive
	To         *string `json:"to,omitempty"`   // YYYY-MM-DD, inclusive
	EmployeeID *string `json:"employee_id,omitempty"`
	Format     string  `json:"format,omitempty"`
}

func (f *ReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID != nil && (validator.IsEmpty(*f.EmployeeID) || *f.EmployeeID == "all") {
		f.EmployeeID = nil
	}
	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if (f.From == nil) != (f.To == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from and to must be provided together",
		})
	}

	if f.From != nil {
		if _, ok := validator.IsValidDate(*f.From); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be in YYYY-MM-DD format",
			})
		}
	}
	if f.To != nil {
		if _, ok := validator.IsValidDate(*f.To); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be in YYYY-MM-DD format",
			})
		}
	}
	if len(errs) == 0 && f.From != nil && f.To != nil && *f.From > *f.To {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: ErrInvalidDateRange.Error(),
		})
	}

	if f.Format == "" {
		f.Format = FormatCSV
	}
	if !validator.IsInSlice(f.Format, []string{FormatCSV, FormatXLSX}) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be csv or xlsx",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// SUMMARIES
// ========================================

type PeriodSummary struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
	Late       int    `json:"late"`
	HalfDay    int    `json:"half_day"`
	TotalHours string `json:"total_hours"`
	// Stored rows whose status is not a recorded status.
	Unclassified int `json:"unclassified,omitempty"`
}

type DailyCounts struct {
	Date           string `json:"date"`
	TotalEmployees int    `json:"total_employees"`
	Present        int    `json:"present"`
	Late           int    `json:"late"`
	HalfDay        int    `json:"half_day"`
	Absent         int    `json:"absent"`
}

type TrendPoint struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Late    int    `json:"late"`
	HalfDay int    `json:"half_day"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// ========================================
// TEAM STATUS
// ========================================

type PresentEntry struct {
	employee.Identity
	Attendance attendance.AttendanceResponse `json:"attendance"`
}

type AbsentEntry struct {
	employee.Identity
	Status attendance.Status `json:"status"`
}

type TeamStatusResponse struct {
	Date    string         `json:"date"`
	Present []PresentEntry `json:"present"`
	Absent  []AbsentEntry  `json:"absent"`
}

// ========================================
// EXPORT
// ========================================

// ExportHeader is the fixed column order of an export.
var ExportHeader = []string{"Employee ID", "Name", "Email", "Department", "Date", "Status", "Check In", "Check Out", "Work Hours"}

type ExportRow struct {
	EmployeeCode string
	Name         string
	Email        string
	Department   string
	Date         string
	Status       string
	CheckIn      string
	CheckOut     string
	WorkHours    string
}

// Values returns the row in ExportHeader order.
func (r ExportRow) Values() []string {
	return []string{r.EmployeeCode, r.Name, r.Email, r.Department, r.Date, r.Status, r.CheckIn, r.CheckOut, r.WorkHours}
}
