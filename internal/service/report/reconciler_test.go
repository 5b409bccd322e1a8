package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_TwoOfFourPresent(t *testing.T) {
	roster := []employee.Employee{
		emp("a", employee.RoleEmployee, "Eng"),
		emp("b", employee.RoleEmployee, "Eng"),
		emp("c", employee.RoleEmployee, "Ops"),
		emp("d", employee.RoleEmployee, "Ops"),
	}
	manager := emp("m", employee.RoleManager, "Mgmt")
	records := []attendance.Attendance{
		rec(roster[0], "a", "2024-03-04", attendance.StatusPresent, "0"),
		rec(roster[2], "c", "2024-03-04", attendance.StatusLate, "0"),
		rec(employee.Employee{}, "ghost", "2024-03-04", attendance.StatusPresent, "0"),
		rec(manager, "m", "2024-03-04", attendance.StatusPresent, "0"),
		rec(roster[1], "b", "2024-03-03", attendance.StatusPresent, "0"),
	}

	got := Reconcile("2024-03-04", roster, records, time.UTC)

	require.Len(t, got.Present, 2)
	assert.Equal(t, "a", got.Present[0].ID)
	assert.Equal(t, "c", got.Present[1].ID)
	assert.Equal(t, attendance.StatusLate, got.Present[1].Attendance.Status)

	require.Len(t, got.Absent, 2)
	assert.Equal(t, "b", got.Absent[0].ID)
	assert.Equal(t, "d", got.Absent[1].ID)
	assert.Equal(t, attendance.StatusAbsent, got.Absent[0].Status)
}

func TestReconcile_PartitionCoversRoster(t *testing.T) {
	roster := make([]employee.Employee, 0, 10)
	for i := 0; i < 10; i++ {
		roster = append(roster, emp(fmt.Sprintf("e%d", i), employee.RoleEmployee, "Eng"))
	}

	for mask := 0; mask < 64; mask++ {
		var records []attendance.Attendance
		for i := 0; i < 6; i++ {
			if mask&(1<<i) != 0 {
				records = append(records, rec(roster[i], roster[i].ID, "2024-03-04", attendance.StatusHalfDay, "1"))
			}
		}
		// Duplicate and orphaned rows must not disturb the partition.
		if len(records) > 0 {
			records = append(records, records[0])
		}
		records = append(records, rec(employee.Employee{}, "ghost", "2024-03-04", attendance.StatusPresent, "0"))

		got := Reconcile("2024-03-04", roster, records, time.UTC)

		seen := make(map[string]int)
		for _, p := range got.Present {
			seen[p.ID]++
		}
		for _, a := range got.Absent {
			seen[a.ID]++
		}
		require.Len(t, seen, len(roster), "mask %b", mask)
		for id, n := range seen {
			assert.Equal(t, 1, n, "employee %s in both lists (mask %b)", id, mask)
		}
	}
}

func TestReconcile_UnrecordedStatusCountsAsAbsent(t *testing.T) {
	roster := []employee.Employee{emp("a", employee.RoleEmployee, "Eng")}
	records := []attendance.Attendance{rec(roster[0], "a", "2024-03-04", attendance.Status("absent"), "0")}

	got := Reconcile("2024-03-04", roster, records, time.UTC)
	assert.Empty(t, got.Present)
	require.Len(t, got.Absent, 1)
}

func TestReconcile_EmptyRoster(t *testing.T) {
	got := Reconcile("2024-03-04", nil, nil, time.UTC)
	assert.NotNil(t, got.Present)
	assert.NotNil(t, got.Absent)
	assert.Empty(t, got.Present)
	assert.Empty(t, got.Absent)
}
