package attendance

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-go/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

type testEnv struct {
	svc      attendance.AttendanceService
	repo     attendance.AttendanceRepository
	employee employee.Employee
	clock    *fakeClock
	hub      *sse.Hub
}

func setupService(t *testing.T) testEnv {
	t.Helper()

	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.MigrateSQLite(db))
	t.Cleanup(func() { db.Close() })

	empRepo := sqlite.NewEmployeeRepository(db)
	attRepo := sqlite.NewAttendanceRepository(db)

	emp, err := empRepo.Create(context.Background(), employee.Employee{
		Name: "Jane Doe", Email: "jane@example.com", Role: employee.RoleEmployee,
		EmployeeCode: "EMP001", Department: "Engineering",
	})
	require.NoError(t, err)

	clock := &fakeClock{t: at(9, 0, 0, 0)}
	hub := sse.NewHub()

	return testEnv{
		svc:      NewAttendanceService(attRepo, empRepo, attendance.DefaultPolicy(), hub, clock.Now),
		repo:     attRepo,
		employee: emp,
		clock:    clock,
		hub:      hub,
	}
}

func TestAttendanceService_CheckIn_BeforeCutoff(t *testing.T) {
	env := setupService(t)

	resp, err := env.svc.CheckIn(context.Background(), env.employee.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Equal(t, "2024-03-04", resp.Date)
	assert.Equal(t, "0.00", resp.TotalHours)
	assert.Nil(t, resp.CheckOutTime)
}

func TestAttendanceService_CheckIn_Duplicate(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	_, err := env.svc.CheckIn(ctx, env.employee.ID)
	require.NoError(t, err)

	env.clock.Set(at(10, 0, 0, 0))
	_, err = env.svc.CheckIn(ctx, env.employee.ID)
	assert.ErrorIs(t, err, attendance.ErrDuplicateCheckIn)

	history, err := env.svc.GetMyHistory(ctx, env.employee.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestAttendanceService_CheckIn_AfterCutoff(t *testing.T) {
	env := setupService(t)
	env.clock.Set(at(17, 0, 0, 0))

	resp, err := env.svc.CheckIn(context.Background(), env.employee.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, resp.Status)
}

func TestAttendanceService_CheckIn_UnknownEmployee(t *testing.T) {
	env := setupService(t)

	_, err := env.svc.CheckIn(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_CheckIn_Concurrent(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes, duplicates := 0, 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.svc.CheckIn(ctx, env.employee.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, attendance.ErrDuplicateCheckIn):
				duplicates++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, 9, duplicates)

	records, err := env.repo.List(ctx, attendance.AttendanceFilter{EmployeeID: &env.employee.ID})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAttendanceService_CheckOut_HalfDay(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	_, err := env.svc.CheckIn(ctx, env.employee.ID)
	require.NoError(t, err)

	env.clock.Set(at(11, 30, 0, 0))
	resp, err := env.svc.CheckOut(ctx, env.employee.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusHalfDay, resp.Status)
	assert.Equal(t, "2.50", resp.TotalHours)
	require.NotNil(t, resp.CheckOutTime)
}

func TestAttendanceService_CheckOut_LateDowngradedToHalfDay(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	env.clock.Set(at(17, 0, 0, 0))
	_, err := env.svc.CheckIn(ctx, env.employee.ID)
	require.NoError(t, err)

	env.clock.Set(at(20, 0, 0, 0))
	resp, err := env.svc.CheckOut(ctx, env.employee.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusHalfDay, resp.Status)
	assert.Equal(t, "3.00", resp.TotalHours)
}

func TestAttendanceService_CheckOut_FullDayKeepsStatus(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	_, err := env.svc.CheckIn(ctx, env.employee.ID)
	require.NoError(t, err)

	env.clock.Set(at(17, 15, 0, 0))
	resp, err := env.svc.CheckOut(ctx, env.employee.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Equal(t, "8.25", resp.TotalHours)
}

func TestAttendanceService_CheckOut_WithoutCheckIn(t *testing.T) {
	env := setupService(t)

	_, err := env.svc.CheckOut(context.Background(), env.employee.ID)
	assert.ErrorIs(t, err, attendance.ErrNoActiveCheckIn)
}

func TestAttendanceService_CheckOut_Twice(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	_, err := env.svc.CheckIn(ctx, env.employee.ID)
	require.NoError(t, err)

	env.clock.Set(at(14, 0, 0, 0))
	first, err := env.svc.CheckOut(ctx, env.employee.ID)
	require.NoError(t, err)

	env.clock.Set(at(15, 0, 0, 0))
	_, err = env.svc.CheckOut(ctx, env.employee.ID)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)

	today, err := env.svc.GetToday(ctx, env.employee.ID)
	require.NoError(t, err)
	require.NotNil(t, today.Attendance)
	assert.Equal(t, first.CheckOutTime, today.Attendance.CheckOutTime)
	assert.Equal(t, first.TotalHours, today.Attendance.TotalHours)
}

func TestAttendanceService_CheckOut_ClockBeforeCheckIn(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	_, err := env.svc.CheckIn(ctx, env.employee.ID)
	require.NoError(t, err)

	env.clock.Set(at(8, 0, 0, 0))
	_, err = env.svc.CheckOut(ctx, env.employee.ID)
	assert.ErrorIs(t, err, attendance.ErrInvalidCheckOutTime)
}

func TestAttendanceService_GetToday(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	today, err := env.svc.GetToday(ctx, env.employee.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.NotCheckedIn, today.Status)
	assert.Nil(t, today.Attendance)

	_, err = env.svc.CheckIn(ctx, env.employee.ID)
	require.NoError(t, err)

	today, err = env.svc.GetToday(ctx, env.employee.ID)
	require.NoError(t, err)
	assert.Equal(t, "present", today.Status)
	require.NotNil(t, today.Attendance)

	// The next calendar day starts clean.
	env.clock.Set(at(9, 0, 0, 0).AddDate(0, 0, 1))
	today, err = env.svc.GetToday(ctx, env.employee.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.NotCheckedIn, today.Status)
}

func TestAttendanceService_History_NewestFirst(t *testing.T) {
	env := setupService(t)
	ctx := context.Background()

	for day := 0; day < 3; day++ {
		env.clock.Set(at(9, 0, 0, 0).AddDate(0, 0, day))
		_, err := env.svc.CheckIn(ctx, env.employee.ID)
		require.NoError(t, err)
	}

	history, err := env.svc.GetEmployeeHistory(ctx, env.employee.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "2024-03-06", history[0].Date)
	assert.Equal(t, "2024-03-04", history[2].Date)
	require.NotNil(t, history[0].EmployeeCode)
	assert.Equal(t, "EMP001", *history[0].EmployeeCode)

	_, err = env.svc.GetEmployeeHistory(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_PublishesEvents(t *testing.T) {
	env := setupService(t)
	team, cancel := env.hub.Subscribe(sse.TopicTeam)
	defer cancel()
	own, cancelOwn := env.hub.Subscribe(sse.EmployeeTopic(env.employee.ID))
	defer cancelOwn()

	_, err := env.svc.CheckIn(context.Background(), env.employee.ID)
	require.NoError(t, err)

	ev := <-team
	assert.Equal(t, EventAttendanceUpdated, ev.Event)
	payload, ok := ev.Data.(attendance.AttendanceResponse)
	require.True(t, ok)
	assert.Equal(t, env.employee.ID, payload.EmployeeID)

	ev = <-own
	assert.Equal(t, EventAttendanceUpdated, ev.Event)
}
