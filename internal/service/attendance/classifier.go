package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// Classifier derives record statuses from clock events. It holds no state beyond the policy.
type Classifier struct {
	policy attendance.Policy
}

func NewClassifier(policy attendance.Policy) Classifier {
	return Classifier{policy: policy}
}

// CheckOutResult is the outcome of closing a session.
type CheckOutResult struct {
	WorkedHours        decimal.Decimal
	DowngradeToHalfDay bool
}

// ClassifyCheckIn returns late only when now is strictly after the cutoff on its own calendar day.
func (c Classifier) ClassifyCheckIn(now time.Time) attendance.Status {
	if now.After(c.policy.CutoffOn(now)) {
		return attendance.StatusLate
	}
	return attendance.StatusPresent
}

// ClassifyCheckOut computes worked hours rounded to two decimals and whether the
// session was shorter than the half-day threshold.
func (c Classifier) ClassifyCheckOut(checkIn, checkOut time.Time) (CheckOutResult, error) {
	if !checkOut.After(checkIn) {
		return CheckOutResult{}, attendance.ErrInvalidCheckOutTime
	}

	worked := checkOut.Sub(checkIn)
	hours := decimal.NewFromInt(int64(worked)).Div(decimal.NewFromInt(int64(time.Hour))).Round(2)

	return CheckOutResult{
		WorkedHours:        hours,
		DowngradeToHalfDay: worked < c.policy.HalfDayThreshold,
	}, nil
}

// FinalStatus applies the downgrade. Late is not preserved once a half-day is detected.
func (c Classifier) FinalStatus(current attendance.Status, result CheckOutResult) attendance.Status {
	if result.DowngradeToHalfDay {
		return attendance.StatusHalfDay
	}
	return current
}
