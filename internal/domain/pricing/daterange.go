package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

// DateRange is an immutable start/end interval with end >= start.
// Week and month durations use the fixed 7-day/30-day convention rather
// than calendar months; the same convention drives extension pro-ration.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, errs.Mark(
			errs.New("end date must be after or equal to start date"),
			errs.ErrInvalidInput,
		)
	}
	return DateRange{start: start, end: end}, nil
}

// DateRangeFromUnit builds the range covered by count booking units
// starting at start.
func DateRangeFromUnit(start time.Time, unit Unit, count int) (DateRange, error) {
	days, err := TotalDays(unit, count)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{start: start, end: start.AddDate(0, 0, days)}, nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) DurationDays() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}

func (r DateRange) DurationWeeks() decimal.Decimal {
	return decimal.NewFromInt(int64(r.DurationDays())).Div(decimal.NewFromInt(DaysPerWeek))
}

func (r DateRange) DurationMonths() decimal.Decimal {
	return decimal.NewFromInt(int64(r.DurationDays())).Div(decimal.NewFromInt(DaysPerMonth))
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.start) && !t.After(r.end)
}

func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !r.end.Before(other.start)
}

// ExtendTo returns a new range ending at newEnd, which must be strictly
// after the current end.
func (r DateRange) ExtendTo(newEnd time.Time) (DateRange, error) {
	if !newEnd.After(r.end) {
		return DateRange{}, errs.Mark(
			errs.New("new end date must be after current end date"),
			errs.ErrInvalidInput,
		)
	}
	return DateRange{start: r.start, end: newEnd}, nil
}

func (r DateRange) Shift(days int) DateRange {
	return DateRange{start: r.start.AddDate(0, 0, days), end: r.end.AddDate(0, 0, days)}
}

// daysBetween counts whole days from a to b, matching DurationDays.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
