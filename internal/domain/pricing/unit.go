package pricing

import "github.com/d3coo/car-rental-backend/internal/pkg/errs"

// Unit is the booking granularity. A week is always 7 days and a month
// always 30, regardless of the calendar.
type Unit string

const (
	UnitDay   Unit = "Day"
	UnitWeek  Unit = "Week"
	UnitMonth Unit = "Month"
)

const (
	DaysPerWeek  = 7
	DaysPerMonth = 30
)

func (u Unit) IsValid() bool {
	switch u {
	case UnitDay, UnitWeek, UnitMonth:
		return true
	default:
		return false
	}
}

func (u Unit) String() string { return string(u) }

func ParseUnit(s string) (Unit, error) {
	u := Unit(s)
	if !u.IsValid() {
		return "", errs.Mark(errs.Newf("invalid booking unit: %q", s), errs.ErrInvalidInput)
	}
	return u, nil
}

// TotalDays expands unit×count into days: Day→count, Week→count×7,
// Month→count×30.
func TotalDays(unit Unit, count int) (int, error) {
	switch unit {
	case UnitDay:
		return count, nil
	case UnitWeek:
		return count * DaysPerWeek, nil
	case UnitMonth:
		return count * DaysPerMonth, nil
	default:
		return 0, errs.Mark(errs.Newf("invalid booking unit: %q", unit), errs.ErrInvalidInput)
	}
}

// OfferType identifies the pricing formula for an add-on. The string
// values are the codes the document store carries.
type OfferType string

const (
	OfferInsurance   OfferType = "Insurance"
	OfferUnlimitedKM OfferType = "KM"
	OfferChildSeat   OfferType = "ChildChair"
	OfferDocuments   OfferType = "Documents"
)

func (t OfferType) IsValid() bool {
	switch t {
	case OfferInsurance, OfferUnlimitedKM, OfferChildSeat, OfferDocuments:
		return true
	default:
		return false
	}
}

func (t OfferType) String() string { return string(t) }

func ParseOfferType(s string) (OfferType, error) {
	t := OfferType(s)
	if !t.IsValid() {
		return "", errs.Mark(errs.Newf("unsupported offer type: %q", s), errs.ErrUnsupportedOfferType)
	}
	return t, nil
}
