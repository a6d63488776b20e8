package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusAccepted  Status = "accepted"
	StatusDenied    Status = "denied"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusAccepted, StatusDenied, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) String() string { return string(s) }

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentPartial  PaymentStatus = "partial"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentPartial, PaymentFailed, PaymentRefunded:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) String() string { return string(s) }
