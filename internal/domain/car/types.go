package car

type Status string

const (
	StatusAvailable    Status = "available"
	StatusRented       Status = "rented"
	StatusMaintenance  Status = "maintenance"
	StatusOutOfService Status = "out_of_service"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusRented, StatusMaintenance, StatusOutOfService:
		return true
	default:
		return false
	}
}

func (s Status) String() string { return string(s) }

type FuelType string

const (
	FuelGasoline FuelType = "gasoline"
	FuelDiesel   FuelType = "diesel"
	FuelHybrid   FuelType = "hybrid"
	FuelElectric FuelType = "electric"
)

type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
	TransmissionCVT       Transmission = "cvt"
)
