package entity

// VehicleStatus is ACTIVE or INACTIVE.
type VehicleStatus string

const (
	VehicleActive   VehicleStatus = "ACTIVE"
	VehicleInactive VehicleStatus = "INACTIVE"
)

// Ownership says who owns a vehicle.
type Ownership string

const (
	OwnedByDriver  Ownership = "Driver"
	OwnedByCompany Ownership = "Company"
)

// Vehicle mirrors the backend vehicle record; DriverID is a plain reference.
type Vehicle struct {
	ID           string        `json:"id"`
	Brand        string        `json:"brand"`
	Model        string        `json:"model"`
	Category     string        `json:"category"`
	Type         string        `json:"type"`
	LicensePlate string        `json:"licensePlate"`
	Ownership    Ownership     `json:"ownership"`
	DriverID     string        `json:"driverId,omitempty"`
	Documents    []Document    `json:"documents,omitempty"`
	Status       VehicleStatus `json:"status"`
}
