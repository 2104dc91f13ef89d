package entity

import "time"

// TripStatus is the backend-owned lifecycle of an intercity trip:
// SCHEDULED -> FILLING -> DISPATCHED -> IN_TRANSIT -> COMPLETED | CANCELLED.
type TripStatus string

const (
	TripScheduled  TripStatus = "SCHEDULED"
	TripFilling    TripStatus = "FILLING"
	TripDispatched TripStatus = "DISPATCHED"
	TripInTransit  TripStatus = "IN_TRANSIT"
	TripCompleted  TripStatus = "COMPLETED"
	TripCancelled  TripStatus = "CANCELLED"
)

// IntercityTrip mirrors the backend shared intercity trip.
type IntercityTrip struct {
	ID           string     `json:"id"`
	Code         string     `json:"code"`
	Origin       string     `json:"origin"`
	Destination  string     `json:"destination"`
	DepartureAt  time.Time  `json:"departureAt"`
	SeatsTotal   int        `json:"seatsTotal"`
	SeatsBooked  int        `json:"seatsBooked"`
	PricePerSeat float64    `json:"pricePerSeat"`
	DriverID     string     `json:"driverId,omitempty"`
	Status       TripStatus `json:"status"`
	CancelReason string     `json:"cancelReason,omitempty"`
	DispatchedAt *time.Time `json:"dispatchedAt,omitempty"`
}
