package entity

// TripFare is the pricing row for a zone and vehicle category.
type TripFare struct {
	ID                 string   `json:"id"`
	ZoneID             string   `json:"zoneId,omitempty"`
	ZoneName           string   `json:"zoneName,omitempty"`
	VehicleCategory    string   `json:"vehicleCategory"`
	BaseFare           float64  `json:"baseFare"`
	BaseFarePerKm      float64  `json:"baseFarePerKm"`
	TimeRatePerMin     *float64 `json:"timeRatePerMin,omitempty"`
	WaitingFeePerMin   *float64 `json:"waitingFeePerMin,omitempty"`
	CancellationFee    *float64 `json:"cancellationFee,omitempty"`
	MinCancellationFee *float64 `json:"minCancellationFee,omitempty"`
}
