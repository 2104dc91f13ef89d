package entity

// SubscriptionType discriminates the plan's terms.
type SubscriptionType string

const (
	// SubscriptionUnlimited plans are bounded by time.
	SubscriptionUnlimited SubscriptionType = "UNLIMITED"
	// SubscriptionIntercityEarning plans are bounded by an earning limit.
	SubscriptionIntercityEarning SubscriptionType = "INTERCITY_EARNING"
)

// SubscriptionPlan mirrors the backend plan record.
type SubscriptionPlan struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	VehicleType      string           `json:"vehicleType"`
	SubscriptionType SubscriptionType `json:"subscriptionType"`
	Price            float64          `json:"price"`
	DurationDays     *int64           `json:"durationDays,omitempty"`
	DurationHours    *int64           `json:"durationHours,omitempty"`
	EarningLimit     *float64         `json:"earningLimit,omitempty"`
	Percentage       *float64         `json:"percentage,omitempty"`
	Active           bool             `json:"active"`
}
