package entity

// ReportPoint is one bucket of a report series computed by the backend.
type ReportPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// BusinessSettings are the platform-wide settings edited in the console.
type BusinessSettings struct {
	BusinessName   string  `json:"businessName"`
	SupportEmail   string  `json:"supportEmail"`
	SupportPhone   string  `json:"supportPhone"`
	Currency       string  `json:"currency"`
	CommissionRate float64 `json:"commissionRate"`
	LogoURL        string  `json:"logoUrl,omitempty"`
}
