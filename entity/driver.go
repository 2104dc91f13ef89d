package entity

import "time"

// KYCStatus is the verification state of a driver's documents.
type KYCStatus string

const (
	KYCPending  KYCStatus = "PENDING"
	KYCApproved KYCStatus = "APPROVED"
	KYCRejected KYCStatus = "REJECTED"
)

// KYC is the driver's identity verification sub-record.
type KYC struct {
	Status          KYCStatus  `json:"status"`
	AadhaarNumber   string     `json:"aadhaarNumber,omitempty"`
	PanNumber       string     `json:"panNumber,omitempty"`
	LicenseNumber   string     `json:"licenseNumber,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	Documents       []Document `json:"documents,omitempty"`
	SubmittedAt     *time.Time `json:"submittedAt,omitempty"`
}

// Document is an uploaded file reference owned by the backend file store.
type Document struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Driver mirrors the backend driver record. Drivers are deactivated, never deleted.
type Driver struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Mobile        string   `json:"mobile"`
	ShortCode     string   `json:"shortCode"`
	Vehicle       *Vehicle `json:"vehicle,omitempty"`
	KYC           *KYC     `json:"kyc,omitempty"`
	Active        bool     `json:"active"`
	TotalTrips    int      `json:"totalTrips"`
	TotalEarnings float64  `json:"totalEarnings"`
	DriverLevel   string   `json:"driverLevel,omitempty"`
}

// KYCStatus returns the driver's KYC status, PENDING when no record exists.
func (d Driver) KYCStatus() KYCStatus {
	if d.KYC == nil || d.KYC.Status == "" {
		return KYCPending
	}
	return d.KYC.Status
}
