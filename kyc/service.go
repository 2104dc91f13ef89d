package kyc

import (
	"context"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
)

// Filter tags drivers by KYC status; the backend already did the search.
var Filter = resource.Filter[entity.Driver]{
	Tag: func(d entity.Driver) string { return string(d.KYCStatus()) },
}

// SearchRequest is one server-side KYC search.
type SearchRequest struct {
	Query  string           `json:"query"`
	Status entity.KYCStatus `json:"status"`
	Page   int              `json:"page"`
	Size   int              `json:"size"`
}

// RejectRequest carries the reason shown to the driver.
type RejectRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// DocumentTypes are the document slots a driver can fill.
var DocumentTypes = []string{"AADHAAR", "PAN", "LICENSE", "RC", "PHOTO"}

// KYCService exposes the KYC review screen.
type KYCService interface {
	Search(ctx context.Context, req SearchRequest) (resource.State[entity.Driver], error)
	Approve(ctx context.Context, driverID string) error
	Reject(ctx context.Context, driverID string, req RejectRequest) error
	UploadDocument(ctx context.Context, driverID, docType string, file upstream.File) error
}
