package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
	kycpkg "github.com/palepusrinivas/guava-adminpanel-sub002/kyc"
	"github.com/palepusrinivas/guava-adminpanel-sub002/logging"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
)

const kycPath = "/api/admin/kyc"

type kycService struct {
	api     *upstream.Resource[entity.Driver]
	reviews *resource.Manager[entity.Driver]
	log     *zap.Logger
}

// NewKYCService constructs a KYCService over the backend KYC endpoint.
func NewKYCService(client *upstream.Client, log *zap.Logger, opts ...resource.Option[entity.Driver]) kycpkg.KYCService {
	api := upstream.NewResource[entity.Driver](client, kycPath)
	opts = append([]resource.Option[entity.Driver]{resource.WithLogger[entity.Driver](log)}, opts...)
	return &kycService{
		api:     api,
		reviews: resource.NewManager[entity.Driver]("kyc", api, kycpkg.Filter, opts...),
		log:     log,
	}
}

// Search sends the query and status to the backend.
func (s *kycService) Search(ctx context.Context, req kycpkg.SearchRequest) (resource.State[entity.Driver], error) {
	status := strings.ToUpper(strings.TrimSpace(string(req.Status)))
	if strings.EqualFold(status, resource.TagAll) {
		status = ""
	}
	return s.reviews.List(ctx, resource.ListParams{
		Page: req.Page,
		Size: req.Size,
		Params: map[string]string{
			"status": status,
			"search": strings.TrimSpace(req.Query),
		},
	})
}

func (s *kycService) Approve(ctx context.Context, driverID string) error {
	return s.reviews.Mutate(ctx, "approve", func(ctx context.Context) error {
		return s.api.Action(ctx, driverID, "approve", nil)
	})
}

func (s *kycService) Reject(ctx context.Context, driverID string, req kycpkg.RejectRequest) error {
	req.Reason = strings.TrimSpace(req.Reason)
	if err := form.Validate(req); err != nil {
		return err
	}
	return s.reviews.Mutate(ctx, "reject", func(ctx context.Context) error {
		return s.api.Action(ctx, driverID, "reject", req)
	})
}

// UploadDocument checks size and type locally; a rejected file never leaves the console.
func (s *kycService) UploadDocument(ctx context.Context, driverID, docType string, file upstream.File) error {
	docType = strings.ToUpper(strings.TrimSpace(docType))
	if !validDocType(docType) {
		return form.Invalid("type", "must be one of "+strings.Join(kycpkg.DocumentTypes, " "))
	}
	if err := form.CheckImage(file, form.MaxDocumentSize); err != nil {
		logging.For(ctx, s.log).Info("document rejected", zap.String("action", "kyc_upload"),
			zap.String("driver_id", driverID), zap.Int("size", len(file.Data)), zap.Error(err))
		return err
	}
	if file.Field == "" {
		file.Field = "file"
	}
	return s.reviews.Mutate(ctx, "upload_document", func(ctx context.Context) error {
		return s.api.Upload(ctx, driverID, "documents", map[string]string{"type": docType}, file)
	})
}

func validDocType(t string) bool {
	for _, d := range kycpkg.DocumentTypes {
		if d == t {
			return true
		}
	}
	return false
}
