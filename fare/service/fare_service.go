package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	farepkg "github.com/palepusrinivas/guava-adminpanel-sub002/fare"
	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
)

const faresPath = "/api/admin/trip-fares"

type fareService struct {
	api   *upstream.Resource[entity.TripFare]
	fares *resource.Manager[entity.TripFare]
}

// NewFareService constructs a FareService over the backend trip fares endpoint.
func NewFareService(client *upstream.Client, log *zap.Logger, opts ...resource.Option[entity.TripFare]) farepkg.FareService {
	api := upstream.NewResource[entity.TripFare](client, faresPath)
	opts = append([]resource.Option[entity.TripFare]{resource.WithLogger[entity.TripFare](log)}, opts...)
	return &fareService{
		api:   api,
		fares: resource.NewManager[entity.TripFare]("trip_fares", api, farepkg.Filter, opts...),
	}
}

func (s *fareService) List(ctx context.Context, p resource.ListParams) (resource.State[entity.TripFare], error) {
	return s.fares.List(ctx, p)
}

// farePayload is the wire body. ZoneID is only sent for UUID zones.
type farePayload struct {
	ZoneID             string   `json:"zoneId,omitempty"`
	ZoneName           string   `json:"zoneName,omitempty"`
	VehicleCategory    string   `json:"vehicleCategory"`
	BaseFare           float64  `json:"baseFare"`
	BaseFarePerKm      float64  `json:"baseFarePerKm"`
	TimeRatePerMin     *float64 `json:"timeRatePerMin"`
	WaitingFeePerMin   *float64 `json:"waitingFeePerMin"`
	CancellationFee    *float64 `json:"cancellationFee"`
	MinCancellationFee *float64 `json:"minCancellationFee"`
}

// buildPayload resolves the zone reference and shapes the request body.
// A V2 zone is sent by id; a legacy or unrecognised id is dropped and the zone
// name must identify the zone instead.
func buildPayload(f farepkg.FareForm) (farePayload, error) {
	f.ZoneName = strings.TrimSpace(f.ZoneName)
	f.VehicleCategory = strings.TrimSpace(f.VehicleCategory)
	if err := form.Validate(f); err != nil {
		return farePayload{}, err
	}
	p := farePayload{
		ZoneName:           f.ZoneName,
		VehicleCategory:    f.VehicleCategory,
		BaseFare:           f.BaseFare,
		BaseFarePerKm:      f.BaseFarePerKm,
		TimeRatePerMin:     f.TimeRatePerMin.Ptr(),
		WaitingFeePerMin:   f.WaitingFeePerMin.Ptr(),
		CancellationFee:    f.CancellationFee.Ptr(),
		MinCancellationFee: f.MinCancellationFee.Ptr(),
	}
	switch ref := f.Zone.(type) {
	case entity.ZoneV2Ref:
		p.ZoneID = ref.String()
	default:
		if p.ZoneName == "" {
			return farePayload{}, form.Invalid("zoneName", "is required when no zone is selected")
		}
	}
	return p, nil
}

func (s *fareService) Create(ctx context.Context, f farepkg.FareForm) (*entity.TripFare, error) {
	payload, err := buildPayload(f)
	if err != nil {
		return nil, err
	}
	var created *entity.TripFare
	err = s.fares.Mutate(ctx, "create", func(ctx context.Context) error {
		var err error
		created, err = s.api.Create(ctx, payload)
		return err
	})
	return created, err
}

func (s *fareService) Update(ctx context.Context, id string, f farepkg.FareForm) (*entity.TripFare, error) {
	payload, err := buildPayload(f)
	if err != nil {
		return nil, err
	}
	var updated *entity.TripFare
	err = s.fares.Mutate(ctx, "update", func(ctx context.Context) error {
		var err error
		updated, err = s.api.Update(ctx, id, payload)
		return err
	})
	return updated, err
}

func (s *fareService) Delete(ctx context.Context, id string) error {
	return s.fares.Mutate(ctx, "delete", func(ctx context.Context) error {
		return s.api.Delete(ctx, id)
	})
}
