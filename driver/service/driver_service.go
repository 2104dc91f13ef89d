package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	driverpkg "github.com/palepusrinivas/guava-adminpanel-sub002/driver"
	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
)

const driversPath = "/api/admin/drivers"

type driverService struct {
	api     *upstream.Resource[entity.Driver]
	drivers *resource.Manager[entity.Driver]
}

// NewDriverService constructs a DriverService over the backend drivers endpoint.
func NewDriverService(client *upstream.Client, log *zap.Logger, opts ...resource.Option[entity.Driver]) driverpkg.DriverService {
	api := upstream.NewResource[entity.Driver](client, driversPath)
	opts = append([]resource.Option[entity.Driver]{resource.WithLogger[entity.Driver](log)}, opts...)
	return &driverService{
		api:     api,
		drivers: resource.NewManager[entity.Driver]("drivers", api, driverpkg.Filter, opts...),
	}
}

func (s *driverService) List(ctx context.Context, p resource.ListParams) (resource.State[entity.Driver], error) {
	return s.drivers.List(ctx, p)
}

func (s *driverService) Get(ctx context.Context, id string) (*entity.Driver, error) {
	return s.api.Get(ctx, id)
}

type createDriverPayload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	Password  string `json:"password"`
	VehicleID string `json:"vehicleId,omitempty"`
}

// Create validates the form and posts it without the confirmation field.
func (s *driverService) Create(ctx context.Context, req driverpkg.CreateDriverRequest) (*entity.Driver, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Mobile = strings.TrimSpace(req.Mobile)
	if err := form.Validate(req); err != nil {
		return nil, err
	}
	payload := createDriverPayload{
		Name:      req.Name,
		Email:     req.Email,
		Mobile:    req.Mobile,
		Password:  req.Password,
		VehicleID: strings.TrimSpace(req.VehicleID),
	}
	var created *entity.Driver
	err := s.drivers.Mutate(ctx, "create", func(ctx context.Context) error {
		var err error
		created, err = s.api.Create(ctx, payload)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *driverService) SetActive(ctx context.Context, id string, active bool) error {
	verb := resource.ToggleVerb(active)
	return s.drivers.Mutate(ctx, verb, func(ctx context.Context) error {
		return s.api.Action(ctx, id, verb, nil)
	})
}
