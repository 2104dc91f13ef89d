package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
	vehiclepkg "github.com/palepusrinivas/guava-adminpanel-sub002/vehicle"
)

const vehiclesPath = "/api/admin/vehicles"

type vehicleService struct {
	api      *upstream.Resource[entity.Vehicle]
	vehicles *resource.Manager[entity.Vehicle]
}

// NewVehicleService constructs a VehicleService over the backend vehicles endpoint.
func NewVehicleService(client *upstream.Client, log *zap.Logger, opts ...resource.Option[entity.Vehicle]) vehiclepkg.VehicleService {
	api := upstream.NewResource[entity.Vehicle](client, vehiclesPath)
	opts = append([]resource.Option[entity.Vehicle]{resource.WithLogger[entity.Vehicle](log)}, opts...)
	return &vehicleService{
		api:      api,
		vehicles: resource.NewManager[entity.Vehicle]("vehicles", api, vehiclepkg.Filter, opts...),
	}
}

func (s *vehicleService) List(ctx context.Context, p resource.ListParams) (resource.State[entity.Vehicle], error) {
	return s.vehicles.List(ctx, p)
}

func clean(f vehiclepkg.VehicleForm) (vehiclepkg.VehicleForm, error) {
	f.Brand = strings.TrimSpace(f.Brand)
	f.Model = strings.TrimSpace(f.Model)
	f.LicensePlate = strings.ReplaceAll(form.UpperCode(f.LicensePlate), " ", "")
	f.DriverID = strings.TrimSpace(f.DriverID)
	if f.Ownership == entity.OwnedByCompany {
		f.DriverID = ""
	}
	return f, form.Validate(f)
}

func (s *vehicleService) Create(ctx context.Context, f vehiclepkg.VehicleForm) (*entity.Vehicle, error) {
	f, err := clean(f)
	if err != nil {
		return nil, err
	}
	var created *entity.Vehicle
	err = s.vehicles.Mutate(ctx, "create", func(ctx context.Context) error {
		var err error
		created, err = s.api.Create(ctx, f)
		return err
	})
	return created, err
}

func (s *vehicleService) Update(ctx context.Context, id string, f vehiclepkg.VehicleForm) (*entity.Vehicle, error) {
	f, err := clean(f)
	if err != nil {
		return nil, err
	}
	var updated *entity.Vehicle
	err = s.vehicles.Mutate(ctx, "update", func(ctx context.Context) error {
		var err error
		updated, err = s.api.Update(ctx, id, f)
		return err
	})
	return updated, err
}

func (s *vehicleService) SetActive(ctx context.Context, id string, active bool) error {
	verb := resource.ToggleVerb(active)
	return s.vehicles.Mutate(ctx, verb, func(ctx context.Context) error {
		return s.api.Action(ctx, id, verb, nil)
	})
}

func (s *vehicleService) Delete(ctx context.Context, id string) error {
	return s.vehicles.Mutate(ctx, "delete", func(ctx context.Context) error {
		return s.api.Delete(ctx, id)
	})
}
