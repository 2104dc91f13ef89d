package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
	zonepkg "github.com/palepusrinivas/guava-adminpanel-sub002/zone"
)

const (
	zonesPath   = "/api/admin/zones"
	zonesV2Path = "/api/admin/v2/zones"
)

type zoneService struct {
	api   *upstream.Resource[entity.Zone]
	zones *resource.Manager[entity.Zone]
	v2    *resource.Manager[entity.Zone]
}

// NewZoneService constructs a ZoneService. demo enables sample zones for the
// v2 dropdown when that endpoint is not served.
func NewZoneService(client *upstream.Client, log *zap.Logger, demo bool, opts ...resource.Option[entity.Zone]) zonepkg.ZoneService {
	api := upstream.NewResource[entity.Zone](client, zonesPath)
	base := append([]resource.Option[entity.Zone]{resource.WithLogger[entity.Zone](log)}, opts...)
	v2opts := []resource.Option[entity.Zone]{
		resource.WithLogger[entity.Zone](log),
		resource.WithSampleData(demo, zonepkg.SampleZones),
	}
	return &zoneService{
		api:   api,
		zones: resource.NewManager[entity.Zone]("zones", api, zonepkg.Filter, base...),
		v2:    resource.NewManager[entity.Zone]("zones_v2", upstream.NewResource[entity.Zone](client, zonesV2Path), zonepkg.Filter, v2opts...),
	}
}

func (s *zoneService) List(ctx context.Context, p resource.ListParams) (resource.State[entity.Zone], error) {
	return s.zones.List(ctx, p)
}

func (s *zoneService) ListV2(ctx context.Context) (resource.State[entity.Zone], error) {
	return s.v2.List(ctx, resource.ListParams{})
}

func clean(f zonepkg.ZoneForm) (zonepkg.ZoneForm, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Polygon = strings.TrimSpace(f.Polygon)
	return f, form.Validate(f)
}

func (s *zoneService) Create(ctx context.Context, f zonepkg.ZoneForm) (*entity.Zone, error) {
	f, err := clean(f)
	if err != nil {
		return nil, err
	}
	var created *entity.Zone
	err = s.zones.Mutate(ctx, "create", func(ctx context.Context) error {
		var err error
		created, err = s.api.Create(ctx, f)
		return err
	})
	return created, err
}

func (s *zoneService) Update(ctx context.Context, id string, f zonepkg.ZoneForm) (*entity.Zone, error) {
	f, err := clean(f)
	if err != nil {
		return nil, err
	}
	var updated *entity.Zone
	err = s.zones.Mutate(ctx, "update", func(ctx context.Context) error {
		var err error
		updated, err = s.api.Update(ctx, id, f)
		return err
	})
	return updated, err
}

func (s *zoneService) SetActive(ctx context.Context, id string, active bool) error {
	verb := resource.ToggleVerb(active)
	return s.zones.Mutate(ctx, verb, func(ctx context.Context) error {
		return s.api.Action(ctx, id, verb, nil)
	})
}

func (s *zoneService) Delete(ctx context.Context, id string) error {
	return s.zones.Mutate(ctx, "delete", func(ctx context.Context) error {
		return s.api.Delete(ctx, id)
	})
}
