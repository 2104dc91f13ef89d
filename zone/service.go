package zone

import (
	"context"

	"github.com/google/uuid"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
)

// Filter narrows zones by active flag and name/readable id.
var Filter = resource.Filter[entity.Zone]{
	Tag: func(z entity.Zone) string { return resource.ActiveTag(z.Active) },
	Fields: []func(entity.Zone) string{
		func(z entity.Zone) string { return z.Name },
		func(z entity.Zone) string { return z.ReadableID },
	},
}

// ZoneForm is the create/edit zone form. The polygon is WKT and is not
// checked for geometric validity.
type ZoneForm struct {
	Name    string `json:"name" validate:"required,max=120"`
	Polygon string `json:"polygon" validate:"required,startswith=POLYGON"`
	Active  bool   `json:"active"`
}

// ZoneService exposes the zone setup screen and the zone dropdowns.
type ZoneService interface {
	List(ctx context.Context, p resource.ListParams) (resource.State[entity.Zone], error)
	// ListV2 lists zones of the UUID-keyed model, used by the fare form.
	ListV2(ctx context.Context) (resource.State[entity.Zone], error)
	Create(ctx context.Context, f ZoneForm) (*entity.Zone, error)
	Update(ctx context.Context, id string, f ZoneForm) (*entity.Zone, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

// SampleZones is the demo list served when the v2 endpoint is missing.
func SampleZones() []entity.Zone {
	return []entity.Zone{
		{ID: uuid.MustParse("5b0d6d0e-6f0c-4b8e-9a53-0f1f6a1d2c01").String(), ReadableID: "Z-NORTH", Name: "North City", Active: true,
			Polygon: "POLYGON((78.40 17.45, 78.50 17.45, 78.50 17.55, 78.40 17.55, 78.40 17.45))"},
		{ID: uuid.MustParse("5b0d6d0e-6f0c-4b8e-9a53-0f1f6a1d2c02").String(), ReadableID: "Z-AIRPORT", Name: "Airport", Active: true,
			Polygon: "POLYGON((78.38 17.21, 78.46 17.21, 78.46 17.27, 78.38 17.27, 78.38 17.21))"},
	}
}
