package vehicle

import (
	"context"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
)

// Filter tags vehicles by ACTIVE/INACTIVE and searches the identifying fields.
var Filter = resource.Filter[entity.Vehicle]{
	Tag: func(v entity.Vehicle) string { return string(v.Status) },
	Fields: []func(entity.Vehicle) string{
		func(v entity.Vehicle) string { return v.Brand },
		func(v entity.Vehicle) string { return v.Model },
		func(v entity.Vehicle) string { return v.LicensePlate },
		func(v entity.Vehicle) string { return v.Category },
	},
}

// VehicleForm is the create/edit vehicle form.
type VehicleForm struct {
	Brand        string           `json:"brand" validate:"required"`
	Model        string           `json:"model" validate:"required"`
	Category     string           `json:"category" validate:"required"`
	Type         string           `json:"type" validate:"required"`
	LicensePlate string           `json:"licensePlate" validate:"required,min=4,max=16"`
	Ownership    entity.Ownership `json:"ownership" validate:"required,oneof=Driver Company"`
	DriverID     string           `json:"driverId" validate:"required_if=Ownership Driver"`
}

// VehicleService exposes the vehicle screen.
type VehicleService interface {
	List(ctx context.Context, p resource.ListParams) (resource.State[entity.Vehicle], error)
	Create(ctx context.Context, f VehicleForm) (*entity.Vehicle, error)
	Update(ctx context.Context, id string, f VehicleForm) (*entity.Vehicle, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}
