package driver

import (
	"context"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
)

// Filter narrows the fetched driver list by active flag and identity fields.
var Filter = resource.Filter[entity.Driver]{
	Tag: func(d entity.Driver) string { return resource.ActiveTag(d.Active) },
	Fields: []func(entity.Driver) string{
		func(d entity.Driver) string { return d.Name },
		func(d entity.Driver) string { return d.Email },
		func(d entity.Driver) string { return d.Mobile },
		func(d entity.Driver) string { return d.ShortCode },
	},
}

// CreateDriverRequest is the admin "add driver" form.
type CreateDriverRequest struct {
	Name            string `json:"name" validate:"required,max=120"`
	Email           string `json:"email" validate:"required,email"`
	Mobile          string `json:"mobile" validate:"required,min=7,max=15,numeric"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	VehicleID       string `json:"vehicleId,omitempty"`
}

// DriverService exposes the driver management screen.
type DriverService interface {
	List(ctx context.Context, p resource.ListParams) (resource.State[entity.Driver], error)
	Get(ctx context.Context, id string) (*entity.Driver, error)
	Create(ctx context.Context, req CreateDriverRequest) (*entity.Driver, error)
	SetActive(ctx context.Context, id string, active bool) error
}
