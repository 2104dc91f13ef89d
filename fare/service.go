package fare

import (
	"context"
	"encoding/json"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
)

// Filter searches fares by zone name and vehicle category. Fares have no status tag.
var Filter = resource.Filter[entity.TripFare]{
	Fields: []func(entity.TripFare) string{
		func(f entity.TripFare) string { return f.ZoneName },
		func(f entity.TripFare) string { return f.VehicleCategory },
	},
}

// FareForm is the trip fare form. Zone is resolved from the raw "zoneId"
// dropdown value when the form is decoded and is nil when the id is empty or
// belongs to neither zone model.
type FareForm struct {
	Zone               entity.ZoneRef `json:"-"`
	ZoneName           string         `json:"zoneName" validate:"max=120"`
	VehicleCategory    string         `json:"vehicleCategory" validate:"required"`
	BaseFare           float64        `json:"baseFare" validate:"gte=0"`
	BaseFarePerKm      float64        `json:"baseFarePerKm" validate:"gte=0"`
	TimeRatePerMin     form.NullFloat `json:"timeRatePerMin" validate:"omitempty,gte=0"`
	WaitingFeePerMin   form.NullFloat `json:"waitingFeePerMin" validate:"omitempty,gte=0"`
	CancellationFee    form.NullFloat `json:"cancellationFee" validate:"omitempty,gte=0"`
	MinCancellationFee form.NullFloat `json:"minCancellationFee" validate:"omitempty,gte=0"`
}

func (f *FareForm) UnmarshalJSON(b []byte) error {
	type plain FareForm
	aux := struct {
		*plain
		ZoneID string `json:"zoneId"`
	}{plain: (*plain)(f)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	f.Zone = entity.ParseZoneRef(aux.ZoneID)
	return nil
}

// FareService exposes the trip fare setup screen.
type FareService interface {
	List(ctx context.Context, p resource.ListParams) (resource.State[entity.TripFare], error)
	Create(ctx context.Context, f FareForm) (*entity.TripFare, error)
	Update(ctx context.Context, id string, f FareForm) (*entity.TripFare, error)
	Delete(ctx context.Context, id string) error
}
