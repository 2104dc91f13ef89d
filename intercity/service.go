package intercity

import (
	"context"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
)

// Action names a button on the trip row.
type Action string

const (
	ActionDispatch Action = "dispatch"
	ActionCancel   Action = "cancel"
)

// Filter tags trips by status and searches code, origin and destination.
var Filter = resource.Filter[entity.IntercityTrip]{
	Tag: func(t entity.IntercityTrip) string { return string(t.Status) },
	Fields: []func(entity.IntercityTrip) string{
		func(t entity.IntercityTrip) string { return t.Code },
		func(t entity.IntercityTrip) string { return t.Origin },
		func(t entity.IntercityTrip) string { return t.Destination },
	},
}

// AllowedActions lists the buttons the view renders for a trip in status s.
// The backend still decides whether a transition is legal.
func AllowedActions(s entity.TripStatus) []Action {
	switch s {
	case entity.TripScheduled:
		return []Action{ActionCancel}
	case entity.TripFilling:
		return []Action{ActionDispatch, ActionCancel}
	}
	return []Action{}
}

// CancelRequest is the cancel dialog.
type CancelRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// TripView is a trip with the actions its row offers.
type TripView struct {
	entity.IntercityTrip
	Actions []Action `json:"actions"`
}

// TripService exposes the intercity trip board.
type TripService interface {
	List(ctx context.Context, p resource.ListParams) (resource.State[TripView], error)
	Dispatch(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string, req CancelRequest) error
}
