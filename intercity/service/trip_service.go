package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
	intercitypkg "github.com/palepusrinivas/guava-adminpanel-sub002/intercity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
)

const tripsPath = "/api/admin/intercity/trips"

type tripService struct {
	api   *upstream.Resource[entity.IntercityTrip]
	trips *resource.Manager[entity.IntercityTrip]
}

// NewTripService constructs a TripService over the backend intercity trips endpoint.
func NewTripService(client *upstream.Client, log *zap.Logger, opts ...resource.Option[entity.IntercityTrip]) intercitypkg.TripService {
	api := upstream.NewResource[entity.IntercityTrip](client, tripsPath)
	opts = append([]resource.Option[entity.IntercityTrip]{resource.WithLogger[entity.IntercityTrip](log)}, opts...)
	return &tripService{
		api:   api,
		trips: resource.NewManager[entity.IntercityTrip]("intercity_trips", api, intercitypkg.Filter, opts...),
	}
}

func (s *tripService) List(ctx context.Context, p resource.ListParams) (resource.State[intercitypkg.TripView], error) {
	st, err := s.trips.List(ctx, p)
	views := make([]intercitypkg.TripView, 0, len(st.Items))
	for _, t := range st.Items {
		views = append(views, intercitypkg.TripView{IntercityTrip: t, Actions: intercitypkg.AllowedActions(t.Status)})
	}
	return resource.State[intercitypkg.TripView]{
		Items:       views,
		IsLoading:   st.IsLoading,
		Error:       st.Error,
		Filter:      st.Filter,
		SearchQuery: st.SearchQuery,
		Total:       st.Total,
		TotalPages:  st.TotalPages,
		Page:        st.Page,
		Demo:        st.Demo,
	}, err
}

func (s *tripService) Dispatch(ctx context.Context, id string) error {
	return s.trips.Mutate(ctx, string(intercitypkg.ActionDispatch), func(ctx context.Context) error {
		return s.api.Action(ctx, id, string(intercitypkg.ActionDispatch), nil)
	})
}

func (s *tripService) Cancel(ctx context.Context, id string, req intercitypkg.CancelRequest) error {
	req.Reason = strings.TrimSpace(req.Reason)
	if err := form.Validate(req); err != nil {
		return err
	}
	return s.trips.Mutate(ctx, string(intercitypkg.ActionCancel), func(ctx context.Context) error {
		return s.api.Action(ctx, id, string(intercitypkg.ActionCancel), req)
	})
}
