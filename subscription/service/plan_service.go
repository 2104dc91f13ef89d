package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
	subpkg "github.com/palepusrinivas/guava-adminpanel-sub002/subscription"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
)

const plansPath = "/api/admin/subscription-plans"

type planService struct {
	api   *upstream.Resource[entity.SubscriptionPlan]
	plans *resource.Manager[entity.SubscriptionPlan]
}

// NewPlanService constructs a PlanService over the backend subscription plans endpoint.
func NewPlanService(client *upstream.Client, log *zap.Logger, opts ...resource.Option[entity.SubscriptionPlan]) subpkg.PlanService {
	api := upstream.NewResource[entity.SubscriptionPlan](client, plansPath)
	opts = append([]resource.Option[entity.SubscriptionPlan]{resource.WithLogger[entity.SubscriptionPlan](log)}, opts...)
	return &planService{
		api:   api,
		plans: resource.NewManager[entity.SubscriptionPlan]("subscription_plans", api, subpkg.Filter, opts...),
	}
}

func (s *planService) List(ctx context.Context, p resource.ListParams) (resource.State[entity.SubscriptionPlan], error) {
	return s.plans.List(ctx, p)
}

// buildPayload flattens the form into the backend plan record. Only the
// fields of the active terms are set.
func buildPayload(f subpkg.PlanForm) (entity.SubscriptionPlan, error) {
	f.Name = strings.TrimSpace(f.Name)
	if err := f.Validate(); err != nil {
		return entity.SubscriptionPlan{}, err
	}
	p := entity.SubscriptionPlan{
		Name:             f.Name,
		VehicleType:      f.VehicleType,
		SubscriptionType: f.Terms.Type(),
		Price:            f.Price,
		Active:           f.Active,
	}
	switch t := f.Terms.(type) {
	case subpkg.UnlimitedTerms:
		p.DurationDays = t.DurationDays.Ptr()
		p.DurationHours = t.DurationHours.Ptr()
	case subpkg.EarningTerms:
		p.EarningLimit = t.EarningLimit.Ptr()
		p.Percentage = t.Percentage.Ptr()
	}
	return p, nil
}

func (s *planService) Create(ctx context.Context, f subpkg.PlanForm) (*entity.SubscriptionPlan, error) {
	payload, err := buildPayload(f)
	if err != nil {
		return nil, err
	}
	var created *entity.SubscriptionPlan
	err = s.plans.Mutate(ctx, "create", func(ctx context.Context) error {
		var err error
		created, err = s.api.Create(ctx, payload)
		return err
	})
	return created, err
}

func (s *planService) Update(ctx context.Context, id string, f subpkg.PlanForm) (*entity.SubscriptionPlan, error) {
	payload, err := buildPayload(f)
	if err != nil {
		return nil, err
	}
	var updated *entity.SubscriptionPlan
	err = s.plans.Mutate(ctx, "update", func(ctx context.Context) error {
		var err error
		updated, err = s.api.Update(ctx, id, payload)
		return err
	})
	return updated, err
}

func (s *planService) SetActive(ctx context.Context, id string, active bool) error {
	verb := resource.ToggleVerb(active)
	return s.plans.Mutate(ctx, verb, func(ctx context.Context) error {
		return s.api.Action(ctx, id, verb, nil)
	})
}

func (s *planService) Delete(ctx context.Context, id string) error {
	return s.plans.Mutate(ctx, "delete", func(ctx context.Context) error {
		return s.api.Delete(ctx, id)
	})
}
