package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	couponpkg "github.com/palepusrinivas/guava-adminpanel-sub002/coupon"
	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
)

const couponsPath = "/api/admin/coupons"

type couponService struct {
	api     *upstream.Resource[entity.Coupon]
	coupons *resource.Manager[entity.Coupon]
}

// NewCouponService constructs a CouponService over the backend coupons endpoint.
func NewCouponService(client *upstream.Client, log *zap.Logger, opts ...resource.Option[entity.Coupon]) couponpkg.CouponService {
	api := upstream.NewResource[entity.Coupon](client, couponsPath)
	opts = append([]resource.Option[entity.Coupon]{resource.WithLogger[entity.Coupon](log)}, opts...)
	return &couponService{
		api:     api,
		coupons: resource.NewManager[entity.Coupon]("coupons", api, couponpkg.Filter, opts...),
	}
}

func (s *couponService) List(ctx context.Context, p resource.ListParams) (resource.State[entity.Coupon], error) {
	return s.coupons.List(ctx, p)
}

type couponPayload struct {
	Code           string            `json:"code"`
	Type           entity.CouponType `json:"type"`
	Value          float64           `json:"value"`
	MinFare        *float64          `json:"minFare"`
	StartsAt       *time.Time        `json:"startsAt,omitempty"`
	EndsAt         *time.Time        `json:"endsAt,omitempty"`
	MaxRedemptions *int64            `json:"maxRedemptions"`
	PerUserLimit   *int64            `json:"perUserLimit"`
	Active         bool              `json:"active"`
}

// buildPayload normalises and validates the form.
func buildPayload(f couponpkg.CouponForm) (couponPayload, error) {
	f.Code = form.UpperCode(f.Code)
	if err := form.Validate(f); err != nil {
		return couponPayload{}, err
	}
	var ve *form.ValidationError
	if f.Type == entity.CouponPercent && f.Value > 100 {
		ve = ve.Merge(form.Invalid("value", "must be at most 100 for percent coupons"))
	}
	if f.StartsAt != nil && f.EndsAt != nil && !f.EndsAt.After(*f.StartsAt) {
		ve = ve.Merge(form.Invalid("endsAt", "must be after startsAt"))
	}
	if f.MaxRedemptions.Valid && f.PerUserLimit.Valid && f.MaxRedemptions.Value > 0 && f.PerUserLimit.Value > f.MaxRedemptions.Value {
		ve = ve.Merge(form.Invalid("perUserLimit", "must not exceed maxRedemptions"))
	}
	if ve != nil {
		return couponPayload{}, ve
	}
	return couponPayload{
		Code:           f.Code,
		Type:           f.Type,
		Value:          f.Value,
		MinFare:        f.MinFare.Ptr(),
		StartsAt:       f.StartsAt,
		EndsAt:         f.EndsAt,
		MaxRedemptions: f.MaxRedemptions.Ptr(),
		PerUserLimit:   f.PerUserLimit.Ptr(),
		Active:         f.Active,
	}, nil
}

func (s *couponService) Create(ctx context.Context, f couponpkg.CouponForm) (*entity.Coupon, error) {
	payload, err := buildPayload(f)
	if err != nil {
		return nil, err
	}
	var created *entity.Coupon
	err = s.coupons.Mutate(ctx, "create", func(ctx context.Context) error {
		var err error
		created, err = s.api.Create(ctx, payload)
		return err
	})
	return created, err
}

func (s *couponService) Update(ctx context.Context, id string, f couponpkg.CouponForm) (*entity.Coupon, error) {
	payload, err := buildPayload(f)
	if err != nil {
		return nil, err
	}
	var updated *entity.Coupon
	err = s.coupons.Mutate(ctx, "update", func(ctx context.Context) error {
		var err error
		updated, err = s.api.Update(ctx, id, payload)
		return err
	})
	return updated, err
}

func (s *couponService) SetActive(ctx context.Context, id string, active bool) error {
	verb := resource.ToggleVerb(active)
	return s.coupons.Mutate(ctx, verb, func(ctx context.Context) error {
		return s.api.Action(ctx, id, verb, nil)
	})
}

func (s *couponService) Delete(ctx context.Context, id string) error {
	return s.coupons.Mutate(ctx, "delete", func(ctx context.Context) error {
		return s.api.Delete(ctx, id)
	})
}
