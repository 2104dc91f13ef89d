package coupon

import (
	"context"
	"time"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
)

// Filter narrows coupons by active flag and code/type.
var Filter = resource.Filter[entity.Coupon]{
	Tag: func(c entity.Coupon) string { return resource.ActiveTag(c.Active) },
	Fields: []func(entity.Coupon) string{
		func(c entity.Coupon) string { return c.Code },
		func(c entity.Coupon) string { return string(c.Type) },
	},
}

// CouponForm is the create/edit coupon modal.
type CouponForm struct {
	Code           string            `json:"code" validate:"required,min=3,max=32,alphanum"`
	Type           entity.CouponType `json:"type" validate:"required,oneof=PERCENT FLAT"`
	Value          float64           `json:"value" validate:"gt=0"`
	MinFare        form.NullFloat    `json:"minFare" validate:"omitempty,gte=0"`
	StartsAt       *time.Time        `json:"startsAt"`
	EndsAt         *time.Time        `json:"endsAt"`
	MaxRedemptions form.NullInt      `json:"maxRedemptions" validate:"omitempty,gte=0"`
	PerUserLimit   form.NullInt      `json:"perUserLimit" validate:"omitempty,gte=0"`
	Active         bool              `json:"active"`
}

// CouponService exposes the coupon management screen.
type CouponService interface {
	List(ctx context.Context, p resource.ListParams) (resource.State[entity.Coupon], error)
	Create(ctx context.Context, f CouponForm) (*entity.Coupon, error)
	Update(ctx context.Context, id string, f CouponForm) (*entity.Coupon, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}
