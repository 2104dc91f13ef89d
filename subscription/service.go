package subscription

import (
	"context"
	"encoding/json"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
)

// Filter tags plans by subscription type and searches name and vehicle type.
var Filter = resource.Filter[entity.SubscriptionPlan]{
	Tag: func(p entity.SubscriptionPlan) string { return string(p.SubscriptionType) },
	Fields: []func(entity.SubscriptionPlan) string{
		func(p entity.SubscriptionPlan) string { return p.Name },
		func(p entity.SubscriptionPlan) string { return p.VehicleType },
	},
}

// PlanForm is the create/edit plan form.
type PlanForm struct {
	Name        string  `json:"name" validate:"required,max=80"`
	VehicleType string  `json:"vehicleType" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Active      bool    `json:"active"`
	Terms       Terms   `json:"-" validate:"-"`
}

// SwitchType replaces the terms with the empty terms of t. Nothing of the
// previous variant survives the switch.
func (f *PlanForm) SwitchType(t entity.SubscriptionType) error {
	terms, err := NewTerms(t)
	if err != nil {
		return err
	}
	f.Terms = terms
	return nil
}

// Validate checks the common fields and the active terms.
func (f PlanForm) Validate() error {
	var ve *form.ValidationError
	if err := form.Validate(f); err != nil {
		var ok bool
		if ve, ok = form.AsValidation(err); !ok {
			return err
		}
	}
	if f.Terms == nil {
		ve = ve.Merge(form.Invalid("subscriptionType", "is required"))
	} else {
		ve = ve.Merge(f.Terms.check())
	}
	if ve != nil {
		return ve
	}
	return nil
}

func (f *PlanForm) UnmarshalJSON(b []byte) error {
	type plain PlanForm
	aux := struct {
		*plain
		SubscriptionType entity.SubscriptionType `json:"subscriptionType"`
	}{plain: (*plain)(f)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	f.Terms = nil
	if aux.SubscriptionType == "" {
		return nil
	}
	terms, err := decodeTerms(aux.SubscriptionType, b)
	if err != nil {
		return err
	}
	f.Terms = terms
	return nil
}

func (f PlanForm) MarshalJSON() ([]byte, error) {
	type plain PlanForm
	out := map[string]any{}
	b, err := json.Marshal(plain(f))
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if f.Terms != nil {
		tb, err := json.Marshal(f.Terms)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(tb, &out); err != nil {
			return nil, err
		}
		out["subscriptionType"] = f.Terms.Type()
	}
	return json.Marshal(out)
}

// PlanService exposes the subscription plan screen.
type PlanService interface {
	List(ctx context.Context, p resource.ListParams) (resource.State[entity.SubscriptionPlan], error)
	Create(ctx context.Context, f PlanForm) (*entity.SubscriptionPlan, error)
	Update(ctx context.Context, id string, f PlanForm) (*entity.SubscriptionPlan, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}
