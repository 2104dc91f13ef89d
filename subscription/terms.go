package subscription

import (
	"encoding/json"
	"fmt"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
)

// Terms is the variant part of a plan, keyed by the subscription type.
type Terms interface {
	Type() entity.SubscriptionType
	check() *form.ValidationError
}

// UnlimitedTerms bound a plan by time.
type UnlimitedTerms struct {
	DurationDays  form.NullInt `json:"durationDays" validate:"omitempty,gte=0"`
	DurationHours form.NullInt `json:"durationHours" validate:"omitempty,gte=0,lte=23"`
}

// EarningTerms bound a plan by what the driver earns on intercity trips.
type EarningTerms struct {
	EarningLimit form.NullFloat `json:"earningLimit" validate:"required,gt=0"`
	Percentage   form.NullFloat `json:"percentage" validate:"required,gt=0,lte=100"`
}

func (UnlimitedTerms) Type() entity.SubscriptionType { return entity.SubscriptionUnlimited }
func (EarningTerms) Type() entity.SubscriptionType   { return entity.SubscriptionIntercityEarning }

func (t UnlimitedTerms) check() *form.ValidationError {
	ve := validation(t)
	if ve == nil && t.DurationDays.Value == 0 && t.DurationHours.Value == 0 {
		ve = form.Invalid("durationDays", "a duration in days or hours is required")
	}
	return ve
}

func (t EarningTerms) check() *form.ValidationError { return validation(t) }

func validation(v any) *form.ValidationError {
	ve, _ := form.AsValidation(form.Validate(v))
	return ve
}

// NewTerms returns the empty terms of the given type.
func NewTerms(t entity.SubscriptionType) (Terms, error) {
	switch t {
	case entity.SubscriptionUnlimited:
		return UnlimitedTerms{}, nil
	case entity.SubscriptionIntercityEarning:
		return EarningTerms{}, nil
	}
	return nil, form.Invalid("subscriptionType", fmt.Sprintf("must be one of %s %s",
		entity.SubscriptionUnlimited, entity.SubscriptionIntercityEarning))
}

// decodeTerms reads the variant selected by t from the raw form body. Fields of
// the other variant are ignored.
func decodeTerms(t entity.SubscriptionType, raw []byte) (Terms, error) {
	switch t {
	case entity.SubscriptionUnlimited:
		var u UnlimitedTerms
		err := json.Unmarshal(raw, &u)
		return u, err
	case entity.SubscriptionIntercityEarning:
		var e EarningTerms
		err := json.Unmarshal(raw, &e)
		return e, err
	}
	return NewTerms(t)
}
