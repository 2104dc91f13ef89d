package entity

import "time"

// CouponType is PERCENT or FLAT.
type CouponType string

const (
	CouponPercent CouponType = "PERCENT"
	CouponFlat    CouponType = "FLAT"
)

// Coupon mirrors the backend coupon record.
type Coupon struct {
	ID             string     `json:"id"`
	Code           string     `json:"code"`
	Type           CouponType `json:"type"`
	Value          float64    `json:"value"`
	MinFare        *float64   `json:"minFare,omitempty"`
	StartsAt       *time.Time `json:"startsAt,omitempty"`
	EndsAt         *time.Time `json:"endsAt,omitempty"`
	MaxRedemptions *int64     `json:"maxRedemptions,omitempty"`
	PerUserLimit   *int64     `json:"perUserLimit,omitempty"`
	Active         bool       `json:"active"`
}
