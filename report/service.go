package report

import (
	"context"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
)

// Kind names a report series.
type Kind string

const (
	KindTrips    Kind = "trips"
	KindEarnings Kind = "earnings"
	KindDrivers  Kind = "drivers"
)

// Kinds lists every report the console renders.
var Kinds = []Kind{KindTrips, KindEarnings, KindDrivers}

// Timeframes are the bucket sizes the backend accepts.
var Timeframes = []string{"daily", "weekly", "monthly", "yearly"}

// ReportService exposes the report analytics screen.
type ReportService interface {
	Series(ctx context.Context, kind Kind, timeframe string) (resource.State[entity.ReportPoint], error)
}

// Sample returns demo buckets for kind.
func Sample(kind Kind) func() []entity.ReportPoint {
	scale := map[Kind]float64{KindTrips: 1, KindEarnings: 185, KindDrivers: 0.2}[kind]
	return func() []entity.ReportPoint {
		labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
		counts := []int{120, 135, 128, 150, 190, 240, 210}
		out := make([]entity.ReportPoint, len(labels))
		for i, l := range labels {
			out[i] = entity.ReportPoint{Label: l, Count: counts[i], Value: float64(counts[i]) * scale}
		}
		return out
	}
}
