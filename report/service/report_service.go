package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
	reportpkg "github.com/palepusrinivas/guava-adminpanel-sub002/report"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
)

const reportsPath = "/api/admin/reports/"

type reportService struct {
	series map[reportpkg.Kind]*resource.Manager[entity.ReportPoint]
}

// NewReportService builds one manager per report kind. demo enables sample
// series when the backend has no report endpoint.
func NewReportService(client *upstream.Client, log *zap.Logger, demo bool) reportpkg.ReportService {
	s := &reportService{series: make(map[reportpkg.Kind]*resource.Manager[entity.ReportPoint], len(reportpkg.Kinds))}
	for _, k := range reportpkg.Kinds {
		api := upstream.NewResource[entity.ReportPoint](client, reportsPath+string(k))
		s.series[k] = resource.NewManager[entity.ReportPoint]("report_"+string(k), api, resource.Filter[entity.ReportPoint]{},
			resource.WithLogger[entity.ReportPoint](log),
			resource.WithSampleData(demo, reportpkg.Sample(k)),
		)
	}
	return s
}

func (s *reportService) Series(ctx context.Context, kind reportpkg.Kind, timeframe string) (resource.State[entity.ReportPoint], error) {
	m, ok := s.series[kind]
	if !ok {
		return resource.State[entity.ReportPoint]{Items: []entity.ReportPoint{}}, form.Invalid("kind", "unknown report")
	}
	timeframe = strings.ToLower(strings.TrimSpace(timeframe))
	if timeframe == "" {
		timeframe = "weekly"
	}
	if !known(timeframe) {
		return m.View(ctx), form.Invalid("timeframe", "must be one of "+strings.Join(reportpkg.Timeframes, " "))
	}
	return m.List(ctx, resource.ListParams{Params: map[string]string{"timeframe": timeframe}})
}

func known(tf string) bool {
	for _, t := range reportpkg.Timeframes {
		if t == tf {
			return true
		}
	}
	return false
}
