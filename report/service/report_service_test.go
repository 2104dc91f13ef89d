package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
	reportpkg "github.com/palepusrinivas/guava-adminpanel-sub002/report"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
)

func TestSeriesFromBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, reportsPath+"earnings", r.URL.Path)
		assert.Equal(t, "monthly", r.URL.Query().Get("timeframe"))
		_, _ = io.WriteString(w, `{"data":[{"label":"Jan","value":1200.5,"count":40}]}`)
	}))
	defer srv.Close()
	svc := NewReportService(upstream.NewClient(srv.URL, time.Second, nil, nil), zap.NewNop(), true)

	st, err := svc.Series(context.Background(), reportpkg.KindEarnings, "Monthly")
	require.NoError(t, err)
	assert.False(t, st.Demo)
	require.Len(t, st.Items, 1)
	assert.Equal(t, 1200.5, st.Items[0].Value)
}

func TestSeriesDemoFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()
	svc := NewReportService(upstream.NewClient(srv.URL, time.Second, nil, nil), zap.NewNop(), true)

	st, err := svc.Series(context.Background(), reportpkg.KindTrips, "")
	require.NoError(t, err)
	assert.True(t, st.Demo)
	assert.Equal(t, resource.UnavailableMessage, st.Error)
	assert.Len(t, st.Items, 7)
}

func TestSeriesRejectsUnknownInput(t *testing.T) {
	svc := NewReportService(upstream.NewClient("http://127.0.0.1:1", time.Second, nil, nil), zap.NewNop(), false)

	_, err := svc.Series(context.Background(), "refunds", "weekly")
	_, ok := form.AsValidation(err)
	assert.True(t, ok)

	_, err = svc.Series(context.Background(), reportpkg.KindTrips, "hourly")
	ve, ok := form.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "timeframe")
}
