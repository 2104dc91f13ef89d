package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	farepkg "github.com/palepusrinivas/guava-adminpanel-sub002/fare"
	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
)

func decodeForm(t *testing.T, raw string) farepkg.FareForm {
	t.Helper()
	var f farepkg.FareForm
	require.NoError(t, json.Unmarshal([]byte(raw), &f))
	return f
}

func TestPayloadDropsLegacyZoneID(t *testing.T) {
	f := decodeForm(t, `{"zoneId":"12","zoneName":"North City","vehicleCategory":"SEDAN","baseFare":40,"baseFarePerKm":12,"waitingFeePerMin":""}`)
	assert.Equal(t, entity.LegacyZoneRef{ID: 12}, f.Zone)

	p, err := buildPayload(f)
	require.NoError(t, err)
	b, err := json.Marshal(p)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(b, &body))
	assert.NotContains(t, body, "zoneId")
	assert.Equal(t, "North City", body["zoneName"])
	assert.Contains(t, body, "waitingFeePerMin")
	assert.Nil(t, body["waitingFeePerMin"])
}

func TestPayloadDropsUnrecognisedZoneID(t *testing.T) {
	f := decodeForm(t, `{"zoneId":"zone-north","zoneName":"North City","vehicleCategory":"SEDAN"}`)
	assert.Nil(t, f.Zone)

	p, err := buildPayload(f)
	require.NoError(t, err)
	assert.Empty(t, p.ZoneID)
	assert.Equal(t, "North City", p.ZoneName)
}

func TestPayloadKeepsV2ZoneID(t *testing.T) {
	id := uuid.New()
	f := decodeForm(t, `{"zoneId":"`+id.String()+`","vehicleCategory":"AUTO","baseFare":25,"cancellationFee":"10"}`)

	p, err := buildPayload(f)
	require.NoError(t, err)
	assert.Equal(t, id.String(), p.ZoneID)
	require.NotNil(t, p.CancellationFee)
	assert.Equal(t, 10.0, *p.CancellationFee)
}

func TestCreateWithoutZoneIsRejectedBeforeNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = io.WriteString(w, `[]`)
	}))
	defer srv.Close()
	svc := NewFareService(upstream.NewClient(srv.URL, time.Second, nil, nil), zap.NewNop())

	_, err := svc.Create(context.Background(), decodeForm(t, `{"zoneId":"","zoneName":"  ","vehicleCategory":"SEDAN"}`))
	ve, ok := form.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "zoneName")
	assert.Zero(t, calls)
}

func TestCreateFareRefetches(t *testing.T) {
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		if r.Method == http.MethodPost {
			_, _ = io.WriteString(w, `{"id":"f1","zoneName":"North City","vehicleCategory":"SEDAN"}`)
			return
		}
		_, _ = io.WriteString(w, `{"content":[{"id":"f1","zoneName":"North City","vehicleCategory":"SEDAN"}]}`)
	}))
	defer srv.Close()
	svc := NewFareService(upstream.NewClient(srv.URL, time.Second, nil, nil), zap.NewNop())

	created, err := svc.Create(context.Background(), farepkg.FareForm{ZoneName: "North City", VehicleCategory: "SEDAN"})
	require.NoError(t, err)
	assert.Equal(t, "f1", created.ID)
	assert.Equal(t, []string{http.MethodPost, http.MethodGet}, methods)
}
