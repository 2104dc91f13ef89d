package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
	zonepkg "github.com/palepusrinivas/guava-adminpanel-sub002/zone"
)

func newServer(t *testing.T, h http.HandlerFunc) *upstream.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return upstream.NewClient(srv.URL, time.Second, nil, nil)
}

func TestListV2FallsBackToSampleZonesInDemoMode(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotImplemented)
	})
	svc := NewZoneService(client, zap.NewNop(), true)

	st, err := svc.ListV2(context.Background())
	require.NoError(t, err)
	assert.True(t, st.Demo)
	assert.Equal(t, resource.UnavailableMessage, st.Error)
	require.Len(t, st.Items, len(zonepkg.SampleZones()))
	_, isV2 := entity.ParseZoneRef(st.Items[0].ID).(entity.ZoneV2Ref)
	assert.True(t, isV2)
}

func TestListV2WithoutDemoSurfacesError(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	svc := NewZoneService(client, zap.NewNop(), false)

	st, err := svc.ListV2(context.Background())
	require.Error(t, err)
	assert.False(t, st.Demo)
	assert.Empty(t, st.Items)
	assert.Equal(t, upstream.NotImplementedMessage, st.Error)
}

func TestCreateZoneSendsPolygon(t *testing.T) {
	var got zonepkg.ZoneForm
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_ = json.NewEncoder(w).Encode(entity.Zone{ID: "7", Name: got.Name, Polygon: got.Polygon})
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})
	svc := NewZoneService(client, zap.NewNop(), false)

	z, err := svc.Create(context.Background(), zonepkg.ZoneForm{Name: " Downtown ", Polygon: "POLYGON((0 0, 1 0, 1 1, 0 0))"})
	require.NoError(t, err)
	assert.Equal(t, "Downtown", got.Name)
	assert.Equal(t, "7", z.ID)

	_, err = svc.Create(context.Background(), zonepkg.ZoneForm{Name: "Empty"})
	ve, ok := form.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "is required", ve.Fields["polygon"])
}
