package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	driverpkg "github.com/palepusrinivas/guava-adminpanel-sub002/driver"
	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
	"github.com/palepusrinivas/guava-adminpanel-sub002/form"
	"github.com/palepusrinivas/guava-adminpanel-sub002/resource"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
)

type driverBackend struct {
	mu       sync.Mutex
	drivers  []entity.Driver
	paths    []string
	lastBody map[string]any
}

func (b *driverBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.paths = append(b.paths, r.Method+" "+r.URL.Path)
	switch {
	case r.Method == http.MethodGet && r.URL.Path == driversPath:
		_ = json.NewEncoder(w).Encode(map[string]any{"data": b.drivers})
	case r.Method == http.MethodPost && r.URL.Path == driversPath:
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.lastBody = body
		d := entity.Driver{ID: "d9", Name: body["name"].(string), Email: body["email"].(string), Active: true}
		b.drivers = append(b.drivers, d)
		_ = json.NewEncoder(w).Encode(d)
	case r.Method == http.MethodPatch && r.URL.Path == driversPath+"/d1/disable":
		b.drivers[0].Active = false
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"unknown driver"}`))
	}
}

func newTestService(t *testing.T, drivers ...entity.Driver) (driverpkg.DriverService, *driverBackend) {
	t.Helper()
	b := &driverBackend{drivers: drivers}
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)
	return NewDriverService(upstream.NewClient(srv.URL, time.Second, nil, nil), zap.NewNop()), b
}

func TestListDriversFiltersClientSide(t *testing.T) {
	svc, _ := newTestService(t,
		entity.Driver{ID: "d1", Name: "Ravi Kumar", Mobile: "9000000001", Active: true},
		entity.Driver{ID: "d2", Name: "Anita Rao", Mobile: "9000000002", Active: false},
	)

	st, err := svc.List(context.Background(), resource.ListParams{Filter: "inactive"})
	require.NoError(t, err)
	require.Len(t, st.Items, 1)
	assert.Equal(t, "d2", st.Items[0].ID)
	assert.Equal(t, 2, st.Total)

	st, err = svc.List(context.Background(), resource.ListParams{Search: "0001"})
	require.NoError(t, err)
	require.Len(t, st.Items, 1)
	assert.Equal(t, "d1", st.Items[0].ID)
}

func TestCreateDriverOmitsConfirmation(t *testing.T) {
	svc, b := newTestService(t)
	created, err := svc.Create(context.Background(), driverpkg.CreateDriverRequest{
		Name: " Ravi ", Email: "Ravi@Example.com", Mobile: "9000000001",
		Password: "s3cretpass", ConfirmPassword: "s3cretpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "d9", created.ID)
	assert.Equal(t, "ravi@example.com", b.lastBody["email"])
	assert.NotContains(t, b.lastBody, "confirmPassword")
}

func TestCreateDriverPasswordMismatch(t *testing.T) {
	svc, b := newTestService(t)
	_, err := svc.Create(context.Background(), driverpkg.CreateDriverRequest{
		Name: "Ravi", Email: "ravi@example.com", Mobile: "9000000001",
		Password: "s3cretpass", ConfirmPassword: "different",
	})
	ve, ok := form.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "must match password", ve.Fields["confirmPassword"])
	assert.Empty(t, b.paths)
}

func TestSetActiveRefetches(t *testing.T) {
	svc, b := newTestService(t, entity.Driver{ID: "d1", Name: "Ravi", Active: true})
	_, err := svc.List(context.Background(), resource.ListParams{})
	require.NoError(t, err)

	require.NoError(t, svc.SetActive(context.Background(), "d1", false))
	assert.Equal(t, []string{
		"GET " + driversPath,
		"PATCH " + driversPath + "/d1/disable",
		"GET " + driversPath,
	}, b.paths)

	err = svc.SetActive(context.Background(), "nope", true)
	assert.Equal(t, "unknown driver", upstream.Message(err))
}
