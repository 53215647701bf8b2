package geosvc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"beer_inventory/config"
	"beer_inventory/internal/common"
)

func newTestService(ts *httptest.Server) *GeoService {
	return NewGeoService(&config.Configuration{
		LocationAPIURL: ts.URL,
		LocationAPIKey: "test-key",
	})
}

func TestGetStates_SapXepKhongPhanBietHoaThuong(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/countries/US/states", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-CSCAPI-KEY"))
		w.Write([]byte(`[
			{"id":3,"name":"texas","iso2":"TX"},
			{"id":1,"name":"Alabama","iso2":"AL"},
			{"id":2,"name":"California","iso2":"CA"}
		]`))
	}))
	defer ts.Close()

	states, err := newTestService(ts).GetStates(context.Background(), "US")
	assert.NoError(t, err)
	assert.Len(t, states, 3)

	// Sắp xếp theo tên không phân biệt hoa thường: "texas" đứng sau "California"
	assert.Equal(t, "Alabama", states[0].Name)
	assert.Equal(t, "California", states[1].Name)
	assert.Equal(t, "texas", states[2].Name)
}

func TestGetCountries(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/countries", r.URL.Path)
		w.Write([]byte(`[{"id":240,"name":"Vietnam","iso2":"VN"},{"id":233,"name":"United States","iso2":"US"}]`))
	}))
	defer ts.Close()

	countries, err := newTestService(ts).GetCountries(context.Background())
	assert.NoError(t, err)
	assert.Len(t, countries, 2)
	assert.Equal(t, "VN", countries[0].Iso2)
}

func TestGetStateDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/countries/US/states/CA", r.URL.Path)
		w.Write([]byte(`{"id":1416,"name":"California","iso2":"CA","latitude":"36.77826100","longitude":"-119.41793240"}`))
	}))
	defer ts.Close()

	state, err := newTestService(ts).GetStateDetail(context.Background(), "US", "CA")
	assert.NoError(t, err)
	assert.Equal(t, "California", state.Name)
	assert.Equal(t, "36.77826100", state.Latitude)
}

func TestFetchJSON_UpstreamLoiKhongLoChiTiet(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"Invalid API key: super-secret-internal-detail"}`))
	}))
	defer ts.Close()

	_, err := newTestService(ts).GetCountries(context.Background())
	assert.Error(t, err)

	var customErr *common.Error
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.ErrCodeExternalService.Code, customErr.Code.Code)
	// Message trả về client không chứa chi tiết từ upstream
	assert.NotContains(t, customErr.Message, "super-secret-internal-detail")
}

func TestFetchJSON_UpstreamTraVeJSONHong(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`không phải json`))
	}))
	defer ts.Close()

	_, err := newTestService(ts).GetCities(context.Background(), "US", "CA")
	assert.Error(t, err)

	var customErr *common.Error
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.ErrCodeExternalService.Code, customErr.Code.Code)
}
