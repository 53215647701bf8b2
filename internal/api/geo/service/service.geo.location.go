// Package geosvc - Service tra cứu địa lý, proxy sang dịch vụ country-state-city.
// Lỗi upstream ánh xạ về mã external-service với message chung; chi tiết
// transport chỉ ghi vào log, không trả về client.
package geosvc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"beer_inventory/config"
	geodto "beer_inventory/internal/api/geo/dto"
	"beer_inventory/internal/common"
	"beer_inventory/internal/logger"
)

// apiKeyHeader là header chứa API key của dịch vụ tra cứu
const apiKeyHeader = "X-CSCAPI-KEY"

// GeoService gọi dịch vụ tra cứu quốc gia/bang/thành phố.
type GeoService struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewGeoService tạo GeoService từ cấu hình.
func NewGeoService(cfg *config.Configuration) *GeoService {
	return &GeoService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(cfg.LocationAPIURL, "/"),
		apiKey:  cfg.LocationAPIKey,
	}
}

// fetchJSON gọi upstream và decode JSON vào result.
func (s *GeoService) fetchJSON(ctx context.Context, path string, result interface{}) error {
	log := logger.GetAppLogger()

	req, err := http.NewRequestWithContext(ctx, "GET", s.baseURL+path, nil)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, nil)
	}
	req.Header.Set(apiKeyHeader, s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.WithError(err).WithField("path", path).Error("Lỗi gọi dịch vụ tra cứu địa lý")
		return common.NewError(common.ErrCodeExternalService, "Dịch vụ tra cứu địa lý không phản hồi", common.StatusServiceUnavailable, nil)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.WithFields(map[string]interface{}{
			"path":       path,
			"statusCode": resp.StatusCode,
			"response":   string(bodyBytes),
		}).Error("Dịch vụ tra cứu địa lý trả về lỗi")
		return common.NewError(common.ErrCodeExternalService, "Dịch vụ tra cứu địa lý trả về lỗi", common.StatusServiceUnavailable, nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		log.WithError(err).WithField("path", path).Error("Lỗi decode response từ dịch vụ tra cứu địa lý")
		return common.NewError(common.ErrCodeExternalService, "Dịch vụ tra cứu địa lý trả về dữ liệu không hợp lệ", common.StatusServiceUnavailable, nil)
	}
	return nil
}

// GetCountries trả về danh sách quốc gia.
func (s *GeoService) GetCountries(ctx context.Context) ([]geodto.CountryResponse, error) {
	var countries []geodto.CountryResponse
	if err := s.fetchJSON(ctx, "/countries", &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

// GetStates trả về danh sách bang của một quốc gia, sắp xếp theo tên
// không phân biệt hoa thường.
func (s *GeoService) GetStates(ctx context.Context, countryIso2 string) ([]geodto.StateResponse, error) {
	var states []geodto.StateResponse
	path := fmt.Sprintf("/countries/%s/states", url.PathEscape(countryIso2))
	if err := s.fetchJSON(ctx, path, &states); err != nil {
		return nil, err
	}
	sort.Slice(states, func(i, j int) bool {
		return strings.ToLower(states[i].Name) < strings.ToLower(states[j].Name)
	})
	return states, nil
}

// GetStateDetail trả về chi tiết một bang (kèm tọa độ trung tâm).
func (s *GeoService) GetStateDetail(ctx context.Context, countryIso2, stateIso2 string) (*geodto.StateDetailResponse, error) {
	var state geodto.StateDetailResponse
	path := fmt.Sprintf("/countries/%s/states/%s", url.PathEscape(countryIso2), url.PathEscape(stateIso2))
	if err := s.fetchJSON(ctx, path, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// GetCities trả về danh sách thành phố của một bang.
func (s *GeoService) GetCities(ctx context.Context, countryIso2, stateIso2 string) ([]geodto.CityResponse, error) {
	var cities []geodto.CityResponse
	path := fmt.Sprintf("/countries/%s/states/%s/cities", url.PathEscape(countryIso2), url.PathEscape(stateIso2))
	if err := s.fetchJSON(ctx, path, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}
