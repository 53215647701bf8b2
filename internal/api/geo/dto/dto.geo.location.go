// Package dto - DTO cho domain geo (tra cứu quốc gia/bang/thành phố).
// Tọa độ giữ nguyên dạng string như upstream trả về, không ép kiểu.
package dto

// CountryResponse một quốc gia từ dịch vụ tra cứu.
type CountryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Iso2 string `json:"iso2"`
}

// StateResponse một bang/tỉnh của quốc gia.
type StateResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Iso2 string `json:"iso2"`
}

// StateDetailResponse chi tiết một bang, kèm tọa độ trung tâm.
type StateDetailResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Iso2      string `json:"iso2"`
	Latitude  string `json:"latitude,omitempty"`
	Longitude string `json:"longitude,omitempty"`
}

// CityResponse một thành phố thuộc bang.
type CityResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
