// Package dto - DTO cho Producer.
package dto

// GeoPointInput input tọa độ GeoJSON Point.
type GeoPointInput struct {
	Type        string    `json:"type" validate:"omitempty,eq=Point"`
	Coordinates []float64 `json:"coordinates" validate:"omitempty,len=2"`
}

// ProducerCreateInput input tạo nhà sản xuất mới.
type ProducerCreateInput struct {
	Name        string         `json:"name" validate:"required,min=1,max=100,no_xss"`
	Description string         `json:"description,omitempty" validate:"omitempty,max=1000,no_xss"`
	City        string         `json:"city,omitempty" validate:"omitempty,max=100,no_xss"`
	State       string         `json:"state,omitempty" validate:"omitempty,max=100,no_xss"`
	Country     string         `json:"country,omitempty" validate:"omitempty,max=100,no_xss"`
	Location    *GeoPointInput `json:"location,omitempty" validate:"omitempty"`
}

// ProducerUpdateInput input cập nhật nhà sản xuất. Mọi field đều optional.
type ProducerUpdateInput struct {
	Name        string         `json:"name,omitempty" validate:"omitempty,min=1,max=100,no_xss"`
	Description string         `json:"description,omitempty" validate:"omitempty,max=1000,no_xss"`
	City        string         `json:"city,omitempty" validate:"omitempty,max=100,no_xss"`
	State       string         `json:"state,omitempty" validate:"omitempty,max=100,no_xss"`
	Country     string         `json:"country,omitempty" validate:"omitempty,max=100,no_xss"`
	Location    *GeoPointInput `json:"location,omitempty" validate:"omitempty"`
}
