// Package models - Producer thuộc domain catalog (producers).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint là GeoJSON Point {type: "Point", coordinates: [lng, lat]}.
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`               // Luôn là "Point"
	Coordinates []float64 `json:"coordinates" bson:"coordinates"` // [longitude, latitude]
}

// Producer lưu nhà sản xuất đồ uống (producers).
// Tên nhà sản xuất duy nhất không phân biệt hoa thường qua nameNormalized.
type Producer struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name           string `json:"name" bson:"name"`                       // Tên hiển thị
	NameNormalized string `json:"-" bson:"nameNormalized" index:"unique"` // Khóa duy nhất: lowercase + trim của Name
	Description    string `json:"description,omitempty" bson:"description,omitempty"`

	// Địa chỉ
	City    string    `json:"city,omitempty" bson:"city,omitempty"`
	State   string    `json:"state,omitempty" bson:"state,omitempty"`
	Country string    `json:"country,omitempty" bson:"country,omitempty"`
	Location *GeoPoint `json:"location,omitempty" bson:"location,omitempty"` // Tọa độ (GeoJSON Point)

	// Quan hệ: Product tham chiếu qua producerId — không cho xóa khi còn sản phẩm trực thuộc
	_Relationships struct{} `relationship:"collection:products,field:producerId,label:products,message:Không thể xóa nhà sản xuất vì có %d sản phẩm trực thuộc. Vui lòng xóa các sản phẩm trước."`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt" index:"single:1"`
}
