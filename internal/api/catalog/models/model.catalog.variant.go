// Package models - Variant thuộc domain catalog (variants).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VariantPackaging mô tả quy cách đóng gói của một biến thể.
// VolumeMl luôn được suy ra từ VolumeOz lúc ghi (round(29.5735 × oz)),
// không bao giờ tính lại lúc đọc.
type VariantPackaging struct {
	ContainerType           string  `json:"containerType" bson:"containerType"`                     // Loại bao bì: bottle, can, keg...
	ContainerTypeNormalized string  `json:"-" bson:"containerTypeNormalized"`                       // lowercase + trim, thành phần khóa duy nhất
	VolumeOz                float64 `json:"volumeOz" bson:"volumeOz"`                               // Dung tích theo ounce
	VolumeMl                int64   `json:"volumeMl" bson:"volumeMl"`                               // Dung tích theo ml, suy ra từ VolumeOz
	UnitCount               int     `json:"unitCount" bson:"unitCount"`                             // Số đơn vị trong một pack
}

// Variant lưu biến thể đóng gói của sản phẩm (variants).
// Khóa duy nhất (productId, containerTypeNormalized, volumeOz, unitCount) được
// tạo bằng index tường minh trong internal/database (field nằm trong struct lồng
// nên không khai báo qua tag được). Variant không có bản ghi phụ thuộc, xóa tự do.
type Variant struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ProductID primitive.ObjectID `json:"productId" bson:"productId" index:"single:1"`
	Packaging VariantPackaging   `json:"packaging" bson:"packaging"`

	Stock int     `json:"stock" bson:"stock"` // Tồn kho, mặc định 0
	Price float64 `json:"price" bson:"price"` // Giá bán

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt" index:"single:1"`
}
