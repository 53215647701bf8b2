// Package models - các model thuộc domain catalog (producers, categories, products, variants).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category lưu danh mục đồ uống (categories).
// Tên danh mục duy nhất không phân biệt hoa thường: nameNormalized (lowercase, trim)
// mang unique index làm chốt chặn cấp store.
type Category struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name           string `json:"name" bson:"name"`                           // Tên hiển thị, giữ nguyên hoa thường người dùng nhập
	NameNormalized string `json:"-" bson:"nameNormalized" index:"unique"`     // Khóa duy nhất: lowercase + trim của Name
	Description    string `json:"description,omitempty" bson:"description,omitempty"` // Mô tả danh mục

	// Quan hệ: Product tham chiếu qua categoryId — không cho xóa khi còn sản phẩm trực thuộc
	_Relationships struct{} `relationship:"collection:products,field:categoryId,label:products,message:Không thể xóa danh mục vì có %d sản phẩm đang thuộc danh mục này. Vui lòng chuyển hoặc xóa các sản phẩm trước."`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt" index:"single:1"`
}
