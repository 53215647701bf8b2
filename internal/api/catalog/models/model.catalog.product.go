// Package models - Product thuộc domain catalog (products).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product lưu sản phẩm đồ uống (products).
// Khóa duy nhất là cặp (nameNormalized, producerId): hai nhà sản xuất khác nhau
// được phép có sản phẩm trùng tên, trong cùng một nhà sản xuất thì không.
type Product struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name           string `json:"name" bson:"name"`
	NameNormalized string `json:"-" bson:"nameNormalized" index:"compound:product_name_producer_unique"` // Thành phần 1 của khóa duy nhất

	ProducerID primitive.ObjectID `json:"producerId" bson:"producerId" index:"single:1,compound:product_name_producer_unique"` // Thành phần 2 của khóa duy nhất
	CategoryID primitive.ObjectID `json:"categoryId" bson:"categoryId" index:"single:1"`

	Abv         float64  `json:"abv" bson:"abv"`                                       // Nồng độ cồn %, 0–100
	Ibu         *float64 `json:"ibu,omitempty" bson:"ibu,omitempty"`                   // Độ đắng, không bắt buộc
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Flavors     []string `json:"flavors,omitempty" bson:"flavors,omitempty"` // Giữ nguyên thứ tự người dùng nhập

	// Quan hệ: Variant tham chiếu qua productId — không cho xóa khi còn biến thể trực thuộc
	_Relationships struct{} `relationship:"collection:variants,field:productId,label:variants,message:Không thể xóa sản phẩm vì có %d biến thể đóng gói trực thuộc. Vui lòng xóa các biến thể trước."`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt" index:"single:1"`
}
