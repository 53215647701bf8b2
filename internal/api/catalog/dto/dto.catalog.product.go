// Package dto - DTO cho Product.
package dto

// ProductCreateInput input tạo sản phẩm mới.
// Abv dùng pointer để phân biệt "không gửi" với giá trị 0 hợp lệ (0% cồn được chấp nhận).
// exists=<collection> kiểm tra document tham chiếu có tồn tại trong store.
type ProductCreateInput struct {
	Name        string   `json:"name" validate:"required,min=1,max=100,no_xss"`
	ProducerID  string   `json:"producerId" validate:"required,len=24,exists=producers"`
	CategoryID  string   `json:"categoryId" validate:"required,len=24,exists=categories"`
	Abv         *float64 `json:"abv" validate:"required,gte=0,lte=100"`
	Ibu         *float64 `json:"ibu,omitempty" validate:"omitempty,gte=0"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=2000,no_xss"`
	Flavors     []string `json:"flavors,omitempty" validate:"omitempty,dive,min=1,max=50,no_xss"`
}

// ProductUpdateInput input cập nhật sản phẩm. Mọi field đều optional.
type ProductUpdateInput struct {
	Name        string   `json:"name,omitempty" validate:"omitempty,min=1,max=100,no_xss"`
	ProducerID  string   `json:"producerId,omitempty" validate:"omitempty,len=24,exists=producers"`
	CategoryID  string   `json:"categoryId,omitempty" validate:"omitempty,len=24,exists=categories"`
	Abv         *float64 `json:"abv,omitempty" validate:"omitempty,gte=0,lte=100"`
	Ibu         *float64 `json:"ibu,omitempty" validate:"omitempty,gte=0"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=2000,no_xss"`
	Flavors     []string `json:"flavors,omitempty" validate:"omitempty,dive,min=1,max=50,no_xss"`
}
