// Package dto - DTO cho domain catalog.
// Field optional dùng pointer hoặc omitempty; số dùng đúng kiểu để lỗi ép kiểu
// JSON nổi lên thành lỗi định dạng input thay vì lặng lẽ về zero.
package dto

// CategoryCreateInput input tạo danh mục mới.
type CategoryCreateInput struct {
	Name        string `json:"name" validate:"required,min=2,max=50,no_xss"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500,no_xss"`
}

// CategoryUpdateInput input cập nhật danh mục. Mọi field đều optional.
type CategoryUpdateInput struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=2,max=50,no_xss"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500,no_xss"`
}
