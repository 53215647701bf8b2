// Package dto - DTO cho Variant.
package dto

// VariantPackagingInput input quy cách đóng gói.
// VolumeMl không nhận từ client — luôn suy ra từ VolumeOz lúc ghi.
type VariantPackagingInput struct {
	ContainerType string  `json:"containerType" validate:"required,min=1,max=50,no_xss"`
	VolumeOz      float64 `json:"volumeOz" validate:"required,gt=0"`
	UnitCount     int     `json:"unitCount" validate:"required,gte=1"`
}

// VariantCreateInput input tạo biến thể đóng gói mới.
type VariantCreateInput struct {
	ProductID string                 `json:"productId" validate:"required,len=24,exists=products"`
	Packaging *VariantPackagingInput `json:"packaging" validate:"required"`
	Stock     *int                   `json:"stock,omitempty" validate:"omitempty,gte=0"` // Mặc định 0 nếu không gửi
	Price     *float64               `json:"price,omitempty" validate:"omitempty,gte=0"`
}

// VariantUpdateInput input cập nhật biến thể. Mọi field đều optional.
type VariantUpdateInput struct {
	ProductID string                       `json:"productId,omitempty" validate:"omitempty,len=24,exists=products"`
	Packaging *VariantPackagingUpdateInput `json:"packaging,omitempty" validate:"omitempty"`
	Stock     *int                         `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Price     *float64                     `json:"price,omitempty" validate:"omitempty,gte=0"`
}

// VariantPackagingUpdateInput input cập nhật quy cách đóng gói, từng field optional.
type VariantPackagingUpdateInput struct {
	ContainerType string   `json:"containerType,omitempty" validate:"omitempty,min=1,max=50,no_xss"`
	VolumeOz      *float64 `json:"volumeOz,omitempty" validate:"omitempty,gt=0"`
	UnitCount     *int     `json:"unitCount,omitempty" validate:"omitempty,gte=1"`
}
