// Package cataloghdl - Handler danh mục.
package cataloghdl

import (
	"fmt"

	catalogdto "beer_inventory/internal/api/catalog/dto"
	catalogmodels "beer_inventory/internal/api/catalog/models"
	catalogsvc "beer_inventory/internal/api/catalog/service"
)

// CategoryHandler xử lý request cho danh mục.
type CategoryHandler struct {
	*EntityHandler[catalogmodels.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
	CategoryService *catalogsvc.CategoryService
}

// NewCategoryHandler tạo CategoryHandler mới.
func NewCategoryHandler() (*CategoryHandler, error) {
	svc, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("tạo CategoryService: %w", err)
	}
	return &CategoryHandler{
		EntityHandler: NewEntityHandler(
			svc,
			"category",
			svc.CreateCategory,
			svc.UpdateCategory,
		),
		CategoryService: svc,
	}, nil
}
