// Package cataloghdl - Handler sản phẩm.
package cataloghdl

import (
	"fmt"

	catalogdto "beer_inventory/internal/api/catalog/dto"
	catalogmodels "beer_inventory/internal/api/catalog/models"
	catalogsvc "beer_inventory/internal/api/catalog/service"
)

// ProductHandler xử lý request cho sản phẩm.
type ProductHandler struct {
	*EntityHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	ProductService *catalogsvc.ProductService
}

// NewProductHandler tạo ProductHandler mới.
func NewProductHandler() (*ProductHandler, error) {
	svc, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProductService: %w", err)
	}
	return &ProductHandler{
		EntityHandler: NewEntityHandler(
			svc,
			"product",
			svc.CreateProduct,
			svc.UpdateProduct,
		),
		ProductService: svc,
	}, nil
}
