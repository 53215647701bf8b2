// Package cataloghdl - Handler biến thể đóng gói.
package cataloghdl

import (
	"fmt"

	catalogdto "beer_inventory/internal/api/catalog/dto"
	catalogmodels "beer_inventory/internal/api/catalog/models"
	catalogsvc "beer_inventory/internal/api/catalog/service"
)

// VariantHandler xử lý request cho biến thể đóng gói.
type VariantHandler struct {
	*EntityHandler[catalogmodels.Variant, catalogdto.VariantCreateInput, catalogdto.VariantUpdateInput]
	VariantService *catalogsvc.VariantService
}

// NewVariantHandler tạo VariantHandler mới.
func NewVariantHandler() (*VariantHandler, error) {
	svc, err := catalogsvc.NewVariantService()
	if err != nil {
		return nil, fmt.Errorf("tạo VariantService: %w", err)
	}
	return &VariantHandler{
		EntityHandler: NewEntityHandler(
			svc,
			"variant",
			svc.CreateVariant,
			svc.UpdateVariant,
		),
		VariantService: svc,
	}, nil
}
