// Package cataloghdl - Handler nhà sản xuất.
package cataloghdl

import (
	"fmt"

	catalogdto "beer_inventory/internal/api/catalog/dto"
	catalogmodels "beer_inventory/internal/api/catalog/models"
	catalogsvc "beer_inventory/internal/api/catalog/service"
)

// ProducerHandler xử lý request cho nhà sản xuất.
type ProducerHandler struct {
	*EntityHandler[catalogmodels.Producer, catalogdto.ProducerCreateInput, catalogdto.ProducerUpdateInput]
	ProducerService *catalogsvc.ProducerService
}

// NewProducerHandler tạo ProducerHandler mới.
func NewProducerHandler() (*ProducerHandler, error) {
	svc, err := catalogsvc.NewProducerService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProducerService: %w", err)
	}
	return &ProducerHandler{
		EntityHandler: NewEntityHandler(
			svc,
			"producer",
			svc.CreateProducer,
			svc.UpdateProducer,
		),
		ProducerService: svc,
	}, nil
}
