// Package router đăng ký các route thuộc domain catalog: producers, categories, products, variants.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "beer_inventory/internal/api/catalog/handler"
	"beer_inventory/internal/api/middleware"
	apirouter "beer_inventory/internal/api/router"
	"beer_inventory/internal/global"
)

// Register đăng ký tất cả route catalog lên v1.
// Mutation của producers/categories/products luôn yêu cầu secret;
// variants chỉ yêu cầu khi GATE_VARIANT_MUTATIONS bật.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	producerHandler, err := cataloghdl.NewProducerHandler()
	if err != nil {
		return fmt.Errorf("tạo ProducerHandler: %w", err)
	}
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("tạo CategoryHandler: %w", err)
	}
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("tạo ProductHandler: %w", err)
	}
	variantHandler, err := cataloghdl.NewVariantHandler()
	if err != nil {
		return fmt.Errorf("tạo VariantHandler: %w", err)
	}

	cfg := global.MongoDB_ServerConfig
	gate := middleware.RequireMutationSecret(cfg)
	gated := []fiber.Handler{gate}

	r.RegisterCRUDRoutes(v1, "/catalog/producers", producerHandler, apirouter.CatalogEntityConfig, gated)
	r.RegisterCRUDRoutes(v1, "/catalog/categories", categoryHandler, apirouter.CatalogEntityConfig, gated)
	r.RegisterCRUDRoutes(v1, "/catalog/products", productHandler, apirouter.CatalogEntityConfig, gated)

	// Variant: gate là lựa chọn cấu hình tường minh, mặc định tắt
	variantMiddlewares := []fiber.Handler{}
	if cfg.GateVariantMutations {
		variantMiddlewares = gated
	}
	r.RegisterCRUDRoutes(v1, "/catalog/variants", variantHandler, apirouter.CatalogEntityConfig, variantMiddlewares)

	return nil
}
