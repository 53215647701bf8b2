// Package geohdl - Handler tra cứu địa lý.
package geohdl

import (
	"github.com/gofiber/fiber/v3"

	"beer_inventory/config"
	geosvc "beer_inventory/internal/api/geo/service"
	"beer_inventory/internal/api/middleware"
	"beer_inventory/internal/common"
)

// GeoHandler xử lý các request tra cứu quốc gia/bang/thành phố.
type GeoHandler struct {
	GeoService *geosvc.GeoService
}

// NewGeoHandler tạo GeoHandler mới.
func NewGeoHandler(cfg *config.Configuration) *GeoHandler {
	return &GeoHandler{
		GeoService: geosvc.NewGeoService(cfg),
	}
}

// respond trả về envelope thành công hoặc error response thống nhất.
func respond(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		middleware.HandleErrorResponse(c, err)
		return nil
	}
	return middleware.JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}

// HandleGetCountries trả về danh sách quốc gia.
func (h *GeoHandler) HandleGetCountries(c fiber.Ctx) error {
	countries, err := h.GeoService.GetCountries(c.Context())
	return respond(c, countries, err)
}

// HandleGetStates trả về danh sách bang của một quốc gia.
func (h *GeoHandler) HandleGetStates(c fiber.Ctx) error {
	countryIso2 := c.Params("countryIso2")
	if countryIso2 == "" {
		return respond(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu mã quốc gia", common.StatusBadRequest, nil))
	}
	states, err := h.GeoService.GetStates(c.Context(), countryIso2)
	return respond(c, states, err)
}

// HandleGetStateDetail trả về chi tiết một bang kèm tọa độ trung tâm.
func (h *GeoHandler) HandleGetStateDetail(c fiber.Ctx) error {
	countryIso2 := c.Params("countryIso2")
	stateIso2 := c.Params("stateIso2")
	if countryIso2 == "" || stateIso2 == "" {
		return respond(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu mã quốc gia hoặc mã bang", common.StatusBadRequest, nil))
	}
	state, err := h.GeoService.GetStateDetail(c.Context(), countryIso2, stateIso2)
	return respond(c, state, err)
}

// HandleGetCities trả về danh sách thành phố của một bang.
func (h *GeoHandler) HandleGetCities(c fiber.Ctx) error {
	countryIso2 := c.Params("countryIso2")
	stateIso2 := c.Params("stateIso2")
	if countryIso2 == "" || stateIso2 == "" {
		return respond(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu mã quốc gia hoặc mã bang", common.StatusBadRequest, nil))
	}
	cities, err := h.GeoService.GetCities(c.Context(), countryIso2, stateIso2)
	return respond(c, cities, err)
}
