// Package router đăng ký các route tra cứu địa lý (chỉ đọc, không cần secret).
package router

import (
	"github.com/gofiber/fiber/v3"

	geohdl "beer_inventory/internal/api/geo/handler"
	apirouter "beer_inventory/internal/api/router"
	"beer_inventory/internal/global"
)

// Register đăng ký các route geo lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler := geohdl.NewGeoHandler(global.MongoDB_ServerConfig)

	locations := v1.Group("/locations")
	locations.Get("/countries", handler.HandleGetCountries)
	locations.Get("/countries/:countryIso2/states", handler.HandleGetStates)
	locations.Get("/countries/:countryIso2/states/:stateIso2", handler.HandleGetStateDetail)
	locations.Get("/countries/:countryIso2/states/:stateIso2/cities", handler.HandleGetCities)

	return nil
}
