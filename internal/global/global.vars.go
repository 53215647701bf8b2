package global

import (
	"beer_inventory/config"
	"beer_inventory/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Catalog_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Catalog_CollectionName struct {
	Producers  string // Tên collection cho nhà sản xuất
	Categories string // Tên collection cho dòng đồ uống
	Products   string // Tên collection cho sản phẩm
	Variants   string // Tên collection cho biến thể đóng gói
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames = MongoDB_Catalog_CollectionName{
	Producers:  "producers",
	Categories: "categories",
	Products:   "products",
	Variants:   "variants",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
