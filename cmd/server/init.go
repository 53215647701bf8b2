package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"beer_inventory/config"
	catalogmodels "beer_inventory/internal/api/catalog/models"
	"beer_inventory/internal/api/events"
	"beer_inventory/internal/database"
	"beer_inventory/internal/global"
	"beer_inventory/internal/logger"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initAuditTrail()       // Đăng ký audit log cho mọi thay đổi dữ liệu
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, no_sql_injection, exists, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection theo index tags trên model.
	// Các unique index ở đây là chốt chặn race tạo trùng — thiếu index là phải dừng.
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	indexModels := map[string]interface{}{
		global.MongoDB_ColNames.Producers:  catalogmodels.Producer{},
		global.MongoDB_ColNames.Categories: catalogmodels.Category{},
		global.MongoDB_ColNames.Products:   catalogmodels.Product{},
		global.MongoDB_ColNames.Variants:   catalogmodels.Variant{},
	}
	for colName, model := range indexModels {
		if err := database.CreateIndexes(context.TODO(), db.Collection(colName), model); err != nil {
			logrus.Fatalf("Failed to create indexes for collection %s: %v", colName, err)
		}
	}

	// Index trên nested fields và collation không định nghĩa được qua tags
	if err := database.CreateCatalogAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Fatalf("Failed to create catalog additional indexes: %v", err)
	}
	logrus.Info("Created catalog indexes")
}

// initAuditTrail đăng ký handler ghi audit log cho mọi thay đổi dữ liệu catalog.
// Handler chạy bất đồng bộ sau mỗi thao tác CRUD thành công.
func initAuditTrail() {
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"collection": e.CollectionName,
			"operation":  e.Operation,
		}).Info("Dữ liệu thay đổi")
	})
	logrus.Info("Registered audit trail handler")
}
