package main

import (
	"context"
	"time"

	catalogdto "beer_inventory/internal/api/catalog/dto"
	catalogsvc "beer_inventory/internal/api/catalog/service"
	"beer_inventory/internal/global"
	"beer_inventory/internal/logger"
)

// defaultCategories là các dòng đồ uống mặc định được seed khi chạy INITMODE.
var defaultCategories = []string{
	"IPA",
	"Stout",
	"Lager",
	"Pilsner",
	"Porter",
	"Ale",
	"Wheat Beer",
	"Sour Beer",
	"Belgian Beer",
	"Pale Ale",
}

// InitDefaultData seed dữ liệu mặc định cho catalog.
// Idempotent: category đã tồn tại (so khớp tên không phân biệt hoa thường)
// sẽ được giữ nguyên, không tạo bản ghi trùng.
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.MongoDB_ServerConfig.InitMode {
		log.Info("INITMODE tắt, bỏ qua seed dữ liệu mặc định")
		return
	}

	log.Info("Bắt đầu seed dữ liệu mặc định...")

	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		log.Fatalf("Failed to initialize category service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, skipped := 0, 0
	for _, name := range defaultCategories {
		input := &catalogdto.CategoryCreateInput{Name: name}
		_, existed, err := categoryService.CreateCategory(ctx, input)
		if err != nil {
			log.WithError(err).Errorf("Không thể seed category %s", name)
			continue
		}
		if existed {
			skipped++
		} else {
			created++
		}
	}

	log.WithFields(map[string]interface{}{
		"created": created,
		"skipped": skipped,
	}).Info("Seed dữ liệu mặc định hoàn tất")
}
