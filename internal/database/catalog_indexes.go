// Package database - Index bổ sung cho catalog (nested fields, collation) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"beer_inventory/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateCatalogAdditionalIndexes tạo các index bổ sung cho catalog.
// Gọi sau CreateIndexes của từng collection.
//
// Gồm hai nhóm:
//   - Unique compound trên nested fields của variants (khóa duy nhất
//     productId + hình thức đóng gói) — chốt chặn cấp store cho race
//     check-then-act khi hai request tạo cùng một biến thể đồng thời.
//   - Index collation primary-strength trên name của producers/products/categories
//     để sort/list không phân biệt hoa thường và dấu.
func CreateCatalogAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// Collation primary strength: bỏ qua khác biệt hoa thường và dấu
	ciCollation := &options.Collation{Locale: "en", Strength: 1}

	// variants: (productId, packaging.containerTypeNormalized, packaging.volumeOz, packaging.unitCount) unique
	variants := db.Collection(global.MongoDB_ColNames.Variants)
	if _, err := variants.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "productId", Value: 1},
			{Key: "packaging.containerTypeNormalized", Value: 1},
			{Key: "packaging.volumeOz", Value: 1},
			{Key: "packaging.unitCount", Value: 1},
		},
		Options: options.Index().SetName("variant_product_packaging_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// producers/categories/products: name với collation để hỗ trợ sort case-insensitive
	for _, colName := range []string{
		global.MongoDB_ColNames.Producers,
		global.MongoDB_ColNames.Categories,
		global.MongoDB_ColNames.Products,
	} {
		col := db.Collection(colName)
		if _, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName(colName + "_name_ci").SetCollation(ciCollation),
		}); err != nil && !isIndexExistsError(err) {
			return err
		}
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
