// Package catalogsvc - Service danh mục (categories).
package catalogsvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "beer_inventory/internal/api/base/service"
	catalogdto "beer_inventory/internal/api/catalog/dto"
	catalogmodels "beer_inventory/internal/api/catalog/models"
	"beer_inventory/internal/common"
	"beer_inventory/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryService xử lý nghiệp vụ danh mục: tạo/cập nhật với kiểm tra trùng tên.
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Category]
}

// NewCategoryService tạo CategoryService mới.
func NewCategoryService() (*CategoryService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Categories, common.ErrNotFound)
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Category](coll),
	}, nil
}

// findByNormalizedName tìm danh mục theo khóa chuẩn hóa, loại trừ excludeID nếu khác Nil.
func (s *CategoryService) findByNormalizedName(ctx context.Context, normalized string, excludeID primitive.ObjectID) (*catalogmodels.Category, error) {
	filter := bson.M{"nameNormalized": normalized}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	existing, err := s.FindOne(ctx, filter, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &existing, nil
}

// CreateCategory tạo danh mục mới. Nếu đã có danh mục cùng tên (không phân biệt
// hoa thường), trả về bản ghi hiện có với existed = true thay vì báo lỗi.
func (s *CategoryService) CreateCategory(ctx context.Context, input *catalogdto.CategoryCreateInput) (*catalogmodels.Category, bool, error) {
	normalized := NormalizeName(input.Name)

	existing, err := s.findByNormalizedName(ctx, normalized, primitive.NilObjectID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, true, nil
	}

	doc := catalogmodels.Category{
		Name:           input.Name,
		NameNormalized: normalized,
		Description:    input.Description,
	}
	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		// Race: request khác vừa insert cùng khóa — unique index chặn lại,
		// lấy bản ghi thắng cuộc và trả về như trùng thông thường
		if isDuplicateKeyErr(err) {
			winner, findErr := s.findByNormalizedName(ctx, normalized, primitive.NilObjectID)
			if findErr == nil && winner != nil {
				return winner, true, nil
			}
		}
		return nil, false, err
	}
	return &created, false, nil
}

// UpdateCategory cập nhật danh mục theo ID. Nếu tên mới trùng với danh mục KHÁC
// (loại trừ chính nó), trả về danh mục đang giữ tên đó với existed = true,
// không ghi gì cả.
func (s *CategoryService) UpdateCategory(ctx context.Context, id primitive.ObjectID, input *catalogdto.CategoryUpdateInput) (*catalogmodels.Category, bool, error) {
	set := bson.M{}
	if input.Name != "" {
		normalized := NormalizeName(input.Name)
		holder, err := s.findByNormalizedName(ctx, normalized, id)
		if err != nil {
			return nil, false, err
		}
		if holder != nil {
			return holder, true, nil
		}
		set["name"] = input.Name
		set["nameNormalized"] = normalized
	}
	if input.Description != "" {
		set["description"] = input.Description
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		if isDuplicateKeyErr(err) && input.Name != "" {
			winner, findErr := s.findByNormalizedName(ctx, NormalizeName(input.Name), id)
			if findErr == nil && winner != nil {
				return winner, true, nil
			}
		}
		return nil, false, err
	}
	return &updated, false, nil
}
