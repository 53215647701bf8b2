// Package catalogsvc - Service nhà sản xuất (producers).
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

// ProducerService xử lý nghiệp vụ nhà sản xuất: tạo/cập nhật với kiểm tra trùng tên.
type ProducerService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Producer]
}

// NewProducerService tạo ProducerService mới.
func NewProducerService() (*ProducerService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Producers)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Producers, common.ErrNotFound)
	}
	return &ProducerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Producer](coll),
	}, nil
}

// toGeoPoint chuyển GeoPointInput thành GeoJSON Point, bỏ qua input rỗng.
func toGeoPoint(input *catalogdto.GeoPointInput) *catalogmodels.GeoPoint {
	if input == nil || len(input.Coordinates) != 2 {
		return nil
	}
	return &catalogmodels.GeoPoint{
		Type:        "Point",
		Coordinates: []float64{input.Coordinates[0], input.Coordinates[1]},
	}
}

// findByNormalizedName tìm nhà sản xuất theo khóa chuẩn hóa, loại trừ excludeID nếu khác Nil.
func (s *ProducerService) findByNormalizedName(ctx context.Context, normalized string, excludeID primitive.ObjectID) (*catalogmodels.Producer, error) {
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

// CreateProducer tạo nhà sản xuất mới. Trùng tên (không phân biệt hoa thường)
// trả về bản ghi hiện có với existed = true.
func (s *ProducerService) CreateProducer(ctx context.Context, input *catalogdto.ProducerCreateInput) (*catalogmodels.Producer, bool, error) {
	normalized := NormalizeName(input.Name)

	existing, err := s.findByNormalizedName(ctx, normalized, primitive.NilObjectID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, true, nil
	}

	doc := catalogmodels.Producer{
		Name:           input.Name,
		NameNormalized: normalized,
		Description:    input.Description,
		City:           input.City,
		State:          input.State,
		Country:        input.Country,
		Location:       toGeoPoint(input.Location),
	}
	created, err := s.InsertOne(ctx, doc)
	if err != nil {
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

// UpdateProducer cập nhật nhà sản xuất theo ID với loại trừ chính mình khi kiểm tra trùng.
func (s *ProducerService) UpdateProducer(ctx context.Context, id primitive.ObjectID, input *catalogdto.ProducerUpdateInput) (*catalogmodels.Producer, bool, error) {
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
	if input.City != "" {
		set["city"] = input.City
	}
	if input.State != "" {
		set["state"] = input.State
	}
	if input.Country != "" {
		set["country"] = input.Country
	}
	if point := toGeoPoint(input.Location); point != nil {
		set["location"] = point
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
