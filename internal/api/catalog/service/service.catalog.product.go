// Package catalogsvc - Service sản phẩm (products).
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
	"beer_inventory/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductService xử lý nghiệp vụ sản phẩm với khóa duy nhất (nameNormalized, producerId).
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Product]
}

// NewProductService tạo ProductService mới.
func NewProductService() (*ProductService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Products, common.ErrNotFound)
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Product](coll),
	}, nil
}

// findByNameAndProducer tìm sản phẩm theo khóa (nameNormalized, producerId),
// loại trừ excludeID nếu khác Nil.
func (s *ProductService) findByNameAndProducer(ctx context.Context, normalized string, producerID primitive.ObjectID, excludeID primitive.ObjectID) (*catalogmodels.Product, error) {
	filter := bson.M{
		"nameNormalized": normalized,
		"producerId":     producerID,
	}
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

// CreateProduct tạo sản phẩm mới. Nếu nhà sản xuất đã có sản phẩm cùng tên
// (không phân biệt hoa thường), trả về bản ghi hiện có với existed = true.
func (s *ProductService) CreateProduct(ctx context.Context, input *catalogdto.ProductCreateInput) (*catalogmodels.Product, bool, error) {
	normalized := NormalizeName(input.Name)
	producerID := utility.String2ObjectID(input.ProducerID)
	categoryID := utility.String2ObjectID(input.CategoryID)

	existing, err := s.findByNameAndProducer(ctx, normalized, producerID, primitive.NilObjectID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, true, nil
	}

	doc := catalogmodels.Product{
		Name:           input.Name,
		NameNormalized: normalized,
		ProducerID:     producerID,
		CategoryID:     categoryID,
		Abv:            *input.Abv,
		Ibu:            input.Ibu,
		Description:    input.Description,
		Flavors:        input.Flavors,
	}
	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		if isDuplicateKeyErr(err) {
			winner, findErr := s.findByNameAndProducer(ctx, normalized, producerID, primitive.NilObjectID)
			if findErr == nil && winner != nil {
				return winner, true, nil
			}
		}
		return nil, false, err
	}
	return &created, false, nil
}

// UpdateProduct cập nhật sản phẩm theo ID. Khóa duy nhất được tính trên dữ liệu
// SAU update (field không gửi lấy từ document hiện tại); nếu khóa mới trùng với
// sản phẩm KHÁC, trả về sản phẩm đó với existed = true, không ghi gì cả.
// Update giữ nguyên khóa của chính nó luôn được phép (loại trừ chính mình).
func (s *ProductService) UpdateProduct(ctx context.Context, id primitive.ObjectID, input *catalogdto.ProductUpdateInput) (*catalogmodels.Product, bool, error) {
	current, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, false, err
	}

	// Khóa sau update: field không gửi giữ giá trị hiện tại
	newName := current.Name
	if input.Name != "" {
		newName = input.Name
	}
	newProducerID := current.ProducerID
	if input.ProducerID != "" {
		newProducerID = utility.String2ObjectID(input.ProducerID)
	}
	normalized := NormalizeName(newName)

	holder, err := s.findByNameAndProducer(ctx, normalized, newProducerID, id)
	if err != nil {
		return nil, false, err
	}
	if holder != nil {
		return holder, true, nil
	}

	set := bson.M{}
	if input.Name != "" {
		set["name"] = input.Name
		set["nameNormalized"] = normalized
	}
	if input.ProducerID != "" {
		set["producerId"] = newProducerID
	}
	if input.CategoryID != "" {
		set["categoryId"] = utility.String2ObjectID(input.CategoryID)
	}
	if input.Abv != nil {
		set["abv"] = *input.Abv
	}
	if input.Ibu != nil {
		set["ibu"] = *input.Ibu
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if input.Flavors != nil {
		set["flavors"] = input.Flavors
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		if isDuplicateKeyErr(err) {
			winner, findErr := s.findByNameAndProducer(ctx, normalized, newProducerID, id)
			if findErr == nil && winner != nil {
				return winner, true, nil
			}
		}
		return nil, false, err
	}
	return &updated, false, nil
}
