// Package catalogsvc - Service biến thể đóng gói (variants).
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

// VariantService xử lý nghiệp vụ biến thể với khóa duy nhất
// (productId, containerTypeNormalized, volumeOz, unitCount).
type VariantService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Variant]
}

// NewVariantService tạo VariantService mới.
func NewVariantService() (*VariantService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Variants)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Variants, common.ErrNotFound)
	}
	return &VariantService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Variant](coll),
	}, nil
}

// variantKey là khóa duy nhất của một biến thể.
type variantKey struct {
	ProductID               primitive.ObjectID
	ContainerTypeNormalized string
	VolumeOz                float64
	UnitCount               int
}

// findByKey tìm biến thể theo khóa đóng gói, loại trừ excludeID nếu khác Nil.
func (s *VariantService) findByKey(ctx context.Context, key variantKey, excludeID primitive.ObjectID) (*catalogmodels.Variant, error) {
	filter := bson.M{
		"productId":                         key.ProductID,
		"packaging.containerTypeNormalized": key.ContainerTypeNormalized,
		"packaging.volumeOz":                key.VolumeOz,
		"packaging.unitCount":               key.UnitCount,
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

// CreateVariant tạo biến thể mới. VolumeMl được suy ra từ VolumeOz tại đây.
// Trùng khóa đóng gói trả về bản ghi hiện có với existed = true.
func (s *VariantService) CreateVariant(ctx context.Context, input *catalogdto.VariantCreateInput) (*catalogmodels.Variant, bool, error) {
	productID := utility.String2ObjectID(input.ProductID)
	key := variantKey{
		ProductID:               productID,
		ContainerTypeNormalized: NormalizeName(input.Packaging.ContainerType),
		VolumeOz:                input.Packaging.VolumeOz,
		UnitCount:               input.Packaging.UnitCount,
	}

	existing, err := s.findByKey(ctx, key, primitive.NilObjectID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, true, nil
	}

	stock := 0
	if input.Stock != nil {
		stock = *input.Stock
	}
	price := 0.0
	if input.Price != nil {
		price = *input.Price
	}

	doc := catalogmodels.Variant{
		ProductID: productID,
		Packaging: catalogmodels.VariantPackaging{
			ContainerType:           input.Packaging.ContainerType,
			ContainerTypeNormalized: key.ContainerTypeNormalized,
			VolumeOz:                key.VolumeOz,
			VolumeMl:                OzToMl(key.VolumeOz),
			UnitCount:               key.UnitCount,
		},
		Stock: stock,
		Price: price,
	}
	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		if isDuplicateKeyErr(err) {
			winner, findErr := s.findByKey(ctx, key, primitive.NilObjectID)
			if findErr == nil && winner != nil {
				return winner, true, nil
			}
		}
		return nil, false, err
	}
	return &created, false, nil
}

// UpdateVariant cập nhật biến thể theo ID. Khóa được tính trên dữ liệu SAU update
// (field không gửi lấy từ document hiện tại); VolumeMl tính lại khi VolumeOz đổi.
func (s *VariantService) UpdateVariant(ctx context.Context, id primitive.ObjectID, input *catalogdto.VariantUpdateInput) (*catalogmodels.Variant, bool, error) {
	current, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, false, err
	}

	// Khóa sau update
	key := variantKey{
		ProductID:               current.ProductID,
		ContainerTypeNormalized: current.Packaging.ContainerTypeNormalized,
		VolumeOz:                current.Packaging.VolumeOz,
		UnitCount:               current.Packaging.UnitCount,
	}
	if input.ProductID != "" {
		key.ProductID = utility.String2ObjectID(input.ProductID)
	}

	set := bson.M{}
	if input.ProductID != "" {
		set["productId"] = key.ProductID
	}
	if input.Packaging != nil {
		if input.Packaging.ContainerType != "" {
			key.ContainerTypeNormalized = NormalizeName(input.Packaging.ContainerType)
			set["packaging.containerType"] = input.Packaging.ContainerType
			set["packaging.containerTypeNormalized"] = key.ContainerTypeNormalized
		}
		if input.Packaging.VolumeOz != nil {
			key.VolumeOz = *input.Packaging.VolumeOz
			set["packaging.volumeOz"] = key.VolumeOz
			set["packaging.volumeMl"] = OzToMl(key.VolumeOz)
		}
		if input.Packaging.UnitCount != nil {
			key.UnitCount = *input.Packaging.UnitCount
			set["packaging.unitCount"] = key.UnitCount
		}
	}
	if input.Stock != nil {
		set["stock"] = *input.Stock
	}
	if input.Price != nil {
		set["price"] = *input.Price
	}

	holder, err := s.findByKey(ctx, key, id)
	if err != nil {
		return nil, false, err
	}
	if holder != nil {
		return holder, true, nil
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		if isDuplicateKeyErr(err) {
			winner, findErr := s.findByKey(ctx, key, id)
			if findErr == nil && winner != nil {
				return winner, true, nil
			}
		}
		return nil, false, err
	}
	return &updated, false, nil
}
