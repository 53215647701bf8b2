package basesvc

import (
	"context"
	"fmt"

	"beer_inventory/internal/common"
	"beer_inventory/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RelationshipCheck định nghĩa một quan hệ cần kiểm tra trước khi xóa
type RelationshipCheck struct {
	CollectionName string
	FieldName      string
	Label          string // Tên hiển thị của loại bản ghi phụ thuộc (mặc định: tên collection)
	ErrorMessage   string
	Optional       bool
}

// DependentRef mô tả một bản ghi đang tham chiếu tới record chuẩn bị xóa.
// Trả về trong Details của error để client biết chính xác phải xử lý những gì.
type DependentRef struct {
	Collection string `json:"collection" bson:"collection"`
	ID         string `json:"id" bson:"id"`
	Name       string `json:"name,omitempty" bson:"name,omitempty"`
}

// dependentListLimit giới hạn số bản ghi phụ thuộc liệt kê trong một error
const dependentListLimit = 100

// ListDependents liệt kê các bản ghi đang tham chiếu tới recordID theo danh sách checks.
// Mỗi bản ghi trả về id và name (nếu có) để client hiển thị.
func ListDependents(ctx context.Context, recordID primitive.ObjectID, checks []RelationshipCheck) ([]DependentRef, error) {
	var refs []DependentRef

	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Không tìm thấy collection '%s' để kiểm tra quan hệ", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}

		label := check.Label
		if label == "" {
			label = check.CollectionName
		}

		filter := bson.M{check.FieldName: recordID}
		opts := options.Find().
			SetProjection(bson.M{"_id": 1, "name": 1}).
			SetLimit(dependentListLimit)

		cursor, err := collection.Find(ctx, filter, opts)
		if err != nil {
			return nil, common.ConvertMongoError(err)
		}

		var docs []struct {
			ID   primitive.ObjectID `bson:"_id"`
			Name string             `bson:"name"`
		}
		if err := cursor.All(ctx, &docs); err != nil {
			return nil, common.ConvertMongoError(err)
		}

		for _, doc := range docs {
			refs = append(refs, DependentRef{
				Collection: label,
				ID:         doc.ID.Hex(),
				Name:       doc.Name,
			})
		}
	}

	return refs, nil
}

// CheckRelationshipExists kiểm tra có record nào trong collection khác đang trỏ tới record này không.
// Nếu có, trả về error BIZ_002 với danh sách đầy đủ các bản ghi phụ thuộc trong Details —
// record chỉ xóa được khi toàn bộ bản ghi tham chiếu đã được xử lý trước.
func CheckRelationshipExists(ctx context.Context, recordID primitive.ObjectID, checks []RelationshipCheck) error {
	refs, err := ListDependents(ctx, recordID, checks)
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		return nil
	}

	// Ghép message: ưu tiên message của check đầu tiên có bản ghi phụ thuộc
	errorMsg := ""
	for _, check := range checks {
		label := check.Label
		if label == "" {
			label = check.CollectionName
		}
		count := 0
		for _, ref := range refs {
			if ref.Collection == label {
				count++
			}
		}
		if count == 0 {
			continue
		}
		if check.ErrorMessage != "" {
			errorMsg = fmt.Sprintf(check.ErrorMessage, count)
		} else {
			errorMsg = fmt.Sprintf("Không thể xóa vì có %d bản ghi trong collection '%s' đang tham chiếu tới bản ghi này", count, check.CollectionName)
		}
		break
	}

	return common.NewError(common.ErrCodeBusinessRelationship, errorMsg, common.StatusConflict, refs)
}
