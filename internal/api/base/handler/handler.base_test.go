package basehdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseSortOrdered_GiuThuTuKey(t *testing.T) {
	// map của Go không giữ thứ tự, parseSortOrdered phải đọc lại từ JSON gốc
	optionsJSON := `{"sort":{"createdAt":-1,"name":1,"abv":-1}}`
	sortBson := parseSortOrdered(optionsJSON)

	expected := bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "name", Value: 1},
		{Key: "abv", Value: -1},
	}
	assert.Equal(t, expected, sortBson)
}

func TestParseSortOrdered_BoQuaGiaTriKhongHopLe(t *testing.T) {
	// Chỉ chấp nhận 1 hoặc -1, giá trị khác bị bỏ qua
	sortBson := parseSortOrdered(`{"sort":{"name":2,"abv":1,"stock":"asc"}}`)
	assert.Equal(t, bson.D{{Key: "abv", Value: 1}}, sortBson)
}

func TestParseSortOrdered_KhongCoSort(t *testing.T) {
	assert.Empty(t, parseSortOrdered(`{"limit":10}`))
	assert.Empty(t, parseSortOrdered(`không phải json`))
}

func TestNormalizeFilter_ChuyenIdFieldThanhObjectID(t *testing.T) {
	h := NewBaseHandler[struct{}, struct{}, struct{}](nil)

	oid := primitive.NewObjectID()
	filter := map[string]interface{}{
		"producerId": oid.Hex(),
		"name":       "ipa", // không phải ID field, giữ nguyên string
	}

	normalized := h.normalizeFilter(filter)
	assert.Equal(t, oid, normalized["producerId"])
	assert.Equal(t, "ipa", normalized["name"])
}

func TestNormalizeFilter_ExtendedJSONVaOperator(t *testing.T) {
	h := NewBaseHandler[struct{}, struct{}, struct{}](nil)

	oid := primitive.NewObjectID()
	filter := map[string]interface{}{
		"_id": map[string]interface{}{"$oid": oid.Hex()},
		"categoryId": map[string]interface{}{
			"$in": []interface{}{oid.Hex()},
		},
	}

	normalized := h.normalizeFilter(filter)
	assert.Equal(t, oid, normalized["_id"])

	inClause := normalized["categoryId"].(map[string]interface{})["$in"].([]interface{})
	assert.Equal(t, oid, inClause[0])
}

func TestValidateFilter_ChanFieldNhayCam(t *testing.T) {
	h := NewBaseHandler[struct{}, struct{}, struct{}](nil)

	err := h.validateFilter(map[string]interface{}{"secret": "x"})
	assert.Error(t, err, "field 'secret' phải bị cấm filter")

	err = h.validateFilter(map[string]interface{}{
		"name": map[string]interface{}{"$where": "1"},
	})
	assert.Error(t, err, "operator $where phải bị cấm")

	err = h.validateFilter(map[string]interface{}{
		"abv": map[string]interface{}{"$gte": 5},
	})
	assert.NoError(t, err)
}

type transformTestModel struct {
	Name  string
	Stock int
	Note  string
}

type transformTestInput struct {
	Name  string
	Stock int
	Extra string // không có trong model, phải bị bỏ qua
}

func TestTransformInputToModel_CopyFieldCungTen(t *testing.T) {
	input := &transformTestInput{Name: "Saison", Stock: 24, Extra: "bỏ qua"}

	model, err := transformInputToModel[transformTestModel](input)
	assert.NoError(t, err)
	assert.Equal(t, "Saison", model.Name)
	assert.Equal(t, 24, model.Stock)
	assert.Empty(t, model.Note)
}
