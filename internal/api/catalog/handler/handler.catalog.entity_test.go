package cataloghdl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogdto "beer_inventory/internal/api/catalog/dto"
	catalogmodels "beer_inventory/internal/api/catalog/models"
	"beer_inventory/internal/global"
)

func init() {
	global.InitValidator()
}

// newCategoryTestApp dựng app với EntityHandler dùng hai closure tự cấp,
// không cần store thật — pipeline existed nằm trọn trong handler.
func newCategoryTestApp(
	create CreateFunc[catalogmodels.Category, catalogdto.CategoryCreateInput],
	update UpdateFunc[catalogmodels.Category, catalogdto.CategoryUpdateInput],
) *fiber.App {
	h := NewEntityHandler[catalogmodels.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](
		nil, "category", create, update,
	)
	app := fiber.New()
	grp := app.Group("/categories")
	grp.Post("/insert-one", h.InsertOne)
	grp.Put("/update-by-id/:id", h.UpdateById)
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// Tạo trùng tên không phải lỗi: trả về 200 cùng bản ghi hiện có và cờ alreadyExists.
func TestInsertOne_TrungKhoaTraVeBanGhiHienCo(t *testing.T) {
	existing := catalogmodels.Category{
		ID:             primitive.NewObjectID(),
		Name:           "IPA",
		NameNormalized: "ipa",
	}
	app := newCategoryTestApp(
		func(ctx context.Context, input *catalogdto.CategoryCreateInput) (*catalogmodels.Category, bool, error) {
			return &existing, true, nil
		},
		nil,
	)

	resp, err := app.Test(jsonRequest("POST", "/categories/insert-one", `{"name":"Ipa"}`))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["alreadyExists"])
	assert.Equal(t, "success", body["status"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "IPA", data["name"])
	assert.Equal(t, existing.ID.Hex(), data["id"])
}

// Tạo mới bình thường không mang cờ alreadyExists.
func TestInsertOne_TaoMoiKhongCoCoAlreadyExists(t *testing.T) {
	created := catalogmodels.Category{
		ID:             primitive.NewObjectID(),
		Name:           "Stout",
		NameNormalized: "stout",
	}
	app := newCategoryTestApp(
		func(ctx context.Context, input *catalogdto.CategoryCreateInput) (*catalogmodels.Category, bool, error) {
			return &created, false, nil
		},
		nil,
	)

	resp, err := app.Test(jsonRequest("POST", "/categories/insert-one", `{"name":"Stout"}`))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	_, hasFlag := body["alreadyExists"]
	assert.False(t, hasFlag)
	assert.Equal(t, "success", body["status"])
}

// Cập nhật sang tên đang thuộc bản ghi KHÁC: chuyển hướng về bản ghi đang giữ tên,
// không ghi gì cả.
func TestUpdateById_TrungKhoaBanGhiKhacChuyenHuong(t *testing.T) {
	holder := catalogmodels.Category{
		ID:             primitive.NewObjectID(),
		Name:           "Porter",
		NameNormalized: "porter",
	}
	targetID := primitive.NewObjectID()
	var gotID primitive.ObjectID

	app := newCategoryTestApp(
		nil,
		func(ctx context.Context, id primitive.ObjectID, input *catalogdto.CategoryUpdateInput) (*catalogmodels.Category, bool, error) {
			gotID = id
			return &holder, true, nil
		},
	)

	resp, err := app.Test(jsonRequest("PUT", "/categories/update-by-id/"+targetID.Hex(), `{"name":"Porter"}`))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, targetID, gotID)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["alreadyExists"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, holder.ID.Hex(), data["id"])
}

// Cập nhật giữ nguyên khóa của chính mình luôn được phép (loại trừ chính nó
// khi kiểm tra trùng) — response thành công thường, không có cờ alreadyExists.
func TestUpdateById_GiuKhoaCuaChinhMinhDuocPhep(t *testing.T) {
	selfID := primitive.NewObjectID()
	self := catalogmodels.Category{
		ID:             selfID,
		Name:           "Lager",
		NameNormalized: "lager",
	}
	app := newCategoryTestApp(
		nil,
		func(ctx context.Context, id primitive.ObjectID, input *catalogdto.CategoryUpdateInput) (*catalogmodels.Category, bool, error) {
			return &self, false, nil
		},
	)

	resp, err := app.Test(jsonRequest("PUT", "/categories/update-by-id/"+selfID.Hex(), `{"name":"Lager"}`))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	_, hasFlag := body["alreadyExists"]
	assert.False(t, hasFlag)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, selfID.Hex(), data["id"])
}
