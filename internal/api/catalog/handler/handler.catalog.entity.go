// Package cataloghdl - Handler cho domain catalog.
// EntityHandler là pipeline chung cho cả bốn entity: parse → validate → service
// (kiểm tra trùng) → store. Mỗi entity chỉ khác nhau ở hai closure create/update.
package cataloghdl

import (
	"context"
	"fmt"
	"reflect"

	basehdl "beer_inventory/internal/api/base/handler"
	basesvc "beer_inventory/internal/api/base/service"
	"beer_inventory/internal/common"
	"beer_inventory/internal/logger"
	"beer_inventory/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateFunc tạo entity mới; existed = true nghĩa là đã có bản ghi trùng khóa,
// kết quả trả về là bản ghi hiện có.
type CreateFunc[T any, CreateInput any] func(ctx context.Context, input *CreateInput) (*T, bool, error)

// UpdateFunc cập nhật entity theo ID với cùng semantics existed như CreateFunc.
type UpdateFunc[T any, UpdateInput any] func(ctx context.Context, id primitive.ObjectID, input *UpdateInput) (*T, bool, error)

// EntityHandler xử lý request cho một entity catalog. Các route đọc dùng
// nguyên CRUD của BaseHandler; InsertOne và UpdateById được override để đi qua
// pipeline kiểm tra trùng lặp và trả về bản ghi hiện có khi trùng (HTTP 200).
type EntityHandler[T any, CreateInput any, UpdateInput any] struct {
	*basehdl.BaseHandler[T, CreateInput, UpdateInput]
	resourceType string
	create       CreateFunc[T, CreateInput]
	update       UpdateFunc[T, UpdateInput]
}

// NewEntityHandler tạo EntityHandler với service và hai closure create/update.
func NewEntityHandler[T any, CreateInput any, UpdateInput any](
	baseService basesvc.BaseServiceMongo[T],
	resourceType string,
	create CreateFunc[T, CreateInput],
	update UpdateFunc[T, UpdateInput],
) *EntityHandler[T, CreateInput, UpdateInput] {
	return &EntityHandler[T, CreateInput, UpdateInput]{
		BaseHandler:  basehdl.NewBaseHandler[T, CreateInput, UpdateInput](baseService),
		resourceType: resourceType,
		create:       create,
		update:       update,
	}
}

// entityID lấy hex ID của entity cho audit log, rỗng nếu không có field ID.
func entityID(entity interface{}) string {
	val := reflect.ValueOf(entity)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return ""
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return ""
	}
	f := val.FieldByName("ID")
	if !f.IsValid() {
		return ""
	}
	if id, ok := f.Interface().(primitive.ObjectID); ok {
		return utility.ObjectID2String(id)
	}
	return ""
}

// InsertOne tạo entity mới qua pipeline kiểm tra trùng lặp.
// Trùng khóa không phải lỗi: trả về 200 với bản ghi hiện có và cờ alreadyExists.
func (h *EntityHandler[T, CreateInput, UpdateInput]) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input CreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, existed, err := h.create(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if existed {
			logger.LogCRUD("redirect_existing", h.resourceType, entityID(data), c, nil)
			basehdl.JSONExisting(c, data)
			return nil
		}

		h.HandleResponse(c, data, nil)
		return nil
	})
}

// UpdateById cập nhật entity theo ID qua pipeline kiểm tra trùng lặp
// (loại trừ chính nó — update giữ nguyên khóa luôn được phép).
func (h *EntityHandler[T, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"ID không được để trống trong URL params",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		var input UpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu cập nhật không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, existed, err := h.update(c.Context(), utility.String2ObjectID(id), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if existed {
			logger.LogCRUD("redirect_existing", h.resourceType, entityID(data), c, nil)
			basehdl.JSONExisting(c, data)
			return nil
		}

		h.HandleResponse(c, data, nil)
		return nil
	})
}
