package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeBusinessExisting, "Bản ghi đã tồn tại", StatusConflict, map[string]string{"field": "name"})

	var appErr *Error
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrCodeBusinessExisting.Code, appErr.Code.Code)
	assert.Equal(t, StatusConflict, appErr.StatusCode)
	assert.NotNil(t, appErr.Details)
	assert.Contains(t, err.Error(), "Bản ghi đã tồn tại")
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	dupErr := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}

	converted := ConvertMongoError(dupErr)
	var appErr *Error
	assert.True(t, errors.As(converted, &appErr))
	assert.Equal(t, ErrCodeBusinessExisting.Code, appErr.Code.Code)
	assert.Equal(t, StatusConflict, appErr.StatusCode)
}

func TestConvertMongoError_GiuNguyenLoiDaPhanLoai(t *testing.T) {
	// Lỗi đã được phân loại không bị convert lại
	assert.Equal(t, ErrNotFound, ConvertMongoError(ErrNotFound))

	// Kể cả khi bị wrap
	wrapped := fmt.Errorf("tìm producer: %w", ErrNotFound)
	assert.Equal(t, wrapped, ConvertMongoError(wrapped))
}

func TestConvertMongoError_Nil(t *testing.T) {
	assert.Nil(t, ConvertMongoError(nil))
}

func TestIsDuplicateKey(t *testing.T) {
	assert.False(t, IsDuplicateKey(nil))
	assert.False(t, IsDuplicateKey(errors.New("lỗi khác")))
	assert.True(t, IsDuplicateKey(ErrDuplicate))
	assert.True(t, IsDuplicateKey(mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000}},
	}))
	assert.False(t, IsDuplicateKey(ErrNotFound))
}
