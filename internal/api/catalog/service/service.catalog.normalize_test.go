package catalogsvc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"

	"beer_inventory/internal/common"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"IPA", "ipa"},
		{"  Pale Ale  ", "pale ale"},
		{"STOUT", "stout"},
		{"Hoegaarden Wit", "hoegaarden wit"},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, NormalizeName(tc.input), "input: %q", tc.input)
	}
}

// Tên chỉ khác dấu phải chuẩn hóa về cùng một khóa, nếu không
// "Café" và "Cafe" sẽ thành hai bản ghi riêng biệt.
func TestNormalizeName_KhongPhanBietDau(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"Café de Paris", "cafe de paris"},
		{"Bière Forte", "biere forte"},
		{"KÖLSCH", "kolsch"},
		// Đ không phải dấu kết hợp nên giữ nguyên, chỉ các dấu thanh/mũ bị gấp
		{"Sài Gòn Đặc Biệt", "sai gon đac biet"},
		{"Žatec", "zatec"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, NormalizeName(tc.input), "input: %q", tc.input)
	}
}

func TestIsDuplicateKeyErr(t *testing.T) {
	// Lỗi duplicate key từ Mongo (E11000)
	writeErr := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000}},
	}
	assert.True(t, isDuplicateKeyErr(writeErr))

	// Lỗi nghiệp vụ "đã tồn tại" đã được convert
	bizErr := common.NewError(common.ErrCodeBusinessExisting, "Bản ghi đã tồn tại", common.StatusConflict, nil)
	assert.True(t, isDuplicateKeyErr(bizErr))

	// Lỗi khác không được nhận nhầm là duplicate
	assert.False(t, isDuplicateKeyErr(errors.New("connection reset")))
	assert.False(t, isDuplicateKeyErr(common.ErrNotFound))
	assert.False(t, isDuplicateKeyErr(nil))
}
