// Package catalogsvc - Service cho domain catalog: producer, category, product, variant.
// Mọi mutation đi qua pipeline: chuẩn hóa khóa → kiểm tra trùng (loại trừ chính mình
// khi update) → ghi store. Trùng lặp KHÔNG phải lỗi: trả về bản ghi hiện có.
package catalogsvc

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"beer_inventory/internal/common"
)

// NormalizeName chuẩn hóa tên dùng làm khóa duy nhất: trim + lowercase + bỏ dấu.
// So khớp ở primary strength — không phân biệt hoa thường lẫn dấu ("Café" và
// "Cafe" là một khóa). Khóa đã gấp dấu nên unique index binary trên
// nameNormalized là đủ làm chốt chặn cấp store.
func NormalizeName(name string) string {
	// NFD tách ký tự có dấu thành base + combining mark, bỏ mark rồi ghép lại
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// isDuplicateKeyErr nhận diện lỗi duplicate key đã được ConvertMongoError ánh xạ
// về mã BIZ_001. Dùng để bắt race insert đồng thời: hai request cùng tạo một khóa,
// request thua lấy lại bản ghi thắng và trả về như trường hợp trùng thông thường.
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if common.IsDuplicateKey(err) {
		return true
	}
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return customErr.Code.Code == common.ErrCodeBusinessExisting.Code
	}
	return false
}
