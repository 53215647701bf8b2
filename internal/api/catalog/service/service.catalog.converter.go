package catalogsvc

import (
	"math"
)

// MlPerOz là hệ số quy đổi fluid ounce (US) sang mililit.
const MlPerOz = 29.5735

// OzToMl quy đổi dung tích từ ounce sang mililit, làm tròn half-away-from-zero.
// Chỉ áp dụng lúc tạo/cập nhật Variant; giá trị ml đã lưu không bao giờ tính lại lúc đọc.
func OzToMl(oz float64) int64 {
	return int64(math.Round(oz * MlPerOz))
}
