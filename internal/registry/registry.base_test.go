package registry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("producers", "col-producers")
	assert.NoError(t, err)
	assert.True(t, isNew)

	item, exists := r.Get("producers")
	assert.True(t, exists)
	assert.Equal(t, "col-producers", item)

	// Đăng ký lại cùng tên ghi đè item cũ, isNew = false
	isNew, err = r.Register("producers", "col-producers-v2")
	assert.NoError(t, err)
	assert.False(t, isNew)

	item, _ = r.Get("producers")
	assert.Equal(t, "col-producers-v2", item)
}

func TestRegistry_RegisterTenRong(t *testing.T) {
	r := NewRegistry[string]()
	_, err := r.Register("", "x")
	assert.Error(t, err)
}

func TestRegistry_GetKhongTonTai(t *testing.T) {
	r := NewRegistry[int]()
	_, exists := r.Get("không có")
	assert.False(t, exists)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[int]()

	calls := 0
	creator := func() (int, error) {
		calls++
		return 42, nil
	}

	v, err := r.GetOrCreate("answer", creator)
	assert.NoError(t, err)
	assert.Equal(t, 42, v)

	// Lần hai lấy từ cache, không gọi lại creator
	v, err = r.GetOrCreate("answer", creator)
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)
}

func TestRegistry_GetOrCreateLoi(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.GetOrCreate("fail", func() (int, error) {
		return 0, fmt.Errorf("không tạo được")
	})
	assert.Error(t, err)

	_, exists := r.Get("fail")
	assert.False(t, exists, "creator lỗi thì không được lưu vào registry")
}
