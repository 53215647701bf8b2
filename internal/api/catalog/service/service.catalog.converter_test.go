package catalogsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOzToMl(t *testing.T) {
	cases := []struct {
		name string
		oz   float64
		ml   int64
	}{
		{"lon 12oz", 12, 355},
		{"pint 16oz", 16, 473},
		{"chai 22oz", 22, 651},
		{"growler 64oz", 64, 1893},
		{"keg 1984oz", 1984, 58674},
		{"nua oz", 0.5, 15},
		{"zero", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ml, OzToMl(tc.oz))
		})
	}
}

func TestOzToMl_LamTronDungChuan(t *testing.T) {
	// 1.05 * 29.5735 = 31.052... → 31 (làm tròn xuống)
	assert.Equal(t, int64(31), OzToMl(1.05))
	// 0.7 * 29.5735 = 20.701... → 21 (làm tròn lên)
	assert.Equal(t, int64(21), OzToMl(0.7))
}
