package dto

import (
	"testing"

	"beer_inventory/internal/global"
)

func init() {
	global.InitValidator()
}

func TestCategoryCreateInput_Validate(t *testing.T) {
	valid := CategoryCreateInput{Name: "IPA"}
	if err := global.Validate.Struct(valid); err != nil {
		t.Errorf("input hợp lệ bị từ chối: %v", err)
	}

	// Tên quá ngắn
	short := CategoryCreateInput{Name: "A"}
	if err := global.Validate.Struct(short); err == nil {
		t.Error("tên 1 ký tự phải bị từ chối (min=2)")
	}

	// Thiếu tên
	empty := CategoryCreateInput{}
	if err := global.Validate.Struct(empty); err == nil {
		t.Error("thiếu name phải bị từ chối (required)")
	}

	// Chứa pattern XSS
	xss := CategoryCreateInput{Name: "<script>alert(1)</script>"}
	if err := global.Validate.Struct(xss); err == nil {
		t.Error("name chứa <script phải bị từ chối (no_xss)")
	}
}

func TestProducerCreateInput_Validate(t *testing.T) {
	valid := ProducerCreateInput{Name: "Brasserie Cantillon", Country: "Belgium"}
	if err := global.Validate.Struct(valid); err != nil {
		t.Errorf("input hợp lệ bị từ chối: %v", err)
	}

	// GeoPoint phải có đúng 2 tọa độ và type Point
	badGeo := ProducerCreateInput{
		Name:     "Test Brewery",
		Location: &GeoPointInput{Type: "Point", Coordinates: []float64{1.0}},
	}
	if err := global.Validate.Struct(badGeo); err == nil {
		t.Error("location với 1 tọa độ phải bị từ chối (len=2)")
	}
}

func TestProductCreateInput_AbvRange(t *testing.T) {
	// Abv dùng pointer để 0 (bia không cồn) vẫn qua được required
	zero := 0.0
	over := 101.0
	max := 100.0

	cases := []struct {
		name  string
		abv   *float64
		valid bool
	}{
		{"abv zero hợp lệ", &zero, true},
		{"abv 100 hợp lệ", &max, true},
		{"abv 101 bị từ chối", &over, false},
		{"thiếu abv bị từ chối", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := ProductCreateInput{
				Name: "Test Beer",
				Abv:  tc.abv,
			}
			// Chỉ validate riêng field Abv để không đụng tới exists (cần database)
			err := global.Validate.StructPartial(input, "Abv")
			if tc.valid && err != nil {
				t.Errorf("abv hợp lệ bị từ chối: %v", err)
			}
			if !tc.valid && err == nil {
				t.Error("abv không hợp lệ phải bị từ chối")
			}
		})
	}
}

func TestVariantPackagingInput_Validate(t *testing.T) {
	valid := VariantPackagingInput{ContainerType: "can", VolumeOz: 12, UnitCount: 6}
	if err := global.Validate.Struct(valid); err != nil {
		t.Errorf("packaging hợp lệ bị từ chối: %v", err)
	}

	// VolumeOz phải dương
	zeroVol := VariantPackagingInput{ContainerType: "can", VolumeOz: 0, UnitCount: 6}
	if err := global.Validate.Struct(zeroVol); err == nil {
		t.Error("volumeOz = 0 phải bị từ chối (gt=0)")
	}

	negVol := VariantPackagingInput{ContainerType: "bottle", VolumeOz: -12, UnitCount: 1}
	if err := global.Validate.Struct(negVol); err == nil {
		t.Error("volumeOz âm phải bị từ chối (gt=0)")
	}

	// UnitCount tối thiểu 1
	zeroCount := VariantPackagingInput{ContainerType: "keg", VolumeOz: 1984, UnitCount: 0}
	if err := global.Validate.Struct(zeroCount); err == nil {
		t.Error("unitCount = 0 phải bị từ chối (gte=1)")
	}
}
