package fransvc

import (
	"errors"
	"testing"

	frandto "phal_bites/internal/api/franchise/dto"
	models "phal_bites/internal/api/franchise/models"
	"phal_bites/internal/common"
)

func f64(v float64) *float64 { return &v }

func validInput() *frandto.FranchiseCreateInput {
	return &frandto.FranchiseCreateInput{
		Name:    "PhalBites Koramangala",
		Address: "80 Feet Road",
		City:    "Bangalore",
		State:   "Karnataka",
		Location: &frandto.GeoPointInput{
			Longitude: f64(77.59),
			Latitude:  f64(12.97),
		},
		Contact: &frandto.ContactInput{
			Phone: "+919800000000",
			Email: "koramangala@phalbites.in",
		},
		Zones: []frandto.ZoneInput{
			{
				Name: "Nội thành",
				Kind: models.ZoneKindFree,
				Area: [][]float64{{77.58, 12.96}, {77.60, 12.96}, {77.60, 12.98}, {77.58, 12.98}},
			},
		},
	}
}

func TestValidateFranchiseInput_Valid(t *testing.T) {
	violations := ValidateFranchiseInput(validInput())
	if len(violations) != 0 {
		t.Errorf("Đầu vào hợp lệ không được có vi phạm, got %+v", violations)
	}
}

// Thiếu contact.email VÀ một vùng paid không có phí phải trả về đúng 2 vi phạm,
// không dừng ở lỗi đầu tiên.
func TestValidateFranchiseInput_CollectsAllViolations(t *testing.T) {
	input := validInput()
	input.Contact.Email = ""
	input.Zones = append(input.Zones, frandto.ZoneInput{
		Name: "Ngoại thành",
		Kind: models.ZoneKindPaid,
		Fee:  nil,
		Area: [][]float64{{77.57, 12.95}, {77.61, 12.95}, {77.61, 12.99}, {77.57, 12.99}},
	})

	violations := ValidateFranchiseInput(input)
	if len(violations) != 2 {
		t.Fatalf("Phải gom đúng 2 vi phạm, got %d: %+v", len(violations), violations)
	}

	fields := map[string]bool{}
	for _, v := range violations {
		fields[v.Field] = true
	}
	if !fields["contact.email"] {
		t.Error("Thiếu vi phạm cho contact.email")
	}
	if !fields["zones[1].fee"] {
		t.Error("Thiếu vi phạm cho zones[1].fee")
	}
}

func TestValidateFranchiseInput_MissingCoordinates(t *testing.T) {
	input := validInput()
	input.Location = &frandto.GeoPointInput{Longitude: f64(77.59)}

	violations := ValidateFranchiseInput(input)
	if len(violations) != 1 {
		t.Fatalf("Thiếu vĩ độ phải là đúng 1 vi phạm, got %d: %+v", len(violations), violations)
	}
	if violations[0].Field != "location.latitude" {
		t.Errorf("Vi phạm phải thuộc location.latitude, got %s", violations[0].Field)
	}
}

func TestValidateFranchiseInput_CoordinateRange(t *testing.T) {
	input := validInput()
	input.Location.Longitude = f64(190)
	input.Location.Latitude = f64(-95)

	violations := ValidateFranchiseInput(input)
	if len(violations) != 2 {
		t.Errorf("Tọa độ ngoài giới hạn WGS84 phải là 2 vi phạm, got %d: %+v", len(violations), violations)
	}
}

func TestValidateFranchiseInput_ZoneRules(t *testing.T) {
	input := validInput()
	input.Zones = []frandto.ZoneInput{
		{
			// Thiếu tên, loại không hợp lệ, polygon dưới 3 điểm
			Kind: "express",
			Area: [][]float64{{77.58, 12.96}, {77.60, 12.96}},
		},
		{
			Name: "Ngoại thành",
			Kind: models.ZoneKindPaid,
			Fee:  f64(-5),
			Area: [][]float64{{77.57, 12.95}, {77.61, 12.95}, {77.61, 12.99}},
		},
	}

	violations := ValidateFranchiseInput(input)
	fields := map[string]int{}
	for _, v := range violations {
		fields[v.Field]++
	}
	for _, want := range []string{"zones[0].name", "zones[0].kind", "zones[0].area", "zones[1].fee"} {
		if fields[want] == 0 {
			t.Errorf("Thiếu vi phạm cho %s (violations: %+v)", want, violations)
		}
	}
}

func TestValidateFranchiseInput_DuplicateZoneNames(t *testing.T) {
	input := validInput()
	input.Zones = append(input.Zones, input.Zones[0])

	violations := ValidateFranchiseInput(input)
	found := false
	for _, v := range violations {
		if v.Field == "zones[1].name" {
			found = true
		}
	}
	if !found {
		t.Errorf("Tên vùng trùng trong cùng franchise phải bị bắt, got %+v", violations)
	}
}

// Zones rỗng là hợp lệ: chỉ cần cấu trúc danh sách tồn tại
func TestValidateFranchiseInput_EmptyZonesAllowed(t *testing.T) {
	input := validInput()
	input.Zones = []frandto.ZoneInput{}
	if violations := ValidateFranchiseInput(input); len(violations) != 0 {
		t.Errorf("Danh sách vùng rỗng phải hợp lệ, got %+v", violations)
	}
}

func TestBuildFranchise(t *testing.T) {
	franchise, err := BuildFranchise(validInput())
	if err != nil {
		t.Fatalf("Đầu vào hợp lệ không được trả lỗi: %v", err)
	}
	if !franchise.Active {
		t.Error("Franchise mới tạo phải ở trạng thái hoạt động")
	}
	if franchise.Location.Type != "Point" || len(franchise.Location.Coordinates) != 2 {
		t.Errorf("Location phải là GeoJSON Point, got %+v", franchise.Location)
	}
	if franchise.Location.Coordinates[0] != 77.59 || franchise.Location.Coordinates[1] != 12.97 {
		t.Errorf("Coordinates phải theo thứ tự [longitude, latitude], got %v", franchise.Location.Coordinates)
	}
	if len(franchise.Zones) != 1 || franchise.Zones[0].Area.Type != "Polygon" {
		t.Errorf("Zone phải giữ nguyên polygon GeoJSON, got %+v", franchise.Zones)
	}
}

func TestBuildFranchise_InvalidReturnsValidationError(t *testing.T) {
	input := validInput()
	input.Name = ""
	input.Contact.Email = ""

	_, err := BuildFranchise(input)
	if err == nil {
		t.Fatal("Đầu vào không hợp lệ phải trả lỗi")
	}
	var customErr *common.Error
	if !errors.As(err, &customErr) {
		t.Fatalf("Lỗi phải là *common.Error, got %T", err)
	}
	violations, ok := customErr.Details.([]common.ValidationViolation)
	if !ok {
		t.Fatalf("Details phải chứa danh sách vi phạm, got %T", customErr.Details)
	}
	if len(violations) != 2 {
		t.Errorf("Phải có đúng 2 vi phạm trong Details, got %d", len(violations))
	}
}
