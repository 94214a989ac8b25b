package fransvc

import (
	"fmt"

	frandto "phal_bites/internal/api/franchise/dto"
	models "phal_bites/internal/api/franchise/models"
	"phal_bites/internal/common"
	"phal_bites/internal/utility"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidateFranchiseInput kiểm tra dữ liệu tạo Franchise và gom TOÀN BỘ vi phạm
// thay vì dừng ở lỗi đầu tiên, để client sửa hết trong một lần gửi lại.
// Trả về danh sách rỗng khi dữ liệu hợp lệ.
func ValidateFranchiseInput(input *frandto.FranchiseCreateInput) []common.ValidationViolation {
	violations := []common.ValidationViolation{}

	if input.Name == "" {
		violations = append(violations, common.ValidationViolation{Field: "name", Message: "Tên franchise là bắt buộc"})
	}
	if input.Address == "" {
		violations = append(violations, common.ValidationViolation{Field: "address", Message: "Địa chỉ là bắt buộc"})
	}
	if input.City == "" {
		violations = append(violations, common.ValidationViolation{Field: "city", Message: "Thành phố là bắt buộc"})
	}
	if input.State == "" {
		violations = append(violations, common.ValidationViolation{Field: "state", Message: "Tỉnh/bang là bắt buộc"})
	}

	if input.Contact == nil {
		violations = append(violations,
			common.ValidationViolation{Field: "contact.phone", Message: "Số điện thoại liên hệ là bắt buộc"},
			common.ValidationViolation{Field: "contact.email", Message: "Email liên hệ là bắt buộc"},
		)
	} else {
		if input.Contact.Phone == "" {
			violations = append(violations, common.ValidationViolation{Field: "contact.phone", Message: "Số điện thoại liên hệ là bắt buộc"})
		}
		if input.Contact.Email == "" {
			violations = append(violations, common.ValidationViolation{Field: "contact.email", Message: "Email liên hệ là bắt buộc"})
		} else if utility.ValidateEmail(input.Contact.Email) != nil {
			violations = append(violations, common.ValidationViolation{Field: "contact.email", Message: "Email liên hệ không đúng định dạng"})
		}
	}

	if input.Manager != "" && utility.String2ObjectID(input.Manager) == primitive.NilObjectID {
		violations = append(violations, common.ValidationViolation{Field: "manager", Message: "Manager phải là một ObjectID hợp lệ"})
	}

	violations = append(violations, validateLocation(input.Location)...)

	// Zones được phép rỗng, nhưng mỗi zone khai báo phải hợp lệ
	zoneNames := map[string]bool{}
	for i, zone := range input.Zones {
		violations = append(violations, validateZone(i, &zone)...)
		if zone.Name != "" {
			if zoneNames[zone.Name] {
				violations = append(violations, common.ValidationViolation{
					Field:   fmt.Sprintf("zones[%d].name", i),
					Message: "Tên vùng giao hàng bị trùng trong cùng franchise: " + zone.Name,
				})
			}
			zoneNames[zone.Name] = true
		}
	}

	return violations
}

// validateLocation kiểm tra tọa độ: phải có đủ hai thành phần và nằm trong giới hạn WGS84.
func validateLocation(location *frandto.GeoPointInput) []common.ValidationViolation {
	violations := []common.ValidationViolation{}
	if location == nil {
		return append(violations,
			common.ValidationViolation{Field: "location.longitude", Message: "Kinh độ là bắt buộc"},
			common.ValidationViolation{Field: "location.latitude", Message: "Vĩ độ là bắt buộc"},
		)
	}
	if location.Longitude == nil {
		violations = append(violations, common.ValidationViolation{Field: "location.longitude", Message: "Kinh độ là bắt buộc"})
	} else if *location.Longitude < -180 || *location.Longitude > 180 {
		violations = append(violations, common.ValidationViolation{Field: "location.longitude", Message: "Kinh độ phải nằm trong khoảng [-180, 180]"})
	}
	if location.Latitude == nil {
		violations = append(violations, common.ValidationViolation{Field: "location.latitude", Message: "Vĩ độ là bắt buộc"})
	} else if *location.Latitude < -90 || *location.Latitude > 90 {
		violations = append(violations, common.ValidationViolation{Field: "location.latitude", Message: "Vĩ độ phải nằm trong khoảng [-90, 90]"})
	}
	return violations
}

// validateZone kiểm tra một vùng giao hàng: tên, loại, polygon >= 3 điểm,
// và vùng paid phải có phí không âm.
func validateZone(index int, zone *frandto.ZoneInput) []common.ValidationViolation {
	violations := []common.ValidationViolation{}
	prefix := fmt.Sprintf("zones[%d]", index)

	if zone.Name == "" {
		violations = append(violations, common.ValidationViolation{Field: prefix + ".name", Message: "Tên vùng giao hàng là bắt buộc"})
	}

	if !models.IsValidZoneKind(zone.Kind) {
		violations = append(violations, common.ValidationViolation{Field: prefix + ".kind", Message: "Loại vùng không hợp lệ. Các loại hợp lệ: free, paid"})
	}

	if zone.Kind == models.ZoneKindPaid {
		if zone.Fee == nil {
			violations = append(violations, common.ValidationViolation{Field: prefix + ".fee", Message: "Vùng tính phí phải có phí giao hàng"})
		} else if *zone.Fee < 0 {
			violations = append(violations, common.ValidationViolation{Field: prefix + ".fee", Message: "Phí giao hàng không được âm"})
		}
	}

	if len(zone.Area) < 3 {
		violations = append(violations, common.ValidationViolation{Field: prefix + ".area", Message: "Polygon của vùng phải có ít nhất 3 điểm"})
	} else {
		for j, point := range zone.Area {
			if len(point) != 2 {
				violations = append(violations, common.ValidationViolation{
					Field:   fmt.Sprintf("%s.area[%d]", prefix, j),
					Message: "Mỗi điểm của polygon phải là cặp [longitude, latitude]",
				})
			}
		}
	}

	return violations
}

// BuildFranchise validate đầu vào và dựng model Franchise hoàn chỉnh.
// Trả về ValidationError chứa đủ danh sách vi phạm khi đầu vào không hợp lệ.
func BuildFranchise(input *frandto.FranchiseCreateInput) (*models.Franchise, error) {
	violations := ValidateFranchiseInput(input)
	if len(violations) > 0 {
		return nil, common.NewValidationError(violations)
	}

	zones := make([]models.DeliveryZone, 0, len(input.Zones))
	for _, z := range input.Zones {
		fee := float64(0)
		if z.Kind == models.ZoneKindPaid {
			fee = *z.Fee
		}
		zones = append(zones, models.DeliveryZone{
			Name: z.Name,
			Kind: z.Kind,
			Fee:  fee,
			Area: models.NewGeoJSONPolygon(z.Area),
		})
	}

	return &models.Franchise{
		Name:     input.Name,
		Address:  input.Address,
		City:     input.City,
		State:    input.State,
		Location: models.NewGeoJSONPoint(*input.Location.Longitude, *input.Location.Latitude),
		Zones:    zones,
		Contact: models.Contact{
			Phone: input.Contact.Phone,
			Email: input.Contact.Email,
		},
		Manager: input.Manager,
		Active:  true,
	}, nil
}
