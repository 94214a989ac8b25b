// Package delisvc - service kiểm tra khả năng giao hàng theo vùng của franchise.
package delisvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	delidto "phal_bites/internal/api/delivery/dto"
	franmodels "phal_bites/internal/api/franchise/models"
	fransvc "phal_bites/internal/api/franchise/service"
	"phal_bites/internal/common"
)

// DeliveryService kiểm tra một tọa độ có nằm trong vùng giao hàng
// của franchise không và phí giao là bao nhiêu.
type DeliveryService struct {
	franchiseService *fransvc.FranchiseService
}

// NewDeliveryService tạo mới DeliveryService
func NewDeliveryService() (*DeliveryService, error) {
	franchiseService, err := fransvc.NewFranchiseService()
	if err != nil {
		return nil, fmt.Errorf("failed to create franchise service: %w", err)
	}
	return &DeliveryService{franchiseService: franchiseService}, nil
}

// CheckEligibility kiểm tra tọa độ có được giao hàng từ franchise không.
//
// Franchise không tồn tại hoặc đã tắt hoạt động trả về ErrNotFound (404) —
// không bao giờ đánh giá vùng cho franchise đã tắt. Thiếu tọa độ là lỗi 400.
//
// Duyệt zones theo đúng thứ tự lưu trong document; vùng ĐẦU TIÊN chứa điểm
// thắng (first-match-wins), các vùng sau bị bỏ qua kể cả khi cũng chứa điểm.
// Phí: vùng paid trả về đúng phí cấu hình; vùng free luôn là 0; không khớp
// vùng nào trả về {false, null, 0}.
//
// Đây là phép đọc thuần trên snapshot của franchise document, không khóa.
func (s *DeliveryService) CheckEligibility(ctx context.Context, input *delidto.DeliveryCheckInput) (*delidto.DeliveryCheckResult, error) {
	violations := []common.ValidationViolation{}
	if input.Longitude == nil {
		violations = append(violations, common.ValidationViolation{Field: "longitude", Message: "Kinh độ là bắt buộc"})
	}
	if input.Latitude == nil {
		violations = append(violations, common.ValidationViolation{Field: "latitude", Message: "Vĩ độ là bắt buộc"})
	}
	franchiseID, err := primitive.ObjectIDFromHex(input.FranchiseID)
	if err != nil {
		violations = append(violations, common.ValidationViolation{Field: "franchiseId", Message: "ID franchise không hợp lệ"})
	}
	if len(violations) > 0 {
		return nil, common.NewValidationError(violations)
	}

	franchise, err := s.franchiseService.FindActiveById(ctx, franchiseID)
	if err != nil {
		return nil, err
	}

	deliverable, zoneName, fee := EvaluateZones(franchise.Zones, *input.Longitude, *input.Latitude)
	return &delidto.DeliveryCheckResult{
		IsDeliverable: deliverable,
		DeliveryFee:   fee,
		ZoneName:      zoneName,
		FranchiseID:   franchise.ID.Hex(),
		FranchiseName: franchise.Name,
	}, nil
}

// EvaluateZones tìm vùng đầu tiên (theo thứ tự lưu) chứa điểm và tính phí.
// Không khớp vùng nào: {false, nil, 0}. Vùng free: phí luôn 0 bất kể giá trị
// Fee lưu trong document. Vùng paid: đúng phí cấu hình.
func EvaluateZones(zones []franmodels.DeliveryZone, longitude float64, latitude float64) (bool, *string, float64) {
	for i := range zones {
		if !PointInRing(longitude, latitude, zones[i].Area.Ring()) {
			continue
		}
		fee := float64(0)
		if zones[i].Kind == franmodels.ZoneKindPaid {
			fee = zones[i].Fee
		}
		return true, &zones[i].Name, fee
	}
	return false, nil, 0
}
