// Package delihdl - handler HTTP kiểm tra khả năng giao hàng.
package delihdl

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "phal_bites/internal/api/base/handler"
	delidto "phal_bites/internal/api/delivery/dto"
	delisvc "phal_bites/internal/api/delivery/service"
	"phal_bites/internal/common"
)

// DeliveryHandler xử lý request kiểm tra giao hàng
type DeliveryHandler struct {
	deliveryService *delisvc.DeliveryService
}

// NewDeliveryHandler tạo instance mới của DeliveryHandler
func NewDeliveryHandler() (*DeliveryHandler, error) {
	deliveryService, err := delisvc.NewDeliveryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create delivery service: %v", err)
	}
	return &DeliveryHandler{deliveryService: deliveryService}, nil
}

// HandleCheck kiểm tra một tọa độ có được giao hàng từ franchise không.
// Body: {franchiseId, longitude, latitude}.
// Trả về {isDeliverable, deliveryFee, zoneName, franchiseId, franchiseName}.
func (h *DeliveryHandler) HandleCheck(c fiber.Ctx) error {
	var input delidto.DeliveryCheckInput
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	if err := decoder.Decode(&input); err != nil {
		basehdl.HandleErrorResponse(c, common.NewError(common.ErrCodeValidationFormat, "Body không hợp lệ", common.StatusBadRequest, err))
		return nil
	}

	result, err := h.deliveryService.CheckEligibility(c.Context(), &input)
	if err != nil {
		basehdl.HandleErrorResponse(c, err)
		return nil
	}
	basehdl.HandleSuccessResponse(c, result)
	return nil
}
