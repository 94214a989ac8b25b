// Package franhdl - handler HTTP cho domain franchise.
package franhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "phal_bites/internal/api/base/handler"
	frandto "phal_bites/internal/api/franchise/dto"
	models "phal_bites/internal/api/franchise/models"
	fransvc "phal_bites/internal/api/franchise/service"
	"phal_bites/internal/common"
	"phal_bites/internal/logger"
)

// FranchiseHandler xử lý các request quản lý Franchise.
// Các route CRUD chuẩn dùng BaseHandler; insert/update được override để chạy
// validate domain (gom đủ vi phạm) thay cho transform mặc định.
type FranchiseHandler struct {
	*basehdl.BaseHandler[models.Franchise, frandto.FranchiseCreateInput, frandto.FranchiseUpdateInput]
	franchiseService *fransvc.FranchiseService
}

// NewFranchiseHandler tạo instance mới của FranchiseHandler
func NewFranchiseHandler() (*FranchiseHandler, error) {
	franchiseService, err := fransvc.NewFranchiseService()
	if err != nil {
		return nil, fmt.Errorf("failed to create franchise service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Franchise, frandto.FranchiseCreateInput, frandto.FranchiseUpdateInput](franchiseService)
	return &FranchiseHandler{
		BaseHandler:      baseHandler,
		franchiseService: franchiseService,
	}, nil
}

// InsertOne tạo Franchise mới qua validate domain (che handler mặc định của BaseHandler).
func (h *FranchiseHandler) InsertOne(c fiber.Ctx) error {
	var input frandto.FranchiseCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	franchise, err := h.franchiseService.Create(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, franchise, nil)
	return nil
}

// UpdateById cập nhật Franchise theo kiểu thay thế toàn bộ document (che handler mặc định).
func (h *FranchiseHandler) UpdateById(c fiber.Ctx) error {
	id, err := h.parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input frandto.FranchiseUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	franchise, err := h.franchiseService.Replace(c.Context(), id, &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, franchise, nil)
	return nil
}

// HandleActivate bật trạng thái hoạt động của Franchise
func (h *FranchiseHandler) HandleActivate(c fiber.Ctx) error {
	return h.handleSetActive(c, true)
}

// HandleDeactivate tắt trạng thái hoạt động của Franchise
func (h *FranchiseHandler) HandleDeactivate(c fiber.Ctx) error {
	return h.handleSetActive(c, false)
}

func (h *FranchiseHandler) handleSetActive(c fiber.Ctx, active bool) error {
	id, err := h.parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	franchise, err := h.franchiseService.SetActive(c.Context(), id, active)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	action := "activate"
	if !active {
		action = "deactivate"
	}
	logger.LogCRUD(action, "franchise", id.Hex(), c, nil)
	h.HandleResponse(c, franchise, nil)
	return nil
}

// HandleNearby tìm các franchise đang hoạt động gần một tọa độ.
// Query: longitude, latitude (bắt buộc), maxDistance (mét, mặc định 10km).
func (h *FranchiseHandler) HandleNearby(c fiber.Ctx) error {
	var input frandto.NearbyQueryInput
	if err := c.Bind().Query(&input); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Query không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	if input.Longitude == nil || input.Latitude == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu tọa độ longitude/latitude", common.StatusBadRequest, nil))
		return nil
	}
	franchises, err := h.franchiseService.FindNearby(c.Context(), *input.Longitude, *input.Latitude, input.MaxDistance)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, franchises, nil)
	return nil
}

// parseIDParam đọc và kiểm tra param :id
func (h *FranchiseHandler) parseIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	idStr := h.GetIDFromContext(c)
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err)
	}
	return id, nil
}
