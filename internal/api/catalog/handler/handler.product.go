// Package cathdl - handler HTTP cho domain catalog.
package cathdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "phal_bites/internal/api/base/handler"
	catdto "phal_bites/internal/api/catalog/dto"
	models "phal_bites/internal/api/catalog/models"
	catsvc "phal_bites/internal/api/catalog/service"
	"phal_bites/internal/common"
)

// ProductHandler xử lý các request quản lý sản phẩm.
// Insert/update được override để chạy validate domain gom đủ vi phạm.
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, catdto.ProductCreateInput, catdto.ProductUpdateInput]
	productService *catsvc.ProductService
}

// NewProductHandler tạo instance mới của ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := catsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Product, catdto.ProductCreateInput, catdto.ProductUpdateInput](productService)
	return &ProductHandler{
		BaseHandler:    baseHandler,
		productService: productService,
	}, nil
}

// InsertOne tạo Product mới qua validate domain (che handler mặc định của BaseHandler)
func (h *ProductHandler) InsertOne(c fiber.Ctx) error {
	var input catdto.ProductCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	product, err := h.productService.Create(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, product, nil)
	return nil
}

// UpdateById cập nhật Product theo kiểu thay thế document (che handler mặc định)
func (h *ProductHandler) UpdateById(c fiber.Ctx) error {
	id, err := h.parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input catdto.ProductUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	product, err := h.productService.Replace(c.Context(), id, &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, product, nil)
	return nil
}

// HandleActivate bật sản phẩm
func (h *ProductHandler) HandleActivate(c fiber.Ctx) error {
	return h.handleSetActive(c, true)
}

// HandleDeactivate tắt sản phẩm (xóa mềm)
func (h *ProductHandler) HandleDeactivate(c fiber.Ctx) error {
	return h.handleSetActive(c, false)
}

func (h *ProductHandler) handleSetActive(c fiber.Ctx, active bool) error {
	id, err := h.parseIDParam(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	product, err := h.productService.SetActive(c.Context(), id, active)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, product, nil)
	return nil
}

// HandleList liệt kê sản phẩm đang hoạt động theo filter.
// Query: dietTag, category, orderMode, franchiseId, page, limit.
func (h *ProductHandler) HandleList(c fiber.Ctx) error {
	var query catdto.ProductListQueryInput
	if err := c.Bind().Query(&query); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Query không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	result, err := h.productService.List(c.Context(), &query)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, result, nil)
	return nil
}

// HandleAvailableAt trả về catalog khả dụng tại một franchise kèm giá thực tế từng sản phẩm
func (h *ProductHandler) HandleAvailableAt(c fiber.Ctx) error {
	franchiseIDStr := c.Params("franchiseId")
	franchiseID, err := primitive.ObjectIDFromHex(franchiseIDStr)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID franchise không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	offerings, err := h.productService.ResolveForFranchise(c.Context(), franchiseID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, offerings, nil)
	return nil
}

// parseIDParam đọc và kiểm tra param :id
func (h *ProductHandler) parseIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	idStr := h.GetIDFromContext(c)
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err)
	}
	return id, nil
}
