// Package catsvc - service quản lý catalog sản phẩm: CRUD, filter danh sách,
// resolve khả dụng và giá thực tế theo franchise.
package catsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "phal_bites/internal/api/base/models"
	basesvc "phal_bites/internal/api/base/service"
	catdto "phal_bites/internal/api/catalog/dto"
	models "phal_bites/internal/api/catalog/models"
	fransvc "phal_bites/internal/api/franchise/service"
	"phal_bites/internal/global"
)

// ProductOffering là một sản phẩm kèm giá thực tế tại một franchise cụ thể
type ProductOffering struct {
	Product        models.Product       `json:"product"`
	EffectivePrice models.PriceOverride `json:"effectivePrice"`
}

// ProductService là cấu trúc chứa các phương thức quản lý Product
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
	franchiseService *fransvc.FranchiseService
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get product collection: %s", global.MongoDB_ColNames.Products)
	}
	franchiseService, err := fransvc.NewFranchiseService()
	if err != nil {
		return nil, fmt.Errorf("failed to create franchise service: %w", err)
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](productCollection),
		franchiseService:     franchiseService,
	}, nil
}

// Create validate đầu vào (gom đủ vi phạm) rồi tạo Product mới.
func (s *ProductService) Create(ctx context.Context, input *catdto.ProductCreateInput) (*models.Product, error) {
	product, err := BuildProduct(input)
	if err != nil {
		return nil, err
	}

	created, err := s.InsertOne(ctx, *product)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"productId": created.ID.Hex(),
		"name":      created.Name,
		"category":  created.Category,
	}).Info("Đã tạo sản phẩm mới")
	return &created, nil
}

// Replace cập nhật Product theo kiểu thay thế document, validate đầy đủ như khi tạo.
// Trạng thái Active không đổi qua Replace (dùng SetActive).
func (s *ProductService) Replace(ctx context.Context, id primitive.ObjectID, input *catdto.ProductUpdateInput) (*models.Product, error) {
	createInput := catdto.ProductCreateInput(*input)
	product, err := BuildProduct(&createInput)
	if err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"name":            product.Name,
			"description":     product.Description,
			"dietTag":         product.DietTag,
			"category":        product.Category,
			"orderMode":       product.OrderMode,
			"subscription":    product.Subscription,
			"timeOfDay":       product.TimeOfDay,
			"pricing":         product.Pricing,
			"availability":    product.Availability,
			"images":          product.Images,
			"ingredients":     product.Ingredients,
			"nutritionalInfo": product.NutritionalInfo,
		},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetActive bật hoặc tắt sản phẩm (xóa mềm). Sản phẩm tắt không bao giờ khả dụng.
func (s *ProductService) SetActive(ctx context.Context, id primitive.ObjectID, active bool) (*models.Product, error) {
	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"active": active},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// List liệt kê sản phẩm đang hoạt động theo các filter tùy chọn, có phân trang.
// Filter theo franchise dùng điều kiện khả dụng: bán mọi nơi hoặc nằm trong danh sách cho phép.
func (s *ProductService) List(ctx context.Context, query *catdto.ProductListQueryInput) (*basemodels.PaginateResult[models.Product], error) {
	filter := bson.M{"active": true}
	if query.DietTag != "" {
		filter["dietTag"] = query.DietTag
	}
	if query.Category != "" {
		filter["category"] = query.Category
	}
	if query.OrderMode != "" {
		filter["orderMode"] = query.OrderMode
	}
	if query.FranchiseID != "" {
		franchiseID, err := primitive.ObjectIDFromHex(query.FranchiseID)
		if err != nil {
			return nil, err
		}
		filter["$or"] = []bson.M{
			{"availability.allFranchises": true},
			{"availability.specificFranchises": franchiseID},
		}
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.FindWithPagination(ctx, filter, page, limit, nil)
}

// ResolveForFranchise trả về danh sách sản phẩm khả dụng tại một franchise
// kèm giá thực tế của từng sản phẩm. Franchise không tồn tại hoặc đã tắt
// hoạt động trả về ErrNotFound.
func (s *ProductService) ResolveForFranchise(ctx context.Context, franchiseID primitive.ObjectID) ([]ProductOffering, error) {
	// Franchise phải tồn tại và đang hoạt động mới có catalog
	if _, err := s.franchiseService.FindActiveById(ctx, franchiseID); err != nil {
		return nil, err
	}

	filter := bson.M{
		"active": true,
		"$or": []bson.M{
			{"availability.allFranchises": true},
			{"availability.specificFranchises": franchiseID},
		},
	}
	products, err := s.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	offerings := make([]ProductOffering, 0, len(products))
	for _, product := range products {
		offerings = append(offerings, ProductOffering{
			Product:        product,
			EffectivePrice: product.EffectivePrice(franchiseID),
		})
	}
	return offerings, nil
}
