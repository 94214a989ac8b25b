// Package fransvc - service quản lý Franchise: CRUD, validate gom đủ vi phạm,
// bật/tắt hoạt động, tìm franchise gần một tọa độ.
package fransvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "phal_bites/internal/api/base/service"
	frandto "phal_bites/internal/api/franchise/dto"
	models "phal_bites/internal/api/franchise/models"
	"phal_bites/internal/global"
	"phal_bites/internal/logger"
	"phal_bites/internal/mailer"
)

// DefaultNearbyMaxDistance là khoảng cách tối đa mặc định khi tìm franchise gần (mét)
const DefaultNearbyMaxDistance int64 = 10000

// FranchiseService là cấu trúc chứa các phương thức quản lý Franchise
type FranchiseService struct {
	*basesvc.BaseServiceMongoImpl[models.Franchise]
}

// NewFranchiseService tạo mới FranchiseService
func NewFranchiseService() (*FranchiseService, error) {
	franchiseCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Franchises)
	if !exist {
		return nil, fmt.Errorf("failed to get franchise collection: %s", global.MongoDB_ColNames.Franchises)
	}
	return &FranchiseService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Franchise](franchiseCollection),
	}, nil
}

// Create validate đầu vào (gom đủ vi phạm) rồi tạo Franchise mới.
func (s *FranchiseService) Create(ctx context.Context, input *frandto.FranchiseCreateInput) (*models.Franchise, error) {
	franchise, err := BuildFranchise(input)
	if err != nil {
		return nil, err
	}

	created, err := s.InsertOne(ctx, *franchise)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"franchiseId": created.ID.Hex(),
		"name":        created.Name,
		"zones":       len(created.Zones),
	}).Info("Đã tạo franchise mới")
	return &created, nil
}

// Replace cập nhật Franchise theo kiểu thay thế toàn bộ document:
// đầu vào được validate đầy đủ như khi tạo mới, sau đó ghi đè mọi field nghiệp vụ.
// Trạng thái Active không đổi qua Replace (dùng SetActive).
func (s *FranchiseService) Replace(ctx context.Context, id primitive.ObjectID, input *frandto.FranchiseUpdateInput) (*models.Franchise, error) {
	createInput := frandto.FranchiseCreateInput(*input)
	franchise, err := BuildFranchise(&createInput)
	if err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"name":     franchise.Name,
			"address":  franchise.Address,
			"city":     franchise.City,
			"state":    franchise.State,
			"location": franchise.Location,
			"zones":    franchise.Zones,
			"contact":  franchise.Contact,
			"manager":  franchise.Manager,
		},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetActive bật hoặc tắt trạng thái hoạt động của Franchise.
// Sau khi đổi trạng thái, gửi email thông báo tới địa chỉ liên hệ (best-effort).
func (s *FranchiseService) SetActive(ctx context.Context, id primitive.ObjectID, active bool) (*models.Franchise, error) {
	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"active": active},
	})
	if err != nil {
		return nil, err
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"franchiseId": updated.ID.Hex(),
		"active":      active,
	}).Info("Đã đổi trạng thái hoạt động của franchise")

	mailer.SendFranchiseStatusNotification(updated.Contact.Email, updated.Name, active)
	return &updated, nil
}

// FindActiveById tìm Franchise đang hoạt động theo ID.
// Franchise không tồn tại hoặc đã tắt hoạt động đều trả về ErrNotFound
// (không phân biệt với bên ngoài, tránh lộ trạng thái nội bộ).
func (s *FranchiseService) FindActiveById(ctx context.Context, id primitive.ObjectID) (*models.Franchise, error) {
	franchise, err := s.FindOne(ctx, bson.M{"_id": id, "active": true}, nil)
	if err != nil {
		return nil, err
	}
	return &franchise, nil
}

// FindNearby tìm các franchise đang hoạt động gần tọa độ cho trước,
// sắp theo khoảng cách tăng dần ($near trên index 2dsphere).
// maxDistance <= 0 dùng mặc định 10km.
func (s *FranchiseService) FindNearby(ctx context.Context, longitude float64, latitude float64, maxDistance int64) ([]models.Franchise, error) {
	if maxDistance <= 0 {
		maxDistance = DefaultNearbyMaxDistance
	}
	filter := bson.M{
		"active": true,
		"location": bson.M{
			"$near": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{longitude, latitude},
				},
				"$maxDistance": maxDistance,
			},
		},
	}
	return s.Find(ctx, filter, nil)
}

// Delete xóa cứng một Franchise theo ID. Các tham chiếu tới franchise
// trong catalog (specificFranchises, perFranchiseOverrides) trở thành
// tham chiếu treo và được phía đọc xử lý như "not found".
func (s *FranchiseService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.DeleteById(ctx, id); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"franchiseId": id.Hex()}).Info("Đã xóa franchise")
	return nil
}
