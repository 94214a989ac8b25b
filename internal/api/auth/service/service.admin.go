// Package authsvc - service quản trị (Admin): block user, set role, seed tài khoản admin.
package authsvc

import (
	"context"
	"errors"
	"fmt"

	authdto "phal_bites/internal/api/auth/dto"
	models "phal_bites/internal/api/auth/models"
	basesvc "phal_bites/internal/api/base/service"
	"phal_bites/internal/common"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// AdminService là cấu trúc chứa các phương thức liên quan đến admin
type AdminService struct {
	userService *UserService
}

// NewAdminService tạo mới AdminService
func NewAdminService() (*AdminService, error) {
	userService, err := NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	return &AdminService{
		userService: userService,
	}, nil
}

// asUserLookupError đổi ErrNotFound chung của tầng DB thành ErrUserNotFound
// khi tra cứu người dùng theo email, để API quản trị trả thông điệp rõ ràng.
func asUserLookupError(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrUserNotFound
	}
	return err
}

// SetRole gán vai trò cho User dựa trên Email. Vai trò phải thuộc tập đóng admin/manager/staff.
func (s *AdminService) SetRole(ctx context.Context, email string, role string) (*models.User, error) {
	if !models.IsValidRole(role) {
		return nil, common.NewError(common.ErrCodeValidationInput, "Vai trò không hợp lệ. Các vai trò hợp lệ: admin, manager, staff", common.StatusBadRequest, nil)
	}

	filter := bson.M{"email": email}
	user, err := s.userService.FindOne(ctx, filter, nil)
	if err != nil {
		return nil, asUserLookupError(err)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"role": role},
	}
	updatedUser, err := s.userService.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}
	return &updatedUser, nil
}

// BlockUser chặn hoặc bỏ chặn User dựa trên Email và trạng thái Block
func (s *AdminService) BlockUser(ctx context.Context, email string, block bool, note string) (*models.User, error) {
	filter := bson.M{"email": email}
	user, err := s.userService.FindOne(ctx, filter, nil)
	if err != nil {
		return nil, asUserLookupError(err)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   block,
			"blockNote": note,
		},
	}
	updatedUser, err := s.userService.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}
	return &updatedUser, nil
}

// UnBlockUser mở khóa người dùng
func (s *AdminService) UnBlockUser(ctx context.Context, email string) (*models.User, error) {
	return s.BlockUser(ctx, email, false, "")
}

// EnsureAdminAccount đảm bảo tồn tại tài khoản admin với email cho trước.
// Nếu chưa có: tạo mới với mật khẩu được cấp. Nếu đã có: đảm bảo role là admin.
// Gọi khi khởi động server (seed từ config).
func (s *AdminService) EnsureAdminAccount(ctx context.Context, email string, password string) (*models.User, error) {
	filter := bson.M{"email": email}
	user, err := s.userService.FindOne(ctx, filter, nil)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		// Chưa có tài khoản: tạo mới với role admin
		created, createErr := s.userService.Create(ctx, &authdto.UserCreateInput{
			Name:     "Administrator",
			Email:    email,
			Password: password,
			Role:     models.RoleAdmin,
		})
		if createErr != nil {
			return nil, createErr
		}
		logrus.WithFields(logrus.Fields{"email": email}).Info("EnsureAdminAccount: Đã tạo tài khoản admin")
		return created, nil
	}

	if user.Role == models.RoleAdmin {
		return &user, nil
	}

	updated, err := s.userService.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"role": models.RoleAdmin},
	})
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"email": email}).Info("EnsureAdminAccount: Đã nâng tài khoản lên admin")
	return &updated, nil
}
