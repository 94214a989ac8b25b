// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	authdto "phal_bites/internal/api/auth/dto"
	models "phal_bites/internal/api/auth/models"
	basesvc "phal_bites/internal/api/base/service"
	"phal_bites/internal/common"
	"phal_bites/internal/global"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// NewRegistrationInput chuẩn hóa đầu vào từ endpoint đăng ký công khai.
// Vai trò trong payload bị BỎ QUA: tài khoản tự đăng ký luôn là staff.
// Nâng quyền chỉ đi qua seed admin (EnsureAdminAccount) hoặc SetRole của admin.
func NewRegistrationInput(input *authdto.UserCreateInput) *authdto.UserCreateInput {
	normalized := *input
	normalized.Role = models.RoleStaff
	return &normalized
}

// Create tạo mới người dùng với mật khẩu đã hash bằng bcrypt.
// Role mặc định là staff nếu không chỉ định.
func (s *UserService) Create(ctx context.Context, input *authdto.UserCreateInput) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể mã hóa mật khẩu", common.StatusInternalServerError, err)
	}

	role := input.Role
	if role == "" {
		role = models.RoleStaff
	}
	if !models.IsValidRole(role) {
		return nil, common.NewError(common.ErrCodeValidationInput, "Vai trò không hợp lệ. Các vai trò hợp lệ: admin, manager, staff", common.StatusBadRequest, nil)
	}

	department := input.Department
	if department == "" {
		department = "General"
	}

	user := models.User{
		Name:       input.Name,
		Email:      input.Email,
		Password:   string(hashed),
		Phone:      input.Phone,
		Role:       role,
		Department: department,
		Tokens:     []models.Token{},
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": created.ID.Hex(), "email": created.Email, "role": created.Role}).Info("Create: Tạo người dùng thành công")
	return &created, nil
}

// Login đăng nhập bằng email và mật khẩu, trả về user kèm JWT token mới.
// Mỗi thiết bị (hwid) giữ một token riêng trong mảng tokens.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if err == common.ErrNotFound {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		logrus.WithFields(logrus.Fields{"email": input.Email}).Warn("Login: Sai mật khẩu")
		return nil, common.ErrInvalidCredentials
	}

	if user.IsBlock {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Tài khoản đã bị khóa: "+user.BlockNote, common.StatusForbidden, nil)
	}

	token, err := s.createJwtToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	// Cập nhật token theo hwid: mỗi thiết bị một token
	user.Token = token
	idTokenExist := -1
	for i, t := range user.Tokens {
		if t.Hwid == input.Hwid {
			idTokenExist = i
			break
		}
	}
	if idTokenExist == -1 {
		user.Tokens = append(user.Tokens, models.Token{Hwid: input.Hwid, JwtToken: token})
	} else {
		user.Tokens[idTokenExist].JwtToken = token
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token":  user.Token,
			"tokens": user.Tokens,
		},
	}
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "error": err.Error()}).Error("Login: Lỗi khi cập nhật token vào user")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": updatedUser.ID.Hex(), "email": updatedUser.Email}).Info("Login: Đăng nhập thành công")
	return &updatedUser, nil
}

// Logout đăng xuất người dùng (xóa token theo hwid)
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID, input *authdto.UserLogoutInput) error {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return err
	}
	newTokens := make([]models.Token, 0)
	for _, t := range user.Tokens {
		if t.Hwid != input.Hwid {
			newTokens = append(newTokens, t)
		}
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"tokens": newTokens,
			"token":  "",
		},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}

// ChangePassword đổi mật khẩu người dùng. Xóa toàn bộ tokens sau khi đổi để các thiết bị phải đăng nhập lại.
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangePasswordInput) error {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		return common.NewError(common.ErrCodeAuthCredentials, "Mật khẩu cũ không đúng", common.StatusUnauthorized, nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không thể mã hóa mật khẩu", common.StatusInternalServerError, err)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"password": string(hashed),
			"token":    "",
			"tokens":   []models.Token{},
		},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}

// createJwtToken tạo JWT token cho user, hết hạn sau 72 giờ.
func (s *UserService) createJwtToken(userID string) (string, error) {
	now := time.Now()
	claims := models.JwtToken{
		UserID:       userID,
		Time:         strconv.FormatInt(now.Unix(), 16),
		RandomNumber: strconv.Itoa(rand.Intn(100)),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(72 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(global.MongoDB_ServerConfig.JwtSecret))
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể tạo token", common.StatusInternalServerError, err)
	}
	return signed, nil
}
