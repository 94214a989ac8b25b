package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	models "phal_bites/internal/api/auth/models"
	authsvc "phal_bites/internal/api/auth/service"
	"phal_bites/internal/common"
	"phal_bites/internal/logger"
	"phal_bites/internal/utility"
)

// AuthManager quản lý xác thực và phân quyền người dùng
type AuthManager struct {
	UserCRUD *authsvc.UserService
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// rolePermissions là bảng phân quyền tĩnh theo vai trò.
// Tập vai trò là đóng (admin, manager, staff) nên quyền được khai báo cứng thay vì lưu DB.
// Admin có mọi quyền (xử lý riêng trong roleHasPermission).
var rolePermissions = map[string][]string{
	models.RoleManager: {
		"User.Read",
		"Franchise.Read", "Franchise.Insert", "Franchise.Update", "Franchise.Delete",
		"Franchise.Activate",
		"Product.Read", "Product.Insert", "Product.Update", "Product.Delete",
	},
	models.RoleStaff: {
		"User.Read",
		"Franchise.Read",
		"Product.Read",
	},
}

// roleHasPermission kiểm tra vai trò có quyền yêu cầu không. Admin luôn có mọi quyền.
func roleHasPermission(role string, permission string) bool {
	if role == models.RoleAdmin {
		return true
	}
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	newManager := new(AuthManager)

	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	newManager.UserCRUD = userService

	// Khởi tạo cache với thời gian sống 5 phút và thời gian dọn dẹp 10 phút
	newManager.Cache = utility.NewCache(5*time.Minute, 10*time.Minute)

	return newManager, nil
}

// findUserByToken tìm user theo token, dùng cache để giảm tải query DB.
// Ưu tiên query field "token" (token mới nhất) trước vì nó được cập nhật mỗi lần login.
// Nếu không tìm thấy, query trong array "tokens" (tokens theo hwid).
func (am *AuthManager) findUserByToken(ctx context.Context, token string) (models.User, error) {
	cacheKey := "user_token:" + token
	if cached, found := am.Cache.Get(cacheKey); found {
		return cached.(models.User), nil
	}

	user, err := am.UserCRUD.FindOne(ctx, bson.M{"token": token}, nil)
	if err != nil {
		user, err = am.UserCRUD.FindOne(ctx, bson.M{"tokens.jwtToken": token}, nil)
		if err != nil {
			return models.User{}, err
		}
	}

	am.Cache.Set(cacheKey, user)
	return user, nil
}

// AuthMiddleware middleware xác thực cho Fiber.
// requirePermission rỗng nghĩa là chỉ cần đăng nhập, không cần quyền cụ thể.
func AuthMiddleware(requirePermission string) fiber.Handler {
	// Sử dụng singleton instance của AuthManager
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		user, err := authManager.findUserByToken(c.Context(), token)
		if err != nil {
			// Chỉ log khi không tìm thấy token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token not found in database")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra user có bị block không
		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)
		c.Locals("user_role", user.Role)

		// Nếu không yêu cầu permission cụ thể, cho phép truy cập ngay
		// Đây là các endpoint như /auth/profile - chỉ cần xác thực
		if requirePermission == "" {
			return c.Next()
		}

		// Kiểm tra quyền theo bảng phân quyền tĩnh
		if !roleHasPermission(user.Role, requirePermission) {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id":             user.ID.Hex(),
				"user_email":          user.Email,
				"user_role":           user.Role,
				"required_permission": requirePermission,
				"path":                c.Path(),
			}).Warn("❌ [AUTH] User does not have required permission")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Không có quyền truy cập. Vui lòng liên hệ quản trị viên.",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu permission name vào context để handler sử dụng
		c.Locals("permission_name", requirePermission)
		return c.Next()
	}
}
