package authsvc

import (
	"testing"

	authdto "phal_bites/internal/api/auth/dto"
	models "phal_bites/internal/api/auth/models"
)

// Đăng ký công khai không được phép tự chọn vai trò: payload yêu cầu admin
// vẫn phải trở thành staff, nếu không một người lạ có thể tự cấp quyền admin.
func TestNewRegistrationInput_IgnoresRequestedRole(t *testing.T) {
	for _, requested := range []string{models.RoleAdmin, models.RoleManager, "superuser", ""} {
		input := &authdto.UserCreateInput{
			Name:     "Người đăng ký",
			Email:    "register@phalbites.in",
			Password: "MatKhauManh@123",
			Role:     requested,
		}

		normalized := NewRegistrationInput(input)
		if normalized.Role != models.RoleStaff {
			t.Errorf("Vai trò yêu cầu %q phải bị ép về staff, got %q", requested, normalized.Role)
		}
	}
}

func TestNewRegistrationInput_KeepsOtherFields(t *testing.T) {
	input := &authdto.UserCreateInput{
		Name:       "Người đăng ký",
		Email:      "register@phalbites.in",
		Password:   "MatKhauManh@123",
		Phone:      "+919800000001",
		Department: "Kitchen",
		Role:       models.RoleAdmin,
	}

	normalized := NewRegistrationInput(input)
	if normalized.Name != input.Name || normalized.Email != input.Email ||
		normalized.Password != input.Password || normalized.Phone != input.Phone ||
		normalized.Department != input.Department {
		t.Errorf("Chuẩn hóa chỉ được đổi vai trò, got %+v", normalized)
	}
	if input.Role != models.RoleAdmin {
		t.Error("Đầu vào gốc không được bị sửa tại chỗ")
	}
}
