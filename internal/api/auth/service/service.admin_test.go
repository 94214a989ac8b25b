package authsvc

import (
	"errors"
	"testing"

	"phal_bites/internal/common"
)

// Tra cứu người dùng theo email không thấy phải trả ErrUserNotFound (404,
// nhóm lỗi xác thực) thay cho ErrNotFound chung của tầng DB.
func TestAsUserLookupError(t *testing.T) {
	err := asUserLookupError(common.ErrNotFound)
	if !errors.Is(err, common.ErrUserNotFound) {
		t.Errorf("ErrNotFound phải được đổi thành ErrUserNotFound, got %v", err)
	}

	other := common.NewError(common.ErrCodeDatabaseConnection, "mất kết nối", common.StatusServiceUnavailable, nil)
	if got := asUserLookupError(other); !errors.Is(got, other) {
		t.Errorf("Lỗi khác ErrNotFound phải được giữ nguyên, got %v", got)
	}
}
