// Package router đăng ký các route thuộc domain franchise.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	franhdl "phal_bites/internal/api/franchise/handler"
	"phal_bites/internal/api/middleware"
	apirouter "phal_bites/internal/api/router"
)

// Register đăng ký route franchise lên v1: CRUD có validate, activate/deactivate,
// và nearby công khai cho khách hàng tìm cửa hàng gần nhất.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	franchiseHandler, err := franhdl.NewFranchiseHandler()
	if err != nil {
		return fmt.Errorf("failed to create franchise handler: %w", err)
	}

	// Chỉ mở các đường ghi đi qua validate domain (insert-one, update-by-id)
	r.RegisterCRUDRoutes(v1, "/franchise", franchiseHandler, apirouter.ValidatedWriteConfig, "Franchise")

	// Bật/tắt hoạt động là thao tác quản trị riêng, không gộp vào Update
	activateMiddleware := middleware.AuthMiddleware("Franchise.Activate")
	apirouter.RegisterRouteWithMiddleware(v1, "/franchise", "PUT", "/activate-by-id/:id", []fiber.Handler{activateMiddleware}, franchiseHandler.HandleActivate)
	apirouter.RegisterRouteWithMiddleware(v1, "/franchise", "PUT", "/deactivate-by-id/:id", []fiber.Handler{activateMiddleware}, franchiseHandler.HandleDeactivate)

	// Công khai: khách hàng tìm franchise gần mình, không cần đăng nhập
	apirouter.RegisterRouteWithMiddleware(v1, "/public/franchise", "GET", "/nearby", nil, franchiseHandler.HandleNearby)

	return nil
}
