// Package router đăng ký các route thuộc domain catalog.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cathdl "phal_bites/internal/api/catalog/handler"
	"phal_bites/internal/api/middleware"
	apirouter "phal_bites/internal/api/router"
)

// Register đăng ký route catalog lên v1: CRUD sản phẩm có validate, bật/tắt,
// listing công khai có filter và catalog theo franchise.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productHandler, err := cathdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("failed to create product handler: %w", err)
	}

	// Chỉ mở các đường ghi đi qua validate domain (insert-one, update-by-id)
	r.RegisterCRUDRoutes(v1, "/product", productHandler, apirouter.ValidatedWriteConfig, "Product")

	updateMiddleware := middleware.AuthMiddleware("Product.Update")
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "PUT", "/activate-by-id/:id", []fiber.Handler{updateMiddleware}, productHandler.HandleActivate)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "PUT", "/deactivate-by-id/:id", []fiber.Handler{updateMiddleware}, productHandler.HandleDeactivate)

	// Công khai: menu chỉ gồm sản phẩm đang hoạt động, khách xem không cần đăng nhập
	apirouter.RegisterRouteWithMiddleware(v1, "/public/product", "GET", "/list", nil, productHandler.HandleList)

	readMiddleware := middleware.AuthMiddleware("Product.Read")
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "GET", "/available-at/:franchiseId", []fiber.Handler{readMiddleware}, productHandler.HandleAvailableAt)

	return nil
}
