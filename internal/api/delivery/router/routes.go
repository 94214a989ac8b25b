// Package router đăng ký các route thuộc domain delivery.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	delihdl "phal_bites/internal/api/delivery/handler"
	apirouter "phal_bites/internal/api/router"
)

// Register đăng ký route kiểm tra giao hàng lên v1.
// Endpoint công khai: khách hàng kiểm tra khả năng giao hàng trước khi đặt,
// không cần tài khoản back-office.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	deliveryHandler, err := delihdl.NewDeliveryHandler()
	if err != nil {
		return fmt.Errorf("failed to create delivery handler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(v1, "/public/delivery", "POST", "/check", nil, deliveryHandler.HandleCheck)

	return nil
}
