package router

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"

	apirouter "phal_bites/internal/api/router"
	"phal_bites/internal/global"
)

// newTestApp dựng app chỉ với route delivery, collection là placeholder
// (các case dưới đây đều dừng ở validate, không chạm DB).
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	global.MongoDB_ColNames.Franchises = "franchises"
	if _, err := global.RegistryCollections.Register(global.MongoDB_ColNames.Franchises, &mongo.Collection{}); err != nil {
		t.Fatalf("Không đăng ký được collection: %v", err)
	}

	app := fiber.New()
	v1 := app.Group("/api/v1")
	if err := Register(v1, apirouter.NewRouter(app)); err != nil {
		t.Fatalf("Không đăng ký được route delivery: %v", err)
	}
	return app
}

// Kiểm tra giao hàng là endpoint công khai cho khách đặt món: request không có
// token phải đi thẳng tới handler (400 vì body rỗng), không bị chặn 401.
func TestRegister_CheckIsPublic(t *testing.T) {
	app := newTestApp(t)

	req, _ := http.NewRequest("POST", "/api/v1/public/delivery/check", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request thất bại: %v", err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		t.Fatal("Endpoint công khai không được yêu cầu token")
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Body rỗng phải trả 400, got %d", resp.StatusCode)
	}
}

// Route cũ có gắn quyền không còn tồn tại.
func TestRegister_NoAuthenticatedCheckRoute(t *testing.T) {
	app := newTestApp(t)

	req, _ := http.NewRequest("POST", "/api/v1/delivery/check", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request thất bại: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Route /delivery/check không còn, phải trả 404, got %d", resp.StatusCode)
	}
}
