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

// newTestApp dựng app chỉ với route catalog, collection là placeholder
// (các case dưới đây đều dừng ở middleware hoặc validate, không chạm DB).
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	global.MongoDB_ColNames.Users = "auth_users"
	global.MongoDB_ColNames.Products = "catalog_products"
	global.MongoDB_ColNames.Franchises = "franchises"
	for _, name := range []string{global.MongoDB_ColNames.Users, global.MongoDB_ColNames.Products, global.MongoDB_ColNames.Franchises} {
		if _, err := global.RegistryCollections.Register(name, &mongo.Collection{}); err != nil {
			t.Fatalf("Không đăng ký được collection %s: %v", name, err)
		}
	}

	app := fiber.New()
	v1 := app.Group("/api/v1")
	if err := Register(v1, apirouter.NewRouter(app)); err != nil {
		t.Fatalf("Không đăng ký được route catalog: %v", err)
	}
	return app
}

// Menu là endpoint công khai: không token vẫn tới handler
// (400 vì limit không phải số), không bị chặn 401.
func TestRegister_ListIsPublic(t *testing.T) {
	app := newTestApp(t)

	req, _ := http.NewRequest("GET", "/api/v1/public/product/list?limit=abc", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request thất bại: %v", err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		t.Fatal("Endpoint công khai không được yêu cầu token")
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Query sai kiểu phải trả 400, got %d", resp.StatusCode)
	}
}

// CRUD quản trị và catalog theo franchise vẫn bị gắn quyền.
func TestRegister_AdminRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	for _, tc := range []struct{ method, path string }{
		{"POST", "/api/v1/product/insert-one"},
		{"PUT", "/api/v1/product/update-by-id/000000000000000000000000"},
		{"GET", "/api/v1/product/find"},
		{"GET", "/api/v1/product/available-at/000000000000000000000000"},
	} {
		req, _ := http.NewRequest(tc.method, tc.path, strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Request %s %s thất bại: %v", tc.method, tc.path, err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s %s không token phải trả 401, got %d", tc.method, tc.path, resp.StatusCode)
		}
	}
}

// Các đường ghi bỏ qua validate domain không được đăng ký.
func TestRegister_UnvalidatedWriteRoutesAbsent(t *testing.T) {
	app := newTestApp(t)

	registered := map[string]bool{}
	for _, route := range app.GetRoutes(true) {
		registered[route.Path] = true
	}
	if !registered["/api/v1/product/insert-one"] {
		t.Fatal("Thiếu route insert-one, bảng route không như kỳ vọng")
	}
	for _, path := range []string{
		"/api/v1/product/insert-many",
		"/api/v1/product/update-one",
		"/api/v1/product/update-many",
		"/api/v1/product/find-one-and-update",
		"/api/v1/product/upsert-one",
		"/api/v1/product/upsert-many",
	} {
		if registered[path] {
			t.Errorf("Route %s bỏ qua validate domain, không được đăng ký", path)
		}
	}
}
