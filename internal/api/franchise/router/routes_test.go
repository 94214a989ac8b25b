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

// newTestApp dựng app chỉ với route franchise, collection là placeholder
// (các case dưới đây đều dừng ở middleware hoặc validate, không chạm DB).
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	global.MongoDB_ColNames.Users = "auth_users"
	global.MongoDB_ColNames.Franchises = "franchises"
	for _, name := range []string{global.MongoDB_ColNames.Users, global.MongoDB_ColNames.Franchises} {
		if _, err := global.RegistryCollections.Register(name, &mongo.Collection{}); err != nil {
			t.Fatalf("Không đăng ký được collection %s: %v", name, err)
		}
	}

	app := fiber.New()
	v1 := app.Group("/api/v1")
	if err := Register(v1, apirouter.NewRouter(app)); err != nil {
		t.Fatalf("Không đăng ký được route franchise: %v", err)
	}
	return app
}

// Tìm franchise gần là endpoint công khai: không token vẫn tới handler
// (400 vì thiếu tọa độ), không bị chặn 401.
func TestRegister_NearbyIsPublic(t *testing.T) {
	app := newTestApp(t)

	req, _ := http.NewRequest("GET", "/api/v1/public/franchise/nearby", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request thất bại: %v", err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		t.Fatal("Endpoint công khai không được yêu cầu token")
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Thiếu tọa độ phải trả 400, got %d", resp.StatusCode)
	}
}

// CRUD quản trị vẫn bị gắn quyền: không token là 401.
func TestRegister_AdminRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	for _, tc := range []struct{ method, path string }{
		{"POST", "/api/v1/franchise/insert-one"},
		{"PUT", "/api/v1/franchise/update-by-id/000000000000000000000000"},
		{"GET", "/api/v1/franchise/find"},
		{"PUT", "/api/v1/franchise/activate-by-id/000000000000000000000000"},
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
	if !registered["/api/v1/franchise/insert-one"] {
		t.Fatal("Thiếu route insert-one, bảng route không như kỳ vọng")
	}
	for _, path := range []string{
		"/api/v1/franchise/insert-many",
		"/api/v1/franchise/update-one",
		"/api/v1/franchise/update-many",
		"/api/v1/franchise/find-one-and-update",
		"/api/v1/franchise/upsert-one",
		"/api/v1/franchise/upsert-many",
	} {
		if registered[path] {
			t.Errorf("Route %s bỏ qua validate domain, không được đăng ký", path)
		}
	}
}
