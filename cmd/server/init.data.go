package main

import (
	"context"

	authsvc "phal_bites/internal/api/auth/service"
	"phal_bites/internal/global"
	"phal_bites/internal/logger"
)

// InitDefaultData seed dữ liệu mặc định khi khởi động.
// Khi InitMode bật và có ADMIN_EMAIL/ADMIN_PASSWORD, đảm bảo tồn tại
// tài khoản admin đầu tiên (tạo mới hoặc nâng role nếu đã có user).
func InitDefaultData() {
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig

	if !cfg.InitMode {
		log.Info("InitMode disabled, skipping default data seed")
		return
	}
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Warn("InitMode enabled but ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	adminService, err := authsvc.NewAdminService()
	if err != nil {
		log.Fatalf("Failed to initialize admin service: %v", err)
	}

	admin, err := adminService.EnsureAdminAccount(context.Background(), cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to ensure admin account: %v", err)
	}
	log.Infof("Admin account ensured: %s (ID: %s)", admin.Email, admin.ID.Hex())
}
