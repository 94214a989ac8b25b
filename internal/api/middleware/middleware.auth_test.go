package middleware

import (
	"testing"

	models "phal_bites/internal/api/auth/models"
)

func TestRoleHasPermission_AdminHasEverything(t *testing.T) {
	for _, permission := range []string{
		"User.Block", "User.SetRole", "Franchise.Delete", "Product.Insert",
		"Delivery.Check", "Anything.AtAll",
	} {
		if !roleHasPermission(models.RoleAdmin, permission) {
			t.Errorf("Admin phải có quyền %s", permission)
		}
	}
}

func TestRoleHasPermission_Manager(t *testing.T) {
	granted := []string{
		"Franchise.Insert", "Franchise.Update", "Franchise.Delete", "Franchise.Activate",
		"Product.Insert", "Product.Update", "Product.Delete",
		"User.Read",
	}
	for _, permission := range granted {
		if !roleHasPermission(models.RoleManager, permission) {
			t.Errorf("Manager phải có quyền %s", permission)
		}
	}

	denied := []string{"User.Block", "User.SetRole", "User.Insert"}
	for _, permission := range denied {
		if roleHasPermission(models.RoleManager, permission) {
			t.Errorf("Manager không được có quyền %s", permission)
		}
	}
}

func TestRoleHasPermission_StaffReadOnly(t *testing.T) {
	granted := []string{"User.Read", "Franchise.Read", "Product.Read"}
	for _, permission := range granted {
		if !roleHasPermission(models.RoleStaff, permission) {
			t.Errorf("Staff phải có quyền %s", permission)
		}
	}

	denied := []string{"Franchise.Insert", "Franchise.Activate", "Product.Update", "User.Block"}
	for _, permission := range denied {
		if roleHasPermission(models.RoleStaff, permission) {
			t.Errorf("Staff không được có quyền %s", permission)
		}
	}
}

func TestRoleHasPermission_UnknownRole(t *testing.T) {
	if roleHasPermission("customer", "Product.Read") {
		t.Error("Vai trò ngoài tập đóng không có quyền nào")
	}
}
