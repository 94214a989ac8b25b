// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các vai trò hợp lệ của hệ thống. Vai trò là tập đóng, không tạo thêm qua API.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// User định nghĩa mô hình người dùng
// Token chứa token xác thực mới nhất của người dùng
// Tokens chứa danh sách các token, mỗi thiết bị khác nhau sẽ có một token riêng để xác thực (bằng hwid)
type User struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Password   string             `json:"-" bson:"password,omitempty"`
	Phone      string             `json:"phone,omitempty" bson:"phone,omitempty" index:"unique,sparse"`
	Role       string             `json:"role" bson:"role" index:"single" default:"staff"`
	Department string             `json:"department" bson:"department" default:"General"`
	Token      string             `json:"token" bson:"token"`
	Tokens     []Token            `json:"-" bson:"tokens"`
	IsBlock    bool               `json:"-" bson:"isBlock"`
	BlockNote  string             `json:"-" bson:"blockNote"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}

// IsValidRole kiểm tra role có thuộc tập vai trò hợp lệ không.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

// UserPaginateResult đại diện cho kết quả phân trang User
type UserPaginateResult struct {
	Page      int64  `json:"page" bson:"page"`
	Limit     int64  `json:"limit" bson:"limit"`
	ItemCount int64  `json:"itemCount" bson:"itemCount"`
	Items     []User `json:"items" bson:"items"`
}
