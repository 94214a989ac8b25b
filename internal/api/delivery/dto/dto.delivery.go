// Package delidto - DTO cho kiểm tra khả năng giao hàng.
package delidto

// DeliveryCheckInput là yêu cầu kiểm tra giao hàng tới một tọa độ.
// Tọa độ dùng con trỏ: thiếu hoặc không phải số là lỗi client (400),
// không được âm thầm mặc định về 0.
type DeliveryCheckInput struct {
	FranchiseID string   `json:"franchiseId"`
	Longitude   *float64 `json:"longitude"`
	Latitude    *float64 `json:"latitude"`
}

// DeliveryCheckResult là kết quả kiểm tra giao hàng.
// ZoneName là con trỏ để serialize thành null khi không có vùng nào khớp.
type DeliveryCheckResult struct {
	IsDeliverable bool    `json:"isDeliverable"`
	DeliveryFee   float64 `json:"deliveryFee"`
	ZoneName      *string `json:"zoneName"`
	FranchiseID   string  `json:"franchiseId"`
	FranchiseName string  `json:"franchiseName"`
}
