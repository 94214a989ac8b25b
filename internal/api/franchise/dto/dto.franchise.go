// Package frandto - DTO input cho domain franchise.
package frandto

// GeoPointInput là tọa độ đầu vào. Dùng con trỏ để phân biệt
// "thiếu tọa độ" với "tọa độ 0" khi validate.
type GeoPointInput struct {
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

// ContactInput là thông tin liên hệ đầu vào
type ContactInput struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ZoneInput là một vùng giao hàng đầu vào.
// Area là ring ngoài của polygon, mỗi điểm là [longitude, latitude].
// Fee dùng con trỏ: vùng paid thiếu fee là một lỗi validate, không phải fee = 0.
type ZoneInput struct {
	Name string      `json:"name"`
	Kind string      `json:"kind"`
	Fee  *float64    `json:"fee"`
	Area [][]float64 `json:"area"`
}

// FranchiseCreateInput là dữ liệu tạo mới Franchise.
// Không dùng validator tag: validate domain gom ĐỦ danh sách vi phạm
// (không dừng ở lỗi đầu tiên) trong service.ValidateFranchiseInput.
type FranchiseCreateInput struct {
	Name     string         `json:"name"`
	Address  string         `json:"address"`
	City     string         `json:"city"`
	State    string         `json:"state"`
	Location *GeoPointInput `json:"location"`
	Zones    []ZoneInput    `json:"zones"`
	Contact  *ContactInput  `json:"contact"`
	Manager  string         `json:"manager"`
}

// FranchiseUpdateInput là dữ liệu cập nhật Franchise theo kiểu thay thế
// toàn bộ document (replace-style), cùng cấu trúc với create.
type FranchiseUpdateInput struct {
	Name     string         `json:"name"`
	Address  string         `json:"address"`
	City     string         `json:"city"`
	State    string         `json:"state"`
	Location *GeoPointInput `json:"location"`
	Zones    []ZoneInput    `json:"zones"`
	Contact  *ContactInput  `json:"contact"`
	Manager  string         `json:"manager"`
}

// NearbyQueryInput là query tìm franchise gần một tọa độ
type NearbyQueryInput struct {
	Longitude   *float64 `query:"longitude"`
	Latitude    *float64 `query:"latitude"`
	MaxDistance int64    `query:"maxDistance"` // mét, mặc định 10km
}
