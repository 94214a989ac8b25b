// Package models - model Franchise và vùng giao hàng (DeliveryZone) thuộc domain franchise.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại phí giao hàng của một vùng. Tập đóng: free (miễn phí) hoặc paid (phí cố định).
const (
	ZoneKindFree = "free"
	ZoneKindPaid = "paid"
)

// IsValidZoneKind kiểm tra loại vùng có hợp lệ không.
func IsValidZoneKind(kind string) bool {
	return kind == ZoneKindFree || kind == ZoneKindPaid
}

// GeoJSONPoint là một điểm GeoJSON (WGS84). Coordinates theo thứ tự [longitude, latitude].
// Lưu dạng GeoJSON để MongoDB tạo được index 2dsphere và truy vấn $near.
type GeoJSONPoint struct {
	Type        string    `json:"type" bson:"type"`               // Luôn là "Point"
	Coordinates []float64 `json:"coordinates" bson:"coordinates"` // [longitude, latitude]
}

// NewGeoJSONPoint tạo GeoJSONPoint từ cặp tọa độ (longitude, latitude).
func NewGeoJSONPoint(longitude float64, latitude float64) GeoJSONPoint {
	return GeoJSONPoint{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

// GeoJSONPolygon là một polygon GeoJSON. Coordinates[0] là ring ngoài,
// mỗi điểm là [longitude, latitude]. Ring được đóng ngầm định
// (điểm cuối không cần trùng điểm đầu).
type GeoJSONPolygon struct {
	Type        string        `json:"type" bson:"type"`               // Luôn là "Polygon"
	Coordinates [][][]float64 `json:"coordinates" bson:"coordinates"` // [ring][point][lon,lat]
}

// NewGeoJSONPolygon tạo GeoJSONPolygon từ một ring ngoài duy nhất.
func NewGeoJSONPolygon(ring [][]float64) GeoJSONPolygon {
	return GeoJSONPolygon{
		Type:        "Polygon",
		Coordinates: [][][]float64{ring},
	}
}

// Ring trả về ring ngoài của polygon (nil nếu polygon rỗng).
func (p GeoJSONPolygon) Ring() [][]float64 {
	if len(p.Coordinates) == 0 {
		return nil
	}
	return p.Coordinates[0]
}

// DeliveryZone là một vùng giao hàng của franchise: polygon có tên kèm chính sách phí.
// Name là duy nhất trong phạm vi một franchise, không duy nhất toàn cục.
// Kind = paid yêu cầu Fee >= 0; kind = free thì Fee luôn bị bỏ qua (phí bằng 0).
type DeliveryZone struct {
	Name string         `json:"name" bson:"name"`
	Kind string         `json:"kind" bson:"kind"`
	Fee  float64        `json:"fee" bson:"fee"`
	Area GeoJSONPolygon `json:"area" bson:"area"`
}

// Contact chứa thông tin liên hệ của franchise
type Contact struct {
	Phone string `json:"phone" bson:"phone"`
	Email string `json:"email" bson:"email"`
}

// Franchise là một cửa hàng vật lý với vị trí và danh sách vùng giao hàng.
// Zones là danh sách CÓ THỨ TỰ: khi kiểm tra giao hàng, vùng khớp đầu tiên
// theo thứ tự lưu sẽ thắng (first-match-wins).
// Xóa Franchise là xóa cứng; trạng thái hoạt động bật/tắt qua Active.
type Franchise struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" index:"text"`
	Address   string             `json:"address" bson:"address"`
	City      string             `json:"city" bson:"city" index:"single"`
	State     string             `json:"state" bson:"state"`
	Location  GeoJSONPoint       `json:"location" bson:"location" index:"2dsphere"`
	Zones     []DeliveryZone     `json:"zones" bson:"zones"`
	Contact   Contact            `json:"contact" bson:"contact"`
	Manager   string             `json:"manager,omitempty" bson:"manager,omitempty"` // ID của User quản lý (tùy chọn)
	Active    bool               `json:"active" bson:"active" default:"true"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// FranchisePaginateResult đại diện cho kết quả phân trang Franchise
type FranchisePaginateResult struct {
	Page      int64       `json:"page" bson:"page"`
	Limit     int64       `json:"limit" bson:"limit"`
	ItemCount int64       `json:"itemCount" bson:"itemCount"`
	Items     []Franchise `json:"items" bson:"items"`
}
