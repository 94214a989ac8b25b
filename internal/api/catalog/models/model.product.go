// Package models - model Product và resolver giá/khả dụng thuộc domain catalog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Nhãn chế độ ăn của sản phẩm
const (
	DietVeg    = "veg"
	DietNonVeg = "nonveg"
)

// Loại sản phẩm: món lẻ hoặc gói (plan)
const (
	CategoryMeal = "meal"
	CategoryPlan = "plan"
)

// Hình thức đặt hàng
const (
	OrderModeOneTime      = "onetime"
	OrderModeSubscription = "subscription"
)

// Chu kỳ của gói subscription
const (
	DurationWeekly  = "weekly"
	DurationMonthly = "monthly"
)

// Khung giờ phục vụ
const (
	TimeOfDayMorning   = "morning"
	TimeOfDayAfternoon = "afternoon"
	TimeOfDayEvening   = "evening"
	TimeOfDayAllDay    = "allday"
)

// PriceOverride là giá riêng của sản phẩm tại một franchise cụ thể
type PriceOverride struct {
	Price           float64 `json:"price" bson:"price"`
	DiscountPercent float64 `json:"discountPercent" bson:"discountPercent"`
}

// Pricing chứa giá gốc và các giá override theo franchise.
// PerFranchiseOverrides khóa theo ObjectID hex của franchise (map bson yêu cầu khóa string).
type Pricing struct {
	BasePrice             float64                  `json:"basePrice" bson:"basePrice"`
	PerFranchiseOverrides map[string]PriceOverride `json:"perFranchiseOverrides,omitempty" bson:"perFranchiseOverrides,omitempty"`
}

// Availability xác định sản phẩm được bán ở những franchise nào.
// AllFranchises = true nghĩa là bán ở mọi franchise, bỏ qua SpecificFranchises.
type Availability struct {
	AllFranchises      bool                 `json:"allFranchises" bson:"allFranchises"`
	SpecificFranchises []primitive.ObjectID `json:"specificFranchises,omitempty" bson:"specificFranchises,omitempty"`
}

// Subscription mô tả chu kỳ của sản phẩm đặt theo gói
type Subscription struct {
	Duration     string   `json:"duration" bson:"duration"`                       // weekly | monthly
	DaysIncluded []string `json:"daysIncluded,omitempty" bson:"daysIncluded,omitempty"` // các thứ trong tuần
}

// Product là một sản phẩm trong catalog. Xóa mềm qua Active
// (khác với Franchise xóa cứng). Sản phẩm Active = false không bao giờ
// khả dụng, bất kể Availability.
// Tham chiếu franchise trong SpecificFranchises / PerFranchiseOverrides có thể
// trỏ tới franchise đã bị xóa; phía đọc coi đó là "not found", không phải lỗi.
type Product struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name" index:"text"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
	DietTag         string             `json:"dietTag" bson:"dietTag" index:"single"`
	Category        string             `json:"category" bson:"category" index:"single"`
	OrderMode       string             `json:"orderMode" bson:"orderMode"`
	Subscription    *Subscription      `json:"subscription,omitempty" bson:"subscription,omitempty"`
	TimeOfDay       string             `json:"timeOfDay" bson:"timeOfDay" default:"allday"`
	Pricing         Pricing            `json:"pricing" bson:"pricing"`
	Availability    Availability       `json:"availability" bson:"availability"`
	Images          []string           `json:"images,omitempty" bson:"images,omitempty"`
	Ingredients     []string           `json:"ingredients,omitempty" bson:"ingredients,omitempty"`
	NutritionalInfo string             `json:"nutritionalInfo,omitempty" bson:"nutritionalInfo,omitempty"`
	Active          bool               `json:"active" bson:"active" default:"true"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}

// IsAvailableAt cho biết sản phẩm có được bán tại franchise không.
// Sản phẩm không hoạt động thì không bao giờ khả dụng. Ngược lại khả dụng khi
// bán ở mọi franchise hoặc franchiseID nằm trong danh sách cho phép.
func (p *Product) IsAvailableAt(franchiseID primitive.ObjectID) bool {
	if !p.Active {
		return false
	}
	if p.Availability.AllFranchises {
		return true
	}
	for _, id := range p.Availability.SpecificFranchises {
		if id == franchiseID {
			return true
		}
	}
	return false
}

// EffectivePrice trả về giá thực tế của sản phẩm tại một franchise:
// giá override nếu franchise có cấu hình riêng, ngược lại giá gốc với 0% giảm.
func (p *Product) EffectivePrice(franchiseID primitive.ObjectID) PriceOverride {
	if override, ok := p.Pricing.PerFranchiseOverrides[franchiseID.Hex()]; ok {
		return override
	}
	return PriceOverride{Price: p.Pricing.BasePrice, DiscountPercent: 0}
}

// ProductPaginateResult đại diện cho kết quả phân trang Product
type ProductPaginateResult struct {
	Page      int64     `json:"page" bson:"page"`
	Limit     int64     `json:"limit" bson:"limit"`
	ItemCount int64     `json:"itemCount" bson:"itemCount"`
	Items     []Product `json:"items" bson:"items"`
}
