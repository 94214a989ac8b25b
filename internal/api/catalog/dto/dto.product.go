// Package catdto - DTO input cho domain catalog.
package catdto

// PriceOverrideInput là giá riêng tại một franchise
type PriceOverrideInput struct {
	Price           *float64 `json:"price"`
	DiscountPercent float64  `json:"discountPercent"`
}

// PricingInput là cấu hình giá đầu vào.
// PerFranchiseOverrides khóa theo ObjectID hex của franchise.
type PricingInput struct {
	BasePrice             *float64                      `json:"basePrice"`
	PerFranchiseOverrides map[string]PriceOverrideInput `json:"perFranchiseOverrides"`
}

// AvailabilityInput xác định sản phẩm bán ở đâu
type AvailabilityInput struct {
	AllFranchises      bool     `json:"allFranchises"`
	SpecificFranchises []string `json:"specificFranchises"` // ObjectID hex
}

// SubscriptionInput là cấu hình gói subscription
type SubscriptionInput struct {
	Duration     string   `json:"duration"`
	DaysIncluded []string `json:"daysIncluded"`
}

// ProductCreateInput là dữ liệu tạo mới Product.
// Validate domain gom đủ vi phạm trong service.ValidateProductInput.
type ProductCreateInput struct {
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	DietTag         string             `json:"dietTag"`
	Category        string             `json:"category"`
	OrderMode       string             `json:"orderMode"`
	Subscription    *SubscriptionInput `json:"subscription"`
	TimeOfDay       string             `json:"timeOfDay"`
	Pricing         *PricingInput      `json:"pricing"`
	Availability    *AvailabilityInput `json:"availability"`
	Images          []string           `json:"images"`
	Ingredients     []string           `json:"ingredients"`
	NutritionalInfo string             `json:"nutritionalInfo"`
}

// ProductUpdateInput cập nhật Product theo kiểu thay thế document, cùng cấu trúc create
type ProductUpdateInput struct {
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	DietTag         string             `json:"dietTag"`
	Category        string             `json:"category"`
	OrderMode       string             `json:"orderMode"`
	Subscription    *SubscriptionInput `json:"subscription"`
	TimeOfDay       string             `json:"timeOfDay"`
	Pricing         *PricingInput      `json:"pricing"`
	Availability    *AvailabilityInput `json:"availability"`
	Images          []string           `json:"images"`
	Ingredients     []string           `json:"ingredients"`
	NutritionalInfo string             `json:"nutritionalInfo"`
}

// ProductListQueryInput là các filter khi liệt kê sản phẩm
type ProductListQueryInput struct {
	DietTag     string `query:"dietTag"`
	Category    string `query:"category"`
	OrderMode   string `query:"orderMode"`
	FranchiseID string `query:"franchiseId"` // lọc theo khả dụng tại franchise
	Page        int64  `query:"page"`
	Limit       int64  `query:"limit"`
}
