package catsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	catdto "phal_bites/internal/api/catalog/dto"
	models "phal_bites/internal/api/catalog/models"
)

func f64(v float64) *float64 { return &v }

func validProductInput() *catdto.ProductCreateInput {
	return &catdto.ProductCreateInput{
		Name:      "Thali rau củ",
		DietTag:   models.DietVeg,
		Category:  models.CategoryMeal,
		OrderMode: models.OrderModeOneTime,
		TimeOfDay: models.TimeOfDayAfternoon,
		Pricing:   &catdto.PricingInput{BasePrice: f64(150)},
		Availability: &catdto.AvailabilityInput{
			AllFranchises: true,
		},
	}
}

func TestValidateProductInput_Valid(t *testing.T) {
	if violations := ValidateProductInput(validProductInput()); len(violations) != 0 {
		t.Errorf("Đầu vào hợp lệ không được có vi phạm, got %+v", violations)
	}
}

func TestValidateProductInput_SubscriptionRequiresDuration(t *testing.T) {
	input := validProductInput()
	input.Category = models.CategoryPlan
	input.OrderMode = models.OrderModeSubscription
	input.Subscription = nil

	violations := ValidateProductInput(input)
	if len(violations) != 1 || violations[0].Field != "subscription" {
		t.Errorf("Subscription thiếu cấu hình chu kỳ phải là 1 vi phạm, got %+v", violations)
	}

	input.Subscription = &catdto.SubscriptionInput{Duration: "daily"}
	violations = ValidateProductInput(input)
	if len(violations) != 1 || violations[0].Field != "subscription.duration" {
		t.Errorf("Chu kỳ không hợp lệ phải là 1 vi phạm, got %+v", violations)
	}
}

// daysIncluded rỗng được chấp nhận (chỉ cảnh báo), không phải vi phạm
func TestValidateProductInput_EmptyDaysIncludedAllowed(t *testing.T) {
	input := validProductInput()
	input.OrderMode = models.OrderModeSubscription
	input.Subscription = &catdto.SubscriptionInput{Duration: models.DurationWeekly}

	if violations := ValidateProductInput(input); len(violations) != 0 {
		t.Errorf("daysIncluded rỗng không phải vi phạm, got %+v", violations)
	}
}

func TestValidateProductInput_CollectsAllViolations(t *testing.T) {
	input := &catdto.ProductCreateInput{
		Name:      "",
		DietTag:   "vegan",
		Category:  "snack",
		OrderMode: "prepaid",
		Pricing:   nil,
	}

	violations := ValidateProductInput(input)
	fields := map[string]bool{}
	for _, v := range violations {
		fields[v.Field] = true
	}
	for _, want := range []string{"name", "dietTag", "category", "orderMode", "pricing.basePrice"} {
		if !fields[want] {
			t.Errorf("Thiếu vi phạm cho %s (violations: %+v)", want, violations)
		}
	}
}

func TestValidateProductInput_OverrideRules(t *testing.T) {
	franchiseID := primitive.NewObjectID().Hex()
	input := validProductInput()
	input.Pricing.PerFranchiseOverrides = map[string]catdto.PriceOverrideInput{
		franchiseID:  {Price: f64(100), DiscountPercent: 120},
		"not-an-oid": {Price: f64(100), DiscountPercent: 10},
	}

	violations := ValidateProductInput(input)
	fields := map[string]bool{}
	for _, v := range violations {
		fields[v.Field] = true
	}
	if !fields["pricing.perFranchiseOverrides."+franchiseID+".discountPercent"] {
		t.Errorf("Giảm giá ngoài [0,100] phải bị bắt, got %+v", violations)
	}
	if !fields["pricing.perFranchiseOverrides.not-an-oid"] {
		t.Errorf("Khóa override không phải ObjectID hex phải bị bắt, got %+v", violations)
	}
}

func TestBuildProduct_Defaults(t *testing.T) {
	input := validProductInput()
	input.TimeOfDay = ""

	product, err := BuildProduct(input)
	if err != nil {
		t.Fatalf("Đầu vào hợp lệ không được trả lỗi: %v", err)
	}
	if product.TimeOfDay != models.TimeOfDayAllDay {
		t.Errorf("TimeOfDay rỗng phải mặc định allday, got %s", product.TimeOfDay)
	}
	if !product.Active {
		t.Error("Sản phẩm mới tạo phải ở trạng thái hoạt động")
	}
	if product.Subscription != nil {
		t.Error("Sản phẩm onetime không được có cấu hình subscription")
	}
	if product.Pricing.BasePrice != 150 {
		t.Errorf("Giá gốc phải được giữ nguyên 150, got %v", product.Pricing.BasePrice)
	}
}
