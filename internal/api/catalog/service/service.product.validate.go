package catsvc

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	catdto "phal_bites/internal/api/catalog/dto"
	models "phal_bites/internal/api/catalog/models"
	"phal_bites/internal/common"
)

// ValidateProductInput kiểm tra dữ liệu tạo Product và gom TOÀN BỘ vi phạm.
// Trả về danh sách rỗng khi dữ liệu hợp lệ.
func ValidateProductInput(input *catdto.ProductCreateInput) []common.ValidationViolation {
	violations := []common.ValidationViolation{}

	if input.Name == "" {
		violations = append(violations, common.ValidationViolation{Field: "name", Message: "Tên sản phẩm là bắt buộc"})
	}

	switch input.DietTag {
	case models.DietVeg, models.DietNonVeg:
	default:
		violations = append(violations, common.ValidationViolation{Field: "dietTag", Message: "Nhãn chế độ ăn không hợp lệ. Các giá trị hợp lệ: veg, nonveg"})
	}

	switch input.Category {
	case models.CategoryMeal, models.CategoryPlan:
	default:
		violations = append(violations, common.ValidationViolation{Field: "category", Message: "Loại sản phẩm không hợp lệ. Các giá trị hợp lệ: meal, plan"})
	}

	switch input.OrderMode {
	case models.OrderModeOneTime:
	case models.OrderModeSubscription:
		// Subscription bắt buộc phải có chu kỳ hợp lệ
		if input.Subscription == nil {
			violations = append(violations, common.ValidationViolation{Field: "subscription", Message: "Sản phẩm subscription phải có cấu hình chu kỳ"})
		} else {
			switch input.Subscription.Duration {
			case models.DurationWeekly, models.DurationMonthly:
			default:
				violations = append(violations, common.ValidationViolation{Field: "subscription.duration", Message: "Chu kỳ không hợp lệ. Các giá trị hợp lệ: weekly, monthly"})
			}
			// daysIncluded rỗng được chấp nhận nhưng đáng ngờ, chỉ cảnh báo
			if len(input.Subscription.DaysIncluded) == 0 {
				logrus.WithFields(logrus.Fields{"product": input.Name}).Warn("Sản phẩm subscription không có ngày phục vụ nào (daysIncluded rỗng)")
			}
		}
	default:
		violations = append(violations, common.ValidationViolation{Field: "orderMode", Message: "Hình thức đặt hàng không hợp lệ. Các giá trị hợp lệ: onetime, subscription"})
	}

	if input.TimeOfDay != "" {
		switch input.TimeOfDay {
		case models.TimeOfDayMorning, models.TimeOfDayAfternoon, models.TimeOfDayEvening, models.TimeOfDayAllDay:
		default:
			violations = append(violations, common.ValidationViolation{Field: "timeOfDay", Message: "Khung giờ không hợp lệ. Các giá trị hợp lệ: morning, afternoon, evening, allday"})
		}
	}

	violations = append(violations, validatePricing(input.Pricing)...)

	if input.Availability != nil {
		for i, idStr := range input.Availability.SpecificFranchises {
			if _, err := primitive.ObjectIDFromHex(idStr); err != nil {
				violations = append(violations, common.ValidationViolation{
					Field:   fmt.Sprintf("availability.specificFranchises[%d]", i),
					Message: "ID franchise không hợp lệ: " + idStr,
				})
			}
		}
	}

	return violations
}

func validatePricing(pricing *catdto.PricingInput) []common.ValidationViolation {
	violations := []common.ValidationViolation{}
	if pricing == nil {
		return append(violations, common.ValidationViolation{Field: "pricing.basePrice", Message: "Giá gốc là bắt buộc"})
	}
	if pricing.BasePrice == nil {
		violations = append(violations, common.ValidationViolation{Field: "pricing.basePrice", Message: "Giá gốc là bắt buộc"})
	} else if *pricing.BasePrice < 0 {
		violations = append(violations, common.ValidationViolation{Field: "pricing.basePrice", Message: "Giá gốc không được âm"})
	}

	for franchiseID, override := range pricing.PerFranchiseOverrides {
		field := "pricing.perFranchiseOverrides." + franchiseID
		if _, err := primitive.ObjectIDFromHex(franchiseID); err != nil {
			violations = append(violations, common.ValidationViolation{Field: field, Message: "Khóa override phải là ObjectID hex của franchise"})
		}
		if override.Price == nil {
			violations = append(violations, common.ValidationViolation{Field: field + ".price", Message: "Giá override là bắt buộc"})
		} else if *override.Price < 0 {
			violations = append(violations, common.ValidationViolation{Field: field + ".price", Message: "Giá override không được âm"})
		}
		if override.DiscountPercent < 0 || override.DiscountPercent > 100 {
			violations = append(violations, common.ValidationViolation{Field: field + ".discountPercent", Message: "Phần trăm giảm giá phải nằm trong khoảng [0, 100]"})
		}
	}
	return violations
}

// BuildProduct validate đầu vào và dựng model Product hoàn chỉnh.
// Trả về ValidationError chứa đủ danh sách vi phạm khi đầu vào không hợp lệ.
func BuildProduct(input *catdto.ProductCreateInput) (*models.Product, error) {
	violations := ValidateProductInput(input)
	if len(violations) > 0 {
		return nil, common.NewValidationError(violations)
	}

	timeOfDay := input.TimeOfDay
	if timeOfDay == "" {
		timeOfDay = models.TimeOfDayAllDay
	}

	var subscription *models.Subscription
	if input.OrderMode == models.OrderModeSubscription {
		subscription = &models.Subscription{
			Duration:     input.Subscription.Duration,
			DaysIncluded: input.Subscription.DaysIncluded,
		}
	}

	pricing := models.Pricing{BasePrice: *input.Pricing.BasePrice}
	if len(input.Pricing.PerFranchiseOverrides) > 0 {
		pricing.PerFranchiseOverrides = map[string]models.PriceOverride{}
		for franchiseID, override := range input.Pricing.PerFranchiseOverrides {
			pricing.PerFranchiseOverrides[franchiseID] = models.PriceOverride{
				Price:           *override.Price,
				DiscountPercent: override.DiscountPercent,
			}
		}
	}

	availability := models.Availability{}
	if input.Availability != nil {
		availability.AllFranchises = input.Availability.AllFranchises
		for _, idStr := range input.Availability.SpecificFranchises {
			id, _ := primitive.ObjectIDFromHex(idStr)
			availability.SpecificFranchises = append(availability.SpecificFranchises, id)
		}
	}

	return &models.Product{
		Name:            input.Name,
		Description:     input.Description,
		DietTag:         input.DietTag,
		Category:        input.Category,
		OrderMode:       input.OrderMode,
		Subscription:    subscription,
		TimeOfDay:       timeOfDay,
		Pricing:         pricing,
		Availability:    availability,
		Images:          input.Images,
		Ingredients:     input.Ingredients,
		NutritionalInfo: input.NutritionalInfo,
		Active:          true,
	}, nil
}
