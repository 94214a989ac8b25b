package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIsAvailableAt_AllFranchises(t *testing.T) {
	product := Product{
		Active:       true,
		Availability: Availability{AllFranchises: true},
	}
	// allFranchises = true thì khả dụng ở mọi franchise, bất kể danh sách cụ thể
	if !product.IsAvailableAt(primitive.NewObjectID()) {
		t.Error("Sản phẩm bán mọi nơi phải khả dụng ở franchise bất kỳ")
	}
}

func TestIsAvailableAt_SpecificFranchises(t *testing.T) {
	f1 := primitive.NewObjectID()
	f2 := primitive.NewObjectID()
	product := Product{
		Active: true,
		Availability: Availability{
			AllFranchises:      false,
			SpecificFranchises: []primitive.ObjectID{f1},
		},
	}

	if !product.IsAvailableAt(f1) {
		t.Error("Sản phẩm phải khả dụng ở franchise trong danh sách cho phép")
	}
	if product.IsAvailableAt(f2) {
		t.Error("Sản phẩm không được khả dụng ở franchise ngoài danh sách cho phép")
	}
}

func TestIsAvailableAt_InactiveNeverAvailable(t *testing.T) {
	product := Product{
		Active:       false,
		Availability: Availability{AllFranchises: true},
	}
	if product.IsAvailableAt(primitive.NewObjectID()) {
		t.Error("Sản phẩm đã tắt không bao giờ khả dụng")
	}
}

func TestEffectivePrice_FallbackToBasePrice(t *testing.T) {
	product := Product{
		Pricing: Pricing{BasePrice: 120},
	}
	got := product.EffectivePrice(primitive.NewObjectID())
	if got.Price != 120 {
		t.Errorf("Không có override thì giá phải là giá gốc 120, got %v", got.Price)
	}
	if got.DiscountPercent != 0 {
		t.Errorf("Không có override thì giảm giá phải là 0%%, got %v", got.DiscountPercent)
	}
}

func TestEffectivePrice_Override(t *testing.T) {
	f1 := primitive.NewObjectID()
	f2 := primitive.NewObjectID()
	product := Product{
		Pricing: Pricing{
			BasePrice: 120,
			PerFranchiseOverrides: map[string]PriceOverride{
				f1.Hex(): {Price: 100, DiscountPercent: 10},
			},
		},
	}

	got := product.EffectivePrice(f1)
	if got.Price != 100 || got.DiscountPercent != 10 {
		t.Errorf("Franchise có override phải nhận đúng giá override {100, 10}, got %+v", got)
	}

	// Franchise khác (kể cả đã bị xóa, tham chiếu treo) rơi về giá gốc
	got = product.EffectivePrice(f2)
	if got.Price != 120 || got.DiscountPercent != 0 {
		t.Errorf("Franchise không có override phải rơi về giá gốc {120, 0}, got %+v", got)
	}
}
