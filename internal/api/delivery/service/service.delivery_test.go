package delisvc

import (
	"testing"

	franmodels "phal_bites/internal/api/franchise/models"
)

func freeZone(name string, lon, lat, half float64) franmodels.DeliveryZone {
	return franmodels.DeliveryZone{
		Name: name,
		Kind: franmodels.ZoneKindFree,
		Area: franmodels.NewGeoJSONPolygon(squareRing(lon, lat, half)),
	}
}

func paidZone(name string, fee, lon, lat, half float64) franmodels.DeliveryZone {
	return franmodels.DeliveryZone{
		Name: name,
		Kind: franmodels.ZoneKindPaid,
		Fee:  fee,
		Area: franmodels.NewGeoJSONPolygon(squareRing(lon, lat, half)),
	}
}

// Franchise tại (77.59, 12.97) với vùng free ~1km² quanh tâm và vùng paid
// (phí 30) ~5km² bao trọn vùng free: điểm cách tâm ~500m khớp vùng free
// (đứng trước trong danh sách), không phải vùng paid.
func TestEvaluateZones_FirstMatchWins(t *testing.T) {
	zones := []franmodels.DeliveryZone{
		freeZone("Nội thành", 77.59, 12.97, 0.005),
		paidZone("Ngoại thành", 30, 77.59, 12.97, 0.011),
	}

	// ~500m về phía đông của tâm
	deliverable, zoneName, fee := EvaluateZones(zones, 77.5946, 12.97)
	if !deliverable {
		t.Fatal("Điểm gần tâm phải giao được")
	}
	if zoneName == nil || *zoneName != "Nội thành" {
		t.Errorf("Vùng khớp phải là vùng free đứng trước, got %v", zoneName)
	}
	if fee != 0 {
		t.Errorf("Vùng free phải có phí 0, got %v", fee)
	}
}

func TestEvaluateZones_PaidFeeExact(t *testing.T) {
	zones := []franmodels.DeliveryZone{
		freeZone("Nội thành", 77.59, 12.97, 0.005),
		paidZone("Ngoại thành", 30, 77.59, 12.97, 0.011),
	}

	// Điểm ngoài vùng free nhưng trong vùng paid
	deliverable, zoneName, fee := EvaluateZones(zones, 77.598, 12.97)
	if !deliverable {
		t.Fatal("Điểm trong vùng paid phải giao được")
	}
	if zoneName == nil || *zoneName != "Ngoại thành" {
		t.Errorf("Vùng khớp phải là Ngoại thành, got %v", zoneName)
	}
	if fee != 30 {
		t.Errorf("Vùng paid phải trả về đúng phí cấu hình 30, got %v", fee)
	}
}

func TestEvaluateZones_NoMatch(t *testing.T) {
	zones := []franmodels.DeliveryZone{
		freeZone("Nội thành", 77.59, 12.97, 0.005),
		paidZone("Ngoại thành", 30, 77.59, 12.97, 0.011),
	}

	deliverable, zoneName, fee := EvaluateZones(zones, 78.0, 13.5)
	if deliverable {
		t.Error("Điểm ngoài mọi vùng không được giao")
	}
	if zoneName != nil {
		t.Errorf("Không khớp vùng nào thì zoneName phải là nil, got %q", *zoneName)
	}
	if fee != 0 {
		t.Errorf("Không khớp vùng nào thì phí phải là 0, got %v", fee)
	}
}

func TestEvaluateZones_FreeIgnoresStoredFee(t *testing.T) {
	// Vùng free có Fee lưu khác 0 (dữ liệu cũ) vẫn phải trả về phí 0
	zone := freeZone("Trung tâm", 77.59, 12.97, 0.005)
	zone.Fee = 99
	deliverable, _, fee := EvaluateZones([]franmodels.DeliveryZone{zone}, 77.59, 12.97)
	if !deliverable {
		t.Fatal("Điểm tâm phải giao được")
	}
	if fee != 0 {
		t.Errorf("Vùng free phải luôn có phí 0 bất kể Fee lưu trữ, got %v", fee)
	}
}

func TestEvaluateZones_EmptyZoneList(t *testing.T) {
	deliverable, zoneName, fee := EvaluateZones(nil, 77.59, 12.97)
	if deliverable || zoneName != nil || fee != 0 {
		t.Error("Franchise không có vùng nào thì không giao được")
	}
}
