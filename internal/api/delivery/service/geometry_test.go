package delisvc

import "testing"

// squareRing tạo ring vuông quanh tâm (lon, lat) với nửa cạnh half (độ)
func squareRing(lon, lat, half float64) [][]float64 {
	return [][]float64{
		{lon - half, lat - half},
		{lon + half, lat - half},
		{lon + half, lat + half},
		{lon - half, lat + half},
	}
}

func TestPointInRing_Inside(t *testing.T) {
	ring := squareRing(77.59, 12.97, 0.01)
	if !PointInRing(77.59, 12.97, ring) {
		t.Error("Điểm tâm phải nằm trong polygon")
	}
	if !PointInRing(77.595, 12.975, ring) {
		t.Error("Điểm trong polygon phải trả về true")
	}
}

func TestPointInRing_Outside(t *testing.T) {
	ring := squareRing(77.59, 12.97, 0.01)
	if PointInRing(77.61, 12.97, ring) {
		t.Error("Điểm ngoài polygon phải trả về false")
	}
	if PointInRing(0, 0, ring) {
		t.Error("Điểm cách xa polygon phải trả về false")
	}
}

func TestPointInRing_BoundaryIsInside(t *testing.T) {
	ring := squareRing(77.59, 12.97, 0.01)

	// Điểm trên cạnh tính là bên trong
	if !PointInRing(77.60, 12.97, ring) {
		t.Error("Điểm trên cạnh polygon phải tính là bên trong")
	}
	// Đỉnh của polygon cũng tính là bên trong
	if !PointInRing(77.58, 12.96, ring) {
		t.Error("Đỉnh polygon phải tính là bên trong")
	}
}

func TestPointInRing_DegenerateRing(t *testing.T) {
	// Ring dưới 3 điểm không tạo thành vùng nào
	if PointInRing(0, 0, [][]float64{{0, 0}, {1, 1}}) {
		t.Error("Ring 2 điểm phải luôn trả về false")
	}
	if PointInRing(0, 0, nil) {
		t.Error("Ring rỗng phải luôn trả về false")
	}
}

func TestPointInRing_ConcavePolygon(t *testing.T) {
	// Polygon hình chữ L: phần lõm không thuộc vùng
	ring := [][]float64{
		{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4},
	}
	if !PointInRing(1, 3, ring) {
		t.Error("Điểm trong nhánh dọc của chữ L phải nằm trong")
	}
	if !PointInRing(3, 1, ring) {
		t.Error("Điểm trong nhánh ngang của chữ L phải nằm trong")
	}
	if PointInRing(3, 3, ring) {
		t.Error("Điểm trong phần lõm của chữ L phải nằm ngoài")
	}
}
