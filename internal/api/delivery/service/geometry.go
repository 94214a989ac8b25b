package delisvc

// Kiểm tra điểm-trong-polygon bằng ray casting trên ring ngoài của vùng.
// Quy ước biên: điểm nằm ĐÚNG trên cạnh hoặc đỉnh của polygon được coi là
// BÊN TRONG. Quy ước này cố định và được test kèm theo.

const boundaryEpsilon = 1e-12

// PointInRing cho biết điểm (longitude, latitude) có nằm trong ring không.
// Ring là dãy điểm [longitude, latitude], đóng ngầm định (điểm cuối nối về điểm đầu).
// Ring dưới 3 điểm không tạo thành vùng nào, luôn trả về false.
func PointInRing(longitude float64, latitude float64, ring [][]float64) bool {
	n := len(ring)
	if n < 3 {
		return false
	}

	// Điểm trên biên tính là bên trong
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if onSegment(longitude, latitude, ring[i], ring[j]) {
			return true
		}
	}

	// Ray casting: đếm số lần tia ngang từ điểm cắt các cạnh của ring
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]

		intersects := (yi > latitude) != (yj > latitude) &&
			longitude < (xj-xi)*(latitude-yi)/(yj-yi)+xi
		if intersects {
			inside = !inside
		}
	}
	return inside
}

// onSegment kiểm tra điểm có nằm trên đoạn thẳng a-b không (trong sai số epsilon)
func onSegment(x float64, y float64, a []float64, b []float64) bool {
	ax, ay := a[0], a[1]
	bx, by := b[0], b[1]

	// Điểm phải thẳng hàng với a-b
	cross := (bx-ax)*(y-ay) - (by-ay)*(x-ax)
	if cross > boundaryEpsilon || cross < -boundaryEpsilon {
		return false
	}

	// Và nằm trong hình chữ nhật bao của đoạn
	if x < min(ax, bx)-boundaryEpsilon || x > max(ax, bx)+boundaryEpsilon {
		return false
	}
	if y < min(ay, by)-boundaryEpsilon || y > max(ay, by)+boundaryEpsilon {
		return false
	}
	return true
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
