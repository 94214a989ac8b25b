package utility

import (
	"encoding/json"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID chuyển đổi chuỗi thành ObjectID
// @params - chuỗi cần chuyển đổi
// @returns - ObjectID (NilObjectID nếu chuỗi không hợp lệ)
func String2ObjectID(id string) primitive.ObjectID {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectId
}

// P2Int64 chuyển đổi giá trị query/payload thành int64.
// Hỗ trợ chuỗi (query param) và json.Number (body dùng decoder.UseNumber()).
// Trả về 0 nếu không chuyển đổi được.
func P2Int64(input interface{}) int64 {
	switch v := input.(type) {
	case string:
		result, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return result
	case json.Number:
		result, err := v.Int64()
		if err != nil {
			return 0
		}
		return result
	default:
		return 0
	}
}
