package global

import (
	"phal_bites/config"
	"phal_bites/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users      string // Tên collection cho người dùng
	Franchises string // Tên collection cho franchise
	Products   string // Tên collection cho sản phẩm
}

// Các biến toàn cục
var Validate *validator.Validate                               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                 // Cấu hình của server
var MongoDB_ColNames = *new(MongoDB_CollectionName)            // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
