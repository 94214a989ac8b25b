package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	Level  string // Log level: debug, info, warn, error
	Format string // Format: json hoặc text
	Output string // Output: file, stdout, both

	LogPath string // Thư mục chứa log files (tương đối với root dir)

	// Tên file cho từng loại logger
	AppFile         string
	AuditFile       string
	PerformanceFile string
	ErrorFile       string

	// Cấu hình rotation (lumberjack)
	MaxSize    int  // MB mỗi file
	MaxBackups int  // Số file cũ giữ lại
	MaxAge     int  // Số ngày giữ file
	Compress   bool // Nén file cũ

	// ExcludePrefixes: các message prefix bị filter (không ghi log)
	ExcludePrefixes []string
}

// DefaultConfig trả về cấu hình logging mặc định
// Level và Output có thể override qua env LOG_LEVEL / LOG_OUTPUT
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:           "info",
		Format:          "json",
		Output:          "both",
		LogPath:         "logs",
		AppFile:         "app.log",
		AuditFile:       "audit.log",
		PerformanceFile: "performance.log",
		ErrorFile:       "error.log",
		MaxSize:         100,
		MaxBackups:      5,
		MaxAge:          30,
		Compress:        true,
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	if output := os.Getenv("LOG_OUTPUT"); output != "" {
		cfg.Output = output
	}

	return cfg
}

// FilterHook đánh dấu các log entries cần bỏ qua dựa trên message prefix
// Hook này chạy trước AsyncHook: entry bị filter được đánh dấu bằng field
// "_filtered" và AsyncHook sẽ bỏ qua không ghi
type FilterHook struct {
	excludePrefixes []string
}

// NewFilterHook tạo filter hook từ config
func NewFilterHook(cfg *LogConfig) *FilterHook {
	return &FilterHook{excludePrefixes: cfg.ExcludePrefixes}
}

// Levels trả về các log levels mà hook này xử lý
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đánh dấu entry nếu message khớp một exclude prefix
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	for _, prefix := range h.excludePrefixes {
		if strings.HasPrefix(entry.Message, prefix) {
			entry.Data["_filtered"] = true
			return nil
		}
	}
	return nil
}
