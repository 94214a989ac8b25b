// Package mailer gửi email thông báo qua SMTP (gomail).
// Nếu SMTP_HOST rỗng thì mailer bị tắt, mọi lời gọi Send trở thành no-op.
package mailer

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"phal_bites/internal/global"
	"phal_bites/internal/logger"
	"phal_bites/internal/utility"
)

// Mailer gửi email qua một SMTP server cấu hình sẵn
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	fromName string
}

var (
	mailerInstance *Mailer
	mailerOnce     sync.Once
)

// GetMailer trả về instance duy nhất của Mailer (singleton pattern).
// Trả về nil nếu SMTP chưa được cấu hình (SMTP_HOST rỗng).
func GetMailer() *Mailer {
	mailerOnce.Do(func() {
		cfg := global.MongoDB_ServerConfig
		if cfg == nil || cfg.SMTP_Host == "" {
			logger.GetAppLogger().Info("SMTP chưa được cấu hình, tắt gửi email thông báo")
			return
		}
		mailerInstance = &Mailer{
			host:     cfg.SMTP_Host,
			port:     cfg.SMTP_Port,
			username: cfg.SMTP_User,
			password: cfg.SMTP_Password,
			from:     cfg.SMTP_From,
			fromName: cfg.SMTP_FromName,
		}
	})
	return mailerInstance
}

// Send gửi một email HTML tới recipient.
func (m *Mailer) Send(recipient string, subject string, htmlContent string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", m.fromName, m.from))
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlContent)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(msg)
}

// SendFranchiseStatusNotification thông báo cho franchise khi trạng thái hoạt động thay đổi.
// Best-effort: lỗi chỉ được log, không làm fail thao tác gốc.
func SendFranchiseStatusNotification(recipient string, franchiseName string, active bool) {
	m := GetMailer()
	if m == nil || recipient == "" {
		return
	}

	subject := fmt.Sprintf("Cửa hàng %s đã được kích hoạt", franchiseName)
	body := fmt.Sprintf(`<p>Xin chào,</p><p>Cửa hàng <b>%s</b> đã được kích hoạt và bắt đầu nhận đơn hàng.</p>`, franchiseName)
	if !active {
		subject = fmt.Sprintf("Cửa hàng %s đã bị tạm ngưng", franchiseName)
		body = fmt.Sprintf(`<p>Xin chào,</p><p>Cửa hàng <b>%s</b> đã bị tạm ngưng hoạt động. Vui lòng liên hệ quản trị viên để biết thêm chi tiết.</p>`, franchiseName)
	}

	// Gửi async để không chặn request
	go utility.GoProtect(func() {
		if err := m.Send(recipient, subject, body); err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"recipient": recipient,
				"franchise": franchiseName,
				"error":     err.Error(),
			}).Warn("Không thể gửi email thông báo trạng thái franchise")
		}
	})
}
