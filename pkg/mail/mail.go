package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"SmartNotes/config"
)

type Sender struct {
	conf *config.Mail
}

func NewSender(conf *config.Config) *Sender {
	return &Sender{conf: conf.Mail}
}

// Send 发送一封纯文本邮件 失败由调用方记录 不在此重试
func (s *Sender) Send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.conf.Host, s.conf.Port)

	var auth smtp.Auth
	if s.conf.Username != "" {
		auth = smtp.PlainAuth("", s.conf.Username, s.conf.Password, s.conf.Host)
	}

	msg := strings.Join([]string{
		"From: " + s.conf.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		body,
	}, "\r\n")

	return smtp.SendMail(addr, auth, s.conf.From, []string{to}, []byte(msg))
}
