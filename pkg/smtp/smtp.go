package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
)

type ItfSmtp interface {
	SendOTP(userEmail string, otp string) error
	SendReturnRequest(name string, email string, orderID string, reason string) error
}

type smtp struct {
	auth       smtpPkg.Auth
	mail       string
	storeInbox string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	storeInbox := os.Getenv("STORE_INBOX")
	if storeInbox == "" {
		storeInbox = mail
	}
	auth := smtpPkg.PlainAuth("", mail, password, "smtp.gmail.com")

	return &smtp{auth: auth, mail: mail, storeInbox: storeInbox}
}

func (s *smtp) SendOTP(userEmail string, otp string) error {
	to := []string{userEmail}

	message := []byte(fmt.Sprintf("To: %s\r\nSubject: YeloSoul Password Reset\r\n\r\nHello, your password reset code is: %s. It expires in 10 minutes.",
		userEmail, otp))

	return smtpPkg.SendMail("smtp.gmail.com:587", s.auth, s.mail, to, message)
}

func (s *smtp) SendReturnRequest(name string, email string, orderID string, reason string) error {
	to := []string{s.storeInbox}

	message := []byte(fmt.Sprintf("To: %s\r\nSubject: Return Request - Order ID: %s\r\n\r\nName: %s\r\nEmail: %s\r\nOrder ID: %s\r\nReason: %s",
		s.storeInbox, orderID, name, email, orderID, reason))

	return smtpPkg.SendMail("smtp.gmail.com:587", s.auth, s.mail, to, message)
}
