package utils

import (
	"fmt"
	"net/smtp"
	"os"

	"github.com/sony/gobreaker"

	"time-tracker/backend/logging"
)

// Mailer delivers notification mail through SMTP behind a circuit breaker, so
// a flapping mail server stops being hammered while requests keep flowing.
type Mailer struct {
	breaker *gobreaker.CircuitBreaker
}

func NewMailer(breaker *gobreaker.CircuitBreaker) *Mailer {
	return &Mailer{breaker: breaker}
}

func (m *Mailer) Send(to, subject, body string) error {
	_, err := m.breaker.Execute(func() (interface{}, error) {
		return nil, sendSMTP(to, subject, body)
	})
	if err != nil {
		logging.Logger.Errorf("Event ID: EMAIL_SEND_FAILED, Description: Failed to send email to '%s' with subject '%s': %v", to, subject, err)
		return err
	}
	logging.Logger.Infof("Event ID: EMAIL_SENT, Description: Email sent to '%s' with subject: '%s'", to, subject)
	return nil
}

func (m *Mailer) SendWelcomeEmail(to, firstName, lastName string) error {
	subject := "Welcome to Time Tracker!"
	body := fmt.Sprintf("Hi %s %s,<br><br>You have successfully signed up for Time Tracker. Start tracking your time efficiently today!", firstName, lastName)
	return m.Send(to, subject, body)
}

func (m *Mailer) SendPasswordResetEmail(to, resetURL string) error {
	subject := "Reset Your Time Tracker Password"
	body := fmt.Sprintf(`You recently requested to reset your Time Tracker password.<br><br><a href="%s">Reset Password</a><br><br>This link expires in 15 minutes. If you did not request a reset, ignore this email.`, resetURL)
	return m.Send(to, subject, body)
}

func sendSMTP(to, subject, body string) error {
	from := os.Getenv("EMAIL_FROM")
	password := os.Getenv("EMAIL_PASSWORD")
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")

	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	if smtpPort == "" {
		smtpPort = "587"
	}
	if from == "" || password == "" {
		return fmt.Errorf("EMAIL_FROM or EMAIL_PASSWORD is not set")
	}

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}
