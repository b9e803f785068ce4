// Package email sends transactional mail over SMTP.
package email

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	appointmentUsecases "campusdesk/internal/application/appointment/usecases"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

// SMTPEmailService implements the account mail service and the appointment
// notifier over a single SMTP dialer.
type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendPasswordResetEmail(to, name, token string) error {
	resetURL := fmt.Sprintf("%s/auth/reset-password?token=%s", s.config.BaseURL, token)
	if name == "" {
		name = "there"
	}

	subject := "Reset Your Password"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Password Reset Request</h2>
			<p>Hi %s,</p>
			<p>You have requested to reset the password for your campus account. Click the link below to reset it:</p>
			<p><a href="%s">Reset Password</a></p>
			<p>Or use this reset token manually:</p>
			<p><code>%s</code></p>
			<p>This link will expire in 10 minutes. Never share this token with anyone.</p>
			<p>If you didn't request this, please ignore this email and your password will remain unchanged.</p>
		</body>
		</html>
	`, name, resetURL, token)

	plainBody := fmt.Sprintf(`
Password Reset Request

Hi %s,

You have requested to reset the password for your campus account.

Reset your password by visiting:
%s

Or use this reset token manually:
%s

This link will expire in 10 minutes.

If you didn't request this, please ignore this email.
	`, name, resetURL, token)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendAppointmentRequestedEmail(data appointmentUsecases.AppointmentEmailData) error {
	facultyName := data.FacultyName
	if facultyName == "" {
		facultyName = "Faculty"
	}
	formattedDate := data.Date.Format("Jan 2, 2006")

	subject := fmt.Sprintf("New Appointment Request from %s", data.StudentName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Appointment Request</h2>
			<p>Dear %s,</p>
			<p><strong>%s</strong> (%s) has requested an appointment.</p>
			<p>Date: <strong>%s</strong><br>
			Time: <strong>%s</strong><br>
			Duration: <strong>%d minutes</strong><br>
			Reason: %s</p>
			<p>You can approve or reject this request in the app.</p>
		</body>
		</html>
	`, facultyName, data.StudentName, data.StudentEmail, formattedDate, data.TimeOfDay, data.Duration, data.Reason)

	plainBody := fmt.Sprintf(`
New Appointment Request

Student: %s (%s)
Date: %s
Time: %s
Duration: %d minutes
Reason: %s
	`, data.StudentName, data.StudentEmail, formattedDate, data.TimeOfDay, data.Duration, data.Reason)

	return s.sendEmail(data.FacultyEmail, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendAppointmentStatusEmail(data appointmentUsecases.AppointmentEmailData) error {
	studentName := data.StudentName
	if studentName == "" {
		studentName = "Student"
	}
	facultyName := data.FacultyName
	if facultyName == "" {
		facultyName = "Faculty"
	}
	formattedDate := data.Date.Format("Jan 2, 2006")
	prettyStatus := capitalize(data.Status)

	subject := fmt.Sprintf("Your appointment was %s", prettyStatus)

	var extraHTML, extraPlain strings.Builder
	if data.MeetingLink != "" {
		fmt.Fprintf(&extraHTML, `<p>Meeting Link: <a href="%s">%s</a></p>`, data.MeetingLink, data.MeetingLink)
		fmt.Fprintf(&extraPlain, "Meeting Link: %s\n", data.MeetingLink)
	}
	if data.FacultyNotes != "" {
		fmt.Fprintf(&extraHTML, `<p>Notes from %s: %s</p>`, facultyName, data.FacultyNotes)
		fmt.Fprintf(&extraPlain, "Notes: %s\n", data.FacultyNotes)
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Appointment %s</h2>
			<p>Hi %s,</p>
			<p>Your appointment with <strong>%s</strong> has been <strong>%s</strong>.</p>
			<p>Date: <strong>%s</strong><br>
			Time: <strong>%s</strong><br>
			Duration: <strong>%d minutes</strong><br>
			Reason: %s</p>
			%s
		</body>
		</html>
	`, prettyStatus, studentName, facultyName, prettyStatus, formattedDate, data.TimeOfDay, data.Duration, data.Reason, extraHTML.String())

	plainBody := fmt.Sprintf(`
Appointment %s

Hi %s,

Your appointment with %s has been %s.

Date: %s
Time: %s
Duration: %d minutes
Reason: %s
%s
	`, prettyStatus, studentName, facultyName, prettyStatus, formattedDate, data.TimeOfDay, data.Duration, data.Reason, extraPlain.String())

	return s.sendEmail(data.StudentEmail, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
