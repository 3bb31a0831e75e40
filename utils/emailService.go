package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"olms/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: OLMS Academy <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all notification emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A237E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A237E; line-height: 1.6; }
			.content h2 { color: #1A237E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #43A047; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>OLMS ACADEMY</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 OLMS Academy. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to OLMS Academy"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>OLMS Academy</strong>! Your account has been successfully created.</p>
		<p>You can now browse the course catalog, enroll, and start learning at your own pace.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 2. Enrollment Confirmation
func SendEnrollmentEmail(email, name, courseName string) {
	subject := "Enrollment Confirmed: " + courseName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have successfully enrolled in <strong>%s</strong>.</p>
		<div class="info-box">
			<strong>Next Steps:</strong> Open the course, work through its modules, and track your progress from the dashboard.
		</div>
	`, name, courseName)

	go SendEmail([]string{email}, subject, getEmailTemplate("Enrollment Successful", body))
}

// 3. Course Completion Certificate
func SendCertificateEmail(email, name, courseName, certificateNumber string) {
	subject := "Certificate of Completion: " + courseName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations on completing <strong>%s</strong>!</p>
		<div class="info-box" style="text-align: center;">
			<p style="margin-bottom: 8px;">Your certificate number:</p>
			<h2 style="margin: 0;">%s</h2>
		</div>
		<p>You can use this certificate number for verification purposes.</p>
	`, name, courseName, certificateNumber)

	go SendEmail([]string{email}, subject, getEmailTemplate("Certificate Issued", body))
}

// 4. Instructor Application Approved
func SendInstructorApprovedEmail(email, name string) {
	subject := "Instructor Account Approved"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Great news! Your instructor account has been <strong>APPROVED</strong> by the admin.</p>
		<p>You can now log in and manage your courses.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Instructor Approved", body))
}

// 5. Instructor Application Rejected
func SendInstructorRejectedEmail(email, name, reason string) {
	subject := "Instructor Application Update"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Unfortunately, your instructor application was not approved at this time.</p>
		<div style="color: #dc3545; font-weight: bold;">Reason: %s</div>
		<p>You are welcome to contact support or apply again later.</p>
	`, name, reason)

	go SendEmail([]string{email}, subject, getEmailTemplate("Application Rejected", body))
}

// 6. New Message Received
func SendNewMessageEmail(email, name, senderName, subjectLine string) {
	subject := "New Message: " + subjectLine
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p><strong>%s</strong> has sent you a message: <em>%s</em></p>
		<p>Log in to your dashboard to read and reply.</p>
	`, name, senderName, subjectLine)

	go SendEmail([]string{email}, subject, getEmailTemplate("New Message", body))
}
