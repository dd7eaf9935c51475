package utils

import (
	"fmt"
	"log"
	"yafrican/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers an HTML email through SendGrid
func SendEmail(to, subject, htmlBody string) error {
	from := mail.NewEmail("Yafrican", config.AppConfig.EmailSender)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return err
	}

	if response.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", to, response.StatusCode, response.Body)
		return fmt.Errorf("failed to send email, code: %d", response.StatusCode)
	}

	log.Println("Email sent successfully to", to)
	return nil
}

// getEmailTemplate wraps body content in the storefront's standard layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 10px; overflow: hidden; box-shadow: 0 2px 8px rgba(0,0,0,0.1); }
			.header { background: linear-gradient(135deg, #f59e0b, #d97706); padding: 20px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; }
			.content { padding: 30px 20px; color: #1f2937; line-height: 1.6; }
			.content h2 { color: #1f2937; margin-top: 0; }
			.otp-box { background: #f8fafc; border: 2px dashed #f59e0b; padding: 20px; border-radius: 10px; margin: 20px 0; text-align: center; }
			.otp-code { font-size: 32px; font-weight: bold; letter-spacing: 8px; color: #1f2937; font-family: monospace; }
			.footer { border-top: 1px solid #e5e7eb; padding: 20px; text-align: center; font-size: 12px; color: #9ca3af; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>Yafrican</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				<p>Yafrican - Ethiopia's Marketplace</p>
				<p>If you need help, contact our support team</p>
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendOTPEmail delivers a verification code
func SendOTPEmail(email, otp string) error {
	subject := "Your Yafrican Verification Code"
	body := fmt.Sprintf(`
		<p>Use the verification code below to continue:</p>
		<div class="otp-box">
			<div class="otp-code">%s</div>
		</div>
		<p style="color: #6b7280; font-size: 14px;">This code will expire in 10 minutes. If you didn't request this, please ignore this email.</p>
	`, otp)

	return SendEmail(email, subject, getEmailTemplate("Verify Your Email Address", body))
}

// SendWelcomeEmail greets a newly registered user
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to Yafrican"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>Yafrican</strong>! Your account has been created successfully.</p>
		<p>You can now browse products, build your cart and place orders.</p>
	`, name)

	go SendEmail(email, subject, getEmailTemplate("Welcome Onboard!", body))
}

// SendOrderStatusEmail notifies the customer after admin review of their payment proof
func SendOrderStatusEmail(email, name, orderNumber, status, notes string) {
	var subject, headline, detail string
	if status == "confirmed" {
		subject = "Payment Confirmed: " + orderNumber
		headline = "Payment Confirmed"
		detail = "<p>Your payment has been verified and your order is now being processed.</p>"
	} else {
		subject = "Order Cancelled: " + orderNumber
		headline = "Order Cancelled"
		detail = "<p>Unfortunately we could not verify your payment and the order was cancelled.</p>"
	}

	if notes != "" {
		detail += fmt.Sprintf(`<div style="color: #6b7280;">Note from our team: %s</div>`, notes)
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Order <strong>%s</strong> has been reviewed.</p>
		%s
	`, name, orderNumber, detail)

	go SendEmail(email, subject, getEmailTemplate(headline, body))
}

// SendLoginNotificationEmail alerts a user about a new login
func SendLoginNotificationEmail(email, name, ip, device, timeStr string) {
	subject := "New Login Alert"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We noticed a new login to your account.</p>
		<ul style="list-style: none; padding: 0;">
			<li><strong>Time:</strong> %s</li>
			<li><strong>IP Address:</strong> %s</li>
			<li><strong>Device:</strong> %s</li>
		</ul>
		<p>If this was you, you can safely ignore this email.</p>
		<p style="color: #DC3545; font-weight: bold;">If you did not authorize this login, please contact support immediately.</p>
	`, name, timeStr, ip, device)

	go SendEmail(email, subject, getEmailTemplate("New Login Detected", body))
}
