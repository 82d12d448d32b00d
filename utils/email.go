// utils/email.go
package utils

import (
	"fmt"
	"html"
	"strings"

	"elara-server/models"

	"github.com/keighl/postmark"
	"go.uber.org/zap"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService returns an EmailService, or nil when no Postmark token is configured
func NewEmailService(apiToken, sender string) *EmailService {
	if apiToken == "" {
		return nil
	}
	return &EmailService{
		client: postmark.NewClient(apiToken, ""),
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	zap.L().Debug("email sent", zap.String("to", toEmail), zap.String("subject", subject))
	return nil
}

// SendOrderConfirmation emails the customer a summary of a newly placed order
func (es *EmailService) SendOrderConfirmation(order models.Order) error {
	return es.SendEmail(order.Email, "Order Confirmation", OrderConfirmationBody(order))
}

// OrderConfirmationBody renders the HTML body of the order confirmation email.
// Order fields come from the client and are escaped before interpolation.
func OrderConfirmationBody(order models.Order) string {
	name := order.Name
	if name == "" {
		name = "Customer"
	}

	var lines strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&lines, "<li>%s x %d</li>", html.EscapeString(item.ProductName), item.Quantity)
	}

	body := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your purchase! Your order (ID: %s) has been placed successfully.<br><br>",
		html.EscapeString(name),
		order.ID.Hex(),
	)
	if lines.Len() > 0 {
		body += "<ul>" + lines.String() + "</ul>"
	}
	body += fmt.Sprintf("Total Amount: <strong>%.2f</strong><br>Status: <strong>%s</strong><br><br>Thank you for shopping with us!",
		order.GrandTotal, html.EscapeString(order.Status))
	return body
}
