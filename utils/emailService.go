package utils

import (
	"fmt"
	"log"

	"github.com/sanjanathakeri/courseappone/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendPurchaseInitiatedEmail notifies a user that their purchase is
// awaiting payment. Skipped when SendGrid is not configured.
func SendPurchaseInitiatedEmail(toEmail, courseTitle string, amount int64) {
	if config.AppConfig.SendGridApiKey == "" {
		log.Println("SENDGRID_API_KEY not set, skipping purchase email")
		return
	}

	from := mail.NewEmail("Course Marketplace", config.AppConfig.EmailSender)
	to := mail.NewEmail("", toEmail)
	subject := "Your course purchase has started"

	plainText := fmt.Sprintf(
		"Your purchase of %q for $%.2f has been initiated. Complete the payment to unlock the course.",
		courseTitle, float64(amount)/100,
	)
	htmlBody := fmt.Sprintf(
		"<p>Your purchase of <strong>%s</strong> for <strong>$%.2f</strong> has been initiated.</p><p>Complete the payment to unlock the course.</p>",
		courseTitle, float64(amount)/100,
	)

	message := mail.NewSingleEmail(from, subject, to, plainText, htmlBody)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending purchase email to %s: %v", toEmail, err)
		return
	}
	if resp.StatusCode >= 400 {
		log.Printf("Purchase email rejected (%d): %s", resp.StatusCode, resp.Body)
	}
}
