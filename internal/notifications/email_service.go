package notifications

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"voyago/internal/shared/config"
	"voyago/pkg/logger"
)

// EmailService delivers traveler-facing notifications for consumed events.
type EmailService interface {
	SendBookingConfirmation(ctx context.Context, event *TravelEvent) error
	SendCancellationNotice(ctx context.Context, event *TravelEvent) error
}

// NewEmailService returns the SMTP service when SMTP is configured,
// otherwise a log-only stand-in so consumers keep draining events.
func NewEmailService(cfg config.EmailConfig) EmailService {
	if cfg.SMTPHost == "" || cfg.SMTPUsername == "" {
		return &logEmailService{log: logger.GetDefault()}
	}
	return &smtpEmailService{config: cfg, log: logger.GetDefault()}
}

type smtpEmailService struct {
	config config.EmailConfig
	log    *logger.Logger
}

func (s *smtpEmailService) SendBookingConfirmation(ctx context.Context, event *TravelEvent) error {
	subject := fmt.Sprintf("Booking confirmed: %s", event.ItemName)
	body := fmt.Sprintf(
		"Your %s booking for %s is confirmed.\nAmount paid: %.2f\nBooking reference: %s\n",
		event.ItemType, event.ItemName, event.Amount, event.BookingID)
	return s.send(ctx, event, subject, body)
}

func (s *smtpEmailService) SendCancellationNotice(ctx context.Context, event *TravelEvent) error {
	subject := fmt.Sprintf("Booking cancelled: %s", event.ItemName)
	var refund string
	if event.RefundAmount != nil && *event.RefundAmount > 0 {
		refund = fmt.Sprintf("A refund of %.2f will be processed within 5-7 business days.\n", *event.RefundAmount)
	}
	body := fmt.Sprintf(
		"Your %s booking for %s has been cancelled.\n%sBooking reference: %s\n",
		event.ItemType, event.ItemName, refund, event.BookingID)
	return s.send(ctx, event, subject, body)
}

func (s *smtpEmailService) send(ctx context.Context, event *TravelEvent, subject, body string) error {
	// Recipient address rides in the event headers upstream; until profile
	// lookup lands in the consumer, route through the user's account alias.
	to := fmt.Sprintf("user+%s@voyago.io", event.UserID)

	msg := strings.Join([]string{
		"From: " + s.config.FromEmail,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.log.InfoWithContext(ctx, "notification email sent", map[string]interface{}{
		"event_type": string(event.Type),
		"booking_id": event.BookingID.String(),
	})
	return nil
}

// logEmailService logs deliveries instead of sending them.
type logEmailService struct {
	log *logger.Logger
}

func (s *logEmailService) SendBookingConfirmation(ctx context.Context, event *TravelEvent) error {
	s.log.InfoWithContext(ctx, "booking confirmation (email disabled)", map[string]interface{}{
		"booking_id": event.BookingID.String(),
		"item_name":  event.ItemName,
	})
	return nil
}

func (s *logEmailService) SendCancellationNotice(ctx context.Context, event *TravelEvent) error {
	fields := map[string]interface{}{
		"booking_id": event.BookingID.String(),
		"item_name":  event.ItemName,
	}
	if event.RefundAmount != nil {
		fields["refund_amount"] = *event.RefundAmount
	}
	s.log.InfoWithContext(ctx, "cancellation notice (email disabled)", fields)
	return nil
}
