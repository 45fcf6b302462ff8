package mailer

import (
	"fmt"

	"github.com/adcahya/cosmetic-shop/booking-service/config"
	"github.com/adcahya/cosmetic-shop/booking-service/internal/domain"
	"github.com/adcahya/cosmetic-shop/booking-service/pkg/utils"
	"gopkg.in/gomail.v2"
)

type Mailer interface {
	SendBookingConfirmation(booking domain.BookingTransaction) error
	Enabled() bool
}

type SMTPMailer struct {
	config config.SMTPConfig
}

func CreateMailer(config config.SMTPConfig) Mailer {
	return &SMTPMailer{config: config}
}

func (m *SMTPMailer) Enabled() bool {
	return m.config.Server != ""
}

func (m *SMTPMailer) SendBookingConfirmation(booking domain.BookingTransaction) error {
	bookedAt, err := utils.ConvertDateTimeToHumanReadableFormat(booking.CreatedAt)
	if err != nil {
		return err
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.config.Sender)
	message.SetHeader("To", booking.Email)
	message.SetHeader("Subject", fmt.Sprintf("Booking %s received", booking.BookingTrxID))
	message.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nWe received your booking %s on %s.\n\nSubtotal: IDR %d\nTax (11%%): IDR %d\nTotal: IDR %d\n\nPlease complete your payment and upload the proof to finish the process.\n",
		booking.Name, booking.BookingTrxID, bookedAt,
		booking.SubTotalAmount, booking.TotalTaxAmount, booking.TotalAmount,
	))

	return utils.SendEmail(message, m.config.Sender, m.config.Password, m.config.Server, m.config.Port)
}
