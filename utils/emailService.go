package utils

import (
	"busline/config"
	"busline/models"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendBookingConfirmationEmail mails the ticket summary after a booking is
// created. Best-effort: the booking stands whether or not the mail goes out.
func SendBookingConfirmationEmail(email string, booking models.Booking, slot models.TimeSlot) {
	if config.AppConfig.SendgridApiKey == "" {
		log.Println("Sendgrid not configured, skipping booking confirmation email.")
		return
	}

	from := mail.NewEmail(config.AppConfig.CompanyName, config.AppConfig.EmailSender)
	to := mail.NewEmail(booking.CustomerName, email)
	subject := fmt.Sprintf("Booking confirmed - %s %s", slot.SlotDate.Format("02/01/2006"), slot.SlotTime)

	plain := fmt.Sprintf(
		"Dear %s,\n\nYour booking %s is confirmed.\nRoute: %s\nDeparture: %s %s\nSeats: %d\nFare: %.0f\n\n%s",
		booking.CustomerName, booking.Reference, slot.Route,
		slot.SlotDate.Format("02/01/2006"), slot.SlotTime,
		booking.SeatCount, booking.Fare, config.AppConfig.CompanyName,
	)
	html := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Booking Confirmed</h2>
					<p>Dear %s, your booking <b>%s</b> is confirmed.</p>
					<p>Route: <b>%s</b><br>Departure: <b>%s %s</b><br>Seats: <b>%d</b><br>Fare: <b>%.0f</b></p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">%s</p>
				</div>
			</body>
		</html>
	`, booking.CustomerName, booking.Reference, slot.Route,
		slot.SlotDate.Format("02/01/2006"), slot.SlotTime,
		booking.SeatCount, booking.Fare, config.AppConfig.CompanyName)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)

	if _, err := client.Send(message); err != nil {
		log.Printf("Error sending booking confirmation email to %s: %v", email, err)
		return
	}

	log.Println("Booking confirmation email sent to", email)
}
