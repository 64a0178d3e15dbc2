package utils

import (
	"busline/config"
	"busline/models"
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// BookingTicketPdf renders one booking as an A5 ticket.
func BookingTicketPdf(booking models.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, config.AppConfig.CompanyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Bus Ticket", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	rows := [][2]string{
		{"Reference", booking.Reference},
		{"Passenger", booking.CustomerName},
		{"Phone", booking.CustomerPhone},
		{"Route", booking.TimeSlot.Route},
		{"Date", booking.TravelDate.Format("02/01/2006")},
		{"Departure", booking.TimeSlot.SlotTime},
		{"Vehicle", booking.TimeSlot.VehicleType},
		{"Seats", fmt.Sprintf("%d", booking.SeatCount)},
		{"Pickup", booking.Pickup},
		{"Dropoff", booking.Dropoff},
		{"Fare", fmt.Sprintf("%.0f", booking.Fare)},
		{"Payment", booking.PaymentStatus},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(35, 7, row[0], "B", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 7, row[1], "B", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, "Please arrive 15 minutes before departure.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FreightManifestPdf renders the consignment list for one send date.
func FreightManifestPdf(date time.Time, freights []models.Freight) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, config.AppConfig.CompanyName+" - Freight Manifest "+date.Format("02/01/2006"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	headers := []string{"Code", "Sender", "Phone", "Receiver", "Station", "Qty", "Kg", "Fee", "Status"}
	widths := []float64{40, 40, 28, 40, 35, 14, 18, 22, 28}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, f := range freights {
		cells := []string{
			f.ProductCode,
			f.SenderName,
			f.SenderPhone,
			f.ReceiverName,
			f.SenderStation,
			fmt.Sprintf("%d", f.Quantity),
			fmt.Sprintf("%.1f", f.WeightKg),
			fmt.Sprintf("%.0f", f.Fee),
			f.Status,
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, fmt.Sprintf("Total consignments: %d", len(freights)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
