package notification

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"flawless/models"

	"github.com/go-pdf/fpdf"
)

// BuildReceiptPDF renders a one-page PDF summarizing the booking. For
// confirmed bookings it reads as a receipt, otherwise as a status document.
func BuildReceiptPDF(n models.BookingNotification) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Header band.
	pdf.SetFillColor(212, 175, 122)
	pdf.Rect(0, 0, 210, 32, "F")
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(20, 10)
	pdf.Cell(0, 10, "Flawless Salon")

	pdf.SetTextColor(51, 51, 51)
	pdf.SetXY(20, 42)
	pdf.SetFont("Helvetica", "B", 14)
	switch n.Kind {
	case models.NotifyBookingConfirmed:
		pdf.Cell(0, 10, "Booking Receipt")
	case models.NotifyBookingRejected:
		pdf.Cell(0, 10, "Booking Status")
	default:
		pdf.Cell(0, 10, "Booking Request")
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 50)
	pdf.Cell(0, 6, "Generated on "+time.Now().Format("2 Jan 2006 15:04"))

	row := func(y float64, label, value string) {
		pdf.SetXY(20, y)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(45, 8, label)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 8, value)
	}

	y := 64.0
	row(y, "Reference", ReferenceNo(n.BookingID))
	y += 9
	row(y, "Customer", n.Name)
	y += 9
	row(y, "Service", n.ServiceName)
	y += 9
	row(y, "Date", friendlyDate(n.Date))
	y += 9
	row(y, "Time", n.Time)
	y += 9
	row(y, "Amount", fmt.Sprintf("%.2f", n.Amount))
	y += 9
	row(y, "Status", strings.ToUpper(n.Status))

	if n.Kind == models.NotifyBookingRejected && n.Reason != "" {
		y += 12
		pdf.SetXY(20, y)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 8, "Reason")
		pdf.SetXY(20, y+8)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(170, 6, n.Reason, "", "L", false)
	}

	pdf.SetY(270)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(136, 136, 136)
	pdf.CellFormat(0, 6, "Thank you for choosing Flawless Salon.", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt PDF: %w", err)
	}
	return buf.Bytes(), nil
}
