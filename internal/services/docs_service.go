package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"luxadmin/internal/domain"
	"luxadmin/internal/domain/models"
	"luxadmin/internal/repositories"
	"luxadmin/internal/utils"
)

// DocsService renders charge receipts as PDF for download from the admin UI.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
	Loader      func(int64) (models.Booking, error)
}

// GenerateReceipt builds the receipt PDF for a paid booking.
func (s DocsService) GenerateReceipt(bookingID int64) ([]byte, string, error) {
	load := s.Loader
	if load == nil {
		load = s.BookingRepo.GetByID
	}
	b, err := load(bookingID)
	if err != nil {
		return nil, "", err
	}
	if b.PaymentStatus != domain.PaymentPaid {
		return nil, "", domain.ConflictError{Resource: "booking", Msg: "receipt available only for paid bookings"}
	}
	utils.LogEvent(s.RequestID, "docs", "generate_receipt", fmt.Sprintf("booking_id=%d", bookingID))
	return buildReceiptPDF(b)
}

func buildReceiptPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)

	paidAt := "-"
	if b.PaidAt != nil {
		paidAt = b.PaidAt.UTC().Format("2006-01-02 15:04")
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Receipt No   : RCPT-%d", b.ID),
		fmt.Sprintf("Issued       : %s", time.Now().UTC().Format("2006-01-02 15:04")),
		fmt.Sprintf("Customer     : %s", orDash(b.Name)),
		fmt.Sprintf("Email        : %s", orDash(b.Email)),
		fmt.Sprintf("Phone        : %s", orDash(b.Phone)),
		fmt.Sprintf("Trip         : %s -> %s", orDash(b.Pickup), orDash(b.Dropoff)),
		fmt.Sprintf("Scheduled    : %s", b.ScheduledAt.UTC().Format("2006-01-02 15:04")),
		fmt.Sprintf("Trip type    : %s", orDash(b.TripType)),
		fmt.Sprintf("Paid at      : %s", paidAt),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Amount")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Base fare    : %s", utils.FormatUSD(b.BaseAmount)))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Service fee  : %s", utils.FormatUSD(b.ServiceFee)))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Total        : %s", utils.FormatUSD(b.BaseAmount+b.ServiceFee)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Thank you for riding with us. This receipt confirms the charge against the payment method on file.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("RECEIPT_%d.pdf", b.ID)
	return buf.Bytes(), filename, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
