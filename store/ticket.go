package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"showtime-cli/booking"
	"showtime-cli/model"
)

// Screen is printed on every ticket; the demo has a single auditorium.
const Screen = "Screen 1"

var importantNotes = []string{
	"Please arrive at least 15 minutes before the show time",
	"Carry a valid ID proof for verification",
	"Outside food and beverages are not allowed",
	"Mobile phones must be switched off during the movie",
}

type receiptEnvelope struct {
	ExportedAt time.Time     `json:"exported_at"`
	Data       model.Booking `json:"data"`
}

// TicketFiles are the paths written by ExportTicket.
type TicketFiles struct {
	PDF     string
	Receipt string
}

// ExportTicket writes b to dir as a PDF e-ticket and a JSON receipt.
func ExportTicket(dir string, b model.Booking) (TicketFiles, error) {
	if strings.TrimSpace(dir) == "" {
		return TicketFiles{}, errors.New("ticket directory is required")
	}
	if b.Id == "" {
		return TicketFiles{}, errors.New("booking id is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return TicketFiles{}, err
	}

	files := TicketFiles{
		PDF:     filepath.Join(dir, fmt.Sprintf("ticket_%s.pdf", b.Id)),
		Receipt: filepath.Join(dir, fmt.Sprintf("receipt_%s.json", b.Id)),
	}
	if err := writeTicketPDF(files.PDF, b); err != nil {
		return TicketFiles{}, fmt.Errorf("write ticket pdf: %w", err)
	}
	if err := saveReceipt(files.Receipt, b); err != nil {
		return TicketFiles{}, fmt.Errorf("write receipt: %w", err)
	}
	return files, nil
}

// LoadReceipt reads a receipt written by ExportTicket.
func LoadReceipt(path string) (model.Booking, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Booking{}, err
	}
	var envelope receiptEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return model.Booking{}, errors.New("invalid receipt format")
	}
	return envelope.Data, nil
}

func saveReceipt(path string, b model.Booking) error {
	envelope := receiptEnvelope{
		ExportedAt: time.Now(),
		Data:       b,
	}
	payload, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func writeTicketPDF(path string, b model.Booking) error {
	summary := booking.Summarize(b.Seats)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket "+b.Id, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMED")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Booking ID : "+b.Id)
	pdf.Ln(7)
	if b.TicketCode != "" {
		pdf.Cell(0, 7, "Ticket code: "+b.TicketCode)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, b.Movie.Title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, line := range []string{
		b.Theater.Name,
		"Date   : " + formatTicketDate(b.Date),
		"Time   : " + b.Showtime,
		"Screen : " + Screen,
		fmt.Sprintf("Seats  : %s (%d)", strings.Join(b.SeatIds(), ", "), len(b.Seats)),
	} {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Payment Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, line := range paymentLines(summary) {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Total Paid: "+FormatAmount(b.Total))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	for _, note := range importantNotes {
		pdf.MultiCell(0, 6, "- "+note, "", "", false)
	}

	return pdf.OutputFileAndClose(path)
}

// TicketText renders b as plain text for sharing.
func TicketText(b model.Booking) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Booking ID: %s\n", b.Id)
	fmt.Fprintf(&sb, "%s\n", b.Movie.Title)
	fmt.Fprintf(&sb, "%s • %s • %s\n", b.Theater.Name, formatTicketDate(b.Date), b.Showtime)
	fmt.Fprintf(&sb, "Seats: %s\n", strings.Join(b.SeatIds(), ", "))
	for _, line := range paymentLines(booking.Summarize(b.Seats)) {
		sb.WriteString(line + "\n")
	}
	fmt.Fprintf(&sb, "Total Paid: %s\n", FormatAmount(b.Total))
	return sb.String()
}

func paymentLines(summary booking.Summary) []string {
	var lines []string
	if summary.RegularCount > 0 {
		lines = append(lines, fmt.Sprintf("Regular (%d): %s", summary.RegularCount, FormatAmount(summary.RegularAmount)))
	}
	if summary.PremiumCount > 0 {
		lines = append(lines, fmt.Sprintf("Premium (%d): %s", summary.PremiumCount, FormatAmount(summary.PremiumAmount)))
	}
	lines = append(lines, "Convenience Fee: "+FormatAmount(summary.Fee()))
	return lines
}

// FormatAmount formats whole rupees. The PDF core fonts have no rupee sign.
func FormatAmount(amount int) string {
	return fmt.Sprintf("Rs. %d", amount)
}

func formatTicketDate(date time.Time) string {
	if date.IsZero() {
		return "-"
	}
	return date.Format("Monday, 2 January 2006")
}
