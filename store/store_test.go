package store

import (
	"os"
	"strings"
	"testing"
	"time"

	"showtime-cli/booking"
	"showtime-cli/model"
)

func testBooking(id string) model.Booking {
	seats := []model.Seat{booking.TierSeat("D", 5), booking.TierSeat("A", 1)}
	summary := booking.Summarize(seats)
	return model.Booking{
		Id:         id,
		TicketCode: "6f1c1c9e-5d2b-4c47-9a57-0d1f3c7b2a10",
		Movie:      model.Movie{Id: "1", Title: "Inception Dreams"},
		Theater:    model.Theater{Id: "1", Name: "PVR Cinemas - Phoenix MarketCity"},
		Date:       time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC),
		Showtime:   "8:30 PM",
		Seats:      seats,
		Subtotal:   summary.Subtotal,
		Fee:        summary.Fee(),
		Total:      summary.GrandTotal(),
		Status:     model.StatusConfirmed,
		BookedAt:   time.Date(2025, 8, 14, 18, 30, 0, 0, time.UTC),
	}
}

func TestNewHistory_SampleBookings(t *testing.T) {
	h := NewHistory(nil)
	bookings := h.List()
	if len(bookings) != 4 {
		t.Fatalf("expected 4 sample bookings, got %d", len(bookings))
	}
	for _, b := range bookings {
		summary := booking.Summarize(b.Seats)
		if b.Total != summary.GrandTotal() {
			t.Fatalf("booking %s: total %d does not match seats (%d)", b.Id, b.Total, summary.GrandTotal())
		}
	}
	first := bookings[0]
	if first.Id != "BMS1734234567890" || first.Total != 730 {
		t.Fatalf("unexpected first sample: %s %d", first.Id, first.Total)
	}
}

func TestHistory_RememberNewestFirst(t *testing.T) {
	h := NewHistory([]model.Booking{})

	h.Remember(testBooking("BMS1"))
	h.Remember(testBooking("BMS2"))
	h.Remember(testBooking("BMS1"))

	bookings := h.List()
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}
	if bookings[0].Id != "BMS1" || bookings[1].Id != "BMS2" {
		t.Fatalf("unexpected order: %s, %s", bookings[0].Id, bookings[1].Id)
	}
	if _, ok := h.Get("BMS2"); !ok {
		t.Fatal("expected BMS2 to be found")
	}
	if _, ok := h.Get("missing"); ok {
		t.Fatal("expected missing booking")
	}
}

func TestHistory_Capped(t *testing.T) {
	h := NewHistory([]model.Booking{})
	for i := 0; i < maxHistory+5; i++ {
		h.Remember(testBooking("BMS" + strings.Repeat("9", i+1)))
	}
	if h.Len() != maxHistory {
		t.Fatalf("expected %d bookings, got %d", maxHistory, h.Len())
	}
}

func TestExportTicket_WritesFiles(t *testing.T) {
	dir := t.TempDir() + "/nested"
	b := testBooking("BMS1755196200000")

	files, err := ExportTicket(dir, b)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	pdf, err := os.ReadFile(files.PDF)
	if err != nil {
		t.Fatalf("expected pdf file, got %v", err)
	}
	if !strings.HasPrefix(string(pdf), "%PDF") {
		t.Fatalf("expected pdf header, got %q", string(pdf[:min(8, len(pdf))]))
	}

	receipt, err := LoadReceipt(files.Receipt)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if receipt.Id != b.Id || receipt.Subtotal != 550 || receipt.Total != 580 {
		t.Fatalf("unexpected receipt: %+v", receipt)
	}
	if strings.Join(receipt.SeatIds(), ",") != "D5,A1" {
		t.Fatalf("unexpected seats: %v", receipt.SeatIds())
	}
}

func TestExportTicket_InvalidInput(t *testing.T) {
	if _, err := ExportTicket("", testBooking("BMS1")); err == nil {
		t.Fatal("expected error for empty directory")
	}
	if _, err := ExportTicket(t.TempDir(), model.Booking{}); err == nil {
		t.Fatal("expected error for empty booking id")
	}
}

func TestLoadReceipt_InvalidFormat(t *testing.T) {
	path := t.TempDir() + "/receipt.json"
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadReceipt(path); err == nil {
		t.Fatal("expected error")
	}
}

func TestTicketText(t *testing.T) {
	text := TicketText(testBooking("BMS42"))
	for _, want := range []string{
		"Booking ID: BMS42",
		"Inception Dreams",
		"Seats: D5, A1",
		"Regular (1): Rs. 200",
		"Premium (1): Rs. 350",
		"Convenience Fee: Rs. 30",
		"Total Paid: Rs. 580",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in ticket text:\n%s", want, text)
		}
	}
}
