package model

import "time"

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is the mock receipt produced when seats are confirmed. Amounts are
// whole rupees.
type Booking struct {
	Id         string        `json:"id"`
	TicketCode string        `json:"ticketCode"`
	Movie      Movie         `json:"movie"`
	Theater    Theater       `json:"theater"`
	Date       time.Time     `json:"date"`
	Showtime   string        `json:"showtime"`
	Seats      []Seat        `json:"seats"`
	Subtotal   int           `json:"subtotal"`
	Fee        int           `json:"fee"`
	Total      int           `json:"total"`
	Status     BookingStatus `json:"status"`
	BookedAt   time.Time     `json:"bookedAt"`
}

func (b Booking) SeatIds() []string {
	ids := make([]string, 0, len(b.Seats))
	for _, seat := range b.Seats {
		ids = append(ids, seat.Id)
	}
	return ids
}
