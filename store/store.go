package store

import (
	"sync"
	"time"

	"showtime-cli/booking"
	"showtime-cli/model"
)

const maxHistory = 20

// History keeps the bookings made while the program runs, newest first. It
// is never written to disk.
type History struct {
	mu       sync.Mutex
	bookings []model.Booking
}

// NewHistory returns a history seeded with past bookings. A nil seed uses the
// built-in sample bookings.
func NewHistory(seed []model.Booking) *History {
	if seed == nil {
		seed = sampleBookings()
	}
	return &History{bookings: append([]model.Booking(nil), seed...)}
}

// Remember puts b at the top of the history, replacing an older entry with
// the same id.
func (h *History) Remember(b model.Booking) {
	h.mu.Lock()
	defer h.mu.Unlock()

	next := []model.Booking{b}
	for _, existing := range h.bookings {
		if existing.Id == b.Id && existing.Id != "" {
			continue
		}
		next = append(next, existing)
		if len(next) >= maxHistory {
			break
		}
	}
	h.bookings = next
}

func (h *History) List() []model.Booking {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]model.Booking(nil), h.bookings...)
}

func (h *History) Get(id string) (model.Booking, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, b := range h.bookings {
		if b.Id == id {
			return b, true
		}
	}
	return model.Booking{}, false
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.bookings)
}

type sample struct {
	id       string
	movie    model.Movie
	theater  model.Theater
	date     time.Time
	showtime string
	row      string
	numbers  []int
	status   model.BookingStatus
	bookedAt time.Time
}

func sampleBookings() []model.Booking {
	samples := []sample{
		{
			id:       "BMS1734234567890",
			movie:    model.Movie{Id: "2", Title: "Avengers: Infinity", Poster: "movie-avengers-infinity.jpg"},
			theater:  model.Theater{Id: "pvr-phoenix", Name: "PVR Phoenix Mills", Location: "Lower Parel, Mumbai"},
			date:     time.Date(2024, 12, 12, 0, 0, 0, 0, time.Local),
			showtime: "7:00 PM",
			row:      "F",
			numbers:  []int{12, 13},
			status:   model.StatusConfirmed,
			bookedAt: time.Date(2024, 12, 10, 11, 20, 0, 0, time.Local),
		},
		{
			id:       "BMS1734134567890",
			movie:    model.Movie{Id: "1", Title: "Inception Dreams", Poster: "movie-inception-dreams.jpg"},
			theater:  model.Theater{Id: "inox-megaplex", Name: "INOX Megaplex", Location: "Inorbit Mall, Mumbai"},
			date:     time.Date(2024, 12, 8, 0, 0, 0, 0, time.Local),
			showtime: "9:30 PM",
			row:      "H",
			numbers:  []int{8, 9, 10},
			status:   model.StatusCompleted,
			bookedAt: time.Date(2024, 12, 6, 18, 5, 0, 0, time.Local),
		},
		{
			id:       "BMS1733234567890",
			movie:    model.Movie{Id: "3", Title: "The Crown Legacy", Poster: "movie-crown-legacy.jpg"},
			theater:  model.Theater{Id: "3", Name: "Cinepolis Fun Cinemas", Location: "Andheri West, Mumbai"},
			date:     time.Date(2024, 11, 28, 0, 0, 0, 0, time.Local),
			showtime: "4:15 PM",
			row:      "D",
			numbers:  []int{5, 6},
			status:   model.StatusCompleted,
			bookedAt: time.Date(2024, 11, 25, 9, 45, 0, 0, time.Local),
		},
		{
			id:       "BMS1732234567890",
			movie:    model.Movie{Id: "4", Title: "Space Odyssey 2024", Poster: "movie-space-odyssey.jpg"},
			theater:  model.Theater{Id: "pvr-icon", Name: "PVR Icon", Location: "Infiniti Mall, Mumbai"},
			date:     time.Date(2024, 11, 15, 0, 0, 0, 0, time.Local),
			showtime: "6:45 PM",
			row:      "G",
			numbers:  []int{15},
			status:   model.StatusCancelled,
			bookedAt: time.Date(2024, 11, 12, 20, 10, 0, 0, time.Local),
		},
	}

	bookings := make([]model.Booking, 0, len(samples))
	for _, s := range samples {
		seats := make([]model.Seat, 0, len(s.numbers))
		for _, n := range s.numbers {
			seats = append(seats, booking.TierSeat(s.row, n))
		}
		summary := booking.Summarize(seats)
		bookings = append(bookings, model.Booking{
			Id:       s.id,
			Movie:    s.movie,
			Theater:  s.theater,
			Date:     s.date,
			Showtime: s.showtime,
			Seats:    seats,
			Subtotal: summary.Subtotal,
			Fee:      summary.Fee(),
			Total:    summary.GrandTotal(),
			Status:   s.status,
			BookedAt: s.bookedAt,
		})
	}
	return bookings
}
