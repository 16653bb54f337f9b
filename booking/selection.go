package booking

import "showtime-cli/model"

// MaxSeats caps how many seats a single booking may hold.
const MaxSeats = 10

// Selection is the set of seats chosen during one seat-selection visit.
// Insertion order is kept for display only.
type Selection struct {
	seats []model.Seat
}

// Toggle adds or removes seat and reports whether the selection changed.
// Occupied seats and additions beyond MaxSeats are ignored.
func (s *Selection) Toggle(seat model.Seat) bool {
	if !seat.Selectable() {
		return false
	}
	for i, existing := range s.seats {
		if existing.Id == seat.Id {
			s.seats = append(s.seats[:i:i], s.seats[i+1:]...)
			return true
		}
	}
	if len(s.seats) >= MaxSeats {
		return false
	}
	s.seats = append(s.seats, seat)
	return true
}

func (s *Selection) Clear() {
	s.seats = nil
}

func (s *Selection) Len() int {
	return len(s.seats)
}

func (s *Selection) Contains(id string) bool {
	for _, seat := range s.seats {
		if seat.Id == id {
			return true
		}
	}
	return false
}

// Seats returns a copy of the selected seats.
func (s *Selection) Seats() []model.Seat {
	return append([]model.Seat(nil), s.seats...)
}

func (s *Selection) Ids() []string {
	ids := make([]string, 0, len(s.seats))
	for _, seat := range s.seats {
		ids = append(ids, seat.Id)
	}
	return ids
}
