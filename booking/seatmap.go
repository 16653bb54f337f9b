package booking

import (
	"fmt"
	"math/rand/v2"

	"showtime-cli/model"
)

const (
	Rows    = 10
	Columns = 20

	RegularPrice = 200
	PremiumPrice = 350

	OccupiedProbability = 0.15

	firstPremiumRow = 3
	lastPremiumRow  = 6
)

var rowLetters = [Rows]string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

// RandomSource yields values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a generator seeded from seed when fixed is true, or
// from the runtime's entropy otherwise.
func NewRandomSource(seed uint64, fixed bool) *rand.Rand {
	if !fixed {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SeatMap is a generated auditorium layout in row-major order.
type SeatMap struct {
	Seats []model.Seat
}

// GenerateSeatMap builds a fresh 10x20 layout. Tier is assigned first and the
// occupancy draw always wins over it. Every call consumes new draws from r.
func GenerateSeatMap(r RandomSource) SeatMap {
	seats := make([]model.Seat, 0, Rows*Columns)
	for rowIndex, row := range rowLetters {
		for number := 1; number <= Columns; number++ {
			seat := tierSeat(rowIndex, row, number)
			if r.Float64() < OccupiedProbability {
				seat.Type = model.SeatOccupied
			}
			seats = append(seats, seat)
		}
	}
	return SeatMap{Seats: seats}
}

// TierSeat returns the unoccupied seat at row and number with its tier price.
// Rows outside A-J are priced as regular.
func TierSeat(row string, number int) model.Seat {
	for i, letter := range rowLetters {
		if letter == row {
			return tierSeat(i, row, number)
		}
	}
	return tierSeat(-1, row, number)
}

func tierSeat(rowIndex int, row string, number int) model.Seat {
	seat := model.Seat{
		Id:     fmt.Sprintf("%s%d", row, number),
		Row:    row,
		Number: number,
		Type:   model.SeatRegular,
		Price:  RegularPrice,
	}
	if rowIndex >= firstPremiumRow && rowIndex <= lastPremiumRow {
		seat.Type = model.SeatPremium
		seat.Price = PremiumPrice
	}
	return seat
}

func (m SeatMap) Len() int {
	return len(m.Seats)
}

// At returns the seat at zero-based row and column indexes.
func (m SeatMap) At(row int, col int) (model.Seat, bool) {
	if row < 0 || col < 0 || row >= Rows || col >= Columns {
		return model.Seat{}, false
	}
	idx := row*Columns + col
	if idx >= len(m.Seats) {
		return model.Seat{}, false
	}
	return m.Seats[idx], true
}

func (m SeatMap) Seat(id string) (model.Seat, bool) {
	for _, seat := range m.Seats {
		if seat.Id == id {
			return seat, true
		}
	}
	return model.Seat{}, false
}

func (m SeatMap) Row(letter string) []model.Seat {
	var row []model.Seat
	for _, seat := range m.Seats {
		if seat.Row == letter {
			row = append(row, seat)
		}
	}
	return row
}

func (m SeatMap) RowLabels() []string {
	return append([]string(nil), rowLetters[:]...)
}

// Counts returns how many seats of each type the map holds.
func (m SeatMap) Counts() map[model.SeatType]int {
	counts := map[model.SeatType]int{}
	for _, seat := range m.Seats {
		counts[seat.Type]++
	}
	return counts
}
