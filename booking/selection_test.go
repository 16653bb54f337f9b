package booking

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"showtime-cli/model"
)

func seat(id string, seatType model.SeatType) model.Seat {
	price := RegularPrice
	if seatType == model.SeatPremium {
		price = PremiumPrice
	}
	return model.Seat{Id: id, Row: id[:1], Type: seatType, Price: price}
}

func TestSelectionToggle_TwiceRestoresPriorState(t *testing.T) {
	var s Selection
	s.Toggle(seat("A1", model.SeatRegular))
	before := s.Ids()

	assert.True(t, s.Toggle(seat("D5", model.SeatPremium)))
	assert.True(t, s.Contains("D5"))
	assert.True(t, s.Toggle(seat("D5", model.SeatPremium)))

	assert.Equal(t, before, s.Ids())
}

func TestSelectionToggle_IgnoresOccupied(t *testing.T) {
	var s Selection
	assert.False(t, s.Toggle(seat("B2", model.SeatOccupied)))
	assert.Zero(t, s.Len())
	assert.False(t, s.Contains("B2"))
}

func TestSelectionToggle_EleventhSeatIgnored(t *testing.T) {
	var s Selection
	for n := 1; n <= MaxSeats; n++ {
		assert.True(t, s.Toggle(seat(fmt.Sprintf("A%d", n), model.SeatRegular)))
	}
	before := s.Ids()

	assert.False(t, s.Toggle(seat("J20", model.SeatRegular)))
	assert.Equal(t, MaxSeats, s.Len())
	assert.Equal(t, before, s.Ids())

	// Removing one frees a slot again.
	assert.True(t, s.Toggle(s.Seats()[0]))
	assert.True(t, s.Toggle(seat("J20", model.SeatRegular)))
	assert.Equal(t, MaxSeats, s.Len())
}

func TestSelectionToggle_RandomSequencesKeepInvariants(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 50; round++ {
		m := GenerateSeatMap(r)
		var s Selection
		for i := 0; i < 500; i++ {
			s.Toggle(m.Seats[r.IntN(len(m.Seats))])
			assert.LessOrEqual(t, s.Len(), MaxSeats)
		}
		for _, selected := range s.Seats() {
			assert.NotEqual(t, model.SeatOccupied, selected.Type)
		}
	}
}

func TestSelectionSeats_ReturnsCopy(t *testing.T) {
	var s Selection
	s.Toggle(seat("A1", model.SeatRegular))
	seats := s.Seats()
	seats[0].Id = "Z99"
	assert.True(t, s.Contains("A1"))
}

func TestSelectionClear(t *testing.T) {
	var s Selection
	s.Toggle(seat("A1", model.SeatRegular))
	s.Toggle(seat("E3", model.SeatPremium))
	s.Clear()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Ids())
}
