package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"showtime-cli/model"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		seats    []model.Seat
		regular  int
		premium  int
		subtotal int
		total    int
	}{
		{
			name:     "empty",
			subtotal: 0,
			total:    30,
		},
		{
			name:     "one premium one regular",
			seats:    []model.Seat{seat("D5", model.SeatPremium), seat("A1", model.SeatRegular)},
			regular:  1,
			premium:  1,
			subtotal: 550,
			total:    580,
		},
		{
			name: "premium only",
			seats: []model.Seat{
				seat("E1", model.SeatPremium),
				seat("E2", model.SeatPremium),
				seat("G7", model.SeatPremium),
			},
			premium:  3,
			subtotal: 1050,
			total:    1080,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.seats)
			assert.Equal(t, tt.regular, s.RegularCount)
			assert.Equal(t, tt.premium, s.PremiumCount)
			assert.Equal(t, tt.regular*RegularPrice, s.RegularAmount)
			assert.Equal(t, tt.premium*PremiumPrice, s.PremiumAmount)
			assert.Equal(t, tt.subtotal, s.Subtotal)
			assert.Equal(t, tt.total, s.GrandTotal())
			assert.Equal(t, ConvenienceFee, s.Fee())
		})
	}
}

func TestSummarize_MatchesStoredPrices(t *testing.T) {
	m := GenerateSeatMap(NewRandomSource(99, true))
	var s Selection
	for _, candidate := range m.Seats {
		s.Toggle(candidate)
	}

	sum := 0
	for _, selected := range s.Seats() {
		sum += selected.Price
	}
	summary := Summarize(s.Seats())
	assert.Equal(t, sum, summary.Subtotal)
	assert.Equal(t, summary.RegularAmount+summary.PremiumAmount, summary.Subtotal)
	assert.Equal(t, s.Len(), summary.Count())
	assert.Equal(t, sum+ConvenienceFee, summary.GrandTotal())
}
