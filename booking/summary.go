package booking

import "showtime-cli/model"

// ConvenienceFee is charged once per booking at confirmation.
const ConvenienceFee = 30

type Summary struct {
	RegularCount  int
	PremiumCount  int
	RegularAmount int
	PremiumAmount int
	Subtotal      int
}

// Summarize derives the price breakdown from the seats' stored prices.
// Occupied seats never reach a selection and are skipped.
func Summarize(seats []model.Seat) Summary {
	var s Summary
	for _, seat := range seats {
		switch seat.Type {
		case model.SeatRegular:
			s.RegularCount++
			s.RegularAmount += seat.Price
		case model.SeatPremium:
			s.PremiumCount++
			s.PremiumAmount += seat.Price
		default:
			continue
		}
		s.Subtotal += seat.Price
	}
	return s
}

func (s Summary) Count() int {
	return s.RegularCount + s.PremiumCount
}

func (s Summary) Fee() int {
	return ConvenienceFee
}

func (s Summary) GrandTotal() int {
	return s.Subtotal + ConvenienceFee
}
