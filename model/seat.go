package model

type SeatType string

const (
	SeatRegular  SeatType = "regular"
	SeatPremium  SeatType = "premium"
	SeatOccupied SeatType = "occupied"
)

type Seat struct {
	Id     string   `json:"id"`
	Row    string   `json:"row"`
	Number int      `json:"number"`
	Type   SeatType `json:"type"`
	Price  int      `json:"price"`
}

func (s Seat) Selectable() bool {
	return s.Type != SeatOccupied
}
