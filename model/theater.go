package model

type Theater struct {
	Id         string   `json:"id"`
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	Distance   string   `json:"distance"`
	Rating     float64  `json:"rating"`
	Showtimes  []string `json:"showtimes"`
	Facilities []string `json:"facilities"`
}

// HasShowtime reports whether showtime is one of the theater's listed times.
func (t Theater) HasShowtime(showtime string) bool {
	for _, s := range t.Showtimes {
		if s == showtime {
			return true
		}
	}
	return false
}
