package service

import (
	"fmt"
	"time"

	"showtime-cli/model"
)

const bookableDays = 5

// Directory lists the theaters a movie can be booked in. Every movie plays in
// every theater.
type Directory struct {
	theaters []model.Theater
}

func NewDirectory(theaters []model.Theater) *Directory {
	if theaters == nil {
		theaters = defaultTheaters
	}
	return &Directory{theaters: theaters}
}

func (d *Directory) Theaters() []model.Theater {
	return append([]model.Theater(nil), d.theaters...)
}

func (d *Directory) Theater(id string) (model.Theater, bool) {
	for _, theater := range d.theaters {
		if theater.Id == id {
			return theater, true
		}
	}
	return model.Theater{}, false
}

// Dates returns the bookable days starting at today.
func (d *Directory) Dates(now time.Time) []time.Time {
	start := truncateDate(now)
	dates := make([]time.Time, 0, bookableDays)
	for i := 0; i < bookableDays; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}

// DateLabel renders date the way the date strip shows it: "Today",
// "Tomorrow", then "Sun 15".
func DateLabel(date time.Time, now time.Time) string {
	switch days := int(truncateDate(date).Sub(truncateDate(now)).Hours() / 24); days {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("%s %d", date.Format("Mon"), date.Day())
	}
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var defaultTheaters = []model.Theater{
	{
		Id:         "1",
		Name:       "PVR Cinemas - Phoenix MarketCity",
		Location:   "Kurla West, Mumbai",
		Distance:   "2.5 km",
		Rating:     4.3,
		Showtimes:  []string{"10:00 AM", "1:30 PM", "5:00 PM", "8:30 PM", "11:00 PM"},
		Facilities: []string{"Dolby Atmos", "IMAX", "Recliner Seats"},
	},
	{
		Id:         "2",
		Name:       "INOX Leisure Ltd - R City Mall",
		Location:   "Ghatkopar West, Mumbai",
		Distance:   "3.2 km",
		Rating:     4.1,
		Showtimes:  []string{"11:15 AM", "2:45 PM", "6:15 PM", "9:45 PM"},
		Facilities: []string{"4DX", "Premium Seating", "Food Court"},
	},
	{
		Id:         "3",
		Name:       "Cinepolis Fun Cinemas",
		Location:   "Andheri East, Mumbai",
		Distance:   "4.8 km",
		Rating:     4.0,
		Showtimes:  []string{"12:30 PM", "4:00 PM", "7:30 PM", "10:30 PM"},
		Facilities: []string{"Premium Seating", "Snacks", "Parking"},
	},
}
