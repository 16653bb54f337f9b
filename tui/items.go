package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"showtime-cli/model"
	"showtime-cli/service"
	"showtime-cli/store"
)

type movieItem struct {
	movie model.Movie
}

func (m movieItem) Title() string {
	return m.movie.Title
}

func (m movieItem) Description() string {
	return fmt.Sprintf("★ %.1f/10 (%s votes) • %s • %s", m.movie.Rating, m.movie.Votes, m.movie.Genre, m.movie.Language)
}

func (m movieItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{m.movie.Title, m.movie.Genre, m.movie.Language}, " "))
}

func buildMovieItems(movies []model.Movie) []list.Item {
	items := make([]list.Item, 0, len(movies))
	for _, movie := range movies {
		items = append(items, movieItem{movie: movie})
	}
	return items
}

// showtimeItem is one bookable (theater, showtime) pair.
type showtimeItem struct {
	theater  model.Theater
	showtime string
}

func (s showtimeItem) Title() string {
	return fmt.Sprintf("%s • %s", s.showtime, s.theater.Name)
}

func (s showtimeItem) Description() string {
	parts := []string{s.theater.Location, s.theater.Distance, fmt.Sprintf("★ %.1f", s.theater.Rating)}
	if len(s.theater.Facilities) > 0 {
		parts = append(parts, strings.Join(s.theater.Facilities, ", "))
	}
	return strings.Join(parts, " • ")
}

func (s showtimeItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{s.theater.Name, s.theater.Location, s.showtime}, " "))
}

func buildShowtimeItems(theaters []model.Theater) []list.Item {
	var items []list.Item
	for _, theater := range theaters {
		for _, showtime := range theater.Showtimes {
			items = append(items, showtimeItem{theater: theater, showtime: showtime})
		}
	}
	return items
}

type dateItem struct {
	date  time.Time
	label string
}

func (d dateItem) Title() string {
	return d.label
}

func (d dateItem) Description() string {
	return d.date.Format("Monday, 2 January")
}

func (d dateItem) FilterValue() string {
	return d.Title()
}

func buildDateItems(dates []time.Time, now time.Time) []list.Item {
	items := make([]list.Item, 0, len(dates))
	for _, date := range dates {
		items = append(items, dateItem{date: date, label: service.DateLabel(date, now)})
	}
	return items
}

type historyItem struct {
	booking model.Booking
}

func (h historyItem) Title() string {
	return fmt.Sprintf("%s • %s", h.booking.Movie.Title, strings.ToUpper(string(h.booking.Status)))
}

func (h historyItem) Description() string {
	return fmt.Sprintf("%s • %s %s • Seats %s • %s • %s",
		h.booking.Theater.Name,
		h.booking.Date.Format("2 Jan 2006"),
		h.booking.Showtime,
		strings.Join(h.booking.SeatIds(), ", "),
		store.FormatAmount(h.booking.Total),
		h.booking.Id,
	)
}

func (h historyItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{h.booking.Movie.Title, h.booking.Theater.Name, h.booking.Id, string(h.booking.Status)}, " "))
}

func buildHistoryItems(bookings []model.Booking) []list.Item {
	items := make([]list.Item, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, historyItem{booking: b})
	}
	return items
}
