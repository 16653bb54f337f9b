package service

import (
	"testing"
	"time"

	"showtime-cli/model"
)

func TestCatalog_Defaults(t *testing.T) {
	c := NewCatalog(nil)
	movies := c.Movies()
	if len(movies) != 4 {
		t.Fatalf("expected 4 movies, got %d", len(movies))
	}
	for _, movie := range movies {
		if movie.Rating < 0 || movie.Rating > 10 {
			t.Fatalf("rating out of range for %s: %v", movie.Title, movie.Rating)
		}
		if movie.Id == "" || movie.Title == "" {
			t.Fatalf("incomplete movie: %+v", movie)
		}
	}
}

func TestCatalog_MoviesReturnsCopy(t *testing.T) {
	c := NewCatalog(nil)
	movies := c.Movies()
	movies[0].Title = "changed"
	if got, _ := c.Movie("1"); got.Title != "Inception Dreams" {
		t.Fatalf("catalog was mutated: %q", got.Title)
	}
}

func TestCatalog_Find(t *testing.T) {
	c := NewCatalog([]model.Movie{{Id: "7", Title: "Space Odyssey 2024"}})

	if movie, ok := c.Find("7"); !ok || movie.Title != "Space Odyssey 2024" {
		t.Fatalf("expected lookup by id, got %+v %v", movie, ok)
	}
	if movie, ok := c.Find("  space odyssey 2024 "); !ok || movie.Id != "7" {
		t.Fatalf("expected lookup by title, got %+v %v", movie, ok)
	}
	if _, ok := c.Find("unknown"); ok {
		t.Fatal("expected no match")
	}
	if _, ok := c.Find(""); ok {
		t.Fatal("expected no match for empty query")
	}
}

func TestDirectory_Theater(t *testing.T) {
	d := NewDirectory(nil)
	theater, ok := d.Theater("2")
	if !ok {
		t.Fatal("expected theater 2")
	}
	if !theater.HasShowtime("9:45 PM") {
		t.Fatalf("expected 9:45 PM showtime, got %v", theater.Showtimes)
	}
	if theater.HasShowtime("10:00 AM") {
		t.Fatal("unexpected showtime")
	}
	if _, ok := d.Theater("99"); ok {
		t.Fatal("expected unknown theater")
	}
}

func TestDirectory_Dates(t *testing.T) {
	now := time.Date(2025, 12, 13, 21, 5, 0, 0, time.UTC)
	dates := NewDirectory(nil).Dates(now)
	if len(dates) != 5 {
		t.Fatalf("expected 5 dates, got %d", len(dates))
	}

	want := []string{"Today", "Tomorrow", "Mon 15", "Tue 16", "Wed 17"}
	for i, date := range dates {
		if date.Hour() != 0 || date.Minute() != 0 {
			t.Fatalf("expected truncated date, got %v", date)
		}
		if got := DateLabel(date, now); got != want[i] {
			t.Fatalf("date %d: expected %q, got %q", i, want[i], got)
		}
	}
}
