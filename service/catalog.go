package service

import (
	"strings"

	"showtime-cli/model"
)

// Catalog exposes the movies currently showing. It is read-only.
type Catalog struct {
	movies []model.Movie
}

// NewCatalog returns a catalog over movies, or over the built-in list when
// movies is nil.
func NewCatalog(movies []model.Movie) *Catalog {
	if movies == nil {
		movies = defaultMovies
	}
	return &Catalog{movies: movies}
}

// Movies returns a copy of the catalog in display order.
func (c *Catalog) Movies() []model.Movie {
	return append([]model.Movie(nil), c.movies...)
}

func (c *Catalog) Movie(id string) (model.Movie, bool) {
	for _, movie := range c.movies {
		if movie.Id == id {
			return movie, true
		}
	}
	return model.Movie{}, false
}

// Find resolves a movie by id or by case-insensitive title.
func (c *Catalog) Find(query string) (model.Movie, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return model.Movie{}, false
	}
	if movie, ok := c.Movie(query); ok {
		return movie, true
	}
	for _, movie := range c.movies {
		if strings.EqualFold(movie.Title, query) {
			return movie, true
		}
	}
	return model.Movie{}, false
}

var defaultFormats = []string{"2D", "IMAX 2D", "4DX"}

var defaultSynopsis = []string{
	"Years ago the agent went rogue and became the country's greatest villain. This time, as he descends further into the shadows, the agency sends its deadliest operative after him.",
	"A special units officer who is more than his equal, driven by his own demons and determined to finish the job.",
	"The choices ahead of them are impossible and the price to be paid is ultimate: spectacular action and heart-wrenching emotion.",
}

var defaultMovies = []model.Movie{
	{
		Id:            "1",
		Title:         "Inception Dreams",
		Poster:        "movie-inception-dreams.jpg",
		Rating:        8.9,
		Votes:         "245K",
		Genre:         "Sci-Fi/Thriller",
		Language:      "English",
		Duration:      "2h 28m",
		ReleaseDate:   "14 Aug, 2025",
		Certification: "UA13+",
		Formats:       defaultFormats,
		Synopsis:      defaultSynopsis,
	},
	{
		Id:            "2",
		Title:         "Avengers: Infinity",
		Poster:        "movie-avengers-infinity.jpg",
		Rating:        9.1,
		Votes:         "892K",
		Genre:         "Action/Adventure",
		Language:      "English",
		Duration:      "2h 53m",
		ReleaseDate:   "14 Aug, 2025",
		Certification: "UA13+",
		Formats:       defaultFormats,
		Synopsis:      defaultSynopsis,
	},
	{
		Id:            "3",
		Title:         "The Crown Legacy",
		Poster:        "movie-crown-legacy.jpg",
		Rating:        8.5,
		Votes:         "156K",
		Genre:         "Drama/History",
		Language:      "English",
		Duration:      "2h 15m",
		ReleaseDate:   "1 Aug, 2025",
		Certification: "U",
		Formats:       []string{"2D"},
		Synopsis:      defaultSynopsis,
	},
	{
		Id:            "4",
		Title:         "Space Odyssey 2024",
		Poster:        "movie-space-odyssey.jpg",
		Rating:        8.7,
		Votes:         "198K",
		Genre:         "Sci-Fi/Adventure",
		Language:      "English",
		Duration:      "2h 41m",
		ReleaseDate:   "8 Aug, 2025",
		Certification: "UA7+",
		Formats:       []string{"2D", "IMAX 2D"},
		Synopsis:      defaultSynopsis,
	},
}
