package model

type Movie struct {
	Id            string   `json:"id"`
	Title         string   `json:"title"`
	Poster        string   `json:"poster"`
	Rating        float64  `json:"rating"`
	Votes         string   `json:"votes"`
	Genre         string   `json:"genre"`
	Language      string   `json:"language"`
	Duration      string   `json:"duration"`
	ReleaseDate   string   `json:"releaseDate"`
	Certification string   `json:"certification"`
	Formats       []string `json:"formats"`
	Synopsis      []string `json:"synopsis"`
}
