package response

import (
	"movie-reviews/pkg/tmdb"
)

// MovieSummary is one row of a search or trending listing.
type MovieSummary struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

type MoviePage struct {
	Page         int            `json:"page"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int64          `json:"total_results"`
	Results      []MovieSummary `json:"results"`
}

// MovieDetail combines upstream metadata with the local review stats.
type MovieDetail struct {
	ID                  int64             `json:"id"`
	Title               string            `json:"title"`
	Overview            string            `json:"overview"`
	PosterPath          string            `json:"poster_path"`
	BackdropPath        string            `json:"backdrop_path"`
	ReleaseDate         string            `json:"release_date"`
	VoteAverage         float64           `json:"vote_average"`
	Runtime             int               `json:"runtime"`
	Tagline             string            `json:"tagline"`
	Genres              []string          `json:"genres"`
	ProductionCompanies []string          `json:"production_companies"`
	ReviewStats         *MovieReviewStats `json:"review_stats,omitempty"`
}

func MovieToDetail(movie *tmdb.Movie) *MovieDetail {
	genres := make([]string, len(movie.Genres))
	for i, g := range movie.Genres {
		genres[i] = g.Name
	}

	companies := make([]string, len(movie.ProductionCompanies))
	for i, c := range movie.ProductionCompanies {
		companies[i] = c.Name
	}

	return &MovieDetail{
		ID:                  movie.ID,
		Title:               movie.Title,
		Overview:            movie.Overview,
		PosterPath:          movie.PosterPath,
		BackdropPath:        movie.BackdropPath,
		ReleaseDate:         movie.ReleaseDate,
		VoteAverage:         movie.VoteAverage,
		Runtime:             movie.Runtime,
		Tagline:             movie.Tagline,
		Genres:              genres,
		ProductionCompanies: companies,
	}
}

func MoviesToPage(result *tmdb.SearchResult) *MoviePage {
	summaries := make([]MovieSummary, len(result.Results))
	for i, m := range result.Results {
		summaries[i] = MovieSummary{
			ID:          m.ID,
			Title:       m.Title,
			Overview:    m.Overview,
			PosterPath:  m.PosterPath,
			ReleaseDate: m.ReleaseDate,
			VoteAverage: m.VoteAverage,
		}
	}

	return &MoviePage{
		Page:         result.Page,
		TotalPages:   result.TotalPages,
		TotalResults: result.TotalResults,
		Results:      summaries,
	}
}
