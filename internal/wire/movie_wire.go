package wire

import (
	"movie-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /api/movies/search - Paginated title search (proxied upstream)
	r.Get("/api/movies/search", movieHandler.SearchMovies)

	// GET /api/movies/trending - Today's trending movies
	r.Get("/api/movies/trending", movieHandler.TrendingMovies)

	// GET /api/movies/{movie_id} - Detail enriched with local review stats
	r.Get("/api/movies/{movie_id}", movieHandler.GetMovie)
}
