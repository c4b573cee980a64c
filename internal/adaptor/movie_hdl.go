package adaptor

import (
	"net/http"
	"strings"

	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovie handles GET /api/movies/{movie_id}
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := utils.ParseInt64(chi.URLParam(r, "movie_id"))
	if err != nil {
		utils.ResponseBadRequest(w, "movie id must be an integer")
		return
	}

	movie, err := h.service.GetMovie(r.Context(), movieID)
	if err != nil {
		respondServiceError(w, h.log, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// SearchMovies handles GET /api/movies/search?query=...&page=N
func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		utils.ResponseBadRequest(w, "query parameter is required")
		return
	}

	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	movies, err := h.service.SearchMovies(r.Context(), query, page)
	if err != nil {
		respondServiceError(w, h.log, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// TrendingMovies handles GET /api/movies/trending?page=N
func (h *MovieHandler) TrendingMovies(w http.ResponseWriter, r *http.Request) {
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	movies, err := h.service.TrendingMovies(r.Context(), page)
	if err != nil {
		respondServiceError(w, h.log, err, "trending movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}
