package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/apperr"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubMovieService struct {
	detail *response.MovieDetail
	page   *response.MoviePage
	err    error
}

func (s *stubMovieService) GetMovie(_ context.Context, _ int64) (*response.MovieDetail, error) {
	return s.detail, s.err
}

func (s *stubMovieService) SearchMovies(_ context.Context, _ string, _ int) (*response.MoviePage, error) {
	return s.page, s.err
}

func (s *stubMovieService) TrendingMovies(_ context.Context, _ int) (*response.MoviePage, error) {
	return s.page, s.err
}

func movieRouter(svc *stubMovieService) *chi.Mux {
	h := NewMovieHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/movies/search", h.SearchMovies)
	r.Get("/api/movies/trending", h.TrendingMovies)
	r.Get("/api/movies/{movie_id}", h.GetMovie)
	return r
}

func TestGetMovieOK(t *testing.T) {
	router := movieRouter(&stubMovieService{
		detail: &response.MovieDetail{ID: 42, Title: "The Answer"},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/movies/42", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"The Answer"`)
}

func TestGetMovieNotFoundMapsTo404(t *testing.T) {
	router := movieRouter(&stubMovieService{
		err: apperr.NotFound("movie 12345 not found"),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/movies/12345", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"movie 12345 not found"}`, rec.Body.String())
}

func TestGetMovieUpstreamDownMapsTo502(t *testing.T) {
	router := movieRouter(&stubMovieService{
		err: apperr.Unavailable(assert.AnError, "metadata service unreachable"),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/movies/42", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	// Upstream details stay out of the body
	assert.JSONEq(t, `{"error":"movie metadata service unavailable"}`, rec.Body.String())
}

func TestSearchMoviesRequiresQuery(t *testing.T) {
	router := movieRouter(&stubMovieService{page: &response.MoviePage{}})

	req := httptest.NewRequest(http.MethodGet, "/api/movies/search?page=1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrendingMoviesOK(t *testing.T) {
	router := movieRouter(&stubMovieService{
		page: &response.MoviePage{Page: 1, Results: []response.MovieSummary{{ID: 9, Title: "Hot"}}},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/movies/trending", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Hot"`)
}
