package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/apperr"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubReviewService struct {
	created   *response.ReviewResponse
	list      []response.ReviewResponse
	stats     *response.MovieReviewStats
	deleteErr error
	listErr   error
}

func (s *stubReviewService) CreateReview(_ context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if s.created != nil {
		return s.created, nil
	}
	resp := response.ReviewResponse{ReviewID: 1, MovieID: req.MovieID, UserID: req.UserID, Rating: req.Rating, Title: req.Title, Content: req.Content}
	return &resp, nil
}

func (s *stubReviewService) ListReviews(_ context.Context) ([]response.ReviewResponse, error) {
	return s.list, s.listErr
}

func (s *stubReviewService) ListUserReviews(_ context.Context, _ string) ([]response.ReviewResponse, error) {
	return s.list, s.listErr
}

func (s *stubReviewService) ListMovieReviews(_ context.Context, _ int64) ([]response.ReviewResponse, error) {
	return s.list, s.listErr
}

func (s *stubReviewService) DeleteReview(_ context.Context, _ int64) error {
	return s.deleteErr
}

func (s *stubReviewService) GetMovieReviewStats(_ context.Context, _ int64) (*response.MovieReviewStats, error) {
	return s.stats, s.listErr
}

func reviewRouter(svc *stubReviewService) *chi.Mux {
	h := NewReviewHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/reviews", h.CreateReview)
	r.Get("/api/reviews", h.ListReviews)
	r.Get("/api/reviews/user/{user_id}", h.ListUserReviews)
	r.Get("/api/reviews/movie/{movie_id}", h.ListMovieReviews)
	r.Get("/api/reviews/movie/{movie_id}/stats", h.GetMovieReviewStats)
	r.Delete("/api/reviews/{id}", h.DeleteReview)
	return r
}

func TestCreateReviewOK(t *testing.T) {
	router := reviewRouter(&stubReviewService{})

	body := `{"movie_id":42,"user_id":"u1","rating":8,"title":"Great","content":"Loved it"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got response.ReviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(42), got.MovieID)
	assert.Equal(t, 8.0, got.Rating)
}

func TestCreateReviewRatingOutOfRange(t *testing.T) {
	router := reviewRouter(&stubReviewService{})

	for _, body := range []string{
		`{"movie_id":42,"user_id":"u1","rating":10.5,"title":"t","content":"c"}`,
		`{"movie_id":42,"user_id":"u1","rating":-1,"title":"t","content":"c"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
		assert.Contains(t, rec.Body.String(), `"error"`)
	}
}

func TestCreateReviewMissingFields(t *testing.T) {
	router := reviewRouter(&stubReviewService{})

	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(`{"rating":5}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReviewMalformedJSON(t *testing.T) {
	router := reviewRouter(&stubReviewService{})

	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid request body"}`, rec.Body.String())
}

func TestListReviewsEmptyIsArray(t *testing.T) {
	router := reviewRouter(&stubReviewService{list: []response.ReviewResponse{}})

	req := httptest.NewRequest(http.MethodGet, "/api/reviews/user/nonexistent", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestDeleteReviewNotFound(t *testing.T) {
	router := reviewRouter(&stubReviewService{
		deleteErr: apperr.NotFound("review 9999 not found"),
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/reviews/9999", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"review 9999 not found"}`, rec.Body.String())
}

// Services wrap repository errors with call context on the way up; the
// body must carry only the client-facing message, not the wrap chain.
func TestDeleteReviewNotFoundWrappedStaysClean(t *testing.T) {
	router := reviewRouter(&stubReviewService{
		deleteErr: fmt.Errorf("delete review 9999: %w", apperr.NotFound("review 9999 not found")),
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/reviews/9999", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"review 9999 not found"}`, rec.Body.String())
}

func TestDeleteReviewOK(t *testing.T) {
	router := reviewRouter(&stubReviewService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/reviews/7", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Review deleted successfully"}`, rec.Body.String())
}

func TestDeleteReviewNonIntegerID(t *testing.T) {
	router := reviewRouter(&stubReviewService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/reviews/abc", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListReviewsStorageErrorIs500(t *testing.T) {
	router := reviewRouter(&stubReviewService{
		listErr: apperr.Storage(assert.AnError, "list reviews"),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/reviews", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	// Internal causes must not leak
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestGetMovieReviewStatsOK(t *testing.T) {
	router := reviewRouter(&stubReviewService{
		stats: &response.MovieReviewStats{AverageRating: 7.5, ReviewCount: 4},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/reviews/movie/42/stats", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"average_rating":7.5,"review_count":4}`, rec.Body.String())
}
