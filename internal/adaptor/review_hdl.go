package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid request body")
		return
	}

	// Validate before anything reaches the store
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		h.log.Warn("Create review validation failed", zap.Any("errors", errs))
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(errs))
		return
	}

	review, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseSuccess(w, review)
}

// ListReviews handles GET /api/reviews
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListReviews(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list reviews")
		return
	}

	utils.ResponseSuccess(w, reviews)
}

// ListUserReviews handles GET /api/reviews/user/{user_id}. An unknown user
// id yields an empty array, not an error.
func (h *ReviewHandler) ListUserReviews(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		utils.ResponseBadRequest(w, "user id is required")
		return
	}

	reviews, err := h.service.ListUserReviews(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.log, err, "list user reviews")
		return
	}

	utils.ResponseSuccess(w, reviews)
}

// ListMovieReviews handles GET /api/reviews/movie/{movie_id}
func (h *ReviewHandler) ListMovieReviews(w http.ResponseWriter, r *http.Request) {
	movieID, err := utils.ParseInt64(chi.URLParam(r, "movie_id"))
	if err != nil {
		utils.ResponseBadRequest(w, "movie id must be an integer")
		return
	}

	reviews, err := h.service.ListMovieReviews(r.Context(), movieID)
	if err != nil {
		respondServiceError(w, h.log, err, "list movie reviews")
		return
	}

	utils.ResponseSuccess(w, reviews)
}

// GetMovieReviewStats handles GET /api/reviews/movie/{movie_id}/stats
func (h *ReviewHandler) GetMovieReviewStats(w http.ResponseWriter, r *http.Request) {
	movieID, err := utils.ParseInt64(chi.URLParam(r, "movie_id"))
	if err != nil {
		utils.ResponseBadRequest(w, "movie id must be an integer")
		return
	}

	stats, err := h.service.GetMovieReviewStats(r.Context(), movieID)
	if err != nil {
		respondServiceError(w, h.log, err, "get movie review stats")
		return
	}

	utils.ResponseSuccess(w, stats)
}

// DeleteReview handles DELETE /api/reviews/{id}. The review's comments are
// removed in the same statement; deleting an unknown id is a 404.
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID, err := utils.ParseInt64(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "review id must be an integer")
		return
	}

	if err := h.service.DeleteReview(r.Context(), reviewID); err != nil {
		respondServiceError(w, h.log, err, "delete review")
		return
	}

	utils.ResponseMessage(w, "Review deleted successfully")
}
