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

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// CreateComment handles POST /api/comments. Commenting on a review that
// does not exist is a 404.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid request body")
		return
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		h.log.Warn("Create comment validation failed", zap.Any("errors", errs))
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(errs))
		return
	}

	comment, err := h.service.CreateComment(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create comment")
		return
	}

	utils.ResponseSuccess(w, comment)
}

// ListComments handles GET /api/comments
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.service.ListComments(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list comments")
		return
	}

	utils.ResponseSuccess(w, comments)
}

// ListReviewComments handles GET /api/comments/review/{review_id}, oldest
// comment first.
func (h *CommentHandler) ListReviewComments(w http.ResponseWriter, r *http.Request) {
	reviewID, err := utils.ParseInt64(chi.URLParam(r, "review_id"))
	if err != nil {
		utils.ResponseBadRequest(w, "review id must be an integer")
		return
	}

	comments, err := h.service.ListReviewComments(r.Context(), reviewID)
	if err != nil {
		respondServiceError(w, h.log, err, "list review comments")
		return
	}

	utils.ResponseSuccess(w, comments)
}

// DeleteComment handles DELETE /api/comments/{id}
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := utils.ParseInt64(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "comment id must be an integer")
		return
	}

	if err := h.service.DeleteComment(r.Context(), commentID); err != nil {
		respondServiceError(w, h.log, err, "delete comment")
		return
	}

	utils.ResponseMessage(w, "Comment deleted successfully")
}
