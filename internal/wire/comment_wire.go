package wire

import (
	"movie-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireComment(r chi.Router, commentHandler *adaptor.CommentHandler) {
	// POST /api/comments - Reply to a review
	r.Post("/api/comments", commentHandler.CreateComment)

	// GET /api/comments - All comments
	r.Get("/api/comments", commentHandler.ListComments)

	// GET /api/comments/review/{review_id} - One review's thread
	r.Get("/api/comments/review/{review_id}", commentHandler.ListReviewComments)

	// DELETE /api/comments/{id} - Delete a single comment
	r.Delete("/api/comments/{id}", commentHandler.DeleteComment)
}
