package wire

import (
	"movie-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// POST /api/reviews - Submit a review
	r.Post("/api/reviews", reviewHandler.CreateReview)

	// GET /api/reviews - All reviews
	r.Get("/api/reviews", reviewHandler.ListReviews)

	// GET /api/reviews/user/{user_id} - Reviews authored by one user
	r.Get("/api/reviews/user/{user_id}", reviewHandler.ListUserReviews)

	// GET /api/reviews/movie/{movie_id} - A movie's reviews with comments
	r.Get("/api/reviews/movie/{movie_id}", reviewHandler.ListMovieReviews)

	// GET /api/reviews/movie/{movie_id}/stats - Rating statistics
	r.Get("/api/reviews/movie/{movie_id}/stats", reviewHandler.GetMovieReviewStats)

	// DELETE /api/reviews/{id} - Delete review plus its comments
	r.Delete("/api/reviews/{id}", reviewHandler.DeleteReview)
}
