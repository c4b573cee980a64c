package response

import (
	"time"

	"movie-reviews/internal/data/entity"
)

type ReviewResponse struct {
	ReviewID    int64             `json:"review_id"`
	MovieID     int64             `json:"movie_id"`
	UserID      string            `json:"user_id"`
	Rating      float64           `json:"rating"`
	Title       string            `json:"title"`
	Content     string            `json:"content"`
	DisplayName string            `json:"displayname"`
	PhotoURL    string            `json:"photoUrl"`
	CreatedAt   time.Time         `json:"created_at"`
	Comments    []CommentResponse `json:"comments,omitempty"`
}

type MovieReviewStats struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// Helper converter; comments may be nil for the flat listings.
func ReviewToResponse(review *entity.Review, comments []CommentResponse) ReviewResponse {
	return ReviewResponse{
		ReviewID:    review.ReviewID,
		MovieID:     review.MovieID,
		UserID:      review.UserID,
		Rating:      review.Rating,
		Title:       review.Title,
		Content:     review.Content,
		DisplayName: review.DisplayName,
		PhotoURL:    review.PhotoURL,
		CreatedAt:   review.CreatedAt,
		Comments:    comments,
	}
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = ReviewToResponse(review, nil)
	}
	return out
}

func StatsToResponse(stats *entity.ReviewStats) MovieReviewStats {
	return MovieReviewStats{
		AverageRating: stats.AverageRating,
		ReviewCount:   stats.ReviewCount,
	}
}
