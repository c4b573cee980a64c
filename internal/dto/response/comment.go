package response

import (
	"time"

	"movie-reviews/internal/data/entity"
)

type CommentResponse struct {
	CommentID   int64     `json:"comment_id"`
	ReviewID    int64     `json:"review_id"`
	UserID      string    `json:"user_id"`
	Comment     string    `json:"comment"`
	DisplayName string    `json:"displayname"`
	PhotoURL    string    `json:"photoUrl"`
	CreatedAt   time.Time `json:"created_at"`
}

// Helper converter
func CommentToResponse(comment *entity.Comment) CommentResponse {
	return CommentResponse{
		CommentID:   comment.CommentID,
		ReviewID:    comment.ReviewID,
		UserID:      comment.UserID,
		Comment:     comment.Comment,
		DisplayName: comment.DisplayName,
		PhotoURL:    comment.PhotoURL,
		CreatedAt:   comment.CreatedAt,
	}
}

func CommentsToResponse(comments []*entity.Comment) []CommentResponse {
	out := make([]CommentResponse, len(comments))
	for i, comment := range comments {
		out[i] = CommentToResponse(comment)
	}
	return out
}
