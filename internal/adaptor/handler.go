package adaptor

import (
	"movie-reviews/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Review  *ReviewHandler
	Comment *CommentHandler
	Movie   *MovieHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Review:  NewReviewHandler(service.Review, log),
		Comment: NewCommentHandler(service.Comment, log),
		Movie:   NewMovieHandler(service.Movie, log),
	}
}
