package usecase

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"

	"go.uber.org/zap"
)

type CommentService interface {
	CreateComment(ctx context.Context, req *request.CreateCommentRequest) (*response.CommentResponse, error)
	ListComments(ctx context.Context) ([]response.CommentResponse, error)
	ListReviewComments(ctx context.Context, reviewID int64) ([]response.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

type commentService struct {
	comments repository.CommentRepository
	log      *zap.Logger
}

func NewCommentService(comments repository.CommentRepository, log *zap.Logger) CommentService {
	return &commentService{
		comments: comments,
		log:      log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) CreateComment(ctx context.Context, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	comment := &entity.Comment{
		ReviewID:    req.ReviewID,
		UserID:      req.UserID,
		Comment:     req.Comment,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info("Comment created",
		zap.Int64("comment_id", comment.CommentID),
		zap.Int64("review_id", comment.ReviewID),
		zap.String("user_id", comment.UserID),
	)

	resp := response.CommentToResponse(comment)
	return &resp, nil
}

func (s *commentService) ListComments(ctx context.Context) ([]response.CommentResponse, error) {
	comments, err := s.comments.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return response.CommentsToResponse(comments), nil
}

func (s *commentService) ListReviewComments(ctx context.Context, reviewID int64) ([]response.CommentResponse, error) {
	comments, err := s.comments.FindByReviewID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("list comments by review %d: %w", reviewID, err)
	}

	return response.CommentsToResponse(comments), nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID int64) error {
	if err := s.comments.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment %d: %w", commentID, err)
	}

	return nil
}
