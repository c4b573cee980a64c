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

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListReviews(ctx context.Context) ([]response.ReviewResponse, error)
	ListUserReviews(ctx context.Context, userID string) ([]response.ReviewResponse, error)
	ListMovieReviews(ctx context.Context, movieID int64) ([]response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID int64) error

	// Stats
	GetMovieReviewStats(ctx context.Context, movieID int64) (*response.MovieReviewStats, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

// NewReviewService takes the whole repository because the movie listing
// joins reviews with their comment threads.
func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	review := &entity.Review{
		MovieID:     req.MovieID,
		UserID:      req.UserID,
		Rating:      req.Rating,
		Title:       req.Title,
		Content:     req.Content,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ReviewID),
		zap.String("user_id", review.UserID),
		zap.Int64("movie_id", review.MovieID),
		zap.Float64("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review, nil)
	return &resp, nil
}

func (s *reviewService) ListReviews(ctx context.Context) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) ListUserReviews(ctx context.Context, userID string) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reviews by user %s: %w", userID, err)
	}

	return response.ReviewsToResponse(reviews), nil
}

// ListMovieReviews returns a movie's reviews with each review's comment
// thread attached, as consumed by the movie detail view.
func (s *reviewService) ListMovieReviews(ctx context.Context, movieID int64) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("list reviews by movie %d: %w", movieID, err)
	}

	reviewIDs := make([]int64, len(reviews))
	for i, review := range reviews {
		reviewIDs[i] = review.ReviewID
	}

	commentsByReview, err := s.repo.Comment.FindByReviewIDs(ctx, reviewIDs)
	if err != nil {
		return nil, fmt.Errorf("load comments for movie %d reviews: %w", movieID, err)
	}

	out := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = response.ReviewToResponse(review, response.CommentsToResponse(commentsByReview[review.ReviewID]))
	}

	return out, nil
}

// DeleteReview removes a review and, through the schema's cascade, its
// comments. Deleting an id that does not exist is an error, not a no-op.
func (s *reviewService) DeleteReview(ctx context.Context, reviewID int64) error {
	if err := s.repo.Review.Delete(ctx, reviewID); err != nil {
		return fmt.Errorf("delete review %d: %w", reviewID, err)
	}

	return nil
}

func (s *reviewService) GetMovieReviewStats(ctx context.Context, movieID int64) (*response.MovieReviewStats, error) {
	stats, err := s.repo.Review.MovieStats(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get review stats for movie %d: %w", movieID, err)
	}

	resp := response.StatsToResponse(stats)
	return &resp, nil
}
