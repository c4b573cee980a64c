package repository

import (
	"context"

	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/apperr"
	"movie-reviews/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindAll(ctx context.Context) ([]*entity.Review, error)
	FindByUserID(ctx context.Context, userID string) ([]*entity.Review, error)
	FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error)
	Delete(ctx context.Context, id int64) error

	// Business queries
	MovieStats(ctx context.Context, movieID int64) (*entity.ReviewStats, error)
}

const reviewColumns = `review_id, movie_id, user_id, rating, title, content, displayname, photo_url, created_at`

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO review (movie_id, user_id, rating, title, content, displayname, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING review_id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		review.MovieID,
		review.UserID,
		review.Rating,
		review.Title,
		review.Content,
		review.DisplayName,
		review.PhotoURL,
	).Scan(&review.ReviewID, &review.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID),
			zap.Int64("movie_id", review.MovieID),
		)
		return apperr.Storage(err, "create review for movie %d by user %s",
			review.MovieID, review.UserID)
	}

	return nil
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM review
		ORDER BY review_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list reviews", zap.Error(err))
		return nil, apperr.Storage(err, "list reviews")
	}
	defer rows.Close()

	return scanReviews(rows)
}

func (r *reviewRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM review
		WHERE user_id = $1
		ORDER BY review_id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find reviews by user ID",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, apperr.Storage(err, "find reviews by user %s", userID)
	}
	defer rows.Close()

	return scanReviews(rows)
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM review
		WHERE movie_id = $1
		ORDER BY review_id
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, apperr.Storage(err, "find reviews by movie %d", movieID)
	}
	defer rows.Close()

	return scanReviews(rows)
}

// Delete removes one review. Its comments go with it through the
// ON DELETE CASCADE constraint, so the whole cascade is a single
// atomic statement.
func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM review WHERE review_id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return apperr.Storage(err, "delete review %d", id)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("review %d not found", id)
	}

	r.log.Info("Review deleted", zap.Int64("review_id", id))
	return nil
}

func (r *reviewRepository) MovieStats(ctx context.Context, movieID int64) (*entity.ReviewStats, error) {
	query := `
		SELECT
			COALESCE(AVG(rating), 0) as avg_rating,
			COUNT(*) as review_count
		FROM review
		WHERE movie_id = $1
	`

	var stats entity.ReviewStats
	err := r.db.QueryRow(ctx, query, movieID).Scan(&stats.AverageRating, &stats.ReviewCount)
	if err != nil {
		r.log.Error("Failed to get movie review stats",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, apperr.Storage(err, "get review stats for movie %d", movieID)
	}

	return &stats, nil
}

func scanReviews(rows pgx.Rows) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ReviewID,
			&review.MovieID,
			&review.UserID,
			&review.Rating,
			&review.Title,
			&review.Content,
			&review.DisplayName,
			&review.PhotoURL,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, apperr.Storage(err, "scan review row")
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err, "iterate review rows")
	}

	return reviews, nil
}
