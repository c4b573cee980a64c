package repository

import (
	"context"
	"errors"

	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/apperr"
	"movie-reviews/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindAll(ctx context.Context) ([]*entity.Comment, error)
	FindByReviewID(ctx context.Context, reviewID int64) ([]*entity.Comment, error)
	FindByReviewIDs(ctx context.Context, reviewIDs []int64) (map[int64][]*entity.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// foreign_key_violation, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const pgFKViolation = "23503"

const commentColumns = `comment_id, review_id, user_id, comment, displayname, photo_url, created_at`

type commentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCommentRepository(db database.PgxIface, log *zap.Logger) CommentRepository {
	return &commentRepository{
		db:  db,
		log: log.With(zap.String("repository", "comment")),
	}
}

// Create inserts a comment. A comment on a review that does not exist is
// rejected by the FK constraint and surfaces as a not-found error.
func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	query := `
		INSERT INTO comment (review_id, user_id, comment, displayname, photo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING comment_id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		comment.ReviewID,
		comment.UserID,
		comment.Comment,
		comment.DisplayName,
		comment.PhotoURL,
	).Scan(&comment.CommentID, &comment.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgFKViolation {
			r.log.Warn("Comment rejected: review does not exist",
				zap.Int64("review_id", comment.ReviewID),
				zap.String("user_id", comment.UserID),
			)
			return apperr.NotFound("review %d not found", comment.ReviewID)
		}

		r.log.Error("Failed to create comment",
			zap.Error(err),
			zap.Int64("review_id", comment.ReviewID),
			zap.String("user_id", comment.UserID),
		)
		return apperr.Storage(err, "create comment on review %d by user %s",
			comment.ReviewID, comment.UserID)
	}

	return nil
}

func (r *commentRepository) FindAll(ctx context.Context) ([]*entity.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comment
		ORDER BY comment_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list comments", zap.Error(err))
		return nil, apperr.Storage(err, "list comments")
	}
	defer rows.Close()

	return scanComments(rows)
}

// FindByReviewID returns a review's comments oldest first, matching the
// append-on-post behavior of the thread view.
func (r *commentRepository) FindByReviewID(ctx context.Context, reviewID int64) ([]*entity.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comment
		WHERE review_id = $1
		ORDER BY comment_id
	`

	rows, err := r.db.Query(ctx, query, reviewID)
	if err != nil {
		r.log.Error("Failed to find comments by review ID",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
		)
		return nil, apperr.Storage(err, "find comments by review %d", reviewID)
	}
	defer rows.Close()

	return scanComments(rows)
}

// FindByReviewIDs loads comments for a set of reviews in one query, grouped
// by review id. Backing query for the enriched movie review listing.
func (r *commentRepository) FindByReviewIDs(ctx context.Context, reviewIDs []int64) (map[int64][]*entity.Comment, error) {
	grouped := make(map[int64][]*entity.Comment, len(reviewIDs))
	if len(reviewIDs) == 0 {
		return grouped, nil
	}

	query := `
		SELECT ` + commentColumns + `
		FROM comment
		WHERE review_id = ANY($1)
		ORDER BY comment_id
	`

	rows, err := r.db.Query(ctx, query, reviewIDs)
	if err != nil {
		r.log.Error("Failed to find comments by review IDs",
			zap.Error(err),
			zap.Int("review_count", len(reviewIDs)),
		)
		return nil, apperr.Storage(err, "find comments for %d reviews", len(reviewIDs))
	}
	defer rows.Close()

	comments, err := scanComments(rows)
	if err != nil {
		return nil, err
	}

	for _, comment := range comments {
		grouped[comment.ReviewID] = append(grouped[comment.ReviewID], comment)
	}

	return grouped, nil
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM comment WHERE comment_id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete comment",
			zap.Error(err),
			zap.Int64("comment_id", id),
		)
		return apperr.Storage(err, "delete comment %d", id)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("comment %d not found", id)
	}

	r.log.Info("Comment deleted", zap.Int64("comment_id", id))
	return nil
}

func scanComments(rows pgx.Rows) ([]*entity.Comment, error) {
	var comments []*entity.Comment
	for rows.Next() {
		var comment entity.Comment
		err := rows.Scan(
			&comment.CommentID,
			&comment.ReviewID,
			&comment.UserID,
			&comment.Comment,
			&comment.DisplayName,
			&comment.PhotoURL,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, apperr.Storage(err, "scan comment row")
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err, "iterate comment rows")
	}

	return comments, nil
}
