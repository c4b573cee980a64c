package usecase

import (
	"context"
	"testing"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeReviewRepo is an in-memory ReviewRepository. When comments is set,
// Delete drops the review's comments too, mirroring the schema's
// ON DELETE CASCADE.
type fakeReviewRepo struct {
	reviews  []*entity.Review
	comments *fakeCommentRepo
	nextID   int64
	failAll  error
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	if f.failAll != nil {
		return f.failAll
	}
	f.nextID++
	review.ReviewID = f.nextID
	review.CreatedAt = time.Now()
	stored := *review
	f.reviews = append(f.reviews, &stored)
	return nil
}

func (f *fakeReviewRepo) FindAll(_ context.Context) ([]*entity.Review, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	return f.reviews, nil
}

func (f *fakeReviewRepo) FindByUserID(_ context.Context, userID string) ([]*entity.Review, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	var out []*entity.Review
	for _, r := range f.reviews {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) FindByMovieID(_ context.Context, movieID int64) ([]*entity.Review, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	var out []*entity.Review
	for _, r := range f.reviews {
		if r.MovieID == movieID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id int64) error {
	if f.failAll != nil {
		return f.failAll
	}
	for i, r := range f.reviews {
		if r.ReviewID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			if f.comments != nil {
				f.comments.dropByReviewID(id)
			}
			return nil
		}
	}
	return apperr.NotFound("review %d not found", id)
}

func (f *fakeReviewRepo) MovieStats(_ context.Context, movieID int64) (*entity.ReviewStats, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	stats := &entity.ReviewStats{}
	var sum float64
	for _, r := range f.reviews {
		if r.MovieID == movieID {
			stats.ReviewCount++
			sum += r.Rating
		}
	}
	if stats.ReviewCount > 0 {
		stats.AverageRating = sum / float64(stats.ReviewCount)
	}
	return stats, nil
}

// fakeCommentRepo is an in-memory CommentRepository.
type fakeCommentRepo struct {
	comments []*entity.Comment
	nextID   int64
	reviews  *fakeReviewRepo
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	if f.reviews != nil {
		found := false
		for _, r := range f.reviews.reviews {
			if r.ReviewID == comment.ReviewID {
				found = true
				break
			}
		}
		if !found {
			return apperr.NotFound("review %d not found", comment.ReviewID)
		}
	}
	f.nextID++
	comment.CommentID = f.nextID
	comment.CreatedAt = time.Now()
	stored := *comment
	f.comments = append(f.comments, &stored)
	return nil
}

func (f *fakeCommentRepo) FindAll(_ context.Context) ([]*entity.Comment, error) {
	return f.comments, nil
}

func (f *fakeCommentRepo) FindByReviewID(_ context.Context, reviewID int64) ([]*entity.Comment, error) {
	var out []*entity.Comment
	for _, c := range f.comments {
		if c.ReviewID == reviewID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) FindByReviewIDs(_ context.Context, reviewIDs []int64) (map[int64][]*entity.Comment, error) {
	grouped := make(map[int64][]*entity.Comment)
	for _, id := range reviewIDs {
		for _, c := range f.comments {
			if c.ReviewID == id {
				grouped[id] = append(grouped[id], c)
			}
		}
	}
	return grouped, nil
}

func (f *fakeCommentRepo) dropByReviewID(reviewID int64) {
	kept := f.comments[:0]
	for _, c := range f.comments {
		if c.ReviewID != reviewID {
			kept = append(kept, c)
		}
	}
	f.comments = kept
}

func (f *fakeCommentRepo) Delete(_ context.Context, id int64) error {
	for i, c := range f.comments {
		if c.CommentID == id {
			f.comments = append(f.comments[:i], f.comments[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("comment %d not found", id)
}

func newReviewService(reviews *fakeReviewRepo, comments *fakeCommentRepo) ReviewService {
	repo := &repository.Repository{Review: reviews, Comment: comments}
	return NewReviewService(repo, zap.NewNop())
}

func TestCreateReviewThenListByUser(t *testing.T) {
	reviews := &fakeReviewRepo{}
	svc := newReviewService(reviews, &fakeCommentRepo{})

	created, err := svc.CreateReview(context.Background(), &request.CreateReviewRequest{
		MovieID: 42,
		UserID:  "u1",
		Rating:  8,
		Title:   "Great",
		Content: "Loved it",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ReviewID)

	listed, err := svc.ListUserReviews(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ReviewID, listed[0].ReviewID)
	assert.Equal(t, 8.0, listed[0].Rating)
}

func TestListUserReviewsUnknownUserIsEmpty(t *testing.T) {
	svc := newReviewService(&fakeReviewRepo{}, &fakeCommentRepo{})

	listed, err := svc.ListUserReviews(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestListMovieReviewsIncludesComments(t *testing.T) {
	reviews := &fakeReviewRepo{}
	comments := &fakeCommentRepo{reviews: reviews}
	svc := newReviewService(reviews, comments)

	created, err := svc.CreateReview(context.Background(), &request.CreateReviewRequest{
		MovieID: 42, UserID: "u1", Rating: 8, Title: "Great", Content: "Loved it",
	})
	require.NoError(t, err)

	require.NoError(t, comments.Create(context.Background(), &entity.Comment{
		ReviewID: created.ReviewID, UserID: "u2", Comment: "Agreed",
	}))
	require.NoError(t, comments.Create(context.Background(), &entity.Comment{
		ReviewID: created.ReviewID, UserID: "u3", Comment: "Hard disagree",
	}))

	listed, err := svc.ListMovieReviews(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Len(t, listed[0].Comments, 2)
	assert.Equal(t, "Agreed", listed[0].Comments[0].Comment)
	assert.Equal(t, "Hard disagree", listed[0].Comments[1].Comment)
}

func TestListMovieReviewsScenario(t *testing.T) {
	svc := newReviewService(&fakeReviewRepo{}, &fakeCommentRepo{})

	_, err := svc.CreateReview(context.Background(), &request.CreateReviewRequest{
		MovieID: 42, UserID: "u1", Rating: 8, Title: "Great", Content: "...",
	})
	require.NoError(t, err)

	listed, err := svc.ListMovieReviews(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 8.0, listed[0].Rating)

	other, err := svc.ListMovieReviews(context.Background(), 43)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestDeleteReviewTwice(t *testing.T) {
	reviews := &fakeReviewRepo{}
	svc := newReviewService(reviews, &fakeCommentRepo{})

	created, err := svc.CreateReview(context.Background(), &request.CreateReviewRequest{
		MovieID: 42, UserID: "u1", Rating: 8, Title: "Great", Content: "...",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReview(context.Background(), created.ReviewID))

	// Second delete of the same id must be a not-found error
	err = svc.DeleteReview(context.Background(), created.ReviewID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

// Deleting a review must leave its thread empty: listing the dead review's
// comments afterwards returns nothing.
func TestDeleteReviewCascadesToComments(t *testing.T) {
	reviews := &fakeReviewRepo{}
	comments := &fakeCommentRepo{reviews: reviews}
	reviews.comments = comments

	reviewSvc := newReviewService(reviews, comments)
	commentSvc := NewCommentService(comments, zap.NewNop())

	created, err := reviewSvc.CreateReview(context.Background(), &request.CreateReviewRequest{
		MovieID: 42, UserID: "u1", Rating: 8, Title: "Great", Content: "...",
	})
	require.NoError(t, err)

	for _, text := range []string{"Agreed", "Hard disagree"} {
		_, err := commentSvc.CreateComment(context.Background(), &request.CreateCommentRequest{
			ReviewID: created.ReviewID, UserID: "u2", Comment: text,
		})
		require.NoError(t, err)
	}

	thread, err := commentSvc.ListReviewComments(context.Background(), created.ReviewID)
	require.NoError(t, err)
	require.Len(t, thread, 2)

	require.NoError(t, reviewSvc.DeleteReview(context.Background(), created.ReviewID))

	thread, err = commentSvc.ListReviewComments(context.Background(), created.ReviewID)
	require.NoError(t, err)
	assert.Empty(t, thread)
}

func TestGetMovieReviewStats(t *testing.T) {
	svc := newReviewService(&fakeReviewRepo{}, &fakeCommentRepo{})

	for _, rating := range []float64{6, 8} {
		_, err := svc.CreateReview(context.Background(), &request.CreateReviewRequest{
			MovieID: 42, UserID: "u1", Rating: rating, Title: "t", Content: "c",
		})
		require.NoError(t, err)
	}

	stats, err := svc.GetMovieReviewStats(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.ReviewCount)
	assert.Equal(t, 7.0, stats.AverageRating)
}
