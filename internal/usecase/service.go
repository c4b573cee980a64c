package usecase

import (
	"context"

	"movie-reviews/internal/data/repository"
	"movie-reviews/pkg/cache"
	"movie-reviews/pkg/tmdb"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Review  ReviewService
	Comment CommentService
	Movie   MovieService
}

func NewService(repo *repository.Repository, metadata MetadataClient, cache *cache.Cache, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Review:  NewReviewService(repo, log),
		Comment: NewCommentService(repo.Comment, log),
		Movie:   NewMovieService(metadata, repo.Review, cache, config.Redis, log),
	}
}

// MetadataClient is the slice of the metadata API the movie service needs.
// *tmdb.Client satisfies it.
type MetadataClient interface {
	GetMovie(ctx context.Context, id int64) (*tmdb.Movie, error)
	SearchMovies(ctx context.Context, query string, page int) (*tmdb.SearchResult, error)
	TrendingDaily(ctx context.Context, page int) (*tmdb.SearchResult, error)
}
