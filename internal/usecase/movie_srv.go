package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/cache"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovie(ctx context.Context, movieID int64) (*response.MovieDetail, error)
	SearchMovies(ctx context.Context, query string, page int) (*response.MoviePage, error)
	TrendingMovies(ctx context.Context, page int) (*response.MoviePage, error)
}

type movieService struct {
	metadata MetadataClient
	reviews  repository.ReviewRepository
	cache    *cache.Cache
	cacheTTL time.Duration
	log      *zap.Logger
}

func NewMovieService(metadata MetadataClient, reviews repository.ReviewRepository, cache *cache.Cache, redisConfig utils.RedisConfig, log *zap.Logger) MovieService {
	ttl := time.Duration(redisConfig.TTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &movieService{
		metadata: metadata,
		reviews:  reviews,
		cache:    cache,
		cacheTTL: ttl,
		log:      log.With(zap.String("service", "movie")),
	}
}

// GetMovie returns upstream metadata enriched with the local review stats.
// Only the upstream part is cached; stats move with every submitted review.
func (s *movieService) GetMovie(ctx context.Context, movieID int64) (*response.MovieDetail, error) {
	key := fmt.Sprintf("movie:detail:%d", movieID)

	var detail *response.MovieDetail
	if raw, ok := s.cache.Get(ctx, key); ok {
		detail = &response.MovieDetail{}
		if err := json.Unmarshal(raw, detail); err != nil {
			s.log.Warn("Discarding corrupt cache entry", zap.Error(err), zap.String("key", key))
			detail = nil
		}
	}

	if detail == nil {
		movie, err := s.metadata.GetMovie(ctx, movieID)
		if err != nil {
			return nil, fmt.Errorf("get movie %d: %w", movieID, err)
		}

		detail = response.MovieToDetail(movie)
		s.cacheStore(ctx, key, detail)
	}

	stats, err := s.reviews.MovieStats(ctx, movieID)
	if err != nil {
		// Metadata is still useful without local stats
		s.log.Warn("Failed to load review stats for movie detail",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
	} else {
		resp := response.StatsToResponse(stats)
		detail.ReviewStats = &resp
	}

	return detail, nil
}

func (s *movieService) SearchMovies(ctx context.Context, query string, page int) (*response.MoviePage, error) {
	if page < 1 {
		page = 1
	}

	key := fmt.Sprintf("movie:search:%s:%d", query, page)
	if raw, ok := s.cache.Get(ctx, key); ok {
		var cached response.MoviePage
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
		s.log.Warn("Discarding corrupt cache entry", zap.String("key", key))
	}

	result, err := s.metadata.SearchMovies(ctx, query, page)
	if err != nil {
		return nil, fmt.Errorf("search movies %q page %d: %w", query, page, err)
	}

	moviePage := response.MoviesToPage(result)
	s.cacheStore(ctx, key, moviePage)

	return moviePage, nil
}

func (s *movieService) TrendingMovies(ctx context.Context, page int) (*response.MoviePage, error) {
	if page < 1 {
		page = 1
	}

	key := fmt.Sprintf("movie:trending:%d", page)
	if raw, ok := s.cache.Get(ctx, key); ok {
		var cached response.MoviePage
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
		s.log.Warn("Discarding corrupt cache entry", zap.String("key", key))
	}

	result, err := s.metadata.TrendingDaily(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("trending movies page %d: %w", page, err)
	}

	moviePage := response.MoviesToPage(result)
	s.cacheStore(ctx, key, moviePage)

	return moviePage, nil
}

func (s *movieService) cacheStore(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("Failed to marshal cache entry", zap.Error(err), zap.String("key", key))
		return
	}

	s.cache.Set(ctx, key, raw, s.cacheTTL)
}
