// Package tmdb is a read-only client for the external movie metadata API.
// All response fields are treated as optional; absent values stay at their
// zero value and the caller decides on placeholders.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"movie-reviews/pkg/apperr"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductionCompany struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	LogoPath string `json:"logo_path"`
}

type Movie struct {
	ID                  int64               `json:"id"`
	Title               string              `json:"title"`
	Overview            string              `json:"overview"`
	PosterPath          string              `json:"poster_path"`
	BackdropPath        string              `json:"backdrop_path"`
	ReleaseDate         string              `json:"release_date"`
	VoteAverage         float64             `json:"vote_average"`
	Runtime             int                 `json:"runtime"`
	Tagline             string              `json:"tagline"`
	Genres              []Genre             `json:"genres"`
	ProductionCompanies []ProductionCompany `json:"production_companies"`
}

type SearchResult struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int64   `json:"total_results"`
}

type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
	log     *zap.Logger
}

func NewClient(config utils.MoviesConfig, log *zap.Logger) *Client {
	rps := config.RequestsPerSecond
	if rps <= 0 {
		rps = 40
	}

	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: config.BaseURL,
		apiKey:  config.APIKey,
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
		log:     log.With(zap.String("client", "tmdb")),
	}
}

// GetMovie fetches one movie's detail by id.
func (c *Client) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	path := fmt.Sprintf("/movie/%d", id)

	var movie Movie
	if err := c.get(ctx, path, url.Values{"language": {"en-US"}}, &movie); err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NotFound("movie %d not found", id)
		}
		return nil, err
	}

	return &movie, nil
}

// SearchMovies runs a paginated free-text title search.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*SearchResult, error) {
	params := url.Values{
		"query":         {query},
		"page":          {strconv.Itoa(page)},
		"include_adult": {"false"},
		"language":      {"en-US"},
	}

	var result SearchResult
	if err := c.get(ctx, "/search/movie", params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// TrendingDaily returns the movies trending today.
func (c *Client) TrendingDaily(ctx context.Context, page int) (*SearchResult, error) {
	params := url.Values{
		"page":     {strconv.Itoa(page)},
		"language": {"en-US"},
	}

	var result SearchResult
	if err := c.get(ctx, "/trending/movie/day", params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return apperr.Unavailable(err, "metadata request throttled")
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return apperr.Unavailable(err, "build metadata request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("Metadata request failed", zap.Error(err), zap.String("path", path))
		return apperr.Unavailable(err, "movie metadata service unreachable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperr.NotFound("metadata resource not found")
	case resp.StatusCode != http.StatusOK:
		c.log.Warn("Metadata request rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("path", path),
		)
		return apperr.Unavailable(nil, "movie metadata service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Unavailable(err, "decode metadata response")
	}

	return nil
}
