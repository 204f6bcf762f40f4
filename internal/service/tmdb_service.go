package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/captainblair/movie-recommendation-api/model"
	errorHandler "github.com/captainblair/movie-recommendation-api/pkg/error"

	"github.com/valyala/fasthttp"
)

type ITmdbService interface {
	GetTrendingMovies(ctx context.Context, timeWindow string, page int) (*model.TmdbMovieList, error)
	GetPopularMovies(ctx context.Context, page int) (*model.TmdbMovieList, error)
	GetTopRatedMovies(ctx context.Context, page int) (*model.TmdbMovieList, error)
	SearchMovies(ctx context.Context, query string, page int) (*model.TmdbMovieList, error)
	GetMovieDetails(ctx context.Context, tmdbId int64) (*model.TmdbMovie, error)
	GetRecommendedMovies(ctx context.Context, tmdbId int64, page int) (*model.TmdbMovieList, error)
}

type TmdbService struct {
	cacheService ICacheService
	client       *fasthttp.Client
	apiKey       string
	baseUrl      string
	cacheTTL     time.Duration
	timeout      time.Duration
}

const tmdbRequestTimeout = 10 * time.Second

func NewTmdbService(cacheService ICacheService, apiKey string, baseUrl string, cacheTTL time.Duration) *TmdbService {
	return &TmdbService{
		cacheService: cacheService,
		client: &fasthttp.Client{
			Name:                "movie-recommendation-api",
			ReadTimeout:         tmdbRequestTimeout,
			WriteTimeout:        tmdbRequestTimeout,
			MaxIdleConnDuration: time.Minute,
		},
		apiKey:   apiKey,
		baseUrl:  baseUrl,
		cacheTTL: cacheTTL,
		timeout:  tmdbRequestTimeout,
	}
}

// SetRequestTimeout overrides the per-request catalog timeout.
func (m *TmdbService) SetRequestTimeout(timeout time.Duration) {
	m.timeout = timeout
	m.client.ReadTimeout = timeout
	m.client.WriteTimeout = timeout
}

//------------------------------------------
//------------------------------------------

func (m *TmdbService) GetTrendingMovies(ctx context.Context, timeWindow string, page int) (*model.TmdbMovieList, error) {
	key := fmt.Sprintf("trending_movies_%s_page_%d", timeWindow, page)
	endpoint := "/trending/movie/" + timeWindow
	var result model.TmdbMovieList
	if err := m.cachedGet(ctx, key, endpoint, pageParams(page), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (m *TmdbService) GetPopularMovies(ctx context.Context, page int) (*model.TmdbMovieList, error) {
	key := fmt.Sprintf("popular_movies_page_%d", page)
	var result model.TmdbMovieList
	if err := m.cachedGet(ctx, key, "/movie/popular", pageParams(page), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (m *TmdbService) GetTopRatedMovies(ctx context.Context, page int) (*model.TmdbMovieList, error) {
	key := fmt.Sprintf("top_rated_movies_page_%d", page)
	var result model.TmdbMovieList
	if err := m.cachedGet(ctx, key, "/movie/top_rated", pageParams(page), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (m *TmdbService) SearchMovies(ctx context.Context, query string, page int) (*model.TmdbMovieList, error) {
	key := fmt.Sprintf("search_movies_%s_page_%d", query, page)
	params := pageParams(page)
	params["query"] = query
	var result model.TmdbMovieList
	if err := m.cachedGet(ctx, key, "/search/movie", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (m *TmdbService) GetMovieDetails(ctx context.Context, tmdbId int64) (*model.TmdbMovie, error) {
	key := fmt.Sprintf("movie_details_%d", tmdbId)
	endpoint := fmt.Sprintf("/movie/%d", tmdbId)
	var result model.TmdbMovie
	if err := m.cachedGet(ctx, key, endpoint, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (m *TmdbService) GetRecommendedMovies(ctx context.Context, tmdbId int64, page int) (*model.TmdbMovieList, error) {
	key := fmt.Sprintf("recommended_movies_%d_page_%d", tmdbId, page)
	endpoint := fmt.Sprintf("/movie/%d/recommendations", tmdbId)
	var result model.TmdbMovieList
	if err := m.cachedGet(ctx, key, endpoint, pageParams(page), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

//------------------------------------------
//------------------------------------------

func pageParams(page int) map[string]string {
	return map[string]string{"page": strconv.Itoa(page)}
}

// cachedGet serves dest from the cache, or fetches it and caches the decoded
// payload. Failed fetches are never cached.
func (m *TmdbService) cachedGet(ctx context.Context, key string, endpoint string, params map[string]string, dest interface{}) error {
	if m.cacheService != nil && m.cacheService.GetCatalogCache(ctx, key, dest) {
		log.Printf("Returning cached %s", key)
		return nil
	}

	if err := m.get(endpoint, params, dest); err != nil {
		return err
	}

	if m.cacheService != nil {
		_ = m.cacheService.SetCatalogCache(ctx, key, dest, m.cacheTTL)
	}
	return nil
}

func (m *TmdbService) get(endpoint string, params map[string]string, dest interface{}) error {
	if m.apiKey == "" {
		errorHandler.SaveError("TMDB_API_KEY not configured", nil)
		return fmt.Errorf("%w: %w", model.ErrCatalogUnavailable, model.ErrMissingApiKey)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(m.baseUrl + endpoint)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	args := req.URI().QueryArgs()
	for k, v := range params {
		args.Set(k, v)
	}
	log.Printf("TMDb API request: %s%s?%s", m.baseUrl, endpoint, args.String())
	args.Set("api_key", m.apiKey)

	if err := m.client.DoTimeout(req, resp, m.timeout); err != nil {
		errorMessage := fmt.Sprintf("TMDb API request failed: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return fmt.Errorf("%w: %w", model.ErrCatalogUnavailable, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		errorMessage := fmt.Sprintf("TMDb API request failed: status %d on %s", resp.StatusCode(), endpoint)
		errorHandler.SaveError(errorMessage, nil)
		return fmt.Errorf("%w: status %d", model.ErrCatalogUnavailable, resp.StatusCode())
	}

	if err := json.Unmarshal(resp.Body(), dest); err != nil {
		errorMessage := fmt.Sprintf("TMDb API response decode failed: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return fmt.Errorf("%w: %w", model.ErrCatalogUnavailable, err)
	}
	return nil
}
