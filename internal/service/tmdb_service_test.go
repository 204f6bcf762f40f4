package service

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/captainblair/movie-recommendation-api/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fightClubPage = `{"page":1,"total_pages":1,"total_results":1,"results":[{"id":550,"title":"Fight Club","popularity":26.5,"vote_average":8.4,"vote_count":26280,"poster_path":"/fc.jpg","release_date":"1999-10-15","genre_ids":[18]}]}`

type fakeCatalog struct {
	server   *httptest.Server
	calls    atomic.Int32
	lastPath atomic.Value
	lastKey  atomic.Value
	lastQ    atomic.Value
}

func newFakeCatalog(t *testing.T, status int, body string) *fakeCatalog {
	f := &fakeCatalog{}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		f.lastPath.Store(r.URL.Path)
		f.lastKey.Store(r.URL.Query().Get("api_key"))
		f.lastQ.Store(r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(f.server.Close)
	return f
}

func setupTestTmdbService(t *testing.T, catalog *fakeCatalog, apiKey string) (*TmdbService, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewTmdbService(NewCacheService(rdb), apiKey, catalog.server.URL, time.Hour), mr
}

func TestTmdbService_CachesSuccessfulResponses(t *testing.T) {
	catalog := newFakeCatalog(t, http.StatusOK, fightClubPage)
	svc, mr := setupTestTmdbService(t, catalog, "secret")

	first, err := svc.GetTrendingMovies(context.Background(), "week", 1)
	require.NoError(t, err)
	second, err := svc.GetTrendingMovies(context.Background(), "week", 1)
	require.NoError(t, err)

	assert.Equal(t, int32(1), catalog.calls.Load())
	assert.Equal(t, "/trending/movie/week", catalog.lastPath.Load())
	assert.Equal(t, "secret", catalog.lastKey.Load())
	assert.Equal(t, first, second)
	require.Len(t, second.Results, 1)
	assert.Equal(t, "Fight Club", second.Results[0].Title)
	assert.Equal(t, int64(1), second.TotalResults)

	assert.True(t, mr.Exists("tmdb:trending_movies_week_page_1"))
	assert.Equal(t, time.Hour, mr.TTL("tmdb:trending_movies_week_page_1"))
}

func TestTmdbService_DistinctParamsAreCachedSeparately(t *testing.T) {
	catalog := newFakeCatalog(t, http.StatusOK, fightClubPage)
	svc, mr := setupTestTmdbService(t, catalog, "secret")

	_, err := svc.GetPopularMovies(context.Background(), 1)
	require.NoError(t, err)
	_, err = svc.GetPopularMovies(context.Background(), 2)
	require.NoError(t, err)
	_, err = svc.SearchMovies(context.Background(), "fight", 1)
	require.NoError(t, err)

	assert.Equal(t, int32(3), catalog.calls.Load())
	assert.Equal(t, "fight", catalog.lastQ.Load())
	assert.True(t, mr.Exists("tmdb:popular_movies_page_1"))
	assert.True(t, mr.Exists("tmdb:popular_movies_page_2"))
	assert.True(t, mr.Exists("tmdb:search_movies_fight_page_1"))
}

func TestTmdbService_FailuresAreNotCached(t *testing.T) {
	catalog := newFakeCatalog(t, http.StatusInternalServerError, `{"status_message":"boom"}`)
	svc, mr := setupTestTmdbService(t, catalog, "secret")

	_, err := svc.GetTopRatedMovies(context.Background(), 1)
	assert.ErrorIs(t, err, model.ErrCatalogUnavailable)
	_, err = svc.GetTopRatedMovies(context.Background(), 1)
	assert.ErrorIs(t, err, model.ErrCatalogUnavailable)

	assert.Equal(t, int32(2), catalog.calls.Load())
	assert.False(t, mr.Exists("tmdb:top_rated_movies_page_1"))
}

func TestTmdbService_MissingApiKeyFailsFast(t *testing.T) {
	catalog := newFakeCatalog(t, http.StatusOK, fightClubPage)
	svc, _ := setupTestTmdbService(t, catalog, "")

	_, err := svc.GetMovieDetails(context.Background(), 550)
	assert.ErrorIs(t, err, model.ErrCatalogUnavailable)
	assert.ErrorIs(t, err, model.ErrMissingApiKey)
	assert.Equal(t, int32(0), catalog.calls.Load())
}

func TestTmdbService_CacheOutageFallsThrough(t *testing.T) {
	catalog := newFakeCatalog(t, http.StatusOK, fightClubPage)
	svc, mr := setupTestTmdbService(t, catalog, "secret")
	mr.Close()

	res, err := svc.GetRecommendedMovies(context.Background(), 550, 1)
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "/movie/550/recommendations", catalog.lastPath.Load())
}

func TestTmdbService_LogsCacheHits(t *testing.T) {
	catalog := newFakeCatalog(t, http.StatusOK, fightClubPage)
	svc, _ := setupTestTmdbService(t, catalog, "secret")

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	_, err := svc.GetPopularMovies(context.Background(), 1)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "Returning cached")

	_, err = svc.GetPopularMovies(context.Background(), 1)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Returning cached popular_movies_page_1")
	assert.NotContains(t, buf.String(), "secret")
}
