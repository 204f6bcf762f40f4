package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/captainblair/movie-recommendation-api/configs"
	"github.com/captainblair/movie-recommendation-api/db/dbtest"
	"github.com/captainblair/movie-recommendation-api/internal/handler"
	"github.com/captainblair/movie-recommendation-api/internal/repository"
	"github.com/captainblair/movie-recommendation-api/internal/service"
	"github.com/captainblair/movie-recommendation-api/pkg/response"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fightClubPage = `{"page":1,"total_pages":1,"total_results":1,"results":[{"id":550,"title":"Fight Club","popularity":26.5,"vote_average":8.4,"vote_count":26280,"poster_path":"/fc.jpg","release_date":"1999-10-15","genre_ids":[18]}]}`

type testApp struct {
	app          *fiber.App
	catalogCalls *atomic.Int32
	tmdb         *service.TmdbService
}

func setupTestApp(t *testing.T) (*testApp, func()) {
	return setupTestAppWithCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fightClubPage))
	})
}

func setupTestAppWithCatalog(t *testing.T, catalogHandler http.HandlerFunc) (*testApp, func()) {
	previous := configs.GetConfigs()
	configs.SetConfigs(configs.ConfigStruct{
		AccessTokenSecret:        "access-secret",
		RefreshTokenSecret:       "refresh-secret",
		AccessTokenLifetimeMin:   60,
		RefreshTokenLifetimeHour: 24,
	})

	calls := &atomic.Int32{}
	catalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		catalogHandler(w, r)
	}))

	gormDB, dbCleanup := dbtest.NewTestDatabase(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cacheSvc := service.NewCacheService(rdb)
	tmdbSvc := service.NewTmdbService(cacheSvc, "secret", catalog.URL, time.Hour)
	storageSvc := service.NewStorageService(nil, "")

	movieRep := repository.NewMovieRepository(gormDB)
	favoriteRep := repository.NewFavoriteRepository(gormDB)
	ratingRep := repository.NewRatingRepository(gormDB)
	userRep := repository.NewUserRepository(gormDB)

	movieSvc := service.NewMovieService(movieRep, favoriteRep, ratingRep, tmdbSvc)
	userSvc := service.NewUserService(userRep, cacheSvc, storageSvc)
	app := InitRouter(
		handler.NewMovieHandler(movieSvc),
		handler.NewFavoriteHandler(service.NewFavoriteService(favoriteRep, movieRep, movieSvc)),
		handler.NewRatingHandler(service.NewRatingService(ratingRep, movieRep, movieSvc)),
		handler.NewUserHandler(userSvc),
		userSvc,
	)

	return &testApp{app: app, catalogCalls: calls, tmdb: tmdbSvc}, func() {
		_ = rdb.Close()
		catalog.Close()
		dbCleanup()
		configs.SetConfigs(previous)
	}
}

func (a *testApp) do(t *testing.T, method string, path string, body interface{}, token string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := a.app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	data := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &data), string(raw))
	}
	return resp.StatusCode, data
}

// login registers a user and returns its access and refresh tokens.
func (a *testApp) login(t *testing.T, username string) (string, string) {
	t.Helper()
	status, _ := a.do(t, http.MethodPost, "/auth/users/", map[string]string{
		"username":         username,
		"email":            username + "@example.com",
		"password":         "supersecret",
		"password_confirm": "supersecret",
	}, "")
	require.Equal(t, http.StatusCreated, status)

	status, body := a.do(t, http.MethodPost, "/auth/token/", map[string]string{
		"username": username,
		"password": "supersecret",
	}, "")
	require.Equal(t, http.StatusOK, status)
	return body["access"].(string), body["refresh"].(string)
}

// importFightClub stores the catalog movie and returns its local id.
func (a *testApp) importFightClub(t *testing.T) int64 {
	t.Helper()
	status, body := a.do(t, http.MethodGet, "/movies/trending/", nil, "")
	require.Equal(t, http.StatusOK, status)
	results := body["results"].([]interface{})
	require.Len(t, results, 1)
	return int64(results[0].(map[string]interface{})["id"].(float64))
}

//------------------------------------------
//------------------------------------------

func TestHealthCheck(t *testing.T) {
	a, cleanup := setupTestApp(t)
	defer cleanup()

	status, body := a.do(t, http.MethodGet, "/", nil, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Server is up and running", body["data"])
}

func TestTrendingMovies(t *testing.T) {
	a, cleanup := setupTestApp(t)
	defer cleanup()

	status, body := a.do(t, http.MethodGet, "/movies/trending/?time_window=week&page=1", nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, float64(1), body["page"])
	results := body["results"].([]interface{})
	require.Len(t, results, 1)
	movie := results[0].(map[string]interface{})
	assert.Equal(t, "Fight Club", movie["title"])
	assert.Equal(t, float64(550), movie["tmdb_id"])
	assert.Equal(t, false, movie["is_favorite"])
	assert.Nil(t, movie["user_rating"])

	status, _ = a.do(t, http.MethodGet, "/movies/trending/", nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int32(1), a.catalogCalls.Load())
}

func TestCatalogValidation(t *testing.T) {
	a, cleanup := setupTestApp(t)
	defer cleanup()

	status, body := a.do(t, http.MethodGet, "/movies/search/?q=", nil, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, response.EmptySearchQuery, body["errorMessage"])

	status, body = a.do(t, http.MethodGet, "/movies/trending/?time_window=year", nil, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, response.InvalidTimeWindow, body["errorMessage"])

	status, body = a.do(t, http.MethodGet, "/movies/trending/?time_window=", nil, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, response.InvalidTimeWindow, body["errorMessage"])

	assert.Equal(t, int32(0), a.catalogCalls.Load())
}

func TestAccessControl(t *testing.T) {
	a, cleanup := setupTestApp(t)
	defer cleanup()
	movieId := a.importFightClub(t)

	status, body := a.do(t, http.MethodPost, fmt.Sprintf("/movies/%d/add_to_favorites/", movieId), nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Authentication credentials were not provided.", body["errorMessage"])

	status, body = a.do(t, http.MethodGet, "/movies/trending/", nil, "garbage")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, response.InvalidToken, body["errorMessage"])

	access, _ := a.login(t, "alice")
	status, _ = a.do(t, http.MethodPatch, fmt.Sprintf("/movies/%d/", movieId), map[string]string{"title": "x"}, access)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = a.do(t, http.MethodGet, "/auth/users/", nil, access)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestFavoritesFlow(t *testing.T) {
	a, cleanup := setupTestApp(t)
	defer cleanup()
	movieId := a.importFightClub(t)
	access, _ := a.login(t, "alice")
	path := fmt.Sprintf("/movies/%d/add_to_favorites/", movieId)

	status, body := a.do(t, http.MethodPost, path, nil, access)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, response.AddedToFavorites, body["message"])

	status, body = a.do(t, http.MethodPost, path, nil, access)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, response.AlreadyInFavorites, body["message"])

	status, body = a.do(t, http.MethodGet, "/favorites/my_favorites/", nil, access)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])

	status, body = a.do(t, http.MethodGet, "/movies/trending/", nil, access)
	require.Equal(t, http.StatusOK, status)
	movie := body["results"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, true, movie["is_favorite"])

	removePath := fmt.Sprintf("/movies/%d/remove_from_favorites/", movieId)
	status, _ = a.do(t, http.MethodDelete, removePath, nil, access)
	assert.Equal(t, http.StatusNoContent, status)
	status, body = a.do(t, http.MethodDelete, removePath, nil, access)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, response.FavoriteNotFound, body["errorMessage"])

	status, _ = a.do(t, http.MethodPost, "/movies/9999/add_to_favorites/", nil, access)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRatingsFlow(t *testing.T) {
	a, cleanup := setupTestApp(t)
	defer cleanup()
	movieId := a.importFightClub(t)
	access, _ := a.login(t, "alice")
	path := fmt.Sprintf("/movies/%d/rate/", movieId)

	status, body := a.do(t, http.MethodPost, path, map[string]interface{}{"rating": 9, "review": "great"}, access)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, float64(9), body["rating"])

	status, body = a.do(t, http.MethodPut, path, map[string]interface{}{"rating": 5}, access)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(5), body["rating"])

	status, body = a.do(t, http.MethodPost, path, map[string]interface{}{"rating": 11}, access)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["errorMessage"], "rating")

	status, body = a.do(t, http.MethodGet, fmt.Sprintf("/movies/%d/", movieId), nil, access)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(5), body["average_rating"])
	userRating := body["user_rating"].(map[string]interface{})
	assert.Equal(t, float64(5), userRating["rating"])

	status, body = a.do(t, http.MethodGet, "/ratings/my_ratings/", nil, access)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])

	removePath := fmt.Sprintf("/movies/%d/remove_rating/", movieId)
	status, _ = a.do(t, http.MethodDelete, removePath, nil, access)
	assert.Equal(t, http.StatusNoContent, status)
	status, body = a.do(t, http.MethodDelete, removePath, nil, access)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, response.RatingNotFound, body["errorMessage"])
}

func TestTokenLifecycle(t *testing.T) {
	a, cleanup := setupTestApp(t)
	defer cleanup()
	access, refresh := a.login(t, "alice")

	status, body := a.do(t, http.MethodGet, "/auth/users/me/", nil, access)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice", body["username"])

	status, body = a.do(t, http.MethodPost, "/auth/token/", map[string]string{"username": "alice", "password": "nope"}, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, response.InvalidCredentials, body["errorMessage"])

	status, body = a.do(t, http.MethodPost, "/auth/token/refresh/", map[string]string{"refresh": refresh}, "")
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["access"])

	status, body = a.do(t, http.MethodPost, "/auth/token/blacklist/", map[string]string{"refresh": refresh}, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, response.TokenBlacklisted, body["message"])

	status, _ = a.do(t, http.MethodPost, "/auth/token/refresh/", map[string]string{"refresh": refresh}, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = a.do(t, http.MethodPost, "/auth/users/profile_picture/", map[string]string{"content_type": "image/png"}, access)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, response.StorageUnavailable, body["errorMessage"])
}

func TestCatalogTimeout(t *testing.T) {
	a, cleanup := setupTestAppWithCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
		_, _ = w.Write([]byte(fightClubPage))
	})
	defer cleanup()
	a.tmdb.SetRequestTimeout(200 * time.Millisecond)

	status, body := a.do(t, http.MethodGet, "/movies/popular/", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, response.FetchPopularFailed, body["errorMessage"])
}

func TestTimeoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(timeoutMiddleware(50 * time.Millisecond))
	app.Get("/answered", func(c *fiber.Ctx) error {
		<-c.UserContext().Done()
		return response.ResponseError(c, response.FetchPopularFailed, fiber.StatusServiceUnavailable)
	})
	app.Get("/silent", func(c *fiber.Ctx) error {
		<-c.UserContext().Done()
		return nil
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/answered", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/silent", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)
}

func TestDeletedUserToken(t *testing.T) {
	a, cleanup := setupTestApp(t)
	defer cleanup()
	movieId := a.importFightClub(t)
	access, _ := a.login(t, "alice")

	status, _ := a.do(t, http.MethodDelete, "/auth/users/me/", nil, access)
	require.Equal(t, http.StatusNoContent, status)

	status, body := a.do(t, http.MethodPost, fmt.Sprintf("/movies/%d/add_to_favorites/", movieId), nil, access)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, response.TokenUserNotFound, body["errorMessage"])

	status, _ = a.do(t, http.MethodPost, fmt.Sprintf("/movies/%d/rate/", movieId), map[string]interface{}{"rating": 7}, access)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = a.do(t, http.MethodGet, "/auth/users/me/", nil, access)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = a.do(t, http.MethodGet, "/movies/trending/", nil, access)
	assert.Equal(t, http.StatusUnauthorized, status)
}
