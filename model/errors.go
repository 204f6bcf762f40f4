package model

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrCatalogUnavailable = errors.New("failed to fetch data from catalog")
	ErrMissingApiKey      = errors.New("TMDB_API_KEY not configured")
	ErrInvalidTimeWindow  = errors.New("time_window must be 'day' or 'week'")
	ErrEmptySearchQuery   = errors.New("search query is required")
	ErrLongSearchQuery    = errors.New("search query cannot exceed 100 characters")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrFavoriteNotFound   = errors.New("movie is not in favorites")
	ErrRatingNotFound     = errors.New("no rating found for this movie")
	ErrInvalidRating      = errors.New("rating must be an integer between 1 and 10")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameExists     = errors.New("a user with that username already exists")
	ErrEmailExists        = errors.New("this email is already registered")
	ErrInvalidCredentials = errors.New("no active account found with the given credentials")
	ErrInvalidToken       = errors.New("token is invalid or expired")
	ErrStorageDisabled    = errors.New("object storage is not configured")
)

// ValidationError carries field level messages for a rejected request body.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError(field string, message string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {message}}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid fields: " + strings.Join(keys, ", ")
}

func GetErrorCode(err error) int {
	var validationErr *ValidationError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, ErrCatalogUnavailable), errors.Is(err, ErrMissingApiKey), errors.Is(err, ErrStorageDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrInvalidTimeWindow), errors.Is(err, ErrEmptySearchQuery),
		errors.Is(err, ErrLongSearchQuery), errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrUsernameExists), errors.Is(err, ErrEmailExists):
		return http.StatusBadRequest
	case errors.Is(err, ErrMovieNotFound), errors.Is(err, ErrFavoriteNotFound),
		errors.Is(err, ErrRatingNotFound), errors.Is(err, ErrUserNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
