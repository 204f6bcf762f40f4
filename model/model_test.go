package model

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{nil, http.StatusOK},
		{NewValidationError("username", "taken"), http.StatusBadRequest},
		{fmt.Errorf("%w: status 500", ErrCatalogUnavailable), http.StatusServiceUnavailable},
		{ErrMissingApiKey, http.StatusServiceUnavailable},
		{ErrStorageDisabled, http.StatusServiceUnavailable},
		{ErrInvalidTimeWindow, http.StatusBadRequest},
		{ErrInvalidRating, http.StatusBadRequest},
		{ErrMovieNotFound, http.StatusNotFound},
		{gorm.ErrRecordNotFound, http.StatusNotFound},
		{ErrInvalidToken, http.StatusUnauthorized},
		{gorm.ErrDuplicatedKey, http.StatusConflict},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, GetErrorCode(tt.err), "%v", tt.err)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: map[string][]string{"password": {"x"}, "email": {"y"}}}
	assert.Equal(t, "invalid fields: email, password", err.Error())
}

func TestTmdbMovieToMovie(t *testing.T) {
	poster := "/fc.jpg"
	item := TmdbMovie{Id: 550, Title: " Fight Club ", ReleaseDate: "1999-10-15", PosterPath: &poster}
	item.Genres = append(item.Genres, struct {
		Id   int64  `json:"id"`
		Name string `json:"name"`
	}{Id: 18, Name: "Drama"})

	movie := item.ToMovie()
	assert.Equal(t, int64(550), movie.TmdbId)
	assert.Equal(t, "fight-club", movie.Slug)
	assert.Equal(t, []int64{18}, movie.GenreIds)
	require.NotNil(t, movie.ReleaseDate)
	assert.Equal(t, "1999-10-15", *FormatDate(movie.ReleaseDate))

	broken := TmdbMovie{Id: 1, Title: "x", ReleaseDate: "soon"}
	noDate := broken.ToMovie()
	assert.Nil(t, noDate.ReleaseDate)
	assert.Equal(t, []int64{}, noDate.GenreIds)
}

func TestImageUrls(t *testing.T) {
	path := "/fc.jpg"
	empty := ""
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/fc.jpg", *PosterUrl(&path))
	assert.Nil(t, PosterUrl(&empty))
	assert.Nil(t, BackdropUrl(nil))
}

func TestRegisterReqValidate(t *testing.T) {
	req := &RegisterReq{Username: " alice ", Email: "alice@example.com", Password: "supersecret", PasswordConfirm: "supersecret"}
	assert.Nil(t, req.Validate())
	assert.Equal(t, "alice", req.Username)

	bad := &RegisterReq{Username: "al ice", Email: "", Password: "short", PasswordConfirm: "short"}
	fields := bad.Validate()
	assert.Contains(t, fields, "username")
	assert.Equal(t, []string{"This field is required."}, fields["email"])
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "password_confirm")
}
