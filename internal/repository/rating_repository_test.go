package repository

import (
	"context"
	"testing"

	"github.com/captainblair/movie-recommendation-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertRating_OverwritesExisting(t *testing.T) {
	movieRepo, gormDB, cleanup := setupTestMovieRepository(t)
	defer cleanup()
	repo := NewRatingRepository(gormDB)

	movie := createTestMovie(t, movieRepo, fightClub())
	user := createTestUser(t, gormDB, "alice")

	rating, created, err := repo.UpsertRating(context.Background(), user.Id, movie.Id, 9, strPtr("great"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 9, rating.Rating)
	require.NotNil(t, rating.Movie)
	assert.Equal(t, "Fight Club", rating.Movie.Title)

	rating, created, err = repo.UpsertRating(context.Background(), user.Id, movie.Id, 5, strPtr("meh"))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 5, rating.Rating)
	require.NotNil(t, rating.Review)
	assert.Equal(t, "meh", *rating.Review)

	var count int64
	require.NoError(t, gormDB.Model(&model.MovieRating{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRemoveRating(t *testing.T) {
	movieRepo, gormDB, cleanup := setupTestMovieRepository(t)
	defer cleanup()
	repo := NewRatingRepository(gormDB)

	movie := createTestMovie(t, movieRepo, fightClub())
	user := createTestUser(t, gormDB, "alice")

	assert.ErrorIs(t, repo.RemoveRating(context.Background(), user.Id, movie.Id), model.ErrRatingNotFound)

	_, _, err := repo.UpsertRating(context.Background(), user.Id, movie.Id, 7, nil)
	require.NoError(t, err)
	require.NoError(t, repo.RemoveRating(context.Background(), user.Id, movie.Id))
	assert.ErrorIs(t, repo.RemoveRating(context.Background(), user.Id, movie.Id), model.ErrRatingNotFound)
}

func TestGetUserRatingsForMovies(t *testing.T) {
	movieRepo, gormDB, cleanup := setupTestMovieRepository(t)
	defer cleanup()
	repo := NewRatingRepository(gormDB)

	movie := createTestMovie(t, movieRepo, fightClub())
	other := createTestMovie(t, movieRepo, model.TmdbMovie{Id: 13, Title: "Forrest Gump"})
	user := createTestUser(t, gormDB, "alice")

	_, _, err := repo.UpsertRating(context.Background(), user.Id, movie.Id, 8, nil)
	require.NoError(t, err)

	ratings, err := repo.GetUserRatingsForMovies(context.Background(), user.Id, []int64{movie.Id, other.Id})
	require.NoError(t, err)
	require.Contains(t, ratings, movie.Id)
	assert.Equal(t, 8, ratings[movie.Id].Rating)
	assert.NotContains(t, ratings, other.Id)

	list, count, err := repo.GetUserRatings(context.Background(), user.Id, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Movie)
	assert.Equal(t, movie.Id, list[0].Movie.Id)
}
