package service

import (
	"context"

	"github.com/captainblair/movie-recommendation-api/model"

	"github.com/stretchr/testify/mock"
)

type MockTmdbService struct {
	mock.Mock
}

func (m *MockTmdbService) GetTrendingMovies(ctx context.Context, timeWindow string, page int) (*model.TmdbMovieList, error) {
	args := m.Called(ctx, timeWindow, page)
	return listOrNil(args.Get(0)), args.Error(1)
}

func (m *MockTmdbService) GetPopularMovies(ctx context.Context, page int) (*model.TmdbMovieList, error) {
	args := m.Called(ctx, page)
	return listOrNil(args.Get(0)), args.Error(1)
}

func (m *MockTmdbService) GetTopRatedMovies(ctx context.Context, page int) (*model.TmdbMovieList, error) {
	args := m.Called(ctx, page)
	return listOrNil(args.Get(0)), args.Error(1)
}

func (m *MockTmdbService) SearchMovies(ctx context.Context, query string, page int) (*model.TmdbMovieList, error) {
	args := m.Called(ctx, query, page)
	return listOrNil(args.Get(0)), args.Error(1)
}

func (m *MockTmdbService) GetMovieDetails(ctx context.Context, tmdbId int64) (*model.TmdbMovie, error) {
	args := m.Called(ctx, tmdbId)
	if v := args.Get(0); v != nil {
		return v.(*model.TmdbMovie), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTmdbService) GetRecommendedMovies(ctx context.Context, tmdbId int64, page int) (*model.TmdbMovieList, error) {
	args := m.Called(ctx, tmdbId, page)
	return listOrNil(args.Get(0)), args.Error(1)
}

func listOrNil(v interface{}) *model.TmdbMovieList {
	if v == nil {
		return nil
	}
	return v.(*model.TmdbMovieList)
}
