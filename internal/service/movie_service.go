package service

import (
	"context"
	"strings"

	"github.com/captainblair/movie-recommendation-api/internal/repository"
	"github.com/captainblair/movie-recommendation-api/model"
	"github.com/captainblair/movie-recommendation-api/util"

	"github.com/gosimple/slug"
)

type IMovieService interface {
	GetTrendingMovies(ctx context.Context, userId int64, timeWindow string, page int) (*model.MovieListRes, error)
	GetPopularMovies(ctx context.Context, userId int64, page int) (*model.MovieListRes, error)
	GetTopRatedMovies(ctx context.Context, userId int64, page int) (*model.MovieListRes, error)
	SearchMovies(ctx context.Context, userId int64, query string, page int) (*model.MovieListRes, error)
	GetRecommendations(ctx context.Context, userId int64, movieId int64, page int) (*model.MovieListRes, error)
	GetMovieDetail(ctx context.Context, userId int64, movieId int64) (*model.MovieDetailRes, error)
	GetMovieByTmdbId(ctx context.Context, userId int64, tmdbId int64) (*model.MovieDetailRes, error)
	GetMovies(ctx context.Context, userId int64, filter model.MovieFilter, page int, pageSize int) (*model.MovieListRes, error)
	UpdateMovie(ctx context.Context, userId int64, movieId int64, req *model.MovieUpdateReq) (*model.MovieDetailRes, error)
	DeleteMovie(ctx context.Context, movieId int64) error
	SerializeMovies(ctx context.Context, userId int64, movies []model.Movie) ([]model.MovieRes, error)
}

type MovieService struct {
	movieRepo    repository.IMovieRepository
	favoriteRepo repository.IFavoriteRepository
	ratingRepo   repository.IRatingRepository
	tmdbService  ITmdbService
}

const maxSearchQueryLength = 100

func NewMovieService(
	movieRepo repository.IMovieRepository,
	favoriteRepo repository.IFavoriteRepository,
	ratingRepo repository.IRatingRepository,
	tmdbService ITmdbService,
) *MovieService {
	return &MovieService{
		movieRepo:    movieRepo,
		favoriteRepo: favoriteRepo,
		ratingRepo:   ratingRepo,
		tmdbService:  tmdbService,
	}
}

//------------------------------------------
//------------------------------------------

func IsValidTimeWindow(timeWindow string) bool {
	return timeWindow == "day" || timeWindow == "week"
}

func (m *MovieService) GetTrendingMovies(ctx context.Context, userId int64, timeWindow string, page int) (*model.MovieListRes, error) {
	if !IsValidTimeWindow(timeWindow) {
		return nil, model.ErrInvalidTimeWindow
	}
	data, err := m.tmdbService.GetTrendingMovies(ctx, timeWindow, page)
	if err != nil {
		return nil, err
	}
	return m.syncCatalogPage(ctx, userId, data)
}

func (m *MovieService) GetPopularMovies(ctx context.Context, userId int64, page int) (*model.MovieListRes, error) {
	data, err := m.tmdbService.GetPopularMovies(ctx, page)
	if err != nil {
		return nil, err
	}
	return m.syncCatalogPage(ctx, userId, data)
}

func (m *MovieService) GetTopRatedMovies(ctx context.Context, userId int64, page int) (*model.MovieListRes, error) {
	data, err := m.tmdbService.GetTopRatedMovies(ctx, page)
	if err != nil {
		return nil, err
	}
	return m.syncCatalogPage(ctx, userId, data)
}

func (m *MovieService) SearchMovies(ctx context.Context, userId int64, query string, page int) (*model.MovieListRes, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, model.ErrEmptySearchQuery
	}
	if len(query) > maxSearchQueryLength {
		return nil, model.ErrLongSearchQuery
	}
	data, err := m.tmdbService.SearchMovies(ctx, query, page)
	if err != nil {
		return nil, err
	}
	return m.syncCatalogPage(ctx, userId, data)
}

func (m *MovieService) GetRecommendations(ctx context.Context, userId int64, movieId int64, page int) (*model.MovieListRes, error) {
	movie, err := m.movieRepo.GetMovieById(ctx, movieId)
	if err != nil {
		return nil, err
	}
	data, err := m.tmdbService.GetRecommendedMovies(ctx, movie.TmdbId, page)
	if err != nil {
		return nil, err
	}
	return m.syncCatalogPage(ctx, userId, data)
}

// syncCatalogPage upserts every catalog item and answers with the local rows
// plus the catalog's own pagination numbers.
func (m *MovieService) syncCatalogPage(ctx context.Context, userId int64, data *model.TmdbMovieList) (*model.MovieListRes, error) {
	upserted, err := m.movieRepo.UpsertCatalogMovies(ctx, data.Results)
	if err != nil {
		return nil, err
	}
	results, err := m.SerializeMovies(ctx, userId, upserted.Movies)
	if err != nil {
		return nil, err
	}

	page := data.Page
	if page == 0 {
		page = 1
	}
	totalPages := data.TotalPages
	if totalPages == 0 {
		totalPages = 1
	}
	return &model.MovieListRes{
		Count:      data.TotalResults,
		Page:       page,
		TotalPages: totalPages,
		Results:    results,
	}, nil
}

//------------------------------------------
//------------------------------------------

func (m *MovieService) GetMovieDetail(ctx context.Context, userId int64, movieId int64) (*model.MovieDetailRes, error) {
	movie, err := m.movieRepo.GetMovieById(ctx, movieId)
	if err != nil {
		return nil, err
	}
	return m.serializeMovieDetail(ctx, userId, movie)
}

func (m *MovieService) GetMovieByTmdbId(ctx context.Context, userId int64, tmdbId int64) (*model.MovieDetailRes, error) {
	details, err := m.tmdbService.GetMovieDetails(ctx, tmdbId)
	if err != nil {
		return nil, err
	}
	if details.Id == 0 {
		details.Id = tmdbId
	}
	upserted, err := m.movieRepo.UpsertCatalogMovies(ctx, []model.TmdbMovie{*details})
	if err != nil {
		return nil, err
	}
	if len(upserted.Movies) == 0 {
		return nil, model.ErrMovieNotFound
	}
	return m.serializeMovieDetail(ctx, userId, &upserted.Movies[0])
}

func (m *MovieService) serializeMovieDetail(ctx context.Context, userId int64, movie *model.Movie) (*model.MovieDetailRes, error) {
	serialized, err := m.SerializeMovies(ctx, userId, []model.Movie{*movie})
	if err != nil {
		return nil, err
	}
	avg, err := m.movieRepo.GetAverageRating(ctx, movie.Id)
	if err != nil {
		return nil, err
	}
	return &model.MovieDetailRes{
		MovieRes:      serialized[0],
		AverageRating: avg,
	}, nil
}

func (m *MovieService) GetMovies(ctx context.Context, userId int64, filter model.MovieFilter, page int, pageSize int) (*model.MovieListRes, error) {
	movies, count, err := m.movieRepo.GetMovies(ctx, filter, page, pageSize)
	if err != nil {
		return nil, err
	}
	results, err := m.SerializeMovies(ctx, userId, movies)
	if err != nil {
		return nil, err
	}
	return &model.MovieListRes{
		Count:      count,
		Page:       page,
		TotalPages: util.TotalPages(count, pageSize),
		Results:    results,
	}, nil
}

func (m *MovieService) UpdateMovie(ctx context.Context, userId int64, movieId int64, req *model.MovieUpdateReq) (*model.MovieDetailRes, error) {
	updates := map[string]interface{}{}
	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		updates["title"] = strings.TrimSpace(*req.Title)
		updates["slug"] = slug.Make(*req.Title)
	}
	if req.Overview != nil {
		updates["overview"] = *req.Overview
	}
	if req.ReleaseDate != nil {
		updates["releaseDate"] = model.ParseDate(*req.ReleaseDate)
	}
	if req.OriginalLanguage != nil {
		updates["originalLanguage"] = *req.OriginalLanguage
	}

	movie, err := m.movieRepo.UpdateMovie(ctx, movieId, updates)
	if err != nil {
		return nil, err
	}
	return m.serializeMovieDetail(ctx, userId, movie)
}

func (m *MovieService) DeleteMovie(ctx context.Context, movieId int64) error {
	return m.movieRepo.DeleteMovie(ctx, movieId)
}

//------------------------------------------
//------------------------------------------

// SerializeMovies attaches image urls and the viewer fields. userId 0 means
// an anonymous request.
func (m *MovieService) SerializeMovies(ctx context.Context, userId int64, movies []model.Movie) ([]model.MovieRes, error) {
	favorites := map[int64]bool{}
	ratings := map[int64]*model.MovieRating{}

	if userId != 0 && len(movies) > 0 {
		movieIds := make([]int64, len(movies))
		for i := range movies {
			movieIds[i] = movies[i].Id
		}
		var err error
		favorites, err = m.favoriteRepo.GetFavoritedMovieIds(ctx, userId, movieIds)
		if err != nil {
			return nil, err
		}
		ratings, err = m.ratingRepo.GetUserRatingsForMovies(ctx, userId, movieIds)
		if err != nil {
			return nil, err
		}
	}

	result := make([]model.MovieRes, len(movies))
	for i := range movies {
		result[i] = model.NewMovieRes(&movies[i], model.ViewerState{
			IsFavorite: favorites[movies[i].Id],
			Rating:     ratings[movies[i].Id],
		})
	}
	return result, nil
}
