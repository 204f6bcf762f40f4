package service

import (
	"context"

	"github.com/captainblair/movie-recommendation-api/internal/repository"
	"github.com/captainblair/movie-recommendation-api/model"
	"github.com/captainblair/movie-recommendation-api/util"
)

type IFavoriteService interface {
	AddFavorite(ctx context.Context, userId int64, movieId int64) (bool, error)
	RemoveFavorite(ctx context.Context, userId int64, movieId int64) error
	GetUserFavorites(ctx context.Context, userId int64, page int, pageSize int) (*model.FavoriteListRes, error)
}

type FavoriteService struct {
	favoriteRepo repository.IFavoriteRepository
	movieRepo    repository.IMovieRepository
	movieService IMovieService
}

func NewFavoriteService(
	favoriteRepo repository.IFavoriteRepository,
	movieRepo repository.IMovieRepository,
	movieService IMovieService,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		movieRepo:    movieRepo,
		movieService: movieService,
	}
}

//------------------------------------------
//------------------------------------------

// AddFavorite is idempotent. The flag is false when the pair already existed.
func (m *FavoriteService) AddFavorite(ctx context.Context, userId int64, movieId int64) (bool, error) {
	if _, err := m.movieRepo.GetMovieById(ctx, movieId); err != nil {
		return false, err
	}
	return m.favoriteRepo.AddFavorite(ctx, userId, movieId)
}

func (m *FavoriteService) RemoveFavorite(ctx context.Context, userId int64, movieId int64) error {
	if _, err := m.movieRepo.GetMovieById(ctx, movieId); err != nil {
		return err
	}
	return m.favoriteRepo.RemoveFavorite(ctx, userId, movieId)
}

func (m *FavoriteService) GetUserFavorites(ctx context.Context, userId int64, page int, pageSize int) (*model.FavoriteListRes, error) {
	favorites, count, err := m.favoriteRepo.GetUserFavorites(ctx, userId, page, pageSize)
	if err != nil {
		return nil, err
	}

	movies := make([]model.Movie, 0, len(favorites))
	for i := range favorites {
		if favorites[i].Movie != nil {
			movies = append(movies, *favorites[i].Movie)
		}
	}
	serialized, err := m.movieService.SerializeMovies(ctx, userId, movies)
	if err != nil {
		return nil, err
	}
	byId := make(map[int64]model.MovieRes, len(serialized))
	for _, s := range serialized {
		byId[s.Id] = s
	}

	results := make([]model.FavoriteRes, 0, len(favorites))
	for _, f := range favorites {
		results = append(results, model.FavoriteRes{
			Id:        f.Id,
			Movie:     byId[f.MovieId],
			CreatedAt: f.CreatedAt,
		})
	}

	return &model.FavoriteListRes{
		Count:      count,
		Page:       page,
		TotalPages: util.TotalPages(count, pageSize),
		Results:    results,
	}, nil
}
