package service

import (
	"context"

	"github.com/captainblair/movie-recommendation-api/internal/repository"
	"github.com/captainblair/movie-recommendation-api/model"
	"github.com/captainblair/movie-recommendation-api/util"
)

type IRatingService interface {
	RateMovie(ctx context.Context, userId int64, movieId int64, req *model.RateMovieReq) (*model.RatingRes, bool, error)
	RemoveRating(ctx context.Context, userId int64, movieId int64) error
	GetUserRatings(ctx context.Context, userId int64, page int, pageSize int) (*model.RatingListRes, error)
}

type RatingService struct {
	ratingRepo   repository.IRatingRepository
	movieRepo    repository.IMovieRepository
	movieService IMovieService
}

func NewRatingService(
	ratingRepo repository.IRatingRepository,
	movieRepo repository.IMovieRepository,
	movieService IMovieService,
) *RatingService {
	return &RatingService{
		ratingRepo:   ratingRepo,
		movieRepo:    movieRepo,
		movieService: movieService,
	}
}

//------------------------------------------
//------------------------------------------

// RateMovie writes or overwrites the user's rating. The flag is true when a
// new rating was created.
func (m *RatingService) RateMovie(ctx context.Context, userId int64, movieId int64, req *model.RateMovieReq) (*model.RatingRes, bool, error) {
	if req.Rating == nil || *req.Rating < model.MinRating || *req.Rating > model.MaxRating {
		return nil, false, model.ErrInvalidRating
	}
	if _, err := m.movieRepo.GetMovieById(ctx, movieId); err != nil {
		return nil, false, err
	}

	rating, created, err := m.ratingRepo.UpsertRating(ctx, userId, movieId, *req.Rating, req.Review)
	if err != nil {
		return nil, false, err
	}
	res, err := m.serializeRatings(ctx, userId, []model.MovieRating{*rating})
	if err != nil {
		return nil, false, err
	}
	return &res[0], created, nil
}

func (m *RatingService) RemoveRating(ctx context.Context, userId int64, movieId int64) error {
	if _, err := m.movieRepo.GetMovieById(ctx, movieId); err != nil {
		return err
	}
	return m.ratingRepo.RemoveRating(ctx, userId, movieId)
}

func (m *RatingService) GetUserRatings(ctx context.Context, userId int64, page int, pageSize int) (*model.RatingListRes, error) {
	ratings, count, err := m.ratingRepo.GetUserRatings(ctx, userId, page, pageSize)
	if err != nil {
		return nil, err
	}
	results, err := m.serializeRatings(ctx, userId, ratings)
	if err != nil {
		return nil, err
	}
	return &model.RatingListRes{
		Count:      count,
		Page:       page,
		TotalPages: util.TotalPages(count, pageSize),
		Results:    results,
	}, nil
}

func (m *RatingService) serializeRatings(ctx context.Context, userId int64, ratings []model.MovieRating) ([]model.RatingRes, error) {
	movies := make([]model.Movie, 0, len(ratings))
	for i := range ratings {
		if ratings[i].Movie != nil {
			movies = append(movies, *ratings[i].Movie)
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

	results := make([]model.RatingRes, 0, len(ratings))
	for _, r := range ratings {
		results = append(results, model.RatingRes{
			Id:        r.Id,
			Movie:     byId[r.MovieId],
			Rating:    r.Rating,
			Review:    r.Review,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return results, nil
}
