package repository

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/captainblair/movie-recommendation-api/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IMovieRepository interface {
	UpsertCatalogMovies(ctx context.Context, items []model.TmdbMovie) (*UpsertResult, error)
	GetMovieById(ctx context.Context, id int64) (*model.Movie, error)
	GetMovies(ctx context.Context, filter model.MovieFilter, page int, pageSize int) ([]model.Movie, int64, error)
	UpdateMovie(ctx context.Context, id int64, updates map[string]interface{}) (*model.Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
	GetAverageRating(ctx context.Context, movieId int64) (*float64, error)
}

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

//------------------------------------------
//------------------------------------------

type UpsertResult struct {
	// Movies follow the order of the catalog items.
	Movies  []model.Movie
	Created int
	Updated int
}

// refreshedColumns are the only fields a later catalog fetch may overwrite.
var refreshedColumns = []string{"popularity", "voteAverage", "voteCount", "updatedAt"}

func (r *MovieRepository) UpsertCatalogMovies(ctx context.Context, items []model.TmdbMovie) (*UpsertResult, error) {
	ids := make([]int64, 0, len(items))
	rows := make([]model.Movie, 0, len(items))
	seen := make(map[int64]struct{}, len(items))
	for i := range items {
		if items[i].Id == 0 {
			continue
		}
		if _, ok := seen[items[i].Id]; ok {
			continue
		}
		seen[items[i].Id] = struct{}{}
		ids = append(ids, items[i].Id)
		rows = append(rows, items[i].ToMovie())
	}

	result := &UpsertResult{Movies: []model.Movie{}}
	if len(rows) == 0 {
		return result, nil
	}

	var existing []int64
	err := r.db.WithContext(ctx).
		Model(&model.Movie{}).
		Where("\"tmdbId\" IN ?", ids).
		Pluck("tmdbId", &existing).
		Error
	if err != nil {
		return nil, err
	}
	result.Updated = len(existing)
	result.Created = len(rows) - len(existing)

	// the unique index settles concurrent creators of the same tmdbId
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tmdbId"}},
			DoUpdates: clause.AssignmentColumns(refreshedColumns),
		}).
		Create(&rows).
		Error
	if err != nil {
		return nil, err
	}

	var saved []model.Movie
	err = r.db.WithContext(ctx).
		Where("\"tmdbId\" IN ?", ids).
		Find(&saved).
		Error
	if err != nil {
		return nil, err
	}

	byTmdbId := make(map[int64]model.Movie, len(saved))
	for _, m := range saved {
		byTmdbId[m.TmdbId] = m
	}
	for _, id := range ids {
		if m, ok := byTmdbId[id]; ok {
			result.Movies = append(result.Movies, m)
		}
	}

	return result, nil
}

//------------------------------------------
//------------------------------------------

func (r *MovieRepository) GetMovieById(ctx context.Context, id int64) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&movie).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrMovieNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *MovieRepository) GetMovies(ctx context.Context, filter model.MovieFilter, page int, pageSize int) ([]model.Movie, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Movie{})
	if filter.Title != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Title)+"%")
	}
	if filter.ReleaseYear > 0 {
		start := time.Date(filter.ReleaseYear, time.January, 1, 0, 0, 0, 0, time.UTC)
		query = query.Where("\"releaseDate\" >= ? AND \"releaseDate\" < ?", start, start.AddDate(1, 0, 0))
	}
	if filter.MinRating != nil {
		query = query.Where("\"voteAverage\" >= ?", *filter.MinRating)
	}
	if filter.MaxRating != nil {
		query = query.Where("\"voteAverage\" <= ?", *filter.MaxRating)
	}
	if filter.MinPopularity != nil {
		query = query.Where("popularity >= ?", *filter.MinPopularity)
	}

	query = query.Session(&gorm.Session{})

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	movies := []model.Movie{}
	err := query.
		Order("popularity DESC").
		Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&movies).
		Error
	if err != nil {
		return nil, 0, err
	}
	return movies, count, nil
}

func (r *MovieRepository) UpdateMovie(ctx context.Context, id int64, updates map[string]interface{}) (*model.Movie, error) {
	movie, err := r.GetMovieById(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return movie, nil
	}

	err = r.db.WithContext(ctx).
		Model(movie).
		Updates(updates).
		Error
	if err != nil {
		return nil, err
	}
	return r.GetMovieById(ctx, id)
}

func (r *MovieRepository) DeleteMovie(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("\"movieId\" = ?", id).Delete(&model.UserFavoriteMovie{}).Error; err != nil {
			return err
		}
		if err := tx.Where("\"movieId\" = ?", id).Delete(&model.MovieRating{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Movie{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return model.ErrMovieNotFound
		}
		return nil
	})
}

//------------------------------------------
//------------------------------------------

// GetAverageRating returns nil when the movie has no ratings.
func (r *MovieRepository) GetAverageRating(ctx context.Context, movieId int64) (*float64, error) {
	var res struct {
		Avg   float64
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.MovieRating{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("\"movieId\" = ?", movieId).
		Scan(&res).
		Error
	if err != nil {
		return nil, err
	}
	if res.Count == 0 {
		return nil, nil
	}
	avg := math.Round(res.Avg*100) / 100
	return &avg, nil
}
