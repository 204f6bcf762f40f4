package repository

import (
	"context"
	"errors"

	"github.com/captainblair/movie-recommendation-api/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IRatingRepository interface {
	UpsertRating(ctx context.Context, userId int64, movieId int64, rating int, review *string) (*model.MovieRating, bool, error)
	RemoveRating(ctx context.Context, userId int64, movieId int64) error
	GetUserRatings(ctx context.Context, userId int64, page int, pageSize int) ([]model.MovieRating, int64, error)
	GetUserRatingsForMovies(ctx context.Context, userId int64, movieIds []int64) (map[int64]*model.MovieRating, error)
}

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

//------------------------------------------
//------------------------------------------

// UpsertRating overwrites rating and review of an existing pair. The returned
// flag is true when the row did not exist before.
func (r *RatingRepository) UpsertRating(ctx context.Context, userId int64, movieId int64, rating int, review *string) (*model.MovieRating, bool, error) {
	var existingCount int64
	err := r.db.WithContext(ctx).
		Model(&model.MovieRating{}).
		Where("\"userId\" = ? AND \"movieId\" = ?", userId, movieId).
		Count(&existingCount).
		Error
	if err != nil {
		return nil, false, err
	}

	row := model.MovieRating{
		UserId:  userId,
		MovieId: movieId,
		Rating:  rating,
		Review:  review,
	}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "userId"}, {Name: "movieId"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "review", "updatedAt"}),
		}).
		Create(&row).
		Error
	if err != nil {
		return nil, false, err
	}

	saved, err := r.getRating(ctx, userId, movieId)
	if err != nil {
		return nil, false, err
	}
	return saved, existingCount == 0, nil
}

func (r *RatingRepository) getRating(ctx context.Context, userId int64, movieId int64) (*model.MovieRating, error) {
	var rating model.MovieRating
	err := r.db.WithContext(ctx).
		Preload("Movie").
		Where("\"userId\" = ? AND \"movieId\" = ?", userId, movieId).
		First(&rating).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) RemoveRating(ctx context.Context, userId int64, movieId int64) error {
	res := r.db.WithContext(ctx).
		Where("\"userId\" = ? AND \"movieId\" = ?", userId, movieId).
		Delete(&model.MovieRating{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrRatingNotFound
	}
	return nil
}

//------------------------------------------
//------------------------------------------

func (r *RatingRepository) GetUserRatings(ctx context.Context, userId int64, page int, pageSize int) ([]model.MovieRating, int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.MovieRating{}).
		Where("\"userId\" = ?", userId).
		Count(&count).
		Error
	if err != nil {
		return nil, 0, err
	}

	ratings := []model.MovieRating{}
	err = r.db.WithContext(ctx).
		Preload("Movie").
		Where("\"userId\" = ?", userId).
		Order("\"createdAt\" DESC").
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&ratings).
		Error
	if err != nil {
		return nil, 0, err
	}
	return ratings, count, nil
}

func (r *RatingRepository) GetUserRatingsForMovies(ctx context.Context, userId int64, movieIds []int64) (map[int64]*model.MovieRating, error) {
	result := make(map[int64]*model.MovieRating, len(movieIds))
	if len(movieIds) == 0 {
		return result, nil
	}

	var ratings []model.MovieRating
	err := r.db.WithContext(ctx).
		Where("\"userId\" = ? AND \"movieId\" IN ?", userId, movieIds).
		Find(&ratings).
		Error
	if err != nil {
		return nil, err
	}
	for i := range ratings {
		result[ratings[i].MovieId] = &ratings[i]
	}
	return result, nil
}
