package repository

import (
	"context"

	"github.com/captainblair/movie-recommendation-api/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IFavoriteRepository interface {
	AddFavorite(ctx context.Context, userId int64, movieId int64) (bool, error)
	RemoveFavorite(ctx context.Context, userId int64, movieId int64) error
	GetUserFavorites(ctx context.Context, userId int64, page int, pageSize int) ([]model.UserFavoriteMovie, int64, error)
	GetFavoritedMovieIds(ctx context.Context, userId int64, movieIds []int64) (map[int64]bool, error)
}

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

//------------------------------------------
//------------------------------------------

// AddFavorite reports whether a new row was inserted. An existing pair is
// left untouched.
func (r *FavoriteRepository) AddFavorite(ctx context.Context, userId int64, movieId int64) (bool, error) {
	favorite := model.UserFavoriteMovie{
		UserId:  userId,
		MovieId: movieId,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "userId"}, {Name: "movieId"}},
			DoNothing: true,
		}).
		Create(&favorite)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *FavoriteRepository) RemoveFavorite(ctx context.Context, userId int64, movieId int64) error {
	res := r.db.WithContext(ctx).
		Where("\"userId\" = ? AND \"movieId\" = ?", userId, movieId).
		Delete(&model.UserFavoriteMovie{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrFavoriteNotFound
	}
	return nil
}

//------------------------------------------
//------------------------------------------

func (r *FavoriteRepository) GetUserFavorites(ctx context.Context, userId int64, page int, pageSize int) ([]model.UserFavoriteMovie, int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.UserFavoriteMovie{}).
		Where("\"userId\" = ?", userId).
		Count(&count).
		Error
	if err != nil {
		return nil, 0, err
	}

	favorites := []model.UserFavoriteMovie{}
	err = r.db.WithContext(ctx).
		Preload("Movie").
		Where("\"userId\" = ?", userId).
		Order("\"createdAt\" DESC").
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&favorites).
		Error
	if err != nil {
		return nil, 0, err
	}
	return favorites, count, nil
}

func (r *FavoriteRepository) GetFavoritedMovieIds(ctx context.Context, userId int64, movieIds []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(movieIds))
	if len(movieIds) == 0 {
		return result, nil
	}

	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&model.UserFavoriteMovie{}).
		Where("\"userId\" = ? AND \"movieId\" IN ?", userId, movieIds).
		Pluck("movieId", &ids).
		Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}
