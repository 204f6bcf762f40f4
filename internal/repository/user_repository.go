package repository

import (
	"context"
	"errors"

	"github.com/captainblair/movie-recommendation-api/model"

	"gorm.io/gorm"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserById(ctx context.Context, userId int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string, exceptUserId int64) (bool, error)
	UpdateUser(ctx context.Context, userId int64, updates map[string]interface{}) (*model.User, error)
	DeleteUser(ctx context.Context, userId int64) error
	GetUsers(ctx context.Context, page int, pageSize int) ([]model.User, int64, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) GetUserById(ctx context.Context, userId int64) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("id = ?", userId).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("username = ?", username).
		Count(&count).
		Error
	return count > 0, err
}

func (r *UserRepository) EmailExists(ctx context.Context, email string, exceptUserId int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("LOWER(email) = LOWER(?) AND id <> ?", email, exceptUserId).
		Count(&count).
		Error
	return count > 0, err
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) UpdateUser(ctx context.Context, userId int64, updates map[string]interface{}) (*model.User, error) {
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).
			Model(&model.User{}).
			Where("id = ?", userId).
			Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, model.ErrUserNotFound
		}
	}
	return r.GetUserById(ctx, userId)
}

// DeleteUser removes the user together with every favorite and rating it owns.
func (r *UserRepository) DeleteUser(ctx context.Context, userId int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("\"userId\" = ?", userId).Delete(&model.UserFavoriteMovie{}).Error; err != nil {
			return err
		}
		if err := tx.Where("\"userId\" = ?", userId).Delete(&model.MovieRating{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", userId).Delete(&model.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return model.ErrUserNotFound
		}
		return nil
	})
}

func (r *UserRepository) GetUsers(ctx context.Context, page int, pageSize int) ([]model.User, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	users := []model.User{}
	err := r.db.WithContext(ctx).
		Order("\"createdAt\" DESC").
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&users).
		Error
	if err != nil {
		return nil, 0, err
	}
	return users, count, nil
}
