package model

import "time"

type UserFavoriteMovie struct {
	Id        int64     `gorm:"column:id;primaryKey;autoIncrement;"`
	UserId    int64     `gorm:"column:userId;not null;uniqueIndex:UserFavoriteMovie_userId_movieId_key,priority:1;index:UserFavoriteMovie_userId_createdAt_idx,priority:1;"`
	MovieId   int64     `gorm:"column:movieId;not null;uniqueIndex:UserFavoriteMovie_userId_movieId_key,priority:2;"`
	CreatedAt time.Time `gorm:"column:createdAt;autoCreateTime;index:UserFavoriteMovie_userId_createdAt_idx,priority:2,sort:desc;"`

	User  *User  `gorm:"foreignKey:UserId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Movie *Movie `gorm:"foreignKey:MovieId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (UserFavoriteMovie) TableName() string {
	return "UserFavoriteMovie"
}

//------------------------------------------
//------------------------------------------

type FavoriteRes struct {
	Id        int64     `json:"id"`
	Movie     MovieRes  `json:"movie"`
	CreatedAt time.Time `json:"created_at"`
}

type FavoriteListRes struct {
	Count      int64         `json:"count"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Results    []FavoriteRes `json:"results"`
}
