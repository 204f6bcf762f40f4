package model

import (
	"time"
)

const (
	MinRating = 1
	MaxRating = 10
)

type MovieRating struct {
	Id        int64     `gorm:"column:id;primaryKey;autoIncrement;"`
	UserId    int64     `gorm:"column:userId;not null;uniqueIndex:MovieRating_userId_movieId_key,priority:1;"`
	MovieId   int64     `gorm:"column:movieId;not null;uniqueIndex:MovieRating_userId_movieId_key,priority:2;index:MovieRating_movieId_rating_idx,priority:1;"`
	Rating    int       `gorm:"column:rating;not null;check:MovieRating_rating_check,rating >= 1 AND rating <= 10;index:MovieRating_movieId_rating_idx,priority:2,sort:desc;"`
	Review    *string   `gorm:"column:review;type:text;"`
	CreatedAt time.Time `gorm:"column:createdAt;autoCreateTime;"`
	UpdatedAt time.Time `gorm:"column:updatedAt;autoUpdateTime;"`

	User  *User  `gorm:"foreignKey:UserId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Movie *Movie `gorm:"foreignKey:MovieId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (MovieRating) TableName() string {
	return "MovieRating"
}

//------------------------------------------
//------------------------------------------

type RateMovieReq struct {
	Rating *int    `json:"rating"`
	Review *string `json:"review"`
}

func (r *RateMovieReq) Validate() map[string][]string {
	errs := map[string][]string{}
	if r.Rating == nil {
		errs["rating"] = []string{"This field is required."}
	} else if *r.Rating < MinRating || *r.Rating > MaxRating {
		errs["rating"] = []string{"Rating must be an integer between 1 and 10."}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type RatingRes struct {
	Id        int64     `json:"id"`
	Movie     MovieRes  `json:"movie"`
	Rating    int       `json:"rating"`
	Review    *string   `json:"review"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RatingListRes struct {
	Count      int64       `json:"count"`
	Page       int         `json:"page"`
	TotalPages int         `json:"total_pages"`
	Results    []RatingRes `json:"results"`
}
