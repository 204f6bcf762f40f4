package model

import (
	"time"
)

type Movie struct {
	Id               int64      `gorm:"column:id;primaryKey;autoIncrement;" json:"id"`
	TmdbId           int64      `gorm:"column:tmdbId;not null;uniqueIndex:Movie_tmdbId_key;" json:"tmdb_id"`
	Title            string     `gorm:"column:title;type:varchar(255);not null;" json:"title"`
	Slug             string     `gorm:"column:slug;type:varchar(255);not null;default:'';" json:"slug"`
	Overview         *string    `gorm:"column:overview;type:text;" json:"overview"`
	ReleaseDate      *time.Time `gorm:"column:releaseDate;type:date;" json:"release_date"`
	PosterPath       *string    `gorm:"column:posterPath;type:varchar(255);" json:"poster_path"`
	BackdropPath     *string    `gorm:"column:backdropPath;type:varchar(255);" json:"backdrop_path"`
	Popularity       float64    `gorm:"column:popularity;not null;default:0;index:Movie_popularity_idx,sort:desc;" json:"popularity"`
	VoteAverage      float64    `gorm:"column:voteAverage;not null;default:0;index:Movie_voteAverage_idx,sort:desc;" json:"vote_average"`
	VoteCount        int64      `gorm:"column:voteCount;not null;default:0;" json:"vote_count"`
	OriginalLanguage *string    `gorm:"column:originalLanguage;type:varchar(10);" json:"original_language"`
	GenreIds         []int64    `gorm:"column:genreIds;type:text;serializer:json;" json:"genre_ids"`
	CreatedAt        time.Time  `gorm:"column:createdAt;autoCreateTime;" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"column:updatedAt;autoUpdateTime;" json:"updated_at"`
}

func (Movie) TableName() string {
	return "Movie"
}

//------------------------------------------
//------------------------------------------

const (
	ImageBaseUrl   = "https://image.tmdb.org/t/p/"
	PosterSize     = "w500"
	BackdropSize   = "w1280"
	posterPrefix   = ImageBaseUrl + PosterSize
	backdropPrefix = ImageBaseUrl + BackdropSize
)

func PosterUrl(path *string) *string {
	return imageUrl(posterPrefix, path)
}

func BackdropUrl(path *string) *string {
	return imageUrl(backdropPrefix, path)
}

func imageUrl(prefix string, path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	url := prefix + *path
	return &url
}

//------------------------------------------
//------------------------------------------

type MovieRes struct {
	Id               int64          `json:"id"`
	TmdbId           int64          `json:"tmdb_id"`
	Title            string         `json:"title"`
	Overview         *string        `json:"overview"`
	ReleaseDate      *string        `json:"release_date"`
	PosterPath       *string        `json:"poster_path"`
	PosterUrl        *string        `json:"poster_url"`
	BackdropPath     *string        `json:"backdrop_path"`
	BackdropUrl      *string        `json:"backdrop_url"`
	Popularity       float64        `json:"popularity"`
	VoteAverage      float64        `json:"vote_average"`
	VoteCount        int64          `json:"vote_count"`
	OriginalLanguage *string        `json:"original_language"`
	GenreIds         []int64        `json:"genre_ids"`
	IsFavorite       bool           `json:"is_favorite"`
	UserRating       *UserRatingRes `json:"user_rating"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type MovieDetailRes struct {
	MovieRes
	AverageRating *float64 `json:"average_rating"`
}

type UserRatingRes struct {
	Rating    int       `json:"rating"`
	Review    *string   `json:"review"`
	CreatedAt time.Time `json:"created_at"`
}

// ViewerState carries what the requesting user has done to a movie.
type ViewerState struct {
	IsFavorite bool
	Rating     *MovieRating
}

func NewMovieRes(movie *Movie, viewer ViewerState) MovieRes {
	genreIds := movie.GenreIds
	if genreIds == nil {
		genreIds = []int64{}
	}
	res := MovieRes{
		Id:               movie.Id,
		TmdbId:           movie.TmdbId,
		Title:            movie.Title,
		Overview:         movie.Overview,
		ReleaseDate:      FormatDate(movie.ReleaseDate),
		PosterPath:       movie.PosterPath,
		PosterUrl:        PosterUrl(movie.PosterPath),
		BackdropPath:     movie.BackdropPath,
		BackdropUrl:      BackdropUrl(movie.BackdropPath),
		Popularity:       movie.Popularity,
		VoteAverage:      movie.VoteAverage,
		VoteCount:        movie.VoteCount,
		OriginalLanguage: movie.OriginalLanguage,
		GenreIds:         genreIds,
		IsFavorite:       viewer.IsFavorite,
		CreatedAt:        movie.CreatedAt,
		UpdatedAt:        movie.UpdatedAt,
	}
	if viewer.Rating != nil {
		res.UserRating = &UserRatingRes{
			Rating:    viewer.Rating.Rating,
			Review:    viewer.Rating.Review,
			CreatedAt: viewer.Rating.CreatedAt,
		}
	}
	return res
}

//------------------------------------------
//------------------------------------------

// MovieListRes mirrors the pagination metadata reported by the catalog.
type MovieListRes struct {
	Count      int64      `json:"count"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	Results    []MovieRes `json:"results"`
}

type MovieFilter struct {
	Title         string
	ReleaseYear   int
	MinRating     *float64
	MaxRating     *float64
	MinPopularity *float64
}

type MovieUpdateReq struct {
	Title            *string `json:"title"`
	Overview         *string `json:"overview"`
	ReleaseDate      *string `json:"release_date"`
	OriginalLanguage *string `json:"original_language"`
}

//------------------------------------------
//------------------------------------------

const DateLayout = "2006-01-02"

func FormatDate(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
