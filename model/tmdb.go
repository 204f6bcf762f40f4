package model

import (
	"strings"

	"github.com/gosimple/slug"
)

// TmdbMovie is one item of a catalog result page or a details payload.
type TmdbMovie struct {
	Id               int64   `json:"id"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	PosterPath       *string `json:"poster_path"`
	BackdropPath     *string `json:"backdrop_path"`
	Popularity       float64 `json:"popularity"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int64   `json:"vote_count"`
	OriginalLanguage *string `json:"original_language"`
	GenreIds         []int64 `json:"genre_ids"`
	Genres           []struct {
		Id   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"genres,omitempty"`
}

type TmdbMovieList struct {
	Page         int         `json:"page"`
	Results      []TmdbMovie `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int64       `json:"total_results"`
}

//------------------------------------------
//------------------------------------------

// ToMovie builds the local record created on first sight of a catalog id.
func (t *TmdbMovie) ToMovie() Movie {
	genreIds := t.GenreIds
	if len(genreIds) == 0 && len(t.Genres) > 0 {
		genreIds = make([]int64, 0, len(t.Genres))
		for _, g := range t.Genres {
			genreIds = append(genreIds, g.Id)
		}
	}
	if genreIds == nil {
		genreIds = []int64{}
	}

	overview := t.Overview
	return Movie{
		TmdbId:           t.Id,
		Title:            t.Title,
		Slug:             slug.Make(strings.TrimSpace(t.Title)),
		Overview:         &overview,
		ReleaseDate:      ParseDate(t.ReleaseDate),
		PosterPath:       t.PosterPath,
		BackdropPath:     t.BackdropPath,
		Popularity:       t.Popularity,
		VoteAverage:      t.VoteAverage,
		VoteCount:        t.VoteCount,
		OriginalLanguage: t.OriginalLanguage,
		GenreIds:         genreIds,
	}
}
