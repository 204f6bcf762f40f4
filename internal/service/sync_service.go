package service

import (
	"context"
	"fmt"

	"github.com/captainblair/movie-recommendation-api/internal/repository"
	"github.com/captainblair/movie-recommendation-api/model"
	errorHandler "github.com/captainblair/movie-recommendation-api/pkg/error"
)

type ISyncService interface {
	SyncTrending(ctx context.Context, timeWindow string, pages int) (*SyncResult, error)
}

type SyncService struct {
	movieRepo   repository.IMovieRepository
	tmdbService ITmdbService
}

func NewSyncService(movieRepo repository.IMovieRepository, tmdbService ITmdbService) *SyncService {
	return &SyncService{
		movieRepo:   movieRepo,
		tmdbService: tmdbService,
	}
}

type SyncResult struct {
	Pages       int
	Created     int
	Updated     int
	FailedPages []int
}

//------------------------------------------
//------------------------------------------

// SyncTrending upserts pages 1..pages of trending movies. A page that fails
// to fetch or store is recorded and skipped.
func (m *SyncService) SyncTrending(ctx context.Context, timeWindow string, pages int) (*SyncResult, error) {
	if !IsValidTimeWindow(timeWindow) {
		return nil, model.ErrInvalidTimeWindow
	}

	result := &SyncResult{Pages: pages, FailedPages: []int{}}
	for page := 1; page <= pages; page++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		data, err := m.tmdbService.GetTrendingMovies(ctx, timeWindow, page)
		if err != nil {
			result.FailedPages = append(result.FailedPages, page)
			continue
		}

		upserted, err := m.movieRepo.UpsertCatalogMovies(ctx, data.Results)
		if err != nil {
			errorMessage := fmt.Sprintf("Error on saving trending page %d: %v", page, err)
			errorHandler.SaveError(errorMessage, err)
			result.FailedPages = append(result.FailedPages, page)
			continue
		}
		result.Created += upserted.Created
		result.Updated += upserted.Updated
	}
	return result, nil
}
