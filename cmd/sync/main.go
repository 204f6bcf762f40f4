// Command sync fetches pages of trending movies and stores them locally.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/captainblair/movie-recommendation-api/configs"
	"github.com/captainblair/movie-recommendation-api/db"
	"github.com/captainblair/movie-recommendation-api/db/redis"
	"github.com/captainblair/movie-recommendation-api/internal/repository"
	"github.com/captainblair/movie-recommendation-api/internal/service"

	"github.com/getsentry/sentry-go"
)

func main() {
	timeWindow := flag.String("time-window", "week", "time window for trending movies (day or week)")
	pages := flag.Int("pages", 1, "number of pages to fetch")
	flag.Parse()

	if !service.IsValidTimeWindow(*timeWindow) {
		fmt.Fprintf(os.Stderr, "invalid -time-window %q, must be day or week\n", *timeWindow)
		os.Exit(2)
	}
	if *pages < 1 {
		fmt.Fprintln(os.Stderr, "-pages must be at least 1")
		os.Exit(2)
	}

	configs.LoadEnvVariables()

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              configs.GetConfigs().SentryDns,
		Release:          configs.GetConfigs().SentryRelease,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Flush(2 * time.Second)

	database, err := db.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize postgres database connection: %s", err)
	}
	defer database.Close()
	if err = database.Migrate(); err != nil {
		log.Fatalf("could not migrate database: %s", err)
	}

	cacheSvc := service.NewCacheService(redis.ConnectRedis())
	tmdbSvc := service.NewTmdbService(
		cacheSvc,
		configs.GetConfigs().TmdbApiKey,
		configs.GetConfigs().TmdbBaseUrl,
		time.Duration(configs.GetConfigs().CacheTTLSec)*time.Second,
	)
	syncSvc := service.NewSyncService(repository.NewMovieRepository(database.GetDB()), tmdbSvc)

	fmt.Printf("Fetching trending movies for %s...\n", *timeWindow)
	result, err := syncSvc.SyncTrending(context.Background(), *timeWindow, *pages)
	if err != nil {
		database.Close()
		log.Fatalf("sync failed: %s", err)
	}
	for _, page := range result.FailedPages {
		fmt.Printf("Failed to fetch page %d\n", page)
	}
	fmt.Printf("Successfully fetched %d pages. Created: %d, Updated: %d\n", result.Pages, result.Created, result.Updated)
}
