package main

import (
	"log"
	"time"

	"github.com/captainblair/movie-recommendation-api/api"
	"github.com/captainblair/movie-recommendation-api/configs"
	"github.com/captainblair/movie-recommendation-api/db"
	"github.com/captainblair/movie-recommendation-api/db/redis"
	"github.com/captainblair/movie-recommendation-api/db/storage"
	"github.com/captainblair/movie-recommendation-api/internal/handler"
	"github.com/captainblair/movie-recommendation-api/internal/repository"
	"github.com/captainblair/movie-recommendation-api/internal/service"

	"github.com/getsentry/sentry-go"
)

// @title						Movie Recommendation API
// @version					1.0
// @description				Movie catalog proxy with favorites and ratings.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token.
// @Accept						json
// @Produce					json
func main() {
	configs.LoadEnvVariables()

	err := sentry.Init(sentry.ClientOptions{
		Dsn:     configs.GetConfigs().SentryDns,
		Release: configs.GetConfigs().SentryRelease,
		// Set TracesSampleRate to 1.0 to capture 100%
		// of transactions for performance monitoring.
		TracesSampleRate: 1,
		EnableTracing:    true,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	redisClient := redis.ConnectRedis()

	database, err := db.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize postgres database connection: %s", err)
	}
	defer database.Close()
	if err = database.Migrate(); err != nil {
		log.Fatalf("could not migrate database: %s", err)
	}

	cacheSvc := service.NewCacheService(redisClient)
	tmdbSvc := service.NewTmdbService(
		cacheSvc,
		configs.GetConfigs().TmdbApiKey,
		configs.GetConfigs().TmdbBaseUrl,
		time.Duration(configs.GetConfigs().CacheTTLSec)*time.Second,
	)
	storageSvc := service.NewStorageService(storage.ConnectStorage(), configs.GetConfigs().S3Bucket)

	movieRep := repository.NewMovieRepository(database.GetDB())
	favoriteRep := repository.NewFavoriteRepository(database.GetDB())
	ratingRep := repository.NewRatingRepository(database.GetDB())
	userRep := repository.NewUserRepository(database.GetDB())

	movieSvc := service.NewMovieService(movieRep, favoriteRep, ratingRep, tmdbSvc)
	movieHandler := handler.NewMovieHandler(movieSvc)

	favoriteSvc := service.NewFavoriteService(favoriteRep, movieRep, movieSvc)
	favoriteHandler := handler.NewFavoriteHandler(favoriteSvc)

	ratingSvc := service.NewRatingService(ratingRep, movieRep, movieSvc)
	ratingHandler := handler.NewRatingHandler(ratingSvc)

	userSvc := service.NewUserService(userRep, cacheSvc, storageSvc)
	userHandler := handler.NewUserHandler(userSvc)

	api.InitRouter(movieHandler, favoriteHandler, ratingHandler, userHandler, userSvc)
	if err = api.Start("0.0.0.0:" + configs.GetConfigs().Port); err != nil {
		log.Printf("server stopped: %s", err)
	}
}
