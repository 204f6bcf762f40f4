package api

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/captainblair/movie-recommendation-api/api/middleware"
	"github.com/captainblair/movie-recommendation-api/configs"
	_ "github.com/captainblair/movie-recommendation-api/docs"
	"github.com/captainblair/movie-recommendation-api/internal/handler"
	"github.com/captainblair/movie-recommendation-api/pkg/response"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/swagger"
)

var router *fiber.App

// requestTimeout stays above the catalog timeout so upstream failures are
// answered by the handler.
const requestTimeout = 15 * time.Second

func InitRouter(
	movieHandler *handler.MovieHandler,
	favoriteHandler *handler.FavoriteHandler,
	ratingHandler *handler.RatingHandler,
	userHandler *handler.UserHandler,
	activeUsers middleware.IActiveUserChecker,
) *fiber.App {
	middleware.SetActiveUserChecker(activeUsers)

	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if !strings.Contains(err.Error(), "/favicon.ico") && code >= 500 {
			fmt.Println(err.Error())
		}

		if code >= 500 {
			return response.ResponseError(c, response.ServerError, code)
		}
		return response.ResponseError(c, utils.StatusMessage(code), code)
	}

	router = fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: defaultErrorHandler,
	})

	router.Use(helmet.New())
	router.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return middleware.LocalhostRegex.MatchString(origin) ||
				slices.Index(configs.GetConfigs().CorsAllowedOrigins, origin) != -1
		},
		AllowCredentials: true,
	}))
	router.Use(timeoutMiddleware(requestTimeout))
	router.Use(recover.New())
	router.Use(compress.New())

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	if rps := configs.GetConfigs().RateLimitRps; rps > 0 {
		router.Use(middleware.RateLimitMiddleware(rps, configs.GetConfigs().RateLimitBurst, 10*time.Minute))
	}

	authRoutes := router.Group("/auth")
	{
		authRoutes.Post("/users/", userHandler.Register)
		authRoutes.Get("/users/", middleware.AuthMiddleware, middleware.AdminMiddleware, userHandler.GetUsers)
		authRoutes.Get("/users/me/", middleware.AuthMiddleware, userHandler.GetMe)
		authRoutes.Delete("/users/me/", middleware.AuthMiddleware, userHandler.DeleteMe)
		authRoutes.Put("/users/update_profile/", middleware.AuthMiddleware, userHandler.UpdateProfile)
		authRoutes.Patch("/users/update_profile/", middleware.AuthMiddleware, userHandler.UpdateProfile)
		authRoutes.Post("/users/profile_picture/", middleware.AuthMiddleware, userHandler.ProfilePictureUpload)
		authRoutes.Post("/token/", userHandler.Login)
		authRoutes.Post("/token/refresh/", userHandler.RefreshToken)
		authRoutes.Post("/token/blacklist/", userHandler.BlacklistToken)
	}

	movieRoutes := router.Group("/movies")
	{
		// static segments go before /:id/
		movieRoutes.Get("/", middleware.OptionalAuthMiddleware, movieHandler.GetMovies)
		movieRoutes.Get("/trending/", middleware.OptionalAuthMiddleware, movieHandler.GetTrendingMovies)
		movieRoutes.Get("/popular/", middleware.OptionalAuthMiddleware, movieHandler.GetPopularMovies)
		movieRoutes.Get("/top_rated/", middleware.OptionalAuthMiddleware, movieHandler.GetTopRatedMovies)
		movieRoutes.Get("/search/", middleware.OptionalAuthMiddleware, movieHandler.SearchMovies)
		movieRoutes.Get("/tmdb/:tmdbId/", middleware.OptionalAuthMiddleware, movieHandler.GetMovieByTmdbId)

		movieRoutes.Get("/:id/", middleware.OptionalAuthMiddleware, movieHandler.GetMovieDetail)
		movieRoutes.Patch("/:id/", middleware.AuthMiddleware, middleware.AdminMiddleware, movieHandler.UpdateMovie)
		movieRoutes.Delete("/:id/", middleware.AuthMiddleware, middleware.AdminMiddleware, movieHandler.DeleteMovie)
		movieRoutes.Get("/:id/recommendations/", middleware.OptionalAuthMiddleware, movieHandler.GetRecommendations)

		movieRoutes.Post("/:id/add_to_favorites/", middleware.AuthMiddleware, favoriteHandler.AddToFavorites)
		movieRoutes.Delete("/:id/remove_from_favorites/", middleware.AuthMiddleware, favoriteHandler.RemoveFromFavorites)
		movieRoutes.Post("/:id/rate/", middleware.AuthMiddleware, ratingHandler.RateMovie)
		movieRoutes.Put("/:id/rate/", middleware.AuthMiddleware, ratingHandler.RateMovie)
		movieRoutes.Patch("/:id/rate/", middleware.AuthMiddleware, ratingHandler.RateMovie)
		movieRoutes.Delete("/:id/remove_rating/", middleware.AuthMiddleware, ratingHandler.RemoveRating)
	}

	router.Get("/favorites/my_favorites/", middleware.AuthMiddleware, favoriteHandler.GetMyFavorites)
	router.Get("/ratings/my_ratings/", middleware.AuthMiddleware, ratingHandler.GetMyRatings)

	router.Get("/", HealthCheck)
	router.Get("/metrics", monitor.New())

	router.Get("/swagger/*", swagger.HandlerDefault) // default

	return router
}

func Start(addr string) error {
	return router.Listen(addr)
}

func timeoutMiddleware(timeout time.Duration) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {

		// wrap the request context with a timeout
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		c.SetUserContext(ctx)

		defer func() {
			// answer 504 only when the handler ran out of time without responding
			if errors.Is(ctx.Err(), context.DeadlineExceeded) && len(c.Response().Body()) == 0 {
				_ = response.ResponseError(c, utils.StatusMessage(fiber.StatusGatewayTimeout), fiber.StatusGatewayTimeout)
			}

			//cancel to clear resources after finished
			cancel()
		}()

		return c.Next()
	}
}

// HealthCheck godoc
//
//	@Summary		Show the status of server.
//	@Description	get the status of server.
//	@Tags			System
//	@Success		200	{object}	map[string]interface{}
//	@Router			/ [get]
func HealthCheck(c *fiber.Ctx) error {
	res := map[string]interface{}{
		"data": "Server is up and running",
	}

	if err := c.JSON(res); err != nil {
		return err
	}

	return nil
}
