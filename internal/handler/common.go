package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/captainblair/movie-recommendation-api/db"
	"github.com/captainblair/movie-recommendation-api/model"
	errorHandler "github.com/captainblair/movie-recommendation-api/pkg/error"
	"github.com/captainblair/movie-recommendation-api/pkg/response"
	"github.com/captainblair/movie-recommendation-api/util"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// getUserId returns 0 for anonymous requests.
func getUserId(c *fiber.Ctx) int64 {
	claims, ok := c.Locals("jwtUserData").(*util.MyJwtClaims)
	if !ok || claims == nil {
		return 0
	}
	return claims.UserId
}

func getIdParam(c *fiber.Ctx, key string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(key, ""), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func getCatalogPage(c *fiber.Ctx) int {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return page
}

// parseBody leaves dest untouched for an empty body.
func parseBody(c *fiber.Ctx, dest interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(dest)
}

// errorResponse maps a service error to its status code and body.
// unavailableMessage is used when the catalog or storage backend failed.
func errorResponse(c *fiber.Ctx, err error, unavailableMessage string) error {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		return response.ResponseError(c, validationErr.Fields, fiber.StatusBadRequest)
	}
	if errors.Is(err, model.ErrInvalidRating) {
		fields := map[string][]string{"rating": {"Rating must be an integer between 1 and 10."}}
		return response.ResponseError(c, fields, fiber.StatusBadRequest)
	}

	if db.IsConnectionNotAcceptingError(err) {
		errorHandler.SaveError(fmt.Sprintf("Database unavailable on %s %s: %v", c.Method(), c.Path(), err), err)
		return response.ResponseError(c, response.DatabaseUnavailable, fiber.StatusServiceUnavailable)
	}

	code := model.GetErrorCode(err)
	switch code {
	case fiber.StatusServiceUnavailable:
		if errors.Is(err, model.ErrStorageDisabled) {
			return response.ResponseError(c, response.StorageUnavailable, code)
		}
		return response.ResponseError(c, unavailableMessage, code)
	case fiber.StatusInternalServerError:
		errorMessage := fmt.Sprintf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
		errorHandler.SaveError(errorMessage, err)
		return response.ResponseError(c, response.ServerError, code)
	}
	return response.ResponseError(c, errorMessageOf(err), code)
}

func errorMessageOf(err error) string {
	switch {
	case errors.Is(err, model.ErrMovieNotFound):
		return response.MovieNotFound
	case errors.Is(err, model.ErrFavoriteNotFound):
		return response.FavoriteNotFound
	case errors.Is(err, model.ErrRatingNotFound):
		return response.RatingNotFound
	case errors.Is(err, model.ErrUserNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return response.UserNotFound
	case errors.Is(err, model.ErrInvalidTimeWindow):
		return response.InvalidTimeWindow
	case errors.Is(err, model.ErrEmptySearchQuery):
		return response.EmptySearchQuery
	case errors.Is(err, model.ErrLongSearchQuery):
		return response.LongSearchQuery
	case errors.Is(err, model.ErrInvalidCredentials):
		return response.InvalidCredentials
	case errors.Is(err, model.ErrInvalidToken):
		return response.InvalidToken
	case errors.Is(err, model.ErrUsernameExists):
		return response.UsernameAlreadyExist
	case errors.Is(err, model.ErrEmailExists):
		return response.EmailAlreadyExist
	}
	return err.Error()
}
