package handler

import (
	"github.com/captainblair/movie-recommendation-api/internal/service"
	"github.com/captainblair/movie-recommendation-api/model"
	"github.com/captainblair/movie-recommendation-api/pkg/response"
	"github.com/captainblair/movie-recommendation-api/util"

	"github.com/gofiber/fiber/v2"
)

type IRatingHandler interface {
	RateMovie(c *fiber.Ctx) error
	RemoveRating(c *fiber.Ctx) error
	GetMyRatings(c *fiber.Ctx) error
}

type RatingHandler struct {
	ratingService service.IRatingService
}

func NewRatingHandler(ratingService service.IRatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

//------------------------------------------
//------------------------------------------

// RateMovie godoc
//
//	@Summary		Rate Movie
//	@Description	Create or overwrite the current user's rating. Returns 201 for a new rating and 200 for an update.
//	@Tags			Ratings
//	@Param			id			path		int					true	"local movie id"
//	@Param			rating		body		model.RateMovieReq	true	"rating 1-10 and optional review"
//	@Success		200,201		{object}	model.RatingRes
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/movies/{id}/rate/ [post]
func (m *RatingHandler) RateMovie(c *fiber.Ctx) error {
	movieId, ok := getIdParam(c, "id")
	if !ok {
		return response.ResponseError(c, response.MovieNotFound, fiber.StatusNotFound)
	}
	var req model.RateMovieReq
	if err := parseBody(c, &req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	if fields := req.Validate(); fields != nil {
		return response.ResponseError(c, fields, fiber.StatusBadRequest)
	}

	res, created, err := m.ratingService.RateMovie(c.UserContext(), getUserId(c), movieId, &req)
	if err != nil {
		return errorResponse(c, err, response.ServerError)
	}
	if created {
		return response.ResponseCreated(c, res)
	}
	return response.ResponseOKWithData(c, res)
}

// RemoveRating godoc
//
//	@Summary		Remove Rating
//	@Tags			Ratings
//	@Param			id			path	int	true	"local movie id"
//	@Success		204
//	@Failure		401,404		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/movies/{id}/remove_rating/ [delete]
func (m *RatingHandler) RemoveRating(c *fiber.Ctx) error {
	movieId, ok := getIdParam(c, "id")
	if !ok {
		return response.ResponseError(c, response.MovieNotFound, fiber.StatusNotFound)
	}
	if err := m.ratingService.RemoveRating(c.UserContext(), getUserId(c), movieId); err != nil {
		return errorResponse(c, err, response.ServerError)
	}
	return response.ResponseNoContent(c)
}

// GetMyRatings godoc
//
//	@Summary		My Ratings
//	@Description	Paginated ratings of the current user, newest first.
//	@Tags			Ratings
//	@Param			page		query		int	false	"page"
//	@Param			page_size	query		int	false	"page size, max 100"
//	@Success		200			{object}	model.RatingListRes
//	@Failure		401			{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/ratings/my_ratings/ [get]
func (m *RatingHandler) GetMyRatings(c *fiber.Ctx) error {
	page, pageSize := util.GetPagination(c)
	res, err := m.ratingService.GetUserRatings(c.UserContext(), getUserId(c), page, pageSize)
	if err != nil {
		return errorResponse(c, err, response.ServerError)
	}
	return response.ResponseOKWithData(c, res)
}
