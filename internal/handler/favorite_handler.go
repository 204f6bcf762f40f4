package handler

import (
	"github.com/captainblair/movie-recommendation-api/internal/service"
	"github.com/captainblair/movie-recommendation-api/pkg/response"
	"github.com/captainblair/movie-recommendation-api/util"

	"github.com/gofiber/fiber/v2"
)

type IFavoriteHandler interface {
	AddToFavorites(c *fiber.Ctx) error
	RemoveFromFavorites(c *fiber.Ctx) error
	GetMyFavorites(c *fiber.Ctx) error
}

type FavoriteHandler struct {
	favoriteService service.IFavoriteService
}

func NewFavoriteHandler(favoriteService service.IFavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

//------------------------------------------
//------------------------------------------

// AddToFavorites godoc
//
//	@Summary		Add To Favorites
//	@Description	Adding an already favorited movie is a no-op and returns 200.
//	@Tags			Favorites
//	@Param			id			path		int	true	"local movie id"
//	@Success		200,201		{object}	response.ResponseMessageModel
//	@Failure		401,404		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/movies/{id}/add_to_favorites/ [post]
func (m *FavoriteHandler) AddToFavorites(c *fiber.Ctx) error {
	movieId, ok := getIdParam(c, "id")
	if !ok {
		return response.ResponseError(c, response.MovieNotFound, fiber.StatusNotFound)
	}
	created, err := m.favoriteService.AddFavorite(c.UserContext(), getUserId(c), movieId)
	if err != nil {
		return errorResponse(c, err, response.ServerError)
	}
	if created {
		return response.ResponseMessage(c, response.AddedToFavorites, fiber.StatusCreated)
	}
	return response.ResponseMessage(c, response.AlreadyInFavorites, fiber.StatusOK)
}

// RemoveFromFavorites godoc
//
//	@Summary		Remove From Favorites
//	@Tags			Favorites
//	@Param			id			path	int	true	"local movie id"
//	@Success		204
//	@Failure		401,404		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/movies/{id}/remove_from_favorites/ [delete]
func (m *FavoriteHandler) RemoveFromFavorites(c *fiber.Ctx) error {
	movieId, ok := getIdParam(c, "id")
	if !ok {
		return response.ResponseError(c, response.MovieNotFound, fiber.StatusNotFound)
	}
	if err := m.favoriteService.RemoveFavorite(c.UserContext(), getUserId(c), movieId); err != nil {
		return errorResponse(c, err, response.ServerError)
	}
	return response.ResponseNoContent(c)
}

// GetMyFavorites godoc
//
//	@Summary		My Favorites
//	@Description	Paginated favorites of the current user, newest first.
//	@Tags			Favorites
//	@Param			page		query		int	false	"page"
//	@Param			page_size	query		int	false	"page size, max 100"
//	@Success		200			{object}	model.FavoriteListRes
//	@Failure		401			{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/favorites/my_favorites/ [get]
func (m *FavoriteHandler) GetMyFavorites(c *fiber.Ctx) error {
	page, pageSize := util.GetPagination(c)
	res, err := m.favoriteService.GetUserFavorites(c.UserContext(), getUserId(c), page, pageSize)
	if err != nil {
		return errorResponse(c, err, response.ServerError)
	}
	return response.ResponseOKWithData(c, res)
}
