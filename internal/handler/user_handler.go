package handler

import (
	"github.com/captainblair/movie-recommendation-api/internal/service"
	"github.com/captainblair/movie-recommendation-api/model"
	"github.com/captainblair/movie-recommendation-api/pkg/response"
	"github.com/captainblair/movie-recommendation-api/util"

	"github.com/gofiber/fiber/v2"
)

type IUserHandler interface {
	Register(c *fiber.Ctx) error
	Login(c *fiber.Ctx) error
	RefreshToken(c *fiber.Ctx) error
	BlacklistToken(c *fiber.Ctx) error
	GetMe(c *fiber.Ctx) error
	UpdateProfile(c *fiber.Ctx) error
	DeleteMe(c *fiber.Ctx) error
	GetUsers(c *fiber.Ctx) error
	ProfilePictureUpload(c *fiber.Ctx) error
}

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

//------------------------------------------
//------------------------------------------

// Register godoc
//
//	@Summary		Register
//	@Description	Create a new account.
//	@Tags			User-Auth
//	@Param			user	body		model.RegisterReq	true	"register data"
//	@Success		201		{object}	model.RegisterRes
//	@Failure		400		{object}	response.ResponseErrorModel
//	@Router			/auth/users/ [post]
func (m *UserHandler) Register(c *fiber.Ctx) error {
	var req model.RegisterReq
	if err := parseBody(c, &req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	res, err := m.userService.Register(c.UserContext(), &req)
	if err != nil {
		return errorResponse(c, err, response.ServerError)
	}
	return response.ResponseCreated(c, res)
}

// Login godoc
//
//	@Summary		Obtain Token Pair
//	@Description	Exchange username and password for access and refresh tokens.
//	@Tags			User-Auth
//	@Param			user	body		model.LoginReq	true	"credentials"
//	@Success		200		{object}	model.TokenPairRes
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Router			/auth/token/ [post]
func (m *UserHandler) Login(c *fiber.Ctx) error {
	var req model.LoginReq
	if err := parseBody(c, &req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	res, err := m.userService.Login(c.UserContext(), &req)
	if err != nil {
		return errorResponse(c, err, response.ServerError)
	}
	return response.ResponseOKWithData(c, res)
}

// RefreshToken godoc
//
//	@Summary		Refresh Token
//	@Description	Issue a new access token from a refresh token that is not blacklisted.
//	@Tags			User-Auth
//	@Param			token	body		model.TokenRefreshReq	true	"refresh token"
//	@Success		200		{object}	model.AccessTokenRes
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Router			/auth/token/refresh/ [post]
func (m *UserHandler) RefreshToken(c *fiber.Ctx) error {
	var req model.TokenRefreshReq
	if err := parseBody(c, &req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	res, err := m.userService.RefreshToken(c.UserContext(), req.Refresh)
	if err != nil {
		return errorResponse(c, err, response.ServerError)
	}
	return response.ResponseOKWithData(c, res)
}

// BlacklistToken godoc
//
//	@Summary		Blacklist Token
//	@Description	Revoke a refresh token.
//	@Tags			User-Auth
//	@Param			token	body		model.TokenRefreshReq	true	"refresh token"
//	@Success		200		{object}	response.ResponseMessageModel
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Router			/auth/token/blacklist/ [post]
func (m *UserHandler) BlacklistToken(c *fiber.Ctx) error {
	var req model.TokenRefreshReq
	if err := parseBody(c, &req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	if err := m.userService.BlacklistToken(c.UserContext(), req.Refresh); err != nil {
		return errorResponse(c, err, response.ServerError)
	}
	return response.ResponseMessage(c, response.TokenBlacklisted, fiber.StatusOK)
}

//------------------------------------------
//------------------------------------------

// GetMe godoc
//
//	@Summary		Get Profile
//	@Tags			User
//	@Success		200		{object}	model.UserDetailRes
//	@Failure		401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/auth/users/me/ [get]
func (m *UserHandler) GetMe(c *fiber.Ctx) error {
	res, err := m.userService.GetProfile(c.UserContext(), getUserId(c))
	if err != nil {
		return errorResponse(c, err, response.ServerError)
	}
	return response.ResponseOKWithData(c, res)
}

// UpdateProfile godoc
//
//	@Summary		Update Profile
//	@Description	Only the sent fields are changed.
//	@Tags			User
//	@Param			user		body		model.UpdateProfileReq	true	"profile fields"
//	@Success		200			{object}	model.UpdateProfileRes
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/auth/users/update_profile/ [patch]
func (m *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req model.UpdateProfileReq
	if err := parseBody(c, &req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	res, err := m.userService.UpdateProfile(c.UserContext(), getUserId(c), &req)
	if err != nil {
		return errorResponse(c, err, response.ServerError)
	}
	return response.ResponseOKWithData(c, res)
}

// DeleteMe godoc
//
//	@Summary		Delete Account
//	@Description	Delete the current user with all favorites and ratings.
//	@Tags			User
//	@Success		204
//	@Failure		401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/auth/users/me/ [delete]
func (m *UserHandler) DeleteMe(c *fiber.Ctx) error {
	if err := m.userService.DeleteUser(c.UserContext(), getUserId(c)); err != nil {
		return errorResponse(c, err, response.ServerError)
	}
	return response.ResponseNoContent(c)
}

// GetUsers godoc
//
//	@Summary		List Users
//	@Description	Admin users only.
//	@Tags			User-Admin
//	@Param			page		query		int	false	"page"
//	@Param			page_size	query		int	false	"page size, max 100"
//	@Success		200			{object}	model.UserListRes
//	@Failure		401,403		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/auth/users/ [get]
func (m *UserHandler) GetUsers(c *fiber.Ctx) error {
	page, pageSize := util.GetPagination(c)
	res, err := m.userService.GetUsers(c.UserContext(), page, pageSize)
	if err != nil {
		return errorResponse(c, err, response.ServerError)
	}
	return response.ResponseOKWithData(c, res)
}

// ProfilePictureUpload godoc
//
//	@Summary		Profile Picture Upload
//	@Description	Returns a presigned url the client uploads the image to with PUT.
//	@Tags			User
//	@Param			file		body		model.ProfilePictureReq	false	"image content type"
//	@Success		200			{object}	model.ProfilePictureRes
//	@Failure		400,401,503	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/auth/users/profile_picture/ [post]
func (m *UserHandler) ProfilePictureUpload(c *fiber.Ctx) error {
	var req model.ProfilePictureReq
	if err := parseBody(c, &req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	res, err := m.userService.CreateProfilePictureUpload(c.UserContext(), getUserId(c), req.ContentType)
	if err != nil {
		return errorResponse(c, err, response.StorageUnavailable)
	}
	return response.ResponseOKWithData(c, res)
}
