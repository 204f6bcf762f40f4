package handler

import (
	"strconv"
	"strings"

	"github.com/captainblair/movie-recommendation-api/internal/service"
	"github.com/captainblair/movie-recommendation-api/model"
	"github.com/captainblair/movie-recommendation-api/pkg/response"
	"github.com/captainblair/movie-recommendation-api/util"

	"github.com/gofiber/fiber/v2"
)

type IMovieHandler interface {
	GetTrendingMovies(c *fiber.Ctx) error
	GetPopularMovies(c *fiber.Ctx) error
	GetTopRatedMovies(c *fiber.Ctx) error
	SearchMovies(c *fiber.Ctx) error
	GetRecommendations(c *fiber.Ctx) error
	GetMovieDetail(c *fiber.Ctx) error
	GetMovieByTmdbId(c *fiber.Ctx) error
	GetMovies(c *fiber.Ctx) error
	UpdateMovie(c *fiber.Ctx) error
	DeleteMovie(c *fiber.Ctx) error
}

type MovieHandler struct {
	movieService service.IMovieService
}

func NewMovieHandler(movieService service.IMovieService) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

//------------------------------------------
//------------------------------------------

// GetTrendingMovies godoc
//
//	@Summary		Trending Movies
//	@Description	Fetch trending movies from the catalog and store them locally.
//	@Tags			Movies
//	@Param			time_window	query		string	false	"day or week, defaults to week"
//	@Param			page		query		int		false	"catalog page"
//	@Success		200			{object}	model.MovieListRes
//	@Failure		400,401,503	{object}	response.ResponseErrorModel
//	@Router			/movies/trending/ [get]
func (m *MovieHandler) GetTrendingMovies(c *fiber.Ctx) error {
	// an explicit empty time_window is rejected, only a missing one defaults
	timeWindow := c.Query("time_window")
	if !c.Context().QueryArgs().Has("time_window") {
		timeWindow = "week"
	}
	res, err := m.movieService.GetTrendingMovies(c.UserContext(), getUserId(c), timeWindow, getCatalogPage(c))
	if err != nil {
		return errorResponse(c, err, response.FetchTrendingFailed)
	}
	return response.ResponseOKWithData(c, res)
}

// GetPopularMovies godoc
//
//	@Summary		Popular Movies
//	@Description	Fetch popular movies from the catalog and store them locally.
//	@Tags			Movies
//	@Param			page		query		int	false	"catalog page"
//	@Success		200			{object}	model.MovieListRes
//	@Failure		401,503		{object}	response.ResponseErrorModel
//	@Router			/movies/popular/ [get]
func (m *MovieHandler) GetPopularMovies(c *fiber.Ctx) error {
	res, err := m.movieService.GetPopularMovies(c.UserContext(), getUserId(c), getCatalogPage(c))
	if err != nil {
		return errorResponse(c, err, response.FetchPopularFailed)
	}
	return response.ResponseOKWithData(c, res)
}

// GetTopRatedMovies godoc
//
//	@Summary		Top Rated Movies
//	@Description	Fetch top rated movies from the catalog and store them locally.
//	@Tags			Movies
//	@Param			page		query		int	false	"catalog page"
//	@Success		200			{object}	model.MovieListRes
//	@Failure		401,503		{object}	response.ResponseErrorModel
//	@Router			/movies/top_rated/ [get]
func (m *MovieHandler) GetTopRatedMovies(c *fiber.Ctx) error {
	res, err := m.movieService.GetTopRatedMovies(c.UserContext(), getUserId(c), getCatalogPage(c))
	if err != nil {
		return errorResponse(c, err, response.FetchTopRatedFailed)
	}
	return response.ResponseOKWithData(c, res)
}

// SearchMovies godoc
//
//	@Summary		Search Movies
//	@Description	Search the catalog by title.
//	@Tags			Movies
//	@Param			q			query		string	true	"search text"
//	@Param			page		query		int		false	"catalog page"
//	@Success		200			{object}	model.MovieListRes
//	@Failure		400,401,503	{object}	response.ResponseErrorModel
//	@Router			/movies/search/ [get]
func (m *MovieHandler) SearchMovies(c *fiber.Ctx) error {
	res, err := m.movieService.SearchMovies(c.UserContext(), getUserId(c), c.Query("q", ""), getCatalogPage(c))
	if err != nil {
		return errorResponse(c, err, response.SearchFailed)
	}
	return response.ResponseOKWithData(c, res)
}

// GetRecommendations godoc
//
//	@Summary		Recommendations
//	@Description	Fetch catalog recommendations for a stored movie.
//	@Tags			Movies
//	@Param			id			path		int	true	"local movie id"
//	@Param			page		query		int	false	"catalog page"
//	@Success		200			{object}	model.MovieListRes
//	@Failure		401,404,503	{object}	response.ResponseErrorModel
//	@Router			/movies/{id}/recommendations/ [get]
func (m *MovieHandler) GetRecommendations(c *fiber.Ctx) error {
	movieId, ok := getIdParam(c, "id")
	if !ok {
		return response.ResponseError(c, response.MovieNotFound, fiber.StatusNotFound)
	}
	res, err := m.movieService.GetRecommendations(c.UserContext(), getUserId(c), movieId, getCatalogPage(c))
	if err != nil {
		return errorResponse(c, err, response.FetchRecommendationsFailed)
	}
	return response.ResponseOKWithData(c, res)
}

//------------------------------------------
//------------------------------------------

// GetMovieDetail godoc
//
//	@Summary		Movie Detail
//	@Description	Stored movie with its average rating.
//	@Tags			Movies
//	@Param			id			path		int	true	"local movie id"
//	@Success		200			{object}	model.MovieDetailRes
//	@Failure		401,404		{object}	response.ResponseErrorModel
//	@Router			/movies/{id}/ [get]
func (m *MovieHandler) GetMovieDetail(c *fiber.Ctx) error {
	movieId, ok := getIdParam(c, "id")
	if !ok {
		return response.ResponseError(c, response.MovieNotFound, fiber.StatusNotFound)
	}
	res, err := m.movieService.GetMovieDetail(c.UserContext(), getUserId(c), movieId)
	if err != nil {
		return errorResponse(c, err, response.FetchDetailsFailed)
	}
	return response.ResponseOKWithData(c, res)
}

// GetMovieByTmdbId godoc
//
//	@Summary		Movie By Catalog Id
//	@Description	Fetch a movie from the catalog by its catalog id and store it locally.
//	@Tags			Movies
//	@Param			tmdbId		path		int	true	"catalog movie id"
//	@Success		200			{object}	model.MovieDetailRes
//	@Failure		401,404,503	{object}	response.ResponseErrorModel
//	@Router			/movies/tmdb/{tmdbId}/ [get]
func (m *MovieHandler) GetMovieByTmdbId(c *fiber.Ctx) error {
	tmdbId, ok := getIdParam(c, "tmdbId")
	if !ok {
		return response.ResponseError(c, response.MovieNotFound, fiber.StatusNotFound)
	}
	res, err := m.movieService.GetMovieByTmdbId(c.UserContext(), getUserId(c), tmdbId)
	if err != nil {
		return errorResponse(c, err, response.FetchDetailsFailed)
	}
	return response.ResponseOKWithData(c, res)
}

// GetMovies godoc
//
//	@Summary		Stored Movies
//	@Description	Paginated list of stored movies, most popular first.
//	@Tags			Movies
//	@Param			title			query		string	false	"title contains"
//	@Param			release_year	query		int		false	"release year"
//	@Param			min_rating		query		number	false	"minimum vote average"
//	@Param			max_rating		query		number	false	"maximum vote average"
//	@Param			min_popularity	query		number	false	"minimum popularity"
//	@Param			page			query		int		false	"page"
//	@Param			page_size		query		int		false	"page size, max 100"
//	@Success		200				{object}	model.MovieListRes
//	@Failure		400,401			{object}	response.ResponseErrorModel
//	@Router			/movies/ [get]
func (m *MovieHandler) GetMovies(c *fiber.Ctx) error {
	filter := model.MovieFilter{
		Title: strings.TrimSpace(c.Query("title", "")),
	}
	fields := map[string][]string{}
	if v := c.Query("release_year", ""); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			fields["release_year"] = []string{response.InvalidInteger}
		}
		filter.ReleaseYear = year
	}
	filter.MinRating = queryFloat(c, "min_rating", fields)
	filter.MaxRating = queryFloat(c, "max_rating", fields)
	filter.MinPopularity = queryFloat(c, "min_popularity", fields)
	if len(fields) > 0 {
		return response.ResponseError(c, fields, fiber.StatusBadRequest)
	}

	page, pageSize := util.GetPagination(c)
	res, err := m.movieService.GetMovies(c.UserContext(), getUserId(c), filter, page, pageSize)
	if err != nil {
		return errorResponse(c, err, response.ServerError)
	}
	return response.ResponseOKWithData(c, res)
}

func queryFloat(c *fiber.Ctx, key string, fields map[string][]string) *float64 {
	v := c.Query(key, "")
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		fields[key] = []string{"A valid number is required."}
		return nil
	}
	return &f
}

//------------------------------------------
//------------------------------------------

// UpdateMovie godoc
//
//	@Summary		Update Movie
//	@Description	Edit the static fields of a stored movie. Admin users only.
//	@Tags			Movies-Admin
//	@Param			id				path		int						true	"local movie id"
//	@Param			user			body		model.MovieUpdateReq	true	"fields to change"
//	@Success		200				{object}	model.MovieDetailRes
//	@Failure		400,401,403,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/movies/{id}/ [patch]
func (m *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	movieId, ok := getIdParam(c, "id")
	if !ok {
		return response.ResponseError(c, response.MovieNotFound, fiber.StatusNotFound)
	}
	var req model.MovieUpdateReq
	if err := parseBody(c, &req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	if req.ReleaseDate != nil && *req.ReleaseDate != "" && model.ParseDate(*req.ReleaseDate) == nil {
		fields := map[string][]string{"release_date": {"Date has wrong format. Use YYYY-MM-DD."}}
		return response.ResponseError(c, fields, fiber.StatusBadRequest)
	}

	res, err := m.movieService.UpdateMovie(c.UserContext(), getUserId(c), movieId, &req)
	if err != nil {
		return errorResponse(c, err, response.ServerError)
	}
	return response.ResponseOKWithData(c, res)
}

// DeleteMovie godoc
//
//	@Summary		Delete Movie
//	@Description	Delete a stored movie with its favorites and ratings. Admin users only.
//	@Tags			Movies-Admin
//	@Param			id				path	int	true	"local movie id"
//	@Success		204
//	@Failure		401,403,404		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/movies/{id}/ [delete]
func (m *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	movieId, ok := getIdParam(c, "id")
	if !ok {
		return response.ResponseError(c, response.MovieNotFound, fiber.StatusNotFound)
	}
	if err := m.movieService.DeleteMovie(c.UserContext(), movieId); err != nil {
		return errorResponse(c, err, response.ServerError)
	}
	return response.ResponseNoContent(c)
}
