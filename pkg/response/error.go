package response

const (
	ServerError = "Server error, try again later"
	//----------------------
	MovieNotFound    = "Movie not found"
	FavoriteNotFound = "Movie is not in favorites"
	RatingNotFound   = "No rating found for this movie"
	UserNotFound     = "User not found"
	//----------------------
	InvalidTimeWindow = "time_window must be 'day' or 'week'"
	EmptySearchQuery  = "Search query is required"
	LongSearchQuery   = "Search query cannot exceed 100 characters"
	InvalidMovieId    = "Invalid movie id"
	BadRequestBody    = "Incorrect request body"
	InvalidInteger    = "A valid integer is required."
	//----------------------
	FetchTrendingFailed        = "Failed to fetch trending movies"
	FetchPopularFailed         = "Failed to fetch popular movies"
	FetchTopRatedFailed        = "Failed to fetch top-rated movies"
	SearchFailed               = "Failed to search movies"
	FetchRecommendationsFailed = "Failed to fetch recommendations"
	FetchDetailsFailed         = "Failed to fetch movie details"
	StorageUnavailable         = "Profile picture storage is not configured"
	DatabaseUnavailable        = "Database is not accepting connections, try again later"
	//----------------------
	AddedToFavorites     = "Movie added to favorites"
	AlreadyInFavorites   = "Movie is already in favorites"
	RemovedFromFavorites = "Movie removed from favorites"
	RatingRemoved        = "Rating removed"
	UserRegistered       = "User registered successfully"
	ProfileUpdated       = "Profile updated successfully"
	TokenBlacklisted     = "Token blacklisted"
	//----------------------
	InvalidCredentials = "No active account found with the given credentials"
	InvalidToken       = "Token is invalid or expired"
	TokenUserNotFound  = "User not found or inactive"
	TooManyRequests    = "Too many requests"
	//----------------------
	UsernameAlreadyExist = "A user with that username already exists."
	EmailAlreadyExist    = "This email is already registered."
	//----------------------
)
