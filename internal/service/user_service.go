package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/captainblair/movie-recommendation-api/db"
	"github.com/captainblair/movie-recommendation-api/internal/repository"
	"github.com/captainblair/movie-recommendation-api/model"
	errorHandler "github.com/captainblair/movie-recommendation-api/pkg/error"
	"github.com/captainblair/movie-recommendation-api/pkg/response"
	"github.com/captainblair/movie-recommendation-api/util"
)

type IUserService interface {
	Register(ctx context.Context, req *model.RegisterReq) (*model.RegisterRes, error)
	Login(ctx context.Context, req *model.LoginReq) (*model.TokenPairRes, error)
	RefreshToken(ctx context.Context, refreshToken string) (*model.AccessTokenRes, error)
	BlacklistToken(ctx context.Context, refreshToken string) error
	GetProfile(ctx context.Context, userId int64) (*model.UserDetailRes, error)
	UpdateProfile(ctx context.Context, userId int64, req *model.UpdateProfileReq) (*model.UpdateProfileRes, error)
	DeleteUser(ctx context.Context, userId int64) error
	GetUsers(ctx context.Context, page int, pageSize int) (*model.UserListRes, error)
	CreateProfilePictureUpload(ctx context.Context, userId int64, contentType string) (*model.ProfilePictureRes, error)
	IsActiveUser(ctx context.Context, userId int64) (bool, error)
}

type UserService struct {
	userRepo       repository.IUserRepository
	cacheService   ICacheService
	storageService IStorageService
}

func NewUserService(userRepo repository.IUserRepository, cacheService ICacheService, storageService IStorageService) *UserService {
	return &UserService{
		userRepo:       userRepo,
		cacheService:   cacheService,
		storageService: storageService,
	}
}

//------------------------------------------
//------------------------------------------

func (m *UserService) Register(ctx context.Context, req *model.RegisterReq) (*model.RegisterRes, error) {
	fields := req.Validate()
	if fields == nil {
		fields = map[string][]string{}
	}

	if _, ok := fields["username"]; !ok {
		exist, err := m.userRepo.UsernameExists(ctx, req.Username)
		if err != nil {
			return nil, err
		}
		if exist {
			fields["username"] = []string{response.UsernameAlreadyExist}
		}
	}
	if _, ok := fields["email"]; !ok {
		exist, err := m.userRepo.EmailExists(ctx, req.Email, 0)
		if err != nil {
			return nil, err
		}
		if exist {
			fields["email"] = []string{response.EmailAlreadyExist}
		}
	}
	if len(fields) > 0 {
		return nil, &model.ValidationError{Fields: fields}
	}

	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := model.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		IsActive:  true,
	}
	if err = m.userRepo.CreateUser(ctx, &user); err != nil {
		if db.IsUniqueViolationError(err) {
			return nil, model.NewValidationError("username", response.UsernameAlreadyExist)
		}
		return nil, err
	}

	return &model.RegisterRes{
		Message: response.UserRegistered,
		User:    model.NewUserRes(&user, nil),
	}, nil
}

func (m *UserService) Login(ctx context.Context, req *model.LoginReq) (*model.TokenPairRes, error) {
	fields := map[string][]string{}
	if strings.TrimSpace(req.Username) == "" {
		fields["username"] = []string{"This field is required."}
	}
	if req.Password == "" {
		fields["password"] = []string{"This field is required."}
	}
	if len(fields) > 0 {
		return nil, &model.ValidationError{Fields: fields}
	}

	user, err := m.userRepo.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive || !util.CheckPassword(user.Password, req.Password) {
		return nil, model.ErrInvalidCredentials
	}

	tokens, err := util.CreateJwtToken(user)
	if err != nil {
		return nil, err
	}
	return &model.TokenPairRes{
		Access:  tokens.AccessToken,
		Refresh: tokens.RefreshToken,
	}, nil
}

func (m *UserService) RefreshToken(ctx context.Context, refreshToken string) (*model.AccessTokenRes, error) {
	claims, err := m.verifyRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := m.userRepo.GetUserById(ctx, claims.UserId)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidToken
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, model.ErrInvalidToken
	}

	accessToken, err := util.CreateAccessToken(user)
	if err != nil {
		return nil, err
	}
	return &model.AccessTokenRes{Access: accessToken}, nil
}

// BlacklistToken keeps the refresh token's id in the cache until it expires.
func (m *UserService) BlacklistToken(ctx context.Context, refreshToken string) error {
	claims, err := m.verifyRefreshToken(ctx, refreshToken)
	if err != nil {
		return err
	}

	ttl := time.Minute
	if claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			ttl = remaining
		}
	}
	return m.cacheService.SetJwtBlacklist(ctx, claims.ID, ttl)
}

func (m *UserService) verifyRefreshToken(ctx context.Context, refreshToken string) (*util.MyJwtClaims, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, model.NewValidationError("refresh", "This field is required.")
	}
	token, claims, err := util.VerifyRefreshToken(refreshToken)
	if err != nil || token == nil || claims == nil {
		return nil, model.ErrInvalidToken
	}

	blacklisted, err := m.cacheService.IsJwtBlacklisted(ctx, claims.ID)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on checking jwt blacklist: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, err
	}
	if blacklisted {
		return nil, model.ErrInvalidToken
	}
	return claims, nil
}

//------------------------------------------
//------------------------------------------

// IsActiveUser is false for deleted and deactivated accounts.
func (m *UserService) IsActiveUser(ctx context.Context, userId int64) (bool, error) {
	user, err := m.userRepo.GetUserById(ctx, userId)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsActive, nil
}

func (m *UserService) GetProfile(ctx context.Context, userId int64) (*model.UserDetailRes, error) {
	user, err := m.userRepo.GetUserById(ctx, userId)
	if err != nil {
		return nil, err
	}
	res := m.userDetail(ctx, user)
	return &res, nil
}

func (m *UserService) UpdateProfile(ctx context.Context, userId int64, req *model.UpdateProfileReq) (*model.UpdateProfileRes, error) {
	if fields := req.Validate(); fields != nil {
		return nil, &model.ValidationError{Fields: fields}
	}

	updates := map[string]interface{}{}
	if req.Email != nil {
		exist, err := m.userRepo.EmailExists(ctx, *req.Email, userId)
		if err != nil {
			return nil, err
		}
		if exist {
			return nil, model.NewValidationError("email", response.EmailAlreadyExist)
		}
		updates["email"] = *req.Email
	}
	if req.FirstName != nil {
		updates["firstName"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		updates["lastName"] = strings.TrimSpace(*req.LastName)
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}

	user, err := m.userRepo.UpdateUser(ctx, userId, updates)
	if err != nil {
		if db.IsUniqueViolationError(err) {
			return nil, model.NewValidationError("email", response.EmailAlreadyExist)
		}
		return nil, err
	}
	return &model.UpdateProfileRes{
		Message: response.ProfileUpdated,
		User:    m.userDetail(ctx, user),
	}, nil
}

func (m *UserService) DeleteUser(ctx context.Context, userId int64) error {
	user, err := m.userRepo.GetUserById(ctx, userId)
	if err != nil {
		return err
	}
	if err = m.userRepo.DeleteUser(ctx, userId); err != nil {
		return err
	}
	if user.ProfilePicture != nil && m.storageService.Enabled() {
		_ = m.storageService.DeleteObject(ctx, *user.ProfilePicture)
	}
	return nil
}

func (m *UserService) GetUsers(ctx context.Context, page int, pageSize int) (*model.UserListRes, error) {
	users, count, err := m.userRepo.GetUsers(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	results := make([]model.UserRes, len(users))
	for i := range users {
		results[i] = model.NewUserRes(&users[i], m.profilePictureUrl(ctx, &users[i]))
	}
	return &model.UserListRes{
		Count:      count,
		Page:       page,
		TotalPages: util.TotalPages(count, pageSize),
		Results:    results,
	}, nil
}

//------------------------------------------
//------------------------------------------

// CreateProfilePictureUpload stores a fresh object key on the user and
// returns a presigned url the client uploads the image to.
func (m *UserService) CreateProfilePictureUpload(ctx context.Context, userId int64, contentType string) (*model.ProfilePictureRes, error) {
	if !m.storageService.Enabled() {
		return nil, model.ErrStorageDisabled
	}
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return nil, model.NewValidationError("content_type", "Only image uploads are allowed.")
	}

	user, err := m.userRepo.GetUserById(ctx, userId)
	if err != nil {
		return nil, err
	}

	objectKey := ProfilePictureKey(userId, contentType)
	uploadUrl, err := m.storageService.PresignUpload(ctx, objectKey, contentType)
	if err != nil {
		return nil, err
	}
	if _, err = m.userRepo.UpdateUser(ctx, userId, map[string]interface{}{"profilePicture": objectKey}); err != nil {
		return nil, err
	}
	if user.ProfilePicture != nil && *user.ProfilePicture != "" {
		_ = m.storageService.DeleteObject(ctx, *user.ProfilePicture)
	}

	return &model.ProfilePictureRes{
		UploadUrl: uploadUrl,
		ObjectKey: objectKey,
		ExpiresIn: int64(presignExpiration.Seconds()),
	}, nil
}

func (m *UserService) userDetail(ctx context.Context, user *model.User) model.UserDetailRes {
	return model.UserDetailRes{
		UserRes:   model.NewUserRes(user, m.profilePictureUrl(ctx, user)),
		UpdatedAt: user.UpdatedAt,
	}
}

func (m *UserService) profilePictureUrl(ctx context.Context, user *model.User) *string {
	if user.ProfilePicture == nil || *user.ProfilePicture == "" {
		return nil
	}
	if !m.storageService.Enabled() {
		return user.ProfilePicture
	}
	url, err := m.storageService.PresignGet(ctx, *user.ProfilePicture)
	if err != nil {
		return nil
	}
	return &url
}
