package util

import (
	"errors"
	"fmt"
	"time"

	"github.com/captainblair/movie-recommendation-api/configs"
	"github.com/captainblair/movie-recommendation-api/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	AccessTokenType  = "access"
	RefreshTokenType = "refresh"
)

type MyJwtClaims struct {
	UserId    int64  `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsStaff   bool   `json:"is_staff"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenDetail struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    int64
}

var errWrongTokenType = errors.New("wrong token type")

func CreateJwtToken(user *model.User) (*TokenDetail, error) {
	now := time.Now()
	accessExpire := now.Add(time.Duration(configs.GetConfigs().AccessTokenLifetimeMin) * time.Minute)
	refreshExpire := now.Add(time.Duration(configs.GetConfigs().RefreshTokenLifetimeHour) * time.Hour)

	accessToken, err := signToken(user, AccessTokenType, now, accessExpire, configs.GetConfigs().AccessTokenSecret)
	if err != nil {
		return nil, err
	}
	refreshToken, err := signToken(user, RefreshTokenType, now, refreshExpire, configs.GetConfigs().RefreshTokenSecret)
	if err != nil {
		return nil, err
	}

	return &TokenDetail{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    accessExpire.UnixMilli(),
	}, nil
}

func CreateAccessToken(user *model.User) (string, error) {
	now := time.Now()
	accessExpire := now.Add(time.Duration(configs.GetConfigs().AccessTokenLifetimeMin) * time.Minute)
	return signToken(user, AccessTokenType, now, accessExpire, configs.GetConfigs().AccessTokenSecret)
}

func signToken(user *model.User, tokenType string, issuedAt time.Time, expiresAt time.Time, secret string) (string, error) {
	claims := MyJwtClaims{
		UserId:    user.Id,
		Username:  user.Username,
		Email:     user.Email,
		IsStaff:   user.IsStaff,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprint(user.Id),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

//------------------------------------------
//------------------------------------------

func VerifyToken(tokenString string) (*jwt.Token, *MyJwtClaims, error) {
	return verify(tokenString, configs.GetConfigs().AccessTokenSecret, AccessTokenType)
}

func VerifyRefreshToken(tokenString string) (*jwt.Token, *MyJwtClaims, error) {
	return verify(tokenString, configs.GetConfigs().RefreshTokenSecret, RefreshTokenType)
}

func verify(tokenString string, secret string, tokenType string) (*jwt.Token, *MyJwtClaims, error) {
	claims := MyJwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signature method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, nil, err
	}
	if claims.TokenType != tokenType {
		return nil, nil, errWrongTokenType
	}

	return token, &claims, nil
}
