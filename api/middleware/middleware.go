package middleware

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	errorHandler "github.com/captainblair/movie-recommendation-api/pkg/error"
	"github.com/captainblair/movie-recommendation-api/pkg/response"
	"github.com/captainblair/movie-recommendation-api/util"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

const (
	notAuthenticated = "Authentication credentials were not provided."
	permissionDenied = "You do not have permission to perform this action."
)

// IActiveUserChecker reports whether a token's user can still act.
type IActiveUserChecker interface {
	IsActiveUser(ctx context.Context, userId int64) (bool, error)
}

var activeUserChecker IActiveUserChecker

// SetActiveUserChecker makes token verification also require an existing,
// active user. A nil checker trusts the token claims alone.
func SetActiveUserChecker(checker IActiveUserChecker) {
	activeUserChecker = checker
}

func AuthMiddleware(c *fiber.Ctx) error {
	accessToken, ok := bearerToken(c)
	if !ok {
		return response.ResponseError(c, notAuthenticated, fiber.StatusUnauthorized)
	}
	return verifyAndNext(c, accessToken)
}

// OptionalAuthMiddleware lets anonymous requests through. A token that is
// sent must still be valid.
func OptionalAuthMiddleware(c *fiber.Ctx) error {
	accessToken, ok := bearerToken(c)
	if !ok {
		return c.Next()
	}
	return verifyAndNext(c, accessToken)
}

// AdminMiddleware must run after AuthMiddleware.
func AdminMiddleware(c *fiber.Ctx) error {
	claims, ok := c.Locals("jwtUserData").(*util.MyJwtClaims)
	if !ok || claims == nil {
		return response.ResponseError(c, notAuthenticated, fiber.StatusUnauthorized)
	}
	if !claims.IsStaff {
		return response.ResponseError(c, permissionDenied, fiber.StatusForbidden)
	}
	return c.Next()
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization, ""))
	if header == "" {
		return "", false
	}
	strArr := strings.Fields(header)
	if len(strArr) == 2 && strings.EqualFold(strArr[0], "Bearer") {
		return strArr[1], true
	}
	// malformed header, let verification reject it
	return header, true
}

func verifyAndNext(c *fiber.Ctx, accessToken string) error {
	token, claims, err := util.VerifyToken(accessToken)
	if err != nil {
		return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
	}
	if token == nil || claims == nil {
		return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
	}
	if activeUserChecker != nil {
		active, err := activeUserChecker.IsActiveUser(c.UserContext(), claims.UserId)
		if err != nil {
			errorMessage := fmt.Sprintf("Error on resolving token user %d: %v", claims.UserId, err)
			errorHandler.SaveError(errorMessage, err)
			return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
		}
		if !active {
			return response.ResponseError(c, response.TokenUserNotFound, fiber.StatusUnauthorized)
		}
	}

	c.Locals("accessToken", accessToken)
	c.Locals("jwtUserData", claims)
	return c.Next()
}

//------------------------------------------
//------------------------------------------

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware keeps one token bucket per client ip. Buckets idle for
// longer than idleTimeout are dropped.
func RateLimitMiddleware(rps float64, burst int, idleTimeout time.Duration) fiber.Handler {
	var (
		mutex     sync.Mutex
		limiters  = map[string]*ipLimiter{}
		lastSweep = time.Now()
	)

	return func(c *fiber.Ctx) error {
		ip := c.IP()
		now := time.Now()

		mutex.Lock()
		if now.Sub(lastSweep) > idleTimeout {
			for k, v := range limiters {
				if now.Sub(v.lastSeen) > idleTimeout {
					delete(limiters, k)
				}
			}
			lastSweep = now
		}
		l, ok := limiters[ip]
		if !ok {
			l = &ipLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
			limiters[ip] = l
		}
		l.lastSeen = now
		allowed := l.limiter.Allow()
		mutex.Unlock()

		if !allowed {
			return response.ResponseError(c, response.TooManyRequests, fiber.StatusTooManyRequests)
		}
		return c.Next()
	}
}

var (
	LocalhostRegex = regexp.MustCompile(`(?i)^(https?://)?localhost(:\d{4})?$`)
)
