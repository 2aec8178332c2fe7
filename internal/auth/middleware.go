package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/GanderM1/testforgenew/internal/apperror"
	"github.com/GanderM1/testforgenew/internal/dto"
	"github.com/GanderM1/testforgenew/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// UserLoader looks up the user named by a token.
type UserLoader interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
}

// Middleware authenticates the request from the Authorization bearer header or
// the token cookie and stores the caller's Identity in the gin context.
func Middleware(tokens *TokenManager, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			abort(c, http.StatusUnauthorized, "authorization required")
			return
		}
		claims, err := tokens.Parse(raw)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, ErrTokenExpired) {
				msg = "token expired"
			}
			abort(c, http.StatusUnauthorized, msg)
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			abort(c, http.StatusUnauthorized, "invalid token")
			return
		}
		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				abort(c, http.StatusUnauthorized, "user not found or deactivated")
				return
			}
			log.Error().Err(err).Uint("userID", userID).Msg("auth: failed to load user")
			abort(c, http.StatusInternalServerError, "authentication failed")
			return
		}
		if !user.IsActive {
			abort(c, http.StatusUnauthorized, "user not found or deactivated")
			return
		}
		SetIdentity(c, IdentityFromUser(user))
		c.Next()
	}
}

// RequireRole lets the request through only for the listed roles.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "authorization required")
			return
		}
		for _, r := range roles {
			if id.Role == r {
				c.Next()
				return
			}
		}
		abort(c, http.StatusForbidden, "access denied")
	}
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Message: msg})
}
