package middleware

import (
	"errors"
	"strings"

	"github.com/Webdevrishabh/ELMS/internal/auth/token"
	autherrors "github.com/Webdevrishabh/ELMS/internal/auth/errors"
	"github.com/Webdevrishabh/ELMS/internal/shared/apperror"
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"
	"github.com/Webdevrishabh/ELMS/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenParser verifies a raw access token.
type TokenParser interface {
	Parse(tokenString string) (*token.Claims, error)
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Abort(c, err.HTTPStatus, err.Code, err.Message)
}

func AuthMiddleware(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenNotFound)
			return
		}

		claims, err := parser.Parse(tokenString)
		if err != nil {
			if errors.Is(err, token.ErrTokenExpired) {
				abortWith(c, autherrors.ErrTokenExpired)
				return
			}
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		actor, err := actorFromClaims(claims)
		if err != nil {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

func actorFromClaims(claims *token.Claims) (identity.Actor, error) {
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return identity.Actor{}, err
	}
	if !identity.ValidRole(claims.Role) {
		return identity.Actor{}, errors.New("unknown role")
	}

	actor := identity.Actor{ID: id, Email: claims.Email, Role: claims.Role}
	if claims.TeamID != "" {
		teamID, err := uuid.Parse(claims.TeamID)
		if err != nil {
			return identity.Actor{}, err
		}
		actor.TeamID = &teamID
	}
	return actor, nil
}
