package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Webdevrishabh/ELMS/internal/auth/token"
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubParser struct {
	claims *token.Claims
	err    error
}

func (s stubParser) Parse(string) (*token.Claims, error) {
	return s.claims, s.err
}

type stubEnforcer struct {
	allowed bool
	err     error
}

func (s stubEnforcer) Enforce(role, resource, action string) (bool, error) {
	return s.allowed, s.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	teamID := uuid.New()

	newRouter := func(p TokenParser) *gin.Engine {
		r := gin.New()
		r.GET("/me", AuthMiddleware(p), func(c *gin.Context) {
			actor, ok := CurrentActor(c)
			require.True(t, ok)
			c.JSON(http.StatusOK, gin.H{"id": actor.ID.String(), "role": actor.Role, "team": actor.TeamID.String()})
		})
		return r
	}

	t.Run("success bearer", func(t *testing.T) {
		r := newRouter(stubParser{claims: &token.Claims{
			UserID: userID.String(), Role: identity.RoleTeamLead, TeamID: teamID.String(),
		}})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
		assert.Contains(t, w.Body.String(), teamID.String())
	})

	t.Run("success cookie", func(t *testing.T) {
		r := newRouter(stubParser{claims: &token.Claims{
			UserID: userID.String(), Role: identity.RoleEmployee, TeamID: teamID.String(),
		}})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "abc"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative missing token", func(t *testing.T) {
		r := newRouter(stubParser{})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"No token provided","code":"UNAUTHORIZED"}`, w.Body.String())
	})

	t.Run("negative expired", func(t *testing.T) {
		r := newRouter(stubParser{err: token.ErrTokenExpired})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token expired")
	})

	t.Run("negative unknown role", func(t *testing.T) {
		r := newRouter(stubParser{claims: &token.Claims{UserID: userID.String(), Role: "root"}})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})
}

func TestRBACAuthorize(t *testing.T) {
	newRouter := func(e Enforcer, withActor bool) *gin.Engine {
		r := gin.New()
		r.GET("/x", func(c *gin.Context) {
			if withActor {
				SetActor(c, identity.Actor{ID: uuid.New(), Role: identity.RoleEmployee})
			}
			c.Next()
		}, RBACAuthorize(e, "leave", "decide"), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		return r
	}

	tests := []struct {
		name     string
		enforcer Enforcer
		actor    bool
		status   int
	}{
		{"allowed", stubEnforcer{allowed: true}, true, http.StatusNoContent},
		{"forbidden", stubEnforcer{allowed: false}, true, http.StatusForbidden},
		{"enforcer error", stubEnforcer{err: errors.New("boom")}, true, http.StatusInternalServerError},
		{"no actor", stubEnforcer{allowed: true}, false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newRouter(tt.enforcer, tt.actor).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRateLimitByIP(t *testing.T) {
	r := gin.New()
	r.POST("/login", RateLimitByIP(0, 2), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimitByUser(t *testing.T) {
	limit := RateLimitByUser(0, 1)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		if id := c.GetHeader("X-User"); id != "" {
			c.Set(ContextUserID, id)
		}
		c.Next()
	}, limit, func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		if user != "" {
			req.Header.Set("X-User", user)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("a"))
	assert.Equal(t, http.StatusTooManyRequests, do("a"))
	assert.Equal(t, http.StatusOK, do("b"))
	assert.Equal(t, http.StatusOK, do(""))
	assert.Equal(t, http.StatusOK, do(""))
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	t.Run("propagates header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(HeaderRequestID, "rid-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "rid-1", w.Header().Get(HeaderRequestID))
		assert.Equal(t, "rid-1", w.Body.String())
	})

	t.Run("generates when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		_, err := uuid.Parse(w.Header().Get(HeaderRequestID))
		assert.NoError(t, err)
	})
}
