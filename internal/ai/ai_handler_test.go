package ai_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Webdevrishabh/ELMS/internal/ai"
	aierrors "github.com/Webdevrishabh/ELMS/internal/ai/errors"
	aiMock "github.com/Webdevrishabh/ELMS/internal/ai/mock"
	"github.com/Webdevrishabh/ELMS/internal/middleware"
	"github.com/Webdevrishabh/ELMS/internal/shared/identity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupAIRouter(t *testing.T, actor identity.Actor) (*gin.Engine, *aiMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := aiMock.NewMockService(ctrl)
	h := ai.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetActor(c, actor)
		c.Next()
	})
	r.POST("/ai/chat", h.Chat)
	r.POST("/ai/autofill", h.Autofill)
	r.GET("/ai/recommend/:leaveId", h.Recommend)
	r.POST("/ai/conflicts", h.Conflicts)
	return r, svc
}

func TestAIHandler(t *testing.T) {
	actor := identity.Actor{ID: uuid.New(), Role: identity.RoleTeamLead}

	t.Run("chat", func(t *testing.T) {
		r, svc := setupAIRouter(t, actor)
		svc.EXPECT().Chat(gomock.Any(), actor, ai.ChatRequest{Message: "hello"}).
			Return(ai.ChatResponse{Success: true, Message: "hi there"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ai/chat", strings.NewReader(`{"message":"hello"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"message":"hi there"}`, w.Body.String())
	})

	t.Run("autofill fallback keeps null data", func(t *testing.T) {
		r, svc := setupAIRouter(t, actor)
		svc.EXPECT().Autofill(gomock.Any(), actor, ai.AutofillRequest{Input: "x"}).
			Return(ai.AutofillResponse{Success: false, Error: "Could not parse leave request. Please fill in the form manually."}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ai/autofill", strings.NewReader(`{"input":"x"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"Could not parse leave request. Please fill in the form manually.","data":null}`, w.Body.String())
	})

	t.Run("negative recommend unknown leave", func(t *testing.T) {
		r, svc := setupAIRouter(t, actor)
		id := uuid.New().String()
		svc.EXPECT().Recommend(gomock.Any(), actor, id).Return(ai.RecommendResponse{}, aierrors.ErrLeaveNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ai/recommend/"+id, nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("negative conflicts without body", func(t *testing.T) {
		r, svc := setupAIRouter(t, actor)
		svc.EXPECT().Conflicts(gomock.Any(), actor, ai.ConflictRequest{}).Return(ai.ConflictResponse{}, aierrors.ErrDatesRequired)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ai/conflicts", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Dates are required","code":"INVALID_INPUT"}`, w.Body.String())
	})

	t.Run("negative malformed json", func(t *testing.T) {
		r, _ := setupAIRouter(t, actor)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ai/chat", strings.NewReader(`{"message":`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
