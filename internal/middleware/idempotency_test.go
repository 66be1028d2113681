package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestIdempotency(t *testing.T) {
	const userID = "7b0a3c1e-1f7e-4a55-9a4f-0f6c2b1d9e11"
	cacheKey := IdempotencyCacheKey("/api/leaves", userID, "key-1")
	lockKey := cacheKey + ":lock"

	setup := func() (*gin.Engine, redismock.ClientMock, *int) {
		db, mock := redismock.NewClientMock()
		calls := 0
		r := gin.New()
		r.POST("/api/leaves", func(c *gin.Context) {
			c.Set(ContextUserID, userID)
			c.Next()
		}, Idempotency(db), func(c *gin.Context) {
			calls++
			c.JSON(http.StatusCreated, gin.H{"ok": true})
		})
		return r, mock, &calls
	}

	post := func(r *gin.Engine, key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/leaves", nil)
		if key != "" {
			req.Header.Set(HeaderIdempotencyKey, key)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("without header passes through", func(t *testing.T) {
		r, mock, calls := setup()

		w := post(r, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first request stores response", func(t *testing.T) {
		r, mock, calls := setup()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, []byte(`{"status":201,"body":{"ok":true}}`), 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := post(r, "key-1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay returns cached response", func(t *testing.T) {
		r, mock, calls := setup()
		mock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":{"ok":true}}`)

		w := post(r, "key-1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.Equal(t, 0, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative concurrent duplicate", func(t *testing.T) {
		r, mock, calls := setup()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		w := post(r, "key-1")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
