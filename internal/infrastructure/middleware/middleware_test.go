package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/marcos-nsantos/geoloc/internal/infrastructure/config"
	"github.com/marcos-nsantos/geoloc/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/geoloc/internal/pkg/apperror"
	"github.com/marcos-nsantos/geoloc/internal/pkg/httputil"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(handlers...)
	return engine
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	engine := newEngine(middleware.RequestID())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.RequestIDKey))
	})

	t.Run("generates an id", func(t *testing.T) {
		w := serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("keeps the caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")

		w := serve(engine, req)

		assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})

	t.Run("replaces oversized ids", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, strings.Repeat("x", 200))

		w := serve(engine, req)

		assert.Len(t, w.Body.String(), 36)
	})
}

func TestCORS(t *testing.T) {
	engine := newEngine(middleware.CORS())
	engine.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("preflight", func(t *testing.T) {
		w := serve(engine, httptest.NewRequest(http.MethodOptions, "/", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("simple request", func(t *testing.T) {
		w := serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "GET")
	})
}

func TestRecovery(t *testing.T) {
	t.Run("answers with the error envelope", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)
		engine := newEngine(middleware.RequestID(), middleware.Recovery(zap.New(core)))
		engine.GET("/api/v1/rnd", func(c *gin.Context) {
			panic("boom")
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/rnd", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-42")
		w := serve(engine, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, apperror.CodeInternal, resp.Code)
		assert.Equal(t, "internal server error", resp.Error)
		assert.Equal(t, "req-42", resp.RequestID)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "panic recovered", entry.Message)
		assert.Equal(t, "/api/v1/rnd", entry.ContextMap()["route"])
		assert.Equal(t, "req-42", entry.ContextMap()["request_id"])
	})

	t.Run("keeps a response already written", func(t *testing.T) {
		engine := newEngine(middleware.Recovery(zap.NewNop()))
		engine.GET("/", func(c *gin.Context) {
			c.String(http.StatusOK, "partial")
			panic("late")
		})

		w := serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "partial", w.Body.String())
	})

	t.Run("re-raises aborted handlers", func(t *testing.T) {
		engine := newEngine(middleware.Recovery(zap.NewNop()))
		engine.GET("/", func(c *gin.Context) {
			panic(http.ErrAbortHandler)
		})

		assert.PanicsWithError(t, http.ErrAbortHandler.Error(), func() {
			serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name   string
		status int
		level  zapcore.Level
	}{
		{name: "success", status: http.StatusOK, level: zapcore.InfoLevel},
		{name: "client error", status: http.StatusBadRequest, level: zapcore.WarnLevel},
		{name: "server error", status: http.StatusBadGateway, level: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			engine := newEngine(middleware.RequestID(), middleware.Logger(zap.New(core)))
			engine.GET("/api/v1/dis", func(c *gin.Context) {
				c.Status(tt.status)
			})

			serve(engine, httptest.NewRequest(http.MethodGet, "/api/v1/dis?from=1,2", nil))

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			fields := entry.ContextMap()
			assert.Equal(t, "/api/v1/dis", fields["route"])
			assert.Equal(t, "from=1,2", fields["query"])
			assert.NotEmpty(t, fields["request_id"])
		})
	}
}

func TestLogger_QuietPaths(t *testing.T) {
	newLogged := func(level zapcore.Level, status int) (*gin.Engine, *observer.ObservedLogs) {
		core, logs := observer.New(level)
		engine := newEngine(middleware.Logger(zap.New(core)))
		engine.GET("/health", func(c *gin.Context) {
			c.JSON(status, gin.H{"status": "ok"})
		})
		return engine, logs
	}

	t.Run("healthy checks stay below info", func(t *testing.T) {
		engine, logs := newLogged(zapcore.InfoLevel, http.StatusOK)

		serve(engine, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, 0, logs.Len())
	})

	t.Run("logged at debug with the response size", func(t *testing.T) {
		engine, logs := newLogged(zapcore.DebugLevel, http.StatusOK)

		w := serve(engine, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.DebugLevel, entry.Level)
		assert.Equal(t, int64(w.Body.Len()), entry.ContextMap()["bytes"])
	})

	t.Run("failures still surface", func(t *testing.T) {
		engine, logs := newLogged(zapcore.InfoLevel, http.StatusServiceUnavailable)

		serve(engine, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
	})

	t.Run("unmatched paths keep the raw path", func(t *testing.T) {
		engine, logs := newLogged(zapcore.DebugLevel, http.StatusOK)

		serve(engine, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		require.Equal(t, 1, logs.Len())
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "unmatched", fields["route"])
		assert.Equal(t, "/nowhere", fields["path"])
		assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	})
}

func TestRateLimiter_FailsOpenWithoutRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	core, logs := observer.New(zapcore.WarnLevel)
	limiter := middleware.NewRateLimiter(client, config.RateLimitConfig{Enabled: true, RequestsPerMin: 1}, zap.New(core))

	engine := newEngine(limiter.Limit())
	engine.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for range 3 {
		w := serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
	assert.Equal(t, 3, logs.Len())
}

type recordedRequest struct {
	method string
	route  string
	status int
}

type recordingObserver struct {
	requests []recordedRequest
}

func (r *recordingObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	r.requests = append(r.requests, recordedRequest{method: method, route: route, status: status})
}

func TestMetrics(t *testing.T) {
	rec := &recordingObserver{}
	engine := newEngine(middleware.Metrics(rec))
	engine.GET("/api/v1/rnd", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	serve(engine, httptest.NewRequest(http.MethodGet, "/api/v1/rnd?radius=1", nil))
	serve(engine, httptest.NewRequest(http.MethodGet, "/nowhere/42", nil))

	assert.Equal(t, []recordedRequest{
		{method: http.MethodGet, route: "/api/v1/rnd", status: http.StatusOK},
		{method: http.MethodGet, route: "unmatched", status: http.StatusNotFound},
	}, rec.requests)
}
