package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopledger/internal/core/apperror"
	appctx "shopledger/internal/core/context"
	"shopledger/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type staticAuthenticator struct {
	token string
}

func (a staticAuthenticator) Authenticate(token string) (*appctx.OperatorContext, error) {
	if token != a.token {
		return nil, apperror.NewUnauthorized("invalid or expired token")
	}
	return &appctx.OperatorContext{Username: "cashier", SessionID: "s1"}, nil
}

type requestLog struct {
	method, path, status string
}

type recordingObserver struct {
	requests []requestLog
}

func (r *recordingObserver) ObserveRequest(method, path, status string, _ time.Duration) {
	r.requests = append(r.requests, requestLog{method, path, status})
}

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(Trace(), Logger(logger.Nop()), ErrorHandler(), Recovery())
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["code"].(string)
}

func TestRecovery_RendersInternalError(t *testing.T) {
	r := newEngine()
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apperror.CodeInternal, errorCode(t, rec))
	assert.NotContains(t, rec.Body.String(), "kaboom")
}

func TestErrorHandler(t *testing.T) {
	r := newEngine()
	r.GET("/invalid", func(c *gin.Context) {
		_ = c.Error(apperror.NewInvalidSale("sale must have at least one item"))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("disk on fire"))
	})

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/invalid", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, apperror.CodeInvalidSale, errorCode(t, rec))

	rec = serve(r, httptest.NewRequest(http.MethodGet, "/plain", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk on fire")
}

func TestAuth(t *testing.T) {
	r := newEngine()
	r.GET("/me", Auth(staticAuthenticator{token: "good"}), func(c *gin.Context) {
		c.String(http.StatusOK, appctx.GetUsername(c.Request.Context()))
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", status: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer bad", status: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer good", status: http.StatusOK},
		{name: "scheme is case-insensitive", header: "bearer good", status: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := serve(r, req)
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "cashier", rec.Body.String())
			}
		})
	}
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	obs := &recordingObserver{}
	r := gin.New()
	r.Use(Metrics(obs))
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	serve(r, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.Len(t, obs.requests, 2)
	assert.Equal(t, requestLog{"GET", "/items/:id", "204"}, obs.requests[0])
	assert.Equal(t, requestLog{"GET", "unmatched", "404"}, obs.requests[1])
}
