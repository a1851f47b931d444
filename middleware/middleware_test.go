package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tastings-with-tay/models"
	"tastings-with-tay/policy"
	"tastings-with-tay/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuth struct {
	services.AuthService
	principals map[string]*policy.Principal
}

func (s stubAuth) Authenticate(token string) (*policy.Principal, error) {
	if p, ok := s.principals[token]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: invalid token", models.ErrUnauthorized)
}

type envelope struct {
	Code     int             `json:"code"`
	CodeType string          `json:"code_type"`
	Data     json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func gatedRouter() *gin.Engine {
	auth := stubAuth{principals: map[string]*policy.Principal{
		"member": {UserID: 2, Role: models.RoleUser},
		"admin":  {UserID: 1, Role: models.RoleAdmin},
	}}

	r := gin.New()
	r.Use(AuthMiddleware(auth))
	ok := func(c *gin.Context) {
		var id uint
		if p := CurrentPrincipal(c); p != nil {
			id = p.UserID
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	}
	r.GET("/public", Gate(policy.Recipes, policy.OpList), ok)
	r.POST("/favorite", Gate(policy.Favorites, policy.OpToggle), ok)
	r.POST("/admin", Gate(policy.Recipes, policy.OpCreate), ok)
	return r
}

func call(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGateTiers(t *testing.T) {
	r := gatedRouter()

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{"anonymous public", http.MethodGet, "/public", "", http.StatusOK},
		{"anonymous protected", http.MethodPost, "/favorite", "", http.StatusUnauthorized},
		{"member protected", http.MethodPost, "/favorite", "Bearer member", http.StatusOK},
		{"anonymous admin", http.MethodPost, "/admin", "", http.StatusUnauthorized},
		{"member admin", http.MethodPost, "/admin", "Bearer member", http.StatusForbidden},
		{"admin admin", http.MethodPost, "/admin", "Bearer admin", http.StatusOK},
		{"bad token on public route", http.MethodGet, "/public", "Bearer nope", http.StatusUnauthorized},
		{"missing bearer prefix", http.MethodGet, "/public", "member", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := call(r, tt.method, tt.path, tt.token)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestGateReportsCodeType(t *testing.T) {
	r := gatedRouter()

	env := decode(t, call(r, http.MethodPost, "/admin", "Bearer member"))
	assert.Equal(t, http.StatusForbidden, env.Code)
	assert.Equal(t, "forbidden", env.CodeType)

	env = decode(t, call(r, http.MethodPost, "/favorite", ""))
	assert.Equal(t, "unAuthorized", env.CodeType)
}

func TestCurrentPrincipalAnonymous(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, CurrentPrincipal(c))
}

func TestRateLimiterRejectsOverBurst(t *testing.T) {
	limiter := NewRateLimiter(0.001, 2)
	r := gin.New()
	r.POST("/subscribe", limiter.Limit(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusNoContent, call(r, http.MethodPost, "/subscribe", "").Code)
	assert.Equal(t, http.StatusNoContent, call(r, http.MethodPost, "/subscribe", "").Code)

	w := call(r, http.MethodPost, "/subscribe", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "tooManyRequests", decode(t, w).CodeType)
}

func TestRateLimiterEvictsIdleVisitors(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, 0)
	limiter.now = func() time.Time { return now }

	limiter.getLimiter("10.0.0.1")
	now = now.Add(5 * time.Minute)
	limiter.getLimiter("10.0.0.2")
	now = now.Add(6 * time.Minute)

	assert.Equal(t, 1, limiter.Evict(visitorIdleTTL))
	assert.Len(t, limiter.visitors, 1)
	assert.Contains(t, limiter.visitors, "10.0.0.2")
	assert.Equal(t, 1, limiter.burst)
}

func TestSanitizeInputStripsMarkup(t *testing.T) {
	r := gin.New()
	var got map[string]interface{}
	r.POST("/comment", SanitizeInput(), func(c *gin.Context) {
		require.NoError(t, c.ShouldBindJSON(&got))
		c.Status(http.StatusNoContent)
	})

	body := `{"content":"<script>alert(1)</script>Lovely <b>crust</b>","parent_id":4}`
	req := httptest.NewRequest(http.MethodPost, "/comment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "Lovely crust", got["content"])
	assert.EqualValues(t, 4, got["parent_id"])
}

func TestSanitizeInputKeepsPlainText(t *testing.T) {
	tests := []string{
		"Tom's bread & butter",
		"I <3 this",
		`5 > 3 "quoted"`,
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			r := gin.New()
			var got map[string]interface{}
			r.POST("/comment", SanitizeInput(), func(c *gin.Context) {
				require.NoError(t, c.ShouldBindJSON(&got))
				c.Status(http.StatusNoContent)
			})

			body, err := json.Marshal(map[string]string{"content": text})
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/comment", strings.NewReader(string(body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, text, got["content"])
		})
	}
}

func TestSanitizeInputRejectsMalformedJSON(t *testing.T) {
	r := gin.New()
	r.POST("/comment", SanitizeInput(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodPost, "/comment", strings.NewReader(`{"content":`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSanitizeInputSkipsReads(t *testing.T) {
	r := gin.New()
	var seen string
	r.GET("/comment", SanitizeInput(), func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		seen = string(b)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/comment", strings.NewReader("<b>raw</b>"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "<b>raw</b>", seen)
}
