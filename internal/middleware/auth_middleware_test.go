package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Baaaki/trainergo/internal/models"
	"github.com/Baaaki/trainergo/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTokenOptions = utils.TokenOptions{
	Secret:    "middleware-test-secret",
	Issuer:    "trainergo-test",
	Audience:  "trainergo-test-clients",
	ExpiresIn: time.Hour,
}

func signFor(t *testing.T, role models.RoleName, opts utils.TokenOptions) (string, uuid.UUID) {
	t.Helper()
	user := &models.User{ID: uuid.New(), Email: "mw@example.com", Role: models.Role{Name: role}}
	token, err := utils.GenerateToken(user, opts)
	require.NoError(t, err)
	return token, user.ID
}

func newProtectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware(testTokenOptions)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(ContextUserID),
			"role":    c.MustGet(ContextRole),
		})
	})
	router.GET("/protected", handlers...)
	return router
}

func get(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	// Arrange
	router := newProtectedRouter()
	token, userID := signFor(t, models.RoleCoach, testTokenOptions)

	// Act
	w := get(router, "Bearer "+token)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), `"role":"Coach"`)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	router := newProtectedRouter()

	expiredOpts := testTokenOptions
	expiredOpts.ExpiresIn = -time.Minute
	expired, _ := signFor(t, models.RoleUser, expiredOpts)

	otherSecret := testTokenOptions
	otherSecret.Secret = "another-secret"
	forged, _ := signFor(t, models.RoleAdmin, otherSecret)

	valid, _ := signFor(t, models.RoleUser, testTokenOptions)

	testCases := []struct {
		name    string
		header  string
		message string
	}{
		{"missing_header", "", "Authorization header required"},
		{"no_bearer_prefix", valid, "Invalid authorization format"},
		{"empty_bearer", "Bearer ", "Invalid authorization format"},
		{"expired", "Bearer " + expired, "Token expired"},
		{"forged", "Bearer " + forged, "Invalid token"},
		{"garbage", "Bearer abc.def.ghi", "Invalid token"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := get(router, tc.header)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tc.message)
		})
	}
}

func TestRequireRoles(t *testing.T) {
	router := newProtectedRouter(RequireRoles(models.RoleCoach, models.RoleAdmin))

	testCases := []struct {
		role     models.RoleName
		expected int
	}{
		{models.RoleCoach, http.StatusOK},
		{models.RoleAdmin, http.StatusOK},
		{models.RoleUser, http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(string(tc.role), func(t *testing.T) {
			token, _ := signFor(t, tc.role, testTokenOptions)

			w := get(router, "Bearer "+token)

			assert.Equal(t, tc.expected, w.Code)
		})
	}
}

func TestRequireRoles_WithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AdminMiddleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := get(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
