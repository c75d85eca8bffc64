package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authdomain "expense-tracker-backend/internal/auth/domain"
	"expense-tracker-backend/internal/auth/token"
	"expense-tracker-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

// stubUserRepo serves a single fixed user.
type stubUserRepo struct {
	user *authdomain.User
}

func (r *stubUserRepo) Create(*authdomain.User) error { return nil }

func (r *stubUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	if r.user != nil && r.user.Email == email {
		return r.user, nil
	}
	return nil, nil
}

func (r *stubUserRepo) FindByID(id string) (*authdomain.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, nil
}

func newTestRouter(repo *stubUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	tokens := token.NewService(testSecret, time.Hour)
	uc := usecase.NewAuthUsecase(repo, tokens)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(uc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString("userID")})
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	t.Parallel()

	r := newTestRouter(&stubUserRepo{})

	for _, header := range []string{"", "Bearer", "Basic abc123", "Bearertoken"} {
		rec := doRequest(t, r, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Not authorized, no token")
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	t.Parallel()

	user := &authdomain.User{ID: "u1", Email: "jane@example.com"}
	r := newTestRouter(&stubUserRepo{user: user})

	expired, err := token.NewService(testSecret, -time.Minute).Issue(user.ID)
	require.NoError(t, err)

	rec := doRequest(t, r, "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token expired, please login again")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	t.Parallel()

	user := &authdomain.User{ID: "u1", Email: "jane@example.com"}
	r := newTestRouter(&stubUserRepo{user: user})

	// Malformed token.
	rec := doRequest(t, r, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")

	// Well-formed token signed with a non-pinned algorithm.
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	hs384, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec = doRequest(t, r, "Bearer "+hs384)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestAuthMiddleware_UserNotFound(t *testing.T) {
	t.Parallel()

	// Valid token, but the subject no longer exists.
	r := newTestRouter(&stubUserRepo{})

	tok, err := token.NewService(testSecret, time.Hour).Issue("deleted-user")
	require.NoError(t, err)

	rec := doRequest(t, r, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not authorized, user not found")
}

func TestAuthMiddleware_Accepted(t *testing.T) {
	t.Parallel()

	user := &authdomain.User{ID: "u1", Email: "jane@example.com"}
	r := newTestRouter(&stubUserRepo{user: user})

	tok, err := token.NewService(testSecret, time.Hour).Issue(user.ID)
	require.NoError(t, err)

	rec := doRequest(t, r, "Bearer "+tok)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userID":"u1"`)
}
