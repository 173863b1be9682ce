package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/crease/config"
	"github.com/DhavalSuthar-24/crease/internal/user"
	"github.com/DhavalSuthar-24/crease/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRepo(t *testing.T) AuthRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&user.User{}))

	utils.HashCost = bcrypt.MinCost
	t.Cleanup(func() { utils.HashCost = 14 })
	return NewAuthRepository(db)
}

func newServer(t *testing.T, repo AuthRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.JWT.AccessTokenSecret = "test-secret"
	cfg.JWT.AccessTokenExpiryMinutes = 30
	r := gin.New()
	RegisterAuthRoutes(r.Group("/api"), repo, cfg)
	return r
}

func login(r http.Handler, username, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(LoginRequest{Username: username, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSeedAdmin(t *testing.T) {
	repo := newRepo(t)

	require.NoError(t, SeedAdmin(repo, "admin", ""))
	_, err := repo.GetUserByUsername("admin")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, SeedAdmin(repo, "admin", "first"))
	u, err := repo.GetUserByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Role)
	assert.True(t, utils.CheckPassword(u.Password, "first"))

	require.NoError(t, SeedAdmin(repo, "admin", "second"))
	again, err := repo.GetUserByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, u.ID, again.ID)
	assert.True(t, utils.CheckPassword(again.Password, "second"))
}

func TestLoginAndProfile(t *testing.T) {
	repo := newRepo(t)
	require.NoError(t, SeedAdmin(repo, "admin", "umpire"))
	r := newServer(t, repo)

	assert.Equal(t, http.StatusUnauthorized, login(r, "admin", "wrong").Code)
	assert.Equal(t, http.StatusUnauthorized, login(r, "nobody", "umpire").Code)
	assert.Equal(t, http.StatusBadRequest, login(r, "", "").Code)

	w := login(r, "admin", "umpire")
	require.Equal(t, http.StatusOK, w.Code)
	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 1800, resp.ExpiresIn)
	assert.Equal(t, "admin", resp.User.Username)
	assert.NotEmpty(t, resp.AccessToken)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	me := httptest.NewRecorder()
	r.ServeHTTP(me, req)
	require.Equal(t, http.StatusOK, me.Code)
	assert.Contains(t, me.Body.String(), `"username":"admin"`)
	assert.NotContains(t, me.Body.String(), "password")
}
