package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/crease/config"
	_ "github.com/DhavalSuthar-24/crease/docs"
	"github.com/DhavalSuthar-24/crease/internal/auth"
	"github.com/DhavalSuthar-24/crease/internal/broadcast"
	"github.com/DhavalSuthar-24/crease/internal/match"
	"github.com/DhavalSuthar-24/crease/internal/middleware"
	"github.com/DhavalSuthar-24/crease/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newEngine(t *testing.T, env string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&user.User{}, &match.MatchRecord{}))

	cfg := &config.Config{}
	cfg.App.Env = env
	cfg.App.FrontendURL = "https://scores.example.com"
	cfg.JWT.AccessTokenSecret = "test-secret"

	repo := match.NewGormMatchRepository(db)
	hub := broadcast.NewHub()
	t.Cleanup(hub.Close)
	return SetupRoutes(Deps{
		Config:  cfg,
		Users:   auth.NewAuthRepository(db),
		Matches: repo,
		Scoring: match.NewScoringService(repo, hub),
		Hub:     hub,
		Limiter: middleware.NewRateLimiter(5, 10),
	})
}

func get(r http.Handler, path, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutesAreWired(t *testing.T) {
	r := newEngine(t, "test")

	health := get(r, "/health", "")
	require.Equal(t, http.StatusOK, health.Code)
	assert.JSONEq(t, `{"status":"ok","viewers":0}`, health.Body.String())

	assert.Equal(t, http.StatusOK, get(r, "/api/matches", "").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/api/matches/none", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/auth/me", "").Code)

	doc := get(r, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, doc.Code)
	assert.Contains(t, doc.Body.String(), "/matches/{id}/events")
}

func TestCORSOrigins(t *testing.T) {
	prod := newEngine(t, "production")
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })
	w := get(prod, "/health", "https://scores.example.com")
	assert.Equal(t, "https://scores.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusForbidden, get(prod, "/health", "https://evil.example.com").Code)

	dev := newEngine(t, "development")
	assert.Equal(t, "*", get(dev, "/health", "https://anywhere.example.com").Header().Get("Access-Control-Allow-Origin"))
}
