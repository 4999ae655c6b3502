package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"prodiny/internal/db"
	"prodiny/internal/router"
	"prodiny/internal/services"
	"prodiny/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupServer builds a full router backed by a fresh in-memory
// database. One connection only, each sqlite :memory: connection would
// otherwise be its own database.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db.DB = gdb
	require.NoError(t, db.Migrate(gdb))
	db.SeedSubgroups(gdb)

	services.InitTokens("test-secret", 30)
	// inline scoring: the background worker must never reach into a
	// database another test already owns
	services.GetRankingService().SetSynchronous(true)
	utils.GetCache().Purge()

	r := gin.New()
	store := cookie.NewStore([]byte("test-session-secret"))
	r.Use(sessions.Sessions("prodiny_session", store))
	router.RegisterRoutes(r)
	return r
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// registerUser creates an account and returns its bearer token.
func registerUser(t *testing.T, r *gin.Engine, name, email string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/register", gin.H{
		"name":     name,
		"email":    email,
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

// registerCollegeUser registers a user and completes their profile with
// the given college.
func registerCollegeUser(t *testing.T, r *gin.Engine, name, college string) string {
	t.Helper()

	email := fmt.Sprintf("%s@%s.edu", name, college)
	token := registerUser(t, r, name, email)

	w := doJSON(t, r, http.MethodPost, "/profile-setup", gin.H{
		"full_name": name,
		"college":   college,
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return token
}
