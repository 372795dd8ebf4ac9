package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wasimadildev/begded-planner/internal/cache"
	"github.com/wasimadildev/begded-planner/internal/config"
	"github.com/wasimadildev/begded-planner/internal/events"
	"github.com/wasimadildev/begded-planner/internal/kvstore"
	"github.com/wasimadildev/begded-planner/internal/logger"
	"github.com/wasimadildev/begded-planner/internal/middleware"
	"github.com/wasimadildev/begded-planner/internal/services"
	"github.com/wasimadildev/begded-planner/internal/testutil"
	"github.com/wasimadildev/begded-planner/internal/validator"
)

// testApp holds the full application stack for flow tests.
type testApp struct {
	DB       *gorm.DB
	KV       kvstore.Store
	Sessions services.SessionServicer
	Router   *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp wires the real services over an isolated in-memory database.
func setupApp(t *testing.T, persistTransactions bool) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	return setupAppWithStore(t, db, kvstore.NewGormStore(db), persistTransactions)
}

func setupAppWithStore(t *testing.T, db *gorm.DB, kv kvstore.Store, persistTransactions bool) *testApp {
	t.Helper()

	auth, err := services.NewAuthService([]config.Credential{
		{Username: "alice", Password: "alice-pass", Role: "user"},
		{Username: "bob", Password: "bob-pass", Role: "admin"},
	}, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to create auth service: %v", err)
	}

	analytics := services.NewAnalyticsService(cache.NewLRU[services.Analytics](100, time.Minute))
	sessions := services.NewSessionService(kv, analytics, persistTransactions)

	router := NewRouter(Dependencies{
		Auth:      auth,
		Sessions:  sessions,
		Analytics: analytics,
		Audit:     services.NewAuditService(db, events.NopPublisher{}),
		Tokens:    middleware.NewTokenManager("flow-test-secret", time.Hour),
	})

	return &testApp{DB: db, KV: kv, Sessions: sessions, Router: router}
}

func (a *testApp) request(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) login(t *testing.T, username, password string) string {
	t.Helper()
	rec := a.request(t, http.MethodPost, "/api/v1/auth/login",
		`{"username":"`+username+`","password":"`+password+`"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	token, _ := parseJSON(t, rec)["token"].(string)
	return token
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}
