package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/wasimadildev/begded-planner/internal/logger"
	"github.com/wasimadildev/begded-planner/internal/middleware"
	"github.com/wasimadildev/begded-planner/internal/models"
	"github.com/wasimadildev/begded-planner/internal/services"
	"github.com/wasimadildev/begded-planner/internal/validator"
)

// --- mock services ---

type mockTransactionService struct {
	addFn    func(ctx context.Context, tx models.Transaction) (*models.Transaction, error)
	deleteFn func(ctx context.Context, id string) error
	listFn   func() []models.Transaction
}

func (m *mockTransactionService) Load(context.Context) error { return nil }

func (m *mockTransactionService) Add(ctx context.Context, tx models.Transaction) (*models.Transaction, error) {
	if m.addFn != nil {
		return m.addFn(ctx, tx)
	}
	return &tx, nil
}

func (m *mockTransactionService) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockTransactionService) List() []models.Transaction {
	if m.listFn != nil {
		return m.listFn()
	}
	return nil
}

func (m *mockTransactionService) Snapshot() ([]models.Transaction, uint64) {
	return m.List(), 1
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

type mockSavingsGoalService struct {
	addFn        func(ctx context.Context, goal models.SavingsGoal) (*models.SavingsGoal, error)
	contributeFn func(ctx context.Context, id string, delta decimal.Decimal) (*models.SavingsGoal, error)
	deleteFn     func(ctx context.Context, id string) error
	listFn       func() []models.SavingsGoal
}

func (m *mockSavingsGoalService) Load(context.Context) error { return nil }
func (m *mockSavingsGoalService) Loaded() bool               { return true }

func (m *mockSavingsGoalService) Add(ctx context.Context, goal models.SavingsGoal) (*models.SavingsGoal, error) {
	if m.addFn != nil {
		return m.addFn(ctx, goal)
	}
	return &goal, nil
}

func (m *mockSavingsGoalService) Contribute(ctx context.Context, id string, delta decimal.Decimal) (*models.SavingsGoal, error) {
	if m.contributeFn != nil {
		return m.contributeFn(ctx, id, delta)
	}
	return nil, nil
}

func (m *mockSavingsGoalService) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockSavingsGoalService) List() []models.SavingsGoal {
	if m.listFn != nil {
		return m.listFn()
	}
	return nil
}

var _ services.SavingsGoalServicer = (*mockSavingsGoalService)(nil)

type mockSessionService struct {
	session *services.Session
	openFn  func(ctx context.Context, user models.User) (*services.Session, error)
	closed  []string
}

func (m *mockSessionService) Open(ctx context.Context, user models.User) (*services.Session, error) {
	if m.openFn != nil {
		return m.openFn(ctx, user)
	}
	if m.session == nil {
		m.session = &services.Session{
			Transactions: &mockTransactionService{},
			Goals:        &mockSavingsGoalService{},
		}
	}
	m.session.User = user
	return m.session, nil
}

func (m *mockSessionService) Get(string) (*services.Session, bool) {
	return m.session, m.session != nil
}

func (m *mockSessionService) Close(username string) {
	m.closed = append(m.closed, username)
}

var _ services.SessionServicer = (*mockSessionService)(nil)

type mockAnalyticsService struct {
	summaryFn func(username string, transactions services.TransactionServicer) services.Analytics
}

func (m *mockAnalyticsService) Summary(username string, transactions services.TransactionServicer) services.Analytics {
	if m.summaryFn != nil {
		return m.summaryFn(username, transactions)
	}
	txs, _ := transactions.Snapshot()
	return services.ComputeAnalytics(txs)
}

func (m *mockAnalyticsService) Invalidate(string) {}

var _ services.AnalyticsServicer = (*mockAnalyticsService)(nil)

type mockAuthService struct {
	authenticateFn func(username, password string) (*models.User, error)
}

func (m *mockAuthService) Authenticate(username, password string) (*models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(username, password)
	}
	return &models.User{Username: username, Role: models.RoleUser}, nil
}

var _ services.AuthServicer = (*mockAuthService)(nil)

type auditEntry struct {
	username, action, resourceType, resourceID string
}

type mockAuditService struct {
	mu      sync.Mutex
	entries []auditEntry
}

func (m *mockAuditService) Log(username, action, resourceType, resourceID, _ string, _ map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, auditEntry{username, action, resourceType, resourceID})
}

func (m *mockAuditService) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.action
	}
	return out
}

var _ services.AuditServicer = (*mockAuditService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

func injectUser(username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UsernameKey, username)
		c.Set(middleware.RoleKey, models.RoleUser)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
