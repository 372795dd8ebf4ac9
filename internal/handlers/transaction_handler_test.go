package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/wasimadildev/begded-planner/internal/errors"
	"github.com/wasimadildev/begded-planner/internal/models"
	"github.com/wasimadildev/begded-planner/internal/services"
	"github.com/wasimadildev/begded-planner/internal/testutil"
)

func newTestTransactionHandler(sessions services.SessionServicer, audit services.AuditServicer) *TransactionHandler {
	h := NewTransactionHandler(sessions, &mockAnalyticsService{}, audit)
	h.newID = testutil.SequentialIDs("tx")
	h.now = func() time.Time { return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC) }
	return h
}

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUser("alice"))
	auth.POST("/transactions", handler.CreateTransaction)
	auth.GET("/transactions", handler.GetTransactions)
	auth.GET("/transactions/analytics", handler.GetAnalytics)
	auth.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

func realTransactionSession() *mockSessionService {
	return &mockSessionService{session: &services.Session{
		Transactions: services.NewTransactionService(nil),
		Goals:        &mockSavingsGoalService{},
	}}
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupTransactionRouter(newTestTransactionHandler(realTransactionSession(), audit))

		rec := doRequest(r, "POST", "/transactions",
			`{"title":"Salary","amount":5000,"category":"Salary","type":"income","date":"2024-03-01"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["id"] != "tx-1" || tx["amount"] != "5000" || tx["date"] != "2024-03-01" {
			t.Errorf("unexpected transaction %v", tx)
		}
		if got := audit.actions(); len(got) != 1 || got[0] != "CREATE_TRANSACTION" {
			t.Errorf("expected CREATE_TRANSACTION audit, got %v", got)
		}
	})

	t.Run("date defaults to today", func(t *testing.T) {
		r := setupTransactionRouter(newTestTransactionHandler(realTransactionSession(), &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions",
			`{"title":"Lunch","amount":"12.50","category":"Food","type":"expense"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["date"] != "2024-03-15" {
			t.Errorf("expected date 2024-03-15, got %v", tx["date"])
		}
	})

	invalid := map[string]string{
		"missing title":  `{"amount":10,"category":"Food","type":"expense"}`,
		"zero amount":    `{"title":"x","amount":0,"category":"Food","type":"expense"}`,
		"negative":       `{"title":"x","amount":-3,"category":"Food","type":"expense"}`,
		"missing amount": `{"title":"x","category":"Food","type":"expense"}`,
		"bad type":       `{"title":"x","amount":1,"category":"Food","type":"transfer"}`,
		"bad date":       `{"title":"x","amount":1,"category":"Food","type":"expense","date":"tomorrow"}`,
		"bad json":       `{"title":`,
	}
	for name, body := range invalid {
		t.Run("returns 400 on "+name, func(t *testing.T) {
			audit := &mockAuditService{}
			sessions := realTransactionSession()
			r := setupTransactionRouter(newTestTransactionHandler(sessions, audit))

			rec := doRequest(r, "POST", "/transactions", body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
			if n := len(sessions.session.Transactions.List()); n != 0 {
				t.Errorf("expected no transactions, got %d", n)
			}
			if len(audit.actions()) != 0 {
				t.Error("expected no audit entry")
			}
		})
	}

	t.Run("returns 409 on duplicate", func(t *testing.T) {
		sessions := &mockSessionService{session: &services.Session{
			Transactions: &mockTransactionService{
				addFn: func(context.Context, models.Transaction) (*models.Transaction, error) {
					return nil, apperrors.ErrDuplicateTransaction
				},
			},
		}}
		r := setupTransactionRouter(newTestTransactionHandler(sessions, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions", `{"title":"x","amount":1,"category":"Food","type":"expense"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_TRANSACTION")
	})

	t.Run("write failure becomes warning", func(t *testing.T) {
		sessions := &mockSessionService{session: &services.Session{
			Transactions: &mockTransactionService{
				addFn: func(_ context.Context, tx models.Transaction) (*models.Transaction, error) {
					return &tx, apperrors.Wrap(apperrors.ErrPersistenceWrite, testutil.ErrStoreUnavailable)
				},
			},
		}}
		r := setupTransactionRouter(newTestTransactionHandler(sessions, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions", `{"title":"x","amount":1,"category":"Food","type":"expense"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["warning"] != apperrors.ErrPersistenceWrite.Message {
			t.Errorf("expected warning, got %v", result["warning"])
		}
	})

	t.Run("returns 401 without user", func(t *testing.T) {
		h := newTestTransactionHandler(realTransactionSession(), &mockAuditService{})
		r := gin.New()
		r.POST("/transactions", h.CreateTransaction)

		rec := doRequest(r, "POST", "/transactions", `{}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNAUTHORIZED")
	})
}

func TestTransactionHandler_GetTransactions(t *testing.T) {
	listed := []models.Transaction{
		{ID: "1", Title: "Coffee", Amount: mustDecimal("5"), Category: "Food", Type: models.TransactionTypeExpense, Date: "2024-01-02"},
		{ID: "2", Title: "Salary", Amount: mustDecimal("1000"), Category: "Salary", Type: models.TransactionTypeIncome, Date: "2024-01-01"},
		{ID: "3", Title: "Cinema", Amount: mustDecimal("20"), Category: "Entertainment", Type: models.TransactionTypeExpense, Date: "2024-01-03"},
	}
	sessions := &mockSessionService{session: &services.Session{
		Transactions: &mockTransactionService{listFn: func() []models.Transaction { return listed }},
	}}
	r := setupTransactionRouter(newTestTransactionHandler(sessions, &mockAuditService{}))

	dataIDs := func(t *testing.T, result map[string]interface{}) []string {
		t.Helper()
		data := result["data"].([]interface{})
		out := make([]string, len(data))
		for i, d := range data {
			out[i] = d.(map[string]interface{})["id"].(string)
		}
		return out
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"defaults to newest", "", []string{"3", "1", "2"}},
		{"highest", "?sort=highest", []string{"2", "3", "1"}},
		{"expense lowest", "?type=expense&sort=lowest", []string{"1", "3"}},
		{"search", "?search=cof", []string{"1"}},
		{"search category", "?search=SALARY", []string{"2"}},
		{"paged", "?sort=oldest&page=2&page_size=2", []string{"3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(r, "GET", "/transactions"+tt.query, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			got := dataIDs(t, parseJSON(t, rec))
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}

	for _, q := range []string{"?type=transfer", "?sort=random", "?page=-1", "?page_size=500"} {
		t.Run("returns 400 on "+q, func(t *testing.T) {
			rec := doRequest(r, "GET", "/transactions"+q, "")
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 204", func(t *testing.T) {
		var deleted string
		audit := &mockAuditService{}
		sessions := &mockSessionService{session: &services.Session{
			Transactions: &mockTransactionService{deleteFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			}},
		}}
		r := setupTransactionRouter(newTestTransactionHandler(sessions, audit))

		rec := doRequest(r, "DELETE", "/transactions/tx-9", "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
		if deleted != "tx-9" {
			t.Errorf("expected tx-9 deleted, got %q", deleted)
		}
		if got := audit.actions(); len(got) != 1 || got[0] != "DELETE_TRANSACTION" {
			t.Errorf("expected DELETE_TRANSACTION audit, got %v", got)
		}
	})

	t.Run("unknown id still 204", func(t *testing.T) {
		r := setupTransactionRouter(newTestTransactionHandler(realTransactionSession(), &mockAuditService{}))
		rec := doRequest(r, "DELETE", "/transactions/missing", "")
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("write failure returns 200 with warning", func(t *testing.T) {
		sessions := &mockSessionService{session: &services.Session{
			Transactions: &mockTransactionService{deleteFn: func(context.Context, string) error {
				return apperrors.Wrap(apperrors.ErrPersistenceWrite, testutil.ErrStoreUnavailable)
			}},
		}}
		r := setupTransactionRouter(newTestTransactionHandler(sessions, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/transactions/tx-1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseJSON(t, rec)["warning"] == nil {
			t.Error("expected warning")
		}
	})
}

func TestTransactionHandler_GetAnalytics(t *testing.T) {
	sessions := realTransactionSession()
	r := setupTransactionRouter(newTestTransactionHandler(sessions, &mockAuditService{}))

	for _, body := range []string{
		`{"title":"Pay","amount":100,"category":"Salary","type":"income"}`,
		`{"title":"Rent","amount":40,"category":"Bills","type":"expense"}`,
		`{"title":"Lunch","amount":10,"category":"Food","type":"expense"}`,
	} {
		if rec := doRequest(r, "POST", "/transactions", body); rec.Code != http.StatusCreated {
			t.Fatalf("seed failed: %d %s", rec.Code, rec.Body.String())
		}
	}

	// Filters on the list endpoint never affect analytics.
	rec := doRequest(r, "GET", "/transactions/analytics?type=income", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	a := parseJSON(t, rec)["analytics"].(map[string]interface{})
	if a["total_income"] != "100" || a["total_expense"] != "50" || a["balance"] != "50" {
		t.Errorf("unexpected analytics %v", a)
	}
	food := a["category_stats"].(map[string]interface{})["Food"].(map[string]interface{})
	if food["expense"] != "10" {
		t.Errorf("expected Food expense 10, got %v", food["expense"])
	}
}
