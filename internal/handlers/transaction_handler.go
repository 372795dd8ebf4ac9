package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/wasimadildev/begded-planner/internal/errors"
	"github.com/wasimadildev/begded-planner/internal/models"
	"github.com/wasimadildev/begded-planner/internal/pagination"
	"github.com/wasimadildev/begded-planner/internal/services"
	"github.com/wasimadildev/begded-planner/internal/uuid"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	sessionService   services.SessionServicer
	analyticsService services.AnalyticsServicer
	auditService     services.AuditServicer
	newID            uuid.Generator
	now              func() time.Time
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(sessionService services.SessionServicer, analyticsService services.AnalyticsServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{
		sessionService:   sessionService,
		analyticsService: analyticsService,
		auditService:     auditService,
		newID:            uuid.New,
		now:              time.Now,
	}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Title    string                 `json:"title" binding:"required,max=200"`
	Amount   decimal.Decimal        `json:"amount" binding:"positive_decimal"`
	Category string                 `json:"category" binding:"required,max=100"`
	Type     models.TransactionType `json:"type" binding:"required,transaction_type"`
	Date     string                 `json:"date" binding:"omitempty,calendar_date"`
}

// ListTransactionsRequest holds the search, filter, sort and page parameters.
type ListTransactionsRequest struct {
	Search string            `form:"search" binding:"max=100"`
	Type   models.FilterType `form:"type" binding:"omitempty,filter_type"`
	Sort   models.SortType   `form:"sort" binding:"omitempty,sort_type"`
	pagination.PageRequest
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record an income or expense. The date defaults to today.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Duplicate transaction"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	session, err := currentSession(c, h.sessionService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date := req.Date
	if date == "" {
		date = models.FormatDate(h.now())
	}

	tx, err := session.Transactions.Add(c.Request.Context(), models.Transaction{
		ID:       h.newID(),
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Type:     req.Type,
		Date:     date,
	})
	warning, err := splitWarning(err)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(session.User.Username, "CREATE_TRANSACTION", "transaction", tx.ID, c.ClientIP(),
		map[string]interface{}{"type": tx.Type, "amount": tx.Amount.String(), "category": tx.Category})

	c.JSON(http.StatusCreated, withWarning(gin.H{"transaction": tx}, warning))
}

// GetTransactions lists the caller's transactions
// @Summary     List transactions
// @Description Search by title or category, filter by type, then sort. Results are paginated.
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       search    query string false "Case-insensitive text matched against title and category"
// @Param       type      query string false "all, income or expense"
// @Param       sort      query string false "newest, oldest, highest or lowest"
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Items per page"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	session, err := currentSession(c, h.sessionService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ListTransactionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	req.Defaults()

	result := services.QueryTransactions(session.Transactions.List(), services.TransactionQuery{
		Search: req.Search,
		Type:   req.Type,
		Sort:   req.Sort,
	})

	c.JSON(http.StatusOK, pagination.Paginate(result, req.PageRequest))
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete a transaction
// @Description Remove a transaction. Deleting an unknown id succeeds without changes.
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     204 "Transaction deleted"
// @Success     200 {object} map[string]string "Deleted, but the change could not be saved"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	session, err := currentSession(c, h.sessionService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id := c.Param("id")
	warning, err := splitWarning(session.Transactions.Delete(c.Request.Context(), id))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(session.User.Username, "DELETE_TRANSACTION", "transaction", id, c.ClientIP(), nil)

	if warning != "" {
		c.JSON(http.StatusOK, gin.H{"warning": warning})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetAnalytics returns totals over all of the caller's transactions
// @Summary     Transaction analytics
// @Description Total income, total expense, balance and per-category totals over every transaction, ignoring list filters
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Analytics "Analytics"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions/analytics [get]
func (h *TransactionHandler) GetAnalytics(c *gin.Context) {
	session, err := currentSession(c, h.sessionService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	analytics := h.analyticsService.Summary(session.User.Username, session.Transactions)
	c.JSON(http.StatusOK, gin.H{"analytics": analytics})
}
