package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/wasimadildev/begded-planner/internal/errors"
	"github.com/wasimadildev/begded-planner/internal/models"
	"github.com/wasimadildev/begded-planner/internal/services"
	"github.com/wasimadildev/begded-planner/internal/uuid"
)

// GoalHandler handles savings goal requests.
type GoalHandler struct {
	sessionService services.SessionServicer
	auditService   services.AuditServicer
	newID          uuid.Generator
	now            func() time.Time
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(sessionService services.SessionServicer, auditService services.AuditServicer) *GoalHandler {
	return &GoalHandler{
		sessionService: sessionService,
		auditService:   auditService,
		newID:          uuid.New,
		now:            time.Now,
	}
}

// CreateGoalRequest represents the request payload for creating a savings goal
type CreateGoalRequest struct {
	Title        string          `json:"title" binding:"required,max=200"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"positive_decimal"`
	Deadline     string          `json:"deadline" binding:"required,calendar_date"`
	Category     string          `json:"category" binding:"max=100"`
}

// ContributeRequest represents the request payload for a contribution
type ContributeRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"positive_decimal"`
}

// GoalResponse is a savings goal with its derived progress.
type GoalResponse struct {
	models.SavingsGoal
	Progress services.GoalProgress `json:"progress"`
}

func (h *GoalHandler) toResponse(goal models.SavingsGoal) GoalResponse {
	return GoalResponse{SavingsGoal: goal, Progress: services.CalculateGoalProgress(goal, h.now())}
}

// CreateGoal handles the creation of a new savings goal
// @Summary     Create a savings goal
// @Description Create a goal with a target amount and deadline. Progress starts at zero.
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     201 {object} GoalResponse "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Goals not loaded"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	session, err := currentSession(c, h.sessionService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := session.Goals.Add(c.Request.Context(), models.SavingsGoal{
		ID:           h.newID(),
		Title:        req.Title,
		TargetAmount: req.TargetAmount,
		Deadline:     req.Deadline,
		Category:     req.Category,
	})
	warning, err := splitWarning(err)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(session.User.Username, "CREATE_GOAL", "savings_goal", goal.ID, c.ClientIP(),
		map[string]interface{}{"title": goal.Title, "target_amount": goal.TargetAmount.String(), "deadline": goal.Deadline})

	c.JSON(http.StatusCreated, withWarning(gin.H{"goal": h.toResponse(*goal)}, warning))
}

// GetGoals lists the caller's savings goals
// @Summary     List savings goals
// @Description List goals newest first with progress, remaining amount and days to deadline
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Goals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /goals [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
	session, err := currentSession(c, h.sessionService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goals := session.Goals.List()
	resp := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		resp = append(resp, h.toResponse(g))
	}

	c.JSON(http.StatusOK, withWarning(gin.H{"goals": resp}, strings.Join(session.Warnings, "; ")))
}

// Contribute adds an amount to a savings goal
// @Summary     Contribute to a savings goal
// @Description Add a positive amount to a goal. The saved amount never exceeds the target. An unknown id changes nothing and returns a null goal.
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Goal ID"
// @Param       request body ContributeRequest true "Contribution"
// @Success     200 {object} GoalResponse "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /goals/{id}/contributions [post]
func (h *GoalHandler) Contribute(c *gin.Context) {
	session, err := currentSession(c, h.sessionService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	id := c.Param("id")
	goal, err := session.Goals.Contribute(c.Request.Context(), id, req.Amount)
	warning, err := splitWarning(err)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if goal == nil {
		c.JSON(http.StatusOK, gin.H{"goal": nil})
		return
	}

	h.auditService.Log(session.User.Username, "CONTRIBUTE_GOAL", "savings_goal", id, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount.String(), "current_amount": goal.CurrentAmount.String()})

	c.JSON(http.StatusOK, withWarning(gin.H{"goal": h.toResponse(*goal)}, warning))
}

// DeleteGoal handles the deletion of a savings goal
// @Summary     Delete a savings goal
// @Description Remove a goal. Deleting an unknown id succeeds without changes.
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Goal ID"
// @Success     204 "Goal deleted"
// @Success     200 {object} map[string]string "Deleted, but the change could not be saved"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	session, err := currentSession(c, h.sessionService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id := c.Param("id")
	warning, err := splitWarning(session.Goals.Delete(c.Request.Context(), id))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(session.User.Username, "DELETE_GOAL", "savings_goal", id, c.ClientIP(), nil)

	if warning != "" {
		c.JSON(http.StatusOK, gin.H{"warning": warning})
		return
	}
	c.Status(http.StatusNoContent)
}
