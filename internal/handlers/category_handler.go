package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/wasimadildev/begded-planner/internal/errors"
	"github.com/wasimadildev/begded-planner/internal/models"
)

// CategoryHandler serves the suggested transaction categories.
type CategoryHandler struct {
	categories map[models.TransactionType][]string
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{categories: models.SuggestedCategories}
}

// CategoryQuery holds the optional type filter.
type CategoryQuery struct {
	Type string `form:"type" binding:"omitempty,transaction_type"`
}

// GetCategories lists suggested categories
// @Summary     List suggested categories
// @Description Get the suggested categories per transaction type, optionally for one type
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       type query string false "Transaction type (income or expense)"
// @Success     200 {object} map[string]interface{} "Suggested categories"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	var q CategoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result := make(map[models.TransactionType][]string, len(h.categories))
	for txType, names := range h.categories {
		if q.Type != "" && models.TransactionType(q.Type) != txType {
			continue
		}
		result[txType] = names
	}

	c.JSON(http.StatusOK, gin.H{"categories": result})
}
