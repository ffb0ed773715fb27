package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"campBuzz/business/budget"
	"campBuzz/domain"
	"campBuzz/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type (
	BudgetHandler struct {
		validate      *validator.Validate
		budgetService BudgetService
		timeout       time.Duration
	}

	BudgetService interface {
		GetClubBudget(ctx context.Context, clubID string) (domain.ClubBudget, error)
		GetAllClubBudgets(ctx context.Context) ([]domain.ClubBudget, error)
		GetCategories(ctx context.Context, clubID string) ([]domain.BudgetCategory, error)
		AddTransaction(ctx context.Context, tx *domain.BudgetTransaction) (*domain.BudgetTransaction, error)
		ApproveTransaction(ctx context.Context, id string) (*domain.BudgetTransaction, error)
		ListTransactions(ctx context.Context, clubID, search, txType string) ([]domain.BudgetTransaction, error)
	}

	TransactionInput struct {
		Type        string   `json:"type" validate:"required,oneof=income expense"`
		Category    string   `json:"category"`
		Description string   `json:"description" validate:"required"`
		Amount      float64  `json:"amount" validate:"required,gt=0"`
		Date        string   `json:"date"`
		Receipt     string   `json:"receipt"`
		Tags        []string `json:"tags"`
	}
)

func NewBudgetHandler(budgetService BudgetService) *BudgetHandler {
	return &BudgetHandler{
		validate:      validator.New(),
		budgetService: budgetService,
		timeout:       10 * time.Second,
	}
}

func (h *BudgetHandler) GetClubBudget(c echo.Context) error {
	clubID := c.Param("clubId")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	clubBudget, err := h.budgetService.GetClubBudget(ctx, clubID)
	if err != nil {
		logger.Error("Failed to get club budget", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"budget": clubBudget,
		"status": budget.Status(clubBudget),
	}))
}

func (h *BudgetHandler) GetAllClubBudgets(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	budgets, err := h.budgetService.GetAllClubBudgets(ctx)
	if err != nil {
		logger.Error("Failed to get club budgets", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(budgets))
}

func (h *BudgetHandler) GetCategories(c echo.Context) error {
	clubID := c.Param("clubId")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	categories, err := h.budgetService.GetCategories(ctx, clubID)
	if err != nil {
		logger.Error("Failed to get budget categories", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(categories))
}

func (h *BudgetHandler) AddTransaction(c echo.Context) error {
	clubID := c.Param("clubId")

	var request TransactionInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validation transaction input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	date := time.Now()
	if request.Date != "" {
		parsed, err := time.Parse("2006-01-02", request.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid date"})
		}
		date = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	tx, err := h.budgetService.AddTransaction(ctx, &domain.BudgetTransaction{
		ClubID:      clubID,
		Type:        request.Type,
		Category:    request.Category,
		Description: request.Description,
		Amount:      request.Amount,
		Date:        date,
		Receipt:     request.Receipt,
		Tags:        datatypes.NewJSONSlice(request.Tags),
	})
	if err != nil {
		logger.Error("Failed to add transaction", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(tx))
}

func (h *BudgetHandler) ApproveTransaction(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	tx, err := h.budgetService.ApproveTransaction(ctx, id)
	if err != nil {
		logger.Error("Failed to approve transaction", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(tx))
}

func (h *BudgetHandler) ListTransactions(c echo.Context) error {
	clubID := c.Param("clubId")
	search := c.QueryParam("search")
	txType := c.QueryParam("type")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	txs, err := h.budgetService.ListTransactions(ctx, clubID, search, txType)
	if err != nil {
		logger.Error("Failed to list transactions", err)
		if strings.Contains(err.Error(), "invalid") {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(txs))
}
