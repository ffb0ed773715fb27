package budget

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campBuzz/domain"
	"campBuzz/pkg/logger"
	"campBuzz/pkg/metrics"

	"github.com/google/uuid"
)

// BudgetRepository contract interface
type BudgetRepository interface {
	FindClubBudget(ctx context.Context, clubID string) (domain.ClubBudget, error)
	FindAllClubBudgets(ctx context.Context) ([]domain.ClubBudget, error)
	SaveClubBudget(ctx context.Context, budget *domain.ClubBudget) error
	FindCategories(ctx context.Context, clubID string) ([]domain.BudgetCategory, error)
	SaveCategory(ctx context.Context, category *domain.BudgetCategory) error
	CreateTransaction(ctx context.Context, tx *domain.BudgetTransaction) error
	FindTransaction(ctx context.Context, id string) (domain.BudgetTransaction, error)
	FindTransactions(ctx context.Context, clubID string) ([]domain.BudgetTransaction, error)
	UpdateTransaction(ctx context.Context, tx *domain.BudgetTransaction) error
}

// BudgetStatus classifies how much of the budget is spent.
type BudgetStatus string

const (
	StatusGood     BudgetStatus = "Good"
	StatusWarning  BudgetStatus = "Warning"
	StatusCritical BudgetStatus = "Critical"

	warningShare  = 0.5
	criticalShare = 0.8
)

type budgetService struct {
	budgetRepo BudgetRepository
}

func NewBudgetService(budgetRepo BudgetRepository) *budgetService {
	return &budgetService{budgetRepo: budgetRepo}
}

func (s *budgetService) GetClubBudget(ctx context.Context, clubID string) (domain.ClubBudget, error) {
	if clubID == "" {
		return domain.ClubBudget{}, errors.New("invalid club id")
	}

	budget, err := s.budgetRepo.FindClubBudget(ctx, clubID)
	if err != nil {
		logger.Error("Failed to find club budget", err)
		return domain.ClubBudget{}, err
	}

	return budget, nil
}

func (s *budgetService) GetAllClubBudgets(ctx context.Context) ([]domain.ClubBudget, error) {
	budgets, err := s.budgetRepo.FindAllClubBudgets(ctx)
	if err != nil {
		logger.Error("Failed to find club budgets", err)
		return nil, err
	}

	return budgets, nil
}

func (s *budgetService) GetCategories(ctx context.Context, clubID string) ([]domain.BudgetCategory, error) {
	if clubID == "" {
		return nil, errors.New("invalid club id")
	}

	categories, err := s.budgetRepo.FindCategories(ctx, clubID)
	if err != nil {
		logger.Error("Failed to find budget categories", err)
		return nil, err
	}

	return categories, nil
}

// AddTransaction records an income or expense against a club budget and keeps
// the club's running spent/remaining totals in sync.
func (s *budgetService) AddTransaction(ctx context.Context, tx *domain.BudgetTransaction) (*domain.BudgetTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if tx.ClubID == "" {
		logger.Error("Invalid transaction data: club id is required")
		return nil, errors.New("club id is required")
	}

	if tx.Type != domain.TransactionIncome && tx.Type != domain.TransactionExpense {
		logger.Error("Invalid transaction data: unknown type", tx.Type)
		return nil, errors.New("transaction type must be income or expense")
	}

	if tx.Description == "" {
		logger.Error("Invalid transaction data: description is required")
		return nil, errors.New("description is required")
	}

	if tx.Amount <= 0 {
		logger.Error("Invalid transaction data: amount must be greater than 0")
		return nil, errors.New("amount must be greater than 0")
	}

	budget, err := s.budgetRepo.FindClubBudget(ctx, tx.ClubID)
	if err != nil {
		logger.Error("Club budget not found", err)
		return nil, errors.New("club budget not found")
	}

	tx.ID = uuid.NewString()
	tx.Approved = false
	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}

	if err := s.budgetRepo.CreateTransaction(ctx, tx); err != nil {
		logger.Error("Failed to create transaction", err)
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	switch tx.Type {
	case domain.TransactionExpense:
		budget.Spent += tx.Amount
		budget.Remaining -= tx.Amount
	case domain.TransactionIncome:
		budget.TotalBudget += tx.Amount
		budget.Remaining += tx.Amount
	}

	if err := s.budgetRepo.SaveClubBudget(ctx, &budget); err != nil {
		logger.Error("Failed to update club budget totals", err)
		return nil, fmt.Errorf("failed to update club budget: %w", err)
	}

	metrics.BudgetTransactions.Inc()
	logger.Info("transaction recorded", "transaction_id", tx.ID, "club_id", tx.ClubID)

	return tx, nil
}

func (s *budgetService) ApproveTransaction(ctx context.Context, id string) (*domain.BudgetTransaction, error) {
	if id == "" {
		return nil, errors.New("invalid transaction id")
	}

	tx, err := s.budgetRepo.FindTransaction(ctx, id)
	if err != nil {
		logger.Error("Transaction not found", err)
		return nil, errors.New("transaction not found")
	}

	if tx.Approved {
		return &tx, nil
	}

	tx.Approved = true
	if err := s.budgetRepo.UpdateTransaction(ctx, &tx); err != nil {
		logger.Error("Failed to approve transaction", err)
		return nil, err
	}

	return &tx, nil
}

// ListTransactions filters a club's transactions by free-text search over
// description/category and by type ("all" disables the type filter).
func (s *budgetService) ListTransactions(ctx context.Context, clubID, search, txType string) ([]domain.BudgetTransaction, error) {
	if clubID == "" {
		return nil, errors.New("invalid club id")
	}

	if txType != "" && txType != "all" &&
		txType != domain.TransactionIncome && txType != domain.TransactionExpense {
		return nil, errors.New("transaction type must be income, expense or all")
	}

	txs, err := s.budgetRepo.FindTransactions(ctx, clubID)
	if err != nil {
		logger.Error("Failed to find transactions", err)
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(search))
	out := make([]domain.BudgetTransaction, 0, len(txs))
	for _, tx := range txs {
		if q != "" &&
			!strings.Contains(strings.ToLower(tx.Description), q) &&
			!strings.Contains(strings.ToLower(tx.Category), q) {
			continue
		}
		if txType != "" && txType != "all" && tx.Type != txType {
			continue
		}
		out = append(out, tx)
	}

	return out, nil
}

// Status classifies spend against total budget. A zero total budget reads as
// Good instead of dividing by zero.
func Status(budget domain.ClubBudget) BudgetStatus {
	if budget.TotalBudget <= 0 {
		return StatusGood
	}

	share := budget.Spent / budget.TotalBudget
	switch {
	case share < warningShare:
		return StatusGood
	case share < criticalShare:
		return StatusWarning
	default:
		return StatusCritical
	}
}
