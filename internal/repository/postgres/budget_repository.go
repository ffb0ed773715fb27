package postgres

import (
	"context"
	"errors"
	"fmt"

	"campBuzz/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BudgetRepository struct {
	DB *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) *BudgetRepository {
	return &BudgetRepository{
		DB: db,
	}
}

func (r *BudgetRepository) FindClubBudget(ctx context.Context, clubID string) (domain.ClubBudget, error) {
	if err := ctx.Err(); err != nil {
		return domain.ClubBudget{}, fmt.Errorf("context error: %w", err)
	}

	var budget domain.ClubBudget

	err := r.DB.WithContext(ctx).Where("club_id = ?", clubID).First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ClubBudget{}, errors.New("club budget not found")
		}
		return domain.ClubBudget{}, fmt.Errorf("failed to find club budget: %w", err)
	}

	return budget, nil
}

func (r *BudgetRepository) FindAllClubBudgets(ctx context.Context) ([]domain.ClubBudget, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var budgets []domain.ClubBudget
	if err := r.DB.WithContext(ctx).Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to find club budgets: %w", err)
	}

	return budgets, nil
}

func (r *BudgetRepository) SaveClubBudget(ctx context.Context, budget *domain.ClubBudget) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "club_id"}},
		UpdateAll: true,
	}).Create(budget).Error
	if err != nil {
		return fmt.Errorf("failed to save club budget: %w", err)
	}

	return nil
}

func (r *BudgetRepository) FindCategories(ctx context.Context, clubID string) ([]domain.BudgetCategory, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var categories []domain.BudgetCategory
	if err := r.DB.WithContext(ctx).Where("club_id = ?", clubID).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to find budget categories: %w", err)
	}

	return categories, nil
}

func (r *BudgetRepository) SaveCategory(ctx context.Context, category *domain.BudgetCategory) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(category).Error
	if err != nil {
		return fmt.Errorf("failed to save budget category: %w", err)
	}

	return nil
}

func (r *BudgetRepository) CreateTransaction(ctx context.Context, tx *domain.BudgetTransaction) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

func (r *BudgetRepository) FindTransaction(ctx context.Context, id string) (domain.BudgetTransaction, error) {
	if err := ctx.Err(); err != nil {
		return domain.BudgetTransaction{}, fmt.Errorf("context error: %w", err)
	}

	var tx domain.BudgetTransaction

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BudgetTransaction{}, errors.New("transaction not found")
		}
		return domain.BudgetTransaction{}, fmt.Errorf("failed to find transaction: %w", err)
	}

	return tx, nil
}

func (r *BudgetRepository) FindTransactions(ctx context.Context, clubID string) ([]domain.BudgetTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var txs []domain.BudgetTransaction
	err := r.DB.WithContext(ctx).Where("club_id = ?", clubID).Order("date DESC").Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find transactions: %w", err)
	}

	return txs, nil
}

func (r *BudgetRepository) UpdateTransaction(ctx context.Context, tx *domain.BudgetTransaction) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.BudgetTransaction{}).Where("id = ?", tx.ID).Updates(map[string]interface{}{
		"approved":    tx.Approved,
		"category":    tx.Category,
		"description": tx.Description,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("transaction not found")
	}

	return nil
}
