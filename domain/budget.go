package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// CREATE TABLE public.club_budgets (
//     club_id        TEXT PRIMARY KEY,
//     club_name      TEXT NOT NULL,
//     total_budget   NUMERIC DEFAULT 0,
//     spent          NUMERIC DEFAULT 0,
//     remaining      NUMERIC DEFAULT 0,
//     monthly_limit  NUMERIC DEFAULT 0,
//     created_at     TIMESTAMPTZ DEFAULT NOW()
// );

type ClubBudget struct {
	ClubID       string    `gorm:"primaryKey;column:club_id" json:"club_id"`
	ClubName     string    `gorm:"column:club_name;not null" json:"club_name"`
	TotalBudget  float64   `gorm:"column:total_budget;type:numeric;default:0" json:"total_budget"`
	Spent        float64   `gorm:"column:spent;type:numeric;default:0" json:"spent"`
	Remaining    float64   `gorm:"column:remaining;type:numeric;default:0" json:"remaining"`
	MonthlyLimit float64   `gorm:"column:monthly_limit;type:numeric;default:0" json:"monthly_limit"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ClubBudget) TableName() string {
	return "club_budgets"
}

type BudgetCategory struct {
	ID       string  `gorm:"primaryKey;column:id" json:"id"`
	ClubID   string  `gorm:"column:club_id;index;not null" json:"club_id"`
	Name     string  `gorm:"column:name;not null" json:"name"`
	Budgeted float64 `gorm:"column:budgeted;type:numeric;default:0" json:"budgeted"`
	Spent    float64 `gorm:"column:spent;type:numeric;default:0" json:"spent"`
}

func (BudgetCategory) TableName() string {
	return "budget_categories"
}

type BudgetTransaction struct {
	ID          string                      `gorm:"primaryKey;column:id" json:"id"`
	ClubID      string                      `gorm:"column:club_id;index;not null" json:"club_id"`
	Type        string                      `gorm:"column:type;not null" json:"type"`
	Category    string                      `gorm:"column:category" json:"category"`
	Description string                      `gorm:"column:description;type:text" json:"description"`
	Amount      float64                     `gorm:"column:amount;type:numeric;not null" json:"amount"`
	Date        time.Time                   `gorm:"column:date" json:"date"`
	Approved    bool                        `gorm:"column:approved;default:false" json:"approved"`
	Receipt     string                      `gorm:"column:receipt" json:"receipt,omitempty"`
	Tags        datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
	CreatedAt   time.Time                   `gorm:"column:created_at" json:"created_at"`
}

func (BudgetTransaction) TableName() string {
	return "budget_transactions"
}
