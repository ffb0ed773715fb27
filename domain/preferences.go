package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.user_preferences (
//     user_id                BIGINT PRIMARY KEY REFERENCES users(id),
//     college                TEXT,
//     interests              JSONB,
//     skills                 JSONB,
//     preferred_categories   JSONB,
//     preferred_difficulty   JSONB,
//     past_events            JSONB,
//     updated_at             TIMESTAMPTZ DEFAULT NOW()
// );

type UserPreferences struct {
	UserID              uint                        `gorm:"primaryKey;column:user_id" json:"user_id"`
	College             string                      `gorm:"column:college" json:"college"`
	Interests           datatypes.JSONSlice[string] `gorm:"column:interests" json:"interests"`
	Skills              datatypes.JSONSlice[string] `gorm:"column:skills" json:"skills"`
	PreferredCategories datatypes.JSONSlice[string] `gorm:"column:preferred_categories" json:"preferred_categories"`
	PreferredDifficulty datatypes.JSONSlice[string] `gorm:"column:preferred_difficulty" json:"preferred_difficulty"`
	PastEvents          datatypes.JSONSlice[string] `gorm:"column:past_events" json:"past_events"`
	UpdatedAt           time.Time                   `gorm:"column:updated_at" json:"updated_at"`
}

func (UserPreferences) TableName() string {
	return "user_preferences"
}
