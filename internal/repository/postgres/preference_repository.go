package postgres

import (
	"context"
	"errors"
	"fmt"

	"campBuzz/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepository struct {
	DB *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{
		DB: db,
	}
}

func (r *PreferenceRepository) FindByUserID(ctx context.Context, userID uint) (domain.UserPreferences, error) {
	if err := ctx.Err(); err != nil {
		return domain.UserPreferences{}, fmt.Errorf("context error: %w", err)
	}

	var prefs domain.UserPreferences

	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&prefs).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserPreferences{}, errors.New("preferences not found")
		}
		return domain.UserPreferences{}, fmt.Errorf("failed to find preferences: %w", err)
	}

	return prefs, nil
}

func (r *PreferenceRepository) Upsert(ctx context.Context, prefs *domain.UserPreferences) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(prefs).Error
	if err != nil {
		return fmt.Errorf("failed to upsert preferences: %w", err)
	}

	return nil
}
