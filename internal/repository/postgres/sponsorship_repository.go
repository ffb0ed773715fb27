package postgres

import (
	"context"
	"errors"
	"fmt"

	"campBuzz/domain"

	"gorm.io/gorm"
)

type SponsorRepository struct {
	DB *gorm.DB
}

func NewSponsorRepository(db *gorm.DB) *SponsorRepository {
	return &SponsorRepository{
		DB: db,
	}
}

func (r *SponsorRepository) Create(ctx context.Context, sponsor *domain.Sponsor) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(sponsor).Error; err != nil {
		return fmt.Errorf("failed to create sponsor: %w", err)
	}

	return nil
}

func (r *SponsorRepository) FindByID(ctx context.Context, id string) (domain.Sponsor, error) {
	if err := ctx.Err(); err != nil {
		return domain.Sponsor{}, fmt.Errorf("context error: %w", err)
	}

	var sponsor domain.Sponsor

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&sponsor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Sponsor{}, errors.New("sponsor not found")
		}
		return domain.Sponsor{}, fmt.Errorf("failed to find sponsor: %w", err)
	}

	return sponsor, nil
}

func (r *SponsorRepository) FindAll(ctx context.Context) ([]domain.Sponsor, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var sponsors []domain.Sponsor
	if err := r.DB.WithContext(ctx).Order("joined_date").Find(&sponsors).Error; err != nil {
		return nil, fmt.Errorf("failed to find sponsors: %w", err)
	}

	return sponsors, nil
}

func (r *SponsorRepository) Update(ctx context.Context, sponsor *domain.Sponsor) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.Sponsor{}).Where("id = ?", sponsor.ID).Updates(map[string]interface{}{
		"name":          sponsor.Name,
		"industry":      sponsor.Industry,
		"logo":          sponsor.Logo,
		"website":       sponsor.Website,
		"contact_name":  sponsor.ContactName,
		"contact_email": sponsor.ContactEmail,
		"contact_phone": sponsor.ContactPhone,
		"budget":        sponsor.Budget,
		"interests":     sponsor.Interests,
		"active":        sponsor.Active,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update sponsor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("sponsor not found")
	}

	return nil
}

type DealRepository struct {
	DB *gorm.DB
}

func NewDealRepository(db *gorm.DB) *DealRepository {
	return &DealRepository{
		DB: db,
	}
}

func (r *DealRepository) Create(ctx context.Context, deal *domain.SponsorshipDeal) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(deal).Error; err != nil {
		return fmt.Errorf("failed to create deal: %w", err)
	}

	return nil
}

func (r *DealRepository) FindByID(ctx context.Context, id string) (domain.SponsorshipDeal, error) {
	if err := ctx.Err(); err != nil {
		return domain.SponsorshipDeal{}, fmt.Errorf("context error: %w", err)
	}

	var deal domain.SponsorshipDeal

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&deal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SponsorshipDeal{}, errors.New("deal not found")
		}
		return domain.SponsorshipDeal{}, fmt.Errorf("failed to find deal: %w", err)
	}

	return deal, nil
}

func (r *DealRepository) FindByClub(ctx context.Context, clubID string) ([]domain.SponsorshipDeal, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var deals []domain.SponsorshipDeal
	err := r.DB.WithContext(ctx).Where("club_id = ?", clubID).Order("created_at DESC").Find(&deals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find deals: %w", err)
	}

	return deals, nil
}

func (r *DealRepository) Update(ctx context.Context, deal *domain.SponsorshipDeal) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.SponsorshipDeal{}).Where("id = ?", deal.ID).Updates(map[string]interface{}{
		"status":          deal.Status,
		"end_date":        deal.EndDate,
		"description":     deal.Description,
		"deliverables":    deal.Deliverables,
		"roi_impressions": deal.ROIImpressions,
		"roi_engagement":  deal.ROIEngagement,
		"roi_conversions": deal.ROIConversions,
		"roi_revenue":     deal.ROIRevenue,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update deal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("deal not found")
	}

	return nil
}
