package sponsorship

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

// SponsorRepository contract interface
type SponsorRepository interface {
	Create(ctx context.Context, sponsor *domain.Sponsor) error
	FindByID(ctx context.Context, id string) (domain.Sponsor, error)
	FindAll(ctx context.Context) ([]domain.Sponsor, error)
	Update(ctx context.Context, sponsor *domain.Sponsor) error
}

// DealRepository contract interface
type DealRepository interface {
	Create(ctx context.Context, deal *domain.SponsorshipDeal) error
	FindByID(ctx context.Context, id string) (domain.SponsorshipDeal, error)
	FindByClub(ctx context.Context, clubID string) ([]domain.SponsorshipDeal, error)
	Update(ctx context.Context, deal *domain.SponsorshipDeal) error
}

// ClubRepository resolves club names for deal denormalization.
type ClubRepository interface {
	FindClubBudget(ctx context.Context, clubID string) (domain.ClubBudget, error)
}

const defaultDealTerm = 365 * 24 * time.Hour

var validDealTypes = map[string]bool{
	domain.DealMonetary: true,
	domain.DealInKind:   true,
	domain.DealServices: true,
}

var validDealStatus = map[string]bool{
	domain.DealStatusPending:   true,
	domain.DealStatusActive:    true,
	domain.DealStatusCompleted: true,
	domain.DealStatusCancelled: true,
}

type sponsorshipService struct {
	sponsorRepo SponsorRepository
	dealRepo    DealRepository
	clubRepo    ClubRepository
}

func NewSponsorshipService(sponsorRepo SponsorRepository, dealRepo DealRepository, clubRepo ClubRepository) *sponsorshipService {
	return &sponsorshipService{
		sponsorRepo: sponsorRepo,
		dealRepo:    dealRepo,
		clubRepo:    clubRepo,
	}
}

// AddSponsor registers a sponsor. The two-letter logo monogram is derived
// from the name when no logo is supplied.
func (s *sponsorshipService) AddSponsor(ctx context.Context, sponsor *domain.Sponsor) (*domain.Sponsor, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if sponsor.Name == "" {
		logger.Error("Invalid sponsor data: name is required")
		return nil, errors.New("sponsor name is required")
	}

	if sponsor.ContactEmail == "" {
		logger.Error("Invalid sponsor data: contact email is required")
		return nil, errors.New("contact email is required")
	}

	sponsor.ID = uuid.NewString()
	if sponsor.Logo == "" {
		sponsor.Logo = monogram(sponsor.Name)
	}
	sponsor.Active = true
	sponsor.JoinedDate = time.Now()

	if err := s.sponsorRepo.Create(ctx, sponsor); err != nil {
		logger.Error("Failed to create sponsor", err)
		return nil, fmt.Errorf("failed to create sponsor: %w", err)
	}

	logger.Info("sponsor registered", "sponsor_id", sponsor.ID)

	return sponsor, nil
}

func (s *sponsorshipService) GetAllSponsors(ctx context.Context) ([]domain.Sponsor, error) {
	sponsors, err := s.sponsorRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find sponsors", err)
		return nil, err
	}

	return sponsors, nil
}

// CreateDeal opens a pending deal between a sponsor and a club. End date
// defaults to one year after the start.
func (s *sponsorshipService) CreateDeal(ctx context.Context, deal *domain.SponsorshipDeal) (*domain.SponsorshipDeal, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if deal.SponsorID == "" || deal.ClubID == "" {
		logger.Error("Invalid deal data: sponsor and club are required")
		return nil, errors.New("sponsor id and club id are required")
	}

	if deal.Amount <= 0 {
		logger.Error("Invalid deal data: amount must be greater than 0")
		return nil, errors.New("amount must be greater than 0")
	}

	if !validDealTypes[deal.Type] {
		logger.Error("Invalid deal data: unknown type", deal.Type)
		return nil, errors.New("deal type must be monetary, in-kind or services")
	}

	sponsor, err := s.sponsorRepo.FindByID(ctx, deal.SponsorID)
	if err != nil {
		logger.Error("Sponsor not found", err)
		return nil, errors.New("sponsor not found")
	}

	club, err := s.clubRepo.FindClubBudget(ctx, deal.ClubID)
	if err != nil {
		logger.Error("Club not found", err)
		return nil, errors.New("club not found")
	}

	now := time.Now()
	deal.ID = uuid.NewString()
	deal.SponsorName = sponsor.Name
	deal.ClubName = club.ClubName
	deal.Status = domain.DealStatusPending
	deal.StartDate = now
	if deal.EndDate.IsZero() {
		deal.EndDate = now.Add(defaultDealTerm)
	}

	if err := s.dealRepo.Create(ctx, deal); err != nil {
		logger.Error("Failed to create deal", err)
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}

	metrics.SponsorshipDeals.Inc()
	logger.Info("sponsorship deal created", "deal_id", deal.ID, "club_id", deal.ClubID)

	return deal, nil
}

func (s *sponsorshipService) UpdateDealStatus(ctx context.Context, dealID, status string) (*domain.SponsorshipDeal, error) {
	if dealID == "" {
		return nil, errors.New("invalid deal id")
	}

	if !validDealStatus[status] {
		logger.Error("Invalid deal status", status)
		return nil, errors.New("deal status must be pending, active, completed or cancelled")
	}

	deal, err := s.dealRepo.FindByID(ctx, dealID)
	if err != nil {
		logger.Error("Deal not found", err)
		return nil, errors.New("deal not found")
	}

	deal.Status = status
	if err := s.dealRepo.Update(ctx, &deal); err != nil {
		logger.Error("Failed to update deal", err)
		return nil, err
	}

	return &deal, nil
}

// ListDeals filters a club's deals by free-text search over sponsor name and
// description, and by status ("all" disables the status filter).
func (s *sponsorshipService) ListDeals(ctx context.Context, clubID, search, status string) ([]domain.SponsorshipDeal, error) {
	if clubID == "" {
		return nil, errors.New("invalid club id")
	}

	if status != "" && status != "all" && !validDealStatus[status] {
		return nil, errors.New("unknown deal status filter")
	}

	deals, err := s.dealRepo.FindByClub(ctx, clubID)
	if err != nil {
		logger.Error("Failed to find deals", err)
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(search))
	out := make([]domain.SponsorshipDeal, 0, len(deals))
	for _, deal := range deals {
		if q != "" &&
			!strings.Contains(strings.ToLower(deal.SponsorName), q) &&
			!strings.Contains(strings.ToLower(deal.Description), q) {
			continue
		}
		if status != "" && status != "all" && deal.Status != status {
			continue
		}
		out = append(out, deal)
	}

	return out, nil
}

// GetClubSponsorship aggregates a club's deal totals: raised amount excludes
// cancelled deals, active sponsors are distinct sponsors on active deals.
func (s *sponsorshipService) GetClubSponsorship(ctx context.Context, clubID string) (domain.ClubSponsorship, error) {
	if clubID == "" {
		return domain.ClubSponsorship{}, errors.New("invalid club id")
	}

	club, err := s.clubRepo.FindClubBudget(ctx, clubID)
	if err != nil {
		logger.Error("Club not found", err)
		return domain.ClubSponsorship{}, errors.New("club not found")
	}

	deals, err := s.dealRepo.FindByClub(ctx, clubID)
	if err != nil {
		logger.Error("Failed to find deals", err)
		return domain.ClubSponsorship{}, err
	}

	agg := domain.ClubSponsorship{
		ClubID:   clubID,
		ClubName: club.ClubName,
		Deals:    deals,
	}

	activeSponsors := make(map[string]struct{})
	for _, deal := range deals {
		switch deal.Status {
		case domain.DealStatusCancelled:
			continue
		case domain.DealStatusPending:
			agg.PendingDeals++
		case domain.DealStatusActive:
			activeSponsors[deal.SponsorID] = struct{}{}
		}
		agg.TotalRaised += deal.Amount
	}
	agg.ActiveSponsors = len(activeSponsors)

	return agg, nil
}

// RecordROI adds reported campaign results onto a deal.
func (s *sponsorshipService) RecordROI(ctx context.Context, dealID string, impressions, engagement, conversions int, revenue float64) (*domain.SponsorshipDeal, error) {
	if dealID == "" {
		return nil, errors.New("invalid deal id")
	}

	if impressions < 0 || engagement < 0 || conversions < 0 || revenue < 0 {
		return nil, errors.New("roi values cannot be negative")
	}

	deal, err := s.dealRepo.FindByID(ctx, dealID)
	if err != nil {
		logger.Error("Deal not found", err)
		return nil, errors.New("deal not found")
	}

	deal.ROIImpressions += impressions
	deal.ROIEngagement += engagement
	deal.ROIConversions += conversions
	deal.ROIRevenue += revenue

	if err := s.dealRepo.Update(ctx, &deal); err != nil {
		logger.Error("Failed to update deal roi", err)
		return nil, err
	}

	return &deal, nil
}

// monogram returns the first two characters of the name, upper-cased.
func monogram(name string) string {
	runes := []rune(strings.TrimSpace(name))
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}
