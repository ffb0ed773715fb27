package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"campBuzz/domain"
	"campBuzz/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type (
	SponsorshipHandler struct {
		validate           *validator.Validate
		sponsorshipService SponsorshipService
		timeout            time.Duration
	}

	SponsorshipService interface {
		AddSponsor(ctx context.Context, sponsor *domain.Sponsor) (*domain.Sponsor, error)
		GetAllSponsors(ctx context.Context) ([]domain.Sponsor, error)
		CreateDeal(ctx context.Context, deal *domain.SponsorshipDeal) (*domain.SponsorshipDeal, error)
		UpdateDealStatus(ctx context.Context, dealID, status string) (*domain.SponsorshipDeal, error)
		ListDeals(ctx context.Context, clubID, search, status string) ([]domain.SponsorshipDeal, error)
		GetClubSponsorship(ctx context.Context, clubID string) (domain.ClubSponsorship, error)
		RecordROI(ctx context.Context, dealID string, impressions, engagement, conversions int, revenue float64) (*domain.SponsorshipDeal, error)
	}

	SponsorInput struct {
		Name         string   `json:"name" validate:"required"`
		Industry     string   `json:"industry"`
		Website      string   `json:"website"`
		ContactName  string   `json:"contact_name"`
		ContactEmail string   `json:"contact_email" validate:"required,email"`
		ContactPhone string   `json:"contact_phone"`
		Budget       float64  `json:"budget" validate:"gte=0"`
		Interests    []string `json:"interests"`
	}

	DealInput struct {
		SponsorID    string   `json:"sponsor_id" validate:"required"`
		ClubID       string   `json:"club_id" validate:"required"`
		Amount       float64  `json:"amount" validate:"required,gt=0"`
		Type         string   `json:"type" validate:"required,oneof=monetary in-kind services"`
		StartDate    string   `json:"start_date"`
		EndDate      string   `json:"end_date"`
		Description  string   `json:"description"`
		Deliverables []string `json:"deliverables"`
	}

	DealStatusInput struct {
		Status string `json:"status" validate:"required,oneof=pending active completed cancelled"`
	}

	ROIInput struct {
		Impressions int     `json:"impressions" validate:"gte=0"`
		Engagement  int     `json:"engagement" validate:"gte=0"`
		Conversions int     `json:"conversions" validate:"gte=0"`
		Revenue     float64 `json:"revenue" validate:"gte=0"`
	}
)

func NewSponsorshipHandler(sponsorshipService SponsorshipService) *SponsorshipHandler {
	return &SponsorshipHandler{
		validate:           validator.New(),
		sponsorshipService: sponsorshipService,
		timeout:            10 * time.Second,
	}
}

func (h *SponsorshipHandler) AddSponsor(c echo.Context) error {
	var request SponsorInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validation sponsor input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sponsor, err := h.sponsorshipService.AddSponsor(ctx, &domain.Sponsor{
		Name:         request.Name,
		Industry:     request.Industry,
		Website:      request.Website,
		ContactName:  request.ContactName,
		ContactEmail: request.ContactEmail,
		ContactPhone: request.ContactPhone,
		Budget:       request.Budget,
		Interests:    datatypes.NewJSONSlice(request.Interests),
	})
	if err != nil {
		logger.Error("Failed to add sponsor", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(sponsor))
}

func (h *SponsorshipHandler) GetAllSponsors(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sponsors, err := h.sponsorshipService.GetAllSponsors(ctx)
	if err != nil {
		logger.Error("Failed to get sponsors", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(sponsors))
}

func (h *SponsorshipHandler) CreateDeal(c echo.Context) error {
	var request DealInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validation deal input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	deal := &domain.SponsorshipDeal{
		SponsorID:    request.SponsorID,
		ClubID:       request.ClubID,
		Amount:       request.Amount,
		Type:         request.Type,
		Description:  request.Description,
		Deliverables: datatypes.NewJSONSlice(request.Deliverables),
	}

	if request.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", request.StartDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid start_date"})
		}
		deal.StartDate = parsed
	}
	if request.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", request.EndDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid end_date"})
		}
		deal.EndDate = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.sponsorshipService.CreateDeal(ctx, deal)
	if err != nil {
		logger.Error("Failed to create deal", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

func (h *SponsorshipHandler) UpdateDealStatus(c echo.Context) error {
	id := c.Param("id")

	var request DealStatusInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validation deal status input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	deal, err := h.sponsorshipService.UpdateDealStatus(ctx, id, request.Status)
	if err != nil {
		logger.Error("Failed to update deal status", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(deal))
}

func (h *SponsorshipHandler) ListDeals(c echo.Context) error {
	clubID := c.QueryParam("club_id")
	search := c.QueryParam("search")
	status := c.QueryParam("status")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	deals, err := h.sponsorshipService.ListDeals(ctx, clubID, search, status)
	if err != nil {
		logger.Error("Failed to list deals", err)
		if strings.Contains(err.Error(), "invalid") {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(deals))
}

func (h *SponsorshipHandler) GetClubSponsorship(c echo.Context) error {
	clubID := c.Param("clubId")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	summary, err := h.sponsorshipService.GetClubSponsorship(ctx, clubID)
	if err != nil {
		logger.Error("Failed to get club sponsorship", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(summary))
}

func (h *SponsorshipHandler) RecordROI(c echo.Context) error {
	id := c.Param("id")

	var request ROIInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validation ROI input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	deal, err := h.sponsorshipService.RecordROI(ctx, id, request.Impressions, request.Engagement, request.Conversions, request.Revenue)
	if err != nil {
		logger.Error("Failed to record ROI", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(deal))
}
