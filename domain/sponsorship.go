package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	DealMonetary = "monetary"
	DealInKind   = "in-kind"
	DealServices = "services"

	DealStatusPending   = "pending"
	DealStatusActive    = "active"
	DealStatusCompleted = "completed"
	DealStatusCancelled = "cancelled"
)

type Sponsor struct {
	ID           string                      `gorm:"primaryKey;column:id" json:"id"`
	Name         string                      `gorm:"column:name;not null" json:"name"`
	Industry     string                      `gorm:"column:industry" json:"industry"`
	Logo         string                      `gorm:"column:logo" json:"logo"`
	Website      string                      `gorm:"column:website" json:"website"`
	ContactName  string                      `gorm:"column:contact_name" json:"contact_name"`
	ContactEmail string                      `gorm:"column:contact_email;not null" json:"contact_email"`
	ContactPhone string                      `gorm:"column:contact_phone" json:"contact_phone"`
	Budget       float64                     `gorm:"column:budget;type:numeric;default:0" json:"budget"`
	Interests    datatypes.JSONSlice[string] `gorm:"column:interests" json:"interests"`
	Active       bool                        `gorm:"column:active;default:true" json:"active"`
	JoinedDate   time.Time                   `gorm:"column:joined_date" json:"joined_date"`
}

func (Sponsor) TableName() string {
	return "sponsors"
}

type SponsorshipDeal struct {
	ID           string                      `gorm:"primaryKey;column:id" json:"id"`
	SponsorID    string                      `gorm:"column:sponsor_id;index;not null" json:"sponsor_id"`
	ClubID       string                      `gorm:"column:club_id;index;not null" json:"club_id"`
	SponsorName  string                      `gorm:"column:sponsor_name" json:"sponsor_name"`
	ClubName     string                      `gorm:"column:club_name" json:"club_name"`
	Amount       float64                     `gorm:"column:amount;type:numeric;not null" json:"amount"`
	Type         string                      `gorm:"column:type;not null" json:"type"`
	Status       string                      `gorm:"column:status;default:pending" json:"status"`
	StartDate    time.Time                   `gorm:"column:start_date" json:"start_date"`
	EndDate      time.Time                   `gorm:"column:end_date" json:"end_date"`
	Description  string                      `gorm:"column:description;type:text" json:"description"`
	Deliverables datatypes.JSONSlice[string] `gorm:"column:deliverables" json:"deliverables"`

	// Reported sponsor-side return, updated as campaigns run.
	ROIImpressions int     `gorm:"column:roi_impressions;default:0" json:"roi_impressions"`
	ROIEngagement  int     `gorm:"column:roi_engagement;default:0" json:"roi_engagement"`
	ROIConversions int     `gorm:"column:roi_conversions;default:0" json:"roi_conversions"`
	ROIRevenue     float64 `gorm:"column:roi_revenue;type:numeric;default:0" json:"roi_revenue"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (SponsorshipDeal) TableName() string {
	return "sponsorship_deals"
}

// ClubSponsorship is an aggregate view over a club's deals.
type ClubSponsorship struct {
	ClubID         string            `json:"club_id"`
	ClubName       string            `json:"club_name"`
	TotalRaised    float64           `json:"total_raised"`
	ActiveSponsors int               `json:"active_sponsors"`
	PendingDeals   int               `json:"pending_deals"`
	Deals          []SponsorshipDeal `json:"deals"`
}
