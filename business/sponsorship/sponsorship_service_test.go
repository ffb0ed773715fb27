//go:build !integration

package sponsorship

import (
	"context"
	"errors"
	"testing"

	"campBuzz/domain"
)

type fakeSponsorRepo struct {
	sponsors map[string]domain.Sponsor
}

func newFakeSponsorRepo(sponsors ...domain.Sponsor) *fakeSponsorRepo {
	repo := &fakeSponsorRepo{sponsors: make(map[string]domain.Sponsor)}
	for _, sp := range sponsors {
		repo.sponsors[sp.ID] = sp
	}
	return repo
}

func (f *fakeSponsorRepo) Create(ctx context.Context, sponsor *domain.Sponsor) error {
	f.sponsors[sponsor.ID] = *sponsor
	return nil
}

func (f *fakeSponsorRepo) FindByID(ctx context.Context, id string) (domain.Sponsor, error) {
	sp, ok := f.sponsors[id]
	if !ok {
		return domain.Sponsor{}, errors.New("sponsor not found")
	}
	return sp, nil
}

func (f *fakeSponsorRepo) FindAll(ctx context.Context) ([]domain.Sponsor, error) {
	out := make([]domain.Sponsor, 0, len(f.sponsors))
	for _, sp := range f.sponsors {
		out = append(out, sp)
	}
	return out, nil
}

func (f *fakeSponsorRepo) Update(ctx context.Context, sponsor *domain.Sponsor) error {
	f.sponsors[sponsor.ID] = *sponsor
	return nil
}

type fakeDealRepo struct {
	deals map[string]domain.SponsorshipDeal
	order []string
}

func newFakeDealRepo() *fakeDealRepo {
	return &fakeDealRepo{deals: make(map[string]domain.SponsorshipDeal)}
}

func (f *fakeDealRepo) Create(ctx context.Context, deal *domain.SponsorshipDeal) error {
	f.deals[deal.ID] = *deal
	f.order = append(f.order, deal.ID)
	return nil
}

func (f *fakeDealRepo) FindByID(ctx context.Context, id string) (domain.SponsorshipDeal, error) {
	d, ok := f.deals[id]
	if !ok {
		return domain.SponsorshipDeal{}, errors.New("deal not found")
	}
	return d, nil
}

func (f *fakeDealRepo) FindByClub(ctx context.Context, clubID string) ([]domain.SponsorshipDeal, error) {
	out := make([]domain.SponsorshipDeal, 0)
	for _, id := range f.order {
		if f.deals[id].ClubID == clubID {
			out = append(out, f.deals[id])
		}
	}
	return out, nil
}

func (f *fakeDealRepo) Update(ctx context.Context, deal *domain.SponsorshipDeal) error {
	if _, ok := f.deals[deal.ID]; !ok {
		return errors.New("deal not found")
	}
	f.deals[deal.ID] = *deal
	return nil
}

type fakeClubRepo struct {
	clubs map[string]domain.ClubBudget
}

func (f *fakeClubRepo) FindClubBudget(ctx context.Context, clubID string) (domain.ClubBudget, error) {
	c, ok := f.clubs[clubID]
	if !ok {
		return domain.ClubBudget{}, errors.New("club budget not found")
	}
	return c, nil
}

func testService() (*sponsorshipService, *fakeSponsorRepo, *fakeDealRepo) {
	sponsorRepo := newFakeSponsorRepo(domain.Sponsor{ID: "sp-1", Name: "TechCorp", ContactEmail: "hi@techcorp.test"})
	dealRepo := newFakeDealRepo()
	clubRepo := &fakeClubRepo{clubs: map[string]domain.ClubBudget{
		"robotics": {ClubID: "robotics", ClubName: "Robotics Club"},
	}}
	return NewSponsorshipService(sponsorRepo, dealRepo, clubRepo), sponsorRepo, dealRepo
}

func TestAddSponsorDefaults(t *testing.T) {
	svc, _, _ := testService()

	sponsor, err := svc.AddSponsor(context.Background(), &domain.Sponsor{
		Name:         "Acme Foods",
		ContactEmail: "deals@acme.test",
	})
	if err != nil {
		t.Fatal(err)
	}
	if sponsor.ID == "" {
		t.Error("sponsor has no ID")
	}
	if !sponsor.Active {
		t.Error("new sponsor must start active")
	}
	if sponsor.Logo != "AC" {
		t.Errorf("logo = %q, want monogram AC", sponsor.Logo)
	}
	if sponsor.JoinedDate.IsZero() {
		t.Error("joined date not set")
	}
}

func TestAddSponsorKeepsSuppliedLogo(t *testing.T) {
	svc, _, _ := testService()

	sponsor, err := svc.AddSponsor(context.Background(), &domain.Sponsor{
		Name:         "Acme Foods",
		ContactEmail: "deals@acme.test",
		Logo:         "https://acme.test/logo.png",
	})
	if err != nil {
		t.Fatal(err)
	}
	if sponsor.Logo != "https://acme.test/logo.png" {
		t.Errorf("logo overwritten: %q", sponsor.Logo)
	}
}

func TestAddSponsorValidation(t *testing.T) {
	svc, _, _ := testService()
	ctx := context.Background()

	if _, err := svc.AddSponsor(ctx, &domain.Sponsor{ContactEmail: "x@y.test"}); err == nil {
		t.Error("expected error for missing name")
	}
	if _, err := svc.AddSponsor(ctx, &domain.Sponsor{Name: "X"}); err == nil {
		t.Error("expected error for missing contact email")
	}
}

func TestCreateDealDenormalizesNames(t *testing.T) {
	svc, _, _ := testService()

	deal, err := svc.CreateDeal(context.Background(), &domain.SponsorshipDeal{
		SponsorID: "sp-1",
		ClubID:    "robotics",
		Amount:    2500,
		Type:      domain.DealMonetary,
	})
	if err != nil {
		t.Fatal(err)
	}
	if deal.SponsorName != "TechCorp" || deal.ClubName != "Robotics Club" {
		t.Errorf("names = %q/%q, want TechCorp/Robotics Club", deal.SponsorName, deal.ClubName)
	}
	if deal.Status != domain.DealStatusPending {
		t.Errorf("status = %q, want pending", deal.Status)
	}
	if !deal.EndDate.After(deal.StartDate) {
		t.Error("end date not after start date")
	}
}

func TestCreateDealValidation(t *testing.T) {
	svc, _, _ := testService()
	ctx := context.Background()

	cases := []struct {
		name string
		deal domain.SponsorshipDeal
	}{
		{"missing sponsor", domain.SponsorshipDeal{ClubID: "robotics", Amount: 100, Type: "monetary"}},
		{"missing club", domain.SponsorshipDeal{SponsorID: "sp-1", Amount: 100, Type: "monetary"}},
		{"zero amount", domain.SponsorshipDeal{SponsorID: "sp-1", ClubID: "robotics", Type: "monetary"}},
		{"bad type", domain.SponsorshipDeal{SponsorID: "sp-1", ClubID: "robotics", Amount: 100, Type: "barter"}},
		{"unknown sponsor", domain.SponsorshipDeal{SponsorID: "ghost", ClubID: "robotics", Amount: 100, Type: "monetary"}},
		{"unknown club", domain.SponsorshipDeal{SponsorID: "sp-1", ClubID: "ghost", Amount: 100, Type: "monetary"}},
	}

	for _, tc := range cases {
		if _, err := svc.CreateDeal(ctx, &tc.deal); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestUpdateDealStatus(t *testing.T) {
	svc, _, _ := testService()
	ctx := context.Background()

	deal, err := svc.CreateDeal(ctx, &domain.SponsorshipDeal{
		SponsorID: "sp-1", ClubID: "robotics", Amount: 100, Type: domain.DealMonetary,
	})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.UpdateDealStatus(ctx, deal.ID, domain.DealStatusActive)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != domain.DealStatusActive {
		t.Errorf("status = %q, want active", updated.Status)
	}

	if _, err := svc.UpdateDealStatus(ctx, deal.ID, "frozen"); err == nil {
		t.Error("expected error for unknown status")
	}
	if _, err := svc.UpdateDealStatus(ctx, "ghost", domain.DealStatusActive); err == nil {
		t.Error("expected error for unknown deal")
	}
}

func TestListDealsFilters(t *testing.T) {
	svc, _, dealRepo := testService()
	ctx := context.Background()

	seed := []domain.SponsorshipDeal{
		{ID: "d1", ClubID: "robotics", SponsorID: "sp-1", SponsorName: "TechCorp", Description: "Kit sponsorship", Status: "active", Amount: 1000},
		{ID: "d2", ClubID: "robotics", SponsorID: "sp-2", SponsorName: "Acme Foods", Description: "Snacks for meetups", Status: "pending", Amount: 200},
		{ID: "d3", ClubID: "chess", SponsorID: "sp-1", SponsorName: "TechCorp", Description: "Boards", Status: "active", Amount: 300},
	}
	for i := range seed {
		if err := dealRepo.Create(ctx, &seed[i]); err != nil {
			t.Fatal(err)
		}
	}

	byClub, err := svc.ListDeals(ctx, "robotics", "", "all")
	if err != nil {
		t.Fatal(err)
	}
	if len(byClub) != 2 {
		t.Errorf("club deals = %d, want 2", len(byClub))
	}

	active, err := svc.ListDeals(ctx, "robotics", "", "active")
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 1 || active[0].ID != "d1" {
		t.Errorf("active deals = %v, want [d1]", active)
	}

	bySearch, err := svc.ListDeals(ctx, "robotics", "snacks", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(bySearch) != 1 || bySearch[0].ID != "d2" {
		t.Errorf("search = %v, want [d2]", bySearch)
	}

	if _, err := svc.ListDeals(ctx, "robotics", "", "frozen"); err == nil {
		t.Error("expected error for unknown status filter")
	}
}

func TestGetClubSponsorshipAggregate(t *testing.T) {
	svc, _, dealRepo := testService()
	ctx := context.Background()

	seed := []domain.SponsorshipDeal{
		{ID: "d1", ClubID: "robotics", SponsorID: "sp-1", Status: "active", Amount: 1000},
		{ID: "d2", ClubID: "robotics", SponsorID: "sp-2", Status: "active", Amount: 500},
		{ID: "d3", ClubID: "robotics", SponsorID: "sp-1", Status: "pending", Amount: 200},
		{ID: "d4", ClubID: "robotics", SponsorID: "sp-3", Status: "cancelled", Amount: 9999},
		{ID: "d5", ClubID: "robotics", SponsorID: "sp-1", Status: "completed", Amount: 300},
	}
	for i := range seed {
		if err := dealRepo.Create(ctx, &seed[i]); err != nil {
			t.Fatal(err)
		}
	}

	agg, err := svc.GetClubSponsorship(ctx, "robotics")
	if err != nil {
		t.Fatal(err)
	}

	if agg.ClubName != "Robotics Club" {
		t.Errorf("club name = %q", agg.ClubName)
	}
	// cancelled is excluded from the raised total
	if agg.TotalRaised != 2000 {
		t.Errorf("total raised = %v, want 2000", agg.TotalRaised)
	}
	if agg.PendingDeals != 1 {
		t.Errorf("pending deals = %d, want 1", agg.PendingDeals)
	}
	// sp-1 and sp-2 hold active deals
	if agg.ActiveSponsors != 2 {
		t.Errorf("active sponsors = %d, want 2", agg.ActiveSponsors)
	}
	if len(agg.Deals) != 5 {
		t.Errorf("deals = %d, want all 5 listed", len(agg.Deals))
	}
}

func TestRecordROIAccumulates(t *testing.T) {
	svc, _, dealRepo := testService()
	ctx := context.Background()

	deal := domain.SponsorshipDeal{ID: "d1", ClubID: "robotics", SponsorID: "sp-1", Status: "active", Amount: 100}
	if err := dealRepo.Create(ctx, &deal); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.RecordROI(ctx, "d1", 1000, 50, 5, 250); err != nil {
		t.Fatal(err)
	}
	got, err := svc.RecordROI(ctx, "d1", 500, 25, 2, 100)
	if err != nil {
		t.Fatal(err)
	}

	if got.ROIImpressions != 1500 || got.ROIEngagement != 75 || got.ROIConversions != 7 || got.ROIRevenue != 350 {
		t.Errorf("roi = %+v, want accumulated totals", got)
	}

	if _, err := svc.RecordROI(ctx, "d1", -1, 0, 0, 0); err == nil {
		t.Error("expected error for negative roi values")
	}
}
