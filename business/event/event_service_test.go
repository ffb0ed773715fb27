//go:build !integration

package event

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"campBuzz/domain"
)

type fakeEventRepo struct {
	events map[string]domain.Event
	order  []string
	err    error
}

func newFakeEventRepo(events ...domain.Event) *fakeEventRepo {
	repo := &fakeEventRepo{events: make(map[string]domain.Event)}
	for _, ev := range events {
		repo.events[ev.ID] = ev
		repo.order = append(repo.order, ev.ID)
	}
	return repo
}

func (f *fakeEventRepo) Create(ctx context.Context, event *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	f.events[event.ID] = *event
	f.order = append(f.order, event.ID)
	return nil
}

func (f *fakeEventRepo) FindByID(ctx context.Context, id string) (domain.Event, error) {
	ev, ok := f.events[id]
	if !ok {
		return domain.Event{}, errors.New("event not found")
	}
	return ev, nil
}

func (f *fakeEventRepo) FindAll(ctx context.Context) ([]domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Event, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.events[id])
	}
	return out, nil
}

func (f *fakeEventRepo) FindBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Event, 0)
	for _, id := range f.order {
		ev := f.events[id]
		if !ev.Date.Before(from) && ev.Date.Before(to) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, event *domain.Event) error {
	if _, ok := f.events[event.ID]; !ok {
		return errors.New("event not found")
	}
	f.events[event.ID] = *event
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.events[id]; !ok {
		return errors.New("event not found")
	}
	delete(f.events, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func day(d int) time.Time {
	return time.Date(2026, time.April, d, 18, 0, 0, 0, time.UTC)
}

func TestCreateEventAssignsID(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())

	created, err := svc.CreateEvent(context.Background(), &domain.Event{
		Title:    "Robotics Demo",
		Category: "Technology",
		Date:     day(10),
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Error("created event has no ID")
	}
}

func TestCreateEventValidation(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())
	ctx := context.Background()

	cases := []struct {
		name  string
		event domain.Event
	}{
		{"missing title", domain.Event{Category: "Technology", Date: day(1)}},
		{"missing category", domain.Event{Title: "x", Date: day(1)}},
		{"missing date", domain.Event{Title: "x", Category: "Technology"}},
		{"negative attendance", domain.Event{Title: "x", Category: "y", Date: day(1), Attendees: -1}},
		{"unknown difficulty", domain.Event{Title: "x", Category: "y", Date: day(1), Difficulty: "Expert"}},
	}

	for _, tc := range cases {
		if _, err := svc.CreateEvent(ctx, &tc.event); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestUpdateEventNotFound(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())

	_, err := svc.UpdateEvent(context.Background(), &domain.Event{ID: "ghost", Title: "x"})
	if err == nil || err.Error() != "event not found" {
		t.Errorf("err = %v, want event not found", err)
	}
}

func TestDeleteEvent(t *testing.T) {
	repo := newFakeEventRepo(domain.Event{ID: "ev-1", Title: "x", Category: "y", Date: day(1)})
	svc := NewEventService(repo)

	if err := svc.DeleteEvent(context.Background(), "ev-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetEventByID(context.Background(), "ev-1"); err == nil {
		t.Error("event still exists after delete")
	}
}

func TestGetUpcomingEventsSorted(t *testing.T) {
	repo := newFakeEventRepo(
		domain.Event{ID: "late", Title: "late", Date: day(20)},
		domain.Event{ID: "past", Title: "past", Date: day(1)},
		domain.Event{ID: "soon", Title: "soon", Date: day(12)},
	)
	svc := NewEventService(repo)

	got, err := svc.GetUpcomingEvents(context.Background(), day(10))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "soon" || got[1].ID != "late" {
		t.Errorf("upcoming = %v, want [soon late]", eventIDs(got))
	}
}

func TestGetTrendingEvents(t *testing.T) {
	repo := newFakeEventRepo(
		domain.Event{ID: "quiet", Attendees: 10, MaxAttendees: 100},
		domain.Event{ID: "hot", Attendees: 95, MaxAttendees: 100},
		domain.Event{ID: "warm", Attendees: 80, MaxAttendees: 100},
		domain.Event{ID: "uncapped", Attendees: 500, MaxAttendees: 0},
	)
	svc := NewEventService(repo)

	got, err := svc.GetTrendingEvents(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "hot" || got[1].ID != "warm" {
		t.Errorf("trending = %v, want [hot warm]", eventIDs(got))
	}
}

func TestGetCategories(t *testing.T) {
	repo := newFakeEventRepo(
		domain.Event{ID: "a", Category: "Technology"},
		domain.Event{ID: "b", Category: "Arts"},
		domain.Event{ID: "c", Category: "Technology"},
		domain.Event{ID: "d", Category: ""},
		domain.Event{ID: "e", Category: "Career"},
	)
	svc := NewEventService(repo)

	got, err := svc.GetCategories(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Arts", "Career", "Technology"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("categories = %v, want %v", got, want)
	}
}

func TestGetCalendarMonth(t *testing.T) {
	repo := newFakeEventRepo(
		domain.Event{ID: "a", Date: day(3)},
		domain.Event{ID: "b", Date: day(3).Add(-2 * time.Hour)},
		domain.Event{ID: "c", Date: day(17)},
		domain.Event{ID: "other-month", Date: time.Date(2026, time.May, 2, 12, 0, 0, 0, time.UTC)},
	)
	svc := NewEventService(repo)

	got, err := svc.GetCalendarMonth(context.Background(), 2026, time.April)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d days with events, want 2", len(got))
	}
	if len(got[3]) != 2 || got[3][0].ID != "b" || got[3][1].ID != "a" {
		t.Errorf("day 3 = %v, want [b a] ordered by time", eventIDs(got[3]))
	}
	if len(got[17]) != 1 || got[17][0].ID != "c" {
		t.Errorf("day 17 = %v, want [c]", eventIDs(got[17]))
	}
}

func TestGetCalendarMonthInvalidMonth(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())

	if _, err := svc.GetCalendarMonth(context.Background(), 2026, time.Month(13)); err == nil {
		t.Error("expected error for month 13")
	}
}

func eventIDs(events []domain.Event) []string {
	out := make([]string, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.ID)
	}
	return out
}
