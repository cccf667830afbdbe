package analytics_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/choreboard/choreboard/internal/app/analytics"
	"github.com/choreboard/choreboard/internal/domain"
)

// ═══════════════════════════════════════════════════════════════════════════
// Dashboard Composer Tests
// ═══════════════════════════════════════════════════════════════════════════

var dashNow = time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)

// fakeStore is an in-memory Store with injectable failures.
type fakeStore struct {
	households map[string]domain.Household
	children   []domain.ChildProfile
	tasks      map[string][]domain.TaskCompletion
	sessions   map[string][]domain.ReadingSession
	chapters   map[string][]domain.StoryChapter
	failWith   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		households: map[string]domain.Household{"h1": {ID: "h1", Name: "The Tests"}},
		tasks:      map[string][]domain.TaskCompletion{},
		sessions:   map[string][]domain.ReadingSession{},
		chapters:   map[string][]domain.StoryChapter{},
	}
}

func (f *fakeStore) addChild(id, name string, streak, points int) {
	f.children = append(f.children, domain.ChildProfile{
		ID: id, HouseholdID: "h1", Name: name, CurrentStreak: streak, TotalPoints: points,
	})
}

func (f *fakeStore) Household(_ context.Context, id string) (domain.Household, error) {
	if f.failWith != nil {
		return domain.Household{}, f.failWith
	}
	h, ok := f.households[id]
	if !ok {
		return domain.Household{}, domain.ErrHouseholdNotFound
	}
	return h, nil
}

func (f *fakeStore) Children(_ context.Context, householdID string) ([]domain.ChildProfile, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []domain.ChildProfile{}
	for _, c := range f.children {
		if c.HouseholdID == householdID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) Child(_ context.Context, childID string) (domain.ChildProfile, error) {
	if f.failWith != nil {
		return domain.ChildProfile{}, f.failWith
	}
	for _, c := range f.children {
		if c.ID == childID {
			return c, nil
		}
	}
	return domain.ChildProfile{}, domain.ErrChildNotFound
}

func (f *fakeStore) TaskCompletions(_ context.Context, childID string) ([]domain.TaskCompletion, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.tasks[childID], nil
}

func (f *fakeStore) ReadingSessions(_ context.Context, childID string) ([]domain.ReadingSession, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.sessions[childID], nil
}

func (f *fakeStore) StoryChapters(_ context.Context, childID string) ([]domain.StoryChapter, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.chapters[childID], nil
}

func (f *fakeStore) HouseholdTaskCount(_ context.Context, householdID string) (int, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	n := 0
	for _, ts := range f.tasks {
		n += len(ts)
	}
	return n, nil
}

func (f *fakeStore) HouseholdChapterCount(_ context.Context, householdID string) (int, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	n := 0
	for _, cs := range f.chapters {
		n += len(cs)
	}
	return n, nil
}

func TestHouseholdDashboard_ZeroChildren(t *testing.T) {
	c := analytics.NewComposer(newFakeStore())

	dash, err := c.HouseholdDashboard(context.Background(), "h1", dashNow)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if dash.TotalChildren != 0 {
		t.Errorf("total children = %d, want 0", dash.TotalChildren)
	}
	if dash.Children == nil || len(dash.Children) != 0 {
		t.Errorf("children must be an empty slice, got %#v", dash.Children)
	}
	if dash.MostActiveChild != "" || dash.LeastActiveChild != "" {
		t.Errorf("active-child names must be empty, got %q / %q", dash.MostActiveChild, dash.LeastActiveChild)
	}
	if dash.OverallEngagement != 0 {
		t.Errorf("overall engagement = %d, want 0", dash.OverallEngagement)
	}
}

func TestHouseholdDashboard_Summaries(t *testing.T) {
	store := newFakeStore()
	store.addChild("c1", "Ada", 0, 0)
	store.addChild("c2", "Ben", 7, 0) // streak 7 → score 20

	c := analytics.NewComposer(store)
	dash, err := c.HouseholdDashboard(context.Background(), "h1", dashNow)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if dash.TotalChildren != 2 || len(dash.Children) != 2 {
		t.Fatalf("expected 2 children, got %+v", dash)
	}
	if dash.MostActiveChild != "Ben" {
		t.Errorf("most active = %q, want Ben", dash.MostActiveChild)
	}
	if dash.LeastActiveChild != "Ada" {
		t.Errorf("least active = %q, want Ada", dash.LeastActiveChild)
	}
	// Ben: streak 20 + achievements sub-score. streak 7 unlocks
	// streak_3 and streak_7 → 2/5×10 = 4 → score 24. Mean of 0 and 24
	// rounds to 12.
	if dash.OverallEngagement != 12 {
		t.Errorf("overall engagement = %d, want 12", dash.OverallEngagement)
	}
}

func TestHouseholdDashboard_TieGoesToFirstChild(t *testing.T) {
	store := newFakeStore()
	store.addChild("c1", "Ada", 0, 0)
	store.addChild("c2", "Ben", 0, 0)

	c := analytics.NewComposer(store)
	dash, err := c.HouseholdDashboard(context.Background(), "h1", dashNow)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if dash.MostActiveChild != "Ada" || dash.LeastActiveChild != "Ada" {
		t.Errorf("ties must go to the first child, got %q / %q", dash.MostActiveChild, dash.LeastActiveChild)
	}
}

func TestHouseholdDashboard_ChildOrderPreserved(t *testing.T) {
	store := newFakeStore()
	names := []string{"Ada", "Ben", "Cleo", "Dan"}
	for i, n := range names {
		store.addChild(string(rune('a'+i)), n, i, 0)
	}

	c := analytics.NewComposer(store)
	dash, err := c.HouseholdDashboard(context.Background(), "h1", dashNow)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	for i, cd := range dash.Children {
		if cd.Profile.Name != names[i] {
			t.Errorf("child %d = %q, want %q (household order)", i, cd.Profile.Name, names[i])
		}
	}
}

func TestHouseholdDashboard_UnknownHousehold(t *testing.T) {
	c := analytics.NewComposer(newFakeStore())

	_, err := c.HouseholdDashboard(context.Background(), "nope", dashNow)
	if !errors.Is(err, domain.ErrHouseholdNotFound) {
		t.Errorf("err = %v, want ErrHouseholdNotFound", err)
	}
}

func TestHouseholdDashboard_StoreFailureIsUnavailable(t *testing.T) {
	store := newFakeStore()
	store.addChild("c1", "Ada", 0, 0)
	store.failWith = errors.New("connection refused")

	c := analytics.NewComposer(store)
	_, err := c.HouseholdDashboard(context.Background(), "h1", dashNow)

	// A fetch failure must surface as unavailable — never a partial or
	// silently-zero result.
	if !errors.Is(err, domain.ErrAnalyticsUnavailable) {
		t.Errorf("err = %v, want ErrAnalyticsUnavailable", err)
	}
}

func TestChildDashboard_UnknownChild(t *testing.T) {
	c := analytics.NewComposer(newFakeStore())

	_, err := c.ChildDashboard(context.Background(), "ghost", dashNow)
	if !errors.Is(err, domain.ErrChildNotFound) {
		t.Errorf("err = %v, want ErrChildNotFound", err)
	}
}

func TestChildDashboard_NoDataIsNormal(t *testing.T) {
	store := newFakeStore()
	store.addChild("c1", "Ada", 0, 0)

	c := analytics.NewComposer(store)
	dash, err := c.ChildDashboard(context.Background(), "c1", dashNow)
	if err != nil {
		t.Fatalf("a brand-new child is not an error: %v", err)
	}

	if dash.Engagement.Score != 0 || dash.Metrics.ChoresCompleted != 0 {
		t.Errorf("expected all-zero snapshot, got %+v", dash.Metrics)
	}
	if len(dash.Daily) != 7 || len(dash.Monthly) != 6 {
		t.Errorf("rollup lengths = %d/%d, want 7/6", len(dash.Daily), len(dash.Monthly))
	}
}

func TestHouseholdDashboard_Idempotent(t *testing.T) {
	store := newFakeStore()
	store.addChild("c1", "Ada", 3, 120)
	end := dashNow.Add(-time.Hour)
	store.tasks["c1"] = []domain.TaskCompletion{
		{ID: "t1", ChildID: "c1", Status: domain.TaskApproved, CompletedAt: dashNow.Add(-2 * time.Hour), Points: 10},
	}
	store.sessions["c1"] = []domain.ReadingSession{
		{ID: "s1", ChildID: "c1", StartTime: dashNow.Add(-90 * time.Minute), EndTime: &end, SpeedWPM: 95},
	}
	store.chapters["c1"] = []domain.StoryChapter{
		{ID: "ch1", ChildID: "c1", IsRead: true, WorldTheme: "space", CreatedAt: dashNow.Add(-3 * time.Hour)},
	}

	c := analytics.NewComposer(store)
	a, err := c.HouseholdDashboard(context.Background(), "h1", dashNow)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	b, err := c.HouseholdDashboard(context.Background(), "h1", dashNow)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Errorf("re-running on unchanged input must be identical:\n%+v\n%+v", a, b)
	}
}
