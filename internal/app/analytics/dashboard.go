package analytics

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/choreboard/choreboard/internal/domain"
)

// Store is the narrow data-access port the composer reads through. The
// engine holds no ambient handle to storage — implementations are passed
// in at construction.
type Store interface {
	Household(ctx context.Context, householdID string) (domain.Household, error)
	Children(ctx context.Context, householdID string) ([]domain.ChildProfile, error)
	Child(ctx context.Context, childID string) (domain.ChildProfile, error)

	TaskCompletions(ctx context.Context, childID string) ([]domain.TaskCompletion, error)
	ReadingSessions(ctx context.Context, childID string) ([]domain.ReadingSession, error)
	StoryChapters(ctx context.Context, childID string) ([]domain.StoryChapter, error)

	// Household-level collection counts, independent of per-child
	// aggregation (avoids double-aggregation drift).
	HouseholdTaskCount(ctx context.Context, householdID string) (int, error)
	HouseholdChapterCount(ctx context.Context, householdID string) (int, error)
}

// Composer orchestrates the engine across the children of a household.
type Composer struct {
	store Store
}

// NewComposer creates a dashboard composer over a store port.
func NewComposer(store Store) *Composer {
	return &Composer{store: store}
}

// ChildDashboard builds the full analytics bundle for one child.
// Returns domain.ErrChildNotFound for an unknown child and wraps any
// store failure in domain.ErrAnalyticsUnavailable.
func (c *Composer) ChildDashboard(ctx context.Context, childID string, now time.Time) (domain.ChildDashboard, error) {
	profile, err := c.store.Child(ctx, childID)
	if err != nil {
		if errors.Is(err, domain.ErrChildNotFound) {
			return domain.ChildDashboard{}, err
		}
		return domain.ChildDashboard{}, unavailable("load child", err)
	}
	return c.buildChild(ctx, profile, now)
}

// HouseholdDashboard aggregates every child of a household. Per-child
// computations have no data dependency on one another and run in
// parallel; results are reassembled in household child order so the
// most/least-active tie-break stays reproducible.
func (c *Composer) HouseholdDashboard(ctx context.Context, householdID string, now time.Time) (domain.HouseholdDashboard, error) {
	household, err := c.store.Household(ctx, householdID)
	if err != nil {
		if errors.Is(err, domain.ErrHouseholdNotFound) {
			return domain.HouseholdDashboard{}, err
		}
		return domain.HouseholdDashboard{}, unavailable("load household", err)
	}

	dash := domain.HouseholdDashboard{
		HouseholdID: household.ID,
		Children:    []domain.ChildDashboard{},
	}

	if dash.TotalChoresCreated, err = c.store.HouseholdTaskCount(ctx, householdID); err != nil {
		return domain.HouseholdDashboard{}, unavailable("count chores", err)
	}
	if dash.TotalStoriesGenerated, err = c.store.HouseholdChapterCount(ctx, householdID); err != nil {
		return domain.HouseholdDashboard{}, unavailable("count stories", err)
	}

	children, err := c.store.Children(ctx, householdID)
	if err != nil {
		return domain.HouseholdDashboard{}, unavailable("list children", err)
	}
	dash.TotalChildren = len(children)
	if len(children) == 0 {
		// Empty-but-valid: zeroed totals, empty arrays, never nil.
		return dash, nil
	}

	results := make([]domain.ChildDashboard, len(children))
	errs := make([]error, len(children))
	var wg sync.WaitGroup
	for i, child := range children {
		wg.Add(1)
		go func(i int, profile domain.ChildProfile) {
			defer wg.Done()
			results[i], errs[i] = c.buildChild(ctx, profile, now)
		}(i, child)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return domain.HouseholdDashboard{}, err
		}
	}
	dash.Children = results

	// Summary stats in child order; strict inequality keeps ties on the
	// first-encountered child.
	total, most, least := 0, 0, 0
	for i, cd := range results {
		total += cd.Engagement.Score
		if cd.Engagement.Score > results[most].Engagement.Score {
			most = i
		}
		if cd.Engagement.Score < results[least].Engagement.Score {
			least = i
		}
	}
	dash.OverallEngagement = int(math.Round(float64(total) / float64(len(results))))
	dash.MostActiveChild = results[most].Profile.Name
	dash.LeastActiveChild = results[least].Profile.Name

	return dash, nil
}

// buildChild runs the full per-child pipeline over freshly fetched events.
func (c *Composer) buildChild(ctx context.Context, profile domain.ChildProfile, now time.Time) (domain.ChildDashboard, error) {
	tasks, err := c.store.TaskCompletions(ctx, profile.ID)
	if err != nil {
		return domain.ChildDashboard{}, unavailable("load task completions", err)
	}
	sessions, err := c.store.ReadingSessions(ctx, profile.ID)
	if err != nil {
		return domain.ChildDashboard{}, unavailable("load reading sessions", err)
	}
	chapters, err := c.store.StoryChapters(ctx, profile.ID)
	if err != nil {
		return domain.ChildDashboard{}, unavailable("load story chapters", err)
	}

	metrics := BuildChildMetrics(profile, tasks, sessions, chapters, now)
	statuses := Evaluate(metrics)

	return domain.ChildDashboard{
		Profile:      profile,
		Metrics:      metrics,
		Achievements: statuses,
		Summary:      Summarize(statuses),
		Engagement:   Score(metrics),
		Daily:        DailyRollup(tasks, chapters, now),
		Monthly:      MonthlyRollup(tasks, chapters, now),
	}, nil
}

// unavailable wraps a store failure so callers can errors.Is it against
// domain.ErrAnalyticsUnavailable.
func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrAnalyticsUnavailable, op, err)
}
