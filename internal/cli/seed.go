package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/choreboard/choreboard/internal/daemon"
	"github.com/choreboard/choreboard/internal/domain"
)

func init() {
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a demo household with a week of activity",
	Long: `Seed the local store with a demo household, two children, and a
week of chores, reading sessions, and story chapters. Useful for trying
the dashboard before the mobile app has synced real events.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := context.Background()
	now := time.Now()

	household, err := d.DB.AddHousehold(ctx, domain.Household{
		ID:   uuid.NewString(),
		Name: "The Demo Family",
	})
	if err != nil {
		return err
	}

	mila, err := d.DB.AddChild(ctx, domain.ChildProfile{
		HouseholdID:   household.ID,
		Name:          "Mila",
		CurrentStreak: 4,
		TotalPoints:   260,
	})
	if err != nil {
		return err
	}
	theo, err := d.DB.AddChild(ctx, domain.ChildProfile{
		HouseholdID:   household.ID,
		Name:          "Theo",
		CurrentStreak: 1,
		TotalPoints:   85,
	})
	if err != nil {
		return err
	}

	// A week of chores: Mila steady, Theo sporadic with one rejection.
	for day := 0; day < 7; day++ {
		ts := now.AddDate(0, 0, -day)
		if _, err := d.DB.AddTaskCompletion(ctx, domain.TaskCompletion{
			ChildID: mila.ID, Status: domain.TaskApproved, CompletedAt: ts, Points: 15,
		}); err != nil {
			return err
		}
		if day%3 == 0 {
			if _, err := d.DB.AddTaskCompletion(ctx, domain.TaskCompletion{
				ChildID: theo.ID, Status: domain.TaskApproved, CompletedAt: ts, Points: 10,
			}); err != nil {
				return err
			}
		}
	}
	if _, err := d.DB.AddTaskCompletion(ctx, domain.TaskCompletion{
		ChildID: theo.ID, Status: domain.TaskRejected, CompletedAt: now.AddDate(0, 0, -1), Points: 0,
	}); err != nil {
		return err
	}

	// Four consecutive reading days for Mila keep her streak alive.
	for day := 0; day < 4; day++ {
		start := now.AddDate(0, 0, -day).Add(-2 * time.Hour)
		end := start.Add(25 * time.Minute)
		if _, err := d.DB.AddReadingSession(ctx, domain.ReadingSession{
			ChildID: mila.ID, StartTime: start, EndTime: &end, WordsRead: 2200, SpeedWPM: 88,
		}); err != nil {
			return err
		}
	}

	themes := []string{"space", "space", "ocean"}
	for i, theme := range themes {
		if _, err := d.DB.AddStoryChapter(ctx, domain.StoryChapter{
			ChildID:    mila.ID,
			IsRead:     i < 2,
			WorldTheme: theme,
			CreatedAt:  now.AddDate(0, 0, -i),
		}); err != nil {
			return err
		}
	}

	fmt.Printf("Seeded household %s (%s)\n", household.Name, household.ID)
	fmt.Printf("  Children: %s (%s), %s (%s)\n", mila.Name, mila.ID, theo.Name, theo.ID)
	fmt.Printf("\nTry: choreboard dashboard %s\n", household.ID)
	return nil
}
