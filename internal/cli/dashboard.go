package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/choreboard/choreboard/internal/daemon"
)

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard <household-id>",
	Short: "Show the household dashboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	dash, err := d.Composer.HouseholdDashboard(context.Background(), args[0], time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Household %s\n", dash.HouseholdID)
	fmt.Printf("  Children:          %d\n", dash.TotalChildren)
	fmt.Printf("  Engagement:        %d/100\n", dash.OverallEngagement)
	fmt.Printf("  Chores created:    %d\n", dash.TotalChoresCreated)
	fmt.Printf("  Stories generated: %d\n", dash.TotalStoriesGenerated)
	if dash.MostActiveChild != "" {
		fmt.Printf("  Most active:       %s\n", dash.MostActiveChild)
		fmt.Printf("  Least active:      %s\n", dash.LeastActiveChild)
	}

	if len(dash.Children) == 0 {
		fmt.Println("\nNo children in this household yet.")
		return nil
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCHORES\tSTREAK\tREADING\tACHIEVEMENTS\tENGAGEMENT")
	for _, cd := range dash.Children {
		fmt.Fprintf(w, "%s\t%d\t%dd\t%dm\t%d/%d\t%d (%s)\n",
			cd.Profile.Name,
			cd.Metrics.ChoresCompleted,
			cd.Metrics.CurrentStreak,
			cd.Metrics.ReadingMinutes,
			cd.Summary.Unlocked,
			cd.Summary.Total,
			cd.Engagement.Score,
			cd.Engagement.Label,
		)
	}
	return w.Flush()
}
