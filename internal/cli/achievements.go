package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/choreboard/choreboard/internal/app/analytics"
	"github.com/choreboard/choreboard/internal/daemon"
)

func init() {
	rootCmd.AddCommand(achievementsCmd)
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements [child-id]",
	Short: "Show the achievement catalog, or a child's progress through it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if len(args) == 0 {
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tREQUIREMENT\tREWARD")
		for _, a := range analytics.Catalog() {
			fmt.Fprintf(w, "%s\t%s %s\t%s\t%d\t%d pts\n",
				a.ID, a.Icon, a.Name, a.Category, a.Requirement, a.PointsReward)
		}
		return w.Flush()
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	dash, err := d.Composer.ChildDashboard(context.Background(), args[0], time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("%s — %d/%d unlocked, %d points earned\n\n",
		dash.Profile.Name, dash.Summary.Unlocked, dash.Summary.Total, dash.Summary.PointsEarned)

	fmt.Fprintln(w, "NAME\tCATEGORY\tPROGRESS\tSTATUS")
	for _, st := range dash.Achievements {
		status := "locked"
		if st.Unlocked {
			status = "unlocked"
		}
		fmt.Fprintf(w, "%s %s\t%s\t%d%%\t%s\n",
			st.Icon, st.Name, st.Category, st.Progress, status)
	}
	return w.Flush()
}
