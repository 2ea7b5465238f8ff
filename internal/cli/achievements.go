package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ideaforge/forge/internal/daemon"
	"github.com/ideaforge/forge/internal/domain"
)

func init() {
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(badgesCmd)
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements and their progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printProgress(domain.ScopeAchievement)
	},
}

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List badges and their progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printProgress(domain.ScopeBadge)
	},
}

// printProgress renders one scope's criteria as a table: unlocked rows
// first get a check mark, the rest show the percent bar value.
func printProgress(scope domain.Scope) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	snaps, err := d.Progression.Snapshots(scope)
	if err != nil {
		return err
	}
	unlocked, err := d.Progression.Unlocked(scope)
	if err != nil {
		return err
	}
	isUnlocked := make(map[string]bool, len(unlocked))
	for _, u := range unlocked {
		isUnlocked[u.ID] = true
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tPROGRESS\tNAME")
	for _, snap := range snaps {
		status := " "
		if isUnlocked[snap.CriterionID] || snap.Satisfied {
			status = "✓"
		}
		fmt.Fprintf(w, "%s\t%d%%\t%s\n", status, snap.ProgressPercent,
			d.Progression.CriterionName(snap.CriterionID))
	}
	return w.Flush()
}
