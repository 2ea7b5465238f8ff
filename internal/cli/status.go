package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ideaforge/forge/internal/daemon"
	"github.com/ideaforge/forge/internal/domain"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show level, streak, and unlock counts",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	sum, err := d.Progression.Summary()
	if err != nil {
		return err
	}

	fmt.Printf("Level:         %s\n", sum.Level)
	fmt.Printf("Completed:     %d ideas\n", sum.TotalCompleted)
	fmt.Printf("Streak:        %d day(s)\n", sum.CurrentStreak)
	fmt.Printf("Achievements:  %d / %d\n", sum.Achievements.Unlocked, sum.Achievements.Total)
	fmt.Printf("Badges:        %d / %d\n", sum.Badges.Unlocked, sum.Badges.Total)

	if sum.TotalCompleted > 0 {
		fmt.Println("\nBy tier:")
		for _, tier := range domain.AllTiers {
			if n := sum.TierCounts[tier]; n > 0 {
				fmt.Printf("  %-8s %d\n", tier, n)
			}
		}
	}
	return nil
}
