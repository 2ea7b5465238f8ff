package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ideaforge/forge/internal/daemon"
	"github.com/ideaforge/forge/internal/domain"
)

func init() {
	completeCmd.Flags().IntVar(&completeWorkID, "work", 0, "Idea number to mark as done (required)")
	completeCmd.Flags().StringVar(&completeTier, "tier", "student", "Difficulty tier: student, trainee, junior, senior, master")
	completeCmd.Flags().StringSliceVar(&completeLangs, "lang", nil, "Language used (repeatable)")
	completeCmd.Flags().StringSliceVar(&completeFrameworks, "framework", nil, "Framework used (repeatable)")
	completeCmd.Flags().StringSliceVar(&completeDatastores, "datastore", nil, "Datastore used (repeatable)")
	completeCmd.Flags().Int64Var(&completeAtMillis, "at", 0, "Completion time as Unix millis (default: now)")
	completeCmd.MarkFlagRequired("work")
	rootCmd.AddCommand(completeCmd)
}

var (
	completeWorkID     int
	completeTier       string
	completeLangs      []string
	completeFrameworks []string
	completeDatastores []string
	completeAtMillis   int64
)

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Mark a project idea as done",
	Long: `Record a finished project idea and re-run the progression pass.

Examples:
  forge complete --work 42 --tier junior --lang go --framework chi --datastore sqlite
  forge complete --work 7 --tier student --lang python`,
	RunE: runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	tier, err := domain.ParseTier(completeTier)
	if err != nil {
		return err
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	work := domain.CompletedWork{
		WorkID:     completeWorkID,
		Tier:       tier,
		Languages:  completeLangs,
		Frameworks: completeFrameworks,
		Datastores: completeDatastores,
	}
	if completeAtMillis > 0 {
		work.CompletedAt = time.UnixMilli(completeAtMillis).UTC()
	}

	result, err := d.Progression.Complete(work)
	if err != nil {
		return err
	}

	fmt.Printf("Completed idea #%d (%s)\n", completeWorkID, tier)
	fmt.Printf("  Record: %s\n", result.Record.ID)
	fmt.Printf("  Level:  %s\n", result.Level)
	for _, id := range result.NewAchievements {
		fmt.Printf("  🏆 Achievement unlocked: %s\n", d.Progression.CriterionName(id))
	}
	for _, id := range result.NewBadges {
		fmt.Printf("  🎖  Badge earned: %s\n", d.Progression.CriterionName(id))
	}
	return nil
}
