package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ideaforge/forge/internal/daemon"
)

func init() {
	rootCmd.AddCommand(undoCmd)
}

var undoCmd = &cobra.Command{
	Use:   "undo <record-id>",
	Short: "Remove a completed-work record",
	Long: `Remove one completion record by its id (see "forge log") and re-run
the progression pass. Already-unlocked achievements and badges stay
unlocked.`,
	Args: cobra.ExactArgs(1),
	RunE: runUndo,
}

func runUndo(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	result, err := d.Progression.Undo(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Removed record %s\n", args[0])
	fmt.Printf("  Level: %s\n", result.Level)
	return nil
}
