package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ideaforge/forge/internal/daemon"
)

func init() {
	rootCmd.AddCommand(logCmd)
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the completed-work history",
	RunE:  runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	history, err := d.Progression.History()
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Println("No completed ideas yet. Try: forge complete --work 1 --tier student")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tIDEA\tTIER\tTAGS\tRECORD")
	for _, rec := range history {
		tags := strings.Join(append(append(append([]string{}, rec.Languages...), rec.Frameworks...), rec.Datastores...), ",")
		if tags == "" {
			tags = "-"
		}
		fmt.Fprintf(w, "%s\t#%d\t%s\t%s\t%s\n",
			rec.CompletedAt.Local().Format("2006-01-02 15:04"),
			rec.WorkID, rec.Tier, tags, rec.ID)
	}
	return w.Flush()
}
