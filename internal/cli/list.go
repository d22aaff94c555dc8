package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/bottled-app/bottled/internal/daemon"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all bottles",
	RunE:    runList,
}

func runList(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	now := time.Now()
	if _, err := d.Bottles.Refresh(now); err != nil {
		return err
	}

	bottles, err := d.Bottles.List()
	if err != nil {
		return err
	}

	if len(bottles) == 0 {
		fmt.Println("No bottles yet. Run 'bottled create' to seal your first message.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tSEALED\tUNLOCKS")
	for _, b := range bottles {
		title := b.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			shortID(b.ID),
			title,
			bottleStatus(b, now),
			b.CreatedAt.Format("2006-01-02"),
			b.UnlockDate.Format("2006-01-02 15:04"),
		)
	}
	return w.Flush()
}
