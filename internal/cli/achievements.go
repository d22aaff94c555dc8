package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bottled-app/bottled/internal/daemon"
)

func init() {
	rootCmd.AddCommand(achievementsCmd)
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements and their progress",
	RunE:  runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	achievements := d.Engine.Achievements()
	unlocked := 0

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, " \tTITLE\tCATEGORY\tPROGRESS\tUNLOCKED")
	for _, a := range achievements {
		mark := " "
		when := "-"
		if a.IsUnlocked {
			mark = a.Icon
			unlocked++
			if a.UnlockedAt != nil {
				when = a.UnlockedAt.Format("2006-01-02")
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%s\n",
			mark, a.Title, a.Category, a.Progress, a.MaxProgress, when)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d of %d unlocked\n", unlocked, len(achievements))
	return nil
}
