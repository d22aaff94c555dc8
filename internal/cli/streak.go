package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bottled-app/bottled/internal/daemon"
)

func init() {
	rootCmd.AddCommand(streakCmd)
}

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show your opening streak",
	RunE:  runStreak,
}

func runStreak(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	s := d.Engine.Streak()
	fmt.Printf("Current streak: %d day(s)\n", s.Current)
	fmt.Printf("Longest streak: %d day(s)\n", s.Longest)
	if s.LastOpenedDate != nil {
		fmt.Printf("Last opened:    %s\n", s.LastOpenedDate.Format("2006-01-02"))
	}
	fmt.Println(d.Engine.StreakMessage())
	return nil
}
