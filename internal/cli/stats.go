package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bottled-app/bottled/internal/daemon"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show usage statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	s := d.Engine.Stats()
	fmt.Printf("Bottles created:    %d\n", s.BottlesCreated)
	fmt.Printf("Bottles opened:     %d\n", s.BottlesOpened)
	fmt.Printf("Total days waited:  %d\n", s.TotalDaysWaited)
	fmt.Printf("Longest wait:       %d day(s)\n", s.LongestWait)
	fmt.Printf("Longest message:    %d character(s)\n", s.AverageMessageLength)
	fmt.Printf("Attachments sealed: %d\n", s.TotalAttachments)
	fmt.Printf("Current streak:     %d day(s)\n", s.CurrentStreak)
	fmt.Printf("Longest streak:     %d day(s)\n", s.LongestStreak)
	if s.FirstBottleDate != nil {
		fmt.Printf("First bottle:       %s\n", s.FirstBottleDate.Format("2006-01-02"))
	}
	if s.LastOpenedDate != nil {
		fmt.Printf("Last opened:        %s\n", s.LastOpenedDate.Format("2006-01-02"))
	}
	return nil
}
