package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bottled-app/bottled/internal/daemon"
)

func init() {
	rootCmd.AddCommand(unlockCmd)
}

var unlockCmd = &cobra.Command{
	Use:   "unlock BOTTLE",
	Short: "Break a bottle's seal before its unlock date",
	Long: `Unlock a bottle early and read it now. An early unlock counts as a
regular open for stats, streaks, and achievements.`,
	Args: cobra.ExactArgs(1),
	RunE: runUnlock,
}

func runUnlock(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	now := time.Now()
	b, err := d.Bottles.Unlock(args[0])
	if err != nil {
		return err
	}

	unlocked := d.Engine.BottleOpened(b, now)
	printOpenedBottle(b, now)
	printUnlocked(unlocked)
	fmt.Println(d.Engine.StreakMessage())
	return nil
}
