package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bottled-app/bottled/internal/app/bottle"
	"github.com/bottled-app/bottled/internal/app/gamification"
	"github.com/bottled-app/bottled/internal/daemon"
	"github.com/bottled-app/bottled/internal/domain"
)

func init() {
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open BOTTLE",
	Short: "Open an unlocked bottle and read its message",
	Args:  cobra.ExactArgs(1),
	RunE:  runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	now := time.Now()
	b, err := d.Bottles.Open(args[0], now)
	if errors.Is(err, domain.ErrBottleLocked) {
		locked, getErr := d.Bottles.Get(args[0])
		if getErr == nil {
			return fmt.Errorf("%w — unlocks in %s (use 'bottled unlock' to break the seal early)",
				err, untilText(locked.UnlockDate, now))
		}
		return err
	}
	if err != nil {
		return err
	}

	unlocked := d.Engine.BottleOpened(b, now)
	printOpenedBottle(b, now)
	printUnlocked(unlocked)
	fmt.Println(d.Engine.StreakMessage())
	return nil
}

// printOpenedBottle renders an opened bottle's contents.
func printOpenedBottle(b domain.Bottle, now time.Time) {
	if b.Title != "" {
		fmt.Printf("── %s ──\n", b.Title)
	}
	fmt.Println(b.Message)
	if len(b.Attachments) > 0 {
		fmt.Println()
		for _, a := range b.Attachments {
			fmt.Printf("  %s %s (%s)\n", bottle.TypeIcon(a.Type), a.Name, domain.HumanSize(a.Size))
		}
	}
	waited := gamification.DaysBetween(b.CreatedAt, now)
	fmt.Printf("\nSealed %s — you waited %d day(s).\n", b.CreatedAt.Format("2006-01-02"), waited)
}
