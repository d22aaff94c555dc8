package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bottled-app/bottled/internal/app/bottle"
	"github.com/bottled-app/bottled/internal/daemon"
	"github.com/bottled-app/bottled/internal/domain"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show BOTTLE",
	Short: "Show a bottle's details",
	Long:  `Show a bottle's metadata. The message itself stays hidden while the bottle is locked.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	b, err := d.Bottles.Get(args[0])
	if err != nil {
		return err
	}

	now := time.Now()
	fmt.Printf("ID:          %s\n", b.ID)
	fmt.Printf("Title:       %s\n", b.Title)
	fmt.Printf("Sealed:      %s\n", b.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Unlocks:     %s\n", b.UnlockDate.Format("2006-01-02 15:04:05"))
	fmt.Printf("Delay:       %d day(s)\n", b.DelayDays)
	fmt.Printf("Attachments: %d\n", len(b.Attachments))

	if !b.Readable(now) {
		fmt.Printf("Status:      locked — unlocks in %s\n", untilText(b.UnlockDate, now))
		return nil
	}

	fmt.Printf("Status:      unlocked\n\n")
	fmt.Println(b.Message)
	for _, a := range b.Attachments {
		fmt.Printf("  %s %s (%s)\n", bottle.TypeIcon(a.Type), a.Name, domain.HumanSize(a.Size))
	}
	return nil
}
