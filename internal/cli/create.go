package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bottled-app/bottled/internal/app/bottle"
	"github.com/bottled-app/bottled/internal/daemon"
)

var (
	createTitle   string
	createMessage string
	createDelay   int
	createAttach  []string
)

func init() {
	createCmd.Flags().StringVarP(&createTitle, "title", "t", "", "Bottle title")
	createCmd.Flags().StringVarP(&createMessage, "message", "m", "", "Message to seal (required)")
	createCmd.Flags().IntVarP(&createDelay, "delay", "d", 1, "Days until the bottle unlocks")
	createCmd.Flags().StringArrayVarP(&createAttach, "attach", "a", nil, "File to seal into the bottle (repeatable)")
	_ = createCmd.MarkFlagRequired("message")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Seal a new time-delayed bottle",
	Long: `Seal a message (with optional file attachments) into a bottle that
unlocks after the given delay.

Example:
  bottled create -t "Dear future me" -m "Remember this week." -d 30 -a photo.jpg`,
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	attachments, err := bottle.LoadAttachments(createAttach)
	if err != nil {
		return err
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	now := time.Now()
	b, err := d.Bottles.Create(bottle.CreateInput{
		Title:       createTitle,
		Message:     createMessage,
		DelayDays:   createDelay,
		Attachments: attachments,
	}, now)
	if err != nil {
		return err
	}

	unlocked := d.Engine.BottleCreated(b, now)

	fmt.Printf("Sealed bottle %s\n", shortID(b.ID))
	fmt.Printf("Unlocks: %s\n", b.UnlockDate.Format("2006-01-02 15:04"))
	printUnlocked(unlocked)
	return nil
}
