package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bottled-app/bottled/internal/daemon"
)

func init() {
	rootCmd.AddCommand(rmCmd)
}

var rmCmd = &cobra.Command{
	Use:   "rm BOTTLE",
	Short: "Delete a bottle permanently",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.Bottles.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted bottle %s\n", shortID(args[0]))
	return nil
}
