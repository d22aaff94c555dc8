package cli

import (
	"github.com/spf13/cobra"

	"github.com/bottled-app/bottled/internal/daemon"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local HTTP API server",
	Long: `Serve the bottled JSON API on the configured address (default
127.0.0.1:8972) for a local web UI. Stops on Ctrl-C.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	return d.Run()
}
